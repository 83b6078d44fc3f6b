// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pipelang/pipecompile/cst"
)

func newLocateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate FILE OFFSET",
		Short: "Show the token at a byte offset and the rules around it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			offset, err := strconv.Atoi(args[1])
			if err != nil || offset < 0 {
				return fmt.Errorf("invalid offset %q", args[1])
			}

			results, err := opts.compile(cmd.Context(), cmd.ErrOrStderr(), []string{path})
			if err != nil {
				return err
			}

			ix := cst.NewIndex(results[0].CST)
			tok, ok := ix.TokenAt(offset)
			if !ok {
				return fmt.Errorf("%s: no token at offset %d", path, offset)
			}

			chain := ix.Enclosing(offset)
			rules := make([]string, len(chain))
			for i, n := range chain {
				rules[i] = n.Rule.String()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s:%v: %v %q\n", path, tok.Pos, tok.Kind, tok.Text)
			fmt.Fprintln(out, strings.Join(rules, " > "))
			return nil
		},
	}
}
