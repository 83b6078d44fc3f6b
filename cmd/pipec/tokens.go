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
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pipelang/pipecompile/lexer"
	"github.com/pipelang/pipecompile/report"
	"github.com/pipelang/pipecompile/reporter"
)

func newTokensCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the tokens of a file, one per line",
		Long: `Tokens prints the token stream of FILE with the line and column of each
token. Indentation shows up as Indent and Outdent tokens.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(string(data))
			if err != nil {
				var diags report.Report
				diags.FromError(report.Error, err, report.NewIndexedFile(report.File{Path: path, Text: string(data)}))
				_, _ = io.WriteString(cmd.ErrOrStderr(), diags.Render(opts.reportStyle()))
				return reporter.ErrInvalidSource
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tok := range tokens {
				fmt.Fprintf(w, "%v\t%v\t%q\n", tok.Pos, tok.Kind, tok.Text)
			}
			return w.Flush()
		},
	}
}
