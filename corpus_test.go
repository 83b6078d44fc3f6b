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

package pipecompile_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pipelang/pipecompile"
	"github.com/pipelang/pipecompile/cst"
	"github.com/pipelang/pipecompile/internal/corpora"
	"github.com/pipelang/pipecompile/lexer"
	"github.com/pipelang/pipecompile/report"
	"github.com/pipelang/pipecompile/reporter"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "PIPECOMPILE_REFRESH",
		Extension: "pipe",
		Outputs: []corpora.Output{
			{Extension: "tokens"},
			{Extension: "cst.yaml", Compare: compareYAML},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var tokens strings.Builder
			if toks, err := lexer.Tokenize(text); err == nil {
				for _, tok := range toks {
					fmt.Fprintf(&tokens, "%d:%d %v %q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Text)
				}
			}

			var diags report.Report
			file := report.NewIndexedFile(report.File{Path: path, Text: text})
			compiler := pipecompile.Compiler{
				Resolver: pipecompile.ResolverFunc(func(string) (pipecompile.SearchResult, error) {
					return pipecompile.SearchResult{Source: strings.NewReader(text)}, nil
				}),
				Reporter: reporter.NewReporter(
					func(err reporter.ErrorWithPos) error {
						diags.FromError(report.Error, err, file)
						return nil
					},
					func(err reporter.ErrorWithPos) {
						diags.FromError(report.Warning, err, file)
					},
				),
			}
			results, err := compiler.Compile(context.Background(), path)

			var tree string
			if err == nil {
				out, err := yaml.Marshal(yamlTree(results[0].CST))
				require.NoError(t, err)
				tree = string(out)
			}
			return []string{tokens.String(), tree, diags.Render(report.Monochrome)}
		},
	}
	corpus.Run(t)
}

// yamlTree renders a tree as nested single-key maps, one per node, with
// leaves printed the way cst.Node.String prints them.
func yamlTree(e cst.Element) any {
	switch e := e.(type) {
	case *cst.Node:
		children := make([]any, 0, len(e.Children))
		for _, c := range e.Children {
			children = append(children, yamlTree(c))
		}
		return map[string]any{e.Rule.String(): children}
	case *cst.Leaf:
		if e.Synthetic() {
			return e.Kind.String()
		}
		return fmt.Sprintf("%v %q", e.Kind, e.Text)
	}
	return nil
}

// compareYAML compares documents rather than text, so that golden files
// may be written in any YAML layout.
func compareYAML(got, want string) string {
	var g, w any
	if err := yaml.Unmarshal([]byte(got), &g); err != nil {
		return fmt.Sprintf("invalid output: %v", err)
	}
	if err := yaml.Unmarshal([]byte(want), &w); err != nil {
		return fmt.Sprintf("invalid golden file: %v", err)
	}
	if diff := cmp.Diff(w, g); diff != "" {
		return corpora.Diff(got, want)
	}
	return ""
}
