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

package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelang/pipecompile/lexer"
	"github.com/pipelang/pipecompile/parser"
	"github.com/pipelang/pipecompile/report"
	"github.com/pipelang/pipecompile/reporter"
)

func lines(s ...string) string {
	return strings.Join(s, "\n")
}

func TestRender(t *testing.T) {
	t.Parallel()

	file := report.NewIndexedFile(report.File{Path: "a.pipe", Text: "x -> f\ny => 3\n"})
	var r report.Report
	r.Error(
		errors.New("bad binding"),
		report.SnippetAt(file.NewSpan(12, 13), "expected Symbol"),
		report.Note("names start with a letter"),
	)

	assert.Equal(t, "error: a.pipe:2:6: bad binding\n", r.Render(report.Simple))
	assert.Equal(t, lines(
		"error: bad binding",
		" --> a.pipe:2:6",
		"   |",
		" 2 | y => 3",
		"   |      ^ expected Symbol",
		"   = note: names start with a letter",
		"",
		"encountered 1 error",
		"",
	), r.Render(report.Monochrome))

	colored := r.Render(report.Colored)
	assert.Contains(t, colored, "\033[1;31merror: bad binding\033[0m")
	assert.Contains(t, colored, "encountered 1 error")
}

func TestRenderSecondarySnippets(t *testing.T) {
	t.Parallel()

	file := report.NewIndexedFile(report.File{Path: "f.pipe", Text: "a\nb\nc\nd\n"})
	d := report.Report{}
	d.Error(
		errors.New("dup"),
		report.SnippetAt(file.NewSpan(6, 7), "again"),
		report.SnippetAt(file.NewSpan(0, 1), "first here"),
		report.Help("rename one of them"),
	)
	assert.Equal(t, lines(
		"error: dup",
		" --> f.pipe:4:1",
		"   |",
		" 1 | a",
		"   | - first here",
		"   ~",
		" 4 | d",
		"   | ^ again",
		"   = help: rename one of them",
	), d[0].Render(report.Monochrome))
}

func TestRenderWithoutSnippets(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Warn(errors.New("file is empty"), report.MentionFile("x.pipe"))
	assert.Equal(t, "warning: x.pipe: file is empty\n", r.Render(report.Simple))
	assert.Equal(t, lines(
		"warning: file is empty",
		" --> x.pipe:?:?",
		"",
		"encountered 1 warning",
		"",
	), r.Render(report.Monochrome))

	r = nil
	r.Remark(errors.New("hello"))
	assert.Equal(t, "remark: <unknown>: hello\n", r.Render(report.Simple))
	assert.Equal(t, 1, r.Count(report.Remark))
	assert.Zero(t, r.Count(report.Error))
}

func TestFromLexerError(t *testing.T) {
	t.Parallel()

	source := "a\n    b\n  c\n"
	_, err := lexer.Tokenize(source)
	var outdent *lexer.InvalidOutdentError
	require.ErrorAs(t, err, &outdent)

	file := report.NewIndexedFile(report.File{Path: "t.pipe", Text: source})
	var r report.Report
	r.FromError(report.Error, reporter.Error(reporter.At("t.pipe", outdent.Pos), err), file)
	require.Len(t, r, 1)

	d := r[0]
	assert.ErrorIs(t, d.Err, lexer.ErrInvalidOutdent)
	assert.Equal(t, []string{"open indentation levels are 0, 4"}, d.Notes())
	assert.Equal(t,
		"error: t.pipe:3:1: invalid outdent: dedent to 2 spaces does not match any open indentation level [0 4]",
		d.Render(report.Simple))
	assert.Contains(t, d.Render(report.Monochrome), lines(
		" 3 |   c",
		"   | ^^ this indentation does not line up with any enclosing block",
	))
}

func TestFromSyntaxErrorWithoutText(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Tokenize("if x:\n  y\nelse:\n  z")
	require.NoError(t, err)
	_, errs := parser.Parse(tokens)
	require.Len(t, errs, 1)

	var r report.Report
	r.FromError(report.Error, reporter.Error(reporter.At("e.pipe", errs[0].Found.Pos), errs[0]), nil)
	require.Len(t, r, 1)
	assert.Equal(t, `error: e.pipe:3:1: unexpected Else "else" in conditional; expected Elif`, r[0].Render(report.Simple))
	assert.Len(t, r[0].Notes(), 1)

	file, start, _ := r[0].Primary()
	assert.Equal(t, "e.pipe", file.Path)
	assert.Equal(t, 3, start.Line)
}

func TestFromUnwrappedError(t *testing.T) {
	t.Parallel()

	source := "a\tb"
	_, err := lexer.Tokenize(source)
	require.Error(t, err)

	var r report.Report
	r.FromError(report.Error, err, report.NewIndexedFile(report.File{Path: "tab.pipe", Text: source}))
	assert.Equal(t, `error: tab.pipe:1:2: unrecognized input: unexpected character '\t'`+"\n", r.Render(report.Simple))
	assert.Contains(t, r.Render(report.Monochrome), "help: indent with spaces")

	r = nil
	r.FromError(report.Error, errors.New("no such file"), nil)
	assert.Equal(t, "error: <unknown>: no such file\n", r.Render(report.Simple))
}

func TestSearch(t *testing.T) {
	t.Parallel()

	file := report.NewIndexedFile(report.File{Path: "w.pipe", Text: "貓x\n\tb"})
	assert.Equal(t, report.Location{Offset: 3, Line: 1, Column: 3}, file.Search(3))
	assert.Equal(t, report.Location{Offset: 5, Line: 2, Column: 1}, file.Search(5))
	assert.Equal(t, report.Location{Offset: 6, Line: 2, Column: 5}, file.Search(6))
	assert.Equal(t, report.Location{Offset: 7, Line: 2, Column: 6}, file.Search(100))
	assert.Equal(t, "貓x", file.Line(1))
	assert.Equal(t, "\tb", file.Line(2))
	assert.Empty(t, file.Line(3))
}

func TestStyleByName(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]report.Style{
		"simple":     report.Simple,
		"monochrome": report.Monochrome,
		"plain":      report.Monochrome,
		"colored":    report.Colored,
	} {
		got, ok := report.StyleByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := report.StyleByName("fancy")
	assert.False(t, ok)
}
