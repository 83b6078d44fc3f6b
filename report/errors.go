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

package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pipelang/pipecompile/lexer"
	"github.com/pipelang/pipecompile/parser"
	"github.com/pipelang/pipecompile/reporter"
	"github.com/pipelang/pipecompile/token"
)

// FromError pushes a diagnostic describing err.
//
// Positioned errors from the reporter, lexer and parser packages get a
// snippet of file underlining the offending text. file may be nil, in which
// case only the reported position is shown.
func (r *Report) FromError(level Level, err error, file *IndexedFile) {
	var (
		msg   = err
		opts  []DiagnosticOption
		label string

		start, end int
		located    bool
	)

	var ewp reporter.ErrorWithPos
	hasPos := errors.As(err, &ewp)
	if hasPos {
		msg = ewp.Unwrap()
		pos := ewp.GetPosition()
		start, end, located = pos.Offset, pos.Offset, true
		opts = append(opts, MentionFile(pos.Filename))
	}

	var (
		syntax       *parser.SyntaxError
		outdent      *lexer.InvalidOutdentError
		unrecognized *lexer.UnrecognizedInputError
	)
	switch {
	case errors.As(err, &syntax):
		start, end, located = syntax.Found.Pos.Offset, syntax.Found.End(), true
		switch {
		case syntax.Found.Kind == token.EOF:
			label = "unexpected end of input"
		case syntax.Found.Text == "":
			label = "unexpected " + strings.ToLower(syntax.Found.Kind.String())
		default:
			label = "unexpected token"
		}
		if errors.Is(syntax, parser.ErrNestingTooDeep) {
			label = "nested too deeply"
		}
		if syntax.Note != "" {
			opts = append(opts, Note("%s", syntax.Note))
		}

	case errors.As(err, &outdent):
		start, end, located = outdent.Pos.Offset, outdent.Pos.Offset+outdent.Width, true
		label = "this indentation does not line up with any enclosing block"
		levels := make([]string, len(outdent.Open))
		for i, n := range outdent.Open {
			levels[i] = fmt.Sprint(n)
		}
		opts = append(opts, Note("open indentation levels are %s", strings.Join(levels, ", ")))

	case errors.As(err, &unrecognized):
		start, located = unrecognized.Pos.Offset, true
		end = start + max(utf8.RuneLen(unrecognized.Found), 1)
		label = "no token starts here"
		if unrecognized.Found == '\t' {
			opts = append(opts, Help("indent with spaces; tabs are not allowed outside of strings and comments"))
		}
	}

	switch {
	case file != nil && located:
		opts = append([]DiagnosticOption{SnippetAt(file.NewSpan(start, end), "%s", label)}, opts...)
	case hasPos:
		// Without the text, fall back to the reported line and column.
		pos := ewp.GetPosition()
		at := Location{Offset: pos.Offset, Line: pos.Line, Column: pos.Col}
		opts = append([]DiagnosticOption{SnippetAt(span{file: File{Path: pos.Filename}, start: at, end: at}, "%s", label)}, opts...)
	}
	r.push(1, msg, level, opts)
}
