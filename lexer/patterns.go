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

package lexer

import (
	"regexp"

	"github.com/pipelang/pipecompile/token"
)

type action int

const (
	emit action = iota
	discard
	newline
)

type pattern struct {
	kind   token.Kind
	re     *regexp.Regexp
	action action
	// If set, the match is rejected when immediately followed by an
	// identifier character.
	word bool
}

// patterns is the priority table. Indentation is not part of it; it is
// handled by the indenter before the table is consulted at a line start.
var patterns = []pattern{
	{kind: token.Comment, re: anchored(`--[^\r\n]+`), action: discard},
	{kind: token.Newline, re: anchored(`\n|\r\n?`), action: newline},
	{kind: token.EOF, re: anchored(` +`), action: discard},

	keyword(token.If, `if`),
	keyword(token.Else, `else`),
	keyword(token.Elif, `elif`),
	keyword(token.Fn, `fn`),
	keyword(token.Async, `async`),
	keyword(token.Bool, `true|false`),
	keyword(token.Transform, `transform`),
	keyword(token.And, `and`),
	keyword(token.Or, `or`),
	keyword(token.Not, `not`),
	keyword(token.Of, `of`),
	keyword(token.As, `as`),
	keyword(token.Import, `import`),
	keyword(token.From, `from`),

	{kind: token.URL, re: anchored(`(?:http|ws)s?://[^ \r\n]+`)},
	{kind: token.Path, re: anchored(
		`(?:(?:(?:\.\.|[-_.a-zA-Z0-9]+)/)+|\./)[-_.a-zA-Z0-9]+(?:\.(?:js|pipe))?` +
			`|[-_.a-zA-Z0-9]+\.(?:js|pipe)`,
	)},
	{kind: token.String, re: anchored(`(?s)'(?:[^\\]|\\.)*?'|"(?:[^\\]|\\.)*?"`)},
	{kind: token.Word, re: anchored(`#[^\[\] \r\n:]+`)},
	{kind: token.Symbol, re: anchored(`[a-zA-Z$_][a-zA-Z_0-9$-]*`)},
	{kind: token.Number, re: anchored(`(?:0|-?[1-9][0-9']*)(?:n|\.[0-9']+)?`)},

	{kind: token.Colon, re: anchored(`:`)},
	{kind: token.Pipe, re: anchored(`->`)},
	{kind: token.EPipe, re: anchored(`=>`)},
	{kind: token.Comparison, re: anchored(`!=|>=|<=|>|<|=`)},
	{kind: token.BasicMath, re: anchored(`[-+]`)},
	{kind: token.Power, re: anchored(`\*\*`)},
	{kind: token.Multiply, re: anchored(`\*`)},
	{kind: token.Divide, re: anchored(`/`)},
	{kind: token.Modulo, re: anchored(`%`)},
	{kind: token.Dot, re: anchored(`\.`)},
	{kind: token.At, re: anchored(`@[0-9]*`)},
	{kind: token.LParen, re: anchored(`\(`)},
	{kind: token.RParen, re: anchored(`\)`)},
	{kind: token.LBracket, re: anchored(`\[`)},
	{kind: token.RBracket, re: anchored(`\]`)},
	{kind: token.LCurlyBracket, re: anchored(`\{`)},
	{kind: token.RCurlyBracket, re: anchored(`\}`)},
}

var commentPattern = patterns[0].re

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)`)
}

func keyword(kind token.Kind, expr string) pattern {
	return pattern{kind: kind, re: anchored(expr), word: true}
}

// isIdentChar reports whether b may continue a Symbol.
func isIdentChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '$', b == '-':
		return true
	}
	return false
}
