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
	"strings"
	"unicode/utf8"

	"github.com/pipelang/pipecompile/token"
)

const bom = "\uFEFF"

// Tokenize converts source into tokens.
//
// On failure the returned error is an [*InvalidOutdentError] or an
// [*UnrecognizedInputError] and no tokens are returned.
func Tokenize(source string) ([]token.Token, error) {
	l := &lexer{
		src:       source,
		line:      1,
		column:    1,
		lineBegin: true,
		indent:    newIndenter(),
	}
	if strings.HasPrefix(source, bom) {
		l.pos = len(bom)
	}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

type lexer struct {
	src string
	pos int

	line   int
	column int // In runes, for pos.
	// Set after a line break, until the indentation of the line has been
	// looked at.
	lineBegin bool

	indent *indenter
	tokens []token.Token
}

func (l *lexer) run() error {
	for l.pos < len(l.src) {
		if l.lineBegin {
			l.lineBegin = false
			if err := l.indentation(); err != nil {
				return err
			}
			continue
		}
		if err := l.next(); err != nil {
			return err
		}
	}

	pos := l.position()
	for range l.indent.flush() {
		l.push(token.Outdent, "", pos)
	}
	return nil
}

// next matches a single entry of the priority table at the current
// position.
func (l *lexer) next() error {
	rest := l.src[l.pos:]
	for _, p := range patterns {
		n := len(p.re.FindString(rest))
		if n == 0 {
			continue
		}
		if p.word && n < len(rest) && isIdentChar(rest[n]) {
			continue
		}

		pos := l.position()
		l.advance(n)
		switch p.action {
		case emit:
			l.push(p.kind, rest[:n], pos)
		case newline:
			l.lineBegin = true
		}
		return nil
	}

	r, _ := utf8.DecodeRuneInString(rest)
	return &UnrecognizedInputError{Pos: l.position(), Found: r}
}

// indentation runs the indentation stack over the leading spaces of the
// current line. Lines with no content other than a comment do not take
// part; their spaces are left for the whitespace pattern.
func (l *lexer) indentation() error {
	start := l.pos
	end := start
	for end < len(l.src) && l.src[end] == ' ' {
		end++
	}
	if l.blank(end) {
		return nil
	}

	width := end - start
	ch, ok := l.indent.line(width)
	if !ok {
		return &InvalidOutdentError{
			Pos:   l.position(),
			Width: width,
			Open:  l.indent.levels(),
		}
	}

	spaces := l.src[start:end]
	pos := l.position()
	switch {
	case ch.indent:
		l.push(token.Indent, spaces, pos)
	case ch.outdents > 0:
		for i := range ch.outdents {
			if i == ch.outdents-1 {
				l.push(token.Outdent, spaces, pos)
			} else {
				l.push(token.Outdent, "", pos)
			}
		}
	}
	l.advance(width)
	return nil
}

// blank reports whether the line has nothing but a comment from offset on.
func (l *lexer) blank(offset int) bool {
	rest := l.src[offset:]
	if rest == "" || rest[0] == '\n' || rest[0] == '\r' {
		return true
	}
	return commentPattern.MatchString(rest)
}

func (l *lexer) push(kind token.Kind, text string, pos token.Pos) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Text: text, Pos: pos})
}

// advance moves past the next n bytes, keeping track of line breaks in
// them.
func (l *lexer) advance(n int) {
	text := l.src[l.pos : l.pos+n]
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		switch r {
		case '\r':
			if i < len(text) && text[i] == '\n' {
				continue
			}
			fallthrough
		case '\n':
			l.line++
			l.column = 1
		default:
			l.column++
		}
	}
	l.pos += n
}

// position returns the position of l.pos.
func (l *lexer) position() token.Pos {
	return token.Pos{Offset: l.pos, Line: l.line, Column: l.column}
}
