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

package parser

import (
	"unicode/utf8"

	"github.com/pipelang/pipecompile/cst"
	"github.com/pipelang/pipecompile/token"
)

// maxDepth bounds how deeply statements and values may nest.
const maxDepth = 512

// Parse builds a tree rooted at a [cst.Program] node from tokens.
//
// On failure the tree is nil and the returned slice holds the syntax errors
// that stopped the parse.
func Parse(tokens []token.Token) (*cst.Node, []*SyntaxError) {
	p := &parser{tokens: tokens, eof: token.Token{Kind: token.EOF, Pos: endOf(tokens)}}
	root, err := p.program()
	if err != nil {
		return nil, []*SyntaxError{err}
	}
	return root, nil
}

type parser struct {
	tokens []token.Token
	pos    int
	depth  int
	eof    token.Token
}

// peek returns the token n places ahead of the cursor.
func (p *parser) peek(n int) token.Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.eof
}

// at reports whether the current token is one of kinds.
func (p *parser) at(kinds ...token.Kind) bool {
	return p.lookingAt(0, kinds...)
}

func (p *parser) lookingAt(n int, kinds ...token.Kind) bool {
	k := p.peek(n).Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// starts reports whether the current token can begin rule.
func (p *parser) starts(rule cst.Rule) bool {
	return rule.Production().CanStart(p.peek(0).Kind)
}

// next consumes the current token.
func (p *parser) next() *cst.Leaf {
	leaf := &cst.Leaf{Token: p.peek(0)}
	p.pos++
	return leaf
}

// expect consumes a token of the given kind.
func (p *parser) expect(rule cst.Rule, kind token.Kind) (*cst.Leaf, *SyntaxError) {
	if !p.at(kind) {
		return nil, p.fail(rule, kind)
	}
	return p.next(), nil
}

func (p *parser) fail(rule cst.Rule, expected ...token.Kind) *SyntaxError {
	return &SyntaxError{
		Err:      ErrUnexpectedToken,
		Rule:     rule,
		Expected: expected,
		Found:    p.peek(0),
	}
}

// enter guards against unbounded recursion. Each successful call must be
// paired with a call to leave.
func (p *parser) enter(rule cst.Rule) *SyntaxError {
	if p.depth >= maxDepth {
		return &SyntaxError{Err: ErrNestingTooDeep, Rule: rule, Found: p.peek(0)}
	}
	p.depth++
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// endOf returns the position just past the last token.
func endOf(tokens []token.Token) token.Pos {
	if len(tokens) == 0 {
		return token.Pos{Line: 1, Column: 1}
	}
	last := tokens[len(tokens)-1]
	pos := last.Pos
	pos.Offset = last.End()

	text, start := last.Text, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			fallthrough
		case '\n':
			pos.Line++
			pos.Column = 1
			start = i + 1
		}
	}
	pos.Column += utf8.RuneCountInString(text[start:])
	return pos
}

func node(rule cst.Rule, children ...cst.Element) *cst.Node {
	return &cst.Node{Rule: rule, Children: children}
}
