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
	"github.com/pipelang/pipecompile/cst"
	"github.com/pipelang/pipecompile/token"
)

// primitive := Number | Word | String | Bool | Symbol
func (p *parser) primitive() (*cst.Node, *SyntaxError) {
	if !p.starts(cst.Primitive) {
		return nil, p.fail(cst.Primitive, cst.Primitive.Production().First...)
	}
	return node(cst.Primitive, p.next()), nil
}

// value := primitive | '(' statement ')' | list
func (p *parser) value() (*cst.Node, *SyntaxError) {
	if err := p.enter(cst.Value); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.starts(cst.Primitive):
		prim, err := p.primitive()
		if err != nil {
			return nil, err
		}
		return node(cst.Value, prim), nil

	case p.at(token.LParen):
		n := node(cst.Value, p.next())
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(cst.Value, token.RParen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, stmt, rparen)
		return n, nil

	case p.at(token.LBracket):
		list, err := p.list()
		if err != nil {
			return nil, err
		}
		return node(cst.Value, list), nil
	}
	return nil, p.fail(cst.Value, cst.Value.Production().First...)
}

// list := '[' value* ']'
func (p *parser) list() (*cst.Node, *SyntaxError) {
	lbracket, err := p.expect(cst.List, token.LBracket)
	if err != nil {
		return nil, err
	}
	n := node(cst.List, lbracket)
	for p.starts(cst.Value) {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, v)
	}
	if !p.at(token.RBracket) {
		return nil, p.fail(cst.List, append(cst.Value.Production().First, token.RBracket)...)
	}
	n.Children = append(n.Children, p.next())
	return n, nil
}

// power := value ( '**' value )*
func (p *parser) power() (*cst.Node, *SyntaxError) {
	return p.fold(cst.Power, p.value, token.Power)
}

// higherMath := power ( ( '*' | '/' | '%' ) power )*
func (p *parser) higherMath() (*cst.Node, *SyntaxError) {
	return p.fold(cst.HigherMath, p.power, token.Multiply, token.Divide, token.Modulo)
}

// arithmetic := higherMath ( ( '+' | '-' ) higherMath )*
func (p *parser) arithmetic() (*cst.Node, *SyntaxError) {
	return p.fold(cst.Arithmetic, p.higherMath, token.BasicMath)
}

// fold parses a left-associative chain of operand separated by ops.
//
// Without operators the result is a node with the single operand. Otherwise
// each operator produces a node of the form (left op right), where left is
// the node for everything before the operator.
func (p *parser) fold(rule cst.Rule, operand func() (*cst.Node, *SyntaxError), ops ...token.Kind) (*cst.Node, *SyntaxError) {
	first, err := operand()
	if err != nil {
		return nil, err
	}
	n := node(rule, first)
	for p.at(ops...) {
		op := p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		if len(n.Children) > 1 {
			n = node(rule, n)
		}
		n.Children = append(n.Children, op, right)
	}
	return n, nil
}
