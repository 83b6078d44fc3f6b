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

// flow := arithmetic ( Indent? pipelineStage Outdent? )*
//
// An Indent is only taken when a stage follows it. An Outdent is only taken
// when it closes an Indent taken earlier in the same flow, so that a flow
// that ends a block leaves the block's Outdent alone.
func (p *parser) flow() (*cst.Node, *SyntaxError) {
	head, err := p.arithmetic()
	if err != nil {
		return nil, err
	}
	n := node(cst.Flow, head)

	var open int
	for {
		switch {
		case p.at(token.Pipe, token.EPipe):
		case p.at(token.Indent) && p.lookingAt(1, token.Pipe, token.EPipe):
			n.Children = append(n.Children, p.next())
			open++
		default:
			return n, nil
		}

		stage, err := p.pipelineStage()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, stage)

		if open > 0 && p.at(token.Outdent) {
			n.Children = append(n.Children, p.next())
			open--
		}
	}
}

// pipelineStage := functionCall | functionMap | setValue
func (p *parser) pipelineStage() (*cst.Node, *SyntaxError) {
	var (
		stage *cst.Node
		err   *SyntaxError
	)
	switch {
	case p.at(token.EPipe):
		stage, err = p.setValue()
	case p.at(token.Pipe) && p.lookingAt(1, token.Multiply):
		stage, err = p.call(cst.FunctionMap)
	case p.at(token.Pipe):
		stage, err = p.call(cst.FunctionCall)
	default:
		return nil, p.fail(cst.PipelineStage, token.Pipe, token.EPipe)
	}
	if err != nil {
		return nil, err
	}
	return node(cst.PipelineStage, stage), nil
}

// call parses both of
//
//	functionCall := '->' callee
//	functionMap  := '->' '*' callee
//
// where
//
//	callee := quickFunction
//	        | Symbol ( arithmetic | '(' quickFunction ')' | transform | '@' )*
//	        | functionDefinition
func (p *parser) call(rule cst.Rule) (*cst.Node, *SyntaxError) {
	pipe, err := p.expect(rule, token.Pipe)
	if err != nil {
		return nil, err
	}
	n := node(rule, pipe)
	if rule == cst.FunctionMap {
		star, err := p.expect(rule, token.Multiply)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, star)
	}

	switch {
	case p.at(token.Symbol) && p.lookingAt(1, token.Colon):
		fn, err := p.quickFunction()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, fn)

	case p.at(token.Symbol):
		n.Children = append(n.Children, p.next())
		if err := p.arguments(n); err != nil {
			return nil, err
		}

	case p.at(token.Fn):
		fn, err := p.functionDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, fn)

	default:
		return nil, p.fail(rule, token.Symbol, token.Fn)
	}
	return n, nil
}

// arguments appends the arguments of a named call to n.
func (p *parser) arguments(n *cst.Node) *SyntaxError {
	for {
		var (
			arg cst.Element
			err *SyntaxError
		)
		switch {
		case p.at(token.LParen) && p.lookingAt(1, token.At) && p.lookingAt(2, token.EPipe):
			arg, err = p.transform()

		case p.at(token.LParen) && p.lookingAt(1, token.Symbol) && p.lookingAt(2, token.Colon):
			lparen := p.next()
			fn, err := p.quickFunction()
			if err != nil {
				return err
			}
			rparen, err := p.expect(n.Rule, token.RParen)
			if err != nil {
				return err
			}
			n.Children = append(n.Children, lparen, fn, rparen)
			continue

		case p.at(token.At):
			arg = p.next()

		case p.starts(cst.Arithmetic):
			arg, err = p.arithmetic()

		default:
			return nil
		}
		if err != nil {
			return err
		}
		n.Children = append(n.Children, arg)
	}
}

// setValue := '=>' Symbol
func (p *parser) setValue() (*cst.Node, *SyntaxError) {
	bind, err := p.expect(cst.SetValue, token.EPipe)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(cst.SetValue, token.Symbol)
	if err != nil {
		return nil, err
	}
	return node(cst.SetValue, bind, name), nil
}

// quickFunction := Symbol ':' statement
func (p *parser) quickFunction() (*cst.Node, *SyntaxError) {
	param, err := p.expect(cst.QuickFunction, token.Symbol)
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(cst.QuickFunction, token.Colon)
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return node(cst.QuickFunction, param, colon, body), nil
}

// transform := '(' '@' '=>' quickFunction ')'
func (p *parser) transform() (*cst.Node, *SyntaxError) {
	n := node(cst.Transform)
	for _, kind := range []token.Kind{token.LParen, token.At, token.EPipe} {
		leaf, err := p.expect(cst.Transform, kind)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, leaf)
	}
	fn, err := p.quickFunction()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(cst.Transform, token.RParen)
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, fn, rparen)
	return n, nil
}
