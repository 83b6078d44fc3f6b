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

const elseNote = "a bare `else` is not part of the grammar; the only clauses after `if` are `elif` clauses with a condition"

// program := statement*
func (p *parser) program() (*cst.Node, *SyntaxError) {
	n := node(cst.Program)
	for p.starts(cst.Statement) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, stmt)
	}
	if !p.at(token.EOF) {
		return nil, p.fail(cst.Program, append(cst.Statement.Production().First, token.EOF)...)
	}
	return n, nil
}

// statement := flow | conditional
func (p *parser) statement() (*cst.Node, *SyntaxError) {
	if err := p.enter(cst.Statement); err != nil {
		return nil, err
	}
	defer p.leave()

	var (
		inner *cst.Node
		err   *SyntaxError
	)
	switch {
	case p.at(token.If):
		inner, err = p.conditional()
	case p.starts(cst.Flow):
		inner, err = p.flow()
	default:
		return nil, p.fail(cst.Statement, cst.Statement.Production().First...)
	}
	if err != nil {
		return nil, err
	}
	return node(cst.Statement, inner), nil
}

// block := Indent statement* Outdent
func (p *parser) block() (*cst.Node, *SyntaxError) {
	indent, err := p.expect(cst.Block, token.Indent)
	if err != nil {
		return nil, err
	}
	n := node(cst.Block, indent)
	for p.starts(cst.Statement) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, stmt)
	}
	if !p.at(token.Outdent) {
		return nil, p.fail(cst.Block, append(cst.Statement.Production().First, token.Outdent)...)
	}
	n.Children = append(n.Children, p.next())
	return n, nil
}

// conditional := ifStatement elifStatement* elseStatement?
//
// elseStatement begins with `elif` like elifStatement does, so the loop
// always claims it and a conditional never contains one.
func (p *parser) conditional() (*cst.Node, *SyntaxError) {
	clause, err := p.clause(cst.IfStatement, token.If)
	if err != nil {
		return nil, err
	}
	n := node(cst.Conditional, clause)
	for p.at(token.Elif) {
		clause, err := p.clause(cst.ElifStatement, token.Elif)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, clause)
	}
	if p.at(token.Else) {
		err := p.fail(cst.Conditional, token.Elif)
		err.Note = elseNote
		return nil, err
	}
	return n, nil
}

// clause parses
//
//	ifStatement   := 'if' statement ':' block
//	elifStatement := 'elif' statement ':' block
func (p *parser) clause(rule cst.Rule, keyword token.Kind) (*cst.Node, *SyntaxError) {
	kw, err := p.expect(rule, keyword)
	if err != nil {
		return nil, err
	}
	cond, err := p.statement()
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(rule, token.Colon)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return node(rule, kw, cond, colon, body), nil
}

// functionDefinition := 'fn' Symbol Symbol+ ':' block
func (p *parser) functionDefinition() (*cst.Node, *SyntaxError) {
	fn, err := p.expect(cst.FunctionDefinition, token.Fn)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(cst.FunctionDefinition, token.Symbol)
	if err != nil {
		return nil, err
	}
	param, err := p.expect(cst.FunctionDefinition, token.Symbol)
	if err != nil {
		return nil, err
	}
	n := node(cst.FunctionDefinition, fn, name, param)
	for p.at(token.Symbol) {
		n.Children = append(n.Children, p.next())
	}
	colon, err := p.expect(cst.FunctionDefinition, token.Colon)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, colon, body)
	return n, nil
}
