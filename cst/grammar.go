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

package cst

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pipelang/pipecompile/token"
)

// Production is an entry of the grammar table.
type Production struct {
	Rule Rule
	// The right-hand side of the rule.
	Definition string
	// The tokens that can begin a match of the rule.
	First []token.Kind
}

// String returns the production as "name := definition".
func (p Production) String() string {
	return fmt.Sprintf("%v := %s", p.Rule, p.Definition)
}

// CanStart reports whether a match of the rule can begin with kind.
func (p Production) CanStart(kind token.Kind) bool {
	return slices.Contains(p.First, kind)
}

var (
	firstPrimitive = []token.Kind{token.Number, token.Word, token.String, token.Bool, token.Symbol}
	firstValue     = append(slices.Clip(firstPrimitive), token.LParen, token.LBracket)
	firstStatement = append(slices.Clip(firstValue), token.If)
)

var grammar = [ruleCount]Production{
	Program:   {Definition: "statement*", First: firstStatement},
	Statement: {Definition: "flow | conditional", First: firstStatement},
	Primitive: {Definition: "Number | Word | String | Bool | Symbol", First: firstPrimitive},
	Value:     {Definition: "primitive | '(' statement ')' | list", First: firstValue},
	List:      {Definition: "'[' value* ']'", First: []token.Kind{token.LBracket}},

	Power:      {Definition: "value ( '**' value )*", First: firstValue},
	HigherMath: {Definition: "power ( ( '*' | '/' | '%' ) power )*", First: firstValue},
	Arithmetic: {Definition: "higherMath ( ( '+' | '-' ) higherMath )*", First: firstValue},

	Flow:          {Definition: "arithmetic ( Indent? pipelineStage Outdent? )*", First: firstValue},
	PipelineStage: {Definition: "functionCall | functionMap | setValue", First: []token.Kind{token.Pipe, token.EPipe}},
	FunctionCall: {
		Definition: "'->' ( quickFunction | Symbol ( arithmetic | '(' quickFunction ')' | transform | '@' )* | functionDefinition )",
		First:      []token.Kind{token.Pipe},
	},
	FunctionMap: {
		Definition: "'->' '*' ( quickFunction | Symbol ( arithmetic | '(' quickFunction ')' | transform | '@' )* | functionDefinition )",
		First:      []token.Kind{token.Pipe},
	},
	SetValue: {Definition: "'=>' Symbol", First: []token.Kind{token.EPipe}},

	Block:         {Definition: "Indent statement* Outdent", First: []token.Kind{token.Indent}},
	Conditional:   {Definition: "ifStatement elifStatement* elseStatement?", First: []token.Kind{token.If}},
	IfStatement:   {Definition: "'if' statement ':' block", First: []token.Kind{token.If}},
	ElifStatement: {Definition: "'elif' statement ':' block", First: []token.Kind{token.Elif}},
	ElseStatement: {Definition: "'elif' statement ':' block", First: []token.Kind{token.Elif}},

	FunctionDefinition: {Definition: "'fn' Symbol Symbol+ ':' block", First: []token.Kind{token.Fn}},
	QuickFunction:      {Definition: "Symbol ':' statement", First: []token.Kind{token.Symbol}},
	Transform:          {Definition: "'(' '@' '=>' quickFunction ')'", First: []token.Kind{token.LParen}},
}

func init() {
	for r := range grammar {
		grammar[r].Rule = Rule(r)
	}
}

// Production returns the grammar table entry for r.
func (r Rule) Production() Production {
	if int(r) >= len(grammar) {
		return Production{Rule: r}
	}
	p := grammar[r]
	p.First = slices.Clone(p.First)
	return p
}

// Grammar yields every production, with [Program] first.
func Grammar() iter.Seq[Production] {
	return func(yield func(Production) bool) {
		for r := range Rule(ruleCount) {
			if !yield(r.Production()) {
				return
			}
		}
	}
}
