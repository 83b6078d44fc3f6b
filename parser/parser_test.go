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

package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelang/pipecompile/cst"
	"github.com/pipelang/pipecompile/lexer"
	"github.com/pipelang/pipecompile/parser"
	"github.com/pipelang/pipecompile/token"
)

func parse(t *testing.T, source string) *cst.Node {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	root, errs := parser.Parse(tokens)
	require.Empty(t, errs)
	require.NotNil(t, root)
	return root
}

func parseError(t *testing.T, source string) *parser.SyntaxError {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	root, errs := parser.Parse(tokens)
	assert.Nil(t, root)
	require.Len(t, errs, 1)
	return errs[0]
}

// flowOf returns the flow of the only statement in root.
func flowOf(t *testing.T, root *cst.Node) *cst.Node {
	t.Helper()
	require.Len(t, root.Children, 1)
	flow := root.Node(cst.Statement).Node(cst.Flow)
	require.NotNil(t, flow)
	return flow
}

func text(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	root, errs := parser.Parse(nil)
	require.Empty(t, errs)
	assert.Equal(t, cst.Program, root.Rule)
	assert.Empty(t, root.Children)
}

func TestPowerIsLeftAssociative(t *testing.T) {
	t.Parallel()

	root := parse(t, "2 ** 3 ** 2")
	assert.Equal(t, strings.TrimLeft(`
program
  statement
    flow
      arithmetic
        higherMath
          power
            power
              value
                primitive
                  Number "2"
              Power "**"
              value
                primitive
                  Number "3"
            Power "**"
            value
              primitive
                Number "2"
`, "\n"), root.String())
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	root := parse(t, "1 - 2 - 3 * 4 % 5")
	arith := flowOf(t, root).Node(cst.Arithmetic)
	require.NotNil(t, arith)

	// ((1 - 2) - (3 * 4 % 5))
	require.Len(t, arith.Children, 3)
	left, ok := arith.Children[0].(*cst.Node)
	require.True(t, ok)
	assert.Equal(t, cst.Arithmetic, left.Rule)
	assert.Equal(t, []string{"1", "-", "2"}, text(left.Leaves()))

	right, ok := arith.Children[2].(*cst.Node)
	require.True(t, ok)
	assert.Equal(t, cst.HigherMath, right.Rule)
	inner, ok := right.Children[0].(*cst.Node)
	require.True(t, ok)
	assert.Equal(t, cst.HigherMath, inner.Rule, "* and % fold to the left")
	assert.Equal(t, []string{"3", "*", "4"}, text(inner.Leaves()))
}

func TestFunctionMap(t *testing.T) {
	t.Parallel()

	root := parse(t, "[1 2 3] -> * mul 3")
	assert.Equal(t, strings.TrimLeft(`
program
  statement
    flow
      arithmetic
        higherMath
          power
            value
              list
                LBracket "["
                value
                  primitive
                    Number "1"
                value
                  primitive
                    Number "2"
                value
                  primitive
                    Number "3"
                RBracket "]"
      pipelineStage
        functionMap
          Pipe "->"
          Multiply "*"
          Symbol "mul"
          arithmetic
            higherMath
              power
                value
                  primitive
                    Number "3"
`, "\n"), root.String())

	flow := flowOf(t, root)
	list, ok := flow.Node(cst.Arithmetic).Unwrap().(*cst.Node)
	require.True(t, ok)
	assert.Equal(t, cst.List, list.Rule)
	assert.Len(t, list.Nodes(cst.Value), 3)
}

func TestSetValue(t *testing.T) {
	t.Parallel()

	stages := flowOf(t, parse(t, "x -> print => list")).Nodes(cst.PipelineStage)
	require.Len(t, stages, 2)

	call := stages[0].Node(cst.FunctionCall)
	require.NotNil(t, call)
	name, ok := call.Token(token.Symbol)
	require.True(t, ok)
	assert.Equal(t, "print", name.Text)
	assert.Empty(t, call.Nodes(cst.Arithmetic))

	set := stages[1].Node(cst.SetValue)
	require.NotNil(t, set)
	bound, ok := set.Token(token.Symbol)
	require.True(t, ok)
	assert.Equal(t, "list", bound.Text)
}

func TestMultilinePipeline(t *testing.T) {
	t.Parallel()

	root := parse(t, `
[1 2 3] -> * mul 3
        -> print => list
        -> fn name n:
             n ** 4
`)
	flow := flowOf(t, root)
	assert.Len(t, flow.Tokens(token.Indent), 1)
	assert.Len(t, flow.Tokens(token.Outdent), 1)

	stages := flow.Nodes(cst.PipelineStage)
	require.Len(t, stages, 4)
	assert.NotNil(t, stages[0].Node(cst.FunctionMap))
	assert.NotNil(t, stages[1].Node(cst.FunctionCall))
	assert.NotNil(t, stages[2].Node(cst.SetValue))

	def := stages[3].Node(cst.FunctionCall).Node(cst.FunctionDefinition)
	require.NotNil(t, def)
	assert.Equal(t, []string{"name", "n"}, text(def.Tokens(token.Symbol)))

	body := def.Node(cst.Block)
	require.NotNil(t, body)
	stmts := body.Nodes(cst.Statement)
	require.Len(t, stmts, 1)
	power, ok := stmts[0].Unwrap().(*cst.Node)
	require.True(t, ok)
	assert.Equal(t, cst.Power, power.Rule)
	assert.Equal(t, []string{"n", "**", "4"}, text(power.Leaves()))
}

func TestFunctionDefinition(t *testing.T) {
	t.Parallel()

	root := parse(t, "f -> fn name n:\n  n ** 4")
	def := flowOf(t, root).Node(cst.PipelineStage).Node(cst.FunctionCall).Node(cst.FunctionDefinition)
	require.NotNil(t, def)

	fn, ok := def.Token(token.Fn)
	require.True(t, ok)
	assert.Equal(t, "fn", fn.Text)
	assert.Equal(t, []string{"name", "n"}, text(def.Tokens(token.Symbol)))
	assert.Equal(t, []string{"n", "**", "4"}, text(def.Node(cst.Block).Node(cst.Statement).Leaves()))
}

func TestArguments(t *testing.T) {
	t.Parallel()

	call := flowOf(t, parse(t, "xs -> reduce (a: a + 1) (@=> x: x) @ @2 3 * 2")).
		Node(cst.PipelineStage).Node(cst.FunctionCall)
	require.NotNil(t, call)

	var shape []string
	for _, c := range call.Children {
		switch c := c.(type) {
		case *cst.Node:
			shape = append(shape, c.Rule.String())
		case *cst.Leaf:
			shape = append(shape, c.Text)
		}
	}
	assert.Equal(t, []string{
		"->", "reduce",
		"(", "quickFunction", ")",
		"transform",
		"@", "@2",
		"arithmetic",
	}, shape)

	transform := call.Node(cst.Transform)
	assert.Equal(t, []string{"(", "@", "=>", "x", ":", "x", ")"}, text(transform.Leaves()))
}

func TestQuickFunction(t *testing.T) {
	t.Parallel()

	call := flowOf(t, parse(t, "xs -> * x: x + 1")).Node(cst.PipelineStage).Node(cst.FunctionMap)
	require.NotNil(t, call)
	fn := call.Node(cst.QuickFunction)
	require.NotNil(t, fn)
	assert.Equal(t, []string{"x", ":", "x", "+", "1"}, text(fn.Leaves()))
}

func TestParenthesizedStatement(t *testing.T) {
	t.Parallel()

	value := flowOf(t, parse(t, "(1 + 2) * 3")).Node(cst.Arithmetic).
		Node(cst.HigherMath).Node(cst.Power).Node(cst.Value)
	require.NotNil(t, value)
	lparen, ok := value.Token(token.LParen)
	require.True(t, ok)
	assert.Equal(t, 0, lparen.Pos.Offset)
	assert.NotNil(t, value.Node(cst.Statement))
}

func TestConditional(t *testing.T) {
	t.Parallel()

	root := parse(t, "if x:\n  y\nelif z:\n  w\nelif v:\n  u")
	cond := root.Node(cst.Statement).Node(cst.Conditional)
	require.NotNil(t, cond)
	assert.NotNil(t, cond.Node(cst.IfStatement))
	assert.Len(t, cond.Nodes(cst.ElifStatement), 2)
	assert.Nil(t, cond.Node(cst.ElseStatement))
}

func TestBlockEndingInPipeline(t *testing.T) {
	t.Parallel()

	root := parse(t, "if x:\n  a -> f\nb")
	stmts := root.Nodes(cst.Statement)
	require.Len(t, stmts, 2)

	block := stmts[0].Node(cst.Conditional).Node(cst.IfStatement).Node(cst.Block)
	require.NotNil(t, block)
	_, ok := block.Token(token.Outdent)
	assert.True(t, ok, "the block keeps its own outdent")
}

func TestStatementsAcrossLines(t *testing.T) {
	t.Parallel()

	root := parse(t, "a\n  -> f\nb -> g")
	assert.Len(t, root.Nodes(cst.Statement), 2)
}
