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

import "github.com/pipelang/pipecompile/token"

// Element is a child of a [Node]: either a *Node or a *Leaf.
type Element interface {
	// Start returns the position of the first token under this element.
	Start() token.Pos
	// End returns the offset just past the last token under this element.
	End() int

	isElement()
}

// Leaf is a token in the tree.
type Leaf struct {
	token.Token
}

// Start implements [Element].
func (l *Leaf) Start() token.Pos {
	return l.Pos
}

func (*Leaf) isElement() {}

// Node is a match of a grammar rule.
type Node struct {
	Rule     Rule
	Children []Element
}

func (*Node) isElement() {}

// Start implements [Element].
//
// An empty node has no position; it returns the zero Pos.
func (n *Node) Start() token.Pos {
	if len(n.Children) == 0 {
		return token.Pos{}
	}
	return n.Children[0].Start()
}

// End implements [Element].
func (n *Node) End() int {
	if len(n.Children) == 0 {
		return 0
	}
	return n.Children[len(n.Children)-1].End()
}

// Nodes returns the direct children of n produced by rule.
func (n *Node) Nodes(rule Rule) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c, ok := c.(*Node); ok && c.Rule == rule {
			out = append(out, c)
		}
	}
	return out
}

// Node returns the first direct child of n produced by rule, or nil.
func (n *Node) Node(rule Rule) *Node {
	for _, c := range n.Children {
		if c, ok := c.(*Node); ok && c.Rule == rule {
			return c
		}
	}
	return nil
}

// Tokens returns the direct leaf children of n of the given kind.
func (n *Node) Tokens(kind token.Kind) []token.Token {
	var out []token.Token
	for _, c := range n.Children {
		if c, ok := c.(*Leaf); ok && c.Kind == kind {
			out = append(out, c.Token)
		}
	}
	return out
}

// Token returns the first direct leaf child of n of the given kind.
func (n *Node) Token(kind token.Kind) (token.Token, bool) {
	for _, c := range n.Children {
		if c, ok := c.(*Leaf); ok && c.Kind == kind {
			return c.Token, true
		}
	}
	return token.Token{}, false
}

// Leaves returns every token under n, in source order.
func (n *Node) Leaves() []token.Token {
	var out []token.Token
	Walk(n, func(e Element) bool {
		if l, ok := e.(*Leaf); ok {
			out = append(out, l.Token)
		}
		return true
	})
	return out
}

// Unwrap descends through nodes that have exactly one child and returns the
// first element that does not. For example, a statement consisting of a bare
// number unwraps to the Number leaf.
func (n *Node) Unwrap() Element {
	var e Element = n
	for {
		node, ok := e.(*Node)
		if !ok || len(node.Children) != 1 {
			return e
		}
		e = node.Children[0]
	}
}

// Walk visits e and its descendants in depth-first pre-order. If visit
// returns false, the children of that element are skipped.
func Walk(e Element, visit func(Element) bool) {
	if !visit(e) {
		return
	}
	if n, ok := e.(*Node); ok {
		for _, c := range n.Children {
			Walk(c, visit)
		}
	}
}
