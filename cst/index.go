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
	"slices"

	"github.com/pipelang/pipecompile/internal/interval"
	"github.com/pipelang/pipecompile/token"
)

// Index answers position queries over a tree.
//
// Synthesized markers take up no space in the source and cannot be found
// through an Index.
type Index struct {
	tokens interval.Map[int, located]
}

type located struct {
	leaf *Leaf
	// Enclosing nodes, outermost first.
	path []*Node
}

// NewIndex builds an index over every token under root.
//
// It panics if two tokens in the tree cover the same bytes.
func NewIndex(root *Node) *Index {
	ix := new(Index)
	var path []*Node
	var visit func(Element)
	visit = func(e Element) {
		switch e := e.(type) {
		case *Node:
			path = append(path, e)
			for _, c := range e.Children {
				visit(c)
			}
			path = path[:len(path)-1]
		case *Leaf:
			if e.Text == "" {
				return
			}
			overlap, ok := ix.tokens.Insert(e.Pos.Offset, e.End()-1, located{leaf: e, path: slices.Clone(path)})
			if !ok {
				prev := overlap.Value.leaf
				panic(fmt.Sprintf("cst: %v %q at offset %d overlaps %v %q at offset %d",
					e.Kind, e.Text, e.Pos.Offset, prev.Kind, prev.Text, prev.Pos.Offset))
			}
		}
	}
	visit(root)
	return ix
}

// Len returns the number of indexed tokens.
func (ix *Index) Len() int {
	return ix.tokens.Len()
}

// TokenAt returns the token that covers the byte at offset.
func (ix *Index) TokenAt(offset int) (token.Token, bool) {
	in, ok := ix.tokens.Get(offset)
	if !ok {
		return token.Token{}, false
	}
	return in.Value.leaf.Token, true
}

// Enclosing returns the chain of nodes containing the token at offset,
// starting with the root. It returns nil if no token covers offset.
func (ix *Index) Enclosing(offset int) []*Node {
	in, ok := ix.tokens.Get(offset)
	if !ok {
		return nil
	}
	return slices.Clone(in.Value.path)
}
