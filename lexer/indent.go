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

import "slices"

// indenter tracks the open indentation levels of one tokenization.
//
// The stack is strictly increasing and always starts with 0.
type indenter struct {
	stack []int
}

// change describes what a line's indentation does to the stack.
type change struct {
	// Whether a new level was opened.
	indent bool
	// The number of levels closed.
	outdents int
}

func newIndenter() *indenter {
	return &indenter{stack: []int{0}}
}

func (in *indenter) top() int {
	return in.stack[len(in.stack)-1]
}

// depth returns the number of open levels, not counting the base level.
func (in *indenter) depth() int {
	return len(in.stack) - 1
}

// line applies a line indented by width spaces. It returns false if width
// closes levels without landing on one that is open; the stack is left
// untouched in that case.
func (in *indenter) line(width int) (change, bool) {
	top := in.top()
	switch {
	case width > top:
		in.stack = append(in.stack, width)
		return change{indent: true}, true
	case width == top:
		return change{}, true
	}

	i := slices.Index(in.stack, width)
	if i < 0 {
		return change{}, false
	}
	n := len(in.stack) - 1 - i
	in.stack = in.stack[:i+1]
	return change{outdents: n}, true
}

// flush closes every open level and returns how many there were.
func (in *indenter) flush() int {
	n := in.depth()
	in.stack = in.stack[:1]
	return n
}

// levels returns a copy of the open levels.
func (in *indenter) levels() []int {
	return slices.Clone(in.stack)
}
