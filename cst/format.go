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
	"strings"
)

// String returns an indented dump of the tree, one element per line.
// Synthesized markers are printed without text.
func (n *Node) String() string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, e Element, depth int) {
	for range depth {
		b.WriteString("  ")
	}
	switch e := e.(type) {
	case *Node:
		b.WriteString(e.Rule.String())
		b.WriteByte('\n')
		for _, c := range e.Children {
			dump(b, c, depth+1)
		}
	case *Leaf:
		if e.Synthetic() {
			fmt.Fprintf(b, "%v\n", e.Kind)
		} else {
			fmt.Fprintf(b, "%v %q\n", e.Kind, e.Text)
		}
	}
}
