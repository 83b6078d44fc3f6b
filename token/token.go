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

package token

import "fmt"

// Pos is a location in a source text.
type Pos struct {
	// Byte offset from the start of the text.
	Offset int
	// 1-based line and column. The column counts runes, not bytes.
	Line, Column int
}

// String returns "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether p was computed from a source text.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Token is a single lexical unit. Tokens are immutable values.
type Token struct {
	Kind Kind
	// The raw text of the token, exactly as it appears in the source.
	Text string
	Pos  Pos
}

// End returns the offset just past the end of t.
func (t Token) End() int {
	return t.Pos.Offset + len(t.Text)
}

// Synthetic reports whether t is an indentation marker that does not
// correspond to any source text.
func (t Token) Synthetic() bool {
	return t.Text == "" && (t.Kind == Indent || t.Kind == Outdent)
}

// IsKeyword reports whether k is one of the fixed keywords.
func (k Kind) IsKeyword() bool {
	return k >= If && k <= From
}

// IsMarker reports whether k is an indentation marker.
func (k Kind) IsMarker() bool {
	return k == Indent || k == Outdent
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%v@%v", t.Kind, t.Pos)
	}
	return fmt.Sprintf("%v(%q)@%v", t.Kind, t.Text, t.Pos)
}
