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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelang/pipecompile/token"
)

func TestKindNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EPipe", token.EPipe.String())
	assert.Equal(t, "Kind(200)", token.Kind(200).String())

	k, ok := token.KindByName("LCurlyBracket")
	assert.True(t, ok)
	assert.Equal(t, token.LCurlyBracket, k)

	// Kinds that never leave the lexer cannot be looked up.
	for _, name := range []string{"EOF", "Comment", "Newline", "Nonsense"} {
		_, ok := token.KindByName(name)
		assert.False(t, ok, name)
	}
}

func TestKindClasses(t *testing.T) {
	t.Parallel()

	for _, k := range []token.Kind{token.If, token.Elif, token.Bool, token.From} {
		assert.True(t, k.IsKeyword(), k)
	}
	for _, k := range []token.Kind{token.EOF, token.URL, token.Symbol, token.Indent} {
		assert.False(t, k.IsKeyword(), k)
	}
	assert.True(t, token.Indent.IsMarker())
	assert.True(t, token.Outdent.IsMarker())
	assert.False(t, token.Colon.IsMarker())
}

func TestToken(t *testing.T) {
	t.Parallel()

	sym := token.Token{Kind: token.Symbol, Text: "mul", Pos: token.Pos{Offset: 13, Line: 1, Column: 14}}
	assert.Equal(t, 16, sym.End())
	assert.False(t, sym.Synthetic())
	assert.Equal(t, `Symbol("mul")@1:14`, sym.String())

	indent := token.Token{Kind: token.Indent, Text: "  ", Pos: token.Pos{Offset: 4, Line: 2, Column: 1}}
	assert.False(t, indent.Synthetic())
	assert.Equal(t, 6, indent.End())

	outdent := token.Token{Kind: token.Outdent, Pos: token.Pos{Offset: 9, Line: 3, Column: 1}}
	assert.True(t, outdent.Synthetic())
	assert.Equal(t, 9, outdent.End())
	assert.Equal(t, "Outdent@3:1", outdent.String())

	assert.True(t, sym.Pos.IsValid())
	assert.False(t, token.Pos{}.IsValid())
}
