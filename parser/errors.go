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
	"errors"
	"fmt"
	"strings"

	"github.com/pipelang/pipecompile/cst"
	"github.com/pipelang/pipecompile/token"
)

var (
	// ErrUnexpectedToken is the class of [*SyntaxError] returned when a rule
	// cannot match the current token.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrNestingTooDeep is the class of [*SyntaxError] returned when the
	// input nests deeper than the parser allows.
	ErrNestingTooDeep = errors.New("nesting too deep")
)

// SyntaxError reports a token that the grammar does not allow.
type SyntaxError struct {
	// Either ErrUnexpectedToken or ErrNestingTooDeep.
	Err error
	// The rule that was being matched.
	Rule cst.Rule
	// The tokens that would have been accepted instead of Found.
	Expected []token.Kind
	// The offending token. Its Kind is token.EOF at end of input.
	Found token.Token
	// Additional explanation, if any.
	Note string
}

func (e *SyntaxError) Error() string {
	if e.Err == ErrNestingTooDeep {
		return fmt.Sprintf("%v in %v: more than %d levels", e.Err, e.Rule, maxDepth)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "unexpected %s in %v", describe(e.Found), e.Rule)
	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "; expected %v", e.Expected[0])
	default:
		b.WriteString("; expected one of ")
		for i, k := range e.Expected {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k.String())
		}
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// GetPosition returns the position of the offending token.
func (e *SyntaxError) GetPosition() token.Pos {
	return e.Found.Pos
}

func describe(t token.Token) string {
	switch {
	case t.Kind == token.EOF:
		return "end of input"
	case t.Text == "":
		return t.Kind.String()
	default:
		return fmt.Sprintf("%v %q", t.Kind, t.Text)
	}
}
