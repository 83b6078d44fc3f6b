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

import (
	"errors"
	"fmt"

	"github.com/pipelang/pipecompile/token"
)

var (
	// ErrInvalidOutdent is returned, wrapped in an [*InvalidOutdentError],
	// when a line is dedented to a width that matches no open level.
	ErrInvalidOutdent = errors.New("invalid outdent")
	// ErrUnrecognizedInput is returned, wrapped in an
	// [*UnrecognizedInputError], when no token matches.
	ErrUnrecognizedInput = errors.New("unrecognized input")
)

// InvalidOutdentError reports a dedent that does not land on an open
// indentation level.
type InvalidOutdentError struct {
	Pos token.Pos
	// The indentation width of the offending line.
	Width int
	// The levels that were open, starting with 0.
	Open []int
}

func (e *InvalidOutdentError) Error() string {
	return fmt.Sprintf("%v: dedent to %d spaces does not match any open indentation level %v",
		ErrInvalidOutdent, e.Width, e.Open)
}

func (e *InvalidOutdentError) Unwrap() error {
	return ErrInvalidOutdent
}

// GetPosition returns where the offending line starts.
func (e *InvalidOutdentError) GetPosition() token.Pos {
	return e.Pos
}

// UnrecognizedInputError reports a position at which no token matches.
type UnrecognizedInputError struct {
	Pos token.Pos
	// The rune that could not be matched.
	Found rune
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("%v: unexpected character %q", ErrUnrecognizedInput, e.Found)
}

func (e *UnrecognizedInputError) Unwrap() error {
	return ErrUnrecognizedInput
}

// GetPosition returns the position of the unmatched character.
func (e *UnrecognizedInputError) GetPosition() token.Pos {
	return e.Pos
}
