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

// Package reporter contains the types used for reporting errors from the
// compiler. Callers can supply a [Reporter] to decide, error by error,
// whether compilation should continue.
package reporter

import (
	"errors"
	"fmt"

	"github.com/pipelang/pipecompile/token"
)

// ErrInvalidSource is the error returned by the compiler when errors were
// reported but the reporter chose to keep going instead of aborting.
var ErrInvalidSource = errors.New("compile failed: invalid source")

// Position is a location in a named source file.
type Position struct {
	Filename string
	// Byte offset from the start of the file.
	Offset int
	// 1-based; the column counts runes.
	Line, Col int
}

// At returns the position of pos within filename.
func At(filename string, pos token.Pos) Position {
	return Position{Filename: filename, Offset: pos.Offset, Line: pos.Line, Col: pos.Column}
}

// String returns "file:line:col", omitting whatever is unknown.
func (p Position) String() string {
	switch {
	case p.Line <= 0 && p.Filename == "":
		return "<input>"
	case p.Line <= 0:
		return p.Filename
	case p.Filename == "":
		return fmt.Sprintf("<input>:%d:%d", p.Line, p.Col)
	default:
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
	}
}

// ErrorWithPos is an error about a source file that includes the location
// in the file that caused it.
//
// The value of Error() contains both the position and the underlying error.
// The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() Position
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and position.
func Error(pos Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%v: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() Position {
	return e.pos
}

func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
