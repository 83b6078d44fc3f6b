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

// Package token defines the tokens exchanged between the lexer and the
// parser.
//
// # Synthetic Tokens
//
// The lexer synthesizes [Indent] and [Outdent] markers from leading
// whitespace. A marker that consumed a run of spaces carries that text;
// markers produced purely by popping the indentation stack (including the
// ones flushed at end of input) have no text and a zero-width position at
// the point where they were produced. See [Token.Synthetic].
package token

//go:generate go run github.com/pipelang/pipecompile/internal/enum kind.yaml
