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

// Package lexer converts source text into the token stream consumed by the
// parser.
//
// Tokens are matched by a fixed priority table: at every position the first
// pattern that matches wins. Leading whitespace at the start of a line is
// handled separately by an indentation stack, which turns changes in
// indentation into explicit [token.Indent] and [token.Outdent] markers. Every
// call to [Tokenize] owns its own stack, so the package is safe for
// concurrent use.
//
// Line comments and line breaks are consumed here and never appear in the
// output.
package lexer
