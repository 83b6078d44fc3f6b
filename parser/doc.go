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

// Package parser builds a concrete syntax tree from a token stream.
//
// The parser is predictive recursive descent: every decision looks at no
// more than three tokens, and every grammar rule in [cst.Grammar] is a
// method that produces one [cst.Node]. The three binary operator levels
// (`+ -`, `* / %` and `**`) are all left-associative, including `**`.
//
// Parsing stops at the first syntax error; no partial tree is returned.
package parser
