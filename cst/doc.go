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

// Package cst defines the concrete syntax tree produced by the parser.
//
// Every grammar rule that matches produces exactly one [Node]; every token the
// parser consumes becomes a [Leaf] in the order it appeared. Concatenating
// the text of all leaves of a tree therefore reproduces the source with
// whitespace, comments and line breaks removed.
//
// The grammar itself is described by the read-only [Grammar] table.
package cst

//go:generate go run github.com/pipelang/pipecompile/internal/enum rule.yaml
