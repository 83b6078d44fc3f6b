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

// Package pipecompile is the front end of the pipeline language compiler.
// It turns source files into token streams and concrete syntax trees, and
// reports lexical and syntax errors with source positions.
//
// The work is split across packages, each usable on its own:
//  1. Tokenizing source into tokens, with indentation turned into explicit
//     Indent and Outdent markers.
//     Also see: lexer.Tokenize
//  2. Parsing tokens into a concrete syntax tree.
//     Also see: parser.Parse
//  3. Rendering errors as diagnostics.
//     Also see: report.Report
//
// This package ties the steps together and runs them for many files at
// once, using multiple CPU cores.
//
// # Resolvers
//
// A Resolver is how the compiler locates the source of the files it is
// asked to compile. SourceResolver reads them from the file system, or
// from any other accessor, optionally searching a list of import paths.
// CompositeResolver tries several resolvers in order.
//
// # Compiler
//
// A Compiler accepts a list of file names and produces a Result for each.
// Only the Resolver field is required. A minimal Compiler, that loads
// files relative to the current working directory, can be had with the
// following simple snippet:
//
//	compiler := pipecompile.Compiler{
//	    Resolver: &pipecompile.SourceResolver{},
//	}
//
// This minimal Compiler will use default parallelism, equal to the number
// of CPU cores detected, and it will fail fast at the first sign of any
// error. Both can be customized by setting other fields.
package pipecompile
