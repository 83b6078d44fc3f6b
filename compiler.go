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

package pipecompile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"

	"github.com/pipelang/pipecompile/cst"
	"github.com/pipelang/pipecompile/lexer"
	"github.com/pipelang/pipecompile/parser"
	"github.com/pipelang/pipecompile/reporter"
	"github.com/pipelang/pipecompile/token"
)

var (
	// ErrEmptySource is reported as a warning for files that contain no
	// statements at all.
	ErrEmptySource = errors.New("file contains no statements")
	// ErrInvalidUTF8 is reported for files that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
)

// Compiler turns pipeline source files into token streams and concrete
// syntax trees.
//
// Each file is handled in two steps:
//  1. Tokenizing the source, including synthesizing Indent and Outdent
//     markers from leading whitespace.
//  2. Parsing the tokens into a concrete syntax tree.
//
// Files are independent of one another, so they are processed in
// parallel.
type Compiler struct {
	// Resolves paths into source code. This field is required.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the compilation after encountering any
	// errors and ignores all warnings.
	Reporter reporter.Reporter
	// Receives debug events for each file. Nothing is logged if nil.
	Logger *slog.Logger
}

// Result is the outcome of compiling a single file.
type Result struct {
	Path   string
	Source string
	Tokens []token.Token
	CST    *cst.Node
}

// Compile compiles the given files. Results are returned in the same order
// as files; a path named more than once is only compiled once and yields
// the same *Result in each position.
//
// If the reporter aborts on an error, that error is returned. If errors
// were reported but the reporter chose to continue, every file is still
// compiled and [reporter.ErrInvalidSource] is returned at the end.
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]*Result, error) {
	if len(files) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := executor{
		c:       c,
		h:       reporter.NewHandler(c.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		log:     logger,
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.compile(ctx, f)
	}

	out := make([]*Result, len(files))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			if err := e.h.Error(); err != nil {
				return nil, err
			}
			return nil, ctx.Err()
		}
		if r.err != nil {
			if err := e.h.Error(); err != nil {
				return nil, err
			}
			return nil, r.err
		}
		out[i] = r.res
	}

	if err := e.h.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

type result struct {
	ready chan struct{}
	res   *Result
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(res *Result) {
	r.res = res
	close(r.ready)
}

type executor struct {
	c      *Compiler
	h      *reporter.Handler
	s      *semaphore.Weighted
	log    *slog.Logger
	cancel context.CancelFunc

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) compile(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doCompile(ctx, file, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	res, err := e.run(file)
	if err != nil {
		// Stop anything still waiting on the semaphore.
		e.cancel()
		r.fail(err)
		return
	}
	r.complete(res)
}

// run compiles a single file. A nil error with a Result lacking a CST means
// errors were reported and the reporter chose to continue.
func (e *executor) run(file string) (*Result, error) {
	log := e.log.With(slog.String("path", file))

	src, err := e.load(file)
	if err != nil {
		return nil, e.h.HandleError(err)
	}
	res := &Result{Path: file, Source: src}
	log.Debug("loaded source", slog.Int("bytes", len(src)))

	if !utf8.ValidString(src) {
		return res, e.h.HandleError(reporter.Error(reporter.At(file, token.Pos{Line: 1, Column: 1}), ErrInvalidUTF8))
	}

	res.Tokens, err = lexer.Tokenize(src)
	if err != nil {
		log.Debug("tokenizing failed", slog.Any("error", err))
		return res, e.h.HandleError(e.positioned(file, err))
	}
	log.Debug("tokenized", slog.Int("tokens", len(res.Tokens)))

	if len(res.Tokens) == 0 {
		e.h.HandleWarning(reporter.At(file, token.Pos{Line: 1, Column: 1}), ErrEmptySource)
	}

	root, errs := parser.Parse(res.Tokens)
	for _, serr := range errs {
		log.Debug("parsing failed", slog.Any("error", serr))
		if err := e.h.HandleError(e.positioned(file, serr)); err != nil {
			return res, err
		}
	}
	if len(errs) > 0 {
		return res, nil
	}
	res.CST = root
	log.Debug("parsed", slog.Int("statements", len(root.Nodes(cst.Statement))))
	return res, nil
}

func (e *executor) load(file string) (string, error) {
	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		return "", err
	}
	if sr.Source == nil {
		return "", fmt.Errorf("resolver returned no source for %q", file)
	}
	if c, ok := sr.Source.(io.Closer); ok {
		defer c.Close()
	}
	data, err := io.ReadAll(sr.Source)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", file, err)
	}
	return string(data), nil
}

// positioned attaches file to the position carried by a lexer or parser
// error.
func (e *executor) positioned(file string, err error) error {
	var p interface{ GetPosition() token.Pos }
	if errors.As(err, &p) {
		return reporter.Error(reporter.At(file, p.GetPosition()), err)
	}
	return err
}
