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

package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pipelang/pipecompile"
	"github.com/pipelang/pipecompile/report"
	"github.com/pipelang/pipecompile/reporter"
)

const sourceExt = ".pipe"

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path|glob]...",
		Short: "Tokenize and parse files, reporting every error",
		Long: `Check tokenizes and parses every named file. Directories are searched
recursively for .pipe files, and arguments that do not name a file are
expanded as globs, where ** matches any number of directories. Without
arguments the working directory is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expand(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.New("no source files found")
			}
			opts.logger.Info("checking", slog.Int("files", len(files)))

			results, err := opts.compile(cmd.Context(), cmd.ErrOrStderr(), files)
			if err != nil {
				return err
			}
			opts.logger.Info("no errors", slog.Int("files", len(results)))
			return nil
		},
	}
}

// compile compiles files and renders every diagnostic to stderr, ordered
// by file and position.
func (o *options) compile(ctx context.Context, stderr io.Writer, files []string) ([]*pipecompile.Result, error) {
	sources := &sourceCache{resolver: o.resolver(), files: map[string]*report.IndexedFile{}}

	var (
		mu    sync.Mutex
		diags report.Report
	)
	add := func(level report.Level, err reporter.ErrorWithPos) {
		mu.Lock()
		defer mu.Unlock()
		diags.FromError(level, err, sources.file(err.GetPosition().Filename))
	}
	compiler := pipecompile.Compiler{
		Resolver:       sources,
		MaxParallelism: o.config.MaxParallelism,
		Logger:         o.logger,
		Reporter: reporter.NewReporter(
			func(err reporter.ErrorWithPos) error {
				add(report.Error, err)
				return nil
			},
			func(err reporter.ErrorWithPos) {
				add(report.Warning, err)
			},
		),
	}
	results, err := compiler.Compile(ctx, files...)

	slices.SortStableFunc(diags, func(a, b report.Diagnostic) int {
		af, as, _ := a.Primary()
		bf, bs, _ := b.Primary()
		return cmp.Or(strings.Compare(af.Path, bf.Path), cmp.Compare(as.Offset, bs.Offset))
	})
	if _, werr := io.WriteString(stderr, diags.Render(o.reportStyle())); werr != nil && err == nil {
		err = werr
	}
	return results, err
}

// sourceCache keeps the text of every file the compiler loads, so that
// diagnostics can quote it.
type sourceCache struct {
	resolver pipecompile.Resolver

	mu    sync.Mutex
	files map[string]*report.IndexedFile
}

func (s *sourceCache) FindFileByPath(path string) (pipecompile.SearchResult, error) {
	res, err := s.resolver.FindFileByPath(path)
	if err != nil {
		return res, err
	}
	if c, ok := res.Source.(io.Closer); ok {
		defer c.Close()
	}
	data, err := io.ReadAll(res.Source)
	if err != nil {
		return pipecompile.SearchResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)

	s.mu.Lock()
	s.files[path] = report.NewIndexedFile(report.File{Path: path, Text: text})
	s.mu.Unlock()
	return pipecompile.SearchResult{Source: strings.NewReader(text)}, nil
}

// file returns the loaded file at path, or nil.
func (s *sourceCache) file(path string) *report.IndexedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files[path]
}

// expand turns command line arguments into a list of files, without
// duplicates. Each argument is expanded in its own goroutine; the order of
// the arguments is kept.
func expand(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	found := make([][]string, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, arg := range args {
		g.Go(func() error {
			matches, err := expandArg(arg)
			found[i] = matches
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var files []string
	for _, matches := range found {
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func expandArg(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		arg = filepath.Join(arg, "**", "*"+sourceExt)
	case err == nil:
		return []string{arg}, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	case !strings.ContainsAny(arg, `*?[{\`):
		// Left for the resolver, which also searches include directories.
		return []string{arg}, nil
	}

	if !doublestar.ValidatePathPattern(arg) {
		return nil, fmt.Errorf("invalid glob %q", arg)
	}
	matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)
	return matches, nil
}
