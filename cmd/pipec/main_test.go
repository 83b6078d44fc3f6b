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
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelang/pipecompile/reporter"
)

// workspace writes files into a fresh directory and makes it the working
// directory for the rest of the test.
func workspace(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	}
	t.Chdir(dir)
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestCheck(t *testing.T) {
	workspace(t, map[string]string{
		"ok.pipe":       "x -> print\n",
		"sub/also.pipe": "1 + 2\n",
		"notes.txt":     "not a source file\t\n",
	})
	stdout, stderr, err := run(t, "check")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestCheckReportsErrors(t *testing.T) {
	workspace(t, map[string]string{
		"good.pipe": "x -> print\n",
		"bad.pipe":  "x =>\n",
		"tab.pipe":  "a\n\tb\n",
	})
	_, stderr, err := run(t, "check", "--style", "simple")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Equal(t,
		"error: bad.pipe:1:5: unexpected end of input in setValue; expected Symbol\n"+
			"error: tab.pipe:2:1: unrecognized input: unexpected character '\\t'\n",
		stderr)
}

func TestCheckPlainStyle(t *testing.T) {
	workspace(t, map[string]string{
		"bad.pipe": "x =>\n",
	})
	_, stderr, err := run(t, "check", "bad.pipe")
	require.Error(t, err)
	assert.Equal(t, `error: unexpected end of input in setValue; expected Symbol
 --> bad.pipe:1:5
   |
 1 | x =>
   |     ^ unexpected end of input

encountered 1 error
`, stderr)
}

func TestCheckGlob(t *testing.T) {
	workspace(t, map[string]string{
		"src/a.pipe":     "a -> f\n",
		"src/x/b.pipe":   "b => c\n",
		"other/bad.pipe": "=>\n",
	})
	_, stderr, err := run(t, "check", "src/**/*.pipe", "src/a.pipe")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "check", "other")
	assert.ErrorIs(t, err, reporter.ErrInvalidSource)
}

func TestCheckMissingFile(t *testing.T) {
	workspace(t, nil)
	_, _, err := run(t, "check", "nope.pipe")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, _, err = run(t, "check", "*.pipe")
	assert.EqualError(t, err, "no source files found")
}

func TestCheckInclude(t *testing.T) {
	workspace(t, map[string]string{
		"pipec.toml":    "include = [\"lib\"]\n",
		"lib/util.pipe": "util -> print\n",
	})
	_, stderr, err := run(t, "check", "util.pipe")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestCheckConfig(t *testing.T) {
	workspace(t, map[string]string{
		"pipec.toml":  "style = \"simple\"\nmax_parallelism = 2\n",
		"custom.toml": "style = \"fancy\"\n",
		"typo.toml":   "colour = \"simple\"\n",
		"bad.pipe":    "x =>\n",
	})

	_, stderr, err := run(t, "check", "bad.pipe")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Equal(t, "error: bad.pipe:1:5: unexpected end of input in setValue; expected Symbol\n", stderr)

	_, stderr, err = run(t, "check", "--style", "plain", "bad.pipe")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Contains(t, stderr, "encountered 1 error")

	_, _, err = run(t, "--config", "custom.toml", "check", "bad.pipe")
	assert.EqualError(t, err, `unknown style "fancy": want simple, plain or color`)

	_, _, err = run(t, "--config", "typo.toml", "check", "bad.pipe")
	assert.EqualError(t, err, "config typo.toml: unknown keys: colour")
}

func TestCheckVerbose(t *testing.T) {
	workspace(t, map[string]string{
		"ok.pipe": "x -> print\n",
	})
	_, stderr, err := run(t, "check", "-v", "-j", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, `msg="loaded source" path=ok.pipe`)
	assert.Contains(t, stderr, "level=INFO msg=checking files=1")
}

func TestTokens(t *testing.T) {
	workspace(t, map[string]string{
		"a.pipe": "x -> print\n",
		"t.pipe": "a\n\tb\n",
	})
	stdout, _, err := run(t, "tokens", "a.pipe")
	require.NoError(t, err)
	assert.Equal(t, "1:1  Symbol  \"x\"\n1:3  Pipe    \"->\"\n1:6  Symbol  \"print\"\n", stdout)

	_, stderr, err := run(t, "tokens", "--style", "simple", "t.pipe")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Equal(t, "error: t.pipe:2:1: unrecognized input: unexpected character '\\t'\n", stderr)

	_, _, err = run(t, "tokens")
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	workspace(t, map[string]string{
		"a.pipe": "x -> print\n",
	})
	stdout, _, err := run(t, "locate", "a.pipe", "5")
	require.NoError(t, err)
	assert.Equal(t, "a.pipe:1:6: Symbol \"print\"\nprogram > statement > flow > pipelineStage > functionCall\n", stdout)

	_, _, err = run(t, "locate", "a.pipe", "4")
	assert.EqualError(t, err, "a.pipe: no token at offset 4")

	_, _, err = run(t, "locate", "a.pipe", "x")
	assert.EqualError(t, err, `invalid offset "x"`)
}

func TestGrammar(t *testing.T) {
	stdout, _, err := run(t, "grammar")
	require.NoError(t, err)
	assert.Contains(t, stdout, "program := statement*\n")
	assert.Contains(t, stdout, "setValue := '=>' Symbol\n")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pipec v"+Version+"\n")
}
