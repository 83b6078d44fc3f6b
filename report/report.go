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

// Package report renders compiler errors as diagnostics for people to read.
//
// A [Report] collects [Diagnostic] values. Each diagnostic can carry source
// snippets that are shown, underlined, beneath its message, along with notes
// and help text. [Report.Render] formats the whole report in one of several
// [Style]s.
package report

import (
	"fmt"
	"runtime"
)

const (
	Error Level = 1 + iota
	Warning
	Remark
	note // Used for secondary snippets.
)

const (
	// Simple renders one line per diagnostic, like the Go compiler.
	Simple Style = 1 + iota
	// Monochrome renders annotated snippets without color.
	Monochrome
	// Colored renders annotated snippets with ANSI colors.
	Colored
)

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case note:
		return "note"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

// StyleByName returns the style with the given lower-case name.
func StyleByName(name string) (Style, bool) {
	switch name {
	case "simple":
		return Simple, true
	case "monochrome", "plain":
		return Monochrome, true
	case "colored", "color":
		return Colored, true
	}
	return 0, false
}

// Diagnostic is an error that can be rendered as a rich diagnostic.
//
// Not all diagnostics are errors; some are warnings or remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() is used as the
	// diagnostic message.
	Err error

	Level Level

	mention     string
	snippets    []snippet
	notes, help []string

	// Only populated when PIPECOMPILE_DEBUG is set.
	trace []runtime.Frame
}

type snippet struct {
	file       File
	start, end Location
	message    string
	primary    bool
}

// Primary returns the file and location of the first snippet. If there is
// none, file only carries the mentioned path, if any.
func (d *Diagnostic) Primary() (file File, start, end Location) {
	if len(d.snippets) == 0 {
		file.Path = d.mention
		return file, start, end
	}
	return d.snippets[0].file, d.snippets[0].start, d.snippets[0].end
}

// Notes returns the notes attached to d.
func (d *Diagnostic) Notes() []string {
	return d.notes
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// MentionFile makes a diagnostic without snippets mention the given file.
func MentionFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.mention = path }
}

// SnippetAt adds a snippet of source to the diagnostic, annotated with the
// given message. The first snippet added is the primary one.
func SnippetAt(span Span, format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.snippets = append(d.snippets, snippet{
			file:    span.File(),
			start:   span.Start(),
			end:     span.End(),
			message: fmt.Sprintf(format, args...),
			primary: len(d.snippets) == 0,
		})
	}
}

// Note adds context to the diagnostic, shown after the snippets.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help adds a suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err error, opts ...DiagnosticOption) {
	r.push(1, err, Error, opts)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err error, opts ...DiagnosticOption) {
	r.push(1, err, Warning, opts)
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err error, opts ...DiagnosticOption) {
	r.push(1, err, Remark, opts)
}

// Count returns the number of diagnostics at level.
func (r Report) Count(level Level) int {
	var n int
	for _, d := range r {
		if d.Level == level {
			n++
		}
	}
	return n
}

func (r *Report) push(skip int, err error, level Level, opts []DiagnosticOption) {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]
	for _, opt := range opts {
		opt(d)
	}

	if debugMode > debugOff {
		pc := make([]uintptr, 64)
		pc = pc[:runtime.Callers(skip+2, pc)]

		var zero runtime.Frame
		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != zero {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}
}
