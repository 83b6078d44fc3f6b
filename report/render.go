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

package report

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Render renders every diagnostic in the report, followed by a summary line
// unless style is [Simple].
func (r *Report) Render(style Style) string {
	var out strings.Builder
	for _, d := range *r {
		out.WriteString(d.Render(style))
		out.WriteString("\n")
		if style != Simple {
			out.WriteString("\n")
		}
	}
	if style == Simple {
		return out.String()
	}

	var c color
	if style == Colored {
		c = ansiColor()
	}
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	errors, warnings := r.Count(Error), r.Count(Warning)
	switch {
	case errors > 0:
		fmt.Fprint(&out, c.bRed, "encountered ", pluralize(errors, "error"))
		if warnings > 0 {
			fmt.Fprint(&out, " and ", pluralize(warnings, "warning"))
		}
		fmt.Fprintln(&out, c.reset)
	case warnings > 0:
		fmt.Fprint(&out, c.bYellow, "encountered ", pluralize(warnings, "warning"))
		fmt.Fprintln(&out, c.reset)
	}
	return out.String()
}

// Render renders this diagnostic in a format suitable for showing to a user.
func (d *Diagnostic) Render(style Style) string {
	if style == Simple {
		file, start, _ := d.Primary()
		if file.Path == "" {
			file.Path = "<unknown>"
		}
		if start.Line == 0 {
			return fmt.Sprintf("%v: %s: %v", d.Level, file.Path, d.Err)
		}
		return fmt.Sprintf("%v: %s:%d:%d: %v", d.Level, file.Path, start.Line, start.Column, d.Err)
	}

	// Everything else is laid out like rustc diagnostics.
	var c color
	if style == Colored {
		c = ansiColor()
	}

	var out strings.Builder
	fmt.Fprint(&out, c.BoldForLevel(d.Level), d.Level, ": ", d.Err, c.reset)

	var greatest int
	for _, snip := range d.snippets {
		greatest = max(greatest, snip.end.Line)
	}
	gutter := max(2, len(fmt.Sprint(greatest)))
	pad := strings.Repeat(" ", gutter)

	for i, group := range partition(d.snippets, func(a, b *snippet) bool { return a.file.Path != b.file.Path }) {
		arrow := "-->"
		if i > 0 {
			arrow = ":::"
		}
		first := group[0]
		fmt.Fprintf(&out, "\n%s%s%s %s:%d:%d", c.nBlue, pad[1:], arrow, first.file.Path, first.start.Line, first.start.Column)
		fmt.Fprintf(&out, "\n%s%s |%s", c.nBlue, pad, c.reset)
		renderWindow(&out, d.Level, group, gutter, &c)
	}

	if len(d.snippets) == 0 {
		path := d.mention
		if path == "" {
			path = "<unknown>"
		}
		fmt.Fprintf(&out, "\n%s%s--> %s:?:?%s", c.nBlue, pad[1:], path, c.reset)
	}

	var footers [][2]string
	for _, n := range d.notes {
		footers = append(footers, [2]string{"note", n})
	}
	for _, h := range d.help {
		footers = append(footers, [2]string{"help", h})
	}
	for i, frame := range d.trace {
		if debugMode < debugFull && i > 0 {
			break
		}
		footers = append(footers,
			[2]string{"debug", fmt.Sprintf("at %s", frame.Function)},
			[2]string{"debug", fmt.Sprintf("   %s:%d", frame.File, frame.Line)},
		)
	}
	for _, f := range footers {
		fmt.Fprintf(&out, "\n%s%s = %s%s: %s%s", c.nBlue, pad, c.bCyan, f[0], c.reset, f[1])
	}
	return out.String()
}

type underline struct {
	start, width int
	level        Level
	message      string
}

// renderWindow prints the annotated source lines for snippets of one file.
func renderWindow(out *strings.Builder, level Level, snippets []snippet, gutter int, c *color) {
	index := NewIndexedFile(snippets[0].file)
	lines := make(map[int][]underline)
	for _, snip := range snippets {
		ul := underline{start: snip.start.Column, level: note, message: snip.message}
		if snip.primary {
			ul.level = level
		}
		if snip.end.Line == snip.start.Line {
			ul.width = snip.end.Column - snip.start.Column
		} else {
			// Only the first line of a multi-line span is shown.
			ul.width = displayWidth(index.Line(snip.start.Line)) + 1 - snip.start.Column
		}
		ul.width = max(ul.width, 1)
		lines[snip.start.Line] = append(lines[snip.start.Line], ul)
	}

	numbers := slices.Sorted(func(yield func(int) bool) {
		for n := range lines {
			if !yield(n) {
				return
			}
		}
	})
	pad := strings.Repeat(" ", gutter)
	prev := 0
	for _, n := range numbers {
		if prev != 0 && n > prev+1 {
			fmt.Fprintf(out, "\n%s%s ~%s", c.bBlue, pad, c.reset)
		}
		prev = n

		fmt.Fprintf(out, "\n%s%*d |%s", c.nBlue, gutter, n, c.reset)
		if text := expandTabs(index.Line(n)); text != "" {
			out.WriteByte(' ')
			out.WriteString(text)
		}

		uls := lines[n]
		slices.SortStableFunc(uls, func(a, b underline) int { return a.start - b.start })
		for _, ul := range uls {
			mark := "^"
			if ul.level == note || ul.level == Remark {
				mark = "-"
			}
			fmt.Fprintf(out, "\n%s%s | %s%s%s",
				c.nBlue, pad,
				strings.Repeat(" ", ul.start-1), c.BoldForLevel(ul.level), strings.Repeat(mark, ul.width))
			if ul.message != "" {
				out.WriteByte(' ')
				out.WriteString(ul.message)
			}
			out.WriteString(c.reset)
		}
	}
}

// color is the colors used for pretty-rendering diagnostics.
type color struct {
	reset string
	// Normal colors.
	nRed, nYellow, nCyan, nBlue string
	// Bold colors.
	bRed, bYellow, bCyan, bBlue string
}

func ansiColor() color {
	return color{
		reset:   "\033[0m",
		nRed:    "\033[0;31m",
		nYellow: "\033[0;33m",
		nCyan:   "\033[0;36m",
		nBlue:   "\033[0;34m",
		bRed:    "\033[1;31m",
		bYellow: "\033[1;33m",
		bCyan:   "\033[1;36m",
		bBlue:   "\033[1;34m",
	}
}

func (c color) BoldForLevel(l Level) string {
	switch l {
	case Error:
		return c.bRed
	case Warning:
		return c.bYellow
	case Remark:
		return c.bCyan
	case note:
		return c.bBlue
	default:
		return ""
	}
}

// partition yields the maximal runs of s whose adjacent elements are not
// delimited, together with the index at which each run starts.
//
// With != as delimit, [a a b c c] is yielded as [a a], [b] and [c c].
func partition[T any](s []T, delimit func(a, b *T) bool) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		var start int
		for i := 1; i < len(s); i++ {
			if delimit(&s[i-1], &s[i]) {
				if !yield(start, s[start:i]) {
					return
				}
				start = i
			}
		}
		if rest := s[start:]; len(rest) > 0 {
			yield(start, rest)
		}
	}
}
