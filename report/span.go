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
	"slices"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the width tabs are rendered with.
const TabstopWidth int = 4

// Span is a range of a source file.
type Span interface {
	File() File
	Start() Location
	End() Location
}

// File is a source file involved in a diagnostic.
type File struct {
	// Used to group snippets by file; it need not exist on disk.
	Path string
	// The complete text of the file.
	Text string
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. A zero Line means
	// the location is unknown.
	//
	// Column is measured in terminal cells, not bytes or runes: A is one
	// column wide, 貓 is two, and so is the emoji sequence 🐈‍⬛.
	Line, Column int
}

// IndexedFile is a line index over a [File], which permits O(log n)
// calculation of [Location]s from offsets.
type IndexedFile struct {
	file File

	once sync.Once
	// The offset at which each line starts.
	lines []int
}

// NewIndexedFile constructs a line index for file. The index is built
// lazily on first use.
func NewIndexedFile(file File) *IndexedFile {
	return &IndexedFile{file: file}
}

// File returns the file that this index indexes.
func (i *IndexedFile) File() File {
	return i.file
}

// NewSpan returns the span between two byte offsets.
func (i *IndexedFile) NewSpan(start, end int) Span {
	return span{
		file:  i.file,
		start: i.Search(start),
		end:   i.Search(end),
	}
}

// Search computes the full location of a byte offset. Offsets past the end
// of the file are clamped to it.
func (i *IndexedFile) Search(offset int) Location {
	i.once.Do(func() {
		i.lines = append(i.lines, 0)
		text := i.file.Text
		for next := 0; ; {
			nl := strings.IndexByte(text[next:], '\n')
			if nl < 0 {
				break
			}
			next += nl + 1
			i.lines = append(i.lines, next)
		}
	})

	offset = min(max(offset, 0), len(i.file.Text))
	line, exact := slices.BinarySearch(i.lines, offset)
	if !exact {
		line--
	}

	chunk := strings.TrimSuffix(i.file.Text[i.lines[line]:offset], "\r")
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: displayWidth(chunk) + 1,
	}
}

// Line returns the text of the given 1-indexed line without its line
// break.
func (i *IndexedFile) Line(line int) string {
	i.Search(0) // Builds the index.
	if line < 1 || line > len(i.lines) {
		return ""
	}
	start := i.lines[line-1]
	end := len(i.file.Text)
	if line < len(i.lines) {
		end = i.lines[line] - 1
	}
	return strings.TrimSuffix(i.file.Text[start:end], "\r")
}

// displayWidth returns the number of terminal cells s takes up, expanding
// tabs to the next multiple of [TabstopWidth].
func displayWidth(s string) int {
	var w int
	for {
		tab := strings.IndexByte(s, '\t')
		if tab < 0 {
			return w + uniseg.StringWidth(s)
		}
		w += uniseg.StringWidth(s[:tab])
		w += TabstopWidth - w%TabstopWidth
		s = s[tab+1:]
	}
}

// expandTabs replaces tabs in s with spaces, consistently with
// displayWidth.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	for {
		tab := strings.IndexByte(s, '\t')
		if tab < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:tab])
		b.WriteString(strings.Repeat(" ", TabstopWidth-displayWidth(b.String())%TabstopWidth))
		s = s[tab+1:]
	}
}

type span struct {
	file       File
	start, end Location
}

func (s span) File() File      { return s.file }
func (s span) Start() Location { return s.start }
func (s span) End() Location   { return s.end }
