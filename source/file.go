// Copyright 2020-2025 Buf Technologies, Inc.
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

package source

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bufbuild/parsec/internal/ext/unicodex"
)

// File is an input buffer for a parse.
//
// The text of a File is addressed by element offset: element i is the i-th
// rune of the text, and offsets range over [0, Len()]. Files are immutable
// once created, so a single File may back any number of cursors.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string

	// The text decoded into runes. This is the element buffer.
	runes []rune
	// The byte offset of each element, plus a final entry for len(text).
	// nil when the text is pure ASCII, in which case element offsets and
	// byte offsets coincide.
	bytes []int

	once sync.Once
	// A prefix sum of the line lengths of text, in bytes. Given a byte offset,
	// it is possible to recover which line that offset is on by performing a
	// binary search on this list.
	lineIndex []int
}

// Location is a user-displayable location within a [File].
type Location struct {
	// The element offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// The units of measurement for column depend on the [Unit] used when
	// constructing it.
	Line, Column int
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	f := &File{path: path, text: text, runes: []rune(text)}
	if len(f.runes) != len(text) {
		f.bytes = make([]int, 0, len(f.runes)+1)
		for i := range text {
			f.bytes = append(f.bytes, i)
		}
		f.bytes = append(f.bytes, len(text))
	}
	return f
}

// Path returns this file's path.
//
// It doesn't need to be a real path; it is only used for diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Len returns the number of elements in this file.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return len(f.runes)
}

// At returns the element at the given offset.
//
// Panics if offset is out of bounds.
func (f *File) At(offset int) rune {
	return f.runes[offset]
}

// ByteOffset converts an element offset into a byte offset into [File.Text].
//
// Panics if offset is not in [0, Len()].
func (f *File) ByteOffset(offset int) int {
	if offset < 0 || offset > f.Len() {
		panic(fmt.Sprintf("parsec/source: offset %d out of bounds [0, %d]", offset, f.Len()))
	}
	if f == nil || f.bytes == nil {
		return offset
	}
	return f.bytes[offset]
}

// Slice returns the text between the element offsets start and end.
func (f *File) Slice(start, end int) string {
	return f.Text()[f.ByteOffset(start):f.ByteOffset(end)]
}

// Location searches this file's line index to build full Location information
// for the given element offset.
//
// This operation is O(log n).
func (f *File) Location(offset int, units Unit) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	byteOffset := f.ByteOffset(offset)
	lines := f.lines()

	// Find the smallest index in lines such that lines[line] <= byteOffset.
	line, exact := slices.BinarySearch(lines, byteOffset)
	if !exact {
		line--
	}

	chunk := f.text[lines[line]:byteOffset]
	var column int
	switch units {
	case Runes:
		column = utf8.RuneCountInString(chunk)
	case Bytes:
		column = len(chunk)
	case UTF16:
		for _, r := range chunk {
			column += utf16.RuneLen(r)
		}
	case TermWidth:
		w := new(unicodex.Width)
		_, _ = w.WriteString(chunk)
		column = w.Column
	default:
		panic(fmt.Sprintf("parsec/source: unknown unit %v", units))
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

// Line returns the given line, without its trailing newline.
//
// line is expected to be 1-indexed.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimSuffix(f.Text()[start:end], "\n")
}

// LineOffsets returns the byte offsets for the given line, including its
// trailing newline.
//
// line is expected to be 1-indexed.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], len(f.Text())
	}
	return lines[line-1], lines[line]
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.Text()
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
