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

package parsec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bufbuild/parsec/internal/ext/unicodex"
	"github.com/bufbuild/parsec/source"
)

// Parse runs p once over file, starting at its beginning, and returns the
// value it produces.
//
// Parse does not require p to consume all of its input; compose p with [End]
// for that. If p does not succeed, the returned error is a [*ParseError].
func Parse[T any](p Parser[T], file *source.File) (T, error) {
	c := NewFileCursor(file, 0)
	r := p.Parse(c)
	switch r.tag {
	case Success:
		return r.value, nil
	case Error, Fatal:
		var zero T
		return zero, newParseError(c, r.tag)
	default:
		panic(badTag(r.tag))
	}
}

// ParseString is like [Parse], but parses an anonymous string.
func ParseString[T any](p Parser[T], text string) (T, error) {
	return Parse(p, source.NewFile("", text))
}

// ParseError is the error returned by [Parse] when a parser fails.
type ParseError struct {
	// The file that failed to parse.
	File *source.File
	// Either [Error] or [Fatal].
	Tag Tag
	// Where and why the parse failed.
	Failure
}

func newParseError(c *Cursor, tag Tag) *ParseError {
	f, ok := c.Failure()
	if !ok {
		f = Failure{Offset: c.Offset(), Cause: Unknown, Committed: tag == Fatal}
	}
	return &ParseError{File: c.File(), Tag: tag, Failure: f}
}

// Location returns the line and column of the failure, counting columns in
// runes.
func (e *ParseError) Location() source.Location {
	return e.File.Location(e.Offset, source.Runes)
}

// Error implements [error].
func (e *ParseError) Error() string {
	var out strings.Builder
	if path := e.File.Path(); path != "" {
		out.WriteString(path)
		out.WriteByte(':')
	}
	fmt.Fprintf(&out, "%v: ", e.Location())
	if e.Tag == Fatal {
		out.WriteString("committed: ")
	}
	out.WriteString(e.Cause.String())

	if e.Offset < e.File.Len() {
		switch e.Cause {
		case PredicateRejected:
			fmt.Fprintf(&out, " %q", e.File.At(e.Offset))
		case TrailingInput:
			fmt.Fprintf(&out, ", found %q", e.File.At(e.Offset))
		}
	}
	return out.String()
}

// Render writes this error to w along with the offending line of the file,
// with a caret under the point of failure:
//
//	input.txt:1:5: unexpected input '+'
//	  |
//	1 | 1 + + 2
//	  |     ^
func (e *ParseError) Render(w io.Writer) error {
	loc := e.Location()
	start, _ := e.File.LineOffsets(loc.Line)
	line := strings.TrimSuffix(e.File.Line(loc.Line), "\r")
	prefix := e.File.Text()[start:e.File.ByteOffset(e.Offset)]

	// Measure the caret position the same way we print the line, so that
	// tabs, wide characters and escapes line up.
	caret := &unicodex.Width{EscapeNonPrint: true}
	_, _ = caret.WriteString(prefix)

	gutter := strconv.Itoa(loc.Line)
	margin := strings.Repeat(" ", len(gutter))

	var out strings.Builder
	out.WriteString(e.Error())
	out.WriteByte('\n')
	fmt.Fprintf(&out, "%s |\n%s | ", margin, gutter)
	text := &unicodex.Width{EscapeNonPrint: true, Out: &out}
	_, _ = text.WriteString(line)
	out.WriteByte('\n')
	fmt.Fprintf(&out, "%s | %s^\n", margin, strings.Repeat(" ", caret.Column))

	_, err := io.WriteString(w, out.String())
	return err
}
