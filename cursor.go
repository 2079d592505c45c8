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

	"github.com/bufbuild/parsec/source"
)

// Cursor is a read position over an immutable [source.File].
//
// A Cursor is mutable state owned by a single in-flight parse; it must not be
// shared between concurrently running parses. Any number of cursors may read
// from the same file.
type Cursor struct {
	file *source.File
	idx  int

	// Diagnostic side channel. None of the combinators consult this to
	// decide what to return, and Restore does not touch it.
	furthest, latest Failure
	failures         int
	committed        bool
}

// Checkpoint is the return value of [Cursor.Checkpoint], which marks a
// position that a cursor can be restored to.
//
// Checkpoints are plain values: restoring one never invalidates another, and
// two checkpoints are equal if they mark the same position in the same file.
type Checkpoint struct {
	file   *source.File
	offset int
}

// Offset returns the element offset this checkpoint marks.
func (cp Checkpoint) Offset() int {
	return cp.offset
}

// NewCursor returns a new cursor at the start of text.
func NewCursor(text string) *Cursor {
	return NewFileCursor(source.NewFile("", text), 0)
}

// NewCursorAt returns a new cursor over text, starting at the given element
// offset.
//
// Panics if offset is not in [0, n], where n is the number of runes in text.
func NewCursorAt(text string, offset int) *Cursor {
	return NewFileCursor(source.NewFile("", text), offset)
}

// NewFileCursor returns a new cursor over file, starting at the given element
// offset.
//
// Panics if offset is out of bounds.
func NewFileCursor(file *source.File, offset int) *Cursor {
	if file == nil {
		file = source.NewFile("", "")
	}
	if offset < 0 || offset > file.Len() {
		panic(fmt.Sprintf("parsec: cursor offset %d out of bounds [0, %d]", offset, file.Len()))
	}
	return &Cursor{file: file, idx: offset}
}

// File returns the file this cursor reads from.
func (c *Cursor) File() *source.File {
	return c.file
}

// Offset returns the offset of the next element this cursor will read.
func (c *Cursor) Offset() int {
	return c.idx
}

// Len returns the number of elements in the underlying file.
func (c *Cursor) Len() int {
	return c.file.Len()
}

// Done returns whether the cursor has reached the end of its input.
func (c *Cursor) Done() bool {
	return c.idx >= c.file.Len()
}

// Peek returns the next element without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.Done() {
		return 0, false
	}
	return c.file.At(c.idx), true
}

// Next returns the next element and advances the cursor past it.
//
// At the end of input, returns false and leaves the cursor unchanged.
func (c *Cursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.idx++
	}
	return r, ok
}

// Checkpoint marks the current position. It has no side effects.
func (c *Cursor) Checkpoint() Checkpoint {
	return Checkpoint{file: c.file, offset: c.idx}
}

// Restore moves this cursor to the position marked by cp.
//
// cp may have been taken at any time from any cursor over the same file.
// Panics if cp was taken over a different file.
func (c *Cursor) Restore(cp Checkpoint) {
	if c.file != cp.file {
		panic("parsec: restored cursor using a checkpoint from a different file")
	}
	c.idx = cp.offset
}

// Failure is a diagnostic record of why a parse failed.
type Failure struct {
	// The element offset at which the failure occurred.
	Offset int
	// What went wrong.
	Cause Cause
	// Set if the failure happened inside a [Commit], i.e., the parse
	// returned Fatal.
	Committed bool
}

// RecordFailure notes that some parser failed at offset.
//
// The primitives and combinators in this package call this whenever they
// produce an Error of their own; user-defined parsers may call it too. It
// has no effect on what any parser returns.
//
// Once a commit has failed, further failures are ignored, since the parse is
// over.
func (c *Cursor) RecordFailure(offset int, cause Cause) {
	if c.committed {
		return
	}

	f := Failure{Offset: offset, Cause: cause}
	c.latest = f
	if c.failures == 0 || offset >= c.furthest.Offset {
		c.furthest = f
	}
	c.failures++
}

// Failure returns the failure that best explains a failed parse: the
// committed failure if a commit has failed, and otherwise the failure
// furthest into the input.
//
// Returns false if no failure has been recorded.
func (c *Cursor) Failure() (Failure, bool) {
	if c.committed {
		return c.latest, true
	}
	return c.furthest, c.failures > 0
}

// commit promotes the most recent failure to a committed one. recorded is the
// number of failures that had been recorded when the committed parser was
// entered; if that parser recorded nothing itself, a failure of unknown cause
// is recorded at the current offset.
func (c *Cursor) commit(recorded int) {
	if c.committed {
		return
	}
	if c.failures == recorded {
		c.RecordFailure(c.idx, Unknown)
	}
	c.latest.Committed = true
	c.committed = true
}
