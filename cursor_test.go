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

package parsec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/parsec"
	"github.com/bufbuild/parsec/source"
)

func TestCursorRestore(t *testing.T) {
	t.Parallel()

	c := parsec.NewCursor("input")
	start := c.Checkpoint()

	next(t, c, 'i')
	next(t, c, 'n')

	mid := c.Checkpoint()
	next(t, c, 'p')
	next(t, c, 'u')

	c.Restore(mid)
	next(t, c, 'p')

	c.Restore(start)
	next(t, c, 'i')
}

func TestCursorNext(t *testing.T) {
	t.Parallel()

	c := parsec.NewCursor("in")
	next(t, c, 'i')
	next(t, c, 'n')
	assert.True(t, c.Done())

	_, ok := c.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, c.Offset(), "Next at end of input must not advance")

	_, ok = c.Peek()
	assert.False(t, ok)
}

func TestCursorUnicode(t *testing.T) {
	t.Parallel()

	c := parsec.NewCursor("日本")
	assert.Equal(t, 2, c.Len())
	next(t, c, '日')
	assert.Equal(t, 1, c.Offset())
	next(t, c, '本')
	assert.True(t, c.Done())
}

func TestCheckpointIndependence(t *testing.T) {
	t.Parallel()

	c := parsec.NewCursor("abcdef")
	c.Next()
	c1 := c.Checkpoint()
	c.Next()
	c.Next()
	c2 := c.Checkpoint()
	c.Next()

	c.Restore(c2)
	c.Restore(c1)
	assert.Equal(t, c1.Offset(), c.Offset())

	c.Restore(c1)
	c.Restore(c2)
	assert.Equal(t, c2.Offset(), c.Offset())

	// Restoring is idempotent and never invalidates a checkpoint.
	for range 3 {
		c.Restore(c1)
		assert.Equal(t, 1, c.Offset())
		c.Restore(c2)
		assert.Equal(t, 3, c.Offset())
	}

	assert.Equal(t, c2, c.Checkpoint(), "checkpoints of the same position should be equal")
	assert.NotEqual(t, c1, c2)
}

func TestCursorAt(t *testing.T) {
	t.Parallel()

	c := parsec.NewCursorAt("abc", 2)
	next(t, c, 'c')
	assert.True(t, c.Done())

	end := parsec.NewCursorAt("abc", 3)
	assert.True(t, end.Done())

	assert.Panics(t, func() { parsec.NewCursorAt("abc", 4) })
	assert.Panics(t, func() { parsec.NewCursorAt("abc", -1) })
}

func TestCheckpointSharedFile(t *testing.T) {
	t.Parallel()

	file := source.NewFile("shared", "abc")
	a := parsec.NewFileCursor(file, 0)
	b := parsec.NewFileCursor(file, 0)

	a.Next()
	a.Next()
	b.Restore(a.Checkpoint())
	next(t, b, 'c')
	assert.Equal(t, 2, a.Offset())

	other := parsec.NewCursor("abc")
	assert.Panics(t, func() { other.Restore(a.Checkpoint()) })
}

func TestCursorFailure(t *testing.T) {
	t.Parallel()

	c := parsec.NewCursor("abcdef")
	_, ok := c.Failure()
	assert.False(t, ok)

	c.RecordFailure(3, parsec.PredicateRejected)
	c.RecordFailure(1, parsec.ExhaustedInput)

	f, ok := c.Failure()
	assert.True(t, ok)
	assert.Equal(t, parsec.Failure{Offset: 3, Cause: parsec.PredicateRejected}, f)

	c.RecordFailure(3, parsec.NoAlternativeMatched)
	f, _ = c.Failure()
	assert.Equal(t, parsec.NoAlternativeMatched, f.Cause, "later failures win ties")

	// Restoring does not erase diagnostics.
	cp := c.Checkpoint()
	c.Next()
	c.Restore(cp)
	after, _ := c.Failure()
	assert.Equal(t, f, after)
}

func next(t *testing.T, c *parsec.Cursor, want rune) {
	t.Helper()
	got, ok := c.Next()
	require.True(t, ok, "unexpected end of input at %d", c.Offset())
	assert.Equal(t, want, got)
}
