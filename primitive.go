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

// Any returns a parser that consumes one element, whatever it is.
//
// At the end of input it returns Error without consuming anything.
func Any() Parser[rune] {
	return anyParser{}
}

// End returns a zero-width parser that succeeds only at the end of input.
//
// End never consumes anything: if an element remains, it is read, the cursor
// is restored, and End returns Error.
func End() Parser[bool] {
	return endParser{}
}

// Pure returns a zero-width parser that always succeeds with value.
func Pure[T any](value T) Parser[T] {
	return Func[T](func(*Cursor) Result[T] { return Ok(value) })
}

// Satisfy returns a parser for a single element that pred accepts.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return Where(Any(), pred)
}

// Rune returns a parser for exactly the element r.
func Rune(r rune) Parser[rune] {
	return Satisfy(func(got rune) bool { return got == r })
}

// Literal returns a parser for exactly the elements of s, in order. It
// produces s.
//
// Like every sequence, a Literal either consumes all of s or nothing.
func Literal(s string) Parser[string] {
	p := Pure(s)
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		rest := p
		p = Then(Rune(runes[i]), rest, func(_ rune, s string) string { return s })
	}
	return p
}

type anyParser struct{}

func (anyParser) Parse(c *Cursor) Result[rune] {
	r, ok := c.Next()
	if !ok {
		c.RecordFailure(c.Offset(), ExhaustedInput)
		return Fail[rune]()
	}
	return Ok(r)
}

type endParser struct{}

func (endParser) Parse(c *Cursor) Result[bool] {
	entry := c.Checkpoint()
	if _, ok := c.Next(); !ok {
		return Ok(true)
	}
	c.Restore(entry)
	c.RecordFailure(entry.Offset(), TrailingInput)
	return Fail[bool]()
}
