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

import "sync"

// Parser is anything that can parse a value of type T from a [Cursor].
//
// Parse may advance the cursor as a side effect. Implementations must honor
// the restore contract: when Parse returns Error, the cursor must be where it
// was when Parse was called. When Parse returns Fatal, the cursor is left at
// the point of failure.
//
// Parsers should be immutable, so that one parser may be reused across many
// parses, including concurrent parses over separate cursors.
type Parser[T any] interface {
	Parse(c *Cursor) Result[T]
}

// Func adapts an ordinary function into a [Parser].
type Func[T any] func(c *Cursor) Result[T]

// Parse implements [Parser].
func (f Func[T]) Parse(c *Cursor) Result[T] {
	return f(c)
}

// Lazy returns a parser that is built by calling factory the first time it is
// used to parse. This allows a parser to refer to a rule that is not yet fully
// constructed.
func Lazy[T any](factory func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return Func[T](func(c *Cursor) Result[T] {
		once.Do(func() { p = factory() })
		if p == nil {
			panic("parsec: Lazy factory returned a nil parser")
		}
		return p.Parse(c)
	})
}

// Rule is a parser that is declared before it is defined. This is the
// building block of recursive grammars:
//
//	var expr parsec.Rule[int]
//	atom := parsec.Alternate(number, parens(&expr))
//	expr.Define(sum(atom))
//
// The zero Rule is undefined; parsing with it panics.
type Rule[T any] struct {
	p Parser[T]
}

// Define sets the parser that this rule parses with.
//
// Panics if the rule is already defined, or if p is nil.
func (r *Rule[T]) Define(p Parser[T]) {
	if p == nil {
		panic("parsec: defined rule with a nil parser")
	}
	if r.p != nil {
		panic("parsec: rule defined twice")
	}
	r.p = p
}

// Defined returns whether [Rule.Define] has been called.
func (r *Rule[T]) Defined() bool {
	return r.p != nil
}

// Parse implements [Parser].
func (r *Rule[T]) Parse(c *Cursor) Result[T] {
	if r.p == nil {
		panic("parsec: parsed with an undefined rule")
	}
	return r.p.Parse(c)
}
