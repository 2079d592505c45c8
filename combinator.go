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

// Map returns a parser that transforms the value produced by p with f.
//
// Map consumes exactly what p consumes. f is only called on success, and
// must be a pure function of its input.
func Map[T, S any](p Parser[T], f func(T) S) Parser[S] {
	return Func[S](func(c *Cursor) Result[S] {
		entry := c.Checkpoint()
		r := p.Parse(c)
		switch r.tag {
		case Success:
			return Ok(f(r.value))
		case Error:
			// p should already have rewound, but we do not rely on that.
			c.Restore(entry)
			return failed[S](r)
		case Fatal:
			return failed[S](r)
		default:
			panic(badTag(r.tag))
		}
	})
}

// FlatMap returns a parser that runs p, passes its value to next to obtain a
// second parser, runs that, and combines both values with combine.
//
// Sequencing is all-or-nothing: if either stage returns Error, the cursor is
// rewound to where FlatMap was entered, undoing the first stage too. Fatal
// from either stage is returned as-is, leaving the cursor at the point of
// failure.
func FlatMap[T, S, R any](p Parser[T], next func(T) Parser[S], combine func(T, S) R) Parser[R] {
	return Func[R](func(c *Cursor) Result[R] {
		entry := c.Checkpoint()
		first := p.Parse(c)
		switch first.tag {
		case Success:
		case Error:
			c.Restore(entry)
			return failed[R](first)
		case Fatal:
			return failed[R](first)
		default:
			panic(badTag(first.tag))
		}

		second := next(first.value).Parse(c)
		switch second.tag {
		case Success:
			return Ok(combine(first.value, second.value))
		case Error:
			c.Restore(entry)
			return failed[R](second)
		case Fatal:
			return failed[R](second)
		default:
			panic(badTag(second.tag))
		}
	})
}

// Then returns a parser that runs p and then q, combining their values.
//
// This is [FlatMap] where the second stage does not depend on the first.
func Then[T, S, R any](p Parser[T], q Parser[S], combine func(T, S) R) Parser[R] {
	return FlatMap(p, func(T) Parser[S] { return q }, combine)
}

// Where returns a parser that only accepts values produced by p that satisfy
// pred.
//
// If pred rejects a value, whatever p consumed is un-consumed and Where
// returns Error.
func Where[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return Func[T](func(c *Cursor) Result[T] {
		entry := c.Checkpoint()
		r := p.Parse(c)
		switch r.tag {
		case Success:
			if pred(r.value) {
				return r
			}
			c.Restore(entry)
			c.RecordFailure(entry.Offset(), PredicateRejected)
			return Fail[T]()
		case Error:
			c.Restore(entry)
			return r
		case Fatal:
			return r
		default:
			panic(badTag(r.tag))
		}
	})
}

// Commit returns a parser that turns any Error from p into Fatal.
//
// This is the cut operator: once a rule has seen enough to know that it must
// apply, the remainder of the rule is committed so that a failure is reported
// where it happened, rather than an enclosing [Alternate] trying some
// unrelated alternative.
//
// The cursor is left wherever p left it, which for an Error is p's own entry
// position.
func Commit[T any](p Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) Result[T] {
		recorded := c.failures
		r := p.Parse(c)
		switch r.tag {
		case Success, Fatal:
			return r
		case Error:
			c.commit(recorded)
			return Abort[T]()
		default:
			panic(badTag(r.tag))
		}
	})
}
