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

// ZeroOrMore returns a parser that applies p as many times as it can,
// collecting its values in order.
//
// ZeroOrMore never returns Error: the first Error from p ends the repetition,
// un-consuming whatever that last attempt consumed. It also stops after a
// success that reaches the end of input, or one that consumed nothing (which
// would otherwise repeat forever).
//
// A Fatal from p is not swallowed: it aborts the whole repetition, leaving the
// cursor where p left it.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(c *Cursor) Result[[]T] {
		var values []T
		for {
			mark := c.Checkpoint()
			r := p.Parse(c)
			switch r.tag {
			case Success:
				values = append(values, r.value)
				if c.Done() || c.Offset() == mark.Offset() {
					return Ok(values)
				}
			case Error:
				c.Restore(mark)
				return Ok(values)
			case Fatal:
				return failed[[]T](r)
			default:
				panic(badTag(r.tag))
			}
		}
	})
}

// OneOrMore is like [ZeroOrMore], but p must succeed at least once.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	rest := ZeroOrMore(p)
	return Then(p, rest, func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}
