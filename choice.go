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

// Alternate returns a parser that tries a, and then b if a returned Error.
//
// Choice is ordered and left-biased: if a succeeds or is Fatal, b is never
// run. b runs from the same position a started at. If both return Error, the
// cursor is restored and Alternate returns Error.
func Alternate[T any](a, b Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) Result[T] {
		entry := c.Checkpoint()
		recorded := c.failures

		r := a.Parse(c)
		switch r.tag {
		case Success, Fatal:
			return r
		case Error:
			c.Restore(entry)
		default:
			panic(badTag(r.tag))
		}

		r = b.Parse(c)
		switch r.tag {
		case Success, Fatal:
			return r
		case Error:
			c.Restore(entry)
			// Prefer whatever the branches had to say about their failures.
			if c.failures == recorded {
				c.RecordFailure(entry.Offset(), NoAlternativeMatched)
			}
			return r
		default:
			panic(badTag(r.tag))
		}
	})
}

// Choice returns a parser that tries each of ps in order, returning the
// result of the first one that does not return Error.
//
// Choice(a, b, c) is Alternate(a, Alternate(b, c)). Panics if ps is empty.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("parsec: Choice requires at least one parser")
	}

	p := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		p = Alternate(ps[i], p)
	}
	return p
}

// Optional returns a parser that parses p, or produces fallback without
// consuming anything if p returns Error.
func Optional[T any](p Parser[T], fallback T) Parser[T] {
	return Alternate(p, Pure(fallback))
}
