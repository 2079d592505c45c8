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

// Package parsec is a backtracking parser combinator engine.
//
// A [Parser] consumes elements from a [Cursor] and produces a [Result], which
// is one of three things:
//
//   - Success, carrying the parsed value.
//   - Error, meaning "this did not match; try something else". A parser that
//     returns Error leaves the cursor exactly where it found it.
//   - Fatal, meaning "this was committed to and then failed". Fatal is never
//     absorbed by a choice or a repetition, and the cursor is left at the
//     point of failure.
//
// Larger parsers are built from [Any] and [End] using [Map], [FlatMap],
// [Where], [Commit], [Alternate] and [ZeroOrMore]. There is no separate
// grammar object: a grammar is whatever value implements [Parser].
//
// # Commit
//
// [Commit] is the cut operator. Once a rule has recognized a prefix that
// uniquely identifies it, the rest of the rule is wrapped in Commit, and any
// failure in it becomes Fatal instead of silently falling back to an
// unrelated alternative:
//
//	group := parsec.FlatMap(parsec.Rune('('),
//		func(rune) parsec.Parser[int] {
//			return parsec.Commit(parsec.Then(expr, parsec.Rune(')'),
//				func(n int, _ rune) int { return n },
//			))
//		},
//		func(_ rune, n int) int { return n },
//	)
//
// # Recursion
//
// Recursive grammars refer to themselves before they are fully built. Use a
// [Rule] to declare a parser and define it later, or [Lazy] to defer building
// it until the first parse.
//
// # Diagnostics
//
// Results never carry diagnostics. Instead, a [Cursor] records the furthest
// [Failure] seen during a parse, and [Parse] turns a failed parse into a
// [*ParseError] that can render the offending line.
package parsec

//go:generate go run github.com/bufbuild/parsec/internal/enum tag.yaml cause.yaml
