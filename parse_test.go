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
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/parsec"
	"github.com/bufbuild/parsec/source"
)

func TestParse(t *testing.T) {
	t.Parallel()

	p := parsec.Then(parsec.Literal("abc"), parsec.End(), func(s string, _ bool) string { return s })
	got, err := parsec.ParseString(p, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestParseError(t *testing.T) {
	t.Parallel()

	unknown := parsec.Func[rune](func(*parsec.Cursor) parsec.Result[rune] { return parsec.Fail[rune]() })
	paren := parsec.FlatMap(parsec.Rune('('),
		func(rune) parsec.Parser[rune] { return parsec.Commit(parsec.Rune(')')) },
		second,
	)

	tests := []struct {
		name, input string
		p           parsec.Parser[rune]
		tag         parsec.Tag
		failure     parsec.Failure
		message     string
	}{
		{
			name:    "rejected",
			input:   "ac",
			p:       parsec.Then(parsec.Rune('a'), parsec.Rune('b'), second),
			tag:     parsec.Error,
			failure: parsec.Failure{Offset: 1, Cause: parsec.PredicateRejected},
			message: "1:2: unexpected input 'c'",
		},
		{
			name:    "exhausted",
			input:   "ab",
			p:       parsec.Map(parsec.Literal("abc"), func(string) rune { return 0 }),
			tag:     parsec.Error,
			failure: parsec.Failure{Offset: 2, Cause: parsec.ExhaustedInput},
			message: "1:3: unexpected end of input",
		},
		{
			name:    "trailing",
			input:   "ab",
			p:       parsec.Then(parsec.Any(), parsec.End(), func(r rune, _ bool) rune { return r }),
			tag:     parsec.Error,
			failure: parsec.Failure{Offset: 1, Cause: parsec.TrailingInput},
			message: "1:2: expected end of input, found 'b'",
		},
		{
			name:    "furthest",
			input:   "abd",
			p:       parsec.Alternate(parsec.Map(parsec.Literal("abc"), func(string) rune { return 0 }), parsec.Rune('x')),
			tag:     parsec.Error,
			failure: parsec.Failure{Offset: 2, Cause: parsec.PredicateRejected},
			message: "1:3: unexpected input 'd'",
		},
		{
			name:    "no-alternative",
			input:   "abc",
			p:       parsec.Alternate(unknown, unknown),
			tag:     parsec.Error,
			failure: parsec.Failure{Offset: 0, Cause: parsec.NoAlternativeMatched},
			message: "1:1: no alternative matched",
		},
		{
			name:    "unknown",
			input:   "abc",
			p:       unknown,
			tag:     parsec.Error,
			failure: parsec.Failure{Offset: 0, Cause: parsec.Unknown},
			message: "1:1: unknown failure",
		},
		{
			name:    "committed",
			input:   "(x",
			p:       paren,
			tag:     parsec.Fatal,
			failure: parsec.Failure{Offset: 1, Cause: parsec.PredicateRejected, Committed: true},
			message: "1:2: committed: unexpected input 'x'",
		},
		{
			name:    "committed-over-furthest",
			input:   "ab\n(x",
			p:       parsec.Alternate(parsec.Map(parsec.Literal("ab\n(xq"), func(string) rune { return 0 }), parsec.Then(parsec.Literal("ab\n"), paren, second)),
			tag:     parsec.Fatal,
			failure: parsec.Failure{Offset: 4, Cause: parsec.PredicateRejected, Committed: true},
			message: "2:2: committed: unexpected input 'x'",
		},
		{
			name:    "committed-unknown",
			input:   "ab",
			p:       parsec.Then(parsec.Any(), parsec.Commit(unknown), second),
			tag:     parsec.Fatal,
			failure: parsec.Failure{Offset: 1, Cause: parsec.Unknown, Committed: true},
			message: "1:2: committed: unknown failure",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := parsec.ParseString(test.p, test.input)
			require.Error(t, err)

			var perr *parsec.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, test.tag, perr.Tag)
			assert.Equal(t, test.failure, perr.Failure)
			assert.Equal(t, test.message, err.Error())
		})
	}
}

func TestParseErrorPath(t *testing.T) {
	t.Parallel()

	_, err := parsec.Parse(parsec.Rune('a'), source.NewFile("input.txt", "b"))
	assert.EqualError(t, err, "input.txt:1:1: unexpected input 'b'")

	// Wrapping preserves the concrete error.
	wrapped := fmt.Errorf("loading config: %w", err)
	var perr *parsec.ParseError
	assert.ErrorAs(t, wrapped, &perr)
	assert.Equal(t, "input.txt", perr.File.Path())
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input string
		p           parsec.Parser[rune]
		want        string
	}{
		{
			name:  "simple",
			input: "1 + + 2",
			p:     parsec.Then(parsec.Literal("1 + "), parsec.Rune('2'), second),
			want: "input.txt:1:5: unexpected input '+'\n" +
				"  |\n" +
				"1 | 1 + + 2\n" +
				"  |     ^\n",
		},
		{
			name:  "tab",
			input: "\tx",
			p:     parsec.Then(parsec.Any(), parsec.Rune('y'), second),
			want: "input.txt:1:2: unexpected input 'x'\n" +
				"  |\n" +
				"1 |     x\n" +
				"  |     ^\n",
		},
		{
			name:  "second-line",
			input: "ok\n日本x",
			p:     parsec.Then(parsec.Literal("ok\n日本"), parsec.Commit(parsec.Rune('y')), second),
			want: "input.txt:2:3: committed: unexpected input 'x'\n" +
				"  |\n" +
				"2 | 日本x\n" +
				"  |     ^\n",
		},
		{
			name:  "eof",
			input: "ab\n",
			p:     parsec.Then(parsec.Literal("ab\n"), parsec.Any(), second),
			want: "input.txt:2:1: unexpected end of input\n" +
				"  |\n" +
				"2 | \n" +
				"  | ^\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := parsec.Parse(test.p, source.NewFile("input.txt", test.input))
			var perr *parsec.ParseError
			require.ErrorAs(t, err, &perr)

			out := new(strings.Builder)
			require.NoError(t, perr.Render(out))
			assert.Equal(t, test.want, out.String())
		})
	}
}

// TestConcurrentReuse checks that a single parser can be shared by many
// concurrent parses, each with its own cursor.
func TestConcurrentReuse(t *testing.T) {
	t.Parallel()

	var list parsec.Parser[[]int]
	list = parsec.Lazy(func() parsec.Parser[[]int] {
		return parsec.Then(parsec.ZeroOrMore(xy), parsec.End(), func(v []int, _ bool) []int { return v })
	})

	var g errgroup.Group
	for i := range 64 {
		g.Go(func() error {
			input := strings.Repeat("xy", i)
			got, err := parsec.ParseString(list, input)
			if err != nil {
				return err
			}
			if len(got) != i {
				return fmt.Errorf("parsed %q into %d values, want %d", input, len(got), i)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
