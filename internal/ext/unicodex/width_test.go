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

package unicodex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/parsec/internal/ext/unicodex"
)

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, out string
		column    int
		escape    bool
	}{
		{text: "abc", out: "abc", column: 3},
		{text: "a\tb", out: "a   b", column: 5},
		{text: "\t\t", out: "        ", column: 8},
		{text: "日本", out: "日本", column: 4},
		{text: "a\x00b", out: "a<U+0000>b", column: 10, escape: true},
		{text: "a\xffb", out: "a<FF>b", column: 6, escape: true},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			out := new(strings.Builder)
			w := &unicodex.Width{EscapeNonPrint: test.escape, Out: out}
			_, err := w.WriteString(test.text)
			assert.NoError(t, err)
			assert.Equal(t, test.out, out.String())
			assert.Equal(t, test.column, w.Column)
		})
	}
}
