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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/parsec"
)

func TestResult(t *testing.T) {
	t.Parallel()

	ok := parsec.Ok(42)
	assert.Equal(t, parsec.Success, ok.Tag())
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsError())
	assert.False(t, ok.IsFatal())
	assert.Equal(t, 42, ok.Value())
	v, got := ok.Get()
	assert.True(t, got)
	assert.Equal(t, 42, v)
	assert.Equal(t, "Success(42)", ok.String())

	for _, r := range []parsec.Result[int]{parsec.Fail[int](), parsec.Abort[int]()} {
		assert.False(t, r.IsSuccess())
		assert.Panics(t, func() { r.Value() }, "Value() on %v", r)
		v, got := r.Get()
		assert.False(t, got)
		assert.Zero(t, v)
	}

	assert.True(t, parsec.Fail[int]().IsError())
	assert.Equal(t, "Error", parsec.Fail[int]().String())
	assert.True(t, parsec.Abort[int]().IsFatal())
	assert.Equal(t, "Fatal", parsec.Abort[int]().String())

	var zero parsec.Result[string]
	assert.True(t, zero.IsError(), "the zero result should be an Error")
}

func TestTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, parsec.NumTags)
	assert.Equal(t, "Success", parsec.Success.String())
	assert.Equal(t, "Fatal", fmt.Sprintf("%#v", parsec.Fatal))
	assert.Equal(t, "Tag(7)", parsec.Tag(7).String())

	assert.Equal(t, "unexpected end of input", parsec.ExhaustedInput.String())
	assert.Equal(t, "ExhaustedInput", parsec.ExhaustedInput.GoString())
	assert.Equal(t, "Cause(-1)", parsec.Cause(-1).String())
}
