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

import "fmt"

// Result is the outcome of running a [Parser]: exactly one of Success
// (carrying a value), Error or Fatal. See [Tag].
//
// Failures carry no payload. The zero Result is an Error.
type Result[T any] struct {
	tag   Tag
	value T
}

// Ok returns a successful result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{tag: Success, value: value}
}

// Fail returns a recoverable failure.
func Fail[T any]() Result[T] {
	return Result[T]{tag: Error}
}

// Abort returns a committed failure.
func Abort[T any]() Result[T] {
	return Result[T]{tag: Fatal}
}

// Tag returns which variant this result is.
func (r Result[T]) Tag() Tag {
	return r.tag
}

// IsSuccess returns whether this result is a [Success].
func (r Result[T]) IsSuccess() bool {
	return r.tag == Success
}

// IsError returns whether this result is an [Error].
func (r Result[T]) IsError() bool {
	return r.tag == Error
}

// IsFatal returns whether this result is [Fatal].
func (r Result[T]) IsFatal() bool {
	return r.tag == Fatal
}

// Get returns this result's value, and whether it is a success.
func (r Result[T]) Get() (T, bool) {
	if r.tag != Success {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Value returns the value of a successful result.
//
// Panics if this result is not a [Success]: extracting a value from a failure
// is a programming error.
func (r Result[T]) Value() T {
	if r.tag != Success {
		panic(fmt.Sprintf("parsec: called Value() on %v result", r.tag))
	}
	return r.value
}

// String implements [fmt.Stringer].
func (r Result[T]) String() string {
	switch r.tag {
	case Success:
		return fmt.Sprintf("Success(%v)", r.value)
	case Error, Fatal:
		return r.tag.String()
	default:
		panic(badTag(r.tag))
	}
}

// failed converts a failed result into a failed result of another type.
func failed[S, T any](r Result[T]) Result[S] {
	switch r.tag {
	case Error, Fatal:
		return Result[S]{tag: r.tag}
	default:
		panic(fmt.Sprintf("parsec: cannot convert %v result", r.tag))
	}
}

func badTag(t Tag) string {
	return fmt.Sprintf("parsec: invalid result tag %#v", t)
}
