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

// Package source provides the immutable input buffers that parsec cursors
// read from.
//
// [File] is a named piece of text. It is decoded into runes once, and every
// cursor over it shares that decoded buffer. A File also tracks the
// book-keeping needed to turn an element offset into a user-displayable
// [Location], for diagnostics.
package source
