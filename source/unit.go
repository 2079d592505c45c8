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

package source

import "fmt"

// Unit is a unit of measurement for the column of a [Location].
type Unit int

const (
	Runes     Unit = iota // Columns count Unicode code points.
	Bytes                 // Columns count UTF-8 bytes.
	UTF16                 // Columns count UTF-16 code units, as LSP does.
	TermWidth             // Columns count terminal cells, respecting tabstops.
)

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Runes:
		return "Runes"
	case Bytes:
		return "Bytes"
	case UTF16:
		return "UTF16"
	case TermWidth:
		return "TermWidth"
	default:
		return fmt.Sprintf("source.Unit(%d)", int(u))
	}
}
