// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import "strconv"

// Mark stamps descriptors visited during a traversal. Each traversal allocates a fresh
// mark, so stale marks from earlier passes never have to be cleared. Marks are 64 bits wide
// so a table never runs out of fresh marks.
type Mark uint64

// Reserved marks:
const (
	MarkGetVarNames Mark = iota
	MarkOccurs
	MarkVisitedInOccursCheck
	MarkNone
)

// Reserved reports whether m is one of the reserved marks.
func (m Mark) Reserved() bool { return m < MarkNone }

// Next returns a mark greater than m which is never one of the reserved marks.
func (m Mark) Next() Mark {
	if m < MarkNone {
		return MarkNone + 1
	}
	return m + 1
}

func (m Mark) String() string {
	switch m {
	case MarkGetVarNames:
		return "get_var_names"
	case MarkOccurs:
		return "occurs"
	case MarkVisitedInOccursCheck:
		return "visited_in_occurs_check"
	case MarkNone:
		return "none"
	}
	return "mark" + strconv.FormatUint(uint64(m), 10)
}
