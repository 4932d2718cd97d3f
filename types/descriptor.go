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

// Var is a handle to a type-variable's slot within a unification table. A Var is only
// meaningful for the table which issued it.
type Var uint32

// NoVar marks an absent type-variable.
const NoVar Var = 1<<32 - 1

func (v Var) Index() int { return int(v) }

func (v Var) String() string {
	if v == NoVar {
		return "<none>"
	}
	return "#" + strconv.Itoa(int(v))
}

// Descriptor is the payload of a union-find class. Only the descriptor stored at the
// class's root is authoritative.
type Descriptor struct {
	Content Content
	Rank    Rank
	Mark    Mark
	// Copy caches the fresh type-variable created while instantiating a generalized
	// type-variable. It must be cleared after each instantiation.
	Copy Var
}

// DefaultDescriptor returns an unnamed flexible type-variable at the generalized rank.
func DefaultDescriptor() Descriptor {
	return Descriptor{Content: FlexVar{}, Rank: Generalized, Mark: MarkNone, Copy: NoVar}
}

// FromContent returns a descriptor for c with a default rank, mark, and copy.
func FromContent(c Content) Descriptor {
	d := DefaultDescriptor()
	d.Content = c
	return d
}

func (d Descriptor) HasCopy() bool { return d.Copy != NoVar }
