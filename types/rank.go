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

// Rank is the binding depth of a type-variable. Lower ranks are more general.
type Rank uint32

// Generalized is the rank of let-polymorphic type-variables.
const Generalized Rank = 0

// Toplevel is the rank of type-variables bound at the top level of a module.
func Toplevel() Rank { return 1 }

// Import is the rank of type-variables introduced while importing a module's dependencies.
func Import() Rank { return 2 }

// Next returns the rank of a nested binding scope.
func (r Rank) Next() Rank { return r + 1 }

func (r Rank) IsGeneralized() bool { return r == Generalized }

// MinRank returns the more general of two ranks.
func MinRank(a, b Rank) Rank {
	if a < b {
		return a
	}
	return b
}

func (r Rank) String() string {
	if r == Generalized {
		return "generalized"
	}
	return strconv.Itoa(int(r))
}
