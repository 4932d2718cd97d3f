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

package subs

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/subs/types"
)

// Generalize every type-variable reachable from v whose rank is above rank, returning the set
// of generalized roots. Call Generalize when leaving the scope of a let-binding at rank+1.
func (s *Subs) Generalize(v types.Var, rank types.Rank) *set.Set[types.Var] {
	generalized := s.table.Generalize(v, rank)
	if s.ctx.Tracer.Enabled() {
		s.ctx.Tracer.Trace("generalize", "var", v, "rank", rank, "count", generalized.Size())
	}
	return generalized
}

// Instantiate returns a fresh copy of v's type at rank. Generalized type-variables are
// replaced with fresh flexible type-variables (rigid type-variables are copied as flexible
// type-variables with the same name); all other classes are shared with the original.
func (s *Subs) Instantiate(v types.Var, rank types.Rank) types.Var {
	return s.table.Instantiate(v, rank)
}

// NameVars names the unnamed generalized type-variables and recursion variables reachable
// from v, for display.
func (s *Subs) NameVars(v types.Var) { s.table.NameVars(v) }
