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

package typeutil

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/subs/types"
)

// See "Efficient Generalization with Levels" (Oleg Kiselyov) -- http://okmij.org/ftp/ML/generalization.html#levels
//
// Generalize promotes every class reachable from v whose rank is greater than rank to the
// generalized rank. This is called when the let-binding at rank.Next() goes out of scope.
// The roots of the promoted classes are returned.
func (t *Table) Generalize(v types.Var, rank types.Rank) *set.Set[types.Var] {
	generalized := set.New[types.Var](8)
	t.visitGeneralize(t.RootKey(v), rank, t.FreshMark(), generalized)
	return generalized
}

func (t *Table) visitGeneralize(v types.Var, rank types.Rank, epoch types.Mark, generalized *set.Set[types.Var]) {
	d := &t.entries[v].desc
	if d.Mark == epoch {
		return
	}
	d.Mark = epoch
	if d.Rank > rank {
		d.Rank = types.Generalized
		generalized.Insert(v)
	}
	types.ContentVars(d.Content, func(child types.Var) bool {
		t.visitGeneralize(t.RootKey(child), rank, epoch, generalized)
		return true
	})
}
