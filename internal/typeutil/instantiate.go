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
	"github.com/wdamron/subs/types"
)

// Instantiate copies every generalized class reachable from v into fresh type-variables at
// rank. Repeated occurrences of a generalized class share one copy. Rigid type-variables are
// copied as flexible type-variables with the same name. Classes which are not generalized are
// shared with the original.
func (t *Table) Instantiate(v types.Var, rank types.Rank) types.Var {
	var copied []types.Var
	cp := t.instantiate(v, rank, &copied)
	for _, root := range copied {
		t.entries[root].desc.Copy = types.NoVar
	}
	return cp
}

func (t *Table) instantiate(v types.Var, rank types.Rank, copied *[]types.Var) types.Var {
	root := t.RootKey(v)
	d := t.entries[root].desc
	if !d.Rank.IsGeneralized() {
		return root
	}
	if d.HasCopy() {
		return d.Copy
	}
	cp := t.Fresh(types.FlexVar{}, rank)
	t.entries[root].desc.Copy = cp
	*copied = append(*copied, root)

	var content types.Content
	switch c := d.Content.(type) {
	case types.RigidVar:
		content = types.FlexVar{Name: c.Name}
	default:
		content = types.MapContentVars(d.Content, func(child types.Var) types.Var {
			return t.instantiate(child, rank, copied)
		})
	}
	t.entries[cp].desc.Content = content
	return cp
}
