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

// MaxVars is the largest number of type-variables a table may hold.
const MaxVars = 1<<31 - 1

type entry struct {
	desc types.Descriptor
	// parent is the entry's own index for the root of a class.
	parent types.Var
}

// Table is an arena of type-variables joined into classes by union-find.
//
// A table cannot be used concurrently.
type Table struct {
	entries []entry
	maxVars int
	mark    types.Mark
}

// Create a table with space for capacity type-variables, which may grow up to maxVars
// type-variables. If maxVars is not positive, MaxVars is used.
func NewTable(capacity, maxVars int) *Table {
	if maxVars <= 0 || maxVars > MaxVars {
		maxVars = MaxVars
	}
	if capacity < 0 {
		capacity = 0
	}
	if capacity > maxVars {
		capacity = maxVars
	}
	return &Table{entries: make([]entry, 0, capacity), maxVars: maxVars, mark: types.MarkNone}
}

func (t *Table) Len() int { return len(t.entries) }

func (t *Table) Cap() int { return cap(t.entries) }

// Reserve space for n more type-variables. Previously issued type-variables remain valid.
func (t *Table) Reserve(n int) error {
	need := len(t.entries) + n
	if n < 0 || need > t.maxVars {
		return types.ErrAllocation
	}
	if need <= cap(t.entries) {
		return nil
	}
	newCap := 2 * cap(t.entries)
	if newCap < need {
		newCap = need
	}
	if newCap > t.maxVars {
		newCap = t.maxVars
	}
	entries := make([]entry, len(t.entries), newCap)
	copy(entries, t.entries)
	t.entries = entries
	return nil
}

// Push a new root. Push panics with types.ErrAllocation if the table cannot grow.
func (t *Table) Push(content types.Content, rank types.Rank, mark types.Mark, copy types.Var) types.Var {
	return t.PushDescriptor(types.Descriptor{Content: content, Rank: rank, Mark: mark, Copy: copy})
}

// PushDescriptor pushes a new root for d. A reserved mark in d is replaced by types.MarkNone.
func (t *Table) PushDescriptor(d types.Descriptor) types.Var {
	if len(t.entries) == cap(t.entries) {
		if err := t.Reserve(1); err != nil {
			panic(err)
		}
	}
	if d.Mark.Reserved() {
		d.Mark = types.MarkNone
	}
	v := types.Var(len(t.entries))
	t.entries = append(t.entries, entry{desc: d, parent: v})
	return v
}

// Fresh pushes a new root for content at rank.
func (t *Table) Fresh(content types.Content, rank types.Rank) types.Var {
	return t.Push(content, rank, types.MarkNone, types.NoVar)
}

// Descriptor returns the descriptor stored in v's own slot. It is only authoritative if
// v is a root.
func (t *Table) Descriptor(v types.Var) types.Descriptor { return t.entries[v].desc }

// SetDescriptor replaces the descriptor stored in v's own slot.
func (t *Table) SetDescriptor(v types.Var, d types.Descriptor) { t.entries[v].desc = d }

// RootKey returns the root of v's class, pointing every visited entry directly at the root.
func (t *Table) RootKey(v types.Var) types.Var {
	root := v
	for t.entries[root].parent != root {
		root = t.entries[root].parent
	}
	for v != root {
		next := t.entries[v].parent
		t.entries[v].parent = root
		v = next
	}
	return root
}

// IsRedirect is true if v is not the root of its class.
func (t *Table) IsRedirect(v types.Var) bool { return t.entries[v].parent != v }

// Parent returns the entry v points to, without path compression.
func (t *Table) Parent(v types.Var) types.Var { return t.entries[v].parent }

func (t *Table) Unioned(a, b types.Var) bool { return t.RootKey(a) == t.RootKey(b) }

// Union joins the classes of a and b and stores d at the new root. The root with the
// lower index survives. Union returns the new root.
func (t *Table) Union(a, b types.Var, d types.Descriptor) types.Var {
	ra, rb := t.RootKey(a), t.RootKey(b)
	if rb < ra {
		ra, rb = rb, ra
	}
	t.entries[ra].desc = d
	if ra != rb {
		t.entries[rb].parent = ra
	}
	return ra
}

// Get returns the descriptor of v's class.
func (t *Table) Get(v types.Var) types.Descriptor { return t.entries[t.RootKey(v)].desc }

func (t *Table) Content(v types.Var) types.Content { return t.entries[t.RootKey(v)].desc.Content }
func (t *Table) Rank(v types.Var) types.Rank       { return t.entries[t.RootKey(v)].desc.Rank }
func (t *Table) Mark(v types.Var) types.Mark       { return t.entries[t.RootKey(v)].desc.Mark }
func (t *Table) Copy(v types.Var) types.Var        { return t.entries[t.RootKey(v)].desc.Copy }

func (t *Table) SetContent(v types.Var, c types.Content) { t.entries[t.RootKey(v)].desc.Content = c }
func (t *Table) SetRank(v types.Var, r types.Rank)       { t.entries[t.RootKey(v)].desc.Rank = r }
func (t *Table) SetMark(v types.Var, m types.Mark)       { t.entries[t.RootKey(v)].desc.Mark = m }
func (t *Table) SetCopy(v types.Var, c types.Var)        { t.entries[t.RootKey(v)].desc.Copy = c }

// FreshMark returns a mark which has not been used by any earlier traversal of the table.
func (t *Table) FreshMark() types.Mark {
	t.mark = t.mark.Next()
	return t.mark
}
