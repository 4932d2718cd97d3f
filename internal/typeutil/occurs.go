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

// Result of searching a structure for a type-variable.
type occursResult struct {
	found bool
	// Classes whose content directly references the target.
	refs []types.Var
	// False if some reference is reachable without passing through a tag payload.
	guarded bool
}

type occursWalk struct {
	t      *Table
	target types.Var
	epoch  types.Mark
	rank   types.Rank
	adjust bool
	res    occursResult
	// Classes so far only reached through tag payloads. They are walked again if reached
	// through an unguarded path.
	guardedOnly *set.Set[types.Var]
}

// Occurs reports whether a's class is reachable from the structure of b's class. The search
// does not descend into recursion variables, which bound well-founded recursive types.
func (t *Table) Occurs(a, b types.Var) bool {
	return t.occurs(a, b, types.Generalized, false).found
}

// See "Efficient Generalization with Levels" (Oleg Kiselyov)
// http://okmij.org/ftp/ML/generalization.html#levels
//
// When adjust is set, the rank of every class reachable from b is lowered to rank, as in the
// sound_eager algorithm. Every class is visited at most twice per search, once through a tag
// payload and once through an unguarded path, even after the target is found.
func (t *Table) occurs(a, b types.Var, rank types.Rank, adjust bool) occursResult {
	w := occursWalk{t: t, target: t.RootKey(a), epoch: t.FreshMark(), rank: rank, adjust: adjust, guardedOnly: set.New[types.Var](0)}
	w.res.guarded = true
	w.visit(t.RootKey(b), false)
	return w.res
}

func (w *occursWalk) visit(v types.Var, underTag bool) {
	t := w.t
	d := &t.entries[v].desc
	switch {
	case d.Mark == types.MarkOccurs:
		return
	case d.Mark == w.epoch:
		if underTag || !w.guardedOnly.Remove(v) {
			return
		}
	}
	if w.adjust && d.Rank > w.rank {
		d.Rank = w.rank
	}
	if _, ok := d.Content.(types.RecursionVar); ok {
		d.Mark = w.epoch
		return
	}
	d.Mark = types.MarkOccurs
	referenced := false
	child := func(c types.Var, guarded bool) bool {
		c = t.RootKey(c)
		if c == w.target {
			w.res.found = true
			if !guarded {
				w.res.guarded = false
			}
			if !referenced {
				referenced = true
				w.res.refs = append(w.res.refs, v)
			}
			return true
		}
		w.visit(c, guarded)
		return true
	}
	// Only tag payloads guard a cycle. The extension of a tag union continues the same row.
	if s, ok := d.Content.(types.Structure); ok {
		if u, ok := s.Flat.(types.TagUnion); ok {
			u.Tags.Range(func(_ string, payload types.VarList) bool {
				payload.Range(func(_ int, c types.Var) bool { return child(c, true) })
				return true
			})
			child(u.Ext, underTag)
			w.done(v, d, underTag)
			return
		}
	}
	types.ContentVars(d.Content, func(c types.Var) bool { return child(c, underTag) })
	w.done(v, d, underTag)
}

func (w *occursWalk) done(v types.Var, d *types.Descriptor, underTag bool) {
	d.Mark = w.epoch
	if underTag {
		w.guardedOnly.Insert(v)
	}
}

// Replace each reference to target's class within refs by a new recursion variable which
// points back at target. Returns the recursion variable.
func (t *Table) introduceRecursionVar(target types.Var, refs []types.Var, rank types.Rank) types.Var {
	target = t.RootKey(target)
	rec := t.Fresh(types.RecursionVar{Structure: target}, rank)
	for _, ref := range refs {
		d := &t.entries[ref].desc
		d.Content = types.MapContentVars(d.Content, func(v types.Var) types.Var {
			if t.RootKey(v) == target {
				return rec
			}
			return v
		})
	}
	return rec
}
