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

// Tracer receives a structured event for each step of unification, when enabled.
type Tracer interface {
	Enabled() bool
	Trace(event string, args ...interface{})
}

type noTracer struct{}

func (noTracer) Enabled() bool                  { return false }
func (noTracer) Trace(string, ...interface{}) {}

// Context unifies type-variables within a table.
//
// A context cannot be used concurrently.
type Context struct {
	Table *Table
	// When set, a cycle which passes through a tag union becomes a recursive type instead of
	// an infinite-type mismatch.
	AllowRecursion bool
	Tracer         Tracer

	mismatches types.Mismatches
}

func NewContext(t *Table) *Context {
	return &Context{Table: t, Tracer: noTracer{}}
}

func (ctx *Context) tracing() bool { return ctx.Tracer != nil && ctx.Tracer.Enabled() }

func (ctx *Context) trace(event string, args ...interface{}) {
	if ctx.tracing() {
		ctx.Tracer.Trace(event, args...)
	}
}

// Unify joins the classes of a and b, merging their content. Local failures do not stop
// unification: each is recorded, the failing class is poisoned with types.Error, and
// unification continues with the remaining children.
//
// The recorded mismatches are returned. The error is types.ErrAllocation if the table could
// not grow, in which case the table should be discarded.
func (ctx *Context) Unify(a, b types.Var) (ms types.Mismatches, err error) {
	ctx.mismatches = nil
	defer func() {
		if r := recover(); r != nil {
			m, ok := r.(*types.Mismatch)
			if !ok || m.Kind != types.AllocationFailure {
				panic(r)
			}
			ctx.trace("allocation failure", "vars", ctx.Table.Len())
			ms, err = nil, m
		}
	}()
	ctx.unify(a, b)
	ms, ctx.mismatches = ctx.mismatches, nil
	return ms, nil
}

// Record a mismatch and poison the joined class.
func (ctx *Context) mismatch(kind types.MismatchKind, ra, rb types.Var, ca, cb types.Content, rank types.Rank) {
	m := &types.Mismatch{Kind: kind, Left: ra, Right: rb, LeftType: ca.TypeName(), RightType: cb.TypeName()}
	ctx.mismatches = append(ctx.mismatches, m)
	ctx.trace("mismatch", "kind", kind.String(), "left", ra, "right", rb, "leftContent", m.LeftType, "rightContent", m.RightType)
	ctx.merge(ra, rb, types.Error{}, rank)
}

func (ctx *Context) merge(ra, rb types.Var, c types.Content, rank types.Rank) types.Var {
	root := ctx.Table.Union(ra, rb, types.Descriptor{Content: c, Rank: rank, Mark: types.MarkNone, Copy: types.NoVar})
	ctx.trace("union", "root", root, "left", ra, "right", rb, "content", c.TypeName(), "rank", rank)
	return root
}

func (ctx *Context) fresh(c types.Content, rank types.Rank) types.Var {
	return ctx.Table.Fresh(c, rank)
}
