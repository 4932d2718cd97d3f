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
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/subs/types"
)

func TestOccursInRecordExtension(t *testing.T) {
	ctx, b := newTestContext()
	tbl := ctx.Table
	i64 := b.Const(types.I64)
	a := b.Flex()
	tbl.SetContent(a, types.NewRecord(types.SingletonFieldMap("x", i64), a))

	if !tbl.Occurs(a, a) {
		t.Fatalf("expected %v to occur within its own structure", a)
	}
	if !tbl.Occurs(i64, a) {
		t.Fatalf("expected %v to occur within %v", i64, a)
	}
	if tbl.Occurs(a, i64) {
		t.Fatalf("expected %v not to occur within %v", a, i64)
	}
}

func TestOccursAfterFlexUnify(t *testing.T) {
	ctx, b := newTestContext()
	x, y := b.Flex(), b.Flex()
	mustUnify(t, ctx, x, y)
	if ctx.Table.Occurs(x, y) {
		t.Fatalf("expected no structural occurrence between flexible vars")
	}
}

func TestInfiniteRecord(t *testing.T) {
	for _, allow := range []bool{false, true} {
		ctx, b := newTestContext()
		ctx.AllowRecursion = allow
		a := b.Flex()
		rec := b.Record(map[string]types.Var{"x": b.Const(types.I64)}, a)
		expectMismatches(t, ctx, a, rec, types.InfiniteType)
		if !isError(ctx.Table, a) || !ctx.Table.Unioned(a, rec) {
			t.Fatalf("expected a poisoned class, found %s", spew.Sdump(ctx.Table.Get(a)))
		}
	}
}

func TestInfiniteApply(t *testing.T) {
	for _, allow := range []bool{false, true} {
		ctx, b := newTestContext()
		ctx.AllowRecursion = allow
		a := b.Flex()
		expectMismatches(t, ctx, b.App("List", a), a, types.InfiniteType)
	}
}

// cons builds `[Cons elem tail, Nil]`.
func cons(ctx *Context, elem, tail types.Var) types.Var {
	b := newBuilder(ctx)
	return b.ClosedTagUnion(map[string][]types.Var{"Cons": {elem, tail}, "Nil": nil})
}

func recursionVarOf(t *testing.T, tbl *Table, list types.Var) types.RecursionVar {
	t.Helper()
	u := tbl.Content(list).(types.Structure).Flat.(types.TagUnion)
	payload, _ := u.Tags.Get("Cons")
	rec, ok := tbl.Content(payload.Get(1)).(types.RecursionVar)
	if !ok {
		t.Fatalf("expected a recursion var, found %s", spew.Sdump(tbl.Get(payload.Get(1))))
	}
	return rec
}

func TestRecursiveTagUnion(t *testing.T) {
	ctx, _ := newTestContext()
	a := ctx.Table.Fresh(types.FlexVar{}, types.Toplevel())
	list := cons(ctx, ctx.Table.Fresh(types.NewApply(types.I64), types.Toplevel()), a)
	expectMismatches(t, ctx, a, list, types.InfiniteType)

	ctx, _ = newTestContext()
	ctx.AllowRecursion = true
	a = ctx.Table.Fresh(types.FlexVar{}, types.Toplevel())
	list = cons(ctx, ctx.Table.Fresh(types.NewApply(types.I64), types.Toplevel()), a)
	mustUnify(t, ctx, a, list)
	if !ctx.Table.Unioned(a, list) {
		t.Fatalf("expected %v and %v to be unioned", a, list)
	}
	rec := recursionVarOf(t, ctx.Table, list)
	if !ctx.Table.Unioned(rec.Structure, list) {
		t.Fatalf("expected the recursion var to point at %v, found %v", list, rec.Structure)
	}
	if ctx.Table.Occurs(list, list) {
		t.Fatalf("expected recursion vars to bound the occurs check")
	}

	// the recursive type unifies with its unrolling
	tail := ctx.Table.Fresh(types.FlexVar{}, types.Toplevel())
	unrolled := cons(ctx, ctx.Table.Fresh(types.FlexVar{}, types.Toplevel()), tail)
	mustUnify(t, ctx, list, unrolled)
	if _, ok := ctx.Table.Content(tail).(types.RecursionVar); !ok {
		t.Fatalf("expected the tail to be recursive, found %s", spew.Sdump(ctx.Table.Get(tail)))
	}
}

func TestUnifyRecursiveTagUnions(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.AllowRecursion = true
	lists := make([]types.Var, 2)
	for i := range lists {
		a := ctx.Table.Fresh(types.FlexVar{}, types.Toplevel())
		lists[i] = cons(ctx, ctx.Table.Fresh(types.FlexVar{}, types.Toplevel()), a)
		mustUnify(t, ctx, a, lists[i])
	}
	mustUnify(t, ctx, lists[0], lists[1])
	if !ctx.Table.Unioned(lists[0], lists[1]) {
		t.Fatalf("expected recursive types to be unioned")
	}
	r0, r1 := recursionVarOf(t, ctx.Table, lists[0]), recursionVarOf(t, ctx.Table, lists[1])
	if !ctx.Table.Unioned(r0.Structure, r1.Structure) {
		t.Fatalf("expected recursion vars to share a structure")
	}
}

func TestRecursionThroughFunction(t *testing.T) {
	ctx, b := newTestContext()
	ctx.AllowRecursion = true
	a := b.Flex()
	wrap := b.ClosedTagUnion(map[string][]types.Var{"Wrap": {a}})
	f := b.Arrow1(b.Const(types.I64), wrap)
	mustUnify(t, ctx, a, f)

	ctx, b = newTestContext()
	ctx.AllowRecursion = true
	a = b.Flex()
	wrap = b.ClosedTagUnion(map[string][]types.Var{"Wrap": {b.Const(types.I64)}})
	expectMismatches(t, ctx, a, b.Arrow2(a, b.Const(types.I64), wrap), types.InfiniteType)
}

func TestInfiniteTagUnionExtension(t *testing.T) {
	for _, allow := range []bool{false, true} {
		ctx, b := newTestContext()
		ctx.AllowRecursion = allow
		a := b.Flex()
		u := b.TagUnion(map[string][]types.Var{"A": nil}, a)
		expectMismatches(t, ctx, a, u, types.InfiniteType)
		if !isError(ctx.Table, a) {
			t.Fatalf("expected a poisoned class, found %s", spew.Sdump(ctx.Table.Get(a)))
		}
	}
}

func TestRecursionGuardedOnOnePath(t *testing.T) {
	// x is reached through the payload of A first, and then directly through g
	ctx, b := newTestContext()
	ctx.AllowRecursion = true
	a := b.Flex()
	x := b.ClosedRecord(map[string]types.Var{"h": a})
	rec := b.ClosedRecord(map[string]types.Var{
		"f": b.ClosedTagUnion(map[string][]types.Var{"A": {x}}),
		"g": x,
	})
	expectMismatches(t, ctx, a, rec, types.InfiniteType)
}
