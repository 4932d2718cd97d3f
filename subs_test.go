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

package subs_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/subs"
	"github.com/wdamron/subs/construct"
	"github.com/wdamron/subs/types"
)

func newStore(t testing.TB) (*subs.Subs, construct.Builder) {
	t.Helper()
	s := subs.New(subs.Config{InitialCapacity: 16})
	return s, construct.New(s, types.Toplevel())
}

func TestFlexVarsUnify(t *testing.T) {
	s, _ := newStore(t)
	a := s.Push(types.FlexVar{}, types.Generalized, types.MarkNone, types.NoVar)
	b := s.Push(types.FlexVar{}, types.Generalized, types.MarkNone, types.NoVar)
	if err := s.Unify(a, b); err != nil {
		t.Fatal(err)
	}
	if !s.Unioned(a, b) {
		t.Fatalf("expected %v and %v to be unioned", a, b)
	}
	if _, ok := s.Content(b).(types.FlexVar); !ok {
		t.Fatalf("expected a flexible var, found %s", spew.Sdump(s.Get(b)))
	}
}

func TestRigidAbsorbsFlex(t *testing.T) {
	s, b := newStore(t)
	a, x := b.Rigid("a"), b.Flex()
	if err := s.Unify(a, x); err != nil {
		t.Fatal(err)
	}
	if c, ok := s.Content(x).(types.RigidVar); !ok || c.Name != "a" {
		t.Fatalf("expected rigid var a, found %s", spew.Sdump(s.Get(x)))
	}
}

func TestRigidVarsMismatch(t *testing.T) {
	s, b := newStore(t)
	a, x := b.Rigid("a"), b.Rigid("b")
	err := s.Unify(a, x)
	if !types.HasKind(err, types.RigidMismatch) {
		t.Fatalf("expected a rigid mismatch, found %v", err)
	}
	var ms types.Mismatches
	if !errors.As(err, &ms) || len(ms) != 1 {
		t.Fatalf("expected one mismatch, found %v", err)
	}
	if _, ok := s.Content(a).(types.Error); !ok {
		t.Fatalf("expected a poisoned class, found %s", spew.Sdump(s.Get(a)))
	}
}

func TestFuncReturnMismatch(t *testing.T) {
	s, b := newStore(t)
	int1, int2 := b.Const("Int"), b.Const("Int")
	f1 := b.Arrow1(int1, b.Const("Str"))
	f2 := b.Arrow1(int2, b.Const("Bool"))
	err := s.Unify(f1, f2)
	var ms types.Mismatches
	if !errors.As(err, &ms) || len(ms) != 1 || ms[0].Kind != types.UnificationMismatch {
		t.Fatalf("expected one unification mismatch, found %v", err)
	}
	if !s.Unioned(int1, int2) {
		t.Fatalf("expected the argument types to unify")
	}
	if ms[0].LeftType != "Apply" || ms[0].RightType != "Apply" {
		t.Fatalf("unexpected mismatch %s", spew.Sdump(ms[0]))
	}
}

func TestInfiniteTypePolicy(t *testing.T) {
	for _, policy := range []subs.RecursionPolicy{subs.RejectCycles, subs.AllowRecursion} {
		s, b := newStore(t)
		a := b.Flex()
		rec := b.Record(map[string]types.Var{"x": b.Const(types.I64)}, a)
		if !s.Occurs(a, rec) {
			t.Fatalf("expected %v to occur within %v", a, rec)
		}
		if err := s.UnifyWith(a, rec, policy); !types.HasKind(err, types.InfiniteType) {
			t.Fatalf("%v: expected an infinite type, found %v", policy, err)
		}
	}

	s, b := newStore(t)
	a := b.Flex()
	list := b.ClosedTagUnion(map[string][]types.Var{"Cons": {b.Const(types.I64), a}, "Nil": nil})
	if err := s.UnifyWith(a, list, subs.RejectCycles); !types.HasKind(err, types.InfiniteType) {
		t.Fatalf("expected an infinite type, found %v", err)
	}

	s, b = newStore(t)
	a = b.Flex()
	list = b.ClosedTagUnion(map[string][]types.Var{"Cons": {b.Const(types.I64), a}, "Nil": nil})
	if err := s.UnifyWith(a, list, subs.AllowRecursion); err != nil {
		t.Fatal(err)
	}
	if s.Occurs(list, list) {
		t.Fatalf("expected the recursive type to be bounded by a recursion var")
	}
}

func TestGrowth(t *testing.T) {
	s := subs.New(subs.Config{InitialCapacity: 2})
	b := construct.New(s, types.Toplevel())
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	vars := make([]types.Var, len(names))
	for i, name := range names {
		vars[i] = b.Const(name)
	}
	if err := s.Reserve(1000); err != nil {
		t.Fatal(err)
	}
	for i, v := range vars {
		if name := s.Content(v).(types.Structure).Flat.(types.Apply).Name; name != names[i] {
			t.Fatalf("expected %s at %v, found %s", names[i], v, name)
		}
	}
	if s.Len() != len(names) {
		t.Fatalf("expected %d vars, found %d", len(names), s.Len())
	}
}

func TestAllocationFailure(t *testing.T) {
	s := subs.New(subs.Config{InitialCapacity: 6, MaxVars: 6})
	b := construct.New(s, types.Toplevel())
	x := b.OpenRecord(map[string]types.Var{"a": b.Flex()})
	y := b.OpenRecord(map[string]types.Var{"b": b.Flex()})
	if s.Len() != 6 {
		t.Fatalf("expected 6 vars, found %d", s.Len())
	}
	// the missing fields of each side need a fresh extension
	err := s.Unify(x, y)
	if !errors.Is(err, types.ErrAllocation) {
		t.Fatalf("expected an allocation failure, found %v", err)
	}
}

func TestUnifyProperties(t *testing.T) {
	s, b := newStore(t)
	vars := []types.Var{b.Flex(), b.Flex(), b.Flex(), b.Flex()}
	for _, v := range vars {
		if err := s.Unify(v, v); err != nil || !s.Unioned(v, v) {
			t.Fatalf("expected unify(v, v) to succeed: %v", err)
		}
	}

	// v1 <- v2 <- v3 <- v4
	for i := len(vars) - 1; i > 0; i-- {
		if err := s.Unify(vars[i-1], vars[i]); err != nil {
			t.Fatal(err)
		}
	}
	if s.RootKey(vars[3]) != vars[0] {
		t.Fatalf("expected %v to be the representative", vars[0])
	}
	for _, v := range vars[1:] {
		if !s.IsRedirect(v) {
			t.Fatalf("expected %v to redirect", v)
		}
	}

	other := b.Flex()
	if err := s.Unify(other, b.Const(types.I64)); err != nil {
		t.Fatal(err)
	}
	for _, v := range vars {
		if !s.Unioned(v, vars[0]) {
			t.Fatalf("expected %v to remain unioned", v)
		}
	}

	lo, hi := construct.New(s, 2).Flex(), construct.New(s, 5).Flex()
	if err := s.Unify(hi, lo); err != nil {
		t.Fatal(err)
	}
	if r := s.Rank(hi); r != 2 {
		t.Fatalf("expected merged rank 2, found %v", r)
	}
}

func TestLetPolymorphism(t *testing.T) {
	s, b := newStore(t)
	// let id = \x -> x
	inner := b.At(types.Toplevel().Next())
	x := inner.Flex()
	id := inner.Arrow1(x, x)
	generalized := s.Generalize(id, types.Toplevel())
	if generalized.Size() == 0 {
		t.Fatalf("expected generalized vars")
	}

	// id 1 and id "s"
	useInt := s.Instantiate(id, types.Toplevel())
	useStr := s.Instantiate(id, types.Toplevel())
	if err := s.Unify(useInt, b.Arrow1(b.Const(types.I64), b.Flex())); err != nil {
		t.Fatal(err)
	}
	if err := s.Unify(useStr, b.Arrow1(b.Const("Str"), b.Flex())); err != nil {
		t.Fatal(err)
	}
	if got := s.TypeString(useInt); got != "I64 -> I64" {
		t.Fatalf("expected I64 -> I64, found %s", got)
	}
	if got := s.TypeString(useStr); got != "Str -> Str" {
		t.Fatalf("expected Str -> Str, found %s", got)
	}
	if got := s.Display(id); got != "a -> a" {
		t.Fatalf("expected a -> a, found %s", got)
	}
}

func TestDescriptorAccess(t *testing.T) {
	s, b := newStore(t)
	x := b.Flex()
	d := s.Descriptor(x)
	d.Content = types.RigidVar{Name: "r"}
	s.SetDescriptor(x, d)
	if c, ok := s.Get(x).Content.(types.RigidVar); !ok || c.Name != "r" {
		t.Fatalf("expected rigid var r, found %s", spew.Sdump(s.Get(x)))
	}
	s.SetContent(x, types.FlexVar{})
	s.SetRank(x, 3)
	if s.Rank(x) != 3 {
		t.Fatalf("expected rank 3, found %v", s.Rank(x))
	}
}

func newBuilder(s *subs.Subs) construct.Builder { return construct.New(s, types.Toplevel()) }

func TestUnifyByUnrolling(t *testing.T) {
	s, b := newStore(t)
	real := b.Const(types.U8)
	age := b.Alias("Age", nil, real)
	u8 := b.Const(types.U8)
	if err := s.Unify(age, u8); err != nil {
		t.Fatal(err)
	}
	if s.Unioned(age, u8) || !s.Unioned(real, u8) {
		t.Fatalf("expected the real type to be joined in place of the alias")
	}

	a := b.Flex()
	list := b.ClosedTagUnion(map[string][]types.Var{"Cons": {b.Const(types.I64), a}, "Nil": nil})
	if err := s.UnifyWith(a, list, subs.AllowRecursion); err != nil {
		t.Fatal(err)
	}
	payload, _ := s.Content(list).(types.Structure).Flat.(types.TagUnion).Tags.Get("Cons")
	rec := payload.Get(1)
	if _, ok := s.Content(rec).(types.RecursionVar); !ok {
		t.Fatalf("expected a recursion var, found %s", spew.Sdump(s.Get(rec)))
	}
	unrolled := b.ClosedTagUnion(map[string][]types.Var{"Cons": {b.Flex(), b.Flex()}, "Nil": nil})
	if err := s.UnifyWith(rec, unrolled, subs.AllowRecursion); err != nil {
		t.Fatal(err)
	}
	if s.Unioned(rec, unrolled) || !s.Unioned(list, unrolled) {
		t.Fatalf("expected the recursion var's structure to be joined in its place")
	}
}
