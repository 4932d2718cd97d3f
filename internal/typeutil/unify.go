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

type pair struct{ a, b types.Var }

func (ctx *Context) unify(a, b types.Var) {
	t := ctx.Table
	ra, rb := t.RootKey(a), t.RootKey(b)
	if ra == rb {
		return
	}
	da, db := t.entries[ra].desc, t.entries[rb].desc
	rank := types.MinRank(da.Rank, db.Rank)
	ctx.trace("unify", "left", ra, "right", rb, "leftContent", da.Content.TypeName(), "rightContent", db.Content.TypeName())

	// prevent cyclical types:
	if needsOccursCheck(da.Content, db.Content) {
		if !ctx.checkCycles(ra, rb, da.Content, db.Content, rank) {
			return
		}
		// references to either class may have been replaced by recursion variables
		da, db = t.entries[ra].desc, t.entries[rb].desc
	}

	switch ca := da.Content.(type) {
	case types.FlexVar:
		ctx.unifyFlex(ra, rb, ca, db.Content, rank)
	case types.RigidVar:
		ctx.unifyRigid(ra, rb, ca, db.Content, rank)
	case types.RecursionVar:
		ctx.unifyRecursion(ra, rb, ca, db.Content, rank)
	case types.Structure:
		ctx.unifyStructure(ra, rb, ca, db.Content, rank)
	case types.Alias:
		ctx.unifyAlias(ra, rb, ca, db.Content, rank)
	case types.RangedNumber:
		ctx.unifyRangedNumber(ra, rb, ca, db.Content, rank)
	case types.Pure, types.Effectful:
		ctx.unifyEffect(ra, rb, ca, db.Content, rank)
	case types.Error:
		ctx.merge(ra, rb, ca, rank)
	default:
		panic("unexpected content " + ca.TypeName())
	}
}

func hasStructure(c types.Content) bool {
	switch c.(type) {
	case types.Structure, types.Alias:
		return true
	}
	return false
}

// Rigid and poisoned classes never bind to structure, so their mismatches take priority.
// Recursion variables are unified by unrolling and never join a structure's class.
func needsOccursCheck(ca, cb types.Content) bool {
	if !hasStructure(ca) && !hasStructure(cb) {
		return false
	}
	for _, c := range [2]types.Content{ca, cb} {
		switch c.(type) {
		case types.RigidVar, types.Error, types.RecursionVar:
			return false
		}
	}
	return true
}

// Check both directions for cycles which joining ra and rb would create. Returns false if
// an infinite-type mismatch was recorded.
func (ctx *Context) checkCycles(ra, rb types.Var, ca, cb types.Content, rank types.Rank) bool {
	t := ctx.Table
	for _, dir := range [2]pair{{ra, rb}, {rb, ra}} {
		res := t.occurs(dir.a, dir.b, rank, true)
		if !res.found {
			continue
		}
		if ctx.AllowRecursion && res.guarded {
			rec := t.introduceRecursionVar(dir.a, res.refs, rank)
			ctx.trace("recursion", "var", rec, "structure", dir.a, "refs", len(res.refs))
			continue
		}
		ctx.mismatch(types.InfiniteType, ra, rb, ca, cb, rank)
		return false
	}
	return true
}

func mismatchKind(ca, cb types.Content) types.MismatchKind {
	_, ra := ca.(types.RigidVar)
	_, rb := cb.(types.RigidVar)
	if ra || rb {
		return types.RigidMismatch
	}
	return types.UnificationMismatch
}

func (ctx *Context) unifyFlex(ra, rb types.Var, ca types.FlexVar, cb types.Content, rank types.Rank) {
	switch cb := cb.(type) {
	case types.FlexVar:
		if ca.Name == "" {
			ca.Name = cb.Name
		}
		ctx.merge(ra, rb, ca, rank)
	default:
		ctx.merge(ra, rb, cb, rank)
	}
}

func (ctx *Context) unifyRigid(ra, rb types.Var, ca types.RigidVar, cb types.Content, rank types.Rank) {
	switch cb := cb.(type) {
	case types.FlexVar:
		ctx.merge(ra, rb, ca, rank)
	case types.RigidVar:
		if ca.Name != cb.Name {
			ctx.mismatch(types.RigidMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.merge(ra, rb, ca, rank)
	case types.Error:
		ctx.merge(ra, rb, cb, rank)
	default:
		ctx.mismatch(types.RigidMismatch, ra, rb, ca, cb, rank)
	}
}

// A recursion variable is equal to its structure up to unrolling. Unifying it with a
// structure unifies the recursion variable's structure instead, leaving both classes apart.
func (ctx *Context) unifyRecursion(ra, rb types.Var, ca types.RecursionVar, cb types.Content, rank types.Rank) {
	switch cb := cb.(type) {
	case types.FlexVar:
		if ca.Name == "" {
			ca.Name = cb.Name
		}
		ctx.merge(ra, rb, ca, rank)
	case types.RecursionVar:
		ctx.merge(ra, rb, ca, rank)
		ctx.unify(ca.Structure, cb.Structure)
	case types.Structure, types.Alias:
		ctx.unify(ca.Structure, rb)
	case types.Error:
		ctx.merge(ra, rb, cb, rank)
	default:
		ctx.mismatch(mismatchKind(ca, cb), ra, rb, ca, cb, rank)
	}
}

func (ctx *Context) unifyStructure(ra, rb types.Var, ca types.Structure, cb types.Content, rank types.Rank) {
	switch cb := cb.(type) {
	case types.FlexVar:
		ctx.merge(ra, rb, ca, rank)
	case types.RigidVar:
		ctx.mismatch(types.RigidMismatch, ra, rb, ca, cb, rank)
	case types.RecursionVar:
		ctx.unify(ra, cb.Structure)
	case types.Structure:
		ctx.unifyFlatType(ra, rb, ca.Flat, cb.Flat, rank)
	case types.Alias:
		if cb.Kind == types.OpaqueAlias {
			ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.unify(ra, cb.Real)
	case types.RangedNumber:
		if !rangeContains(cb.Range, ca) {
			ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.merge(ra, rb, ca, rank)
	case types.Error:
		ctx.merge(ra, rb, cb, rank)
	default:
		ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
	}
}

func rangeContains(r types.NumericRange, s types.Structure) bool {
	app, ok := s.Flat.(types.Apply)
	return ok && app.Args.Len() == 0 && r.Contains(app.Name)
}

// A structural alias is interchangeable with its real type. Unifying it with anything other
// than a type-variable or another alias unifies the real type instead.
func (ctx *Context) unifyAlias(ra, rb types.Var, ca types.Alias, cb types.Content, rank types.Rank) {
	switch cb := cb.(type) {
	case types.FlexVar:
		ctx.merge(ra, rb, ca, rank)
	case types.RigidVar:
		ctx.mismatch(types.RigidMismatch, ra, rb, ca, cb, rank)
	case types.Alias:
		if ca.Name == cb.Name && ca.Args.Len() == cb.Args.Len() {
			ctx.merge(ra, rb, ca, rank)
			ctx.unifyLists(ca.Args, cb.Args)
			ctx.unify(ca.Real, cb.Real)
			return
		}
		if ca.Kind == types.OpaqueAlias || cb.Kind == types.OpaqueAlias {
			ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.merge(ra, rb, ca, rank)
		ctx.unify(ca.Real, cb.Real)
	case types.Error:
		ctx.merge(ra, rb, cb, rank)
	case types.Pure, types.Effectful:
		ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
	default: // Structure, RecursionVar, or RangedNumber
		if ca.Kind == types.OpaqueAlias {
			ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.unify(ca.Real, rb)
	}
}

func (ctx *Context) unifyRangedNumber(ra, rb types.Var, ca types.RangedNumber, cb types.Content, rank types.Rank) {
	switch cb := cb.(type) {
	case types.FlexVar:
		ctx.merge(ra, rb, ca, rank)
	case types.RangedNumber:
		r, ok := ca.Range.Intersect(cb.Range)
		if !ok {
			ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.merge(ra, rb, types.RangedNumber{Range: r}, rank)
	case types.Structure:
		if !rangeContains(ca.Range, cb) {
			ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.merge(ra, rb, cb, rank)
	case types.Alias:
		if cb.Kind == types.OpaqueAlias {
			ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
			return
		}
		ctx.unify(ra, cb.Real)
	case types.Error:
		ctx.merge(ra, rb, cb, rank)
	default:
		ctx.mismatch(mismatchKind(ca, cb), ra, rb, ca, cb, rank)
	}
}

func (ctx *Context) unifyEffect(ra, rb types.Var, ca, cb types.Content, rank types.Rank) {
	switch cb.(type) {
	case types.FlexVar:
		ctx.merge(ra, rb, ca, rank)
	case types.Error:
		ctx.merge(ra, rb, cb, rank)
	default:
		if ca.TypeName() != cb.TypeName() {
			ctx.mismatch(mismatchKind(ca, cb), ra, rb, ca, cb, rank)
			return
		}
		ctx.merge(ra, rb, ca, rank)
	}
}

// Unify lists of equal length, pairwise.
func (ctx *Context) unifyLists(a, b types.VarList) {
	a.Range(func(i int, va types.Var) bool {
		ctx.unify(va, b.Get(i))
		return true
	})
}

// Classes are joined before their children are unified, so unifying the children of
// recursive types terminates.
func (ctx *Context) unifyFlatType(ra, rb types.Var, fa, fb types.FlatType, rank types.Rank) {
	ca, cb := types.Structure{Flat: fa}, types.Structure{Flat: fb}
	switch fa := fa.(type) {
	case types.Apply:
		if fb, ok := fb.(types.Apply); ok && fa.Name == fb.Name && fa.Args.Len() == fb.Args.Len() {
			ctx.merge(ra, rb, ca, rank)
			ctx.unifyLists(fa.Args, fb.Args)
			return
		}

	case types.Func:
		if fb, ok := fb.(types.Func); ok && fa.Args.Len() == fb.Args.Len() {
			ctx.merge(ra, rb, ca, rank)
			ctx.unifyLists(fa.Args, fb.Args)
			ctx.unify(fa.Ret, fb.Ret)
			ctx.unify(fa.Effect, fb.Effect)
			return
		}

	case types.Record:
		switch fb := fb.(type) {
		case types.Record:
			ctx.unifyRecords(ra, rb, fa, fb, rank)
			return
		case types.EmptyRecord:
			ctx.unifyClosedRecord(ra, rb, fa, ca, cb, rank)
			return
		}

	case types.EmptyRecord:
		switch fb := fb.(type) {
		case types.EmptyRecord:
			ctx.merge(ra, rb, ca, rank)
			return
		case types.Record:
			ctx.unifyClosedRecord(ra, rb, fb, ca, cb, rank)
			return
		}

	case types.TagUnion:
		switch fb := fb.(type) {
		case types.TagUnion:
			ctx.unifyTagUnions(ra, rb, fa, fb, rank)
			return
		case types.EmptyTagUnion:
			ctx.unifyClosedTagUnion(ra, rb, fa, ca, cb, rank)
			return
		}

	case types.EmptyTagUnion:
		switch fb := fb.(type) {
		case types.EmptyTagUnion:
			ctx.merge(ra, rb, ca, rank)
			return
		case types.TagUnion:
			ctx.unifyClosedTagUnion(ra, rb, fb, ca, cb, rank)
			return
		}

	default:
		panic("unexpected flat type " + fa.TypeName())
	}

	ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
}
