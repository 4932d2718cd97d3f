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

// Package construct builds types within a unification store.
//
// Every call pushes new type-variables; constant types such as `I64` or `{}` are never
// shared between calls, so a mismatch involving one use does not poison another.
package construct

import (
	"github.com/wdamron/subs/types"
)

// Store issues type-variables. *subs.Subs implements Store.
type Store interface {
	Fresh(content types.Content, rank types.Rank) types.Var
}

// Builder pushes types into a store at a fixed rank.
type Builder struct {
	Store Store
	Rank  types.Rank
}

// New returns a builder for types at rank.
func New(s Store, rank types.Rank) Builder { return Builder{Store: s, Rank: rank} }

// At returns a copy of the builder which pushes types at rank.
func (b Builder) At(rank types.Rank) Builder { return Builder{Store: b.Store, Rank: rank} }

func (b Builder) fresh(c types.Content) types.Var { return b.Store.Fresh(c, b.Rank) }

// Type-variables

// Unnamed flexible type-variable: `_N`
func (b Builder) Flex() types.Var { return b.fresh(types.FlexVar{}) }

// Named flexible type-variable: `a`
func (b Builder) Named(name string) types.Var { return b.fresh(types.FlexVar{Name: name}) }

// Rigid (annotated) type-variable: `a`
func (b Builder) Rigid(name string) types.Var { return b.fresh(types.RigidVar{Name: name}) }

// Poisoned type: `?`
func (b Builder) Error() types.Var { return b.fresh(types.Error{}) }

// Types

// Type constant: `I64`, `Str`, etc
func (b Builder) Const(name string) types.Var { return b.fresh(types.NewApply(name)) }

// Type application: `List I64`
func (b Builder) App(name string, args ...types.Var) types.Var {
	return b.fresh(types.NewApply(name, args...))
}

// Pure function type: `(I64, I64) -> I64`
func (b Builder) Arrow(args []types.Var, ret types.Var) types.Var {
	return b.fresh(types.NewFunc(args, ret, b.Pure()))
}

// Pure function type: `I64 -> I64`
func (b Builder) Arrow1(arg, ret types.Var) types.Var {
	return b.Arrow([]types.Var{arg}, ret)
}

// Pure function type: `(I64, I64) -> I64`
func (b Builder) Arrow2(arg1, arg2, ret types.Var) types.Var {
	return b.Arrow([]types.Var{arg1, arg2}, ret)
}

// Effectful function type: `Str => {}`
func (b Builder) EffectArrow(args []types.Var, ret types.Var) types.Var {
	return b.fresh(types.NewFunc(args, ret, b.Effectful()))
}

// Function type with an explicit effect variable.
func (b Builder) FuncWithEffect(args []types.Var, ret, effect types.Var) types.Var {
	return b.fresh(types.NewFunc(args, ret, effect))
}

// Pure effect
func (b Builder) Pure() types.Var { return b.fresh(types.Pure{}) }

// Effectful effect
func (b Builder) Effectful() types.Var { return b.fresh(types.Effectful{}) }

// Empty record: `{}`
func (b Builder) EmptyRecord() types.Var { return b.fresh(types.Structure{Flat: types.EmptyRecord{}}) }

// Empty tag union: `[]`
func (b Builder) EmptyTagUnion() types.Var {
	return b.fresh(types.Structure{Flat: types.EmptyTagUnion{}})
}

// Record type: `{a : I64 | ext}`
func (b Builder) Record(fields map[string]types.Var, ext types.Var) types.Var {
	return b.fresh(types.NewRecord(types.NewFieldMap(fields), ext))
}

// Closed record type: `{a : I64}`
func (b Builder) ClosedRecord(fields map[string]types.Var) types.Var {
	return b.Record(fields, b.EmptyRecord())
}

// Open record type with a fresh extension: `{a : I64 | _N}`
func (b Builder) OpenRecord(fields map[string]types.Var) types.Var {
	return b.Record(fields, b.Flex())
}

// Tag union type: `[A I64, B | ext]`
func (b Builder) TagUnion(tags map[string][]types.Var, ext types.Var) types.Var {
	return b.fresh(types.NewTagUnion(types.NewTagMap(tags), ext))
}

// Closed tag union type: `[A I64, B]`
func (b Builder) ClosedTagUnion(tags map[string][]types.Var) types.Var {
	return b.TagUnion(tags, b.EmptyTagUnion())
}

// Open tag union type with a fresh extension: `[A I64, B | _N]`
func (b Builder) OpenTagUnion(tags map[string][]types.Var) types.Var {
	return b.TagUnion(tags, b.Flex())
}

// Structural alias: `Pair a = (a, a)`
func (b Builder) Alias(name string, args []types.Var, real types.Var) types.Var {
	return b.fresh(types.Alias{Name: name, Args: types.NewVarList(args...), Real: real, Kind: types.StructuralAlias})
}

// Opaque type: `Age := U8`
func (b Builder) Opaque(name string, args []types.Var, real types.Var) types.Var {
	return b.fresh(types.Alias{Name: name, Args: types.NewVarList(args...), Real: real, Kind: types.OpaqueAlias})
}

// Integer literal which fits in the given width, with either sign: `Int *`
func (b Builder) IntLiteral(w types.IntLitWidth) types.Var {
	return b.fresh(types.RangedNumber{Range: types.IntAtLeastEitherSign(w)})
}

// Negative integer literal which fits in the given signed width: `Int *`
func (b Builder) NegIntLiteral(w types.IntLitWidth) types.Var {
	return b.fresh(types.RangedNumber{Range: types.IntAtLeastSigned(w)})
}

// Numeric literal which may also be fractional: `Num *`
func (b Builder) NumLiteral(w types.IntLitWidth) types.Var {
	return b.fresh(types.RangedNumber{Range: types.NumAtLeastEitherSign(w)})
}

// Ranged numeric type
func (b Builder) Ranged(r types.NumericRange) types.Var {
	return b.fresh(types.RangedNumber{Range: r})
}
