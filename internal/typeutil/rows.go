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

// Gather the fields of a record and of each record within its extension chain. Fields nearer
// the outside of the chain shadow inner fields with the same label. Returns the fields and
// the root of the extension which ends the chain.
func (ctx *Context) gatherFields(r types.Record) (types.FieldMap, types.Var) {
	t := ctx.Table
	fields, ext := r.Fields, t.RootKey(r.Ext)
	var b types.FieldMapBuilder
	extended := false
	for steps := t.Len(); steps > 0; steps-- {
		s, ok := t.entries[ext].desc.Content.(types.Structure)
		if !ok {
			break
		}
		inner, ok := s.Flat.(types.Record)
		if !ok {
			break
		}
		if !extended {
			b, extended = fields.Builder(), true
		}
		inner.Fields.Range(func(label string, v types.Var) bool {
			if !b.Has(label) {
				b.Set(label, v)
			}
			return true
		})
		ext = t.RootKey(inner.Ext)
	}
	if extended {
		fields = b.Build()
	}
	return fields, ext
}

// Gather the tags of a tag union and of each tag union within its extension chain.
func (ctx *Context) gatherTags(u types.TagUnion) (types.TagMap, types.Var) {
	t := ctx.Table
	tags, ext := u.Tags, t.RootKey(u.Ext)
	var b types.TagMapBuilder
	extended := false
	for steps := t.Len(); steps > 0; steps-- {
		s, ok := t.entries[ext].desc.Content.(types.Structure)
		if !ok {
			break
		}
		inner, ok := s.Flat.(types.TagUnion)
		if !ok {
			break
		}
		if !extended {
			b, extended = tags.Builder(), true
		}
		inner.Tags.Range(func(tag string, payload types.VarList) bool {
			if !b.Has(tag) {
				b.Set(tag, payload)
			}
			return true
		})
		ext = t.RootKey(inner.Ext)
	}
	if extended {
		tags = b.Build()
	}
	return tags, ext
}

func (ctx *Context) isClosed(ext types.Var) bool {
	s, ok := ctx.Table.Content(ext).(types.Structure)
	if !ok {
		return false
	}
	switch s.Flat.(type) {
	case types.EmptyRecord, types.EmptyTagUnion:
		return true
	}
	return false
}

// Row polymorphism, following "Extensible Records with Scoped Labels" (Leijen): fields missing
// from one side are pushed into that side's extension.
func (ctx *Context) unifyRecords(ra, rb types.Var, a, b types.Record, rank types.Rank) {
	fieldsA, extA := ctx.gatherFields(a)
	fieldsB, extB := ctx.gatherFields(b)

	var shared []pair
	onlyA, onlyB := types.NewFieldMapBuilder(), types.NewFieldMapBuilder()
	all := fieldsA.Builder()
	fieldsA.Range(func(label string, va types.Var) bool {
		if vb, ok := fieldsB.Get(label); ok {
			shared = append(shared, pair{va, vb})
		} else {
			onlyA.Set(label, va)
		}
		return true
	})
	fieldsB.Range(func(label string, vb types.Var) bool {
		if _, ok := fieldsA.Get(label); !ok {
			onlyB.Set(label, vb)
			all.Set(label, vb)
		}
		return true
	})

	if onlyB.Len() > 0 && ctx.isClosed(extA) || onlyA.Len() > 0 && ctx.isClosed(extB) {
		ctx.mismatch(types.UnificationMismatch, ra, rb, types.Structure{Flat: a}, types.Structure{Flat: b}, rank)
		return
	}
	// Rows sharing a tail must carry the same labels; otherwise the tail would have to contain
	// itself.
	if extA == extB && (onlyA.Len() > 0 || onlyB.Len() > 0) {
		ctx.mismatch(types.InfiniteType, ra, rb, types.Structure{Flat: a}, types.Structure{Flat: b}, rank)
		return
	}

	var ext types.Var
	var exts []pair
	switch za, zb := onlyA.Len() == 0, onlyB.Len() == 0; {
	case za && zb: // all labels match
		ext = extA
		exts = append(exts, pair{extA, extB})
	case za: // labels missing in a
		ext = extB
		exts = append(exts, pair{extA, ctx.fresh(types.NewRecord(onlyB.Build(), extB), rank)})
	case zb: // labels missing in b
		ext = extA
		exts = append(exts, pair{extB, ctx.fresh(types.NewRecord(onlyA.Build(), extA), rank)})
	default: // labels missing in both
		ext = ctx.fresh(types.FlexVar{}, rank)
		exts = append(exts,
			pair{extA, ctx.fresh(types.NewRecord(onlyB.Build(), ext), rank)},
			pair{extB, ctx.fresh(types.NewRecord(onlyA.Build(), ext), rank)})
	}

	ctx.merge(ra, rb, types.NewRecord(all.Build(), ext), rank)
	for _, p := range shared {
		ctx.unify(p.a, p.b)
	}
	for _, p := range exts {
		ctx.unify(p.a, p.b)
	}
}

// Unify a record with the empty record. The record must have no fields, and its extension
// is closed.
func (ctx *Context) unifyClosedRecord(ra, rb types.Var, rec types.Record, ca, cb types.Content, rank types.Rank) {
	fields, ext := ctx.gatherFields(rec)
	if fields.Len() > 0 {
		ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
		return
	}
	root := ctx.merge(ra, rb, types.Structure{Flat: types.EmptyRecord{}}, rank)
	ctx.unify(ext, root)
}

func (ctx *Context) unifyTagUnions(ra, rb types.Var, a, b types.TagUnion, rank types.Rank) {
	tagsA, extA := ctx.gatherTags(a)
	tagsB, extB := ctx.gatherTags(b)

	var shared []types.VarList
	onlyA, onlyB := types.NewTagMapBuilder(), types.NewTagMapBuilder()
	all := tagsA.Builder()
	arityMismatch := false
	tagsA.Range(func(tag string, pa types.VarList) bool {
		pb, ok := tagsB.Get(tag)
		switch {
		case !ok:
			onlyA.Set(tag, pa)
		case pa.Len() != pb.Len():
			arityMismatch = true
		default:
			shared = append(shared, pa, pb)
		}
		return !arityMismatch
	})
	tagsB.Range(func(tag string, pb types.VarList) bool {
		if _, ok := tagsA.Get(tag); !ok {
			onlyB.Set(tag, pb)
			all.Set(tag, pb)
		}
		return true
	})

	if arityMismatch || onlyB.Len() > 0 && ctx.isClosed(extA) || onlyA.Len() > 0 && ctx.isClosed(extB) {
		ctx.mismatch(types.UnificationMismatch, ra, rb, types.Structure{Flat: a}, types.Structure{Flat: b}, rank)
		return
	}
	if extA == extB && (onlyA.Len() > 0 || onlyB.Len() > 0) {
		ctx.mismatch(types.InfiniteType, ra, rb, types.Structure{Flat: a}, types.Structure{Flat: b}, rank)
		return
	}

	var ext types.Var
	var exts []pair
	switch za, zb := onlyA.Len() == 0, onlyB.Len() == 0; {
	case za && zb:
		ext = extA
		exts = append(exts, pair{extA, extB})
	case za:
		ext = extB
		exts = append(exts, pair{extA, ctx.fresh(types.NewTagUnion(onlyB.Build(), extB), rank)})
	case zb:
		ext = extA
		exts = append(exts, pair{extB, ctx.fresh(types.NewTagUnion(onlyA.Build(), extA), rank)})
	default:
		ext = ctx.fresh(types.FlexVar{}, rank)
		exts = append(exts,
			pair{extA, ctx.fresh(types.NewTagUnion(onlyB.Build(), ext), rank)},
			pair{extB, ctx.fresh(types.NewTagUnion(onlyA.Build(), ext), rank)})
	}

	ctx.merge(ra, rb, types.NewTagUnion(all.Build(), ext), rank)
	for i := 0; i < len(shared); i += 2 {
		ctx.unifyLists(shared[i], shared[i+1])
	}
	for _, p := range exts {
		ctx.unify(p.a, p.b)
	}
}

func (ctx *Context) unifyClosedTagUnion(ra, rb types.Var, u types.TagUnion, ca, cb types.Content, rank types.Rank) {
	tags, ext := ctx.gatherTags(u)
	if tags.Len() > 0 {
		ctx.mismatch(types.UnificationMismatch, ra, rb, ca, cb, rank)
		return
	}
	root := ctx.merge(ra, rb, types.Structure{Flat: types.EmptyTagUnion{}}, rank)
	ctx.unify(ext, root)
}
