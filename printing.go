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

package subs

import (
	"strconv"
	"strings"
	"sync"

	"github.com/wdamron/subs/internal/typeutil"
	"github.com/wdamron/subs/types"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		p := &typePrinter{visiting: make(map[types.Var]bool, 16)}
		return p
	},
}

func newTypePrinter(t *typeutil.Table) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.table = t
	return p
}

func (p *typePrinter) Release() {
	for k := range p.visiting {
		delete(p.visiting, k)
	}
	p.table = nil
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	table    *typeutil.Table
	visiting map[types.Var]bool
	sb       strings.Builder
}

// TypeString returns a string representation of v's type. Call NameVars first to give
// generalized type-variables readable names; other unnamed type-variables are printed as
// `_N`, where N is the index of their class representative.
func (s *Subs) TypeString(v types.Var) string {
	p := newTypePrinter(s.table)
	p.typeString(false, v)
	out := p.sb.String()
	p.Release()
	return out
}

// Display names the type-variables reachable from v and returns v's type as a string.
func (s *Subs) Display(v types.Var) string {
	s.NameVars(v)
	return s.TypeString(v)
}

func (p *typePrinter) varName(root types.Var, name string) {
	if name != "" {
		p.sb.WriteString(name)
		return
	}
	p.sb.WriteByte('_')
	p.sb.WriteString(strconv.Itoa(root.Index()))
}

// simple is set where a compound type must be parenthesized.
func (p *typePrinter) typeString(simple bool, v types.Var) {
	root := p.table.RootKey(v)
	if p.visiting[root] {
		p.sb.WriteString("...")
		return
	}
	p.visiting[root] = true
	defer delete(p.visiting, root)

	switch c := p.table.Descriptor(root).Content.(type) {
	case types.FlexVar:
		p.varName(root, c.Name)

	case types.RigidVar:
		p.sb.WriteString(c.Name)

	case types.RecursionVar:
		if p.visiting[p.table.RootKey(c.Structure)] {
			p.varName(root, c.Name)
			return
		}
		if simple {
			p.sb.WriteByte('(')
		}
		p.typeString(false, c.Structure)
		p.sb.WriteString(" as ")
		p.varName(root, c.Name)
		if simple {
			p.sb.WriteByte(')')
		}

	case types.Alias:
		p.application(simple, c.Name, c.Args)

	case types.RangedNumber:
		if simple {
			p.sb.WriteByte('(')
		}
		if c.Range.HasFractional() {
			p.sb.WriteString("Num *")
		} else {
			p.sb.WriteString("Int *")
		}
		if simple {
			p.sb.WriteByte(')')
		}

	case types.Error:
		p.sb.WriteByte('?')

	case types.Pure:
		p.sb.WriteString("pure")

	case types.Effectful:
		p.sb.WriteString("effectful")

	case types.Structure:
		p.flatTypeString(simple, c.Flat)
	}
}

func (p *typePrinter) application(simple bool, name string, args types.VarList) {
	if args.Len() == 0 {
		p.sb.WriteString(name)
		return
	}
	if simple {
		p.sb.WriteByte('(')
	}
	p.sb.WriteString(name)
	args.Range(func(i int, arg types.Var) bool {
		p.sb.WriteByte(' ')
		p.typeString(true, arg)
		return true
	})
	if simple {
		p.sb.WriteByte(')')
	}
}

func (p *typePrinter) flatTypeString(simple bool, t types.FlatType) {
	switch t := t.(type) {
	case types.Apply:
		p.application(simple, t.Name, t.Args)

	case types.Func:
		if simple {
			p.sb.WriteByte('(')
		}
		if t.Args.Len() == 1 {
			p.typeString(true, t.Args.Get(0))
		} else {
			p.sb.WriteByte('(')
			t.Args.Range(func(i int, arg types.Var) bool {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.typeString(false, arg)
				return true
			})
			p.sb.WriteByte(')')
		}
		if _, ok := p.table.Content(t.Effect).(types.Effectful); ok {
			p.sb.WriteString(" => ")
		} else {
			p.sb.WriteString(" -> ")
		}
		p.typeString(false, t.Ret)
		if simple {
			p.sb.WriteByte(')')
		}

	case types.EmptyRecord:
		p.sb.WriteString("{}")

	case types.EmptyTagUnion:
		p.sb.WriteString("[]")

	case types.Record:
		fields, ext := p.recordFields(t)
		p.sb.WriteByte('{')
		i := 0
		fields.Range(func(label string, v types.Var) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			i++
			p.sb.WriteString(label)
			p.sb.WriteString(" : ")
			p.typeString(false, v)
			return true
		})
		p.rowExt(i, ext)
		p.sb.WriteByte('}')

	case types.TagUnion:
		tags, ext := p.unionTags(t)
		p.sb.WriteByte('[')
		i := 0
		tags.Range(func(tag string, payload types.VarList) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			i++
			p.sb.WriteString(tag)
			payload.Range(func(_ int, v types.Var) bool {
				p.sb.WriteByte(' ')
				p.typeString(true, v)
				return true
			})
			return true
		})
		p.rowExt(i, ext)
		p.sb.WriteByte(']')
	}
}

// rowExt prints the extension of a row with n labels, unless the row is closed.
func (p *typePrinter) rowExt(n int, ext types.Var) {
	if ext == types.NoVar {
		return
	}
	if n > 0 {
		p.sb.WriteByte(' ')
	}
	p.sb.WriteString("| ")
	p.typeString(false, ext)
}

// recordFields flattens nested record extensions. The returned extension is NoVar if the
// record is closed.
func (p *typePrinter) recordFields(r types.Record) (types.FieldMap, types.Var) {
	b := types.NewFieldMapBuilder()
	for steps := 0; steps < p.table.Len(); steps++ {
		r.Fields.Range(func(label string, v types.Var) bool {
			if !b.Has(label) {
				b = b.Set(label, v)
			}
			return true
		})
		ext := p.table.RootKey(r.Ext)
		s, ok := p.table.Descriptor(ext).Content.(types.Structure)
		if !ok || p.visiting[ext] {
			return b.Build(), ext
		}
		switch flat := s.Flat.(type) {
		case types.EmptyRecord:
			return b.Build(), types.NoVar
		case types.Record:
			r = flat
		default:
			return b.Build(), ext
		}
	}
	return b.Build(), r.Ext
}

func (p *typePrinter) unionTags(u types.TagUnion) (types.TagMap, types.Var) {
	b := types.NewTagMapBuilder()
	for steps := 0; steps < p.table.Len(); steps++ {
		u.Tags.Range(func(tag string, payload types.VarList) bool {
			if !b.Has(tag) {
				b = b.Set(tag, payload)
			}
			return true
		})
		ext := p.table.RootKey(u.Ext)
		s, ok := p.table.Descriptor(ext).Content.(types.Structure)
		if !ok || p.visiting[ext] {
			return b.Build(), ext
		}
		switch flat := s.Flat.(type) {
		case types.EmptyTagUnion:
			return b.Build(), types.NoVar
		case types.TagUnion:
			u = flat
		default:
			return b.Build(), ext
		}
	}
	return b.Build(), u.Ext
}
