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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyVarList = VarList{emptyList}

// VarList is an immutable list of type-variables.
type VarList struct {
	l *immutable.List
}

// Create a VarList containing vs, in order.
func NewVarList(vs ...Var) VarList {
	if len(vs) == 0 {
		return EmptyVarList
	}
	b := NewVarListBuilder()
	for _, v := range vs {
		b.Append(v)
	}
	return b.Build()
}

func (l VarList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l VarList) Get(i int) Var               { return l.l.Get(i).(Var) }
func (l VarList) Slice(start, end int) VarList { return VarList{l.l.Slice(start, end)} }

// If f returns false, iteration will be stopped.
func (l VarList) Range(f func(int, Var) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Var)) {
			return
		}
	}
}

// Vars returns the type-variables as a new slice.
func (l VarList) Vars() []Var {
	vs := make([]Var, 0, l.Len())
	l.Range(func(_ int, v Var) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Map returns a new list with f applied to each type-variable. The receiver is not modified.
func (l VarList) Map(f func(Var) Var) VarList {
	if l.Len() == 0 {
		return EmptyVarList
	}
	b := l.Builder()
	l.Range(func(i int, v Var) bool {
		b.Set(i, f(v))
		return true
	})
	return b.Build()
}

// Convert the list to a builder for modification, without mutating the existing list.
func (l VarList) Builder() VarListBuilder {
	b := NewVarListBuilder()
	l.Range(func(_ int, v Var) bool {
		b.Append(v)
		return true
	})
	return b
}

type VarListBuilder struct {
	b *immutable.ListBuilder
}

func NewVarListBuilder() VarListBuilder {
	return VarListBuilder{immutable.NewListBuilder(immutable.NewList())}
}

func (b VarListBuilder) Len() int         { return b.b.Len() }
func (b VarListBuilder) Append(v Var)     { b.b.Append(v) }
func (b VarListBuilder) Set(i int, v Var) { b.b.Set(i, v) }
func (b VarListBuilder) Build() VarList   { return VarList{b.b.List()} }
