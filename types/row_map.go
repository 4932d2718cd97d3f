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

var emptyMap = immutable.NewSortedMap(nil)

var (
	EmptyFieldMap = FieldMap{emptyMap}
	EmptyTagMap   = TagMap{emptyMap}
)

// FieldMap contains immutable mappings from record labels to type-variables, sorted by label.
type FieldMap struct {
	m *immutable.SortedMap
}

// Create a FieldMap with an entry for each label in m.
func NewFieldMap(m map[string]Var) FieldMap {
	b := NewFieldMapBuilder()
	for label, v := range m {
		b.Set(label, v)
	}
	return b.Build()
}

// Create a FieldMap with a single entry.
func SingletonFieldMap(label string, v Var) FieldMap {
	return FieldMap{emptyMap.Set(label, v)}
}

// Get the number of entries in the map.
func (m FieldMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type-variable for a label.
func (m FieldMap) Get(label string) (Var, bool) {
	if m.m == nil {
		return NoVar, false
	}
	v, ok := m.m.Get(label)
	if !ok {
		return NoVar, false
	}
	return v.(Var), true
}

// Iterate over entries in the map, sorted by label.
// If f returns false, iteration will be stopped.
func (m FieldMap) Range(f func(string, Var) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Var)) {
			return
		}
	}
}

// Map returns a new map with f applied to each type-variable.
func (m FieldMap) Map(f func(Var) Var) FieldMap {
	b := NewFieldMapBuilder()
	m.Range(func(label string, v Var) bool {
		b.Set(label, f(v))
		return true
	})
	return b.Build()
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m FieldMap) Builder() FieldMapBuilder {
	b := NewFieldMapBuilder()
	m.Range(func(label string, v Var) bool {
		b.Set(label, v)
		return true
	})
	return b
}

// FieldMapBuilder enables in-place updates of a map before finalization.
type FieldMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewFieldMapBuilder() FieldMapBuilder {
	return FieldMapBuilder{immutable.NewSortedMapBuilder(immutable.NewSortedMap(nil))}
}

func (b FieldMapBuilder) Len() int { return b.b.Len() }

func (b FieldMapBuilder) Has(label string) bool {
	_, ok := b.b.Get(label)
	return ok
}

func (b FieldMapBuilder) Set(label string, v Var) FieldMapBuilder {
	b.b.Set(label, v)
	return b
}

// Finalize the builder into an immutable map.
func (b FieldMapBuilder) Build() FieldMap { return FieldMap{b.b.Map()} }

// TagMap contains immutable mappings from tag names to payload type-variables, sorted by tag.
type TagMap struct {
	m *immutable.SortedMap
}

// Create a TagMap with an entry for each tag in m.
func NewTagMap(m map[string][]Var) TagMap {
	b := NewTagMapBuilder()
	for tag, payload := range m {
		b.Set(tag, NewVarList(payload...))
	}
	return b.Build()
}

// Create a TagMap with a single entry.
func SingletonTagMap(tag string, payload ...Var) TagMap {
	return TagMap{emptyMap.Set(tag, NewVarList(payload...))}
}

func (m TagMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the payload for a tag.
func (m TagMap) Get(tag string) (VarList, bool) {
	if m.m == nil {
		return EmptyVarList, false
	}
	l, ok := m.m.Get(tag)
	if !ok {
		return EmptyVarList, false
	}
	return l.(VarList), true
}

// If f returns false, iteration will be stopped.
func (m TagMap) Range(f func(string, VarList) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(VarList)) {
			return
		}
	}
}

// Map returns a new map with f applied to each payload type-variable.
func (m TagMap) Map(f func(Var) Var) TagMap {
	b := NewTagMapBuilder()
	m.Range(func(tag string, payload VarList) bool {
		b.Set(tag, payload.Map(f))
		return true
	})
	return b.Build()
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m TagMap) Builder() TagMapBuilder {
	b := NewTagMapBuilder()
	m.Range(func(tag string, payload VarList) bool {
		b.Set(tag, payload)
		return true
	})
	return b
}

// TagMapBuilder enables in-place updates of a map before finalization.
type TagMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTagMapBuilder() TagMapBuilder {
	return TagMapBuilder{immutable.NewSortedMapBuilder(immutable.NewSortedMap(nil))}
}

func (b TagMapBuilder) Len() int { return b.b.Len() }

func (b TagMapBuilder) Has(tag string) bool {
	_, ok := b.b.Get(tag)
	return ok
}

func (b TagMapBuilder) Set(tag string, payload VarList) TagMapBuilder {
	b.b.Set(tag, payload)
	return b
}

func (b TagMapBuilder) Build() TagMap { return TagMap{b.b.Map()} }
