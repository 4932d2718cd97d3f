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

// Content is what a type-variable currently denotes. The set of implementations is closed;
// switches over Content panic on unknown variants so that a new variant cannot be silently ignored.
type Content interface {
	TypeName() string
	isContent()
}

// FlatType is a concrete structural type. Children are referenced by type-variable, never by value.
type FlatType interface {
	TypeName() string
	isFlatType()
}

func (FlexVar) TypeName() string      { return "FlexVar" }
func (RigidVar) TypeName() string     { return "RigidVar" }
func (RecursionVar) TypeName() string { return "RecursionVar" }
func (t Structure) TypeName() string  { return t.Flat.TypeName() }
func (Alias) TypeName() string        { return "Alias" }
func (RangedNumber) TypeName() string { return "RangedNumber" }
func (Error) TypeName() string        { return "Error" }
func (Pure) TypeName() string         { return "Pure" }
func (Effectful) TypeName() string    { return "Effectful" }

func (FlexVar) isContent()      {}
func (RigidVar) isContent()     {}
func (RecursionVar) isContent() {}
func (Structure) isContent()    {}
func (Alias) isContent()        {}
func (RangedNumber) isContent() {}
func (Error) isContent()        {}
func (Pure) isContent()         {}
func (Effectful) isContent()    {}

func (Apply) TypeName() string         { return "Apply" }
func (Func) TypeName() string          { return "Func" }
func (Record) TypeName() string        { return "Record" }
func (TagUnion) TypeName() string      { return "TagUnion" }
func (EmptyRecord) TypeName() string   { return "EmptyRecord" }
func (EmptyTagUnion) TypeName() string { return "EmptyTagUnion" }

func (Apply) isFlatType()         {}
func (Func) isFlatType()          {}
func (Record) isFlatType()        {}
func (TagUnion) isFlatType()      {}
func (EmptyRecord) isFlatType()   {}
func (EmptyTagUnion) isFlatType() {}

// Unbound (flexible) type-variable. An empty name means the variable is unnamed.
type FlexVar struct {
	Name string
}

// Type-variable bound by an annotation; only unifies with itself and flexible variables.
type RigidVar struct {
	Name string
}

// Back-reference from inside a recursive type to the type-variable holding its structure.
type RecursionVar struct {
	Structure Var
	Name      string
}

// Concrete structural type.
type Structure struct {
	Flat FlatType
}

type AliasKind uint8

const (
	// Structural aliases are interchangeable with their real type.
	StructuralAlias AliasKind = iota
	// Opaque aliases only unify with the same alias.
	OpaqueAlias
)

// Named alias for the type held by Real.
type Alias struct {
	Name string
	Args VarList
	Real Var
	Kind AliasKind
}

// Numeric literal whose concrete type is not yet known.
type RangedNumber struct {
	Range NumericRange
}

// Poisoned type; unifies with everything without reporting further mismatches.
type Error struct{}

// Effect of a function which performs no side-effects.
type Pure struct{}

// Effect of a function which may perform side-effects.
type Effectful struct{}

// Type application: `List I64`
type Apply struct {
	Name string
	Args VarList
}

// Function type: `I64, I64 -> I64`
type Func struct {
	Args   VarList
	Ret    Var
	Effect Var
}

// Record type: `{ a : I64 }ext`
type Record struct {
	Fields FieldMap
	Ext    Var
}

// Tag union type: `[A I64, B]ext`
type TagUnion struct {
	Tags TagMap
	Ext  Var
}

// Empty record, closing a record's extension: `{}`
type EmptyRecord struct{}

// Empty tag union, closing a tag union's extension: `[]`
type EmptyTagUnion struct{}

// Convenience constructors:

func NewApply(name string, args ...Var) Structure {
	return Structure{Apply{Name: name, Args: NewVarList(args...)}}
}

func NewFunc(args []Var, ret, effect Var) Structure {
	return Structure{Func{Args: NewVarList(args...), Ret: ret, Effect: effect}}
}

func NewRecord(fields FieldMap, ext Var) Structure {
	return Structure{Record{Fields: fields, Ext: ext}}
}

func NewTagUnion(tags TagMap, ext Var) Structure {
	return Structure{TagUnion{Tags: tags, Ext: ext}}
}

// IsVariable is true for flexible and rigid type-variables.
func IsVariable(c Content) bool {
	switch c.(type) {
	case FlexVar, RigidVar:
		return true
	}
	return false
}

// ContentVars calls f for each type-variable directly referenced by c.
// If f returns false, iteration will be stopped and ContentVars returns false.
func ContentVars(c Content, f func(Var) bool) bool {
	switch c := c.(type) {
	case FlexVar, RigidVar, RangedNumber, Error, Pure, Effectful:
		return true
	case RecursionVar:
		return f(c.Structure)
	case Alias:
		ok := true
		c.Args.Range(func(_ int, v Var) bool {
			ok = f(v)
			return ok
		})
		return ok && f(c.Real)
	case Structure:
		return flatTypeVars(c.Flat, f)
	}
	panic("unexpected content " + c.TypeName())
}

func flatTypeVars(t FlatType, f func(Var) bool) bool {
	ok := true
	switch t := t.(type) {
	case Apply:
		t.Args.Range(func(_ int, v Var) bool {
			ok = f(v)
			return ok
		})
		return ok
	case Func:
		t.Args.Range(func(_ int, v Var) bool {
			ok = f(v)
			return ok
		})
		return ok && f(t.Ret) && f(t.Effect)
	case Record:
		t.Fields.Range(func(_ string, v Var) bool {
			ok = f(v)
			return ok
		})
		return ok && f(t.Ext)
	case TagUnion:
		t.Tags.Range(func(_ string, payload VarList) bool {
			payload.Range(func(_ int, v Var) bool {
				ok = f(v)
				return ok
			})
			return ok
		})
		return ok && f(t.Ext)
	case EmptyRecord, EmptyTagUnion:
		return true
	}
	panic("unexpected flat type " + t.TypeName())
}

// MapContentVars returns a copy of c with f applied to each directly referenced type-variable.
func MapContentVars(c Content, f func(Var) Var) Content {
	switch c := c.(type) {
	case FlexVar, RigidVar, RangedNumber, Error, Pure, Effectful:
		return c
	case RecursionVar:
		return RecursionVar{Structure: f(c.Structure), Name: c.Name}
	case Alias:
		return Alias{Name: c.Name, Args: c.Args.Map(f), Real: f(c.Real), Kind: c.Kind}
	case Structure:
		return Structure{mapFlatTypeVars(c.Flat, f)}
	}
	panic("unexpected content " + c.TypeName())
}

func mapFlatTypeVars(t FlatType, f func(Var) Var) FlatType {
	switch t := t.(type) {
	case Apply:
		return Apply{Name: t.Name, Args: t.Args.Map(f)}
	case Func:
		return Func{Args: t.Args.Map(f), Ret: f(t.Ret), Effect: f(t.Effect)}
	case Record:
		return Record{Fields: t.Fields.Map(f), Ext: f(t.Ext)}
	case TagUnion:
		return TagUnion{Tags: t.Tags.Map(f), Ext: f(t.Ext)}
	case EmptyRecord, EmptyTagUnion:
		return t
	}
	panic("unexpected flat type " + t.TypeName())
}
