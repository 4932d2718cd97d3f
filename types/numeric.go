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

// Names of the builtin numeric types. Each is a nullary Apply.
const (
	I8   = "I8"
	I16  = "I16"
	I32  = "I32"
	I64  = "I64"
	I128 = "I128"
	U8   = "U8"
	U16  = "U16"
	U32  = "U32"
	U64  = "U64"
	U128 = "U128"
	F32  = "F32"
	F64  = "F64"
	Dec  = "Dec"
)

type numericType struct {
	name   string
	signed bool
	float  bool
	bits   uint8
}

// Indexes into numericTypes are the bit positions of a NumericRange.
var numericTypes = [...]numericType{
	{I8, true, false, 8},
	{I16, true, false, 16},
	{I32, true, false, 32},
	{I64, true, false, 64},
	{I128, true, false, 128},
	{U8, false, false, 8},
	{U16, false, false, 16},
	{U32, false, false, 32},
	{U64, false, false, 64},
	{U128, false, false, 128},
	{F32, true, true, 32},
	{F64, true, true, 64},
	{Dec, true, true, 128},
}

// IntLitWidth is the smallest integer type able to hold a numeric literal.
type IntLitWidth uint8

const (
	WidthU8 IntLitWidth = iota
	WidthU16
	WidthU32
	WidthU64
	WidthU128
	WidthI8
	WidthI16
	WidthI32
	WidthI64
	WidthI128
)

func (w IntLitWidth) signedBits() (signed bool, bits uint8) {
	switch w {
	case WidthU8:
		return false, 8
	case WidthU16:
		return false, 16
	case WidthU32:
		return false, 32
	case WidthU64:
		return false, 64
	case WidthU128:
		return false, 128
	case WidthI8:
		return true, 8
	case WidthI16:
		return true, 16
	case WidthI32:
		return true, 32
	case WidthI64:
		return true, 64
	default:
		return true, 128
	}
}

func (t numericType) holds(w IntLitWidth) bool {
	if t.float {
		return false
	}
	signed, bits := w.signedBits()
	switch {
	case t.signed == signed:
		return t.bits >= bits
	case t.signed:
		return t.bits > bits
	default:
		return false
	}
}

// NumericRange is the set of builtin numeric types a literal may still take.
type NumericRange uint16

func numericRange(w IntLitWidth, signedOnly, floats bool) NumericRange {
	var r NumericRange
	for i, t := range numericTypes {
		if t.float {
			if floats {
				r |= 1 << uint(i)
			}
			continue
		}
		if signedOnly && !t.signed {
			continue
		}
		if t.holds(w) {
			r |= 1 << uint(i)
		}
	}
	return r
}

// Integer types which are signed and can hold w.
func IntAtLeastSigned(w IntLitWidth) NumericRange { return numericRange(w, true, false) }

// Integer types which can hold w.
func IntAtLeastEitherSign(w IntLitWidth) NumericRange { return numericRange(w, false, false) }

// Signed integer types which can hold w, and all fractional types.
func NumAtLeastSigned(w IntLitWidth) NumericRange { return numericRange(w, true, true) }

// Integer types which can hold w, and all fractional types.
func NumAtLeastEitherSign(w IntLitWidth) NumericRange { return numericRange(w, false, true) }

// IsNumericType reports whether name is one of the builtin numeric types.
func IsNumericType(name string) bool {
	for _, t := range numericTypes {
		if t.name == name {
			return true
		}
	}
	return false
}

// Contains reports whether the builtin numeric type name is within the range.
func (r NumericRange) Contains(name string) bool {
	for i, t := range numericTypes {
		if t.name == name {
			return r&(1<<uint(i)) != 0
		}
	}
	return false
}

// Intersect returns the types within both ranges. The result is false if no type remains.
func (r NumericRange) Intersect(other NumericRange) (NumericRange, bool) {
	x := r & other
	return x, x != 0
}

func (r NumericRange) IsEmpty() bool { return r == 0 }

// Types returns the names of the numeric types within the range.
func (r NumericRange) Types() []string {
	var names []string
	for i, t := range numericTypes {
		if r&(1<<uint(i)) != 0 {
			names = append(names, t.name)
		}
	}
	return names
}

// HasFractional reports whether any fractional type is within the range.
func (r NumericRange) HasFractional() bool {
	for i, t := range numericTypes {
		if t.float && r&(1<<uint(i)) != 0 {
			return true
		}
	}
	return false
}
