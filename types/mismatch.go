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
	"errors"
	"strings"
)

type MismatchKind uint8

const (
	// Incompatible concrete structures: differing names, arities, or numeric ranges.
	UnificationMismatch MismatchKind = iota
	// A rigid type-variable conflicts with another rigid variable or a concrete type.
	RigidMismatch
	// A type-variable occurs within its own structure.
	InfiniteType
	// The unification table cannot grow.
	AllocationFailure
)

func (k MismatchKind) String() string {
	switch k {
	case UnificationMismatch:
		return "UnificationMismatch"
	case RigidMismatch:
		return "RigidMismatch"
	case InfiniteType:
		return "InfiniteType"
	case AllocationFailure:
		return "AllocationFailure"
	}
	return "UnknownMismatch"
}

// Mismatch records a failure to unify Left with Right. For an AllocationFailure, Left and
// Right are NoVar.
type Mismatch struct {
	Kind        MismatchKind
	Left, Right Var
	// LeftType and RightType name the content of each side when the failure was detected.
	LeftType, RightType string
}

func (m *Mismatch) Error() string {
	var sb strings.Builder
	sb.WriteString(m.Kind.String())
	if m.Kind == AllocationFailure {
		sb.WriteString(": unification table cannot grow")
		return sb.String()
	}
	sb.WriteString(": failed to unify ")
	sb.WriteString(m.Left.String())
	if m.LeftType != "" {
		sb.WriteString(" (" + m.LeftType + ")")
	}
	sb.WriteString(" with ")
	sb.WriteString(m.Right.String())
	if m.RightType != "" {
		sb.WriteString(" (" + m.RightType + ")")
	}
	return sb.String()
}

// Is reports whether target is a mismatch of the same kind, so callers may test for a kind
// with errors.Is(err, &Mismatch{Kind: k}).
func (m *Mismatch) Is(target error) bool {
	t, ok := target.(*Mismatch)
	return ok && t.Kind == m.Kind
}

// Mismatches are the failures recorded while unifying a single pair of type-variables.
type Mismatches []*Mismatch

func (ms Mismatches) Error() string {
	switch len(ms) {
	case 0:
		return "no mismatches"
	case 1:
		return ms[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(ms[0].Error())
	for _, m := range ms[1:] {
		sb.WriteString("; ")
		sb.WriteString(m.Error())
	}
	return sb.String()
}

// Unwrap exposes each mismatch to errors.Is and errors.As.
func (ms Mismatches) Unwrap() []error {
	errs := make([]error, len(ms))
	for i, m := range ms {
		errs[i] = m
	}
	return errs
}

// Kinds returns the kind of each mismatch, in order.
func (ms Mismatches) Kinds() []MismatchKind {
	kinds := make([]MismatchKind, len(ms))
	for i, m := range ms {
		kinds[i] = m.Kind
	}
	return kinds
}

// HasKind reports whether err contains a mismatch of kind k.
func HasKind(err error, k MismatchKind) bool {
	return errors.Is(err, &Mismatch{Kind: k})
}

// ErrAllocation is returned when the unification table cannot grow.
var ErrAllocation = &Mismatch{Kind: AllocationFailure, Left: NoVar, Right: NoVar}
