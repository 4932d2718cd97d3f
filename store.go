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
	"io"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/wdamron/subs/internal/typeutil"
	"github.com/wdamron/subs/types"
)

// Subs is a unification store. Type-variables issued by a store must not be used with any
// other store.
//
// A store cannot be used concurrently; to check modules in parallel, give each module its
// own store (see CheckModules).
type Subs struct {
	id     uuid.UUID
	cfg    Config
	table  *typeutil.Table
	ctx    *typeutil.Context
	logger *pterm.Logger
}

// Option configures a store.
type Option func(*Subs)

// WithLogger replaces the trace logger built from the store's Config.
func WithLogger(logger *pterm.Logger) Option {
	return func(s *Subs) { s.logger = logger }
}

// WithTraceWriter writes trace output to w, using the store's TraceConfig.
func WithTraceWriter(w io.Writer) Option {
	return func(s *Subs) { s.logger = newLogger(s.cfg.Trace, w) }
}

// New creates a store configured by cfg. Zero fields of cfg take their default values.
func New(cfg Config, opts ...Option) *Subs {
	cfg = cfg.withDefaults()
	s := &Subs{id: uuid.New(), cfg: cfg}
	s.table = typeutil.NewTable(cfg.InitialCapacity, cfg.MaxVars)
	s.ctx = typeutil.NewContext(s.table)
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = newLogger(cfg.Trace, nil)
	}
	s.ctx.Tracer = &tracer{logger: s.logger, id: s.id.String()}
	return s
}

// NewDefault creates a store with the default configuration.
func NewDefault() *Subs { return New(DefaultConfig()) }

// ID uniquely identifies the store within trace output.
func (s *Subs) ID() uuid.UUID { return s.id }

func (s *Subs) Config() Config { return s.cfg }

// Len returns the number of type-variables issued by the store.
func (s *Subs) Len() int { return s.table.Len() }

// Reserve space for n more type-variables. Previously issued type-variables remain valid.
func (s *Subs) Reserve(n int) error { return s.table.Reserve(n) }

// Push a new type-variable. Push panics with types.ErrAllocation if the store is full. A
// reserved mark is replaced by types.MarkNone.
func (s *Subs) Push(content types.Content, rank types.Rank, mark types.Mark, copy types.Var) types.Var {
	return s.table.Push(content, rank, mark, copy)
}

// Fresh pushes a new type-variable for content at rank.
func (s *Subs) Fresh(content types.Content, rank types.Rank) types.Var {
	return s.table.Fresh(content, rank)
}

// FreshFlex pushes a new unnamed flexible type-variable at rank.
func (s *Subs) FreshFlex(rank types.Rank) types.Var {
	return s.table.Fresh(types.FlexVar{}, rank)
}

// Descriptor returns the descriptor stored in v's own slot; use RootKey to find the
// authoritative slot, or Get.
func (s *Subs) Descriptor(v types.Var) types.Descriptor { return s.table.Descriptor(v) }

func (s *Subs) SetDescriptor(v types.Var, d types.Descriptor) { s.table.SetDescriptor(v, d) }

// Get returns the descriptor of v's class.
func (s *Subs) Get(v types.Var) types.Descriptor { return s.table.Get(v) }

func (s *Subs) Content(v types.Var) types.Content { return s.table.Content(v) }
func (s *Subs) Rank(v types.Var) types.Rank       { return s.table.Rank(v) }

func (s *Subs) SetContent(v types.Var, c types.Content) { s.table.SetContent(v, c) }
func (s *Subs) SetRank(v types.Var, r types.Rank)       { s.table.SetRank(v, r) }

// RootKey returns the representative of v's class, compressing the path from v.
func (s *Subs) RootKey(v types.Var) types.Var { return s.table.RootKey(v) }

// IsRedirect is true if v is not the representative of its class.
func (s *Subs) IsRedirect(v types.Var) bool { return s.table.IsRedirect(v) }

// Unioned is true if a and b belong to the same class.
func (s *Subs) Unioned(a, b types.Var) bool { return s.table.Unioned(a, b) }

// Occurs reports whether a's class is reachable from the structure of b's class.
func (s *Subs) Occurs(a, b types.Var) bool { return s.table.Occurs(a, b) }

// Unify a and b using the store's configured recursion policy. See UnifyWith, including the
// cases where a and b unify without being joined.
func (s *Subs) Unify(a, b types.Var) error { return s.UnifyWith(a, b, s.cfg.Recursion) }

// UnifyWith unifies a and b. Unification does not stop at the first failure: each failing
// pair is poisoned with types.Error and recorded, and the remaining pairs are still unified.
//
// The error is nil on success, types.Mismatches if any pair failed, or types.ErrAllocation
// if the store could not grow (the store should then be discarded).
//
// A successful unification joins the classes of a and b, except in two cases which unify by
// unrolling instead: a recursion variable with a structure unifies the recursion variable's
// structure, and a structural alias with a structure or ranged number unifies the alias's
// real type. Joining those classes would make the structure refer to itself. In both cases
// Unioned(a, b) stays false and the ranks of a and b are left as they were.
func (s *Subs) UnifyWith(a, b types.Var, policy RecursionPolicy) error {
	s.ctx.AllowRecursion = policy == AllowRecursion
	ms, err := s.ctx.Unify(a, b)
	if err != nil {
		s.logger.Error("unification aborted", s.logger.Args("subs", s.id.String(), "vars", s.table.Len()))
		return err
	}
	if len(ms) == 0 {
		return nil
	}
	return ms
}
