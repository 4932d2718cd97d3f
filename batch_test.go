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

package subs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wdamron/subs"
	"github.com/wdamron/subs/construct"
	"github.com/wdamron/subs/types"
)

func TestCheckModules(t *testing.T) {
	checks := make([]subs.Check, 8)
	for i := range checks {
		fail := i%3 == 0
		checks[i] = func(ctx context.Context, s *subs.Subs) error {
			b := construct.New(s, types.Toplevel())
			x := b.Flex()
			if err := s.Unify(x, b.App("List", b.Const(types.I64))); err != nil {
				return err
			}
			if fail {
				return s.Unify(x, b.App("Set", b.Flex()))
			}
			return nil
		}
	}

	results, err := subs.CheckModules(context.Background(), subs.Config{Concurrency: 3}, checks)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(checks) {
		t.Fatalf("expected %d results, found %d", len(checks), len(results))
	}
	ids := make(map[string]bool)
	for i, res := range results {
		if res.Subs == nil {
			t.Fatalf("expected a store for module %d", i)
		}
		ids[res.Subs.ID().String()] = true
		if fail := i%3 == 0; fail != types.HasKind(res.Err, types.UnificationMismatch) {
			t.Fatalf("module %d: unexpected result %v", i, res.Err)
		}
	}
	if len(ids) != len(checks) {
		t.Fatalf("expected a separate store for each module")
	}
}

func TestCheckModulesAbort(t *testing.T) {
	boom := errors.New("boom")
	checks := []subs.Check{
		func(ctx context.Context, s *subs.Subs) error { return boom },
		func(ctx context.Context, s *subs.Subs) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}
	_, err := subs.CheckModules(context.Background(), subs.Config{}, checks)
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, found %v", boom, err)
	}
}

func TestCheckModulesAllocationFailure(t *testing.T) {
	checks := []subs.Check{
		func(ctx context.Context, s *subs.Subs) error {
			b := construct.New(s, types.Toplevel())
			x := b.OpenRecord(map[string]types.Var{"a": b.Flex()})
			y := b.OpenRecord(map[string]types.Var{"b": b.Flex()})
			return s.Unify(x, y)
		},
		func(ctx context.Context, s *subs.Subs) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}
	results, err := subs.CheckModules(context.Background(), subs.Config{InitialCapacity: 6, MaxVars: 6}, checks)
	if !errors.Is(err, types.ErrAllocation) {
		t.Fatalf("expected an allocation failure, found %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("expected the failure to abort the batch, found module error %v", results[0].Err)
	}
}
