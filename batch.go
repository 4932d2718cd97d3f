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
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/wdamron/subs/types"
)

// Check solves the constraints of a single module within the store s.
type Check func(ctx context.Context, s *Subs) error

// ModuleResult holds the store and outcome of one Check.
type ModuleResult struct {
	Subs *Subs
	// Err is nil, or a type error (types.Mismatches or *types.Mismatch) returned by the check.
	Err error
}

// Allocation failures abort the batch like any other error.
func isTypeError(err error) bool {
	if types.HasKind(err, types.AllocationFailure) {
		return false
	}
	var ms types.Mismatches
	var m *types.Mismatch
	return errors.As(err, &ms) || errors.As(err, &m)
}

// CheckModules runs each check against its own store, in parallel (limited by
// cfg.Concurrency). Results are returned in the order of checks.
//
// Type errors are reported per module. Any other error cancels the remaining checks and is
// returned along with the results collected so far.
func CheckModules(ctx context.Context, cfg Config, checks []Check, opts ...Option) ([]ModuleResult, error) {
	results := make([]ModuleResult, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for i, check := range checks {
		i, check := i, check
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := New(cfg, opts...)
			err := check(gctx, s)
			results[i] = ModuleResult{Subs: s}
			if err == nil {
				return nil
			}
			if isTypeError(err) {
				results[i].Err = err
				return nil
			}
			return err
		})
	}
	err := g.Wait()
	return results, err
}
