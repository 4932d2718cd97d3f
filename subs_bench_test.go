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
	"testing"

	"github.com/wdamron/subs"
	"github.com/wdamron/subs/construct"
	"github.com/wdamron/subs/types"
)

func BenchmarkUnifyRecords(b *testing.B) {
	for n := 0; n < b.N; n++ {
		s := subs.New(subs.Config{InitialCapacity: 64})
		c := construct.New(s, types.Toplevel())
		x := c.OpenRecord(map[string]types.Var{"a": c.Const(types.I64), "b": c.Flex(), "c": c.Const("Str")})
		y := c.OpenRecord(map[string]types.Var{"b": c.Const("Bool"), "d": c.Flex()})
		if err := s.Unify(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstantiate(b *testing.B) {
	s := subs.New(subs.Config{InitialCapacity: 1 << 16})
	c := construct.New(s, types.Toplevel().Next())
	x, y := c.Flex(), c.Flex()
	// map : (List a, a -> b) -> List b
	fn := c.Arrow2(c.App("List", x), c.Arrow1(x, y), c.App("List", y))
	s.Generalize(fn, types.Toplevel())

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if s.Len() > 1<<20 {
			b.StopTimer()
			s = subs.New(subs.Config{InitialCapacity: 1 << 16})
			c = construct.New(s, types.Toplevel().Next())
			x, y = c.Flex(), c.Flex()
			fn = c.Arrow2(c.App("List", x), c.Arrow1(x, y), c.App("List", y))
			s.Generalize(fn, types.Toplevel())
			b.StartTimer()
		}
		s.Instantiate(fn, types.Toplevel())
	}
}

func BenchmarkUnifyChain(b *testing.B) {
	for n := 0; n < b.N; n++ {
		s := subs.New(subs.Config{InitialCapacity: 256})
		c := construct.New(s, types.Toplevel())
		prev := c.Flex()
		for i := 0; i < 100; i++ {
			next := c.Flex()
			if err := s.Unify(next, prev); err != nil {
				b.Fatal(err)
			}
			prev = next
		}
		s.RootKey(prev)
	}
}
