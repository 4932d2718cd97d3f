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

// subs provides a unification store for Hindley-Milner type inference: an arena of
// type-variables joined by union-find, the structural types those variables denote, and the
// rules for merging them.
//
// The store is driven by a constraint generator, which pushes a type-variable for each
// inference site and unifies type-variables as constraints arise. After solving, the content
// of any type-variable may be read back through its root.
//
//
// Supported Features:
//
//   * Union-find with full path compression and deterministic (lowest index) representatives
//   * Rank-based let-generalization and instantiation
//   * Extensible records and tag unions (row polymorphism)
//   * Occurs checking, with optional recursive types through tag unions
//   * Rigid (annotated) type-variables, aliases, ranged numeric literals, function effects
//   * Poisoned (error) types which absorb later mismatches
//
//
// Links:
//
// Extensible Records with Scoped Labels (Leijen, 2005): https://www.microsoft.com/en-us/research/publication/extensible-records-with-scoped-labels/
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package subs
