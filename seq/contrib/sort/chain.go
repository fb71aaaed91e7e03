// Copyright 2025 go-lazyseq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrOutOfRange reports a rank or window outside 0..n-1.
var ErrOutOfRange = errors.New("out of range")

// Indexed is read access to n elements by position.
type Indexed[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a plain slice to Indexed.
type Slice[T any] []T

func (s Slice[T]) Len() int   { return len(s) }
func (s Slice[T]) At(i int) T { return s[i] }

// level computes the keys of one chain level for elems and returns a
// comparison of two positions by those keys, already adjusted for direction.
type level[T any] func(elems Indexed[T], n int) func(i, j int) int

// Chain is an immutable list of sort levels. The zero value has no levels
// and orders positions by index alone.
type Chain[T any] struct {
	levels []level[T]
}

// NewChain returns a single-level chain ordering elements by key, using
// compare on the keys. descending reverses the order of that level.
func NewChain[T, K any](key func(T) K, compare func(a, b K) int, descending bool) *Chain[T] {
	return Then(&Chain[T]{}, key, compare, descending)
}

// By orders elements ascending by an ordered key.
func By[T any, K cmp.Ordered](key func(T) K) *Chain[T] {
	return NewChain(key, cmp.Compare[K], false)
}

// ByDescending orders elements descending by an ordered key.
func ByDescending[T any, K cmp.Ordered](key func(T) K) *Chain[T] {
	return NewChain(key, cmp.Compare[K], true)
}

// Then returns a new chain that consults key after every level of c. c is
// not modified.
func Then[T, K any](c *Chain[T], key func(T) K, compare func(a, b K) int, descending bool) *Chain[T] {
	if key == nil || compare == nil {
		panic("sort: nil key or compare function")
	}
	next := func(elems Indexed[T], n int) func(i, j int) int {
		keys := make([]K, n)
		for i := range keys {
			keys[i] = key(elems.At(i))
		}
		return func(i, j int) int {
			r := compare(keys[i], keys[j])
			if r == 0 {
				return 0
			}
			// Map to -1/+1 instead of negating r, which would overflow for
			// math.MinInt.
			if descending != (r > 0) {
				return 1
			}
			return -1
		}
	}
	levels := make([]level[T], len(c.levels), len(c.levels)+1)
	copy(levels, c.levels)
	return &Chain[T]{levels: append(levels, next)}
}

// Levels returns the number of keys in the chain.
func (c *Chain[T]) Levels() int { return len(c.levels) }

// comparer is a chain bound to the keys of one set of elements.
type comparer struct {
	levels []func(i, j int) int
}

func (c *Chain[T]) bind(elems Indexed[T], n int) *comparer {
	bound := make([]func(i, j int) int, len(c.levels))
	for i, l := range c.levels {
		bound[i] = l(elems, n)
	}
	return &comparer{levels: bound}
}

// compare orders two positions. Positions that tie on every level compare
// by index, which makes the order total and every algorithm stable.
func (c *comparer) compare(i, j int) int {
	if i == j {
		return 0
	}
	for _, l := range c.levels {
		if r := l(i, j); r != 0 {
			return r
		}
	}
	return cmp.Compare(i, j)
}

func (c *comparer) less(i, j int) bool {
	return c.compare(i, j) < 0
}

// identity returns the permutation 0..n-1.
func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// Sort returns the permutation that orders elems.
func (c *Chain[T]) Sort(elems Indexed[T]) []int {
	n := elems.Len()
	perm := identity(n)
	if n > 1 {
		c.bind(elems, n).sort(perm)
	}
	return perm
}

// PartialSort returns a permutation whose positions minIdx..maxIdx hold the
// same indices as Sort would put there. The other positions hold the
// remaining indices in no particular order.
func (c *Chain[T]) PartialSort(elems Indexed[T], minIdx, maxIdx int) ([]int, error) {
	n := elems.Len()
	if minIdx < 0 || maxIdx >= n || minIdx > maxIdx {
		return nil, fmt.Errorf("sort: window [%d, %d] with %d elements: %w", minIdx, maxIdx, n, ErrOutOfRange)
	}
	perm := identity(n)
	if n > 1 {
		c.bind(elems, n).partialSort(perm, minIdx, maxIdx, depthLimit(n))
	}
	return perm, nil
}

// Select returns the index of the element that Sort would place at rank k.
func (c *Chain[T]) Select(elems Indexed[T], k int) (int, error) {
	n := elems.Len()
	if k < 0 || k >= n {
		return 0, fmt.Errorf("sort: rank %d with %d elements: %w", k, n, ErrOutOfRange)
	}
	if k == 0 {
		i, _ := c.Min(elems)
		return i, nil
	}
	return c.bind(elems, n).selectRank(identity(n), k), nil
}

// Min returns the index of the first element in order, or false if elems is
// empty.
func (c *Chain[T]) Min(elems Indexed[T]) (int, bool) {
	n := elems.Len()
	if n == 0 {
		return 0, false
	}
	if n == 1 {
		return 0, true
	}
	return c.bind(elems, n).min(n), true
}

// IsSorted reports whether perm is the ordering of elems under c.
func (c *Chain[T]) IsSorted(elems Indexed[T], perm []int) bool {
	n := elems.Len()
	if len(perm) != n {
		return false
	}
	if n < 2 {
		return true
	}
	for _, p := range perm {
		if uint(p) >= uint(n) {
			return false
		}
	}
	bound := c.bind(elems, n)
	for i := 1; i < n; i++ {
		if bound.compare(perm[i-1], perm[i]) >= 0 {
			return false
		}
	}
	return true
}
