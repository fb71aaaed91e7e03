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

package seq

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/ajroetker/go-lazyseq/seq/contrib/sort"
)

// Ordered is a sequence sorted by one or more keys.
//
// The source is materialized when the Ordered is built. The sort itself runs
// on the first traversal and its permutation is reused by every later one.
// Equal keys keep their source order.
type Ordered[T any] struct {
	buf   *Buffer[T]
	chain *sort.Chain[T]

	once sync.Once
	perm []int
}

func newOrdered[T any](buf *Buffer[T], chain *sort.Chain[T]) *Ordered[T] {
	return &Ordered[T]{buf: buf, chain: chain}
}

// OrderBy sorts src ascending by key.
func OrderBy[T, C any, K cmp.Ordered](src Sequence[T, C], key func(T) K) *Ordered[T] {
	return newOrdered(BuildFrom(src), sort.By(key))
}

// OrderByDescending sorts src descending by key.
func OrderByDescending[T, C any, K cmp.Ordered](src Sequence[T, C], key func(T) K) *Ordered[T] {
	return newOrdered(BuildFrom(src), sort.ByDescending(key))
}

// OrderByFunc sorts src by key using compare, which returns a negative
// number, zero or a positive number as a sorts before, with or after b.
func OrderByFunc[T, C, K any](src Sequence[T, C], key func(T) K, compare func(a, b K) int, descending bool) *Ordered[T] {
	return newOrdered(BuildFrom(src), sort.NewChain(key, compare, descending))
}

// ThenBy returns o further sorted ascending by key among elements whose
// earlier keys tie. o itself is unchanged.
func ThenBy[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return ThenByFunc(o, key, cmp.Compare[K], false)
}

// ThenByDescending is ThenBy in descending order.
func ThenByDescending[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return ThenByFunc(o, key, cmp.Compare[K], true)
}

// ThenByFunc is ThenBy with an explicit comparison.
func ThenByFunc[T, K any](o *Ordered[T], key func(T) K, compare func(a, b K) int, descending bool) *Ordered[T] {
	// The materialized buffer is never mutated, so orderings can share it.
	return newOrdered(o.buf, sort.Then(o.chain, key, compare, descending))
}

func (o *Ordered[T]) permutation() []int {
	o.once.Do(func() {
		o.perm = o.chain.Sort(o.buf)
	})
	return o.perm
}

// Start returns the position of the first element in order.
func (o *Ordered[T]) Start() int { return 0 }

func (o *Ordered[T]) TryNext(cursor *int) (T, bool) {
	perm := o.permutation()
	if i := *cursor; i >= 0 && i < len(perm) {
		*cursor = i + 1
		return o.buf.At(perm[i]), true
	}
	var zero T
	return zero, false
}

// Len returns the number of elements.
func (o *Ordered[T]) Len() int { return o.buf.Len() }

// ElementAt returns the element at rank k without sorting everything.
func (o *Ordered[T]) ElementAt(k int) (T, error) {
	i, err := o.chain.Select(o.buf, k)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("seq: element at %d: %w", k, ErrOutOfRange)
	}
	return o.buf.At(i), nil
}

// Window returns the elements at ranks lo..hi inclusive, in order. Only the
// partitions that overlap the window are sorted.
func (o *Ordered[T]) Window(lo, hi int) ([]T, error) {
	perm, err := o.chain.PartialSort(o.buf, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("seq: window [%d, %d] of %d: %w", lo, hi, o.buf.Len(), ErrOutOfRange)
	}
	out := make([]T, 0, hi-lo+1)
	for _, i := range perm[lo : hi+1] {
		out = append(out, o.buf.At(i))
	}
	return out, nil
}
