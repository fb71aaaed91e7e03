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
	"fmt"
	"math"
	"slices"
)

// MaxCapacity is the largest number of elements a Buffer will hold.
const MaxCapacity = math.MaxInt32

// minGrowth is the capacity of the first allocation made by Append.
const minGrowth = 4

// maxCapacity is MaxCapacity, lowered by tests to exercise the limit.
var maxCapacity = MaxCapacity

// Buffer is a growable, indexable collection of T.
//
// The zero value is an empty Buffer ready to use. A Buffer is also a
// Sequence over its elements in index order. Append, InsertAt, RemoveAt,
// Remove and Clear are structural mutations: performing one while a
// traversal of the Buffer is in progress makes that traversal panic with
// ErrModified on its next step.
//
// A Buffer is not safe for concurrent mutation.
type Buffer[T any] struct {
	items   []T // len(items) is the length, cap(items) the capacity
	version uint64
}

// BufferCursor is the traversal state of a Buffer.
type BufferCursor struct {
	index   int
	version uint64
}

// Of returns a Buffer holding a copy of values.
func Of[T any](values ...T) *Buffer[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &Buffer[T]{items: items}
}

// BuildFrom drains s into a new Buffer, starting from s.Start().
func BuildFrom[T, C any](s Sequence[T, C]) *Buffer[T] {
	b := &Buffer[T]{}
	cursor := s.Start()
	for {
		v, ok := s.TryNext(&cursor)
		if !ok {
			return b
		}
		b.Append(v)
	}
}

func (b *Buffer[T]) Start() BufferCursor {
	return BufferCursor{version: b.version}
}

func (b *Buffer[T]) TryNext(cursor *BufferCursor) (T, bool) {
	if cursor.version != b.version {
		panic(fmt.Errorf("seq: %w", ErrModified))
	}
	if cursor.index < len(b.items) {
		v := b.items[cursor.index]
		cursor.index++
		return v, true
	}
	var zero T
	return zero, false
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the number of elements the Buffer can hold without growing.
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// At returns the element at index i. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	b.checkIndex(i)
	return b.items[i]
}

// Set replaces the element at index i. It panics if i is out of range.
// Set is not a structural mutation.
func (b *Buffer[T]) Set(i int, v T) {
	b.checkIndex(i)
	b.items[i] = v
}

func (b *Buffer[T]) checkIndex(i int) {
	if uint(i) >= uint(len(b.items)) {
		panic(fmt.Errorf("seq: index %d with length %d: %w", i, len(b.items), ErrOutOfRange))
	}
}

// Append adds v at the end, growing the backing storage when full.
// It panics with ErrOutOfMemory if the Buffer already holds MaxCapacity
// elements.
func (b *Buffer[T]) Append(v T) {
	if len(b.items) == cap(b.items) {
		b.grow(len(b.items) + 1)
	}
	b.items = append(b.items, v)
	b.version++
}

// InsertAt inserts v before index i, shifting later elements up.
// i may equal Len, in which case InsertAt behaves like Append.
func (b *Buffer[T]) InsertAt(i int, v T) error {
	n := len(b.items)
	if uint(i) > uint(n) {
		return fmt.Errorf("seq: insert at %d with length %d: %w", i, n, ErrOutOfRange)
	}
	if n == cap(b.items) {
		b.grow(n + 1)
	}
	b.items = b.items[:n+1]
	copy(b.items[i+1:], b.items[i:n])
	b.items[i] = v
	b.version++
	return nil
}

// RemoveAt removes the element at index i, shifting later elements down.
func (b *Buffer[T]) RemoveAt(i int) error {
	n := len(b.items)
	if uint(i) >= uint(n) {
		return fmt.Errorf("seq: remove at %d with length %d: %w", i, n, ErrOutOfRange)
	}
	copy(b.items[i:], b.items[i+1:])
	var zero T
	b.items[n-1] = zero
	b.items = b.items[:n-1]
	b.version++
	return nil
}

// Clear removes all elements but keeps the capacity.
func (b *Buffer[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
	b.version++
}

// CopyTo copies the elements into dst starting at dst[offset].
func (b *Buffer[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 || offset > len(dst) || len(dst)-offset < len(b.items) {
		return fmt.Errorf("seq: copy %d elements into length %d at offset %d: %w",
			len(b.items), len(dst), offset, ErrOutOfRange)
	}
	copy(dst[offset:], b.items)
	return nil
}

// Slice returns a copy of the elements.
func (b *Buffer[T]) Slice() []T {
	return slices.Clone(b.items)
}

// SetCap changes the capacity to n. Setting it to zero releases the
// backing storage of an empty Buffer.
func (b *Buffer[T]) SetCap(n int) error {
	switch {
	case n < len(b.items):
		return fmt.Errorf("seq: capacity %d below length %d: %w", n, len(b.items), ErrOutOfRange)
	case n > maxCapacity:
		return fmt.Errorf("seq: capacity %d above %d: %w", n, maxCapacity, ErrOutOfMemory)
	case n == cap(b.items):
		return nil
	case n == 0:
		b.items = nil
		return nil
	}
	items := make([]T, len(b.items), n)
	copy(items, b.items)
	b.items = items
	return nil
}

// grow doubles the capacity (starting at minGrowth), clamps it to
// maxCapacity and raises it to at least need.
func (b *Buffer[T]) grow(need int) {
	c := cap(b.items)
	n := maxCapacity
	if c <= maxCapacity/2 {
		n = max(2*c, minGrowth)
	}
	n = max(min(n, maxCapacity), need)
	if err := b.SetCap(n); err != nil {
		panic(err)
	}
}

// IndexOf returns the index of the first element equal to v, or -1.
func IndexOf[T comparable](b *Buffer[T], v T) int {
	return slices.Index(b.items, v)
}

// Contains reports whether an element equal to v is present.
func Contains[T comparable](b *Buffer[T], v T) bool {
	return IndexOf(b, v) >= 0
}

// Remove removes the first element equal to v and reports whether one was
// found.
func Remove[T comparable](b *Buffer[T], v T) bool {
	i := IndexOf(b, v)
	if i < 0 {
		return false
	}
	// i is in range, so RemoveAt cannot fail.
	_ = b.RemoveAt(i)
	return true
}
