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

// =============================================================================
// Lazy combinators
// =============================================================================

// SelectSeq is the sequence returned by Select.
type SelectSeq[A, B, C any] struct {
	src Sequence[A, C]
	f   func(A) (B, bool)
}

// SelectCursor wraps the source cursor of a SelectSeq and remembers whether
// the selector has ended the traversal.
type SelectCursor[C any] struct {
	inner C
	done  bool
}

// Select maps every element of src through f.
//
// f reports whether it produced a value. The first time it does not, the
// whole traversal ends: the element is not skipped and the remaining source
// elements are never visited. Use Map for a selector that always produces a
// value, or Where followed by Map to drop elements.
func Select[A, B, C any](src Sequence[A, C], f func(A) (B, bool)) *SelectSeq[A, B, C] {
	if f == nil {
		panic("seq: Select with nil selector")
	}
	return &SelectSeq[A, B, C]{src: src, f: f}
}

func (s *SelectSeq[A, B, C]) Start() SelectCursor[C] {
	return SelectCursor[C]{inner: s.src.Start()}
}

func (s *SelectSeq[A, B, C]) TryNext(cursor *SelectCursor[C]) (B, bool) {
	var zero B
	if cursor.done {
		return zero, false
	}
	if a, ok := s.src.TryNext(&cursor.inner); ok {
		if b, ok := s.f(a); ok {
			return b, true
		}
	}
	cursor.done = true
	return zero, false
}

// MapSeq is the sequence returned by Map.
type MapSeq[A, B, C any] struct {
	src Sequence[A, C]
	f   func(A) B
}

// Map maps every element of src through f.
func Map[A, B, C any](src Sequence[A, C], f func(A) B) *MapSeq[A, B, C] {
	if f == nil {
		panic("seq: Map with nil function")
	}
	return &MapSeq[A, B, C]{src: src, f: f}
}

func (s *MapSeq[A, B, C]) Start() C { return s.src.Start() }

func (s *MapSeq[A, B, C]) TryNext(cursor *C) (B, bool) {
	if a, ok := s.src.TryNext(cursor); ok {
		return s.f(a), true
	}
	var zero B
	return zero, false
}

// WhereSeq is the sequence returned by Where.
type WhereSeq[T, C any] struct {
	src  Sequence[T, C]
	pred func(T) bool
}

// Where keeps the elements of src for which pred returns true.
func Where[T, C any](src Sequence[T, C], pred func(T) bool) *WhereSeq[T, C] {
	if pred == nil {
		panic("seq: Where with nil predicate")
	}
	return &WhereSeq[T, C]{src: src, pred: pred}
}

func (s *WhereSeq[T, C]) Start() C { return s.src.Start() }

func (s *WhereSeq[T, C]) TryNext(cursor *C) (T, bool) {
	for {
		v, ok := s.src.TryNext(cursor)
		if !ok {
			return v, false
		}
		if s.pred(v) {
			return v, true
		}
	}
}

// DefaultSeq is the sequence returned by DefaultIfEmpty.
type DefaultSeq[T, C any] struct {
	src Sequence[T, C]
	def T
}

// DefaultCursor wraps the source cursor of a DefaultSeq. Until the first
// element has been produced it is pending; afterwards it delegates to the
// source.
type DefaultCursor[C any] struct {
	inner      C
	delegating bool
}

// DefaultIfEmpty yields the elements of src, or def alone if src is empty.
func DefaultIfEmpty[T, C any](src Sequence[T, C], def T) *DefaultSeq[T, C] {
	return &DefaultSeq[T, C]{src: src, def: def}
}

func (s *DefaultSeq[T, C]) Start() DefaultCursor[C] {
	return DefaultCursor[C]{inner: s.src.Start()}
}

func (s *DefaultSeq[T, C]) TryNext(cursor *DefaultCursor[C]) (T, bool) {
	if cursor.delegating {
		return s.src.TryNext(&cursor.inner)
	}
	cursor.delegating = true
	if v, ok := s.src.TryNext(&cursor.inner); ok {
		return v, true
	}
	// The source is exhausted and stays so, which ends the traversal after
	// this one default element.
	return s.def, true
}

// =============================================================================
// Terminal operations
// =============================================================================

// First returns the first element of s, or false if s is empty.
func First[T, C any](s Sequence[T, C]) (T, bool) {
	cursor := s.Start()
	return s.TryNext(&cursor)
}

// FirstOrDefault returns the first element of s, or def if s is empty.
func FirstOrDefault[T, C any](s Sequence[T, C], def T) T {
	if v, ok := First(s); ok {
		return v
	}
	return def
}

// Aggregate folds s from left to right using its first element as the
// initial accumulator. It returns false if s is empty.
func Aggregate[T, C any](s Sequence[T, C], f func(acc, v T) T) (T, bool) {
	cursor := s.Start()
	acc, ok := s.TryNext(&cursor)
	if !ok {
		return acc, false
	}
	for {
		v, ok := s.TryNext(&cursor)
		if !ok {
			return acc, true
		}
		acc = f(acc, v)
	}
}

// Fold folds s from left to right starting from seed. An empty s returns
// seed.
func Fold[T, C, A any](s Sequence[T, C], seed A, f func(acc A, v T) A) A {
	acc := seed
	cursor := s.Start()
	for {
		v, ok := s.TryNext(&cursor)
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// Count returns the number of elements of s.
func Count[T, C any](s Sequence[T, C]) int {
	return Fold(s, 0, func(n int, _ T) int { return n + 1 })
}

// Any reports whether some element of s satisfies pred. It stops at the
// first match.
func Any[T, C any](s Sequence[T, C], pred func(T) bool) bool {
	_, ok := First(Where(s, pred))
	return ok
}

// ToSlice collects the elements of s.
func ToSlice[T, C any](s Sequence[T, C]) []T {
	return BuildFrom(s).items
}
