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

import "iter"

// Sequence is a pull-based, restartable source of elements.
//
// A traversal begins with Start, which returns a fresh cursor, and proceeds
// by calling TryNext with a pointer to that cursor until it reports false.
// The cursor is a plain value owned by the caller, so a Sequence may be
// traversed any number of times, including several traversals interleaved,
// as long as each one keeps its own cursor.
//
// Implementations must not modify the underlying data in TryNext; the only
// state that changes is the cursor. Once TryNext has reported false for a
// cursor, every later call with that cursor reports false as well.
type Sequence[T, C any] interface {
	// Start returns the cursor positioned before the first element.
	Start() C

	// TryNext advances cursor and returns the next element, or reports
	// false when the traversal is exhausted.
	TryNext(cursor *C) (T, bool)
}

// EmptySeq is a Sequence with no elements.
type EmptySeq[T any] struct{}

// Empty returns a Sequence that never produces an element.
func Empty[T any]() EmptySeq[T] {
	return EmptySeq[T]{}
}

func (EmptySeq[T]) Start() struct{} { return struct{}{} }

func (EmptySeq[T]) TryNext(*struct{}) (T, bool) {
	var zero T
	return zero, false
}

// All adapts a Sequence for use with range-over-func:
//
//	for v := range seq.All(s) {
//	    ...
//	}
//
// Each call to the returned iterator performs a new traversal.
func All[T, C any](s Sequence[T, C]) iter.Seq[T] {
	return func(yield func(T) bool) {
		cursor := s.Start()
		for {
			v, ok := s.TryNext(&cursor)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ForEach calls fn for every element of s, in traversal order.
func ForEach[T, C any](s Sequence[T, C], fn func(T)) {
	cursor := s.Start()
	for {
		v, ok := s.TryNext(&cursor)
		if !ok {
			return
		}
		fn(v)
	}
}
