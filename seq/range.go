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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// RangeSeq is the arithmetic progression produced by Range.
type RangeSeq[N constraints.Integer] struct {
	start N
	count int
}

// RangeCursor is the traversal state of a RangeSeq: the next value to emit
// and how many values remain.
type RangeCursor[N constraints.Integer] struct {
	next N
	left int
}

// Range returns the sequence start, start+1, ..., start+count-1.
//
// It fails with ErrOutOfRange if count is negative or if the last value does
// not fit in N. A count of zero gives an empty sequence.
func Range[N constraints.Integer](start N, count int) (*RangeSeq[N], error) {
	if count < 0 {
		return nil, fmt.Errorf("seq: range count %d: %w", count, ErrOutOfRange)
	}
	// The distance from start to the largest N, computed modulo 2^64, is
	// exact for every integer type.
	if count > 0 && uint64(count-1) > uint64(maxOf[N]())-uint64(start) {
		return nil, fmt.Errorf("seq: range start %v count %d overflows %T: %w", start, count, start, ErrOutOfRange)
	}
	return &RangeSeq[N]{start: start, count: count}, nil
}

// maxOf returns the largest value of N.
func maxOf[N constraints.Integer]() N {
	var zero N
	if ones := ^zero; ones > 0 {
		return ones
	}
	size := unsafe.Sizeof(zero)
	return N(uint64(1)<<(8*size-1) - 1)
}

// MustRange is like Range but panics on error.
func MustRange[N constraints.Integer](start N, count int) *RangeSeq[N] {
	r, err := Range(start, count)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of values in the progression.
func (r *RangeSeq[N]) Len() int { return r.count }

func (r *RangeSeq[N]) Start() RangeCursor[N] {
	return RangeCursor[N]{next: r.start, left: r.count}
}

func (r *RangeSeq[N]) TryNext(cursor *RangeCursor[N]) (N, bool) {
	if cursor.left <= 0 {
		var zero N
		return zero, false
	}
	v := cursor.next
	cursor.left--
	if cursor.left > 0 {
		// Only step when another value follows, so the last value may be
		// the maximum of N.
		cursor.next++
	}
	return v, true
}
