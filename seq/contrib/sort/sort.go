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
	"math/bits"
	"os"
	"strconv"
)

const (
	// defaultCutoff: insertion sort ranges this long or shorter.
	defaultCutoff = 16

	// maxCutoff bounds LAZYSEQ_SORT_CUTOFF.
	maxCutoff = 256

	// nintherThreshold: use Tukey's ninther as pivot from this length on.
	nintherThreshold = 128
)

// cutoff is the insertion sort threshold in effect. Set by init().
var cutoff = defaultCutoff

func init() {
	if n, ok := cutoffEnv(); ok {
		cutoff = n
	}
}

// cutoffEnv reads the LAZYSEQ_SORT_CUTOFF environment variable. Values that
// are not integers in [1, maxCutoff] are ignored.
func cutoffEnv() (int, bool) {
	val := os.Getenv("LAZYSEQ_SORT_CUTOFF")
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 || n > maxCutoff {
		return 0, false
	}
	return n, true
}

// depthLimit is the partitioning depth after which heapsort takes over:
// 2 * floor(log2(n)) + 2.
func depthLimit(n int) int {
	return 2 * bits.Len(uint(n))
}

// sort orders perm in place.
func (c *comparer) sort(perm []int) {
	c.sortImpl(perm, depthLimit(len(perm)))
}

// sortImpl is the recursive part of sort. It recurses into the shorter side
// of each partition and loops on the longer one.
func (c *comparer) sortImpl(perm []int, depth int) {
	for len(perm) > cutoff {
		if depth == 0 {
			c.heapSort(perm)
			return
		}
		depth--

		p := c.partition(perm)
		if p < len(perm)-p {
			c.sortImpl(perm[:p], depth)
			perm = perm[p+1:]
		} else {
			c.sortImpl(perm[p+1:], depth)
			perm = perm[:p]
		}
	}
	c.insertionSort(perm)
}

// insertionSort is insertion sort for short ranges.
func (c *comparer) insertionSort(perm []int) {
	for i := 1; i < len(perm); i++ {
		key := perm[i]
		j := i - 1
		for j >= 0 && c.less(key, perm[j]) {
			perm[j+1] = perm[j]
			j--
		}
		perm[j+1] = key
	}
}

// heapSort is heapsort for the O(n log n) worst-case guarantee.
func (c *comparer) heapSort(perm []int) {
	n := len(perm)
	for i := n/2 - 1; i >= 0; i-- {
		c.siftDown(perm, i, n)
	}
	for i := n - 1; i > 0; i-- {
		perm[0], perm[i] = perm[i], perm[0]
		c.siftDown(perm, 0, i)
	}
}

func (c *comparer) siftDown(perm []int, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && c.less(perm[largest], perm[left]) {
			largest = left
		}
		if right < n && c.less(perm[largest], perm[right]) {
			largest = right
		}

		if largest == i {
			break
		}

		perm[i], perm[largest] = perm[largest], perm[i]
		i = largest
	}
}

// median3 returns whichever of the positions a, b, d of perm refers to the
// median element.
func (c *comparer) median3(perm []int, a, b, d int) int {
	if c.less(perm[b], perm[a]) {
		a, b = b, a
	}
	if c.less(perm[d], perm[b]) {
		b = d
		if c.less(perm[b], perm[a]) {
			b = a
		}
	}
	return b
}

// choosePivot picks the median of the first, middle and last elements, or
// for longer ranges the median of three such medians sampled at regular
// intervals.
func (c *comparer) choosePivot(perm []int) int {
	n := len(perm)
	mid := n / 2
	if n < nintherThreshold {
		return c.median3(perm, 0, mid, n-1)
	}
	s := n / 8
	return c.median3(perm,
		c.median3(perm, 0, s, 2*s),
		c.median3(perm, mid-s, mid, mid+s),
		c.median3(perm, n-1-2*s, n-1-s, n-1),
	)
}

// partition rearranges perm (at least two entries) around a pivot and
// returns the pivot's final position p:
//   - perm[:p] order before the pivot
//   - perm[p+1:] order after the pivot
//
// The comparison is a total order, so nothing but the pivot itself compares
// equal to the pivot.
func (c *comparer) partition(perm []int) int {
	pi := c.choosePivot(perm)
	perm[0], perm[pi] = perm[pi], perm[0]
	pivot := perm[0]

	i, j := 1, len(perm)-1
	for {
		for i <= j && c.less(perm[i], pivot) {
			i++
		}
		for i <= j && c.less(pivot, perm[j]) {
			j--
		}
		if i >= j {
			break
		}
		perm[i], perm[j] = perm[j], perm[i]
		i++
		j--
	}
	perm[0], perm[j] = perm[j], perm[0]
	return j
}
