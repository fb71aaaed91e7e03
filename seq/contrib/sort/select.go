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

// partialSort sorts the ranks lo..hi of perm (relative to perm) and leaves
// the rest partitioned around them. Partitions holding none of those ranks
// are dropped.
// Time complexity: O(n + k log k) best and average case, k = hi-lo+1.
func (c *comparer) partialSort(perm []int, lo, hi, depth int) {
	for len(perm) > cutoff {
		if depth == 0 {
			c.heapSort(perm)
			return
		}
		depth--

		p := c.partition(perm)
		switch {
		case hi < p:
			perm = perm[:p]
		case lo > p:
			perm = perm[p+1:]
			lo -= p + 1
			hi -= p + 1
		case p-lo < hi-p:
			// The window straddles the pivot: finish the side with fewer
			// requested ranks recursively and keep looping on the other.
			if lo < p {
				c.partialSort(perm[:p], lo, p-1, depth)
			}
			perm = perm[p+1:]
			lo = 0
			hi -= p + 1
		default:
			if hi > p {
				c.partialSort(perm[p+1:], 0, hi-p-1, depth)
			}
			perm = perm[:p]
			hi = p - 1
		}
		if lo > hi {
			return
		}
	}
	c.insertionSort(perm)
}

// selectRank returns the entry that would sit at rank k if perm were sorted.
// Each round partitions the range still containing k and keeps the side
// holding it, until the pivot lands on k.
// Time complexity: O(n) best and average case.
func (c *comparer) selectRank(perm []int, k int) int {
	depth := depthLimit(len(perm))
	for len(perm) > cutoff {
		if depth == 0 {
			c.heapSort(perm)
			return perm[k]
		}
		depth--

		p := c.partition(perm)
		switch {
		case k == p:
			return perm[k]
		case k < p:
			perm = perm[:p]
		default:
			perm = perm[p+1:]
			k -= p + 1
		}
	}
	c.insertionSort(perm)
	return perm[k]
}

// min scans positions 0..n-1 for the first one in order.
func (c *comparer) min(n int) int {
	best := 0
	for i := 1; i < n; i++ {
		if c.less(i, best) {
			best = i
		}
	}
	return best
}
