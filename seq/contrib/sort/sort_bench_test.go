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
	"math/rand"
	"slices"
	"testing"
)

func generateInts(n int) Slice[int] {
	data := make(Slice[int], n)
	for i := range data {
		data[i] = rand.Intn(10000) - 5000
	}
	return data
}

func intKey(v int) int { return v }

func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000)
}

func BenchmarkSort_10000(b *testing.B) {
	benchmarkSort(b, 10000)
}

func BenchmarkSort_100000(b *testing.B) {
	benchmarkSort(b, 100000)
}

func benchmarkSort(b *testing.B, n int) {
	data := generateInts(n)
	c := By(intKey)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sort(data)
	}
}

// Stdlib baseline: a stable sort of the same index permutation.
func BenchmarkStdlibSortStable_10000(b *testing.B) {
	data := generateInts(10000)
	perm := make([]int, len(data))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range perm {
			perm[j] = j
		}
		slices.SortStableFunc(perm, func(x, y int) int { return cmp.Compare(data[x], data[y]) })
	}
}

func BenchmarkSortTwoLevels_10000(b *testing.B) {
	data := generateInts(10000)
	c := Then(By(func(v int) int { return v % 100 }), intKey, cmp.Compare[int], true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sort(data)
	}
}

func BenchmarkPartialSort_10000_Window100(b *testing.B) {
	benchmarkPartialSort(b, 10000, 100)
}

func BenchmarkPartialSort_100000_Window100(b *testing.B) {
	benchmarkPartialSort(b, 100000, 100)
}

func BenchmarkPartialSort_100000_Window10000(b *testing.B) {
	benchmarkPartialSort(b, 100000, 10000)
}

func benchmarkPartialSort(b *testing.B, n, window int) {
	data := generateInts(n)
	c := By(intKey)
	lo := n/2 - window/2

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.PartialSort(data, lo, lo+window-1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelect_10000(b *testing.B) {
	benchmarkSelect(b, 10000)
}

func BenchmarkSelect_100000(b *testing.B) {
	benchmarkSelect(b, 100000)
}

func benchmarkSelect(b *testing.B, n int) {
	data := generateInts(n)
	c := By(intKey)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Select(data, n/2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMin_100000(b *testing.B) {
	data := generateInts(100000)
	c := By(intKey)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Min(data)
	}
}
