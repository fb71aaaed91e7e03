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
	"math/rand"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBuffer(rng *rand.Rand, n, spread int) *Buffer[int] {
	var b Buffer[int]
	for range n {
		b.Append(rng.Intn(spread))
	}
	return &b
}

func TestWhereMatchesFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	preds := map[string]func(int) bool{
		"even":  func(v int) bool { return v%2 == 0 },
		"none":  func(int) bool { return false },
		"all":   func(int) bool { return true },
		"big":   func(v int) bool { return v > 90 },
		"small": func(v int) bool { return v < 3 },
	}
	for _, n := range []int{0, 1, 10, 257} {
		src := randomBuffer(rng, n, 100)
		for name, pred := range preds {
			want := lo.Filter(src.Slice(), func(v int, _ int) bool { return pred(v) })
			assert.Equal(t, want, drain(Where(src, pred)), "%s n=%d", name, n)
		}
	}
}

// TestWhereNeverStopsOnMismatch checks that a run of rejected elements does
// not end the traversal.
func TestWhereNeverStopsOnMismatch(t *testing.T) {
	w := Where(MustRange(0, 20), func(v int) bool { return v == 0 || v == 19 })
	assert.Equal(t, []int{0, 19}, drain(w))
}

func TestMapMatchesElementwise(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 10, 300} {
		src := randomBuffer(rng, n, 1000)
		want := lo.Map(src.Slice(), func(v int, _ int) string { return strconv.Itoa(v * 3) })
		got := drain(Map(src, func(v int) string { return strconv.Itoa(v * 3) }))
		assert.Equal(t, want, got, "n=%d", n)
	}
}

// TestSelectTotalSelector checks Select with a selector that always produces
// a value behaves like an ordinary map.
func TestSelectTotalSelector(t *testing.T) {
	s := Select(MustRange(1, 5), func(v int) (int, bool) { return v * v, true })
	assert.Equal(t, []int{1, 4, 9, 16, 25}, drain(s))
}

// TestSelectStopsAtFirstAbsentResult pins down the early termination of
// Select: an absent result at element k truncates the output to k elements
// instead of skipping element k.
func TestSelectStopsAtFirstAbsentResult(t *testing.T) {
	half := func(v int) (int, bool) {
		if v%2 != 0 {
			return 0, false
		}
		return v / 2, true
	}

	s := Select(Of(2, 4, 5, 6, 8), half)
	assert.Equal(t, []int{1, 2}, drain(s))

	for k := range 6 {
		src := MustRange(0, 6)
		stopAt := func(v int) (int, bool) { return v, v != k }
		assert.Equal(t, lo.Range(k), drain(Select(src, stopAt)), "k=%d", k)
	}

	cursor := stepAll(s)
	assert.True(t, exhausted(s, &cursor, 3), "a stopped traversal stays stopped")
}

// TestSelectStopDoesNotVisitRest checks that nothing after the absent result
// is evaluated.
func TestSelectStopDoesNotVisitRest(t *testing.T) {
	visited := 0
	s := Select(MustRange(0, 100), func(v int) (int, bool) {
		visited++
		return v, v < 3
	})
	drain(s)
	assert.Equal(t, 4, visited)
}

func TestDefaultIfEmpty(t *testing.T) {
	empty := DefaultIfEmpty(Empty[string](), "fallback")
	assert.Equal(t, []string{"fallback"}, drain(empty))
	assert.Equal(t, []string{"fallback"}, drain(empty), "each traversal yields the default once")

	cursor := stepAll(empty)
	assert.True(t, exhausted(empty, &cursor, 3))

	nonEmpty := DefaultIfEmpty(MustRange(1, 3), -1)
	assert.Equal(t, []int{1, 2, 3}, drain(nonEmpty))

	filtered := DefaultIfEmpty(Where(MustRange(0, 10), func(v int) bool { return v > 100 }), -1)
	assert.Equal(t, []int{-1}, drain(filtered))
}

// TestDefaultIfEmptyInterleaved checks the pending state lives in the cursor.
func TestDefaultIfEmptyInterleaved(t *testing.T) {
	s := DefaultIfEmpty(Empty[int](), 7)
	a, b := s.Start(), s.Start()

	v, ok := s.TryNext(&a)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = s.TryNext(&b)
	require.True(t, ok, "a second traversal gets its own default")
	assert.Equal(t, 7, v)

	_, ok = s.TryNext(&a)
	assert.False(t, ok)
}

func TestFirst(t *testing.T) {
	v, ok := First(MustRange(5, 3))
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = First(Empty[int]())
	assert.False(t, ok)

	assert.Equal(t, 5, FirstOrDefault(MustRange(5, 3), -1))
	assert.Equal(t, -1, FirstOrDefault(Empty[int](), -1))
	assert.Equal(t, 0, FirstOrDefault(MustRange(0, 0), 0))
}

func TestFold(t *testing.T) {
	assert.Equal(t, 42, Fold(Empty[int](), 42, func(acc, v int) int { return acc + v }))
	assert.Equal(t, 1+2+3, Fold(Of(1, 2, 3), 0, func(acc, v int) int { return acc + v }))

	// Subtraction is not commutative, so this pins the left-to-right order.
	assert.Equal(t, ((100-1)-2)-3, Fold(Of(1, 2, 3), 100, func(acc, v int) int { return acc - v }))

	concat := Fold(Of("a", "b", "c"), ">", func(acc, v string) string { return acc + v })
	assert.Equal(t, ">abc", concat)

	lengths := Fold(Of("go", "lazy"), 0, func(acc int, v string) int { return acc + len(v) })
	assert.Equal(t, 6, lengths)
}

func TestAggregate(t *testing.T) {
	_, ok := Aggregate(Empty[int](), func(acc, v int) int { return acc + v })
	assert.False(t, ok)

	v, ok := Aggregate(Of(9), func(acc, v int) int { return acc + v })
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	v, ok = Aggregate(Of(10, 2, 3), func(acc, v int) int { return acc - v })
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestCountAnyToSlice(t *testing.T) {
	assert.Equal(t, 0, Count(Empty[int]()))
	assert.Equal(t, 50, Count(Where(MustRange(0, 100), func(v int) bool { return v%2 == 1 })))

	assert.True(t, Any(MustRange(0, 10), func(v int) bool { return v == 9 }))
	assert.False(t, Any(MustRange(0, 10), func(v int) bool { return v == 10 }))

	assert.Equal(t, []int{0, 1, 2}, ToSlice(MustRange(0, 3)))
	assert.Empty(t, ToSlice(Empty[int]()))
}

func TestAll(t *testing.T) {
	var got []int
	for v := range All(MustRange(0, 5)) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

// TestChainedQuery composes several combinators over a nested range, the
// way a row-by-row renderer would.
func TestChainedQuery(t *testing.T) {
	rows := Map(MustRange(0, 3), func(y int) *MapSeq[int, [2]int, RangeCursor[int]] {
		return Map(MustRange(0, 4), func(x int) [2]int { return [2]int{x, y} })
	})

	var pixels [][2]int
	ForEach(rows, func(row *MapSeq[int, [2]int, RangeCursor[int]]) {
		ForEach(row, func(p [2]int) { pixels = append(pixels, p) })
	})
	require.Len(t, pixels, 12)
	assert.Equal(t, [2]int{0, 0}, pixels[0])
	assert.Equal(t, [2]int{3, 2}, pixels[11])

	sum := Fold(
		Where(Map(MustRange(1, 10), func(v int) int { return v * v }), func(v int) bool { return v%2 == 0 }),
		0,
		func(acc, v int) int { return acc + v },
	)
	assert.Equal(t, 4+16+36+64+100, sum)
}

func TestNilFunctionsPanic(t *testing.T) {
	assert.Panics(t, func() { Select[int, int](MustRange(0, 1), nil) })
	assert.Panics(t, func() { Map[int, int](MustRange(0, 1), nil) })
	assert.Panics(t, func() { Where(MustRange(0, 1), nil) })
}
