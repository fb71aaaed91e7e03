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

package main

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ajroetker/go-lazyseq/seq"
	"github.com/ajroetker/go-lazyseq/seq/contrib/sort"
	"github.com/ajroetker/go-lazyseq/seq/contrib/workerpool"
)

var errMismatch = errors.New("results differ")

// runVerify runs cfg.Trials independent trials on a worker pool. Each trial
// has its own seed and its own sequences.
func runVerify(cfg Config, log zerolog.Logger) error {
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	start := time.Now()
	err := pool.Each(cfg.Trials, func(i int) error {
		seed := cfg.Seed + int64(i)
		if err := verifyTrial(seed, cfg.Size); err != nil {
			return fmt.Errorf("trial %d (seed %d): %w", i, seed, err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("verification failed")
		return err
	}
	log.Info().
		Int("trials", cfg.Trials).
		Int("workers", pool.Workers()).
		Dur("elapsed", time.Since(start)).
		Msg("all trials consistent")
	return nil
}

// verifyTrial checks every ordering path against a stable sort of the same
// random keys. Keys repeat heavily so that tie order is exercised.
func verifyTrial(seed int64, maxSize int) error {
	rng := rand.New(rand.NewSource(seed))
	n := 1 + rng.Intn(maxSize)
	distinct := 1 + rng.Intn(n)
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(distinct)
	}
	descending := rng.Intn(2) == 1

	compare := cmp.Compare[int]
	if descending {
		compare = func(a, b int) int { return cmp.Compare(b, a) }
	}
	ref := make([]int, n)
	for i := range ref {
		ref[i] = i
	}
	slices.SortStableFunc(ref, func(a, b int) int { return compare(keys[a], keys[b]) })

	k := rng.Intn(n)
	from := rng.Intn(n)
	to := from + rng.Intn(n-from)

	// Positions, through the sorting engine.
	elems := sort.Slice[int](keys)
	chain := sort.NewChain(func(v int) int { return v }, cmp.Compare[int], descending)
	perm := chain.Sort(elems)
	if !slices.Equal(perm, ref) {
		return fmt.Errorf("full sort: %w", errMismatch)
	}
	if !chain.IsSorted(elems, perm) {
		return fmt.Errorf("full sort not recognized as sorted: %w", errMismatch)
	}
	if i, _ := chain.Min(elems); i != ref[0] {
		return fmt.Errorf("min: got %d, want %d: %w", i, ref[0], errMismatch)
	}
	i, err := chain.Select(elems, k)
	if err != nil {
		return err
	}
	if i != ref[k] {
		return fmt.Errorf("select rank %d: got %d, want %d: %w", k, i, ref[k], errMismatch)
	}
	part, err := chain.PartialSort(elems, from, to)
	if err != nil {
		return err
	}
	if !slices.Equal(part[from:to+1], ref[from:to+1]) {
		return fmt.Errorf("partial sort [%d, %d]: %w", from, to, errMismatch)
	}

	// Values and positions, through the sequence API.
	type entry struct{ key, pos int }
	entries := seq.Map(seq.MustRange(0, n), func(p int) entry { return entry{keys[p], p} })
	var o *seq.Ordered[entry]
	if descending {
		o = seq.OrderByDescending(entries, func(e entry) int { return e.key })
	} else {
		o = seq.OrderBy(entries, func(e entry) int { return e.key })
	}
	got := seq.ToSlice(seq.Map(o, func(e entry) int { return e.pos }))
	if !slices.Equal(got, ref) {
		return fmt.Errorf("ordered sequence: %w", errMismatch)
	}
	e, err := o.ElementAt(k)
	if err != nil {
		return err
	}
	if e.pos != ref[k] {
		return fmt.Errorf("element at %d: %w", k, errMismatch)
	}
	win, err := o.Window(from, to)
	if err != nil {
		return err
	}
	if !slices.Equal(lo.Map(win, func(e entry, _ int) int { return e.pos }), ref[from:to+1]) {
		return fmt.Errorf("window [%d, %d]: %w", from, to, errMismatch)
	}

	// Filtering and counting.
	even := func(v int) bool { return v%2 == 0 }
	if got, want := seq.Count(seq.Where(seq.Of(keys...), even)), lo.CountBy(keys, even); got != want {
		return fmt.Errorf("count: got %d, want %d: %w", got, want, errMismatch)
	}
	return nil
}
