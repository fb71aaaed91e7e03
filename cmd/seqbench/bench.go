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
	"fmt"
	"io"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/ajroetker/go-lazyseq/seq/contrib/workerpool"
)

const (
	engineLazy  = "lazy"
	engineEager = "eager"
)

// measurement holds the timings of one workload on one engine.
type measurement struct {
	workload string
	engine   string
	samples  []float64 // nanoseconds per run
	bytes    uint64    // allocated per run
}

// measure calls fn iterations times and returns the timings with the result
// of the last call.
func measure(workload, engine string, iterations int, fn func() []int) (measurement, []int) {
	m := measurement{workload: workload, engine: engine, samples: make([]float64, iterations)}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	var out []int
	for i := range iterations {
		start := time.Now()
		out = fn()
		m.samples[i] = float64(time.Since(start))
	}
	runtime.ReadMemStats(&after)
	m.bytes = (after.TotalAlloc - before.TotalAlloc) / uint64(iterations)
	return m, out
}

// runWorkloads times every configured workload on both engines and fails if
// the engines disagree.
func runWorkloads(cfg Config, d *dataset, log zerolog.Logger) ([]measurement, error) {
	var all []measurement
	for _, name := range cfg.Workloads {
		w, ok := lookupWorkload(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown workload %q", errConfig, name)
		}
		lazy, lazyOut := measure(w.name, engineLazy, cfg.Iterations, func() []int { return w.lazy(d) })
		eager, eagerOut := measure(w.name, engineEager, cfg.Iterations, func() []int { return w.eager(d) })
		if !slices.Equal(lazyOut, eagerOut) {
			return nil, fmt.Errorf("workload %s: lazy and eager results differ (%d vs %d values)", w.name, len(lazyOut), len(eagerOut))
		}
		log.Debug().
			Str("workload", w.name).
			Int("results", len(lazyOut)).
			Dur("lazy_total", time.Duration(sum(lazy.samples))).
			Dur("eager_total", time.Duration(sum(eager.samples))).
			Msg("workload done")
		all = append(all, lazy, eager)
	}
	return all, nil
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// runBench generates the dataset, times the workloads and writes the report
// to out.
func runBench(out io.Writer, cfg Config, log zerolog.Logger) error {
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	start := time.Now()
	d := generate(pool, cfg.Seed, cfg.Size)
	log.Info().
		Int("size", cfg.Size).
		Int("spheres", len(d.spheres)).
		Int("workers", pool.Workers()).
		Dur("elapsed", time.Since(start)).
		Msg("dataset generated")

	results, err := runWorkloads(cfg, d, log)
	if err != nil {
		return err
	}
	return writeReport(out, newHeader(cfg), results)
}
