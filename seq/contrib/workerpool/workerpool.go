// Copyright 2025 The go-lazyseq Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs batches of independent jobs on a fixed set of
// goroutines. A Pool is created once and reused for many batches.
//
// Sequences and cursors are not safe for concurrent use, so each job must
// build its own pipeline. The pool only spreads whole jobs over workers.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Each(len(seeds), func(i int) error {
//	    return runTrial(seeds[i])
//	})
package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of workers fed through a shared job queue.
type Pool struct {
	workers   int
	jobs      chan job
	closeOnce sync.Once
	closed    atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers. If workers <= 0 it
// uses GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan job, workers*2),
	}
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued jobs finish. It is safe to call more
// than once. Batches submitted after Close run on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// Each calls fn for every index in [0, n) and waits for all calls. Workers
// take indices one at a time, so jobs of uneven cost balance out.
//
// Every index runs even if some fail. The returned error joins the failures
// in index order, and is nil if there were none.
func (p *Pool) Each(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	errs := make([]error, n)

	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			errs[i] = fn(i)
		}
		return errors.Join(errs...)
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					errs[i] = fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Chunks splits [0, n) into at most Workers() contiguous ranges and calls fn
// on each in parallel. It waits for all calls.
func (p *Pool) Chunks(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	size := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		p.jobs <- job{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}
