// Copyright 2025 The go-quicksort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for sorting
// independent ranges of a slice in parallel. A Pool is created once and
// reused across many sorts, so each sort pays neither goroutine spawn nor
// channel allocation costs.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    quicksort.SortParallel(batch, pool)
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every call until Close.
//
// A Pool may be shared by goroutines. Close may run concurrently with
// ParallelForAtomic: calls already submitting finish first, later calls run
// sequentially on the caller.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while work is submitted, and for writing to
	// close workC.
	mu     sync.RWMutex
	closed bool
}

// workItem is one worker's share of a parallel call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool once pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// one at a time through an atomic counter. Use it when the cost per index
// varies, as it does for ranges left by uneven pivots. Blocks until every
// index is done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)

	p.mu.RLock()
	if p.closed || workers == 1 {
		p.mu.RUnlock()
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()

	wg.Wait()
}
