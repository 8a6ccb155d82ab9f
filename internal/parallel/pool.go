// Package parallel runs independent pieces of a pixel computation on a
// fixed set of goroutines.
//
// Work is split into disjoint row bands (blur, fill, mask) or index ranges
// (block-search offsets). Each piece writes only its own output region, so
// no locking is needed beyond waiting for completion.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker oversubscribes the pool so stealing can even out bands of
// different cost.
const bandsPerWorker = 4

// task is one band of a Run call.
type task struct {
	band Band
	fn   func(Band)
	done *sync.WaitGroup
}

func (t task) run() {
	defer t.done.Done()
	t.fn(t.band)
}

// Pool runs bands on a fixed set of goroutines, one queue per worker.
// An idle worker steals bands queued for the others.
//
// Pool is safe for concurrent use.
type Pool struct {
	queues  []chan task
	quit    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool of the given size. Sizes <= 0 mean GOMAXPROCS.
func NewPool(workers int) *Pool {
	workers = Workers(workers)

	p := &Pool{
		queues: make([]chan task, workers),
		quit:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan task, workers*bandsPerWorker)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

// Workers resolves a requested worker count: values <= 0 mean GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

func (p *Pool) loop(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case t := <-own:
			t.run()
			continue
		default:
		}
		if t, ok := p.steal(id); ok {
			t.run()
			continue
		}
		select {
		case t := <-own:
			t.run()
		case <-p.quit:
			for {
				select {
				case t := <-own:
					t.run()
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) steal(id int) (task, bool) {
	for i := 1; i < len(p.queues); i++ {
		select {
		case t := <-p.queues[(id+i)%len(p.queues)]:
			return t, true
		default:
		}
	}
	return task{}, false
}

// Run splits [0, n) into bands, runs fn on each and waits for all of them.
// fn must only write state owned by its band. A closed pool runs the bands
// on the calling goroutine.
func (p *Pool) Run(n int, fn func(Band)) {
	bands := Split(n, len(p.queues)*bandsPerWorker)
	if len(bands) == 0 {
		return
	}

	var done sync.WaitGroup
	done.Add(len(bands))
	for i, b := range bands {
		t := task{band: b, fn: fn, done: &done}
		if !p.running.Load() {
			t.run()
			continue
		}
		select {
		case p.queues[i%len(p.queues)] <- t:
		case <-p.quit:
			t.run()
		}
	}
	done.Wait()
}

// Close stops the workers once queued bands are done. Safe to call twice.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.quit)
	p.wg.Wait()
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.queues) }

// Running reports whether the pool still accepts bands.
func (p *Pool) Running() bool { return p.running.Load() }

// ForBands runs fn over [0, n) split into bands. With workers == 1 or
// n <= 1 it runs inline as a single band; otherwise a pool sized to the
// work (<= 0 means GOMAXPROCS) lives for the duration of the call.
func ForBands(n, workers int, fn func(Band)) {
	workers = Workers(workers)
	if workers == 1 || n <= 1 {
		if n > 0 {
			fn(Band{Start: 0, End: n})
		}
		return
	}

	pool := NewPool(min(workers, n))
	defer pool.Close()
	pool.Run(n, fn)
}
