// Package parallel provides a small worker pool used to fan filter and
// noise passes out across rows. Work submitted to a pool is joined with
// Wait before the caller returns, so package-level callers stay
// synchronous.
package parallel

import (
	"runtime"
	"sync"
)

// Pool is a fixed set of worker goroutines consuming a shared work queue.
type Pool struct {
	wg   sync.WaitGroup
	work chan func()
	once sync.Once
}

// Start launches a pool with the given number of workers.
// If numWorkers < 1, GOMAXPROCS is used.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{work: make(chan func(), numWorkers)}
	for range numWorkers {
		p.wg.Go(func() {
			for f := range p.work {
				f()
			}
		})
	}
	return p
}

// Do submits one work item. Must not be called after Wait.
func (p *Pool) Do(f func()) {
	p.work <- f
}

// Wait closes the queue and blocks until all submitted work has finished.
func (p *Pool) Wait() {
	p.once.Do(func() { close(p.work) })
	p.wg.Wait()
}

// minParallelRows is the row count below which fan-out is not worth the
// goroutine overhead.
const minParallelRows = 64

// ForRows splits [0, height) into contiguous chunks and runs fn(y0, y1) for
// each chunk, in parallel when the row count justifies it. Chunks are
// disjoint, so fn may write freely to its own rows.
func ForRows(height int, fn func(y0, y1 int)) {
	workers := runtime.GOMAXPROCS(0)
	if height < minParallelRows || workers < 2 {
		fn(0, height)
		return
	}

	pool := Start(workers)
	chunk := (height + workers - 1) / workers
	for y0 := 0; y0 < height; y0 += chunk {
		y1 := min(y0+chunk, height)
		pool.Do(func() { fn(y0, y1) })
	}
	pool.Wait()
}
