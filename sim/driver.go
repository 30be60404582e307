package sim

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// DefaultBatchSize is the batch width used when a caller has no reason to
// pick another one.
const DefaultBatchSize = 64

// batch is one contiguous index range handed to a worker goroutine.
type batch struct {
	start, end int
	body       func(int)
	wg         *sync.WaitGroup
}

// Driver fans independent index-addressed update calls out across a pool of
// persistent worker goroutines. One tick may be in flight at a time; a second
// Schedule before the first Handle's Wait returns fails with
// ErrScheduleConflict.
type Driver struct {
	workers   int
	jobs      chan batch
	inflight  *semaphore.Weighted
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewDriver starts a driver with the given number of workers. A count below 1
// defaults to the number of available hardware threads.
func NewDriver(workers int) *Driver {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	d := &Driver{
		workers:  workers,
		jobs:     make(chan batch, workers),
		inflight: semaphore.NewWeighted(1),
	}
	for i := 0; i < workers; i++ {
		go d.workerLoop()
	}
	return d
}

// Workers reports the size of the worker pool.
func (d *Driver) Workers() int { return d.workers }

// workerLoop executes batches until the jobs channel is closed.
func (d *Driver) workerLoop() {
	for b := range d.jobs {
		for i := b.start; i < b.end; i++ {
			b.body(i)
		}
		b.wg.Done()
	}
}

// Handle joins a scheduled tick. Results of every per-index body call are
// fully visible to the caller once Wait returns.
type Handle struct {
	wg      *sync.WaitGroup
	release func()
	once    sync.Once
}

// Wait blocks until every batch of the tick has finished. It is safe to call
// more than once; every caller returns only after completion.
func (h *Handle) Wait() {
	h.once.Do(func() {
		h.wg.Wait()
		h.release()
	})
}

// Schedule partitions [0, n) into batchSize-wide batches and dispatches them
// to the worker pool. The per-index body must be independent of every other
// index. Schedule never blocks on the work itself; the returned Handle joins
// it.
func (d *Driver) Schedule(n, batchSize int, body func(int)) (*Handle, error) {
	if n < 0 || batchSize <= 0 {
		return nil, fmt.Errorf("schedule n=%d batch=%d: %w", n, batchSize, ErrInvalidConfig)
	}
	if d.closed.Load() {
		return nil, fmt.Errorf("driver closed: %w", ErrScheduleConflict)
	}
	if !d.inflight.TryAcquire(1) {
		return nil, ErrScheduleConflict
	}

	batches := (n + batchSize - 1) / batchSize
	wg := &sync.WaitGroup{}
	wg.Add(batches)
	h := &Handle{wg: wg, release: func() { d.inflight.Release(1) }}

	go func() {
		for start := 0; start < n; start += batchSize {
			end := start + batchSize
			if end > n {
				end = n
			}
			d.jobs <- batch{start: start, end: end, body: body, wg: wg}
		}
	}()
	return h, nil
}

// Close waits for any in-flight tick and stops the workers. Scheduling on a
// closed driver fails with ErrScheduleConflict.
func (d *Driver) Close() {
	d.closeOnce.Do(func() {
		_ = d.inflight.Acquire(context.Background(), 1)
		d.closed.Store(true)
		close(d.jobs)
	})
}

// idle reports whether no tick is currently in flight.
func (d *Driver) idle() bool {
	if !d.inflight.TryAcquire(1) {
		return false
	}
	d.inflight.Release(1)
	return true
}
