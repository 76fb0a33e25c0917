package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs indexed loops on a fixed set of goroutines.
//
// A loop is published to every worker as one shared batch. Workers claim
// indices from an atomic cursor until the batch is exhausted, so a few
// expensive blocks (points deep inside the set) never leave the other
// workers idle, and dispatching a loop allocates nothing.
//
// Thread safety: WorkerPool is safe for concurrent use. Concurrent ForEach
// calls run one after another.
type WorkerPool struct {
	workers int

	// batches carries the current batch once per participating worker.
	batches chan *batch
	done    chan struct{}

	// mu serializes ForEach and Close; cur is reused for every loop.
	mu  sync.Mutex
	cur batch

	wg      sync.WaitGroup
	running atomic.Bool
}

// batch is one ForEach call in flight.
type batch struct {
	fn     func(i int)
	n      int64
	cursor atomic.Int64
	wg     sync.WaitGroup
}

// run claims indices until none are left.
func (b *batch) run() {
	defer b.wg.Done()
	for {
		i := b.cursor.Add(1) - 1
		if i >= b.n {
			return
		}
		b.fn(int(i))
	}
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		batches: make(chan *batch, workers),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.loop()
	}
	return p
}

func (p *WorkerPool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case b := <-p.batches:
			b.run()
		}
	}
}

// ForEach calls fn(i) for every i in [0, n) and returns once all calls have
// finished. Indices run in any order and on any worker. On a closed pool
// ForEach is a no-op.
func (p *WorkerPool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running.Load() {
		return
	}

	b := &p.cur
	b.fn = fn
	b.n = int64(n)
	b.cursor.Store(0)

	// The channel holds one slot per worker and is empty between loops, so
	// these sends never block.
	helpers := min(p.workers, n)
	b.wg.Add(helpers)
	for range helpers {
		p.batches <- b
	}
	b.wg.Wait()
	b.fn = nil
}

// Close stops the workers. A loop in progress finishes first.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
