package thpool

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidWorkerCount is returned by New for a worker count
	// below one. It is rejected before anything is allocated.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

	// ErrPoolClosed is returned by Submit after Shutdown, and by every
	// Shutdown call after the first.
	ErrPoolClosed = errors.New("pool already shut down")

	// ErrNilJob is returned by Submit for a nil job function.
	ErrNilJob = errors.New("job function is nil")
)

// JobFunc is a unit of work submitted to the pool: a function of one
// opaque argument. The pool discards any outcome of the call; route
// results through caller-owned, caller-synchronized storage reachable
// from arg.
type JobFunc func(arg any)

// Pool is a fixed-size worker pool. Workers block on a single-slot
// wake signal, pull from a shared FIFO job queue, execute, and repeat
// until Shutdown. All methods are safe for concurrent use.
//
// Create with New, feed with Submit, wait with Drain, stop with
// Shutdown.
type Pool struct {
	mu      sync.Mutex // guards queue and the closed check in Submit
	queue   *jobQueue
	wake    *wakeSignal
	workers []*worker

	running atomic.Bool   // false once Shutdown begins; read by workers on wake
	closed  atomic.Bool   // shutdown latch, flips exactly once
	done    chan struct{} // closed when every worker has exited

	// Pending work is tracked as a single counter triple instead of
	// per-worker idle flags, so Drain rests on one consistently
	// observable value: pending = submitted - completed - discarded.
	submitted atomic.Int64
	completed atomic.Int64
	discarded atomic.Int64

	drainInterval time.Duration
}

// New creates a pool with workerCount workers, each starting idle and
// blocked on the wake signal. It returns ErrInvalidWorkerCount if
// workerCount is below one.
//
// Example:
//
//	pool, err := thpool.New(8, thpool.WithPinnedWorkers())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Shutdown()
func New(workerCount int, opts ...Option) (*Pool, error) {
	if workerCount < 1 {
		return nil, ErrInvalidWorkerCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	wake := newWakeSignal()
	p := &Pool{
		queue:         newJobQueue(wake),
		wake:          wake,
		done:          make(chan struct{}),
		drainInterval: cfg.drainInterval,
	}
	p.running.Store(true)

	p.workers = make([]*worker, workerCount)
	var g errgroup.Group
	for i := range workerCount {
		w := newWorker(i, p, cfg.pinWorkers)
		p.workers[i] = w
		g.Go(w.run)
	}

	go func() {
		_ = g.Wait()
		close(p.done)
	}()

	return p, nil
}

// Submit enqueues a job for execution and returns before it runs. It
// never blocks beyond the queue's O(1) critical section and is never
// rejected for queue size; the queue grows without bound.
//
// Returns ErrNilJob for a nil fn and ErrPoolClosed after Shutdown.
func (p *Pool) Submit(fn JobFunc, arg any) error {
	if fn == nil {
		return ErrNilJob
	}

	p.mu.Lock()
	if p.closed.Load() {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.submitted.Add(1)
	p.queue.push(&job{fn: fn, arg: arg})
	p.mu.Unlock()

	return nil
}

// Drain blocks until every submitted job has finished and no worker is
// executing. It polls the pending counter at the configured interval,
// so there is a small bounded latency between the last completion and
// Drain returning.
//
// Drain does not stop the pool; jobs submitted while it waits extend
// the wait. A concurrent Shutdown also unblocks it, since discarded
// jobs stop counting as pending.
func (p *Pool) Drain() {
	ticker := time.NewTicker(p.drainInterval)
	defer ticker.Stop()

	for p.pending() > 0 {
		<-ticker.C
	}
}

// Shutdown stops the pool: it flips the running flag, posts the wake
// signal once per worker so every blocked worker wakes to observe it,
// joins all workers, and discards any jobs still queued. A job already
// pulled by a worker runs to completion; queued jobs that never ran
// are dropped. Call Drain first if all submitted work must execute.
//
// The first call returns nil; every later call returns ErrPoolClosed
// without touching the pool.
func (p *Pool) Shutdown() error {
	if !p.closed.CompareAndSwap(false, true) {
		return ErrPoolClosed
	}

	p.running.Store(false)
	for range p.workers {
		p.wake.post()
	}
	<-p.done

	p.mu.Lock()
	dropped := p.queue.clear()
	p.mu.Unlock()
	p.discarded.Add(int64(dropped))

	debugLog("pool shut down: %d workers joined, %d queued jobs discarded", len(p.workers), dropped)
	return nil
}

// pending reports jobs that are queued or executing.
func (p *Pool) pending() int64 {
	return p.submitted.Load() - p.completed.Load() - p.discarded.Load()
}

// queueLen reports the number of queued, not-yet-pulled jobs.
func (p *Pool) queueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.len()
}
