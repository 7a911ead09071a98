// Package thpool provides a fixed-size worker pool: a bounded set of
// long-lived workers consumes jobs from a shared FIFO queue until the
// pool is shut down. It is a general-purpose primitive for offloading
// arbitrary callables without per-job goroutine creation cost.
//
// # Basic Usage
//
//	pool, err := thpool.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Shutdown()
//
//	var counter atomic.Int64
//	for range 100 {
//	    _ = pool.Submit(func(arg any) {
//	        arg.(*atomic.Int64).Add(1)
//	    }, &counter)
//	}
//	pool.Drain() // counter is now 100
//
// # Scheduling
//
// Jobs are executed in strict FIFO order relative to a single
// submitter. With more than one worker, start order across workers and
// completion order among concurrently running jobs are not globally
// guaranteed. Submission never blocks and is never rejected for queue
// size; the queue grows without bound.
//
// # Lifecycle
//
//   - New starts the workers, each initially idle.
//   - Drain blocks the caller until every submitted job has finished
//     and no worker is executing.
//   - Shutdown stops the workers, discards any jobs still queued, and
//     joins every worker before returning. It does not wait for queued
//     work: call Drain first if all submitted work must run. Calls
//     after the first return ErrPoolClosed.
//
// # Callable Contract
//
// A job is a function of one opaque argument. The pool discards any
// outcome of the call; callers that need a result must route it
// through caller-owned, caller-synchronized storage reachable from the
// argument. The pool does not recover panics: a panicking job crashes
// the process, exactly as it would outside the pool.
//
// # Configuration Options
//
//   - WithDrainInterval(d): Set the Drain polling period (default: 1ms)
//   - WithPinnedWorkers(): Lock each worker to an OS thread and pin it
//     to a CPU core
package thpool
