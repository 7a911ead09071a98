package thpool

import (
	"sync/atomic"

	"github.com/klong13579/thpool/internal/cpu"
)

// worker is one long-lived member of the pool. Its loop cycles through
// three states: idle (blocked in the wake signal's wait), woken
// (attempting a pull), and running (executing a pulled job).
type worker struct {
	id   int
	pool *Pool
	pin  bool
	idle atomic.Bool
}

func newWorker(id int, p *Pool, pin bool) *worker {
	w := &worker{id: id, pool: p, pin: pin}
	w.idle.Store(true)
	return w
}

// run is the worker loop. It exits when, after waking, the pool's
// running flag reads false; a pulled job always runs to completion
// first. An empty pull after a wake is a spurious wake: both the
// queue's cascade re-post and shutdown wake more workers than there
// are jobs, and the woken worker simply goes back to waiting.
func (w *worker) run() error {
	if w.pin {
		unpin := cpu.SetupWorkerAffinity(w.id)
		defer unpin()
	}

	p := w.pool
	for {
		p.wake.wait()

		if !p.running.Load() {
			// Shutdown's per-worker posts collapse in the single-slot
			// signal like any others; hand the consumed wake on so
			// every sibling still blocked in wait also exits.
			p.wake.post()
			debugLog("worker %d exiting", w.id)
			return nil
		}

		p.mu.Lock()
		j := p.queue.pull()
		p.mu.Unlock()
		if j == nil {
			continue
		}

		w.idle.Store(false)
		j.fn(j.arg)
		// Idle flips back before the completed count does, so anyone
		// unblocked by the counter already sees this worker as idle.
		w.idle.Store(true)
		p.completed.Add(1)
	}
}
