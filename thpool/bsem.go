package thpool

import "sync"

// wakeSignal is a single-slot (binary) semaphore used to rouse idle
// workers. Its value is 1 only between a post and the next wait that
// consumes it, so repeated posts without an intervening wait collapse
// into a single pending wakeup. The signal owns its own lock and is
// safe to post from any goroutine, including one already holding the
// pool lock.
//
// The collapsing behavior means one post does not deliver exactly one
// job to exactly one waiter; the job queue compensates with its
// cascade re-post on pull (see jobQueue.pull).
type wakeSignal struct {
	mu   sync.Mutex
	cond *sync.Cond
	v    int
}

func newWakeSignal() *wakeSignal {
	s := &wakeSignal{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// post sets the slot and wakes one waiter. Posting an already-set slot
// leaves the value at 1.
func (s *wakeSignal) post() {
	s.mu.Lock()
	s.v = 1
	s.cond.Signal()
	s.mu.Unlock()
}

// wait blocks until the slot is set, then consumes it. A waiter woken
// by the condition variable re-checks the value, so a signal consumed
// by a faster sibling simply puts this waiter back to sleep.
func (s *wakeSignal) wait() {
	s.mu.Lock()
	for s.v == 0 {
		s.cond.Wait()
	}
	s.v = 0
	s.mu.Unlock()
}
