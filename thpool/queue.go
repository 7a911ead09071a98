package thpool

import "github.com/eapache/queue"

// job is a single unit of work: a function and one opaque argument.
// A job is owned exclusively by the queue from push until pull, when
// ownership transfers to the pulling worker.
type job struct {
	fn  JobFunc
	arg any
}

// jobQueue is the owned FIFO of pending jobs, backed by a ring buffer.
// It is not self-synchronizing: every method must be called with the
// pool lock held. The wake signal has its own internal lock and is the
// only state touched here that is also safe without the pool lock.
type jobQueue struct {
	jobs *queue.Queue
	wake *wakeSignal
}

func newJobQueue(wake *wakeSignal) *jobQueue {
	return &jobQueue{
		jobs: queue.New(),
		wake: wake,
	}
}

// push appends a job and posts the wake signal to rouse one idle
// worker.
func (q *jobQueue) push(j *job) {
	q.jobs.Add(j)
	q.wake.post()
}

// pull removes and returns the oldest job, or nil when the queue is
// empty (a spurious wake, not an error).
//
// When jobs remain after the removal, the wake signal is posted again
// before returning. The signal is single-slot: posts issued while no
// worker was waiting collapse into one pending wakeup, so without this
// cascade a burst of pushes between two waits would leave queued jobs
// with no wakeup to claim them.
func (q *jobQueue) pull() *job {
	if q.jobs.Length() == 0 {
		return nil
	}
	j := q.jobs.Remove().(*job)
	if q.jobs.Length() > 0 {
		q.wake.post()
	}
	return j
}

// clear discards every queued job and returns how many were dropped.
// Used only during shutdown, for jobs that will never execute.
func (q *jobQueue) clear() int {
	n := q.jobs.Length()
	for q.jobs.Length() > 0 {
		q.jobs.Remove()
	}
	return n
}

func (q *jobQueue) len() int {
	return q.jobs.Length()
}
