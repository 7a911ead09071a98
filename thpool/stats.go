package thpool

// Stats is a point-in-time snapshot of pool activity. The counters are
// read without stopping the pool, so a snapshot taken while jobs are
// flowing may be internally inconsistent by a job or two. IdleWorkers
// in particular is advisory: each worker publishes its own flag, and a
// worker between jobs reads as idle.
type Stats struct {
	Workers     int
	IdleWorkers int
	QueueLen    int
	Submitted   int64
	Completed   int64
	Discarded   int64
	Pending     int64
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	idle := 0
	for _, w := range p.workers {
		if w.idle.Load() {
			idle++
		}
	}

	return Stats{
		Workers:     len(p.workers),
		IdleWorkers: idle,
		QueueLen:    p.queueLen(),
		Submitted:   p.submitted.Load(),
		Completed:   p.completed.Load(),
		Discarded:   p.discarded.Load(),
		Pending:     p.pending(),
	}
}
