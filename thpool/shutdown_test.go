package thpool

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestShutdown(t *testing.T) {
	t.Run("immediate shutdown with no submissions", func(t *testing.T) {
		p := mustNewPool(t, 3)

		returned := returnsWithin(t, 2*time.Second, func() {
			if err := p.Shutdown(); err != nil {
				t.Errorf("shutdown failed: %v", err)
			}
		})
		if !returned {
			t.Fatal("shutdown of an idle pool should return promptly")
		}

		stats := p.Stats()
		if stats.Completed != 0 {
			t.Errorf("no jobs were submitted, yet %d completed", stats.Completed)
		}

		// All workers joined: the done channel is closed.
		select {
		case <-p.done:
		default:
			t.Error("workers were not joined by shutdown")
		}
	})

	t.Run("second shutdown returns ErrPoolClosed", func(t *testing.T) {
		p := mustNewPool(t, 2)

		if err := p.Shutdown(); err != nil {
			t.Fatalf("first shutdown failed: %v", err)
		}
		if err := p.Shutdown(); !errors.Is(err, ErrPoolClosed) {
			t.Errorf("expected ErrPoolClosed on second shutdown, got %v", err)
		}
	})

	t.Run("submit after shutdown returns ErrPoolClosed", func(t *testing.T) {
		p := mustNewPool(t, 1)

		if err := p.Shutdown(); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
		if err := p.Submit(func(any) {}, nil); !errors.Is(err, ErrPoolClosed) {
			t.Errorf("expected ErrPoolClosed, got %v", err)
		}
	})

	t.Run("without drain executes at most the submitted jobs, each once", func(t *testing.T) {
		const k = 100

		p := mustNewPool(t, 2)

		executions := make([]atomic.Int32, k)
		var counter atomic.Int64
		for i := range k {
			_ = p.Submit(func(arg any) {
				id := arg.(int)
				executions[id].Add(1)
				counter.Add(1)
			}, i)
		}

		if err := p.Shutdown(); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}

		executed := counter.Load()
		if executed < 0 || executed > k {
			t.Errorf("executed %d jobs, want between 0 and %d", executed, k)
		}
		for id := range executions {
			if n := executions[id].Load(); n > 1 {
				t.Errorf("job %d executed %d times, want at most 1", id, n)
			}
		}

		// Every job is accounted for exactly once: run or discarded.
		stats := p.Stats()
		if stats.Completed+stats.Discarded != stats.Submitted {
			t.Errorf("completed (%d) + discarded (%d) != submitted (%d)",
				stats.Completed, stats.Discarded, stats.Submitted)
		}
	})

	t.Run("a pulled job runs to completion", func(t *testing.T) {
		p := mustNewPool(t, 1)

		started := make(chan struct{})
		var finished atomic.Bool
		_ = p.Submit(func(any) {
			close(started)
			time.Sleep(100 * time.Millisecond)
			finished.Store(true)
		}, nil)

		<-started
		if err := p.Shutdown(); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}

		if !finished.Load() {
			t.Error("shutdown returned before the in-flight job completed")
		}
	})

	t.Run("unblocks a concurrent drain by discarding queued jobs", func(t *testing.T) {
		p := mustNewPool(t, 1)

		gate := make(chan struct{})
		_ = p.Submit(func(any) { <-gate }, nil)
		for range 10 {
			_ = p.Submit(func(any) {}, nil)
		}

		drained := make(chan struct{})
		go func() {
			p.Drain()
			close(drained)
		}()

		close(gate)
		if err := p.Shutdown(); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}

		select {
		case <-drained:
		case <-time.After(2 * time.Second):
			t.Fatal("drain did not return after shutdown discarded the queue")
		}
	})
}
