package benchmarks

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/klong13579/thpool/thpool"
)

// poolSizes is the worker-count grid shared by the benchmarks.
var poolSizes = []int{1, 2, 4, 8}

// =============================================================================
// Benchmark Workload Generators
// =============================================================================

// cpuBoundWork simulates a CPU-intensive job.
func cpuBoundWork(iterations int) thpool.JobFunc {
	return func(arg any) {
		result := 0
		for i := range iterations {
			result += i
		}
		_ = result
	}
}

// ioBoundWork simulates an I/O job with a fixed delay.
func ioBoundWork(delay time.Duration) thpool.JobFunc {
	return func(arg any) {
		time.Sleep(delay)
	}
}

// submitAndDrain pushes n copies of fn through the pool and waits for
// all of them to finish.
func submitAndDrain(b *testing.B, p *thpool.Pool, fn thpool.JobFunc, n int) {
	b.Helper()

	for range n {
		if err := p.Submit(fn, nil); err != nil {
			b.Fatalf("submit failed: %v", err)
		}
	}
	p.Drain()
}

// pacedSubmitAndDrain is submitAndDrain with a token-bucket limiter on
// the producer side, modelling a caller that feeds the pool at a fixed
// rate instead of as fast as it can.
func pacedSubmitAndDrain(b *testing.B, p *thpool.Pool, limiter *rate.Limiter, fn thpool.JobFunc, n int) {
	b.Helper()

	ctx := context.Background()
	for range n {
		if err := limiter.Wait(ctx); err != nil {
			b.Fatalf("limiter wait failed: %v", err)
		}
		if err := p.Submit(fn, nil); err != nil {
			b.Fatalf("submit failed: %v", err)
		}
	}
	p.Drain()
}
