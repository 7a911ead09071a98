package thpool

import (
	"testing"
	"time"
)

// returnsWithin runs fn in a goroutine and reports whether it returned
// before the deadline. Callers asserting that fn blocks must arrange
// to unblock it afterwards or accept the leaked goroutine for the rest
// of the test binary.
func returnsWithin(t *testing.T, d time.Duration, fn func()) bool {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}

// mustNewPool creates a pool and fails the test on error.
func mustNewPool(t *testing.T, workers int, opts ...Option) *Pool {
	t.Helper()

	p, err := New(workers, opts...)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", workers, err)
	}
	return p
}
