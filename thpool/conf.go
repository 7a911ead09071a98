package thpool

import "time"

// Option is a functional option for configuring the pool.
type Option func(*poolConfig)

type poolConfig struct {
	drainInterval time.Duration
	pinWorkers    bool
}

func defaultConfig() *poolConfig {
	return &poolConfig{
		drainInterval: time.Millisecond,
	}
}

// WithDrainInterval sets the polling period used by Drain while it
// waits for outstanding work to finish. A shorter interval lowers
// drain latency at the cost of more wakeups of the draining goroutine.
// If not specified, defaults to 1ms.
func WithDrainInterval(d time.Duration) Option {
	return func(cfg *poolConfig) {
		if d > 0 {
			cfg.drainInterval = d
		}
	}
}

// WithPinnedWorkers locks each worker to a dedicated OS thread and
// pins it to a CPU core (core i for worker i, wrapping around when the
// pool is larger than the machine). Pinning failures are ignored; the
// worker still runs on its locked thread. Useful for cache-sensitive
// CPU-bound jobs; pointless for I/O-bound ones.
func WithPinnedWorkers() Option {
	return func(cfg *poolConfig) {
		cfg.pinWorkers = true
	}
}
