package primesieve

import (
	"log/slog"
	"time"

	"github.com/hupe1980/primesieve/sieve"
)

type options struct {
	workers int
	timeout time.Duration
	logger  *Logger
	metrics MetricsCollector
}

// Option configures PrimeSieve construction.
type Option func(*options)

// WithWorkers configures the worker fan-out of the partitioned strategies
// (default 3). The pool-signaled strategy ignores it and sizes its pool
// to the base-prime count.
//
// Non-positive values are ignored.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithTimeout bounds the latency of a single run. The default (zero)
// keeps the original semantics: an unconditional, unbounded wait for
// every worker. With a timeout set, a run that exceeds it aborts with
// the context error and returns no partial result.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger configures structured logging for sieve runs.
// Pass nil to keep logging disabled.
//
// Example with JSON logging:
//
//	logger := primesieve.NewJSONLogger(slog.LevelInfo)
//	ps := primesieve.New(primesieve.StrategyPoolSignaled, primesieve.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for sieve runs.
//
// Example with BasicMetricsCollector:
//
//	metrics := &primesieve.BasicMetricsCollector{}
//	ps := primesieve.New(primesieve.StrategySequential, primesieve.WithMetricsCollector(metrics))
//	// ... run sieves ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.SieveCount, stats.SieveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers: sieve.DefaultWorkers,
		metrics: NoopMetricsCollector{},
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
