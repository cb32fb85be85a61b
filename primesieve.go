package primesieve

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/primesieve/sieve"
)

// Strategy selects how composites above ⌊√n⌋ are eliminated.
type Strategy int

const (
	// StrategySequential runs the classic single-pass sieve over the
	// whole range. The single-threaded correctness baseline.
	StrategySequential Strategy = iota

	// StrategyModifiedSequential finds the base primes first, then
	// trial-divides the upper range single-threaded.
	StrategyModifiedSequential

	// StrategyRangePartitioned splits the upper range into contiguous
	// partitions, one worker goroutine per partition.
	StrategyRangePartitioned

	// StrategyDivisorPartitioned splits the base primes into divisor
	// classes, one worker per class scanning the whole upper range.
	StrategyDivisorPartitioned

	// StrategyPoolSignaled queues one task per base prime onto a worker
	// pool and blocks on a completion counter.
	StrategyPoolSignaled
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategyModifiedSequential:
		return "modified-sequential"
	case StrategyRangePartitioned:
		return "range-partitioned"
	case StrategyDivisorPartitioned:
		return "divisor-partitioned"
	case StrategyPoolSignaled:
		return "pool-signaled"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Strategies lists every available strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{
		StrategySequential,
		StrategyModifiedSequential,
		StrategyRangePartitioned,
		StrategyDivisorPartitioned,
		StrategyPoolSignaled,
	}
}

// ParseStrategy maps a strategy name, as printed by Strategy.String, back
// to its value.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// PrimeSieve computes primes up to a caller-supplied bound with a
// configurable elimination strategy. Instances are immutable and safe for
// concurrent use; every run owns its own primality table.
//
// The zero value is usable and equivalent to New(StrategySequential).
type PrimeSieve struct {
	strategy Strategy
	workers  int
	timeout  time.Duration
	logger   *Logger
	metrics  MetricsCollector
}

// New creates a PrimeSieve using the given strategy.
func New(strategy Strategy, optFns ...Option) *PrimeSieve {
	o := applyOptions(optFns)
	return &PrimeSieve{
		strategy: strategy,
		workers:  o.workers,
		timeout:  o.timeout,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// Primes returns all primes not exceeding n, in ascending order.
//
// The call blocks until every worker spawned by the strategy has
// finished. With WithTimeout set, a deadline aborts the whole call and no
// partial result is returned. A bound <= 0 fails with ErrInvalidBound
// before anything is allocated.
func (ps *PrimeSieve) Primes(ctx context.Context, n int) ([]int, error) {
	if ps.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ps.timeout)
		defer cancel()
	}

	start := time.Now()
	primes, err := ps.run(ctx, n)

	if ps.metrics != nil {
		ps.metrics.RecordSieve(ps.strategy.String(), n, len(primes), time.Since(start), err)
	}
	if ps.logger != nil {
		ps.logger.LogSieve(ctx, ps.strategy.String(), n, len(primes), err)
	}

	if err != nil {
		return nil, err
	}
	return primes, nil
}

// Count returns the number of primes not exceeding n.
func (ps *PrimeSieve) Count(ctx context.Context, n int) (int, error) {
	primes, err := ps.Primes(ctx, n)
	if err != nil {
		return 0, err
	}
	return len(primes), nil
}

func (ps *PrimeSieve) run(ctx context.Context, n int) ([]int, error) {
	switch ps.strategy {
	case StrategySequential:
		return sieve.Sequential(n)
	case StrategyModifiedSequential:
		return sieve.ModifiedSequential(n)
	case StrategyRangePartitioned:
		return sieve.RangePartitioned(ctx, n, ps.workers)
	case StrategyDivisorPartitioned:
		return sieve.DivisorPartitioned(ctx, n, ps.workers)
	case StrategyPoolSignaled:
		return sieve.PoolSignaled(ctx, n)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, ps.strategy)
	}
}
