package sieve

import (
	"context"
	"sync"
)

// PoolSignaled computes all primes <= n by queueing one task per base
// prime onto a worker pool sized to the divisor count. Each task scans
// the entire upper range and marks the multiples of its one assigned
// divisor under the table lock. A completion counter initialized to the
// divisor count is released by each task; the call blocks on it before
// extracting results.
//
// This generalizes DivisorPartitioned from a fixed fan-out to
// worker-count = divisor-count, trading coordination overhead for
// finer-grained parallelism.
func PoolSignaled(ctx context.Context, n int) ([]int, error) {
	t, err := NewTable(n)
	if err != nil {
		return nil, err
	}
	limit := isqrt(n)
	modifiedBaseSieve(t, limit)

	primes, err := t.ExtractRange(2, limit, nil)
	if err != nil {
		return nil, err
	}

	lo, hi := limit+1, n
	if lo <= hi && len(primes) > 0 {
		pool := NewWorkerPool(len(primes))
		defer pool.Close()

		var (
			done     sync.WaitGroup
			errMu    sync.Mutex
			firstErr error
		)
		fail := func(err error) {
			errMu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			errMu.Unlock()
		}

		done.Add(len(primes))
		for _, p := range primes {
			err := pool.Submit(ctx, func() {
				defer done.Done()
				if err := markDivisor(ctx, t, p, lo, hi); err != nil {
					fail(err)
				}
			})
			if err != nil {
				// Task never ran; release its slot on the counter.
				done.Done()
				fail(err)
			}
		}
		done.Wait()

		if firstErr != nil {
			return nil, firstErr
		}
	}

	return t.ExtractRange(lo, hi, primes)
}

// markDivisor scans the whole range, marking every multiple of the single
// assigned divisor.
func markDivisor(ctx context.Context, t *Table, divisor, from, to int) error {
	for i := from; i <= to; i++ {
		if (i-from)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if i%divisor == 0 {
			t.MarkComposite(i)
		}
	}
	return nil
}
