package sieve

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the default fan-out of the partitioned strategies.
const DefaultWorkers = 3

// cancelCheckInterval controls how often workers poll for cancellation.
// The hot loops are pure integer math, so the poll is kept coarse to stay
// off the fast path.
const cancelCheckInterval = 4096

// RangePartitioned computes all primes <= n by splitting the range above
// ⌊√n⌋ into `workers` contiguous, equal-sized partitions (the last one
// absorbs the remainder), each trial-divided against the shared base-prime
// list by its own goroutine. A non-positive worker count falls back to
// DefaultWorkers.
//
// Partitions are disjoint, so no two workers ever write the same index;
// marking still goes through the table lock so a torn flag write can never
// be observed. The call blocks until every worker has finished (or one
// fails) before extracting results.
func RangePartitioned(ctx context.Context, n, workers int) ([]int, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

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
	if span := hi - lo + 1; span > 0 {
		if workers > span {
			workers = span
		}
		chunk := span / workers

		g, ctx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			from := lo + w*chunk
			to := from + chunk - 1
			if w == workers-1 {
				to = hi
			}
			g.Go(func() error {
				return markRange(ctx, t, primes, from, to)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return t.ExtractRange(lo, hi, primes)
}

// markRange trial-divides every index in from..to against the full
// base-prime list, marking composites in the shared table.
func markRange(ctx context.Context, t *Table, primes []int, from, to int) error {
	for i := from; i <= to; i++ {
		if (i-from)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for _, p := range primes {
			if i%p == 0 {
				t.MarkComposite(i)
				break
			}
		}
	}
	return nil
}
