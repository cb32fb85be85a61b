package sieve

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DivisorPartitioned computes all primes <= n by splitting the base-prime
// list into `workers` divisor classes (list index mod workers); every
// worker scans the entire upper range, testing only against its own class.
// A non-positive worker count falls back to DefaultWorkers.
//
// Unlike RangePartitioned, two workers can target the same index here (a
// composite with divisors in two classes is visited twice), so the table
// lock is load-bearing: it serializes the flag writes so no update is
// lost. The call blocks until every worker has finished (or one fails)
// before extracting results.
func DivisorPartitioned(ctx context.Context, n, workers int) ([]int, error) {
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
	if lo <= hi && len(primes) > 0 {
		g, ctx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			class := make([]int, 0, len(primes)/workers+1)
			for i := w; i < len(primes); i += workers {
				class = append(class, primes[i])
			}
			if len(class) == 0 {
				continue
			}
			g.Go(func() error {
				return markMultiples(ctx, t, class, lo, hi)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return t.ExtractRange(lo, hi, primes)
}

// markMultiples scans the whole range once, testing each index only
// against the worker's own divisor class, ascending with short-circuit.
func markMultiples(ctx context.Context, t *Table, divisors []int, from, to int) error {
	for i := from; i <= to; i++ {
		if (i-from)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for _, p := range divisors {
			if i%p == 0 {
				t.MarkComposite(i)
				break
			}
		}
	}
	return nil
}
