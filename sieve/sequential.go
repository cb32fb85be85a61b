package sieve

// Sequential computes all primes <= n with a single-pass sieve of
// Eratosthenes over the full range 2..n. It is the single-threaded
// baseline the concurrent strategies are measured against.
func Sequential(n int) ([]int, error) {
	t, err := NewTable(n)
	if err != nil {
		return nil, err
	}
	baseSieve(t, n)
	return t.ExtractRange(2, n, nil)
}

// ModifiedSequential computes all primes <= n in two phases: the modified
// base sieve finds the base primes up to ⌊√n⌋, then every index in the
// upper range is trial-divided against them in ascending order,
// short-circuiting on the first divisor found. Still single-threaded;
// this establishes the two-phase structure the concurrent strategies
// parallelize.
func ModifiedSequential(n int) ([]int, error) {
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

	for i := limit + 1; i <= n; i++ {
		for _, p := range primes {
			if i%p == 0 {
				t.flags[i] = false
				break
			}
		}
	}

	return t.ExtractRange(limit+1, n, primes)
}
