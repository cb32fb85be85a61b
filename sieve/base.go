package sieve

import "math"

// isqrt returns ⌊√n⌋ exactly. The float result is post-corrected so the
// base-prime/upper-range split never drifts off the true integer floor,
// whatever math.Sqrt rounds to at large n.
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// baseSieve runs classic Eratosthenes elimination over 2..limit: indexes
// 0 and 1 are cleared, and for every surviving p the multiples p*p, p*p+p,
// ... up to limit are cleared. Entries above limit are left untouched.
// For limit < 4 the inner loop never executes.
func baseSieve(t *Table, limit int) {
	if limit > t.bound {
		limit = t.bound
	}
	t.flags[0] = false
	t.flags[1] = false
	for p := 2; p <= limit; p++ {
		if !t.flags[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			t.flags[m] = false
		}
	}
}

// modifiedBaseSieve eliminates composites in 2..limit only, first clearing
// the even numbers >= 4 in one pass, then the odd multiples of each
// surviving odd base prime. It produces exactly the same flags over
// 2..limit as baseSieve.
func modifiedBaseSieve(t *Table, limit int) {
	if limit > t.bound {
		limit = t.bound
	}
	t.flags[0] = false
	t.flags[1] = false
	for m := 4; m <= limit; m += 2 {
		t.flags[m] = false
	}
	for p := 3; p <= limit; p += 2 {
		if !t.flags[p] {
			continue
		}
		// Even multiples are already gone, so step by 2p.
		for m := p * p; m <= limit; m += 2 * p {
			t.flags[m] = false
		}
	}
}
