// Package sieve implements the prime-generation strategies behind primesieve.
//
// Five interchangeable strategies compute the set of primes not exceeding a
// bound n, trading sequential simplicity for parallel throughput:
//
//   - Sequential: classic single-pass sieve of Eratosthenes over 2..n.
//     The correctness baseline.
//   - ModifiedSequential: base primes up to ⌊√n⌋ via a modified base
//     sieve, then single-threaded trial division of the upper range.
//   - RangePartitioned: the upper range is split into contiguous partitions,
//     one worker goroutine per partition.
//   - DivisorPartitioned: the base primes are split into divisor classes,
//     one worker per class scanning the whole upper range.
//   - PoolSignaled: one task per base prime on a worker pool, awaited
//     through a completion counter.
//
// # Shared-State Policy
//
// All strategies mutate a single Table of primality flags. Flag transitions
// are monotone (prime candidate → known composite, never back), so any
// worker interleaving converges to the same final set. Concurrent marking
// goes through the table's own mutex, held for a single index write:
//
//   - RangePartitioned: partitions are disjoint, so the lock only guards
//     against torn boolean writes.
//   - DivisorPartitioned and PoolSignaled: workers can target the same
//     index, so the lock serializes the read-modify-write.
//
// The base-prime list is read-only during the concurrent phase and needs no
// synchronization. The driver reads the table only after every worker has
// been joined, which is also the point where worker writes become visible.
//
// # Failure Model
//
// A non-positive bound fails before any allocation. A worker error or
// context cancellation aborts the join and propagates to the caller; no
// partial result is ever returned.
package sieve
