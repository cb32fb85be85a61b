// Package primesieve computes the set of prime numbers not exceeding a
// bound, with five interchangeable elimination strategies that trade
// sequential simplicity for parallel throughput.
//
// # Quick Start
//
//	ctx := context.Background()
//	ps := primesieve.New(primesieve.StrategySequential)
//	primes, _ := ps.Primes(ctx, 100) // 25 primes, largest 97
//
// Concurrent strategies accept a worker fan-out:
//
//	ps := primesieve.New(primesieve.StrategyRangePartitioned,
//	    primesieve.WithWorkers(4),
//	)
//	primes, _ := ps.Primes(ctx, 10_000_000)
//
// # Strategies
//
//   - StrategySequential: classic single-pass sieve of Eratosthenes.
//     The single-threaded correctness baseline.
//   - StrategyModifiedSequential: base primes up to ⌊√n⌋ first, then
//     single-threaded trial division of the upper range.
//   - StrategyRangePartitioned: the upper range split into contiguous
//     partitions, one worker each.
//   - StrategyDivisorPartitioned: the base primes split into divisor
//     classes, one worker each scanning the whole upper range.
//   - StrategyPoolSignaled: one task per base prime on a worker pool,
//     awaited through a completion counter.
//
// All five return the identical ascending sequence for the same bound.
//
// # Concurrency Model
//
// Every call owns its primality table, and the table owns its lock, so
// concurrent Primes calls never contend with each other. A call blocks
// until all of its workers have finished; by default the wait is
// unconditional and unbounded. WithTimeout opts into bounded latency: a
// deadline aborts the whole call with no partial result.
//
// # Key Features
//
//   - Five strategies, one facade, identical results
//   - Table-scoped locking, monotone flag transitions
//   - Structured logging (log/slog) and pluggable metrics
//   - Roaring bitmap export of the prime set
package primesieve
