package sieve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStrategies = []struct {
	name string
	run  func(ctx context.Context, n int) ([]int, error)
}{
	{"Sequential", func(_ context.Context, n int) ([]int, error) {
		return Sequential(n)
	}},
	{"ModifiedSequential", func(_ context.Context, n int) ([]int, error) {
		return ModifiedSequential(n)
	}},
	{"RangePartitioned", func(ctx context.Context, n int) ([]int, error) {
		return RangePartitioned(ctx, n, DefaultWorkers)
	}},
	{"DivisorPartitioned", func(ctx context.Context, n int) ([]int, error) {
		return DivisorPartitioned(ctx, n, DefaultWorkers)
	}},
	{"PoolSignaled", func(ctx context.Context, n int) ([]int, error) {
		return PoolSignaled(ctx, n)
	}},
}

// primesByTrialDivision is the independent oracle: plain trial division
// of every candidate, no sieving involved.
func primesByTrialDivision(n int) []int {
	var primes []int
	for i := 2; i <= n; i++ {
		isPrime := true
		for d := 2; d*d <= i; d++ {
			if i%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, i)
		}
	}
	return primes
}

func TestStrategiesMatchOracle(t *testing.T) {
	ctx := context.Background()

	for _, strategy := range allStrategies {
		t.Run(strategy.name, func(t *testing.T) {
			for n := 1; n <= 300; n++ {
				got, err := strategy.run(ctx, n)
				require.NoError(t, err, "n=%d", n)
				require.Equal(t, primesByTrialDivision(n), got, "n=%d", n)
			}
			for _, n := range []int{999, 1000, 1024, 2000} {
				got, err := strategy.run(ctx, n)
				require.NoError(t, err, "n=%d", n)
				require.Equal(t, primesByTrialDivision(n), got, "n=%d", n)
			}
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{1, 2, 3, 4, 5, 30, 100, 541, 1000, 4999} {
		reference, err := Sequential(n)
		require.NoError(t, err)

		for _, strategy := range allStrategies[1:] {
			got, err := strategy.run(ctx, n)
			require.NoError(t, err, "%s n=%d", strategy.name, n)
			assert.Equal(t, reference, got, "%s n=%d", strategy.name, n)
		}
	}
}

func TestInvalidBound(t *testing.T) {
	ctx := context.Background()

	for _, strategy := range allStrategies {
		t.Run(strategy.name, func(t *testing.T) {
			for _, n := range []int{0, -1, -1000} {
				got, err := strategy.run(ctx, n)
				require.Error(t, err)
				assert.Nil(t, got)

				var ib *ErrInvalidBound
				require.ErrorAs(t, err, &ib)
				assert.Equal(t, n, ib.Bound)
			}
		})
	}
}

func TestBoundaryBehavior(t *testing.T) {
	ctx := context.Background()

	for _, strategy := range allStrategies {
		t.Run(strategy.name, func(t *testing.T) {
			got, err := strategy.run(ctx, 1)
			require.NoError(t, err)
			assert.Empty(t, got)

			got, err = strategy.run(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, []int{2}, got)

			got, err = strategy.run(ctx, 3)
			require.NoError(t, err)
			assert.Equal(t, []int{2, 3}, got)
		})
	}
}

func TestLiteralScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("Bound30", func(t *testing.T) {
		want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
		for _, strategy := range allStrategies {
			got, err := strategy.run(ctx, 30)
			require.NoError(t, err, strategy.name)
			assert.Equal(t, want, got, strategy.name)
		}
	})

	t.Run("Bound100", func(t *testing.T) {
		for _, strategy := range allStrategies {
			got, err := strategy.run(ctx, 100)
			require.NoError(t, err, strategy.name)
			require.Len(t, got, 25, strategy.name)
			assert.Equal(t, 97, got[len(got)-1], strategy.name)
		}
	})
}

func TestConcurrentDeterminism(t *testing.T) {
	ctx := context.Background()

	// The concurrent strategies must yield the identical sequence on
	// every run, whatever the scheduler does.
	for _, strategy := range allStrategies[2:] {
		t.Run(strategy.name, func(t *testing.T) {
			reference, err := strategy.run(ctx, 500)
			require.NoError(t, err)

			for i := 0; i < 100; i++ {
				got, err := strategy.run(ctx, 500)
				require.NoError(t, err)
				require.Equal(t, reference, got, "run %d", i)
			}
		})
	}
}

func TestWorkerCounts(t *testing.T) {
	ctx := context.Background()
	want := primesByTrialDivision(1000)

	for _, workers := range []int{1, 2, 4, 8, 16} {
		got, err := RangePartitioned(ctx, 1000, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "RangePartitioned workers=%d", workers)

		got, err = DivisorPartitioned(ctx, 1000, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "DivisorPartitioned workers=%d", workers)
	}
}

func TestWorkersExceedUpperRange(t *testing.T) {
	ctx := context.Background()

	// More workers than indexes above ⌊√n⌋; the fan-out must shrink
	// instead of handing out overlapping partitions.
	got, err := RangePartitioned(ctx, 5, 64)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5}, got)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Sequential strategies ignore the context entirely.
	got, err := Sequential(100)
	require.NoError(t, err)
	assert.Len(t, got, 25)

	for _, strategy := range allStrategies[2:] {
		t.Run(strategy.name, func(t *testing.T) {
			got, err := strategy.run(ctx, 100_000)
			require.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, got)
		})
	}
}

func BenchmarkSequential(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Sequential(100_000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkModifiedSequential(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ModifiedSequential(100_000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRangePartitioned(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := RangePartitioned(ctx, 100_000, DefaultWorkers); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDivisorPartitioned(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := DivisorPartitioned(ctx, 100_000, DefaultWorkers); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPoolSignaled(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := PoolSignaled(ctx, 100_000); err != nil {
			b.Fatal(err)
		}
	}
}
