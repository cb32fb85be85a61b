package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/primesieve"
)

var (
	bound        int
	strategyName string
	workers      int
	timeout      time.Duration
	logLevel     string
	runAll       bool
)

var rootCmd = &cobra.Command{
	Use:   "primesieve",
	Short: "Compute all primes up to a bound",
	Long: `primesieve computes the set of prime numbers not exceeding a bound with
one of five interchangeable elimination strategies, from the classic
single-threaded sieve of Eratosthenes to a pool of workers signalled
through a completion counter.

Use --all to run every strategy on the same bound, compare their results
and report per-strategy timings.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		opts, err := buildOptions()
		if err != nil {
			return err
		}

		if runAll {
			return runComparison(ctx, opts)
		}

		strategy, err := primesieve.ParseStrategy(strategyName)
		if err != nil {
			return err
		}

		ps := primesieve.New(strategy, opts...)
		start := time.Now()
		primes, err := ps.Primes(ctx, bound)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		largest := 0
		if len(primes) > 0 {
			largest = primes[len(primes)-1]
		}
		fmt.Printf("strategy=%s bound=%d primes=%d largest=%d elapsed=%s\n",
			strategy, bound, len(primes), largest, elapsed)
		return nil
	},
}

func buildOptions() ([]primesieve.Option, error) {
	opts := []primesieve.Option{
		primesieve.WithWorkers(workers),
		primesieve.WithTimeout(timeout),
	}
	if logLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		opts = append(opts, primesieve.WithLogLevel(level))
	}
	return opts, nil
}

// runComparison runs every strategy on the same bound and verifies that
// they all produce the identical sequence.
func runComparison(ctx context.Context, opts []primesieve.Option) error {
	strategies := primesieve.Strategies()

	var reference []int
	for i, strategy := range strategies {
		ps := primesieve.New(strategy, opts...)

		start := time.Now()
		primes, err := ps.Primes(ctx, bound)
		if err != nil {
			return fmt.Errorf("%s: %w", strategy, err)
		}
		elapsed := time.Since(start)

		largest := 0
		if len(primes) > 0 {
			largest = primes[len(primes)-1]
		}
		fmt.Printf("%-22s primes=%-9d largest=%-9d elapsed=%s\n",
			strategy, len(primes), largest, elapsed)

		if i == 0 {
			reference = primes
		} else if !slices.Equal(reference, primes) {
			return fmt.Errorf("%s disagrees with %s", strategy, strategies[0])
		}
	}

	fmt.Printf("all %d strategies agree for bound %d\n", len(strategies), bound)
	return nil
}

func init() {
	rootCmd.Flags().IntVarP(&bound, "bound", "n", 1000, "inclusive upper limit for the prime search")
	rootCmd.Flags().StringVarP(&strategyName, "strategy", "s", "sequential",
		"elimination strategy: sequential, modified-sequential, range-partitioned, divisor-partitioned, pool-signaled")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 3, "worker fan-out for the partitioned strategies")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the run after this duration (0 = wait unconditionally)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "enable text logging at this level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&runAll, "all", false, "run every strategy on the same bound and compare")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
