package sieve

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	ctx := context.Background()

	t.Run("ExecutesAllTasks", func(t *testing.T) {
		pool := NewWorkerPool(4)
		defer pool.Close()

		var (
			counter atomic.Int64
			done    sync.WaitGroup
		)
		const tasks = 100

		done.Add(tasks)
		for i := 0; i < tasks; i++ {
			err := pool.Submit(ctx, func() {
				defer done.Done()
				counter.Add(1)
			})
			require.NoError(t, err)
		}
		done.Wait()

		assert.Equal(t, int64(tasks), counter.Load())
	})

	t.Run("SubmitAfterCloseFails", func(t *testing.T) {
		pool := NewWorkerPool(2)
		pool.Close()

		err := pool.Submit(ctx, func() {})
		require.ErrorIs(t, err, ErrPoolClosed)
	})

	t.Run("CloseIsIdempotent", func(t *testing.T) {
		pool := NewWorkerPool(2)
		pool.Close()
		pool.Close()
	})

	t.Run("CloseWaitsForQueuedTasks", func(t *testing.T) {
		pool := NewWorkerPool(1)

		var counter atomic.Int64
		for i := 0; i < 10; i++ {
			require.NoError(t, pool.Submit(ctx, func() {
				counter.Add(1)
			}))
		}
		pool.Close()

		assert.Equal(t, int64(10), counter.Load())
	})

	t.Run("NonPositiveSizeFallsBack", func(t *testing.T) {
		pool := NewWorkerPool(0)
		defer pool.Close()

		var done sync.WaitGroup
		done.Add(1)
		require.NoError(t, pool.Submit(ctx, func() { done.Done() }))
		done.Wait()
	})
}
