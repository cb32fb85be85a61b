package primesieve

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    sieveCounter   prometheus.CounterVec
//	    sieveHistogram prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordSieve(strategy string, bound, primes int, duration time.Duration, err error) {
//	    p.sieveCounter.WithLabelValues(strategy).Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSieve is called after each sieve run. strategy names the
	// elimination strategy, bound is the requested upper limit, primes is
	// the result length, duration is the total time taken, and err is nil
	// if the run succeeded.
	RecordSieve(strategy string, bound, primes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSieve(string, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SieveCount      atomic.Int64
	SieveErrors     atomic.Int64
	SieveTotalNanos atomic.Int64
	PrimesTotal     atomic.Int64
}

// RecordSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieve(strategy string, bound, primes int, duration time.Duration, err error) {
	b.SieveCount.Add(1)
	b.SieveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SieveErrors.Add(1)
		return
	}
	b.PrimesTotal.Add(int64(primes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SieveCount:    b.SieveCount.Load(),
		SieveErrors:   b.SieveErrors.Load(),
		SieveAvgNanos: b.getAvgSieveNanos(),
		PrimesTotal:   b.PrimesTotal.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSieveNanos() int64 {
	count := b.SieveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SieveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SieveCount    int64
	SieveErrors   int64
	SieveAvgNanos int64
	PrimesTotal   int64
}
