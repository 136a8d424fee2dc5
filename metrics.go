package tuplemap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Calls happen synchronously on the goroutine using the map, so
// implementations should be cheap.
type MetricsCollector interface {
	// RecordEmplace is called after each row is appended. orphan is true
	// if the key was already mapped to an earlier row.
	RecordEmplace(orphan bool)

	// RecordLookup is called after each keyed lookup.
	RecordLookup(hit bool)

	// RecordBatch is called after each batch construction or extension.
	// count is the number of entries processed, orphans the number that
	// produced orphan rows.
	RecordBatch(count, orphans int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEmplace(bool)                  {}
func (NoopMetricsCollector) RecordLookup(bool)                   {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EmplaceCount    atomic.Int64
	OrphanCount     atomic.Int64
	LookupCount     atomic.Int64
	LookupMisses    atomic.Int64
	BatchCount      atomic.Int64
	BatchItems      atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordEmplace implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEmplace(orphan bool) {
	b.EmplaceCount.Add(1)
	if orphan {
		b.OrphanCount.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool) {
	b.LookupCount.Add(1)
	if !hit {
		b.LookupMisses.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, _ int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// MetricsStats is a point-in-time copy of BasicMetricsCollector.
type MetricsStats struct {
	EmplaceCount  int64
	OrphanCount   int64
	LookupCount   int64
	LookupMisses  int64
	BatchCount    int64
	BatchItems    int64
	BatchAvgNanos int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		EmplaceCount: b.EmplaceCount.Load(),
		OrphanCount:  b.OrphanCount.Load(),
		LookupCount:  b.LookupCount.Load(),
		LookupMisses: b.LookupMisses.Load(),
		BatchCount:   b.BatchCount.Load(),
		BatchItems:   b.BatchItems.Load(),
	}
	if stats.BatchCount > 0 {
		stats.BatchAvgNanos = b.BatchTotalNanos.Load() / stats.BatchCount
	}
	return stats
}
