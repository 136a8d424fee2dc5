package tuplemap

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/tuplemap/tuple"
)

func TestMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	m := From1([]Entry[string, tuple.T1[int]]{
		{Key: "a", Value: tuple.Of1(1)},
		{Key: "b", Value: tuple.Of1(2)},
		{Key: "a", Value: tuple.Of1(3)},
	}, WithMetricsCollector(metrics))

	m.Lookup("a")
	m.Lookup("missing")
	_, _ = m.At("b")

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.EmplaceCount)
	assert.Equal(t, int64(1), stats.OrphanCount)
	assert.Equal(t, int64(3), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupMisses)
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(3), stats.BatchItems)
	assert.GreaterOrEqual(t, stats.BatchAvgNanos, int64(0))
}

func TestWithMetricsCollector_Nil(t *testing.T) {
	m := New1[int, int](WithMetricsCollector(nil))
	assert.NotPanics(t, func() {
		m.Emplace(1, 1)
		m.Lookup(1)
	})
}

func TestLogger_Orphan(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New1[string, int](WithLogger(logger))
	m.Emplace("k", 1)
	assert.Empty(t, buf.String())

	m.Emplace("k", 2)
	assert.Contains(t, buf.String(), "orphan row appended")
	assert.Contains(t, buf.String(), `"row":1`)
	assert.Contains(t, buf.String(), `"mapped_row":0`)

	buf.Reset()
	_ = m.Insert("k", 3)
	assert.Contains(t, buf.String(), "duplicate key rejected")
}

func TestLogger_Batch(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	m := New1[int, int](WithLogger(logger))
	m.EmplaceAll(Entry[int, tuple.T1[int]]{Key: 1, Value: tuple.Of1(1)})
	assert.Empty(t, buf.String(), "clean batches log at debug level")

	m.EmplaceAll(
		Entry[int, tuple.T1[int]]{Key: 1, Value: tuple.Of1(2)},
		Entry[int, tuple.T1[int]]{Key: 2, Value: tuple.Of1(3)},
	)
	assert.Contains(t, buf.String(), "batch emplace created orphan rows")
	assert.Contains(t, buf.String(), "orphans=1")
}

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))

	noop := NoopLogger()
	assert.False(t, noop.Enabled(context.Background(), slog.LevelError))

	m := New1[int, int](WithLogger(nil), WithLogLevel(slog.LevelError))
	assert.NotPanics(t, func() { m.Emplace(1, 1) })
}
