package tuplemap

import (
	"log/slog"

	"github.com/hupe1980/tuplemap/column"
)

type options struct {
	columnKind       column.Kind
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a map at construction time.
//
// Options apply to every arity alike; the key index is chosen separately
// through the NewIndexed constructors because its type depends on K.
type Option func(*options)

// WithColumnKind selects the column implementation used for every field.
//
// column.KindDense (the default) gives the best scan locality.
// column.KindPaged keeps row views valid across later inserts at the cost
// of one extra indirection per access.
func WithColumnKind(kind column.Kind) Option {
	return func(o *options) {
		o.columnKind = kind
	}
}

// WithCapacity hints the expected number of rows. Columns and the default
// hash index are pre-sized accordingly.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &tuplemap.BasicMetricsCollector{}
//	m := tuplemap.New2[string, int, float64](tuplemap.WithMetricsCollector(metrics))
//	// ... use m ...
//	stats := metrics.GetStats()
//	fmt.Printf("Rows: %d, orphans: %d\n", stats.EmplaceCount, stats.OrphanCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tuplemap.NewJSONLogger(slog.LevelDebug)
//	m := tuplemap.New2[string, int, float64](tuplemap.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		columnKind:       column.KindDense,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
