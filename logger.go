package tuplemap

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with tuplemap-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogOrphan logs a row appended under a key that was already mapped.
// The new row is only reachable through row iteration.
func (l *Logger) LogOrphan(key any, row, keptRow int) {
	l.Debug("orphan row appended",
		"key", key,
		"row", row,
		"mapped_row", keptRow,
	)
}

// LogDuplicateRejected logs an insert refused because the key exists.
func (l *Logger) LogDuplicateRejected(key any, row int) {
	l.Debug("duplicate key rejected",
		"key", key,
		"mapped_row", row,
	)
}

// LogBatch logs a completed batch of emplacements.
func (l *Logger) LogBatch(count, orphans int, duration time.Duration) {
	if orphans > 0 {
		l.Warn("batch emplace created orphan rows",
			"count", count,
			"orphans", orphans,
			"duration", duration,
		)
	} else {
		l.Debug("batch emplace completed",
			"count", count,
			"duration", duration,
		)
	}
}
