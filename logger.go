package tabgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with tabgo-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithVariant adds a variant field to the logger.
func (l *Logger) WithVariant(variant string) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", variant),
	}
}

// WithRows adds a rows field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(variant string, rows, cols int, took time.Duration, err error) {
	if err != nil {
		l.Error("load failed",
			"variant", variant,
			"error", err,
		)
	} else {
		l.Info("load completed",
			"variant", variant,
			"rows", rows,
			"cols", cols,
			"took", took,
		)
	}
}

// LogIndex logs one load-time index at debug level.
func (l *Logger) LogIndex(variant, name string, distinctKeys int) {
	l.Debug("index built",
		"variant", variant,
		"index", name,
		"distinct_keys", distinctKeys,
	)
}

// LogUpdate logs a predicated update operation.
func (l *Logger) LogUpdate(variant string, threshold, count int32) {
	l.Debug("predicated update completed",
		"variant", variant,
		"threshold", threshold,
		"count", count,
	)
}
