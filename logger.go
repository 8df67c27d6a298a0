package rbestore

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/rbestore/index"
	"github.com/hupe1980/rbestore/model"
)

// Logger wraps slog.Logger with rbestore-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLayout adds a layout field to the logger.
func (l *Logger) WithLayout(layout Layout) *Logger {
	return &Logger{
		Logger: l.Logger.With("layout", layout.String()),
	}
}

// LogBuild logs the outcome of a build.
func (l *Logger) LogBuild(ctx context.Context, count int, stats index.Stats, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"ingested", count,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "build completed",
		"records", stats.Records,
		"rows", stats.Rows,
		"nodes", stats.Nodes,
		"postings", stats.Postings,
		"duration", elapsed,
	)
}

// LogEmptyDependents warns about records that no reverse lookup can reach.
// ids holds at most the first few offenders.
func (l *Logger) LogEmptyDependents(ctx context.Context, count int, ids []model.ElementID) {
	l.WarnContext(ctx, "records without dependents are unreachable by node",
		"count", count,
		"ids", ids,
	)
}

// LogLookup logs a query.
func (l *Logger) LogLookup(ctx context.Context, kind LookupKind, key uint32, results int, err error) {
	if err != nil {
		l.DebugContext(ctx, "lookup missed",
			"kind", kind.String(),
			"key", key,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "lookup completed",
		"kind", kind.String(),
		"key", key,
		"results", results,
	)
}
