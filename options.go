package rbestore

import (
	"log/slog"
)

type options struct {
	layout           Layout
	strict           bool
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		layout:           LayoutInverted,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures Build.
type Option func(*options)

// WithLayout selects the internal layout of the store.
// The default is LayoutInverted.
func WithLayout(layout Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// WithStrictDependents makes Build fail with *EmptyDependentsError on the
// first record that has no dependents. By default such records are stored,
// reachable by id only, and reported with a warning.
func WithStrictDependents(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rbestore.BasicMetricsCollector{}
//	s, _ := rbestore.BuildSlice(records, rbestore.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Lookups by node: %d, empty: %d\n", stats.ByNodeCount, stats.ByNodeEmpty)
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
//	logger := rbestore.NewJSONLogger(slog.LevelInfo)
//	s, _ := rbestore.BuildSlice(records, rbestore.WithLogger(logger))
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
