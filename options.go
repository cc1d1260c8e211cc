package kvkit

import "log/slog"

type options struct {
	logger       *Logger
	defaultWidth uint32
	defaultDepth uint32
}

// Option configures Registry and Dispatcher construction.
type Option func(*options)

// WithLogger configures structured logging for registry and dispatch
// operations. Pass nil to disable logging.
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

// WithDefaultSketchDims configures the matrix dimensions used when a sketch
// is created without explicit width and depth.
func WithDefaultSketchDims(width, depth uint32) Option {
	return func(o *options) {
		o.defaultWidth = width
		o.defaultDepth = depth
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:       NoopLogger(),
		defaultWidth: DefaultSketchWidth,
		defaultDepth: DefaultSketchDepth,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
