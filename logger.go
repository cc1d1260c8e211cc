package kvkit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kvkit-specific context.
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

// WithSketch adds a sketch name field to the logger.
func (l *Logger) WithSketch(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("sketch", name),
	}
}

// LogDispatch logs the outcome of a dispatched command.
func (l *Logger) LogDispatch(cmd *Command, status int32, err error) {
	if err != nil {
		l.Error("dispatch failed",
			"type", cmd.Type,
			"subtype", cmd.Subtype,
			"status", status,
			"error", err,
		)
	} else {
		l.Debug("dispatch completed",
			"type", cmd.Type,
			"subtype", cmd.Subtype,
			"status", status,
		)
	}
}

// LogCreateSketch logs a sketch registration.
func (l *Logger) LogCreateSketch(name string, width, depth uint32, err error) {
	if err != nil {
		l.Error("create sketch failed",
			"sketch", name,
			"error", err,
		)
	} else {
		l.Info("sketch created",
			"sketch", name,
			"width", width,
			"depth", depth,
		)
	}
}
