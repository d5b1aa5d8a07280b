package vecgen

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecgen-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a record count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("records", count),
	}
}

// WithPath adds a file path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogGenerate logs the outcome of a dataset generation.
func (l *Logger) LogGenerate(ctx context.Context, res *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"error", err,
		)
		return
	}
	if res == nil {
		return
	}
	l.InfoContext(ctx, "dataset written",
		"seed", res.Seed,
		"compression", res.Compression.String(),
		"bytes", res.Size,
		"crc32c", res.CRC32C,
		"elapsed", res.Elapsed,
	)
}

// LogManifest logs a manifest write.
func (l *Logger) LogManifest(ctx context.Context, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "manifest write failed",
			"manifest", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "manifest written",
			"manifest", path,
		)
	}
}

// LogInspect logs the outcome of a dataset inspection.
func (l *Logger) LogInspect(ctx context.Context, stats *Stats, err error) {
	if err != nil {
		l.WarnContext(ctx, "inspect failed",
			"error", err,
		)
		return
	}
	if stats == nil {
		return
	}
	l.DebugContext(ctx, "inspect completed",
		"records", stats.Records,
		"dimension", stats.Dimension,
		"bytes", stats.Bytes,
		"manifest", stats.Manifest != nil,
	)
}
