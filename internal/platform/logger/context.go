package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the private context key for the request-scoped logger.
type loggerContextKey struct{}

// WithLogger returns a copy of ctx carrying the given logger.
// Middleware uses this to attach a request-scoped logger (e.g. with a
// trace ID) that handlers can retrieve later.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logger from the context.
// Returns nil if no logger has been attached.
func FromContext(ctx context.Context) *slog.Logger {
	log, _ := ctx.Value(loggerContextKey{}).(*slog.Logger)
	return log
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when the context carries none. A nil fallback
// yields slog.Default.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
