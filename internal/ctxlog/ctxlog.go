// Package ctxlog lets solvers log through whatever *slog.Logger the caller
// attached to their context.Context.
package ctxlog

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithLogger attaches logger to ctx. A nil logger leaves ctx unchanged.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// With attaches FromContext(ctx) extended with args, so every later log
// call through the returned context carries them.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the attached logger. Library code may be called
// without one (tests, examples), so a nil or bare context yields
// slog.Default() instead of failing.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
