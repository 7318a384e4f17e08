// Package log carries a request-scoped slog.Logger through a context so
// handlers can attach attributes once and have them flow downstream.
package log

import (
	"context"
	"log/slog"
	"os"
)

var (
	baseLevel  slog.LevelVar
	baseLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     &baseLevel,
	}))
)

func init() {
	baseLevel.Set(slog.LevelInfo)
}

type contextKey struct{}

var loggerKey = contextKey{}

// Ctx returns the logger carried by the context, or the base JSON logger
// when none has been attached.
func Ctx(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return baseLogger
}

// With returns a new context carrying the given logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetDefaultLogLevel adjusts the base logger's level.
func SetDefaultLogLevel(level slog.Level) {
	baseLevel.Set(level)
}
