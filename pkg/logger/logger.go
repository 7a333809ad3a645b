// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns the logger the
// Logger middleware stored for the request, already tagged with the
// request ID, so every log line from a handler is correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", order.ID.Hex())
//	// → time=... level=INFO msg="order created" request_id=a1b2c3d4 order_id=65f1...
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/fooddash/config"
)

var (
	L    *slog.Logger
	base slog.Handler
)

func init() {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	if config.IsProduction() {
		opts.Level = slog.LevelInfo
		base = slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	} else {
		base = slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}

	L = slog.New(base)
	slog.SetDefault(L)
}

// Mirror fans every subsequent record out to h as well as stdout.
func Mirror(h slog.Handler) {
	L = slog.New(NewMultiHandler(base, h))
	slog.SetDefault(L)
}

// Reset drops any mirrored handler.
func Reset() {
	L = slog.New(base)
	slog.SetDefault(L)
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

type ctxKey struct{}

// WithCtx returns the per-request logger stored by InjectLogger, or the
// base logger when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
