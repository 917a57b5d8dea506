package logger

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger carried by ctx, or a logger that discards
// everything.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return discard
}
