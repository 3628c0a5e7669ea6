// Package logging enriches slog records with attributes carried in the
// request context, e.g. trace IDs and the authenticated user.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKey int

const attrsKey contextKey = iota

// ContextHandler is a slog.Handler that appends the attributes stored in the
// context with WithAttrs to every record it handles.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler wraps the given handler in a ContextHandler.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

// Enabled delegates to the underlying handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle adds the context attributes to the record before delegating.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	if err := h.handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

// WithAttrs returns a new ContextHandler wrapping the underlying handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new ContextHandler wrapping the underlying handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithAttrs stores slog attributes in the context so that ContextHandler adds
// them to every log record emitted with that context.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		merged := make([]slog.Attr, 0, len(existing)+len(attrs))
		merged = append(merged, existing...)
		merged = append(merged, attrs...)
		return context.WithValue(ctx, attrsKey, merged)
	}
	return context.WithValue(ctx, attrsKey, attrs)
}
