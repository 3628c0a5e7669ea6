// Package contexthelpers carries per-request values through the context.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey  = contextKey("userID")
	traceIDKey = contextKey("traceID")
)

// WithUserID attaches the device-session user ID to the request context.
func WithUserID(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// UserID returns the user ID carried in the context, or 0 when absent.
func UserID(ctx context.Context) int64 {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0
	}
	return userID
}

// WithTraceID attaches a request trace ID to the request context.
func WithTraceID(r *http.Request, traceID string) *http.Request {
	ctx := context.WithValue(r.Context(), traceIDKey, traceID)
	return r.WithContext(ctx)
}

// TraceID returns the trace ID carried in the context, or "" when absent.
func TraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
