// Package utils provides general-purpose helpers shared by the queue client
// and the queue server simulator: context keys, JSON response writing,
// HTTP client construction and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key the trace-id middleware stores the request's trace
// identifier under.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx.
// ok is false when no trace id is present.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
