// Package requestcontext carries per-request values (request ID, clock)
// through context without leaking transport types into services.
package requestcontext

import (
	"context"
	"time"
)

type requestIDKey struct{}
type nowKey struct{}

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID from context, or "" when absent.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithNow pins the request clock to a fixed instant. Tests use this to make
// server-assigned timestamps deterministic.
func WithNow(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, nowKey{}, now)
}

// Now returns the request clock: the pinned instant if one was set, otherwise
// the current UTC time.
func Now(ctx context.Context) time.Time {
	if now, ok := ctx.Value(nowKey{}).(time.Time); ok {
		return now
	}
	return time.Now().UTC()
}
