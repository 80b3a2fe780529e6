// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets the values; handlers and stores read
// them without importing net/http.
package requestcontext

import (
	"context"
	"time"
)

type (
	requestIDKey   struct{}
	sessionIDKey   struct{}
	requestTimeKey struct{}
)

// WithRequestID attaches the request correlation ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request correlation ID, or "" when unset.
func RequestID(ctx context.Context) string {
	value, _ := ctx.Value(requestIDKey{}).(string)
	return value
}

// WithSessionID attaches the browser session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionID returns the browser session ID, or "" when unset.
func SessionID(ctx context.Context) string {
	value, _ := ctx.Value(sessionIDKey{}).(string)
	return value
}

// WithTime attaches a fixed request time to the context. Tests use this to
// pin the clock.
func WithTime(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, now)
}

// Now returns the request time from the context, falling back to the wall
// clock when unset.
func Now(ctx context.Context) time.Time {
	if value, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return value
	}
	return time.Now()
}
