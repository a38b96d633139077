package persistence

import (
	"context"
)

// requestIDKey is the context key for storing the request id
type requestIDKey struct{}

// RequestIDFromContext retrieves the request id from context
// Returns an empty string if no request id is present
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// ContextWithRequestID returns a new context with the request id attached
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}
