// Package context carries request-scoped correlation identifiers.
package context

import "context"

type requestIDKey struct{}
type weddingIDKey struct{}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID, or "" when unset.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithWeddingID stores the wedding ID for log correlation.
func WithWeddingID(ctx context.Context, weddingID string) context.Context {
	return context.WithValue(ctx, weddingIDKey{}, weddingID)
}

// WeddingIDFromContext returns the wedding ID, or "" when unset.
func WeddingIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(weddingIDKey{}).(string); ok {
		return v
	}
	return ""
}
