// Package weddingctx carries the active wedding (tenant) through
// context.Context. Policy code never looks the wedding up ambiently;
// the HTTP layer resolves it once and every service call receives it
// from here.
package weddingctx

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// WeddingContextKey is the request context key for the active wedding ID.
type WeddingContextKey struct{}

// WithWeddingID stores the wedding ID in the context.
func WithWeddingID(ctx context.Context, weddingID int64) context.Context {
	return context.WithValue(ctx, WeddingContextKey{}, weddingID)
}

// WeddingIDFromContext returns the wedding ID from context, if set.
func WeddingIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	if ctx == nil {
		return 0, false
	}

	value := ctx.Value(WeddingContextKey{})
	switch typed := value.(type) {
	case int64:
		return snowflake.ID(typed), true
	case snowflake.ID:
		return typed, true
	case string:
		parsed, err := snowflake.ParseString(strings.TrimSpace(typed))
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}
