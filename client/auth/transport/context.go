package transport

import (
	"context"
)

type (
	contextScopeKey string
)

const (
	ContextAuthTokenKey contextScopeKey = "authToken"
)

// WithAuthToken returns a context overriding the session token for a single call.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextAuthTokenKey, token)
}

func getAuthToken(ctx context.Context) string {
	if v := ctx.Value(ContextAuthTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
