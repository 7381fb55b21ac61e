package utils

import (
	"context"

	"movie-catalog/pkg/auth"
)

type contextKey string

const (
	ClaimsKey contextKey = "claims"
)

// SetClaimsContext stores the verified identity claims for the request.
func SetClaimsContext(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaimsFromContext returns the verified identity claims, if any.
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claimsVal := ctx.Value(ClaimsKey)
	if claimsVal == nil {
		return nil, false
	}

	claims, ok := claimsVal.(*auth.Claims)
	return claims, ok
}
