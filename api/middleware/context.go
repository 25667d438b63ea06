package middleware

import (
	"context"

	"github.com/angelmondragon/nutritrack-backend/internal/permissions"
)

type contextKey string

const (
	ctxUserID   contextKey = "user_id"
	ctxIsStaff  contextKey = "is_staff"
	ctxAccessID contextKey = "access_id"
)

// PrincipalFromContext rebuilds the authenticated principal seeded by Auth.
// The zero principal means the request was not authenticated.
func PrincipalFromContext(ctx context.Context) permissions.Principal {
	if ctx == nil {
		return permissions.Principal{}
	}
	p := permissions.Principal{}
	if v, ok := ctx.Value(ctxUserID).(uint); ok {
		p.UserID = v
	}
	if v, ok := ctx.Value(ctxIsStaff).(bool); ok {
		p.IsStaff = v
	}
	return p
}

// AccessIDFromContext returns the token id (jti) of the current request.
func AccessIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAccessID).(string); ok {
		return v
	}
	return ""
}

// WithPrincipal injects an authenticated principal, used by handler tests.
func WithPrincipal(ctx context.Context, p permissions.Principal) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, p.UserID)
	return context.WithValue(ctx, ctxIsStaff, p.IsStaff)
}

// WithAccessID injects the token id, used by handler tests.
func WithAccessID(ctx context.Context, accessID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAccessID, accessID)
}
