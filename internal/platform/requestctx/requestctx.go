// Package requestctx carries request-scoped identity through contexts.
package requestctx

import "context"

// Principal identifies the signed-in user of a request.
type Principal struct {
	UserID   int64
	Username string
}

// SignedIn reports whether the principal refers to a stored user.
func (p Principal) SignedIn() bool {
	return p.UserID > 0
}

type principalContextKey struct{}

type requestIDContextKey struct{}

// WithPrincipal stores the signed-in principal in context.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext returns the principal stored in context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	if ctx == nil {
		return Principal{}, false
	}
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	if !ok || !principal.SignedIn() {
		return Principal{}, false
	}
	return principal, true
}

// UserIDFromContext returns the signed-in user id, or zero.
func UserIDFromContext(ctx context.Context) int64 {
	principal, _ := PrincipalFromContext(ctx)
	return principal.UserID
}

// WithRequestID stores a correlation id in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext returns the correlation id stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey{}).(string)
	return value
}
