package domain

import "context"

// Principal is the authenticated identity supplied by the upstream auth
// layer for every mutating call.
type Principal struct {
	UserID string
	Role   string
}

// SystemPrincipal is the explicit actor for system-attributed entries.
// Used only when no authenticated principal is present in the context.
var SystemPrincipal = Principal{UserID: "system", Role: "system"}

type principalContextKey struct{}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal from ctx.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}
