package httpx

import (
	"context"

	domainauth "github.com/target/academic-suite/internal/domain/auth"
)

// Context keys are unexported types to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same keys.
type (
	identityKey struct{}
	clientIDKey struct{}
)

// SetIdentityInContext returns a child context that carries the given identity.
// If id is nil, the original ctx is returned unchanged.
func SetIdentityInContext(ctx context.Context, id *domainauth.Identity) context.Context {
	if id == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity admitted by the role gate and a boolean indicating presence.
func IdentityFromContext(ctx context.Context) (*domainauth.Identity, bool) {
	if id, ok := ctx.Value(identityKey{}).(*domainauth.Identity); ok && id != nil {
		return id, true
	}
	return nil, false
}

// SetClientIDInContext returns a child context carrying the caller's client id.
func SetClientIDInContext(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// ClientIDFromContext returns the client id set by ClientSlot, or "".
func ClientIDFromContext(ctx context.Context) string {
	s, _ := ctx.Value(clientIDKey{}).(string)
	return s
}

// HasAccess reports whether the identity in ctx holds one of roles.
func HasAccess(ctx context.Context, roles ...domainauth.Role) bool {
	id, _ := IdentityFromContext(ctx)
	return domainauth.HasAccess(id, roles...)
}
