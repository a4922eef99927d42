package auth

import (
	"context"

	"github.com/tendant/simple-parcel/pkg/user"
)

// Identity is the resolved caller identity for a single request. It is
// constructed at request entry and discarded at request exit.
type Identity struct {
	SubjectID int64
	Role      user.Role
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity resolved for this request, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
