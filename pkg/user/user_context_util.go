package user

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const identityKey contextKey = "identity"

var ErrNoUser = errors.New("user not found in context")

// Identity is the resolved caller identity attached to the request context
// by the auth middleware.
type Identity struct {
	Id    string
	Email string
}

// WithIdentity attaches the resolved caller identity to the context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// CurrentId retrieves the current user's ID from the context. Returns ErrNoUser if not present.
func CurrentId(ctx context.Context) (string, error) {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		log.Trace("user not found in context")
		return "", ErrNoUser
	}
	return identity.Id, nil
}

// CurrentIdentity retrieves the full caller identity from the context.
func CurrentIdentity(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		log.Trace("user not found in context")
		return Identity{}, ErrNoUser
	}
	return identity, nil
}
