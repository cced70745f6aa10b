package auth

import (
	"context"

	"github.com/crewforge/crewd/pkg/models"
)

type contextKey int

const (
	identityKey contextKey = iota
	teamKey
)

// WithIdentity returns a context carrying the authenticated caller.
func WithIdentity(ctx context.Context, ident models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFrom extracts the authenticated caller from the context.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(models.Identity)
	return ident, ok
}

// WithTeam returns a context carrying the resolved tenant binding.
func WithTeam(ctx context.Context, tc models.TeamContext) context.Context {
	return context.WithValue(ctx, teamKey, tc)
}

// TeamFrom extracts the resolved tenant binding from the context.
func TeamFrom(ctx context.Context) (models.TeamContext, bool) {
	tc, ok := ctx.Value(teamKey).(models.TeamContext)
	return tc, ok
}
