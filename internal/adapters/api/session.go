package api

import (
	"context"
	"errors"

	"github.com/starchart/starchart/internal/core/domain"
)

// ErrNoUser is returned by RequireUser when the request carries no user.
var ErrNoUser = errors.New("no authenticated user in context")

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, CtxUser, user)
}

// OptionalUser returns the authenticated user, if any.
func OptionalUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(CtxUser).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// RequireUser returns the authenticated user or ErrNoUser.
func RequireUser(ctx context.Context) (*domain.User, error) {
	user, ok := OptionalUser(ctx)
	if !ok {
		return nil, ErrNoUser
	}
	return user, nil
}
