package auth

import (
	"context"
	"errors"
	"fmt"

	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

// UserFinder loads users by username.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// Resolver turns a bearer token into the active user it was issued for.
type Resolver struct {
	tokens *JWTService
	users  UserFinder
}

// NewResolver creates a current-user resolver.
func NewResolver(tokens *JWTService, users UserFinder) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve verifies the token and loads its subject.
func (r *Resolver) Resolve(ctx context.Context, token string) (*model.User, error) {
	claims, err := r.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := r.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load user %q: %w", claims.Subject, err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}
	return user, nil
}
