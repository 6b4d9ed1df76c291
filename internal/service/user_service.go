package service

import (
	"context"
	"errors"
	"fmt"

	"vetclinic/internal/auth"
	"vetclinic/internal/cache"
	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

// CreateUserInput carries the fields of a new user account.
type CreateUserInput struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

// UpdateUserInput carries the user fields to change; nil means unchanged.
type UpdateUserInput struct {
	Username *string `json:"username" validate:"omitnil,min=3,max=150"`
	Email    *string `json:"email" validate:"omitnil,email,max=255"`
	Password *string `json:"password" validate:"omitnil,min=6,max=72"`
	IsActive *bool   `json:"is_active"`
}

// UserService manages user accounts.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context, page Page) ([]model.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	store  repository.Store
	cache  *cache.Client
	hasher *auth.PasswordHasher
}

// NewUserService builds a UserService with store, cache and password hasher.
func NewUserService(store repository.Store, cache *cache.Client, hasher *auth.PasswordHasher) UserService {
	return &userService{store: store, cache: cache, hasher: hasher}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	return createUser(ctx, s.store, s.hasher, in)
}

// createUser checks username, then email, hashes the password and inserts an
// active user in one transaction.
func createUser(ctx context.Context, store repository.Store, hasher *auth.PasswordHasher, in CreateUserInput) (*model.User, error) {
	username, err := naturalKey("username", in.Username)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(hasher, in.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		IsActive:     true,
	}

	err = store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := ensureUsernameAvailable(ctx, tx, user.Username, 0); err != nil {
			return err
		}
		if err := ensureEmailAvailable(ctx, tx, user.Email, 0); err != nil {
			return err
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func hashPassword(hasher *auth.PasswordHasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", apperrors.NewValidationError("password", "must be at most 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	return findCached(ctx, s.cache, "user", id, s.store.Users().FindByID)
}

func (s *userService) List(ctx context.Context, page Page) ([]model.User, error) {
	page = page.Normalize()
	return s.store.Users().List(ctx, page.Skip, page.Limit)
}

func (s *userService) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	var user *model.User
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		var err error
		user, err = tx.Users().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, "user", id)
		}

		var cols []string
		if in.Username != nil {
			username, err := naturalKey("username", *in.Username)
			if err != nil {
				return err
			}
			if username != user.Username {
				if err := ensureUsernameAvailable(ctx, tx, username, user.ID); err != nil {
					return err
				}
				user.Username = username
				cols = append(cols, "Username")
			}
		}
		if in.Email != nil {
			email := normalizeEmail(*in.Email)
			if email != user.Email {
				if err := ensureEmailAvailable(ctx, tx, email, user.ID); err != nil {
					return err
				}
			}
			user.Email = email
			cols = append(cols, "Email")
		}
		if in.Password != nil {
			hash, err := hashPassword(s.hasher, *in.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
			cols = append(cols, "PasswordHash")
		}
		if in.IsActive != nil {
			user.IsActive = *in.IsActive
			cols = append(cols, "IsActive")
		}
		if len(cols) > 0 {
			cols = append(cols, "UpdatedAt")
		}

		return tx.Users().Update(ctx, user, cols...)
	})
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, "user", id)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.store.Users().Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "user", id)
	}
	invalidate(ctx, s.cache, "user", id)
	return user, nil
}
