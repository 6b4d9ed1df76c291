package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"vetclinic/internal/auth"
	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

// AccessToken is the body returned by a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, in CreateUserInput) (*model.User, error)
	Login(ctx context.Context, username, password string) (*AccessToken, error)
}

type authService struct {
	store  repository.Store
	hasher *auth.PasswordHasher
	tokens *auth.JWTService
	log    *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store repository.Store, hasher *auth.PasswordHasher, tokens *auth.JWTService, log *zap.Logger) AuthService {
	return &authService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

// Register creates an active user with a hashed password.
func (s *authService) Register(ctx context.Context, in CreateUserInput) (*model.User, error) {
	user, err := createUser(ctx, s.store, s.hasher, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("username", user.Username), zap.Uint("user_id", user.ID))
	return user, nil
}

// Login verifies the credentials and issues an access token. An unknown
// username and a wrong password fail with the same error.
func (s *authService) Login(ctx context.Context, username, password string) (*AccessToken, error) {
	user, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		s.hasher.VerifyDummy(password)
		s.log.Info("login failed", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Info("login failed", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueDefault(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("login succeeded", zap.String("username", username))
	return &AccessToken{AccessToken: token, TokenType: "bearer"}, nil
}
