package repository

import (
	"context"

	"gorm.io/gorm"

	"vetclinic/internal/model"
)

var userUniques = map[string]string{
	"idx_usuarios_username": "username",
	"idx_usuarios_email":    "email",
}

type userRepository struct {
	gormRepository[model.User]
}

// NewUserRepository builds a GORM-backed credential store.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{newGormRepository[model.User](db, "user", userUniques)}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email = ?", email)
}
