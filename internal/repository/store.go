package repository

import (
	"context"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by GORM.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Clinics() ClinicRepository             { return NewClinicRepository(s.db) }
func (s *gormStore) Veterinarians() VeterinarianRepository { return NewVeterinarianRepository(s.db) }
func (s *gormStore) Tutors() TutorRepository               { return NewTutorRepository(s.db) }
func (s *gormStore) Pets() PetRepository                   { return NewPetRepository(s.db) }
func (s *gormStore) Visits() VisitRepository               { return NewVisitRepository(s.db) }
func (s *gormStore) Users() UserRepository                 { return NewUserRepository(s.db) }

// WithTransaction executes a function within a database transaction.
func (s *gormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormStore{db: tx})
	})
}
