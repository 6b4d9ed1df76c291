package repository

import (
	"context"
	"errors"

	"vetclinic/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// CRUD is the data-access contract shared by every entity.
// Update writes only the named columns of entity; an empty column list is a no-op.
type CRUD[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Update(ctx context.Context, entity *T, columns ...string) error
	Delete(ctx context.Context, id uint) (*T, error)
}

// ClinicRepository defines clinic persistence operations.
type ClinicRepository interface {
	CRUD[model.Clinic]
}

// VeterinarianRepository defines veterinarian persistence operations.
type VeterinarianRepository interface {
	CRUD[model.Veterinarian]
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Veterinarian, error)
	ListByClinic(ctx context.Context, clinicID uint) ([]model.Veterinarian, error)
}

// TutorRepository defines tutor persistence operations.
type TutorRepository interface {
	CRUD[model.Tutor]
}

// PetRepository defines pet persistence operations.
type PetRepository interface {
	CRUD[model.Pet]
}

// VisitRepository defines visit persistence operations.
type VisitRepository interface {
	CRUD[model.Visit]
}

// UserRepository defines credential store operations.
type UserRepository interface {
	CRUD[model.User]
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Store groups the repositories that share one connection or transaction.
type Store interface {
	Clinics() ClinicRepository
	Veterinarians() VeterinarianRepository
	Tutors() TutorRepository
	Pets() PetRepository
	Visits() VisitRepository
	Users() UserRepository
	// WithTransaction runs fn against a Store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
