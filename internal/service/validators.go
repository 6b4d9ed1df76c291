package service

import (
	"context"
	"errors"
	"strings"

	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/repository"
)

// Referential validators run inside the write's transaction and read the
// store directly, never the cache.

func requireClinic(ctx context.Context, tx repository.Store, id uint) error {
	_, err := tx.Clinics().FindByID(ctx, id)
	return notFoundAs(err, "clinic", id)
}

func requireTutor(ctx context.Context, tx repository.Store, id uint) error {
	_, err := tx.Tutors().FindByID(ctx, id)
	return notFoundAs(err, "tutor", id)
}

func requirePet(ctx context.Context, tx repository.Store, id uint) error {
	_, err := tx.Pets().FindByID(ctx, id)
	return notFoundAs(err, "pet", id)
}

func requireVeterinarian(ctx context.Context, tx repository.Store, id uint) error {
	_, err := tx.Veterinarians().FindByID(ctx, id)
	return notFoundAs(err, "veterinarian", id)
}

func ensureLicenseAvailable(ctx context.Context, tx repository.Store, license string, self uint) error {
	vet, err := tx.Veterinarians().FindByLicenseNumber(ctx, license)
	return taken(err, vet != nil && vet.ID != self, "license_number", license)
}

func ensureUsernameAvailable(ctx context.Context, tx repository.Store, username string, self uint) error {
	user, err := tx.Users().FindByUsername(ctx, username)
	return taken(err, user != nil && user.ID != self, "username", username)
}

func ensureEmailAvailable(ctx context.Context, tx repository.Store, email string, self uint) error {
	user, err := tx.Users().FindByEmail(ctx, email)
	return taken(err, user != nil && user.ID != self, "email", email)
}

// taken interprets a natural-key lookup: held reports that a row other than
// the one being written already owns the value.
func taken(err error, held bool, field, value string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return err
	case held:
		return apperrors.Conflict(field, value)
	default:
		return nil
	}
}

// naturalKey trims a lookup key and rejects it when nothing is left.
func naturalKey(field, value string) (string, error) {
	key := strings.TrimSpace(value)
	if key == "" {
		return "", apperrors.NewValidationError(field, "is required")
	}
	return key, nil
}

// normalizeEmail lowercases an address so uniqueness does not depend on the
// collation of the backing store.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
