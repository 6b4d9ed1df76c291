package service

import (
	"context"

	"vetclinic/internal/cache"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

// CreateVeterinarianInput carries the fields of a new veterinarian.
type CreateVeterinarianInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	LicenseNumber string `json:"license_number" validate:"required,max=50"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	Specialty     string `json:"specialty" validate:"max=120"`
	ClinicID      uint   `json:"clinic_id" validate:"required"`
}

// UpdateVeterinarianInput carries the veterinarian fields to change; nil means unchanged.
type UpdateVeterinarianInput struct {
	Name          *string `json:"name" validate:"omitnil,min=1,max=255"`
	LicenseNumber *string `json:"license_number" validate:"omitnil,min=1,max=50"`
	Email         *string `json:"email" validate:"omitempty,email,max=255"`
	Specialty     *string `json:"specialty" validate:"omitnil,max=120"`
	ClinicID      *uint   `json:"clinic_id" validate:"omitnil,min=1"`
}

// VeterinarianService manages veterinarians.
type VeterinarianService interface {
	Create(ctx context.Context, in CreateVeterinarianInput) (*model.Veterinarian, error)
	Get(ctx context.Context, id uint) (*model.Veterinarian, error)
	List(ctx context.Context, page Page) ([]model.Veterinarian, error)
	Update(ctx context.Context, id uint, in UpdateVeterinarianInput) (*model.Veterinarian, error)
	Delete(ctx context.Context, id uint) (*model.Veterinarian, error)
}

type veterinarianService struct {
	store repository.Store
	cache *cache.Client
}

// NewVeterinarianService creates a new veterinarian service.
func NewVeterinarianService(store repository.Store, cache *cache.Client) VeterinarianService {
	return &veterinarianService{store: store, cache: cache}
}

// Create checks that the clinic exists and the license is free, then inserts,
// all in one transaction.
func (s *veterinarianService) Create(ctx context.Context, in CreateVeterinarianInput) (*model.Veterinarian, error) {
	license, err := naturalKey("license_number", in.LicenseNumber)
	if err != nil {
		return nil, err
	}
	vet := &model.Veterinarian{
		Name:          in.Name,
		LicenseNumber: license,
		Email:         in.Email,
		Specialty:     in.Specialty,
		ClinicID:      in.ClinicID,
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := requireClinic(ctx, tx, vet.ClinicID); err != nil {
			return err
		}
		if err := ensureLicenseAvailable(ctx, tx, vet.LicenseNumber, 0); err != nil {
			return err
		}
		return tx.Veterinarians().Create(ctx, vet)
	})
	if err != nil {
		return nil, err
	}
	return vet, nil
}

func (s *veterinarianService) Get(ctx context.Context, id uint) (*model.Veterinarian, error) {
	return findCached(ctx, s.cache, "veterinarian", id, s.store.Veterinarians().FindByID)
}

func (s *veterinarianService) List(ctx context.Context, page Page) ([]model.Veterinarian, error) {
	page = page.Normalize()
	return s.store.Veterinarians().List(ctx, page.Skip, page.Limit)
}

// Update applies only the provided fields. A changed clinic or license is
// validated like on creation.
func (s *veterinarianService) Update(ctx context.Context, id uint, in UpdateVeterinarianInput) (*model.Veterinarian, error) {
	var vet *model.Veterinarian
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		var err error
		vet, err = tx.Veterinarians().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, "veterinarian", id)
		}

		var cols []string
		if in.Name != nil {
			vet.Name = *in.Name
			cols = append(cols, "Name")
		}
		if in.Email != nil {
			vet.Email = *in.Email
			cols = append(cols, "Email")
		}
		if in.Specialty != nil {
			vet.Specialty = *in.Specialty
			cols = append(cols, "Specialty")
		}
		if in.ClinicID != nil && *in.ClinicID != vet.ClinicID {
			if err := requireClinic(ctx, tx, *in.ClinicID); err != nil {
				return err
			}
			vet.ClinicID = *in.ClinicID
			cols = append(cols, "ClinicID")
		}
		if in.LicenseNumber != nil {
			license, err := naturalKey("license_number", *in.LicenseNumber)
			if err != nil {
				return err
			}
			if license != vet.LicenseNumber {
				if err := ensureLicenseAvailable(ctx, tx, license, vet.ID); err != nil {
					return err
				}
				vet.LicenseNumber = license
				cols = append(cols, "LicenseNumber")
			}
		}

		return tx.Veterinarians().Update(ctx, vet, cols...)
	})
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, "veterinarian", id)
	return vet, nil
}

func (s *veterinarianService) Delete(ctx context.Context, id uint) (*model.Veterinarian, error) {
	vet, err := s.store.Veterinarians().Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "veterinarian", id)
	}
	invalidate(ctx, s.cache, "veterinarian", id)
	return vet, nil
}
