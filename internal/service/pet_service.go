package service

import (
	"context"

	"vetclinic/internal/cache"
	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

// CreatePetInput carries the fields of a new pet.
type CreatePetInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Species string `json:"species" validate:"required,max=80"`
	Breed   string `json:"breed" validate:"max=120"`
	Age     *int   `json:"age" validate:"omitnil,min=0,max=100"`
	TutorID uint   `json:"tutor_id" validate:"required"`
}

// UpdatePetInput carries the pet fields to change; nil means unchanged.
// TutorID is accepted only when it repeats the current owner.
type UpdatePetInput struct {
	Name    *string `json:"name" validate:"omitnil,min=1,max=255"`
	Species *string `json:"species" validate:"omitnil,min=1,max=80"`
	Breed   *string `json:"breed" validate:"omitnil,max=120"`
	Age     *int    `json:"age" validate:"omitnil,min=0,max=100"`
	TutorID *uint   `json:"tutor_id"`
}

// PetService manages pets.
type PetService interface {
	Create(ctx context.Context, in CreatePetInput) (*model.Pet, error)
	Get(ctx context.Context, id uint) (*model.Pet, error)
	List(ctx context.Context, page Page) ([]model.Pet, error)
	Update(ctx context.Context, id uint, in UpdatePetInput) (*model.Pet, error)
	Delete(ctx context.Context, id uint) (*model.Pet, error)
}

type petService struct {
	store repository.Store
	cache *cache.Client
}

// NewPetService creates a new pet service.
func NewPetService(store repository.Store, cache *cache.Client) PetService {
	return &petService{store: store, cache: cache}
}

// Create fails with NotFound, writing nothing, when the tutor does not exist.
func (s *petService) Create(ctx context.Context, in CreatePetInput) (*model.Pet, error) {
	pet := &model.Pet{
		Name:    in.Name,
		Species: in.Species,
		Breed:   in.Breed,
		Age:     in.Age,
		TutorID: in.TutorID,
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := requireTutor(ctx, tx, pet.TutorID); err != nil {
			return err
		}
		return tx.Pets().Create(ctx, pet)
	})
	if err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *petService) Get(ctx context.Context, id uint) (*model.Pet, error) {
	return findCached(ctx, s.cache, "pet", id, s.store.Pets().FindByID)
}

func (s *petService) List(ctx context.Context, page Page) ([]model.Pet, error) {
	page = page.Normalize()
	return s.store.Pets().List(ctx, page.Skip, page.Limit)
}

func (s *petService) Update(ctx context.Context, id uint, in UpdatePetInput) (*model.Pet, error) {
	pet, err := s.store.Pets().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "pet", id)
	}
	if in.TutorID != nil && *in.TutorID != pet.TutorID {
		return nil, apperrors.NewValidationError("tutor_id", "cannot be changed")
	}

	var cols []string
	if in.Name != nil {
		pet.Name = *in.Name
		cols = append(cols, "Name")
	}
	if in.Species != nil {
		pet.Species = *in.Species
		cols = append(cols, "Species")
	}
	if in.Breed != nil {
		pet.Breed = *in.Breed
		cols = append(cols, "Breed")
	}
	if in.Age != nil {
		pet.Age = in.Age
		cols = append(cols, "Age")
	}

	if err := s.store.Pets().Update(ctx, pet, cols...); err != nil {
		return nil, notFoundAs(err, "pet", id)
	}
	invalidate(ctx, s.cache, "pet", id)
	return pet, nil
}

func (s *petService) Delete(ctx context.Context, id uint) (*model.Pet, error) {
	pet, err := s.store.Pets().Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "pet", id)
	}
	invalidate(ctx, s.cache, "pet", id)
	return pet, nil
}
