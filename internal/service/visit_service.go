package service

import (
	"context"
	"time"

	"vetclinic/internal/cache"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

// CreateVisitInput carries the fields of a new visit. A nil Timestamp means now.
type CreateVisitInput struct {
	Timestamp      *time.Time `json:"timestamp"`
	Description    string     `json:"description" validate:"required"`
	PetID          uint       `json:"pet_id" validate:"required"`
	VeterinarianID uint       `json:"veterinarian_id" validate:"required"`
}

// UpdateVisitInput carries the visit fields to change; nil means unchanged.
type UpdateVisitInput struct {
	Timestamp      *time.Time `json:"timestamp"`
	Description    *string    `json:"description" validate:"omitnil,min=1"`
	PetID          *uint      `json:"pet_id" validate:"omitnil,min=1"`
	VeterinarianID *uint      `json:"veterinarian_id" validate:"omitnil,min=1"`
}

// VisitService manages consultations.
type VisitService interface {
	Create(ctx context.Context, in CreateVisitInput) (*model.Visit, error)
	Get(ctx context.Context, id uint) (*model.Visit, error)
	List(ctx context.Context, page Page) ([]model.Visit, error)
	Update(ctx context.Context, id uint, in UpdateVisitInput) (*model.Visit, error)
	Delete(ctx context.Context, id uint) (*model.Visit, error)
}

type visitService struct {
	store repository.Store
	cache *cache.Client
	now   func() time.Time
}

// NewVisitService creates a new visit service.
func NewVisitService(store repository.Store, cache *cache.Client) VisitService {
	return &visitService{store: store, cache: cache, now: time.Now}
}

// Create checks the pet first, then the veterinarian, and reports the first
// missing one.
func (s *visitService) Create(ctx context.Context, in CreateVisitInput) (*model.Visit, error) {
	visit := &model.Visit{
		Description:    in.Description,
		PetID:          in.PetID,
		VeterinarianID: in.VeterinarianID,
	}
	if in.Timestamp != nil {
		visit.Timestamp = in.Timestamp.UTC()
	} else {
		visit.Timestamp = s.now().UTC()
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := requirePet(ctx, tx, visit.PetID); err != nil {
			return err
		}
		if err := requireVeterinarian(ctx, tx, visit.VeterinarianID); err != nil {
			return err
		}
		return tx.Visits().Create(ctx, visit)
	})
	if err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *visitService) Get(ctx context.Context, id uint) (*model.Visit, error) {
	return findCached(ctx, s.cache, "visit", id, s.store.Visits().FindByID)
}

func (s *visitService) List(ctx context.Context, page Page) ([]model.Visit, error) {
	page = page.Normalize()
	return s.store.Visits().List(ctx, page.Skip, page.Limit)
}

func (s *visitService) Update(ctx context.Context, id uint, in UpdateVisitInput) (*model.Visit, error) {
	var visit *model.Visit
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		var err error
		visit, err = tx.Visits().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, "visit", id)
		}

		var cols []string
		if in.Timestamp != nil {
			visit.Timestamp = in.Timestamp.UTC()
			cols = append(cols, "Timestamp")
		}
		if in.Description != nil {
			visit.Description = *in.Description
			cols = append(cols, "Description")
		}
		if in.PetID != nil && *in.PetID != visit.PetID {
			if err := requirePet(ctx, tx, *in.PetID); err != nil {
				return err
			}
			visit.PetID = *in.PetID
			cols = append(cols, "PetID")
		}
		if in.VeterinarianID != nil && *in.VeterinarianID != visit.VeterinarianID {
			if err := requireVeterinarian(ctx, tx, *in.VeterinarianID); err != nil {
				return err
			}
			visit.VeterinarianID = *in.VeterinarianID
			cols = append(cols, "VeterinarianID")
		}

		return tx.Visits().Update(ctx, visit, cols...)
	})
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, "visit", id)
	return visit, nil
}

func (s *visitService) Delete(ctx context.Context, id uint) (*model.Visit, error) {
	visit, err := s.store.Visits().Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "visit", id)
	}
	invalidate(ctx, s.cache, "visit", id)
	return visit, nil
}
