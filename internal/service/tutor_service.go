package service

import (
	"context"
	"fmt"

	"vetclinic/internal/cache"
	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
	"vetclinic/internal/phone"
	"vetclinic/internal/repository"
)

// CreateTutorInput carries the fields of a new tutor.
type CreateTutorInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,phone"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Address string `json:"address" validate:"max=255"`
}

// UpdateTutorInput carries the tutor fields to change; nil means unchanged.
type UpdateTutorInput struct {
	Name    *string `json:"name" validate:"omitnil,min=1,max=255"`
	Phone   *string `json:"phone" validate:"omitnil,phone"`
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
	Address *string `json:"address" validate:"omitnil,max=255"`
}

// TutorService manages pet owners.
type TutorService interface {
	Create(ctx context.Context, in CreateTutorInput) (*model.Tutor, error)
	Get(ctx context.Context, id uint) (*model.Tutor, error)
	List(ctx context.Context, page Page) ([]model.Tutor, error)
	Update(ctx context.Context, id uint, in UpdateTutorInput) (*model.Tutor, error)
	Delete(ctx context.Context, id uint) (*model.Tutor, error)
}

type tutorService struct {
	store       repository.Store
	cache       *cache.Client
	phoneRegion string
}

// NewTutorService creates a new tutor service. Phones without a country
// code are read as numbers of phoneRegion.
func NewTutorService(store repository.Store, cache *cache.Client, phoneRegion string) TutorService {
	return &tutorService{store: store, cache: cache, phoneRegion: phoneRegion}
}

func (s *tutorService) normalizePhone(raw string) (string, error) {
	normalized, err := phone.Normalize(raw, s.phoneRegion)
	if err != nil {
		return "", apperrors.NewValidationError("phone", "must be a valid phone number")
	}
	return normalized, nil
}

func (s *tutorService) Create(ctx context.Context, in CreateTutorInput) (*model.Tutor, error) {
	p, err := s.normalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}
	tutor := &model.Tutor{Name: in.Name, Phone: p, Email: in.Email, Address: in.Address}
	if err := s.store.Tutors().Create(ctx, tutor); err != nil {
		return nil, fmt.Errorf("create tutor: %w", err)
	}
	return tutor, nil
}

func (s *tutorService) Get(ctx context.Context, id uint) (*model.Tutor, error) {
	return findCached(ctx, s.cache, "tutor", id, s.store.Tutors().FindByID)
}

func (s *tutorService) List(ctx context.Context, page Page) ([]model.Tutor, error) {
	page = page.Normalize()
	return s.store.Tutors().List(ctx, page.Skip, page.Limit)
}

func (s *tutorService) Update(ctx context.Context, id uint, in UpdateTutorInput) (*model.Tutor, error) {
	tutor, err := s.store.Tutors().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "tutor", id)
	}

	var cols []string
	if in.Name != nil {
		tutor.Name = *in.Name
		cols = append(cols, "Name")
	}
	if in.Phone != nil {
		p, err := s.normalizePhone(*in.Phone)
		if err != nil {
			return nil, err
		}
		tutor.Phone = p
		cols = append(cols, "Phone")
	}
	if in.Email != nil {
		tutor.Email = *in.Email
		cols = append(cols, "Email")
	}
	if in.Address != nil {
		tutor.Address = *in.Address
		cols = append(cols, "Address")
	}

	if err := s.store.Tutors().Update(ctx, tutor, cols...); err != nil {
		return nil, notFoundAs(err, "tutor", id)
	}
	invalidate(ctx, s.cache, "tutor", id)
	return tutor, nil
}

func (s *tutorService) Delete(ctx context.Context, id uint) (*model.Tutor, error) {
	tutor, err := s.store.Tutors().Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "tutor", id)
	}
	invalidate(ctx, s.cache, "tutor", id)
	return tutor, nil
}
