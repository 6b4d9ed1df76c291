package service

import (
	"context"
	"fmt"

	"vetclinic/internal/cache"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

// CreateClinicInput carries the fields of a new clinic.
type CreateClinicInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"max=255"`
	City    string `json:"city" validate:"required,max=120"`
}

// UpdateClinicInput carries the clinic fields to change; nil means unchanged.
type UpdateClinicInput struct {
	Name    *string `json:"name" validate:"omitnil,min=1,max=255"`
	Address *string `json:"address" validate:"omitnil,max=255"`
	City    *string `json:"city" validate:"omitnil,min=1,max=120"`
}

// ClinicService manages clinics.
type ClinicService interface {
	Create(ctx context.Context, in CreateClinicInput) (*model.Clinic, error)
	Get(ctx context.Context, id uint) (*model.Clinic, error)
	List(ctx context.Context, page Page) ([]model.Clinic, error)
	Update(ctx context.Context, id uint, in UpdateClinicInput) (*model.Clinic, error)
	Delete(ctx context.Context, id uint) (*model.Clinic, error)
	ListVeterinarians(ctx context.Context, id uint) ([]model.Veterinarian, error)
}

type clinicService struct {
	store repository.Store
	cache *cache.Client
}

// NewClinicService creates a new clinic service.
func NewClinicService(store repository.Store, cache *cache.Client) ClinicService {
	return &clinicService{store: store, cache: cache}
}

func (s *clinicService) Create(ctx context.Context, in CreateClinicInput) (*model.Clinic, error) {
	clinic := &model.Clinic{Name: in.Name, Address: in.Address, City: in.City}
	if err := s.store.Clinics().Create(ctx, clinic); err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}
	return clinic, nil
}

func (s *clinicService) Get(ctx context.Context, id uint) (*model.Clinic, error) {
	return findCached(ctx, s.cache, "clinic", id, s.store.Clinics().FindByID)
}

func (s *clinicService) List(ctx context.Context, page Page) ([]model.Clinic, error) {
	page = page.Normalize()
	return s.store.Clinics().List(ctx, page.Skip, page.Limit)
}

func (s *clinicService) Update(ctx context.Context, id uint, in UpdateClinicInput) (*model.Clinic, error) {
	clinic, err := s.store.Clinics().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "clinic", id)
	}

	var cols []string
	if in.Name != nil {
		clinic.Name = *in.Name
		cols = append(cols, "Name")
	}
	if in.Address != nil {
		clinic.Address = *in.Address
		cols = append(cols, "Address")
	}
	if in.City != nil {
		clinic.City = *in.City
		cols = append(cols, "City")
	}

	if err := s.store.Clinics().Update(ctx, clinic, cols...); err != nil {
		return nil, notFoundAs(err, "clinic", id)
	}
	invalidate(ctx, s.cache, "clinic", id)
	return clinic, nil
}

func (s *clinicService) Delete(ctx context.Context, id uint) (*model.Clinic, error) {
	clinic, err := s.store.Clinics().Delete(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "clinic", id)
	}
	invalidate(ctx, s.cache, "clinic", id)
	return clinic, nil
}

func (s *clinicService) ListVeterinarians(ctx context.Context, id uint) ([]model.Veterinarian, error) {
	if _, err := s.store.Clinics().FindByID(ctx, id); err != nil {
		return nil, notFoundAs(err, "clinic", id)
	}
	return s.store.Veterinarians().ListByClinic(ctx, id)
}
