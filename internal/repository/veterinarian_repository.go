package repository

import (
	"context"

	"gorm.io/gorm"

	"vetclinic/internal/model"
)

var veterinarianUniques = map[string]string{
	"idx_veterinarios_license_number": "license_number",
}

type veterinarianRepository struct {
	gormRepository[model.Veterinarian]
}

// NewVeterinarianRepository creates a new veterinarian repository.
func NewVeterinarianRepository(db *gorm.DB) VeterinarianRepository {
	repo := newGormRepository[model.Veterinarian](db, "veterinarian", veterinarianUniques)
	repo.parents = map[string]parentRef[model.Veterinarian]{
		"clinica_id": {entity: "clinic", id: func(v *model.Veterinarian) uint { return v.ClinicID }},
	}
	return &veterinarianRepository{repo}
}

// FindByLicenseNumber finds a veterinarian by license number.
func (r *veterinarianRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Veterinarian, error) {
	return r.findOne(ctx, "license_number = ?", licenseNumber)
}

// ListByClinic lists all veterinarians of a clinic.
func (r *veterinarianRepository) ListByClinic(ctx context.Context, clinicID uint) ([]model.Veterinarian, error) {
	var vets []model.Veterinarian
	if err := r.db.WithContext(ctx).Where("clinica_id = ?", clinicID).Order("id").Find(&vets).Error; err != nil {
		return nil, err
	}
	return vets, nil
}
