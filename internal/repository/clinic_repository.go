package repository

import (
	"gorm.io/gorm"

	"vetclinic/internal/model"
)

type clinicRepository struct {
	gormRepository[model.Clinic]
}

// NewClinicRepository creates a new clinic repository.
func NewClinicRepository(db *gorm.DB) ClinicRepository {
	return &clinicRepository{newGormRepository[model.Clinic](db, "clinic", nil)}
}
