package repository

import (
	"gorm.io/gorm"

	"vetclinic/internal/model"
)

type tutorRepository struct {
	gormRepository[model.Tutor]
}

// NewTutorRepository creates a new tutor repository.
func NewTutorRepository(db *gorm.DB) TutorRepository {
	return &tutorRepository{newGormRepository[model.Tutor](db, "tutor", nil)}
}
