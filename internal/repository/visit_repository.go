package repository

import (
	"gorm.io/gorm"

	"vetclinic/internal/model"
)

type visitRepository struct {
	gormRepository[model.Visit]
}

// NewVisitRepository creates a new visit repository.
func NewVisitRepository(db *gorm.DB) VisitRepository {
	repo := newGormRepository[model.Visit](db, "visit", nil)
	repo.parents = map[string]parentRef[model.Visit]{
		"pet_id":         {entity: "pet", id: func(v *model.Visit) uint { return v.PetID }},
		"veterinario_id": {entity: "veterinarian", id: func(v *model.Visit) uint { return v.VeterinarianID }},
	}
	return &visitRepository{repo}
}
