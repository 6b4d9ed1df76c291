package repository

import (
	"gorm.io/gorm"

	"vetclinic/internal/model"
)

type petRepository struct {
	gormRepository[model.Pet]
}

// NewPetRepository creates a new pet repository.
func NewPetRepository(db *gorm.DB) PetRepository {
	repo := newGormRepository[model.Pet](db, "pet", nil)
	repo.parents = map[string]parentRef[model.Pet]{
		"tutor_id": {entity: "tutor", id: func(p *model.Pet) uint { return p.TutorID }},
	}
	return &petRepository{repo}
}
