package model

// Pet represents an animal owned by a tutor. Ownership never changes after creation.
type Pet struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Species string `json:"species" gorm:"size:80;not null"`
	Breed   string `json:"breed" gorm:"size:120"`
	Age     *int   `json:"age" gorm:"type:int"`
	TutorID uint   `json:"tutor_id" gorm:"not null;index"`

	Tutor  *Tutor  `json:"-" gorm:"foreignKey:TutorID"`
	Visits []Visit `json:"-" gorm:"foreignKey:PetID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the table name used by the existing database.
func (Pet) TableName() string { return "pets" }
