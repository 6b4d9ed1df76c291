package model

import (
	"time"

	"gorm.io/gorm"
)

// Visit represents a consultation of a pet by a veterinarian.
type Visit struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Timestamp      time.Time `json:"timestamp" gorm:"column:data;not null;index"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	PetID          uint      `json:"pet_id" gorm:"not null;index"`
	VeterinarianID uint      `json:"veterinarian_id" gorm:"column:veterinario_id;not null;index"`

	Pet          *Pet          `json:"-" gorm:"foreignKey:PetID"`
	Veterinarian *Veterinarian `json:"-" gorm:"foreignKey:VeterinarianID"`
}

// TableName keeps the table name used by the existing database.
func (Visit) TableName() string { return "atendimentos" }

// BeforeCreate defaults the timestamp to the creation time.
func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now().UTC()
	}
	return nil
}
