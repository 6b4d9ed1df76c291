package model

// Clinic represents a veterinary clinic. A clinic employs zero or more veterinarians.
type Clinic struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Address string `json:"address" gorm:"size:255"`
	City    string `json:"city" gorm:"size:120;not null;index"`

	Veterinarians []Veterinarian `json:"-" gorm:"foreignKey:ClinicID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the table name used by the existing database.
func (Clinic) TableName() string { return "clinicas" }
