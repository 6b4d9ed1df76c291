package model

// Veterinarian represents a licensed veterinarian working at a clinic.
type Veterinarian struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"size:255;not null"`
	LicenseNumber string `json:"license_number" gorm:"column:license_number;size:50;not null;uniqueIndex:idx_veterinarios_license_number"`
	Email         string `json:"email" gorm:"size:255;index"`
	Specialty     string `json:"specialty" gorm:"size:120"`
	ClinicID      uint   `json:"clinic_id" gorm:"column:clinica_id;not null;index"`

	Clinic *Clinic `json:"-" gorm:"foreignKey:ClinicID"`
	Visits []Visit `json:"-" gorm:"foreignKey:VeterinarianID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the table name used by the existing database.
func (Veterinarian) TableName() string { return "veterinarios" }
