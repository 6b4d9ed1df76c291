package model

// Tutor represents a pet owner.
type Tutor struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Phone   string `json:"phone" gorm:"size:20;not null"` // E.164
	Email   string `json:"email" gorm:"size:255;index"`
	Address string `json:"address" gorm:"size:255"`

	Pets []Pet `json:"-" gorm:"foreignKey:TutorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the table name used by the existing database.
func (Tutor) TableName() string { return "tutores" }
