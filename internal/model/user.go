package model

import "time"

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex:idx_usuarios_username"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_usuarios_email"`
	PasswordHash string    `json:"-" gorm:"column:hashed_password;size:255;not null"` // Never expose in JSON
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the table name used by the existing database.
func (User) TableName() string { return "usuarios" }
