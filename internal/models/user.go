package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the owner of recipes, favorites and shopping cart entries.
// Authentication lives in a separate service; this layer only stores the
// account row that the foreign keys point at.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:150;not null;uniqueIndex" json:"username" validate:"required,max=150"`
	Email        string    `gorm:"size:254;not null;uniqueIndex" json:"email" validate:"required,email,max=254"`
	FirstName    string    `gorm:"size:150" json:"first_name" validate:"max=150"`
	LastName     string    `gorm:"size:150" json:"last_name" validate:"max=150"`
	PasswordHash string    `gorm:"not null" json:"-"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return validate.Struct(u)
}
