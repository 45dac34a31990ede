package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is a categorical label that can be applied to recipes. Name, color and
// slug are all unique; the color must be a six-digit hex code, so the len=7
// rule rejects the #ABC shorthand that hexcolor alone would allow.
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:200;not null;uniqueIndex" json:"name" validate:"required,max=200"`
	Color     string    `gorm:"size:7;not null;uniqueIndex" json:"color" validate:"required,len=7,hexcolor"`
	Slug      string    `gorm:"size:200;not null;uniqueIndex" json:"slug" validate:"required,max=200,slug"`
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	return validate.Struct(t)
}
