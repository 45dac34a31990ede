package models

import (
	"time"

	"gorm.io/gorm"
)

// Ingredient is a named substance with the unit it is measured in. The same
// name may appear with different units (e.g. "salt" in grams and pinches).
type Ingredient struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Name            string    `gorm:"size:200;not null;index" json:"name" validate:"required,max=200"`
	MeasurementUnit string    `gorm:"size:200;not null" json:"measurement_unit" validate:"required,max=200"`
}

func (i *Ingredient) BeforeSave(tx *gorm.DB) error {
	return validate.Struct(i)
}
