package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is a published dish. Deleting a recipe removes its ingredient and
// tag join rows along with any favorites and shopping cart entries that
// reference it.
type Recipe struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	AuthorID    uint               `gorm:"not null;index" json:"author_id"`
	Author      User               `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Name        string             `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	Image       string             `gorm:"size:255" json:"image"`
	Text        string             `gorm:"type:text" json:"text" validate:"max=1000"`
	CookingTime int                `gorm:"not null" json:"cooking_time" validate:"min=1,max=600"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty" validate:"-"`
	Tags        []RecipeTag        `gorm:"foreignKey:RecipeID" json:"tags,omitempty" validate:"-"`
}

func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	return validate.Struct(r)
}
