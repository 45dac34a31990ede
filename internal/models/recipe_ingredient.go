package models

import (
	"time"

	"gorm.io/gorm"
)

// RecipeIngredient is the join row tying an ingredient to a recipe with a
// quantity. An ingredient may appear at most once per recipe.
type RecipeIngredient struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint       `gorm:"not null;index;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Recipe       Recipe     `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredient" validate:"-"`
	Amount       int        `gorm:"not null" json:"amount" validate:"min=1,max=1000"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

func (ri *RecipeIngredient) BeforeSave(tx *gorm.DB) error {
	return validate.Struct(ri)
}
