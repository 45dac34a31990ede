package models

import "time"

// RecipeTag is the join row applying a tag to a recipe. Each tag may be
// applied at most once per recipe.
type RecipeTag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_recipe_tag" json:"recipe_id"`
	TagID     uint      `gorm:"not null;index;uniqueIndex:idx_recipe_tag" json:"tag_id"`
	Recipe    Recipe    `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Tag       Tag       `gorm:"constraint:OnDelete:CASCADE" json:"tag" validate:"-"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
