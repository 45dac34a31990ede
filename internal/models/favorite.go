package models

import "time"

// Favorite is a user's bookmark of a recipe. A recipe can be favorited at
// most once per user.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Recipe    Recipe    `gorm:"constraint:OnDelete:CASCADE" json:"recipe,omitempty" validate:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
