package models

import "time"

// ShoppingCart is a user's planned-purchase entry for a recipe. The
// (user, recipe) pair is unique, same as Favorite.
type ShoppingCart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_shopping_cart_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index;uniqueIndex:idx_shopping_cart_user_recipe" json:"recipe_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Recipe    Recipe    `gorm:"constraint:OnDelete:CASCADE" json:"recipe,omitempty" validate:"-"`
}

func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
