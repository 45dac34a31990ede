package database

import (
	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// Migrate synchronizes the schema with the model declarations. Referenced
// tables come first so the foreign keys can be created in one pass.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeTag{},
		&models.Favorite{},
		&models.ShoppingCart{},
	)
}
