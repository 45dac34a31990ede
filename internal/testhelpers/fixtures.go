package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// CreateTestUser inserts a user row to hang recipes and bookmarks off.
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		PasswordHash: "irrelevant-here",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestRecipe inserts a valid recipe owned by the given author.
func CreateTestRecipe(t *testing.T, db *gorm.DB, author *models.User, name string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Image:       "recipes/" + name + ".jpg",
		Text:        "A recipe used in tests.",
		CookingTime: 30,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

// CreateTestTag inserts a tag whose color is derived from the id sequence by
// the caller; tags must not collide on name, color or slug.
func CreateTestTag(t *testing.T, db *gorm.DB, name, color, slug string) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name, Color: color, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// CreateTestIngredient inserts an ingredient row.
func CreateTestIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()

	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}
