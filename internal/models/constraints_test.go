package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
	"github.com/foodgram-project/backend/internal/testhelpers"
)

func TestRecipeIngredientAmountBounds(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "okroshka")

	tests := []struct {
		name    string
		amount  int
		wantErr bool
	}{
		{"below minimum", 0, true},
		{"minimum", 1, false},
		{"maximum", 1000, false},
		{"above maximum", 1001, true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ingredient := testhelpers.CreateTestIngredient(t, db, "cucumber-"+tt.name, "g")
			row := &models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredient.ID,
				Amount:       tt.amount,
			}
			err := db.Create(row).Error
			if tt.wantErr {
				assert.Error(t, err, "case %d", i)
			} else {
				assert.NoError(t, err, "case %d", i)
			}
		})
	}
}

func TestRecipeIngredientPairUnique(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "okroshka")
	ingredient := testhelpers.CreateTestIngredient(t, db, "kvass", "ml")

	first := &models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ingredient.ID, Amount: 500}
	require.NoError(t, db.Create(first).Error)

	duplicate := &models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ingredient.ID, Amount: 200}
	assert.Error(t, db.Create(duplicate).Error)

	// Same ingredient in another recipe is fine.
	other := testhelpers.CreateTestRecipe(t, db, author, "kvass soup")
	again := &models.RecipeIngredient{RecipeID: other.ID, IngredientID: ingredient.ID, Amount: 300}
	assert.NoError(t, db.Create(again).Error)
}

func TestRecipeTagPairUnique(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "syrniki")
	tag := testhelpers.CreateTestTag(t, db, "breakfast", "#FFAA00", "breakfast")

	require.NoError(t, db.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}).Error)
	assert.Error(t, db.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}).Error)
}

func TestFavoritePairUnique(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	reader := testhelpers.CreateTestUser(t, db, "reader")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "syrniki")

	require.NoError(t, db.Create(&models.Favorite{UserID: reader.ID, RecipeID: recipe.ID}).Error)
	assert.Error(t, db.Create(&models.Favorite{UserID: reader.ID, RecipeID: recipe.ID}).Error)

	// Another user may favorite the same recipe.
	assert.NoError(t, db.Create(&models.Favorite{UserID: author.ID, RecipeID: recipe.ID}).Error)
}

func TestShoppingCartPairUnique(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	reader := testhelpers.CreateTestUser(t, db, "reader")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "syrniki")

	require.NoError(t, db.Create(&models.ShoppingCart{UserID: reader.ID, RecipeID: recipe.ID}).Error)
	assert.Error(t, db.Create(&models.ShoppingCart{UserID: reader.ID, RecipeID: recipe.ID}).Error)
}

func TestDeleteRecipeCascades(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	reader := testhelpers.CreateTestUser(t, db, "reader")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "golubtsy")
	ingredient := testhelpers.CreateTestIngredient(t, db, "cabbage", "g")
	tag := testhelpers.CreateTestTag(t, db, "dinner", "#336699", "dinner")

	require.NoError(t, db.Create(&models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ingredient.ID, Amount: 400}).Error)
	require.NoError(t, db.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}).Error)
	require.NoError(t, db.Create(&models.Favorite{UserID: reader.ID, RecipeID: recipe.ID}).Error)
	require.NoError(t, db.Create(&models.ShoppingCart{UserID: reader.ID, RecipeID: recipe.ID}).Error)

	require.NoError(t, db.Delete(&models.Recipe{}, recipe.ID).Error)

	for _, model := range []interface{}{
		&models.RecipeIngredient{},
		&models.RecipeTag{},
		&models.Favorite{},
		&models.ShoppingCart{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	// The referenced rows themselves survive.
	var tags, ingredients int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&ingredients).Error)
	assert.EqualValues(t, 1, tags)
	assert.EqualValues(t, 1, ingredients)
}

func TestDeleteTagAndIngredientCascade(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "golubtsy")
	ingredient := testhelpers.CreateTestIngredient(t, db, "cabbage", "g")
	tag := testhelpers.CreateTestTag(t, db, "dinner", "#336699", "dinner")

	require.NoError(t, db.Create(&models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ingredient.ID, Amount: 400}).Error)
	require.NoError(t, db.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}).Error)

	require.NoError(t, db.Delete(&models.Tag{}, tag.ID).Error)
	require.NoError(t, db.Delete(&models.Ingredient{}, ingredient.ID).Error)

	var joins int64
	require.NoError(t, db.Model(&models.RecipeTag{}).Count(&joins).Error)
	assert.Zero(t, joins)
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Count(&joins).Error)
	assert.Zero(t, joins)

	// The recipe itself survives.
	var recipes int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	assert.EqualValues(t, 1, recipes)
}

func TestDeleteUserCascades(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	author := testhelpers.CreateTestUser(t, db, "chef")
	reader := testhelpers.CreateTestUser(t, db, "reader")
	recipe := testhelpers.CreateTestRecipe(t, db, author, "golubtsy")

	require.NoError(t, db.Create(&models.Favorite{UserID: reader.ID, RecipeID: recipe.ID}).Error)

	// Deleting the author removes the recipe and, through it, the reader's
	// favorite row.
	require.NoError(t, db.Delete(&models.User{}, author.ID).Error)

	var recipes, favorites int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&models.Favorite{}).Count(&favorites).Error)
	assert.Zero(t, recipes)
	assert.Zero(t, favorites)

	var remaining models.User
	assert.NoError(t, db.First(&remaining, reader.ID).Error)
	assert.ErrorIs(t, db.First(&models.User{}, author.ID).Error, gorm.ErrRecordNotFound)
}
