package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// RecipeStore handles recipe lifecycle operations.
type RecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a new RecipeStore instance.
func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// Create persists a recipe together with any ingredient and tag join rows
// attached to it. Field validation runs before the insert.
func (s *RecipeStore) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Get retrieves a recipe by ID with its ingredients and tags preloaded.
func (s *RecipeStore) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Preload("Tags.Tag").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update writes the full recipe row back. The recipe must carry its ID;
// validation runs against the complete row, not a partial patch.
func (s *RecipeStore) Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if recipe.ID == 0 {
		return nil, gorm.ErrMissingWhereClause
	}
	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, recipe.ID)
}

// Delete removes a recipe. The database cascades the delete to the recipe's
// join rows, favorites and shopping cart entries.
func (s *RecipeStore) Delete(ctx context.Context, id uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// List lists recipes for an author, or all recipes if authorID is nil,
// newest first.
func (s *RecipeStore) List(ctx context.Context, authorID *uint) ([]*models.Recipe, error) {
	query := s.db.WithContext(ctx).Order("id DESC")
	if authorID != nil {
		query = query.Where("author_id = ?", *authorID)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}
