package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// IngredientStore handles ingredient lifecycle operations.
type IngredientStore struct {
	db *gorm.DB
}

// NewIngredientStore creates a new IngredientStore instance.
func NewIngredientStore(db *gorm.DB) *IngredientStore {
	return &IngredientStore{db: db}
}

// Create persists a single ingredient.
func (s *IngredientStore) Create(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := s.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// CreateInBatches persists a fixture load of ingredients in chunks.
func (s *IngredientStore) CreateInBatches(ctx context.Context, ingredients []models.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(ingredients, 500).Error
}

// Get retrieves an ingredient by ID.
func (s *IngredientStore) Get(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// List lists ingredients ordered by name. A non-empty name filters to
// ingredients whose name starts with it, case-insensitively.
func (s *IngredientStore) List(ctx context.Context, name string) ([]models.Ingredient, error) {
	query := s.db.WithContext(ctx).Order("name")
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", strings.ToLower(name)+"%")
	}

	var ingredients []models.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Count reports how many ingredients are stored. The seeder uses it to skip
// an already-populated table.
func (s *IngredientStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
