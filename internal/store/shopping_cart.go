package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// ShoppingCartStore handles a user's planned-purchase entries.
type ShoppingCartStore struct {
	db *gorm.DB
}

// NewShoppingCartStore creates a new ShoppingCartStore instance.
func NewShoppingCartStore(db *gorm.DB) *ShoppingCartStore {
	return &ShoppingCartStore{db: db}
}

// Add puts a recipe in the user's cart. Adding the same pair twice fails on
// the unique (user_id, recipe_id) index.
func (s *ShoppingCartStore) Add(ctx context.Context, userID, recipeID uint) (*models.ShoppingCart, error) {
	entry := &models.ShoppingCart{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove takes a recipe out of the user's cart. Removing a pair that does
// not exist returns gorm.ErrRecordNotFound.
func (s *ShoppingCartStore) Remove(ctx context.Context, userID, recipeID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether the recipe is in the user's cart.
func (s *ShoppingCartStore) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.ShoppingCart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser lists a user's cart entries, newest first, with recipes
// preloaded.
func (s *ShoppingCartStore) ListByUser(ctx context.Context, userID uint) ([]models.ShoppingCart, error) {
	var entries []models.ShoppingCart
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
