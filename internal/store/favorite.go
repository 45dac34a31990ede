package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// FavoriteStore handles a user's recipe bookmarks.
type FavoriteStore struct {
	db *gorm.DB
}

// NewFavoriteStore creates a new FavoriteStore instance.
func NewFavoriteStore(db *gorm.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// Add bookmarks a recipe for a user. Adding the same pair twice fails on the
// unique (user_id, recipe_id) index.
func (s *FavoriteStore) Add(ctx context.Context, userID, recipeID uint) (*models.Favorite, error) {
	favorite := &models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove deletes a bookmark. Removing a pair that does not exist returns
// gorm.ErrRecordNotFound.
func (s *FavoriteStore) Remove(ctx context.Context, userID, recipeID uint) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether the user has bookmarked the recipe.
func (s *FavoriteStore) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser lists a user's bookmarks, newest first, with recipes preloaded.
func (s *FavoriteStore) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
