package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// UserStore handles the account rows that recipes, favorites and shopping
// carts hang off. Registration and authentication live elsewhere.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new UserStore instance.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create persists a user row.
func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Get retrieves a user by ID.
func (s *UserStore) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user. The database cascades the delete to the user's
// recipes, favorites and shopping cart entries.
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&user).Error
}
