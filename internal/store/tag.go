package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodgram-project/backend/internal/models"
)

// TagStore handles tag lifecycle operations.
type TagStore struct {
	db *gorm.DB
}

// NewTagStore creates a new TagStore instance.
func NewTagStore(db *gorm.DB) *TagStore {
	return &TagStore{db: db}
}

// Create persists a tag. Name, color and slug must be unique.
func (s *TagStore) Create(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	if err := s.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// Get retrieves a tag by ID.
func (s *TagStore) Get(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetBySlug retrieves a tag by its slug.
func (s *TagStore) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// List lists all tags ordered by name.
func (s *TagStore) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Delete removes a tag. The database cascades the delete to recipe_tags rows.
func (s *TagStore) Delete(ctx context.Context, id uint) error {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&tag).Error
}
