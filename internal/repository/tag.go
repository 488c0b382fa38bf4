package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag lookups.
type TagRepository interface {
	// GetByIDs resolves the given ids to tags. Missing ids are simply
	// absent from the result; callers decide whether that is an error.
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	ListActive(ctx context.Context) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) ListActive(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := cache.Aside(ctx, cache.ActiveTagsKey, &tags, cache.ActiveTagsTTL, func() error {
		return readDB(r.db).WithContext(ctx).
			Where("active = ?", true).
			Order("group_name, name").
			Find(&tags).Error
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}
