package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// TagService lists the tag catalog for composing posts.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// ListActive returns all active tags ordered by group then name.
func (s *TagService) ListActive(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tagRepo.ListActive(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
