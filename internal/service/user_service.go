package service

import (
	"context"
	"errors"

	"ripple/internal/models"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

// ProfileStats is the profile summary: the user plus their authoring and
// reaction activity.
type ProfileStats struct {
	User            *models.User                  `json:"user"`
	PostCount       int64                         `json:"post_count"`
	ReactionsByKind map[models.ReactionKind]int64 `json:"reactions_by_kind"`
}

// UserService exposes profile lookups and stats.
type UserService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	reactionRepo repository.ReactionRepository
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	reactionRepo repository.ReactionRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
	}
}

// GetUser returns the user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("user", id)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// GetProfileStats returns the user together with their post count and their
// reactions grouped by kind. Kinds with no reactions report zero.
func (s *UserService) GetProfileStats(ctx context.Context, userID uint) (*ProfileStats, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	postCount, err := s.postRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	reactions, err := s.reactionRepo.CountByKind(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &ProfileStats{
		User:            user,
		PostCount:       postCount,
		ReactionsByKind: reactions,
	}, nil
}
