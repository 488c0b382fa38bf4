package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// BookmarkService is the bookmark engine: a per-(user,post) existence
// toggle with a best-effort author notification on the way in.
type BookmarkService struct {
	postRepo     repository.PostRepository
	bookmarkRepo repository.BookmarkRepository
	dispatcher   *NotificationService
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(
	postRepo repository.PostRepository,
	bookmarkRepo repository.BookmarkRepository,
	dispatcher *NotificationService,
) *BookmarkService {
	return &BookmarkService{
		postRepo:     postRepo,
		bookmarkRepo: bookmarkRepo,
		dispatcher:   dispatcher,
	}
}

// Toggle flips the bookmark for (user, post). Returns true when the post is
// now bookmarked, false when the bookmark was removed.
func (s *BookmarkService) Toggle(ctx context.Context, postID, userID uint) (bool, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	if !exists {
		return false, models.NewNotFoundError("post", postID)
	}

	nowBookmarked, err := s.bookmarkRepo.Toggle(ctx, userID, postID)
	if err != nil {
		return false, models.NewInternalError(err)
	}

	state := "removed"
	if nowBookmarked {
		state = "bookmarked"
	}
	observability.BookmarkToggles.WithLabelValues(state).Inc()

	if nowBookmarked {
		s.dispatcher.PostBookmarked(ctx, userID, postID)
	}

	return nowBookmarked, nil
}
