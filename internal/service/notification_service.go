// Package service contains the application's business logic, composed from
// repositories and exposed to the HTTP layer.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// NotificationService dispatches best-effort notification records as a side
// effect of reaction and bookmark writes. It must be called after the
// triggering transaction commits; every failure here is logged and absorbed,
// never surfaced to the caller.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	postRepo         repository.PostRepository
}

// NewNotificationService creates a new notification dispatcher.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		postRepo:         postRepo,
	}
}

// ReactionCreated notifies the post author that someone reacted to their post.
func (s *NotificationService) ReactionCreated(ctx context.Context, generatorID, postID uint, kind models.ReactionKind) {
	s.dispatch(ctx, generatorID, postID, func(generator *models.User, post *models.Post) string {
		return fmt.Sprintf("%s reacted to your post '%s' with '%s'", generator.Username, post.Title, kind)
	})
}

// PostBookmarked notifies the post author that someone saved their post.
func (s *NotificationService) PostBookmarked(ctx context.Context, generatorID, postID uint) {
	s.dispatch(ctx, generatorID, postID, func(generator *models.User, post *models.Post) string {
		return fmt.Sprintf("%s saved your post '%s' as a favorite", generator.Username, post.Title)
	})
}

// dispatch resolves the actors, skips self-notifications, and writes the
// record. Any error ends up in the log and the failure counter, nothing else.
func (s *NotificationService) dispatch(ctx context.Context, generatorID, postID uint, message func(*models.User, *models.Post) string) {
	err := func() error {
		post, err := s.postRepo.GetByID(ctx, postID, 0)
		if err != nil {
			return fmt.Errorf("load post: %w", err)
		}
		if post.UserID == generatorID {
			// authors do not get notified about their own activity
			return nil
		}
		generator, err := s.userRepo.GetByID(ctx, generatorID)
		if err != nil {
			return fmt.Errorf("load generator: %w", err)
		}
		return s.notificationRepo.Create(ctx, &models.Notification{
			GeneratorID: generatorID,
			ReceiverID:  post.UserID,
			PostID:      postID,
			Title:       "New activity",
			Message:     message(generator, post),
			Kind:        models.NotificationActivity,
		})
	}()
	if err != nil {
		observability.NotificationDispatchFailures.Inc()
		middleware.Logger.ErrorContext(ctx, "notification dispatch failed",
			slog.Uint64("generator_id", uint64(generatorID)),
			slog.Uint64("post_id", uint64(postID)),
			slog.String("error", err.Error()),
		)
	}
}

// ListForUser returns the user's notifications, marking them read.
func (s *NotificationService) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.notificationRepo.ListForReceiver(ctx, userID)
}

// UnreadCount returns how many unread notifications the user has.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.UnreadCount(ctx, userID)
}
