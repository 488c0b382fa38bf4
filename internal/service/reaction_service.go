package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// ReactionService is the reaction engine: it validates the kind at the
// boundary, applies the toggle/replace algorithm atomically per post, and
// fires the best-effort author notification for new reactions.
type ReactionService struct {
	postRepo     repository.PostRepository
	reactionRepo repository.ReactionRepository
	dispatcher   *NotificationService
}

// SetReactionResult is the outcome returned to the caller: the effective
// kind and a fresh tally snapshot.
type SetReactionResult struct {
	Kind  models.ReactionKind  `json:"kind"`
	Tally models.ReactionTally `json:"tally"`
}

// NewReactionService creates a new reaction service.
func NewReactionService(
	postRepo repository.PostRepository,
	reactionRepo repository.ReactionRepository,
	dispatcher *NotificationService,
) *ReactionService {
	return &ReactionService{
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
		dispatcher:   dispatcher,
	}
}

// SetReaction applies rawKind as userID's single reaction on postID.
// Re-sending the same kind is idempotent; a different kind replaces the old
// one, moving one count between counters.
func (s *ReactionService) SetReaction(ctx context.Context, postID, userID uint, rawKind string) (*SetReactionResult, error) {
	kind, ok := models.ParseReactionKind(rawKind)
	if !ok {
		return nil, models.NewValidationError("Invalid reaction kind")
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("post", postID)
	}

	tally, created, err := s.reactionRepo.SetReaction(ctx, postID, userID, kind)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	outcome := "replaced"
	if created {
		outcome = "created"
	}
	observability.ReactionsTotal.WithLabelValues(string(kind), outcome).Inc()

	// The reaction transaction has committed; the dispatcher runs outside it
	// and absorbs its own failures.
	if created {
		s.dispatcher.ReactionCreated(ctx, userID, postID, kind)
	}

	return &SetReactionResult{Kind: kind, Tally: *tally}, nil
}

// CountByKind aggregates the user's own reactions grouped by kind, used for
// profile statistics.
func (s *ReactionService) CountByKind(ctx context.Context, userID uint) (map[models.ReactionKind]int64, error) {
	counts, err := s.reactionRepo.CountByKind(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}
