package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines the interface for reaction data operations.
type ReactionRepository interface {
	// SetReaction applies kind as the user's single live reaction on the
	// post and returns the fresh tally plus whether a new reaction row was
	// created (false means an existing one was replaced or re-applied).
	SetReaction(ctx context.Context, postID, userID uint, kind models.ReactionKind) (*models.ReactionTally, bool, error)
	GetTally(ctx context.Context, postID uint) (*models.ReactionTally, error)
	CountByKind(ctx context.Context, userID uint) (map[models.ReactionKind]int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// lockForUpdate adds a row lock on dialects that support it. SQLite runs a
// single writer, so the transaction alone serializes there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// SetReaction runs the four-step read-modify-write under one transaction.
// The tally row is locked for the duration, so concurrent reactions on the
// same post serialize; reactions on different posts do not contend.
func (r *reactionRepository) SetReaction(ctx context.Context, postID, userID uint, kind models.ReactionKind) (*models.ReactionTally, bool, error) {
	var tally models.ReactionTally
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockTally(tx, postID, &tally); err != nil {
			return err
		}

		var existing models.Reaction
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		switch {
		case err == nil:
			if existing.Kind == kind {
				// re-applying the same kind is a no-op; the tally must not drift
				return nil
			}
			tally.Decrement(existing.Kind)
			tally.Increment(kind)
			if err := tx.Model(&models.Reaction{}).
				Where("post_id = ? AND user_id = ?", postID, userID).
				Update("kind", kind).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			tally.Increment(kind)
			if err := tx.Create(&models.Reaction{
				UserID: userID,
				PostID: postID,
				Kind:   kind,
			}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Save(&tally).Error
	})
	if err != nil {
		return nil, false, err
	}

	cache.InvalidateTally(ctx, postID)
	return &tally, created, nil
}

// lockTally loads the tally row FOR UPDATE, lazily creating it zero-valued
// on first reaction. Creation uses ON CONFLICT DO NOTHING and re-reads under
// the lock so two racing first reactions cannot both insert.
func (r *reactionRepository) lockTally(tx *gorm.DB, postID uint, tally *models.ReactionTally) error {
	err := lockForUpdate(tx).Where("post_id = ?", postID).First(tally).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	fresh := models.ReactionTally{PostID: postID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return err
	}
	return lockForUpdate(tx).Where("post_id = ?", postID).First(tally).Error
}

func (r *reactionRepository) GetTally(ctx context.Context, postID uint) (*models.ReactionTally, error) {
	tally := models.ReactionTally{PostID: postID}
	err := cache.Aside(ctx, cache.TallyKey(postID), &tally, cache.TallyTTL, func() error {
		err := readDB(r.db).WithContext(ctx).Where("post_id = ?", postID).First(&tally).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no reactions yet; a zero tally is the correct snapshot
			tally = models.ReactionTally{PostID: postID}
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &tally, nil
}

func (r *reactionRepository) CountByKind(ctx context.Context, userID uint) (map[models.ReactionKind]int64, error) {
	var rows []struct {
		Kind  models.ReactionKind
		Count int64
	}
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Reaction{}).
		Select("kind, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ReactionKind]int64, len(models.ReactionKinds))
	for _, kind := range models.ReactionKinds {
		counts[kind] = 0
	}
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}
