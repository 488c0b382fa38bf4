package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository defines the interface for bookmark data operations.
type BookmarkRepository interface {
	// Toggle flips the bookmark for (user, post) and reports the new state:
	// true when the post is now bookmarked, false when it was removed.
	Toggle(ctx context.Context, userID, postID uint) (bool, error)
	IsBookmarked(ctx context.Context, userID, postID uint) (bool, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	var nowBookmarked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookmark models.Bookmark
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&bookmark).Error
		switch {
		case err == nil:
			nowBookmarked = false
			// Hard delete so the unique (user, post) index stays reusable
			return tx.Delete(&bookmark).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			nowBookmarked = true
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Bookmark{
				UserID: userID,
				PostID: postID,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return nowBookmarked, nil
}

func (r *bookmarkRepository) IsBookmarked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}
