package repository

import (
	"context"
	"strings"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// FeedQuery carries the filters for a personalized post listing.
type FeedQuery struct {
	ViewerID       uint
	Limit          int
	Offset         int
	Search         string
	AuthorID       uint
	BookmarkedOnly bool
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	List(ctx context.Context, q FeedQuery) ([]*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create persists the post together with its tag associations in one
// transaction; the many2many join rows are written by gorm.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyFeedDetails(readDB(r.db).WithContext(ctx), viewerID).
		Preload("User").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, q FeedQuery) ([]*models.Post, error) {
	var posts []*models.Post
	db := r.applyFeedDetails(readDB(r.db).WithContext(ctx), q.ViewerID).
		Preload("User").
		Preload("Tags")

	if q.AuthorID != 0 {
		db = db.Where("posts.user_id = ?", q.AuthorID)
	}
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?", like, like)
	}
	// The bookmark filter narrows the set before LIMIT/OFFSET so pages stay full.
	if q.BookmarkedOnly {
		db = db.Where(
			"EXISTS(SELECT 1 FROM bookmarks WHERE bookmarks.post_id = posts.id AND bookmarks.user_id = ?)",
			q.ViewerID,
		)
	}

	err := db.
		Order("posts.created_at DESC, posts.id DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// applyFeedDetails adds the per-viewer personalization columns and the tally
// snapshot in a single query: bookmark flag, the viewer's own reaction, and
// the four reaction counters (zero-filled when no tally row exists yet).
func (r *postRepository) applyFeedDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		`COALESCE(t.love, 0) AS love_count, ` +
		`COALESCE(t."like", 0) AS like_count, ` +
		`COALESCE(t.support, 0) AS support_count, ` +
		`COALESCE(t.sad, 0) AS sad_count`

	db = db.Joins("LEFT JOIN reaction_tallies t ON t.post_id = posts.id")

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM bookmarks WHERE bookmarks.post_id = posts.id AND bookmarks.user_id = ?) AS bookmarked"+
			", COALESCE((SELECT kind FROM reactions WHERE reactions.post_id = posts.id AND reactions.user_id = ?), '') AS viewer_reaction",
			viewerID, viewerID)
	}

	return db.Select(selectQuery + ", false AS bookmarked, '' AS viewer_reaction")
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}
