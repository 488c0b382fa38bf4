package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// CreatePostInput carries the fields for authoring a new post.
type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	TagIDs  []uint `json:"tag_ids"`
}

// PostService is the post store: authoring with tag resolution.
type PostService struct {
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
	feed     *FeedService
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, tagRepo repository.TagRepository, feed *FeedService) *PostService {
	return &PostService{postRepo: postRepo, tagRepo: tagRepo, feed: feed}
}

// CreatePost validates the input, resolves every referenced tag, and writes
// the post with its tag associations in one transaction. If any tag id does
// not resolve the whole request is rejected.
func (s *PostService) CreatePost(ctx context.Context, userID uint, input CreatePostInput) (*FeedItem, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	tagIDs := dedupeIDs(input.TagIDs)
	if len(tagIDs) == 0 {
		return nil, &models.AppError{Code: "NOT_FOUND", Message: "A post needs at least one existing tag"}
	}
	tags, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(tags) != len(tagIDs) {
		return nil, models.NewNotFoundError("tag", missingTagID(tagIDs, tags))
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
		Tags:    tags,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	// Re-read through the feed path so the response carries the same shape
	// (author, tally, viewer state) as a feed item.
	return s.feed.GetPostDetail(ctx, post.ID, userID)
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingTagID(requested []uint, resolved []models.Tag) uint {
	found := make(map[uint]struct{}, len(resolved))
	for _, t := range resolved {
		found[t.ID] = struct{}{}
	}
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			return id
		}
	}
	return 0
}
