package service

import (
	"context"
	"errors"
	"time"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

const (
	// feedPreviewRunes is the maximum rune length of a feed item's content
	// before it is cut and suffixed with an ellipsis.
	feedPreviewRunes = 240

	defaultPerPage = 10
	maxPerPage     = 100
)

// FeedParams are the caller-facing listing parameters. Page is 1-based.
type FeedParams struct {
	Page           int
	PerPage        int
	Search         string
	AuthorID       uint
	BookmarkedOnly bool
}

// FeedItem is the wire shape of a post inside a feed page: author and tags
// inlined, content truncated to a preview, tally and viewer state attached.
type FeedItem struct {
	ID             uint                 `json:"id"`
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	Author         FeedAuthor           `json:"author"`
	Tags           []models.TagRef      `json:"tags"`
	Tally          models.ReactionTally `json:"tally"`
	Bookmarked     bool                 `json:"bookmarked"`
	ViewerReaction string               `json:"viewer_reaction,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// FeedAuthor is the compact author reference embedded in feed items.
type FeedAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// FeedPage is one page of feed items plus the echo of the paging inputs.
type FeedPage struct {
	Items   []FeedItem `json:"items"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

// FeedService composes the personalized post feed: filtering, pagination,
// preview truncation, and the post detail view.
type FeedService struct {
	postRepo repository.PostRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// GetFeed returns one page of the viewer's feed, newest first. All filters
// apply before pagination so every page but the last is full.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint, p FeedParams) (*FeedPage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	perPage := p.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	filter := "none"
	switch {
	case p.BookmarkedOnly:
		filter = "bookmarked"
	case p.Search != "":
		filter = "search"
	case p.AuthorID != 0:
		filter = "author"
	}
	observability.FeedQueries.WithLabelValues(filter).Inc()

	posts, err := s.postRepo.List(ctx, repository.FeedQuery{
		ViewerID:       viewerID,
		Limit:          perPage,
		Offset:         (page - 1) * perPage,
		Search:         p.Search,
		AuthorID:       p.AuthorID,
		BookmarkedOnly: p.BookmarkedOnly,
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	items := make([]FeedItem, 0, len(posts))
	for _, post := range posts {
		item := toFeedItem(post)
		item.Content = truncateContent(item.Content)
		items = append(items, item)
	}
	return &FeedPage{Items: items, Page: page, PerPage: perPage}, nil
}

// GetPostDetail returns the full post (untruncated content) personalized for
// the viewer.
func (s *FeedService) GetPostDetail(ctx context.Context, postID, viewerID uint) (*FeedItem, error) {
	post, err := s.postRepo.GetByID(ctx, postID, viewerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("post", postID)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	item := toFeedItem(post)
	return &item, nil
}

func toFeedItem(post *models.Post) FeedItem {
	return FeedItem{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Author: FeedAuthor{
			ID:       post.User.ID,
			Username: post.User.Username,
			PhotoURL: post.User.PhotoURL,
		},
		Tags:           post.TagRefs(),
		Tally:          post.Tally(),
		Bookmarked:     post.Bookmarked,
		ViewerReaction: post.ViewerReaction,
		CreatedAt:      post.CreatedAt,
	}
}

// truncateContent cuts content to the preview length in runes so multi-byte
// text is never split mid-character.
func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= feedPreviewRunes {
		return content
	}
	return string(runes[:feedPreviewRunes]) + "…"
}
