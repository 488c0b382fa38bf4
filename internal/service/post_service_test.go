package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceForTest(posts *postRepoStub, tags *tagRepoStub) *PostService {
	return NewPostService(posts, tags, NewFeedService(posts))
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := newPostServiceForTest(&postRepoStub{}, &tagRepoStub{})

	tests := []struct {
		name  string
		input CreatePostInput
	}{
		{name: "missing title", input: CreatePostInput{Content: "body"}},
		{name: "blank title", input: CreatePostInput{Title: "   ", Content: "body"}},
		{name: "missing content", input: CreatePostInput{Title: "title"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), 1, tt.input)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestPostService_CreatePost_EmptyTagListRejected(t *testing.T) {
	t.Parallel()

	posts := &postRepoStub{byID: map[uint]*models.Post{}}
	svc := newPostServiceForTest(posts, &tagRepoStub{})

	_, err := svc.CreatePost(context.Background(), 1, CreatePostInput{
		Title:   "title",
		Content: "content",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostService_CreatePost_UnknownTagRejectsWholePost(t *testing.T) {
	t.Parallel()

	tags := &tagRepoStub{tags: map[uint]models.Tag{
		1: {ID: 1, Name: "go", Active: true},
	}}
	posts := &postRepoStub{byID: map[uint]*models.Post{}}
	svc := newPostServiceForTest(posts, tags)

	_, err := svc.CreatePost(context.Background(), 1, CreatePostInput{
		Title:   "title",
		Content: "content",
		TagIDs:  []uint{1, 42},
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Contains(t, appErr.Message, "42")
}

func TestPostService_CreatePost_DeduplicatesTagIDs(t *testing.T) {
	t.Parallel()

	tags := &tagRepoStub{tags: map[uint]models.Tag{
		1: {ID: 1, Name: "go", Active: true},
	}}
	posts := &postRepoStub{byID: map[uint]*models.Post{
		1: {ID: 1, Title: "title", Content: "content"},
	}}
	svc := newPostServiceForTest(posts, tags)

	// The duplicate id resolves to one tag; that must not read as a missing tag.
	item, err := svc.CreatePost(context.Background(), 1, CreatePostInput{
		Title:   "title",
		Content: "content",
		TagIDs:  []uint{1, 1, 1},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, item.ID)
}
