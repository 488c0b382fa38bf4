package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedResponse struct {
	Items []struct {
		ID         uint   `json:"id"`
		Title      string `json:"title"`
		Content    string `json:"content"`
		Bookmarked bool   `json:"bookmarked"`
		Author     struct {
			Username string `json:"username"`
		} `json:"author"`
	} `json:"items"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func getFeed(t *testing.T, s *Server, userID uint, query string) feedResponse {
	t.Helper()
	app := newTestApp(userID)
	app.Get("/feed", s.GetFeed)

	req := httptest.NewRequest(http.MethodGet, "/feed"+query, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page feedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	return page
}

func TestGetFeedPagination(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createUser(t, db, "feeder")
	base := time.Now().Add(-30 * time.Minute)
	for i := 0; i < 25; i++ {
		post := &models.Post{
			Title:     fmt.Sprintf("post %02d", i),
			Content:   "body",
			UserID:    author.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}

	seen := make(map[uint]struct{})
	sizes := []int{10, 10, 5}
	for page := 1; page <= 3; page++ {
		got := getFeed(t, s, author.ID, fmt.Sprintf("?page=%d&per_page=10", page))
		assert.Equal(t, page, got.Page)
		assert.Equal(t, 10, got.PerPage)
		require.Len(t, got.Items, sizes[page-1], "page %d", page)
		for _, item := range got.Items {
			_, dup := seen[item.ID]
			assert.False(t, dup, "post %d repeated across pages", item.ID)
			seen[item.ID] = struct{}{}
		}
	}
	assert.Len(t, seen, 25)

	// Newest post leads the first page.
	first := getFeed(t, s, author.ID, "?page=1&per_page=10")
	assert.Equal(t, "post 24", first.Items[0].Title)
}

func TestGetFeedTruncatesPreview(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createUser(t, db, "longform")
	post := &models.Post{
		Title:   "essay",
		Content: strings.Repeat("y", 600),
		UserID:  author.ID,
	}
	require.NoError(t, db.Create(post).Error)

	page := getFeed(t, s, author.ID, "")
	require.Len(t, page.Items, 1)
	runes := []rune(page.Items[0].Content)
	assert.Len(t, runes, 241)
	assert.Equal(t, '…', runes[240])
}

func TestGetFeedBookmarkedFilter(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createUser(t, db, "writer")
	viewer := createUser(t, db, "reader")
	var saved *models.Post
	for i := 0; i < 6; i++ {
		post := createPost(t, db, author.ID, fmt.Sprintf("entry %d", i))
		if i == 2 {
			saved = post
		}
	}
	require.NoError(t, db.Create(&models.Bookmark{UserID: viewer.ID, PostID: saved.ID}).Error)

	page := getFeed(t, s, viewer.ID, "?bookmarked=true")
	require.Len(t, page.Items, 1)
	assert.Equal(t, saved.ID, page.Items[0].ID)
	assert.True(t, page.Items[0].Bookmarked)
}

func TestGetPostDetail(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createUser(t, db, "detailer")
	post := createPost(t, db, author.ID, "full view")

	app := newTestApp(author.ID)
	app.Get("/posts/:id", s.GetPost)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var item struct {
		Title  string `json:"title"`
		Author struct {
			Username string `json:"username"`
		} `json:"author"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.Equal(t, "full view", item.Title)
	assert.Equal(t, "detailer", item.Author.Username)

	// Unknown id is a 404, bad id is a 400.
	for path, want := range map[string]int{"/posts/9999": http.StatusNotFound, "/posts/zero": http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
