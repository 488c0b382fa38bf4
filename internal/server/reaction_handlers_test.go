package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putReaction(t *testing.T, app *fiber.App, postID uint, kind string) *http.Response {
	t.Helper()
	body := []byte(fmt.Sprintf(`{"kind":%q}`, kind))
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/posts/%d/reaction", postID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSetReactionEndpoint(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	author := createUser(t, db, "author")
	reactor := createUser(t, db, "reactor")
	post := createPost(t, db, author.ID, "reaction target")

	app := newTestApp(reactor.ID)
	app.Put("/posts/:id/reaction", s.SetReaction)

	resp := putReaction(t, app, post.ID, "love")
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Kind  string `json:"kind"`
		Tally struct {
			Love int `json:"love"`
			Like int `json:"like"`
		} `json:"tally"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "love", result.Kind)
	assert.Equal(t, 1, result.Tally.Love)

	// Switching kind moves the count in the returned tally.
	resp2 := putReaction(t, app, post.ID, "like")
	defer func() { _ = resp2.Body.Close() }()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&result))
	assert.Equal(t, 0, result.Tally.Love)
	assert.Equal(t, 1, result.Tally.Like)

	// The author got exactly one notification, for the initial reaction.
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("receiver_id = ?", author.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSetReactionEndpoint_InvalidKind(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	user := createUser(t, db, "picky")
	post := createPost(t, db, user.ID, "post")

	app := newTestApp(user.ID)
	app.Put("/posts/:id/reaction", s.SetReaction)

	resp := putReaction(t, app, post.ID, "meh")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSetReactionEndpoint_UnknownPost(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	user := createUser(t, db, "hopeful")

	app := newTestApp(user.ID)
	app.Put("/posts/:id/reaction", s.SetReaction)

	resp := putReaction(t, app, 4242, "love")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
