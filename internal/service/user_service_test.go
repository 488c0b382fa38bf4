package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfileStats(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 1, Username: "profiled"}
	users := &userRepoStub{users: map[uint]*models.User{1: user}}
	posts := &postRepoStub{count: 7}
	reactions := &reactionRepoStub{counts: map[models.ReactionKind]int64{
		models.ReactionLove:    3,
		models.ReactionLike:    0,
		models.ReactionSupport: 1,
		models.ReactionSad:     0,
	}}
	svc := NewUserService(users, posts, reactions)

	stats, err := svc.GetProfileStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "profiled", stats.User.Username)
	assert.EqualValues(t, 7, stats.PostCount)
	assert.EqualValues(t, 3, stats.ReactionsByKind[models.ReactionLove])
	assert.EqualValues(t, 0, stats.ReactionsByKind[models.ReactionSad])
}

func TestUserService_GetUserNotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(&userRepoStub{users: map[uint]*models.User{}}, &postRepoStub{}, &reactionRepoStub{})

	_, err := svc.GetUser(context.Background(), 99)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
