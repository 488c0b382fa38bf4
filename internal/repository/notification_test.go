package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_CreateRejectsMissingActors(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "receiver")
	post := createTestPost(t, db, user.ID, "notified post")

	err := repo.Create(ctx, &models.Notification{
		GeneratorID: 999,
		ReceiverID:  user.ID,
		PostID:      post.ID,
		Title:       "New activity",
		Message:     "ghost reacted",
		Kind:        models.NotificationActivity,
	})
	assert.Error(t, err, "unknown generator must be rejected")

	err = repo.Create(ctx, &models.Notification{
		GeneratorID: user.ID,
		ReceiverID:  user.ID,
		PostID:      999,
		Title:       "New activity",
		Message:     "reaction on missing post",
		Kind:        models.NotificationActivity,
	})
	assert.Error(t, err, "unknown post must be rejected")
}

func TestNotificationRepository_ListMarksRead(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	generator := createTestUser(t, db, "generator")
	receiver := createTestUser(t, db, "recipient")
	post := createTestPost(t, db, receiver.ID, "their post")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Notification{
			GeneratorID: generator.ID,
			ReceiverID:  receiver.ID,
			PostID:      post.ID,
			Title:       "New activity",
			Message:     "someone reacted",
			Kind:        models.NotificationActivity,
		}))
	}

	unread, err := repo.UnreadCount(ctx, receiver.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	notifications, err := repo.ListForReceiver(ctx, receiver.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.True(t, n.Read)
	}

	unread, err = repo.UnreadCount(ctx, receiver.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)
}

func TestNotificationRepository_ListScopedToReceiver(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	generator := createTestUser(t, db, "gen")
	receiver := createTestUser(t, db, "rcv")
	bystander := createTestUser(t, db, "bystander")
	post := createTestPost(t, db, receiver.ID, "post")

	require.NoError(t, repo.Create(ctx, &models.Notification{
		GeneratorID: generator.ID,
		ReceiverID:  receiver.ID,
		PostID:      post.ID,
		Title:       "New activity",
		Message:     "gen reacted",
		Kind:        models.NotificationActivity,
	}))

	notifications, err := repo.ListForReceiver(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
