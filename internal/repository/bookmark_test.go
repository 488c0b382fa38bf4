package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkRepository_ToggleAlternates(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "saver")
	post := createTestPost(t, db, user.ID, "keeper")

	for i := 0; i < 4; i++ {
		want := i%2 == 0
		got, err := repo.Toggle(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got, "toggle %d", i)

		bookmarked, err := repo.IsBookmarked(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, want, bookmarked)
	}

	// After an even number of toggles no row remains.
	var count int64
	require.NoError(t, db.Model(&models.Bookmark{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestBookmarkRepository_TogglesAreIndependentPerUser(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "shared post")

	_, err := repo.Toggle(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	bobHas, err := repo.IsBookmarked(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, bobHas)

	aliceHas, err := repo.IsBookmarked(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, aliceHas)
}
