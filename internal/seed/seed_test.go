package seed

import (
	"testing"

	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestLoadTagFixture_EmbeddedDefault(t *testing.T) {
	tags, err := LoadTagFixture("")
	require.NoError(t, err)
	require.NotEmpty(t, tags)

	inactive := 0
	for _, tag := range tags {
		assert.NotEmpty(t, tag.Name)
		assert.NotEmpty(t, tag.GroupName)
		assert.NotEmpty(t, tag.Color)
		if !tag.Active {
			inactive++
		}
	}
	assert.Equal(t, 1, inactive, "fixture carries one retired tag")
}

func TestLoadTagFixture_MissingFile(t *testing.T) {
	_, err := LoadTagFixture("/does/not/exist.yml")
	assert.Error(t, err)
}

func TestUpsertTagsIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	fixture, err := LoadTagFixture("")
	require.NoError(t, err)

	first, err := upsertTags(db, fixture)
	require.NoError(t, err)
	second, err := upsertTags(db, fixture)
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, len(fixture), count)
}

func TestSeedProducesConsistentData(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 5, NumPosts: 10, ShouldClean: true}))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 10, postCount)

	// Every tally row must agree with the reaction rows it summarizes.
	var tallies []models.ReactionTally
	require.NoError(t, db.Find(&tallies).Error)
	for _, tally := range tallies {
		for _, kind := range models.ReactionKinds {
			var rows int64
			require.NoError(t, db.Model(&models.Reaction{}).
				Where("post_id = ? AND kind = ?", tally.PostID, kind).
				Count(&rows).Error)
			assert.EqualValues(t, rows, tally.Count(kind),
				"post %d kind %s", tally.PostID, kind)
		}
	}

	// Posts only carry active tags.
	var posts []models.Post
	require.NoError(t, db.Preload("Tags").Find(&posts).Error)
	for _, post := range posts {
		for _, tag := range post.Tags {
			assert.True(t, tag.Active, "post %d carries inactive tag %s", post.ID, tag.Name)
		}
	}
}

func TestSeedCleanRemovesPreviousRun(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 3, NumPosts: 4, ShouldClean: false}))
	require.NoError(t, Seed(db, Options{NumUsers: 2, NumPosts: 2, ShouldClean: true}))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 2, userCount)
}
