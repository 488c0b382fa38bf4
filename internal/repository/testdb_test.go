package repository

import (
	"fmt"
	"testing"
	"time"

	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, database.Migrate(db), "migrate sqlite")
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:   title,
		Content: "content for " + title,
		UserID:  authorID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// createTestPosts creates count posts with strictly increasing created_at so
// feed ordering is deterministic.
func createTestPosts(t *testing.T, db *gorm.DB, authorID uint, count int) []*models.Post {
	t.Helper()
	base := time.Now().Add(-time.Duration(count) * time.Minute)
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		post := &models.Post{
			Title:     fmt.Sprintf("post %03d", i),
			Content:   fmt.Sprintf("content %03d", i),
			UserID:    authorID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
		posts = append(posts, post)
	}
	return posts
}
