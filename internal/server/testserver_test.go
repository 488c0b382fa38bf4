package server

import (
	"testing"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server on an in-memory database without touching
// the metrics registry or Redis.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, database.Migrate(db), "migrate sqlite")

	s := &Server{
		config: &config.Config{JWTSecret: "test-secret-test-secret-test-secret!", Port: "0", Env: "test"},
		db:     db,
	}
	s.userRepo = repository.NewUserRepository(db)
	s.postRepo = repository.NewPostRepository(db)
	s.reactionRepo = repository.NewReactionRepository(db)
	s.bookmarkRepo = repository.NewBookmarkRepository(db)
	s.tagRepo = repository.NewTagRepository(db)
	s.notificationRepo = repository.NewNotificationRepository(db)

	s.dispatcher = service.NewNotificationService(s.notificationRepo, s.userRepo, s.postRepo)
	s.feedService = service.NewFeedService(s.postRepo)
	s.postService = service.NewPostService(s.postRepo, s.tagRepo, s.feedService)
	s.reactionService = service.NewReactionService(s.postRepo, s.reactionRepo, s.dispatcher)
	s.bookmarkService = service.NewBookmarkService(s.postRepo, s.bookmarkRepo, s.dispatcher)
	s.tagService = service.NewTagService(s.tagRepo)
	s.userService = service.NewUserService(s.userRepo, s.postRepo, s.reactionRepo)

	return s, db
}

// newTestApp returns a fiber app with the given user pre-authenticated.
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	if userID != 0 {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", userID)
			return c.Next()
		})
	}
	return app
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("Sup3r-secret-pw!"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPost(t *testing.T, db *gorm.DB, authorID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "content of " + title, UserID: authorID}
	require.NoError(t, db.Create(post).Error)
	return post
}
