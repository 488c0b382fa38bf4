// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// TagFixture is an optional path to a YAML tag catalog; the embedded
	// default fixture is used when empty.
	TagFixture string
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	fixture, err := LoadTagFixture(opts.TagFixture)
	if err != nil {
		return fmt.Errorf("failed to load tag fixture: %w", err)
	}
	tags, err := upsertTags(db, fixture)
	if err != nil {
		return fmt.Errorf("failed to create tags: %w", err)
	}
	log.Printf("%d tags available", len(tags))

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	posts, err := createPosts(db, users, tags, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := createReactions(db, users, posts); err != nil {
		return fmt.Errorf("failed to create reactions: %w", err)
	}
	if err := createBookmarks(db, users, posts); err != nil {
		return fmt.Errorf("failed to create bookmarks: %w", err)
	}

	log.Println("Database seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Delete in dependency order; join rows first.
	tables := []string{
		"notifications", "bookmarks", "reactions", "reaction_tallies",
		"post_tags", "posts", "tags", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashedPassword),
			Bio:      gofakeit.Sentence(10),
			PhotoURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []*models.User, tags []models.Tag, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	active := make([]models.Tag, 0, len(tags))
	for _, t := range tags {
		if t.Active {
			active = append(active, t)
		}
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		post := &models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
			UserID:  author.ID,
			Tags:    pickTags(active),
			// realistic created_at spread over the last 90 days
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour),
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func pickTags(tags []models.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}
	n := rand.Intn(3)
	if n == 0 {
		return nil
	}
	picked := make([]models.Tag, 0, n)
	seen := make(map[uint]struct{}, n)
	for len(picked) < n {
		t := tags[rand.Intn(len(tags))]
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		picked = append(picked, t)
	}
	return picked
}

// createReactions places random reactions and builds the matching tally rows
// so counters and rows agree from the first query.
func createReactions(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		tally := models.ReactionTally{PostID: post.ID}
		for _, user := range users {
			if rand.Intn(100) >= 40 {
				continue
			}
			kind := models.ReactionKinds[rand.Intn(len(models.ReactionKinds))]
			reaction := models.Reaction{
				UserID: user.ID,
				PostID: post.ID,
				Kind:   kind,
			}
			if err := db.Create(&reaction).Error; err != nil {
				return err
			}
			tally.Increment(kind)
		}
		if tally.Total() > 0 {
			if err := db.Create(&tally).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createBookmarks(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, user := range users {
		for _, post := range posts {
			if rand.Intn(100) >= 15 {
				continue
			}
			bookmark := models.Bookmark{UserID: user.ID, PostID: post.ID}
			if err := db.Create(&bookmark).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
