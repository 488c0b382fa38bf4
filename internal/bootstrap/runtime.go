// Package bootstrap wires runtime dependencies for the server command.
package bootstrap

import (
	"fmt"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData fills the database with generated users, posts, reactions
	// and bookmarks. Intended for development only.
	SeedDemoData bool
	NumUsers     int
	NumPosts     int
}

// InitRuntime connects to DB and Redis and optionally runs demo seeding.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		numUsers := opts.NumUsers
		if numUsers <= 0 {
			numUsers = 20
		}
		numPosts := opts.NumPosts
		if numPosts <= 0 {
			numPosts = 100
		}
		if err := seed.Seed(db, seed.Options{NumUsers: numUsers, NumPosts: numPosts}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
