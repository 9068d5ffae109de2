package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hiox2004/GapSight/pkg/logging"
	"github.com/hiox2004/GapSight/pkg/models"
)

var seedContentTypes = []string{
	models.ContentReel,
	models.ContentPost,
	models.ContentCarousel,
	models.ContentStory,
}

// Seed populates the store with 90 days of demo data: the brand user, its
// follower history and posts, and three competitors with metric history.
func (s *Postgres) Seed(ctx context.Context, logger logging.Logger) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	var userID string
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, platform) VALUES ($1, $2) RETURNING id`,
		models.BrandUsername, "Instagram").Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed brand user: %w", err)
	}
	logger.WithField("user_id", userID).Info("Created brand user")

	baseFollowers := 20000
	for i := 0; i < 90; i++ {
		date := now.AddDate(0, 0, -(90 - i))
		baseFollowers += 50 + rng.Intn(251)
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO follower_metrics (user_id, follower_count, recorded_at) VALUES ($1, $2, $3)`,
			userID, baseFollowers, date); err != nil {
			return fmt.Errorf("seed follower metric: %w", err)
		}
	}
	logger.Info("Follower metrics seeded")

	for i := 0; i < 90; i++ {
		date := now.AddDate(0, 0, -(90 - i))
		for n := rng.Intn(4); n > 0; n-- {
			contentType := seedContentTypes[rng.Intn(len(seedContentTypes))]
			multiplier := 1.0
			if contentType == models.ContentReel {
				multiplier = 1.5
			}
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO posts (user_id, content_type, likes, comments, shares, posted_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				userID, contentType,
				int(float64(200+rng.Intn(1301))*multiplier),
				int(float64(10+rng.Intn(191))*multiplier),
				int(float64(5+rng.Intn(96))*multiplier),
				date); err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}
	logger.Info("Posts seeded")

	for _, name := range []string{"brand_alpha", "brand_beta", "brand_gamma"} {
		var compID string
		err := s.db.QueryRowContext(ctx,
			`INSERT INTO competitors (owner_id, username, platform) VALUES ($1, $2, $3) RETURNING id`,
			userID, name, "Instagram").Scan(&compID)
		if err != nil {
			return fmt.Errorf("seed competitor %s: %w", name, err)
		}

		baseCompFollowers := 18000 + rng.Intn(17001)
		for i := 0; i < 90; i++ {
			date := now.AddDate(0, 0, -(90 - i))
			baseCompFollowers += 30 + rng.Intn(371)
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO competitor_metrics
				   (competitor_id, follower_count, avg_likes, avg_comments, avg_shares, top_content_type, recorded_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				compID, baseCompFollowers,
				150+rng.Intn(1851), 10+rng.Intn(291), 5+rng.Intn(146),
				seedContentTypes[rng.Intn(len(seedContentTypes))],
				date); err != nil {
				return fmt.Errorf("seed competitor metric: %w", err)
			}
		}
	}
	logger.Info("Competitors seeded")

	return nil
}
