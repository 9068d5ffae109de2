package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/hiox2004/GapSight/pkg/logging"
	"github.com/hiox2004/GapSight/pkg/models"
)

// Error signatures that mark a failure as a transient connection problem
// worth retrying. Anything else propagates immediately.
var transientSignatures = []string{
	"disconnected",
	"server disconnected",
	"connection",
	"timeout",
	"refused",
	"reset",
	"broken pipe",
}

// IsTransient reports whether err looks like a recoverable connection error
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if errors.Is(err, ErrNotFound) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// Retrying decorates a Store with bounded exponential-backoff retries on
// transient connection errors. The database/sql pool underneath handles
// the actual reconnect; this wrapper only re-runs the query.
type Retrying struct {
	next         Store
	logger       logging.Logger
	maxAttempts  int
	initialDelay time.Duration
}

// WithRetry wraps next with the default retry policy: 5 attempts, 300ms
// initial delay, doubling per attempt.
func WithRetry(next Store, logger logging.Logger) *Retrying {
	return &Retrying{
		next:         next,
		logger:       logger,
		maxAttempts:  5,
		initialDelay: 300 * time.Millisecond,
	}
}

func (r *Retrying) do(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsTransient(err) {
			return err
		}
		if attempt == r.maxAttempts-1 {
			break
		}

		delay := r.initialDelay << attempt
		r.logger.WithFields(logging.Fields{
			"op":      op,
			"attempt": attempt + 1,
			"delay":   delay.String(),
			"error":   err.Error(),
		}).Warn("Transient store error, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.logger.WithFields(logging.Fields{
		"op":       op,
		"attempts": r.maxAttempts,
	}).Error("Store retries exhausted")
	return lastErr
}

func (r *Retrying) BrandUserID(ctx context.Context, username string) (string, error) {
	var id string
	err := r.do(ctx, "brand_user_id", func() error {
		var err error
		id, err = r.next.BrandUserID(ctx, username)
		return err
	})
	return id, err
}

func (r *Retrying) LatestFollowerCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.do(ctx, "latest_follower_count", func() error {
		var err error
		count, err = r.next.LatestFollowerCount(ctx, userID)
		return err
	})
	return count, err
}

func (r *Retrying) FollowerHistory(ctx context.Context, userID string) ([]models.FollowerSnapshot, error) {
	var history []models.FollowerSnapshot
	err := r.do(ctx, "follower_history", func() error {
		var err error
		history, err = r.next.FollowerHistory(ctx, userID)
		return err
	})
	return history, err
}

func (r *Retrying) Posts(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.do(ctx, "posts", func() error {
		var err error
		posts, err = r.next.Posts(ctx, userID)
		return err
	})
	return posts, err
}

func (r *Retrying) Competitors(ctx context.Context, ownerID string) ([]models.Competitor, error) {
	var comps []models.Competitor
	err := r.do(ctx, "competitors", func() error {
		var err error
		comps, err = r.next.Competitors(ctx, ownerID)
		return err
	})
	return comps, err
}

func (r *Retrying) LatestCompetitorMetric(ctx context.Context, competitorID string) (models.CompetitorMetric, error) {
	var metric models.CompetitorMetric
	err := r.do(ctx, "latest_competitor_metric", func() error {
		var err error
		metric, err = r.next.LatestCompetitorMetric(ctx, competitorID)
		return err
	})
	return metric, err
}

func (r *Retrying) CompetitorFollowerHistory(ctx context.Context, competitorID string) ([]models.FollowerSnapshot, error) {
	var history []models.FollowerSnapshot
	err := r.do(ctx, "competitor_follower_history", func() error {
		var err error
		history, err = r.next.CompetitorFollowerHistory(ctx, competitorID)
		return err
	})
	return history, err
}
