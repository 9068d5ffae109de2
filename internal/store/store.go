// Package store is the data access layer over the relational store. The
// rest of the service talks to the Store interface; the retrying wrapper
// in retry.go owns reconnect behavior so callers never do.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hiox2004/GapSight/pkg/models"
)

// ErrNotFound is returned when a requested entity does not exist. Callers
// treat it as an empty result, not a failure.
var ErrNotFound = errors.New("store: not found")

// Store is the query surface the analytics pipeline needs. All history
// methods return rows ordered ascending by recorded_at.
type Store interface {
	BrandUserID(ctx context.Context, username string) (string, error)
	LatestFollowerCount(ctx context.Context, userID string) (int, error)
	FollowerHistory(ctx context.Context, userID string) ([]models.FollowerSnapshot, error)
	Posts(ctx context.Context, userID string) ([]models.Post, error)
	Competitors(ctx context.Context, ownerID string) ([]models.Competitor, error)
	LatestCompetitorMetric(ctx context.Context, competitorID string) (models.CompetitorMetric, error)
	CompetitorFollowerHistory(ctx context.Context, competitorID string) ([]models.FollowerSnapshot, error)
}

// Postgres implements Store on a plain *sql.DB
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// DB exposes the underlying handle for health checks
func (s *Postgres) DB() *sql.DB {
	return s.db
}

func (s *Postgres) BrandUserID(ctx context.Context, username string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE username = $1 LIMIT 1`, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query brand user: %w", err)
	}
	return id, nil
}

func (s *Postgres) LatestFollowerCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT follower_count FROM follower_metrics
		 WHERE user_id = $1
		 ORDER BY recorded_at DESC LIMIT 1`, userID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query latest follower count: %w", err)
	}
	return count, nil
}

func (s *Postgres) FollowerHistory(ctx context.Context, userID string) ([]models.FollowerSnapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT follower_count, recorded_at FROM follower_metrics
		 WHERE user_id = $1
		 ORDER BY recorded_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query follower history: %w", err)
	}
	defer rows.Close()

	var history []models.FollowerSnapshot
	for rows.Next() {
		snap := models.FollowerSnapshot{UserID: userID}
		if err := rows.Scan(&snap.FollowerCount, &snap.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan follower snapshot: %w", err)
		}
		history = append(history, snap)
	}
	return history, rows.Err()
}

func (s *Postgres) Posts(ctx context.Context, userID string) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT COALESCE(content_type, ''),
		        COALESCE(likes, 0), COALESCE(comments, 0), COALESCE(shares, 0),
		        posted_at
		 FROM posts
		 WHERE user_id = $1
		 ORDER BY posted_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post := models.Post{UserID: userID}
		if err := rows.Scan(&post.ContentType, &post.Likes, &post.Comments, &post.Shares, &post.PostedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		if post.ContentType == "" {
			post.ContentType = models.ContentUnknown
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (s *Postgres) Competitors(ctx context.Context, ownerID string) ([]models.Competitor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, username, COALESCE(platform, '')
		 FROM competitors
		 WHERE owner_id = $1
		 ORDER BY username ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query competitors: %w", err)
	}
	defer rows.Close()

	var comps []models.Competitor
	for rows.Next() {
		var c models.Competitor
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Username, &c.Platform); err != nil {
			return nil, fmt.Errorf("scan competitor: %w", err)
		}
		comps = append(comps, c)
	}
	return comps, rows.Err()
}

func (s *Postgres) LatestCompetitorMetric(ctx context.Context, competitorID string) (models.CompetitorMetric, error) {
	m := models.CompetitorMetric{CompetitorID: competitorID}
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(follower_count, 0),
		        COALESCE(avg_likes, 0), COALESCE(avg_comments, 0), COALESCE(avg_shares, 0),
		        COALESCE(top_content_type, ''), recorded_at
		 FROM competitor_metrics
		 WHERE competitor_id = $1
		 ORDER BY recorded_at DESC LIMIT 1`, competitorID).
		Scan(&m.FollowerCount, &m.AvgLikes, &m.AvgComments, &m.AvgShares, &m.TopContentType, &m.RecordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CompetitorMetric{}, ErrNotFound
	}
	if err != nil {
		return models.CompetitorMetric{}, fmt.Errorf("query latest competitor metric: %w", err)
	}
	return m, nil
}

func (s *Postgres) CompetitorFollowerHistory(ctx context.Context, competitorID string) ([]models.FollowerSnapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT follower_count, recorded_at FROM competitor_metrics
		 WHERE competitor_id = $1
		 ORDER BY recorded_at ASC`, competitorID)
	if err != nil {
		return nil, fmt.Errorf("query competitor follower history: %w", err)
	}
	defer rows.Close()

	var history []models.FollowerSnapshot
	for rows.Next() {
		snap := models.FollowerSnapshot{UserID: competitorID}
		if err := rows.Scan(&snap.FollowerCount, &snap.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan competitor snapshot: %w", err)
		}
		history = append(history, snap)
	}
	return history, rows.Err()
}
