package models

import "time"

// Content types tracked per post. Unknown covers rows with a missing or
// unrecognized content_type column.
const (
	ContentReel     = "Reel"
	ContentPost     = "Post"
	ContentCarousel = "Carousel"
	ContentStory    = "Story"
	ContentUnknown  = "Unknown"
)

// BrandUsername is the single tracked first-party account all metrics are
// computed relative to.
const BrandUsername = "my_brand"

// User is a tracked account (the brand)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Platform string `json:"platform"`
}

// FollowerSnapshot is one follower-count sample for the brand account
type FollowerSnapshot struct {
	UserID        string    `json:"user_id"`
	FollowerCount int       `json:"follower_count"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// Post is one published piece of content with its engagement counters
type Post struct {
	UserID      string    `json:"user_id"`
	ContentType string    `json:"content_type"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	PostedAt    time.Time `json:"posted_at"`
}

// Engagement returns likes + comments + shares
func (p Post) Engagement() int {
	return p.Likes + p.Comments + p.Shares
}

// Competitor is a tracked competitor account owned by the brand user
type Competitor struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	Username string `json:"username"`
	Platform string `json:"platform"`
}

// CompetitorMetric is one periodic snapshot of a competitor's public stats.
// TopContentType is nullable in the store.
type CompetitorMetric struct {
	CompetitorID   string    `json:"competitor_id"`
	FollowerCount  int       `json:"follower_count"`
	AvgLikes       float64   `json:"avg_likes"`
	AvgComments    float64   `json:"avg_comments"`
	AvgShares      float64   `json:"avg_shares"`
	TopContentType string    `json:"top_content_type"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// AvgEngagement returns the snapshot's summed per-post averages
func (m CompetitorMetric) AvgEngagement() float64 {
	return m.AvgLikes + m.AvgComments + m.AvgShares
}
