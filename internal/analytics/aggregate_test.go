package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
	"github.com/hiox2004/GapSight/pkg/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestBuildSummaryNoPosts(t *testing.T) {
	now := day(t, "2025-04-01")
	history := []models.FollowerSnapshot{
		{FollowerCount: 100, RecordedAt: day(t, "2025-01-01")},
		{FollowerCount: 150, RecordedAt: day(t, "2025-03-31")},
	}

	summary := BuildSummary(150, history, nil, now)

	assert.Equal(t, 150, summary.FollowerCount)
	assert.Equal(t, 50.0, summary.GrowthPct)
	assert.Equal(t, 0.0, summary.AvgEngagement)
	assert.Equal(t, 0.0, summary.EngagementRatePct)
	assert.Equal(t, "N/A", summary.TopContentType)
	assert.Equal(t, 0, summary.PostsThisWeek)
}

func TestBuildSummaryTrailingWeekCount(t *testing.T) {
	now := day(t, "2025-04-10")
	posts := []models.Post{
		{ContentType: models.ContentReel, PostedAt: day(t, "2025-04-01")}, // outside window
		{ContentType: models.ContentReel, PostedAt: day(t, "2025-04-05")},
		{ContentType: models.ContentPost, PostedAt: day(t, "2025-04-09")},
	}

	summary := BuildSummary(200, nil, posts, now)

	assert.Equal(t, 2, summary.PostsThisWeek)
	// no history rows: baseline falls back to latest, growth is flat
	assert.Equal(t, 0.0, summary.GrowthPct)
	assert.Equal(t, models.ContentReel, summary.TopContentType)
}

func TestBuildSummaryWeekBoundaryInclusive(t *testing.T) {
	now := day(t, "2025-04-10")
	posts := []models.Post{
		{ContentType: models.ContentReel, PostedAt: day(t, "2025-04-03")}, // exactly 7 days old
		{ContentType: models.ContentReel, PostedAt: now.AddDate(0, 0, -7).Add(-time.Second)},
	}

	summary := BuildSummary(100, nil, posts, now)
	assert.Equal(t, 1, summary.PostsThisWeek)
}

func TestBuildSummaryEngagementRate(t *testing.T) {
	posts := []models.Post{
		{Likes: 40, Comments: 5, Shares: 5}, // 50
		{Likes: 20, Comments: 5, Shares: 5}, // 30
	}
	summary := BuildSummary(1000, nil, posts, day(t, "2025-04-10"))

	assert.Equal(t, 40.0, summary.AvgEngagement)
	// 40 / 1000 * 100 = 4%
	assert.Equal(t, 4.0, summary.EngagementRatePct)
}

func TestWeeklyGrowthPoints(t *testing.T) {
	history := make([]models.FollowerSnapshot, 0, 15)
	start := day(t, "2025-01-01")
	for i := 0; i < 15; i++ {
		history = append(history, models.FollowerSnapshot{
			FollowerCount: 100 + i,
			RecordedAt:    start.AddDate(0, 0, i),
		})
	}

	points := WeeklyGrowthPoints(history)
	require.Len(t, points, 3)
	assert.Equal(t, api.GrowthPoint{Date: "2025-01-01", Followers: 100}, points[0])
	assert.Equal(t, api.GrowthPoint{Date: "2025-01-08", Followers: 107}, points[1])
	assert.Equal(t, api.GrowthPoint{Date: "2025-01-15", Followers: 114}, points[2])
}

func TestContentTypeBreakdown(t *testing.T) {
	posts := []models.Post{
		{ContentType: models.ContentReel, Likes: 10},
		{ContentType: models.ContentPost, Likes: 4},
		{ContentType: models.ContentReel, Likes: 20},
		{ContentType: "", Likes: 7},
	}

	stats := ContentTypeBreakdown(posts)
	require.Len(t, stats, 3)

	// first-seen order is preserved
	assert.Equal(t, api.ContentTypeStat{ContentType: models.ContentReel, Count: 2, AvgEngagement: 15.0}, stats[0])
	assert.Equal(t, api.ContentTypeStat{ContentType: models.ContentPost, Count: 1, AvgEngagement: 4.0}, stats[1])
	assert.Equal(t, api.ContentTypeStat{ContentType: models.ContentUnknown, Count: 1, AvgEngagement: 7.0}, stats[2])
}

func TestFrequencyCorrelation(t *testing.T) {
	posts := []models.Post{
		{Likes: 30, PostedAt: day(t, "2025-02-10")},
		{Likes: 10, PostedAt: day(t, "2025-01-05")},
		{Likes: 20, PostedAt: day(t, "2025-01-20")},
	}

	buckets := FrequencyCorrelation(posts)
	require.Len(t, buckets, 2)

	// sorted ascending by month key regardless of input order
	assert.Equal(t, api.FrequencyBucket{Week: "2025-01", PostCount: 2, AvgEngagement: 15.0}, buckets[0])
	assert.Equal(t, api.FrequencyBucket{Week: "2025-02", PostCount: 1, AvgEngagement: 30.0}, buckets[1])
}

func TestComparisonBrandFirst(t *testing.T) {
	posts := []models.Post{{Likes: 10}}
	comps := []CompetitorSnapshot{
		{Username: "brand_alpha", Metric: models.CompetitorMetric{
			FollowerCount: 5000, AvgLikes: 100, AvgComments: 20, AvgShares: 5,
		}},
	}

	rows := Comparison(1200, posts, comps)
	require.Len(t, rows, 2)

	assert.Equal(t, models.BrandUsername, rows[0].Username)
	assert.Equal(t, 1200, rows[0].FollowerCount)
	assert.Equal(t, 10.0, rows[0].AvgEngagement)

	assert.Equal(t, "brand_alpha", rows[1].Username)
	assert.Equal(t, 5000, rows[1].FollowerCount)
	assert.Equal(t, 125.0, rows[1].AvgEngagement)
}

func TestBuildInsightSummary(t *testing.T) {
	posts := make([]models.Post, 26)
	for i := range posts {
		posts[i] = models.Post{ContentType: models.ContentReel, Likes: 10}
	}
	comps := []CompetitorSnapshot{
		{Username: "a", Metric: models.CompetitorMetric{FollowerCount: 1000, AvgLikes: 30, TopContentType: models.ContentStory}},
		{Username: "b", Metric: models.CompetitorMetric{FollowerCount: 2000, AvgLikes: 50, TopContentType: ""}},
	}

	summary := BuildInsightSummary(500, posts, comps)

	assert.Equal(t, 500, summary.Followers)
	assert.Equal(t, 2.0, summary.EngagementRatePct) // 10/500*100
	assert.Equal(t, models.ContentReel, summary.TopContentType)
	assert.Equal(t, 2.0, summary.AvgPostsPerWeek) // 26 posts / 13 weeks
	assert.Equal(t, 1500, summary.AvgCompetitorFollowers)
	assert.Equal(t, 40.0, summary.AvgCompetitorEngagement)
	assert.Equal(t, []string{models.ContentStory, models.ContentUnknown}, summary.CompetitorTopContents)
}

func TestBuildInsightSummaryNoCompetitors(t *testing.T) {
	summary := BuildInsightSummary(0, nil, nil)

	assert.Equal(t, 0, summary.AvgCompetitorFollowers)
	assert.Equal(t, 0.0, summary.AvgCompetitorEngagement)
	assert.Empty(t, summary.CompetitorTopContents)
	assert.Equal(t, "N/A", summary.TopContentType)
	assert.Equal(t, 0.0, summary.EngagementRatePct)
}
