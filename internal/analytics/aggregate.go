package analytics

import (
	"math"
	"sort"
	"time"

	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
	"github.com/hiox2004/GapSight/pkg/models"
)

const dateLayout = "2006-01-02"

// CompetitorSnapshot pairs a competitor with its latest metric row.
// Competitors without any metric row never make it into one of these.
type CompetitorSnapshot struct {
	Username string
	Metric   models.CompetitorMetric
}

// Summary is the brand-level follower summary backing /analytics/summary.
// PostsThisWeek is a point-in-time count of posts in the trailing 7 days;
// the history-wide posts-per-week average lives on InsightSummary instead.
type Summary struct {
	FollowerCount     int
	GrowthPct         float64
	AvgEngagement     float64
	EngagementRatePct float64
	TopContentType    string
	PostsThisWeek     int
}

// BuildSummary derives the brand summary from the latest follower count,
// the full ascending follower history, and all brand posts.
func BuildSummary(latestFollowers int, history []models.FollowerSnapshot, posts []models.Post, now time.Time) Summary {
	baseline := latestFollowers
	if len(history) > 0 {
		baseline = history[0].FollowerCount
	}

	avgEng := AvgEngagement(posts)
	ratePct := Round2(SafeDivide(avgEng, float64(latestFollowers), 0) * 100)

	// inclusive boundary: a post exactly 7 days old still counts
	weekAgo := now.AddDate(0, 0, -7)
	postsThisWeek := 0
	for _, p := range posts {
		if !p.PostedAt.Before(weekAgo) {
			postsThisWeek++
		}
	}

	return Summary{
		FollowerCount:     latestFollowers,
		GrowthPct:         GrowthPercent(float64(latestFollowers), float64(baseline)),
		AvgEngagement:     avgEng,
		EngagementRatePct: ratePct,
		TopContentType:    TopContentType(posts),
		PostsThisWeek:     postsThisWeek,
	}
}

// WeeklyGrowthPoints maps an ascending follower history to weekly-sampled
// (date, followers) points.
func WeeklyGrowthPoints(history []models.FollowerSnapshot) []api.GrowthPoint {
	points := make([]api.GrowthPoint, 0, len(history))
	for _, s := range SampleWeekly(history) {
		points = append(points, api.GrowthPoint{
			Date:      s.RecordedAt.Format(dateLayout),
			Followers: s.FollowerCount,
		})
	}
	return points
}

// ContentTypeBreakdown groups posts by content type, preserving first-seen
// order, with per-group post count and average engagement.
func ContentTypeBreakdown(posts []models.Post) []api.ContentTypeStat {
	type group struct {
		count           int
		totalEngagement int
	}
	groups := make(map[string]*group, 4)
	order := make([]string, 0, 4)
	for _, p := range posts {
		ct := p.ContentType
		if ct == "" {
			ct = models.ContentUnknown
		}
		g, ok := groups[ct]
		if !ok {
			g = &group{}
			groups[ct] = g
			order = append(order, ct)
		}
		g.count++
		g.totalEngagement += p.Engagement()
	}

	stats := make([]api.ContentTypeStat, 0, len(order))
	for _, ct := range order {
		g := groups[ct]
		stats = append(stats, api.ContentTypeStat{
			ContentType:   ct,
			Count:         g.count,
			AvgEngagement: Round1(float64(g.totalEngagement) / float64(g.count)),
		})
	}
	return stats
}

// FrequencyCorrelation buckets posts by calendar month and reports post
// count against average engagement per bucket, sorted ascending by key.
// The output field is named "week" for compatibility with the existing UI
// even though the key is monthly.
func FrequencyCorrelation(posts []models.Post) []api.FrequencyBucket {
	type bucket struct {
		posts           int
		totalEngagement int
	}
	buckets := make(map[string]*bucket)
	for _, p := range posts {
		key := p.PostedAt.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.posts++
		b.totalEngagement += p.Engagement()
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]api.FrequencyBucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, api.FrequencyBucket{
			Week:          k,
			PostCount:     b.posts,
			AvgEngagement: Round1(float64(b.totalEngagement) / float64(b.posts)),
		})
	}
	return out
}

// Comparison builds the brand-first comparison table. The brand's
// engagement comes from the raw post mean; competitors use the summed
// per-post averages of their latest metric snapshot.
func Comparison(brandFollowers int, brandPosts []models.Post, comps []CompetitorSnapshot) []api.ComparisonRow {
	rows := make([]api.ComparisonRow, 0, len(comps)+1)
	rows = append(rows, api.ComparisonRow{
		Username:      models.BrandUsername,
		FollowerCount: brandFollowers,
		AvgEngagement: AvgEngagement(brandPosts),
	})
	for _, c := range comps {
		rows = append(rows, api.ComparisonRow{
			Username:      c.Username,
			FollowerCount: c.Metric.FollowerCount,
			AvgEngagement: Round1(c.Metric.AvgEngagement()),
		})
	}
	return rows
}

// InsightSummary is the numeric evidence fed to the insight synthesizer.
// AvgPostsPerWeek divides the total post count by 13, treating the stored
// history as exactly 13 weeks; this intentionally differs from
// Summary.PostsThisWeek and both metrics are kept.
type InsightSummary struct {
	Followers               int
	EngagementRatePct       float64
	TopContentType          string
	AvgPostsPerWeek         float64
	AvgCompetitorFollowers  int
	AvgCompetitorEngagement float64
	CompetitorTopContents   []string
}

// BuildInsightSummary derives the synthesizer's evidence record.
func BuildInsightSummary(latestFollowers int, posts []models.Post, comps []CompetitorSnapshot) InsightSummary {
	avgEng := AvgEngagement(posts)
	ratePct := Round2(SafeDivide(avgEng, float64(latestFollowers), 0) * 100)

	summary := InsightSummary{
		Followers:             latestFollowers,
		EngagementRatePct:     ratePct,
		TopContentType:        TopContentType(posts),
		AvgPostsPerWeek:       Round1(float64(len(posts)) / 13),
		CompetitorTopContents: make([]string, 0, len(comps)),
	}

	if len(comps) > 0 {
		totalFollowers := 0
		totalEngagement := 0.0
		for _, c := range comps {
			totalFollowers += c.Metric.FollowerCount
			totalEngagement += c.Metric.AvgEngagement()
			top := c.Metric.TopContentType
			if top == "" {
				top = models.ContentUnknown
			}
			summary.CompetitorTopContents = append(summary.CompetitorTopContents, top)
		}
		summary.AvgCompetitorFollowers = int(math.Round(float64(totalFollowers) / float64(len(comps))))
		summary.AvgCompetitorEngagement = Round1(totalEngagement / float64(len(comps)))
	}

	return summary
}
