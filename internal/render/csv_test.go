package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

func TestDashboardCSV(t *testing.T) {
	summary := []KV{
		{Key: "follower_count", Value: "21500"},
		{Key: "follower_growth_pct", Value: "7.5"},
	}
	growth := []api.GrowthPoint{{Date: "2025-01-01", Followers: 20000}}
	mix := []api.ContentTypeStat{{ContentType: "Reel", Count: 12, AvgEngagement: 150.5}}

	rows := DashboardCSV(summary, growth, mix)

	want := [][]string{
		{"Dashboard Summary"},
		{"Metric", "Value"},
		{"follower_count", "21500"},
		{"follower_growth_pct", "7.5"},
		{""},
		{"Follower Growth"},
		{"Date", "Followers"},
		{"2025-01-01", "20000"},
		{""},
		{"Content Types"},
		{"Content Type", "Post Count", "Avg Engagement"},
		{"Reel", "12", "150.5"},
	}
	assert.Equal(t, want, rows)
}

func TestDashboardCSVEmptySections(t *testing.T) {
	rows := DashboardCSV(nil, nil, nil)

	// headers and separators survive even with no data rows
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"Dashboard Summary"}, rows[0])
	assert.Equal(t, []string{"Follower Growth"}, rows[3])
	assert.Equal(t, []string{"Content Types"}, rows[6])
}

func TestCompetitorsCSV(t *testing.T) {
	comps := []api.ComparisonRow{
		{Username: "my_brand", FollowerCount: 21500, AvgEngagement: 180},
		{Username: "brand_alpha", FollowerCount: 30000, AvgEngagement: 240.5},
	}
	growth := []api.GrowthSeries{
		{Name: "my_brand", Data: []api.GrowthPoint{{Date: "2025-01-01", Followers: 20000}}},
	}
	gaps := []api.ContentGap{
		{Competitor: "brand_alpha", TheirTopContent: "Story", YourUsage: 1, Gap: 3},
	}

	rows := CompetitorsCSV(comps, growth, gaps)

	want := [][]string{
		{"Competitor Snapshot"},
		{"Name", "Follower Count", "Avg Engagement"},
		{"my_brand", "21500", "180"},
		{"brand_alpha", "30000", "240.5"},
		{""},
		{"Follower Growth Over Time"},
		{"Name", "Date", "Followers"},
		{"my_brand", "2025-01-01", "20000"},
		{""},
		{"Content Gaps"},
		{"Competitor", "Their Top Content", "Your Usage", "Suggested Extra Posts"},
		{"brand_alpha", "Story", "1", "3"},
	}
	assert.Equal(t, want, rows)
}
