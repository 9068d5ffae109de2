package render

import (
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

// KV is one metric row of a CSV summary section; order is preserved as given.
type KV struct {
	Key   string
	Value string
}

// DashboardCSV builds the dashboard export rows: a summary section, the
// follower growth series, and the content-type breakdown, separated by
// blank rows. Section headers and column order are part of the external
// contract.
func DashboardCSV(summary []KV, growth []api.GrowthPoint, mix []api.ContentTypeStat) [][]string {
	rows := [][]string{
		{"Dashboard Summary"},
		{"Metric", "Value"},
	}
	for _, kv := range summary {
		rows = append(rows, []string{kv.Key, kv.Value})
	}

	rows = append(rows, []string{""})
	rows = append(rows, []string{"Follower Growth"})
	rows = append(rows, []string{"Date", "Followers"})
	for _, p := range growth {
		rows = append(rows, []string{p.Date, formatFloat(float64(p.Followers))})
	}

	rows = append(rows, []string{""})
	rows = append(rows, []string{"Content Types"})
	rows = append(rows, []string{"Content Type", "Post Count", "Avg Engagement"})
	for _, ct := range mix {
		rows = append(rows, []string{ct.ContentType, formatFloat(float64(ct.Count)), formatFloat(ct.AvgEngagement)})
	}

	return rows
}

// CompetitorsCSV builds the competitor export rows: the comparison
// snapshot, per-account growth series, and the content gap table.
func CompetitorsCSV(comps []api.ComparisonRow, growth []api.GrowthSeries, gaps []api.ContentGap) [][]string {
	rows := [][]string{
		{"Competitor Snapshot"},
		{"Name", "Follower Count", "Avg Engagement"},
	}
	for _, row := range comps {
		rows = append(rows, []string{row.Username, formatFloat(float64(row.FollowerCount)), formatFloat(row.AvgEngagement)})
	}

	rows = append(rows, []string{""})
	rows = append(rows, []string{"Follower Growth Over Time"})
	rows = append(rows, []string{"Name", "Date", "Followers"})
	for _, series := range growth {
		for _, p := range series.Data {
			rows = append(rows, []string{series.Name, p.Date, formatFloat(float64(p.Followers))})
		}
	}

	rows = append(rows, []string{""})
	rows = append(rows, []string{"Content Gaps"})
	rows = append(rows, []string{"Competitor", "Their Top Content", "Your Usage", "Suggested Extra Posts"})
	for _, gap := range gaps {
		rows = append(rows, []string{
			gap.Competitor,
			gap.TheirTopContent,
			formatFloat(float64(gap.YourUsage)),
			formatFloat(float64(gap.Gap)),
		})
	}

	return rows
}
