// Package analytics holds the pure aggregation functions behind the API:
// follower summaries, content-type breakdowns, competitor comparison, gap
// scoring, and the follower trend forecast. Nothing in here touches the
// store or the network.
package analytics

import (
	"math"

	"github.com/hiox2004/GapSight/pkg/models"
)

// SafeDivide returns numerator/denominator, or def when the denominator
// is zero or not a finite number.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return def
	}
	return numerator / denominator
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GrowthPercent returns the percentage growth from baseline to current,
// rounded to one decimal. A baseline of zero or less yields 0.
func GrowthPercent(current, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return Round1((current - baseline) / baseline * 100)
}

// SampleWeekly returns every 7th element by position (indices 0, 7, 14, ...).
// The input is expected to be ordered ascending by time; this approximates a
// weekly cadence from daily rows without being calendar-aware.
func SampleWeekly[T any](series []T) []T {
	if len(series) == 0 {
		return nil
	}
	sampled := make([]T, 0, (len(series)+6)/7)
	for i := 0; i < len(series); i += 7 {
		sampled = append(sampled, series[i])
	}
	return sampled
}

// AvgEngagement returns the mean post engagement rounded to one decimal,
// or 0 when there are no posts.
func AvgEngagement(posts []models.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	total := 0
	for _, p := range posts {
		total += p.Engagement()
	}
	return Round1(float64(total) / float64(len(posts)))
}

// TopContentType returns the most frequent content type across posts, with
// ties broken by first-encountered order. Returns "N/A" for no posts.
func TopContentType(posts []models.Post) string {
	if len(posts) == 0 {
		return "N/A"
	}
	counts := make(map[string]int, 4)
	order := make([]string, 0, 4)
	for _, p := range posts {
		ct := p.ContentType
		if ct == "" {
			ct = models.ContentUnknown
		}
		if _, seen := counts[ct]; !seen {
			order = append(order, ct)
		}
		counts[ct]++
	}
	top := order[0]
	for _, ct := range order[1:] {
		if counts[ct] > counts[top] {
			top = ct
		}
	}
	return top
}
