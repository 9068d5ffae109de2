package analytics

import (
	"math"

	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
	"github.com/hiox2004/GapSight/pkg/models"
)

// Fixed rationale lines keyed on whether a gap was found.
const (
	rationaleGap   = "Competitor's top format is outperforming your coverage of it; publishing more closes both the usage and engagement deficit."
	rationaleNoGap = "No meaningful deficit detected for this format; keep the current mix and focus on quality."
)

// ContentGaps scores, for each competitor with a metric snapshot, how far
// the brand is behind on the competitor's top content type. The score is
// max(usage gap, engagement gap), both floored at zero:
//
//	usage gap      = baseline target - brand posts of that type
//	baseline target = max(3, round(total posts / distinct types) + 1)
//	engagement gap = round((competitor avg engagement - brand avg engagement) / 10)
//
// Competitors without a snapshot are excluded upstream by construction of
// CompetitorSnapshot.
func ContentGaps(posts []models.Post, comps []CompetitorSnapshot) []api.ContentGap {
	counts := make(map[string]int, 4)
	for _, p := range posts {
		ct := p.ContentType
		if ct == "" {
			ct = models.ContentUnknown
		}
		counts[ct]++
	}

	baselineTarget := int(math.Round(SafeDivide(float64(len(posts)), float64(len(counts)), 0))) + 1
	if baselineTarget < 3 {
		baselineTarget = 3
	}
	brandAvgEngagement := AvgEngagement(posts)

	gaps := make([]api.ContentGap, 0, len(comps))
	for _, c := range comps {
		theirTop := c.Metric.TopContentType
		if theirTop == "" {
			theirTop = "N/A"
		}
		yourUsage := counts[theirTop]

		usageGap := baselineTarget - yourUsage
		if usageGap < 0 {
			usageGap = 0
		}
		engagementGap := int(math.Round((Round1(c.Metric.AvgEngagement()) - brandAvgEngagement) / 10))
		if engagementGap < 0 {
			engagementGap = 0
		}

		score := usageGap
		if engagementGap > score {
			score = engagementGap
		}

		rationale := rationaleNoGap
		if score > 0 {
			rationale = rationaleGap
		}

		gaps = append(gaps, api.ContentGap{
			Competitor:      c.Username,
			TheirTopContent: theirTop,
			YourUsage:       yourUsage,
			Gap:             score,
			Rationale:       rationale,
		})
	}
	return gaps
}
