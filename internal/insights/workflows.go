package insights

import (
	"fmt"

	"github.com/hiox2004/GapSight/internal/analytics"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

// Workflows derives simple automation-style weekly action workflows from
// the same evidence the insight narrative uses. Purely rule-based.
func Workflows(summary analytics.InsightSummary, gaps []api.ContentGap) []api.Workflow {
	workflows := []api.Workflow{}

	if summary.AvgPostsPerWeek < 4 {
		workflows = append(workflows, api.Workflow{
			Name:    "Posting cadence booster",
			Trigger: "At the start of each week (your first planning block)",
			Action:  "Queue at least 4 posts in your content calendar and schedule them across the week.",
		})
	}

	if summary.EngagementRatePct < 3 {
		workflows = append(workflows, api.Workflow{
			Name:    "Engagement lift sprint",
			Trigger: "Within 60 minutes after each post goes live",
			Action:  "Run a 60-minute response window for comments and shares to increase early engagement.",
		})
	}

	added := 0
	for _, gap := range gaps {
		if gap.Gap <= 0 {
			continue
		}
		workflows = append(workflows, api.Workflow{
			Name:    fmt.Sprintf("Close %s gap", gap.TheirTopContent),
			Trigger: "During your weekly content planning session",
			Action: fmt.Sprintf("Add %d more %s posts to compete with %s.",
				gap.Gap, gap.TheirTopContent, gap.Competitor),
		})
		added++
		if added == 2 {
			break
		}
	}

	if len(workflows) == 0 {
		workflows = append(workflows, api.Workflow{
			Name:    "Maintain winning rhythm",
			Trigger: "Once per week (same day each week)",
			Action:  "Keep your current posting strategy and review competitor changes every Monday.",
		})
	}

	return workflows
}

// FallbackWorkflow is served when the evidence itself cannot be computed.
func FallbackWorkflow() []api.Workflow {
	return []api.Workflow{{
		Name:    "Weekly strategy review",
		Trigger: "Every Monday morning (before planning posts)",
		Action:  "Review previous week performance and schedule next week content in advance.",
	}}
}
