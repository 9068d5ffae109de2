package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiox2004/GapSight/internal/analytics"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

func TestWorkflowsAllTriggersFire(t *testing.T) {
	summary := analytics.InsightSummary{
		AvgPostsPerWeek:   2,
		EngagementRatePct: 1.5,
	}
	gaps := []api.ContentGap{
		{Competitor: "a", TheirTopContent: "Story", Gap: 3},
		{Competitor: "b", TheirTopContent: "Reel", Gap: 0}, // skipped
		{Competitor: "c", TheirTopContent: "Carousel", Gap: 2},
		{Competitor: "d", TheirTopContent: "Post", Gap: 5}, // beyond the 2-gap cap
	}

	workflows := Workflows(summary, gaps)
	require.Len(t, workflows, 4)

	assert.Equal(t, "Posting cadence booster", workflows[0].Name)
	assert.Equal(t, "Engagement lift sprint", workflows[1].Name)
	assert.Equal(t, "Close Story gap", workflows[2].Name)
	assert.Contains(t, workflows[2].Action, "Add 3 more Story posts")
	assert.Contains(t, workflows[2].Action, "a")
	assert.Equal(t, "Close Carousel gap", workflows[3].Name)
}

func TestWorkflowsHealthyBrandGetsMaintenance(t *testing.T) {
	summary := analytics.InsightSummary{
		AvgPostsPerWeek:   5,
		EngagementRatePct: 4.2,
	}

	workflows := Workflows(summary, nil)
	require.Len(t, workflows, 1)
	assert.Equal(t, "Maintain winning rhythm", workflows[0].Name)
}

func TestWorkflowsZeroGapsDoNotTrigger(t *testing.T) {
	summary := analytics.InsightSummary{
		AvgPostsPerWeek:   5,
		EngagementRatePct: 4.2,
	}
	gaps := []api.ContentGap{{Competitor: "a", TheirTopContent: "Reel", Gap: 0}}

	workflows := Workflows(summary, gaps)
	require.Len(t, workflows, 1)
	assert.Equal(t, "Maintain winning rhythm", workflows[0].Name)
}

func TestFallbackWorkflow(t *testing.T) {
	workflows := FallbackWorkflow()
	require.Len(t, workflows, 1)
	assert.Equal(t, "Weekly strategy review", workflows[0].Name)
	assert.NotEmpty(t, workflows[0].Trigger)
	assert.NotEmpty(t, workflows[0].Action)
}
