package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiox2004/GapSight/internal/analytics"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
	"github.com/hiox2004/GapSight/pkg/llm"
	"github.com/hiox2004/GapSight/pkg/logging"
)

type stubProvider struct {
	response string
	err      error
	prompt   string
}

func (s *stubProvider) Complete(_ context.Context, req llm.Request) (string, error) {
	if len(req.Messages) > 0 {
		s.prompt = req.Messages[0].Content
	}
	return s.response, s.err
}

func testSummary() analytics.InsightSummary {
	return analytics.InsightSummary{
		Followers:               1200,
		EngagementRatePct:       2.5,
		TopContentType:          "Reel",
		AvgPostsPerWeek:         3.2,
		AvgCompetitorFollowers:  5000,
		AvgCompetitorEngagement: 45.0,
		CompetitorTopContents:   []string{"Story", "Reel"},
	}
}

func testGaps() []api.ContentGap {
	return []api.ContentGap{
		{Competitor: "brand_alpha", TheirTopContent: "Story", YourUsage: 1, Gap: 3},
	}
}

func assertWellFormed(t *testing.T, result api.InsightsResponse) {
	t.Helper()
	assert.NotEmpty(t, result.WhatCompetitorsDoBetter)
	assert.NotEmpty(t, result.ContentGaps)
	assert.NotEmpty(t, result.BestTimeToPost)
	require.Len(t, result.Recommendations, 3)
	for _, r := range result.Recommendations {
		assert.NotEmpty(t, r)
	}
}

func TestSynthesizeWithoutProvider(t *testing.T) {
	s := NewSynthesizer(nil, logging.NewLogger())

	result := s.Synthesize(context.Background(), testSummary(), testGaps())

	assert.Equal(t, api.SourceRules, result.Source)
	assertWellFormed(t, result)
	assert.Contains(t, result.ContentGaps, "Story")
}

func TestSynthesizeProviderSuccess(t *testing.T) {
	provider := &stubProvider{response: `{
		"what_competitors_do_better": "They post Stories twice as often.",
		"content_gaps": "You trail on Story content by 3 posts.",
		"best_time_to_post": "Run a two-week posting-time experiment.",
		"recommendations": ["Add 3 Story posts", "Review weekly", "Reply within an hour", "Extra one gets dropped"]
	}`}
	s := NewSynthesizer(provider, logging.NewLogger())

	result := s.Synthesize(context.Background(), testSummary(), testGaps())

	assert.Equal(t, api.SourceAIRules, result.Source)
	assert.Equal(t, "They post Stories twice as often.", result.WhatCompetitorsDoBetter)
	assert.Equal(t, "You trail on Story content by 3 posts.", result.ContentGaps)
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, "Add 3 Story posts", result.Recommendations[0])

	// the prompt carries the evidence, not raw rows
	assert.Contains(t, provider.prompt, `"engagement_rate_pct": 2.5`)
	assert.Contains(t, provider.prompt, "brand_alpha")
}

func TestSynthesizeProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream timeout")}
	s := NewSynthesizer(provider, logging.NewLogger())

	result := s.Synthesize(context.Background(), testSummary(), testGaps())

	assert.Equal(t, api.SourceRules, result.Source)
	assertWellFormed(t, result)
}

func TestSynthesizeMalformedPayload(t *testing.T) {
	provider := &stubProvider{response: "Sure! Here are your insights: ..."}
	s := NewSynthesizer(provider, logging.NewLogger())

	result := s.Synthesize(context.Background(), testSummary(), testGaps())

	assert.Equal(t, api.SourceRules, result.Source)
	assertWellFormed(t, result)
}

func TestSynthesizePartialPayloadFallsBackPerKey(t *testing.T) {
	// valid JSON, but one narrative blank and too few recommendations
	provider := &stubProvider{response: `{
		"what_competitors_do_better": "They are more consistent.",
		"content_gaps": "   ",
		"best_time_to_post": "",
		"recommendations": ["only one"]
	}`}
	s := NewSynthesizer(provider, logging.NewLogger())

	baseline := baselineInsights(testSummary(), testGaps())
	result := s.Synthesize(context.Background(), testSummary(), testGaps())

	assert.Equal(t, api.SourceAIRules, result.Source)
	assert.Equal(t, "They are more consistent.", result.WhatCompetitorsDoBetter)
	assert.Equal(t, baseline.ContentGaps, result.ContentGaps)
	assert.Equal(t, baseline.BestTimeToPost, result.BestTimeToPost)
	assert.Equal(t, baseline.Recommendations, result.Recommendations)
}

func TestBaselineInsightsBranches(t *testing.T) {
	t.Run("competitors ahead", func(t *testing.T) {
		result := baselineInsights(testSummary(), testGaps())
		assert.Contains(t, result.WhatCompetitorsDoBetter, "higher engagement")
		assert.Contains(t, result.BestTimeToPost, "4 times/week")
	})

	t.Run("brand ahead with no gaps", func(t *testing.T) {
		summary := testSummary()
		summary.AvgCompetitorEngagement = 1.0
		summary.AvgPostsPerWeek = 5

		result := baselineInsights(summary, nil)
		assert.Contains(t, result.WhatCompetitorsDoBetter, "at or above")
		assert.Contains(t, result.ContentGaps, "No severe format gap")
		assert.Contains(t, result.BestTimeToPost, "current posting cadence")
	})

	t.Run("no competitor formats known", func(t *testing.T) {
		summary := testSummary()
		summary.CompetitorTopContents = nil

		result := baselineInsights(summary, nil)
		assert.Contains(t, result.WhatCompetitorsDoBetter, "mixed formats")
	})
}
