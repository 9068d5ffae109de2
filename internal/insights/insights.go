// Package insights turns the derived numeric summary into narrative
// recommendations. A deterministic rule-based baseline is always computed
// first; an optional LLM rewrite is layered on top and every failure mode
// falls back to the baseline, so callers never see an error.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hiox2004/GapSight/internal/analytics"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
	"github.com/hiox2004/GapSight/pkg/llm"
	"github.com/hiox2004/GapSight/pkg/logging"
)

// Synthesizer produces insight narratives. The provider is injected at
// construction and may be nil, in which case only the rule path runs.
type Synthesizer struct {
	provider llm.Provider
	logger   logging.Logger
}

func NewSynthesizer(provider llm.Provider, logger logging.Logger) *Synthesizer {
	return &Synthesizer{provider: provider, logger: logger}
}

// Synthesize returns insights for the given evidence. The result is always
// well-formed: four non-empty narrative fields, exactly 3 recommendations,
// and a source tag of "rules" or "ai+rules".
func (s *Synthesizer) Synthesize(ctx context.Context, summary analytics.InsightSummary, gaps []api.ContentGap) api.InsightsResponse {
	baseline := baselineInsights(summary, gaps)

	if s.provider == nil {
		baseline.Source = api.SourceRules
		return baseline
	}

	raw, err := s.provider.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: "user", Content: buildPrompt(summary, gaps)}},
		JSONOutput:  true,
		Temperature: 0.2,
	})
	if err != nil {
		s.logger.WithError(err).Warn("LLM insight rewrite failed, serving rule-based insights")
		baseline.Source = api.SourceRules
		return baseline
	}

	payload, err := parsePayload(raw)
	if err != nil {
		s.logger.WithError(err).Warn("LLM insight payload invalid, serving rule-based insights")
		baseline.Source = api.SourceRules
		return baseline
	}

	merged := merge(payload, baseline)
	merged.Source = api.SourceAIRules
	return merged
}

// baselineInsights is the deterministic rule path. It always yields four
// non-empty narrative fields and exactly 3 recommendations.
func baselineInsights(summary analytics.InsightSummary, gaps []api.ContentGap) api.InsightsResponse {
	topTypes := make([]string, 0, 3)
	for _, t := range summary.CompetitorTopContents {
		if t != "" {
			topTypes = append(topTypes, t)
		}
		if len(topTypes) == 3 {
			break
		}
	}
	topTypesText := "mixed formats"
	if len(topTypes) > 0 {
		topTypesText = strings.Join(topTypes, ", ")
	}

	var better string
	if summary.AvgCompetitorEngagement > summary.EngagementRatePct {
		better = fmt.Sprintf(
			"Competitors are averaging higher engagement (%v) than your current rate (%v%%). They also show stronger consistency around %s.",
			summary.AvgCompetitorEngagement, summary.EngagementRatePct, topTypesText)
	} else {
		better = fmt.Sprintf(
			"Your engagement is at or above competitor averages, but consistency and repeatable content systems still matter. Top competitor formats currently include %s.",
			topTypesText)
	}

	var contentGaps string
	if len(gaps) > 0 && gaps[0].Gap > 0 {
		top := gaps[0]
		contentGaps = fmt.Sprintf(
			"The largest gap is in %s content. You currently post it %d times, and adding about %d more posts can close the gap faster.",
			top.TheirTopContent, top.YourUsage, top.Gap)
	} else {
		contentGaps = "No severe format gap is detected right now. Focus on quality improvements and testing post hooks, captions, and CTAs."
	}

	var bestTime string
	if summary.AvgPostsPerWeek < 4 {
		bestTime = "Post at a fixed peak window 4 times/week and review 24-hour engagement before repeating the slot."
	} else {
		bestTime = "Keep your current posting cadence and prioritize the two highest-performing time windows each week."
	}

	return api.InsightsResponse{
		WhatCompetitorsDoBetter: better,
		ContentGaps:             contentGaps,
		BestTimeToPost:          bestTime,
		Recommendations: []string{
			"Publish consistently each week and avoid long posting gaps.",
			"Increase output in the top competitor content formats.",
			"Review performance weekly and double down on top-performing formats.",
		},
	}
}

// promptData is the evidence block embedded in the prompt; only derived
// numbers and the top gaps, never raw rows.
type promptData struct {
	MyStats struct {
		Followers         int     `json:"followers"`
		EngagementRatePct float64 `json:"engagement_rate_pct"`
		TopContentType    string  `json:"top_content_type"`
		PostsPerWeek      float64 `json:"posts_per_week"`
	} `json:"my_stats"`
	CompetitorAverages struct {
		AvgFollowers    int      `json:"avg_followers"`
		AvgEngagement   float64  `json:"avg_engagement"`
		TopContentTypes []string `json:"top_content_types"`
	} `json:"competitor_averages"`
	TopContentGaps []api.ContentGap `json:"top_content_gaps"`
}

func buildPrompt(summary analytics.InsightSummary, gaps []api.ContentGap) string {
	var data promptData
	data.MyStats.Followers = summary.Followers
	data.MyStats.EngagementRatePct = summary.EngagementRatePct
	data.MyStats.TopContentType = summary.TopContentType
	data.MyStats.PostsPerWeek = summary.AvgPostsPerWeek
	data.CompetitorAverages.AvgFollowers = summary.AvgCompetitorFollowers
	data.CompetitorAverages.AvgEngagement = summary.AvgCompetitorEngagement
	data.CompetitorAverages.TopContentTypes = summary.CompetitorTopContents
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}
	data.TopContentGaps = gaps

	evidence, _ := json.MarshalIndent(data, "", "    ")

	return fmt.Sprintf(`You are a senior growth analyst creating high-precision social media insights.

Your objective:
Produce insights that are strictly evidence-based from the provided dataset and useful for immediate weekly execution.

DATA (single source of truth):
%s

Reasoning requirements:
1) Compare my engagement_rate_pct to competitor avg_engagement and explicitly quantify the difference.
2) Explain what competitors do better using only provided values (cadence, content mix, engagement).
3) For content gaps, prioritize only the highest-impact gaps from top_content_gaps.
4) If any metric is missing/zero/insufficient, say "insufficient data" for that specific claim instead of guessing.

Writing requirements:
- Be specific and concrete; avoid generic advice.
- Keep each sentence tightly tied to numbers or named fields in DATA.
- Do not use external benchmarks, assumptions, or invented timing windows.
- best_time_to_post must be framed as a data-limitation-aware recommendation (e.g., suggest an experiment plan if timing data is absent).

Output format:
Return valid JSON only with exactly these keys:
{
    "what_competitors_do_better": "2-3 precise sentences",
    "content_gaps": "2-3 precise sentences",
    "best_time_to_post": "1-2 specific sentences",
    "recommendations": [
        "short action 1",
        "short action 2",
        "short action 3"
    ]
}

Final quality check before answering:
- Every claim must map to an explicit value in DATA.
- No fluff, no repetition, no invented facts.
- recommendations must be exactly 3 and each must be directly executable this week.`, evidence)
}

// llmPayload is the expected shape of the model's JSON answer
type llmPayload struct {
	WhatCompetitorsDoBetter string   `json:"what_competitors_do_better"`
	ContentGaps             string   `json:"content_gaps"`
	BestTimeToPost          string   `json:"best_time_to_post"`
	Recommendations         []string `json:"recommendations"`
}

// parsePayload decodes the raw completion; any decode failure marks the
// whole payload invalid and the caller serves the baseline.
func parsePayload(raw string) (llmPayload, error) {
	var payload llmPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return llmPayload{}, fmt.Errorf("decode insight payload: %w", err)
	}
	return payload, nil
}

// merge applies per-key fallback: each narrative field falls back to the
// baseline when absent or blank, and the recommendation list is replaced
// wholesale unless it holds at least 3 non-empty entries (then truncated
// to exactly 3).
func merge(payload llmPayload, baseline api.InsightsResponse) api.InsightsResponse {
	pick := func(value, fallback string) string {
		if strings.TrimSpace(value) == "" {
			return fallback
		}
		return value
	}

	recs := make([]string, 0, len(payload.Recommendations))
	for _, r := range payload.Recommendations {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			recs = append(recs, trimmed)
		}
	}
	if len(recs) < 3 {
		recs = baseline.Recommendations
	} else {
		recs = recs[:3]
	}

	return api.InsightsResponse{
		WhatCompetitorsDoBetter: pick(payload.WhatCompetitorsDoBetter, baseline.WhatCompetitorsDoBetter),
		ContentGaps:             pick(payload.ContentGaps, baseline.ContentGaps),
		BestTimeToPost:          pick(payload.BestTimeToPost, baseline.BestTimeToPost),
		Recommendations:         recs,
	}
}
