// Package gapsight holds the wire types of the public API. Field names,
// ordering, and section headers are consumed by an existing dashboard UI
// and must stay stable.
package gapsight

// SummaryResponse is the response from GET /analytics/summary.
// posts_per_week here is the count of posts published in the trailing
// 7 days, not a history-wide average (the insight summary carries that
// second definition separately).
type SummaryResponse struct {
	FollowerCount     int     `json:"follower_count"`
	FollowerGrowthPct float64 `json:"follower_growth_pct"`
	AvgEngagement     float64 `json:"avg_engagement"`
	TopContentType    string  `json:"top_content_type"`
	PostsPerWeek      int     `json:"posts_per_week"`
}

// GrowthPoint is one weekly-sampled follower data point
type GrowthPoint struct {
	Date      string `json:"date"`
	Followers int    `json:"followers"`
}

// ContentTypeStat is one row of GET /analytics/content-types
type ContentTypeStat struct {
	ContentType   string  `json:"content_type"`
	Count         int     `json:"count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// FrequencyBucket is one row of GET /analytics/frequency-correlation.
// The field is named "week" for UI compatibility although the grouping
// key is a calendar month ("YYYY-MM").
type FrequencyBucket struct {
	Week          string  `json:"week"`
	PostCount     int     `json:"post_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// Trend point kinds
const (
	TrendActual    = "actual"
	TrendPredicted = "predicted"
)

// TrendPoint is one row of GET /analytics/trend-prediction
type TrendPoint struct {
	Date      string `json:"date"`
	Followers int    `json:"followers"`
	Type      string `json:"type"`
}

// ComparisonRow is one row of GET /competitors/compare; the brand row is
// always first
type ComparisonRow struct {
	Username      string  `json:"username"`
	FollowerCount int     `json:"follower_count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// GrowthSeries is one named series of GET /competitors/growth
type GrowthSeries struct {
	Name string        `json:"name"`
	Data []GrowthPoint `json:"data"`
}

// ContentGap is one row of GET /competitors/gaps
type ContentGap struct {
	Competitor      string `json:"competitor"`
	TheirTopContent string `json:"their_top_content"`
	YourUsage       int    `json:"your_usage"`
	Gap             int    `json:"gap"`
	Rationale       string `json:"rationale"`
}

// Insight sources
const (
	SourceRules   = "rules"
	SourceAIRules = "ai+rules"
)

// InsightsResponse is the response from GET /insights/
type InsightsResponse struct {
	WhatCompetitorsDoBetter string   `json:"what_competitors_do_better"`
	ContentGaps             string   `json:"content_gaps"`
	BestTimeToPost          string   `json:"best_time_to_post"`
	Recommendations         []string `json:"recommendations"`
	Source                  string   `json:"source"`
}

// Workflow is one row of GET /insights/workflows
type Workflow struct {
	Name    string `json:"name"`
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
}
