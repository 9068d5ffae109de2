package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiox2004/GapSight/internal/analytics"
	"github.com/hiox2004/GapSight/internal/insights"
	"github.com/hiox2004/GapSight/internal/store"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

// insightEvidence gathers the numeric summary and gap table the
// synthesizer works from. A missing brand yields a zero summary, not an
// error.
func (h *Handlers) insightEvidence(ctx context.Context) (analytics.InsightSummary, []api.ContentGap, error) {
	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return analytics.InsightSummary{TopContentType: "N/A", CompetitorTopContents: []string{}}, nil, nil
	}
	if err != nil {
		return analytics.InsightSummary{}, nil, err
	}

	latest, err := h.store.LatestFollowerCount(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return analytics.InsightSummary{}, nil, err
	}

	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		return analytics.InsightSummary{}, nil, err
	}

	snapshots, err := h.competitorSnapshots(ctx, userID)
	if err != nil {
		return analytics.InsightSummary{}, nil, err
	}

	summary := analytics.BuildInsightSummary(latest, posts, snapshots)
	gaps := analytics.ContentGaps(posts, snapshots)
	return summary, gaps, nil
}

// GetInsights returns the narrative insight object; the optional LLM
// rewrite degrades to the rule-based baseline on any failure
func (h *Handlers) GetInsights(c *gin.Context) {
	start := h.now()
	defer h.observe("insights", start)
	ctx := c.Request.Context()

	summary, gaps, err := h.insightEvidence(ctx)
	if err != nil {
		h.fail(c, "insights", "Failed to compute insights", err)
		return
	}

	result := h.synth.Synthesize(ctx, summary, gaps)
	if h.metrics != nil {
		h.metrics.InsightRequests.WithLabelValues(result.Source).Inc()
	}
	h.count("insights", "success")
	c.JSON(http.StatusOK, result)
}

// GetWorkflows returns rule-derived weekly action workflows; evidence
// failures fall back to the static default workflow
func (h *Handlers) GetWorkflows(c *gin.Context) {
	start := h.now()
	defer h.observe("workflows", start)

	summary, gaps, err := h.insightEvidence(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("Workflow evidence unavailable, serving fallback workflow")
		c.JSON(http.StatusOK, insights.FallbackWorkflow())
		return
	}

	h.count("workflows", "success")
	c.JSON(http.StatusOK, insights.Workflows(summary, gaps))
}
