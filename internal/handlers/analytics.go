package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiox2004/GapSight/internal/analytics"
	"github.com/hiox2004/GapSight/internal/store"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

// GetSummary returns the brand follower summary. A missing brand user or
// empty follower history answers with an empty object, matching the
// existing consumer's expectations.
func (h *Handlers) GetSummary(c *gin.Context) {
	start := h.now()
	defer h.observe("summary", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		h.count("summary", "empty")
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		h.fail(c, "summary", "Failed to fetch analytics summary", err)
		return
	}

	latest, err := h.store.LatestFollowerCount(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		h.count("summary", "empty")
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		h.fail(c, "summary", "Failed to fetch analytics summary", err)
		return
	}

	history, err := h.store.FollowerHistory(ctx, userID)
	if err != nil {
		h.fail(c, "summary", "Failed to fetch analytics summary", err)
		return
	}
	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		h.fail(c, "summary", "Failed to fetch analytics summary", err)
		return
	}

	summary := analytics.BuildSummary(latest, history, posts, h.now())
	h.count("summary", "success")
	c.JSON(http.StatusOK, api.SummaryResponse{
		FollowerCount:     summary.FollowerCount,
		FollowerGrowthPct: summary.GrowthPct,
		AvgEngagement:     summary.AvgEngagement,
		TopContentType:    summary.TopContentType,
		PostsPerWeek:      summary.PostsThisWeek,
	})
}

// GetFollowerGrowth returns the weekly-sampled follower series
func (h *Handlers) GetFollowerGrowth(c *gin.Context) {
	start := h.now()
	defer h.observe("followers", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []api.GrowthPoint{})
		return
	}
	if err != nil {
		h.fail(c, "followers", "Failed to fetch follower growth", err)
		return
	}

	history, err := h.store.FollowerHistory(ctx, userID)
	if err != nil {
		h.fail(c, "followers", "Failed to fetch follower growth", err)
		return
	}

	points := analytics.WeeklyGrowthPoints(history)
	if points == nil {
		points = []api.GrowthPoint{}
	}
	h.count("followers", "success")
	c.JSON(http.StatusOK, points)
}

// GetContentTypes returns the content-type breakdown of the brand's posts
func (h *Handlers) GetContentTypes(c *gin.Context) {
	start := h.now()
	defer h.observe("content_types", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []api.ContentTypeStat{})
		return
	}
	if err != nil {
		h.fail(c, "content_types", "Failed to fetch content types", err)
		return
	}

	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		h.fail(c, "content_types", "Failed to fetch content types", err)
		return
	}

	h.count("content_types", "success")
	c.JSON(http.StatusOK, analytics.ContentTypeBreakdown(posts))
}

// GetFrequencyCorrelation returns monthly post count vs average engagement
func (h *Handlers) GetFrequencyCorrelation(c *gin.Context) {
	start := h.now()
	defer h.observe("frequency_correlation", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []api.FrequencyBucket{})
		return
	}
	if err != nil {
		h.fail(c, "frequency_correlation", "Failed to fetch frequency correlation", err)
		return
	}

	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		h.fail(c, "frequency_correlation", "Failed to fetch frequency correlation", err)
		return
	}

	h.count("frequency_correlation", "success")
	c.JSON(http.StatusOK, analytics.FrequencyCorrelation(posts))
}

// GetTrendPrediction returns the weekly follower series extended with a
// 4-week least-squares forecast
func (h *Handlers) GetTrendPrediction(c *gin.Context) {
	start := h.now()
	defer h.observe("trend_prediction", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []api.TrendPoint{})
		return
	}
	if err != nil {
		h.fail(c, "trend_prediction", "Failed to fetch trend prediction", err)
		return
	}

	history, err := h.store.FollowerHistory(ctx, userID)
	if err != nil {
		h.fail(c, "trend_prediction", "Failed to fetch trend prediction", err)
		return
	}

	h.count("trend_prediction", "success")
	c.JSON(http.StatusOK, analytics.Forecast(analytics.WeeklyGrowthPoints(history)))
}
