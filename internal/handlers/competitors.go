package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiox2004/GapSight/internal/analytics"
	"github.com/hiox2004/GapSight/internal/store"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
	"github.com/hiox2004/GapSight/pkg/models"
)

// ListCompetitors returns the raw competitor rows for the brand
func (h *Handlers) ListCompetitors(c *gin.Context) {
	start := h.now()
	defer h.observe("competitor_list", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []models.Competitor{})
		return
	}
	if err != nil {
		h.fail(c, "competitor_list", "Failed to fetch competitors", err)
		return
	}

	comps, err := h.store.Competitors(ctx, userID)
	if err != nil {
		h.fail(c, "competitor_list", "Failed to fetch competitors", err)
		return
	}
	if comps == nil {
		comps = []models.Competitor{}
	}
	h.count("competitor_list", "success")
	c.JSON(http.StatusOK, comps)
}

// CompareCompetitors returns followers and engagement for the brand and
// every competitor with a metric snapshot, brand first
func (h *Handlers) CompareCompetitors(c *gin.Context) {
	start := h.now()
	defer h.observe("competitor_compare", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []api.ComparisonRow{})
		return
	}
	if err != nil {
		h.fail(c, "competitor_compare", "Failed to compare competitors", err)
		return
	}

	latest, err := h.store.LatestFollowerCount(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.fail(c, "competitor_compare", "Failed to compare competitors", err)
		return
	}

	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		h.fail(c, "competitor_compare", "Failed to compare competitors", err)
		return
	}

	snapshots, err := h.competitorSnapshots(ctx, userID)
	if err != nil {
		h.fail(c, "competitor_compare", "Failed to compare competitors", err)
		return
	}

	h.count("competitor_compare", "success")
	c.JSON(http.StatusOK, analytics.Comparison(latest, posts, snapshots))
}

// CompetitorGrowth returns weekly-sampled follower series for the brand
// and each competitor, for the multi-line growth chart
func (h *Handlers) CompetitorGrowth(c *gin.Context) {
	start := h.now()
	defer h.observe("competitor_growth", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []api.GrowthSeries{})
		return
	}
	if err != nil {
		h.fail(c, "competitor_growth", "Failed to fetch competitor growth", err)
		return
	}

	series, err := h.growthSeries(c, userID)
	if err != nil {
		h.fail(c, "competitor_growth", "Failed to fetch competitor growth", err)
		return
	}

	h.count("competitor_growth", "success")
	c.JSON(http.StatusOK, series)
}

// growthSeries assembles the brand-first named growth series
func (h *Handlers) growthSeries(c *gin.Context, userID string) ([]api.GrowthSeries, error) {
	ctx := c.Request.Context()

	history, err := h.store.FollowerHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	series := []api.GrowthSeries{{
		Name: models.BrandUsername,
		Data: emptyIfNil(analytics.WeeklyGrowthPoints(history)),
	}}

	comps, err := h.store.Competitors(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, comp := range comps {
		compHistory, err := h.store.CompetitorFollowerHistory(ctx, comp.ID)
		if err != nil {
			return nil, err
		}
		series = append(series, api.GrowthSeries{
			Name: comp.Username,
			Data: emptyIfNil(analytics.WeeklyGrowthPoints(compHistory)),
		})
	}
	return series, nil
}

// GetGaps returns the content-gap table versus every competitor that has
// a metric snapshot
func (h *Handlers) GetGaps(c *gin.Context) {
	start := h.now()
	defer h.observe("competitor_gaps", start)
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, []api.ContentGap{})
		return
	}
	if err != nil {
		h.fail(c, "competitor_gaps", "Failed to compute content gaps", err)
		return
	}

	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		h.fail(c, "competitor_gaps", "Failed to compute content gaps", err)
		return
	}

	snapshots, err := h.competitorSnapshots(ctx, userID)
	if err != nil {
		h.fail(c, "competitor_gaps", "Failed to compute content gaps", err)
		return
	}

	h.count("competitor_gaps", "success")
	c.JSON(http.StatusOK, analytics.ContentGaps(posts, snapshots))
}

func emptyIfNil(points []api.GrowthPoint) []api.GrowthPoint {
	if points == nil {
		return []api.GrowthPoint{}
	}
	return points
}
