// Package handlers wires the HTTP surface to the store and the pure
// analytics pipeline. Missing upstream entities answer with empty
// structured results; only infrastructure failures produce error
// responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hiox2004/GapSight/internal/analytics"
	"github.com/hiox2004/GapSight/internal/insights"
	"github.com/hiox2004/GapSight/internal/metrics"
	"github.com/hiox2004/GapSight/internal/render"
	"github.com/hiox2004/GapSight/internal/store"
	"github.com/hiox2004/GapSight/pkg/api/common"
	"github.com/hiox2004/GapSight/pkg/logging"
	"github.com/hiox2004/GapSight/pkg/models"
)

// Handlers carries the request-scoped dependencies. Everything is injected
// at construction; there is no package-level state.
type Handlers struct {
	store   store.Store
	synth   *insights.Synthesizer
	pdf     render.PDFEncoder
	logger  logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Config bundles the handler dependencies
type Config struct {
	Store       store.Store
	Synthesizer *insights.Synthesizer
	PDF         render.PDFEncoder
	Logger      logging.Logger
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

func New(cfg Config) *Handlers {
	h := &Handlers{
		store:   cfg.Store,
		synth:   cfg.Synthesizer,
		pdf:     cfg.PDF,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		now:     cfg.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// Register mounts all API routes on the router
func (h *Handlers) Register(router *gin.Engine) {
	a := router.Group("/analytics")
	a.GET("/summary", h.GetSummary)
	a.GET("/followers", h.GetFollowerGrowth)
	a.GET("/content-types", h.GetContentTypes)
	a.GET("/frequency-correlation", h.GetFrequencyCorrelation)
	a.GET("/trend-prediction", h.GetTrendPrediction)

	c := router.Group("/competitors")
	c.GET("/list", h.ListCompetitors)
	c.GET("/compare", h.CompareCompetitors)
	c.GET("/growth", h.CompetitorGrowth)
	c.GET("/gaps", h.GetGaps)

	i := router.Group("/insights")
	i.GET("/", h.GetInsights)
	i.GET("/workflows", h.GetWorkflows)

	r := router.Group("/reports")
	r.GET("/dashboard.csv", h.ExportDashboardCSV)
	r.GET("/competitors.csv", h.ExportCompetitorsCSV)
	r.GET("/dashboard.pdf", h.ExportDashboardPDF)
	r.GET("/competitors.pdf", h.ExportCompetitorsPDF)
	r.GET("/summary.pdf", h.ExportDashboardPDF)
}

func (h *Handlers) observe(queryType string, start time.Time) {
	if h.metrics != nil {
		h.metrics.QueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
	}
}

func (h *Handlers) count(queryType, status string) {
	if h.metrics != nil {
		h.metrics.AnalyticsQueries.WithLabelValues(queryType, status).Inc()
	}
}

func (h *Handlers) fail(c *gin.Context, queryType, message string, err error) {
	h.logger.WithError(err).Error(message)
	h.count(queryType, "error")
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: message})
}

// brandID resolves the tracked brand account. ErrNotFound passes through
// for callers that answer with an empty result.
func (h *Handlers) brandID(ctx context.Context) (string, error) {
	return h.store.BrandUserID(ctx, models.BrandUsername)
}

// competitorSnapshots fetches each competitor's latest metric, silently
// dropping competitors that have no snapshot yet.
func (h *Handlers) competitorSnapshots(ctx context.Context, ownerID string) ([]analytics.CompetitorSnapshot, error) {
	comps, err := h.store.Competitors(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	snapshots := make([]analytics.CompetitorSnapshot, 0, len(comps))
	for _, comp := range comps {
		metric, err := h.store.LatestCompetitorMetric(ctx, comp.ID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, analytics.CompetitorSnapshot{Username: comp.Username, Metric: metric})
	}
	return snapshots, nil
}
