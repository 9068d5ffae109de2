package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hiox2004/GapSight/internal/analytics"
	"github.com/hiox2004/GapSight/internal/render"
	"github.com/hiox2004/GapSight/internal/store"
	"github.com/hiox2004/GapSight/pkg/api/common"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

const pdfUnavailableMessage = "PDF generation library is not installed on the server."

// dashboardData bundles everything the dashboard report needs; the numbers
// come from the same aggregators as the JSON endpoints so exports always
// match the UI.
type dashboardData struct {
	summary    analytics.Summary
	hasSummary bool
	growth     []api.GrowthPoint
	mix        []api.ContentTypeStat
	trend      []api.TrendPoint
}

func (h *Handlers) dashboardData(ctx context.Context) (dashboardData, error) {
	var data dashboardData

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return data, nil
	}
	if err != nil {
		return data, err
	}

	history, err := h.store.FollowerHistory(ctx, userID)
	if err != nil {
		return data, err
	}
	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		return data, err
	}

	latest, err := h.store.LatestFollowerCount(ctx, userID)
	if err == nil {
		data.summary = analytics.BuildSummary(latest, history, posts, h.now())
		data.hasSummary = true
	} else if !errors.Is(err, store.ErrNotFound) {
		return data, err
	}

	data.growth = analytics.WeeklyGrowthPoints(history)
	data.mix = analytics.ContentTypeBreakdown(posts)
	data.trend = analytics.Forecast(data.growth)
	return data, nil
}

type competitorData struct {
	comps  []api.ComparisonRow
	growth []api.GrowthSeries
	gaps   []api.ContentGap
}

func (h *Handlers) competitorData(c *gin.Context) (competitorData, error) {
	var data competitorData
	ctx := c.Request.Context()

	userID, err := h.brandID(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return data, nil
	}
	if err != nil {
		return data, err
	}

	latest, err := h.store.LatestFollowerCount(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return data, err
	}
	posts, err := h.store.Posts(ctx, userID)
	if err != nil {
		return data, err
	}
	snapshots, err := h.competitorSnapshots(ctx, userID)
	if err != nil {
		return data, err
	}

	data.comps = analytics.Comparison(latest, posts, snapshots)
	data.gaps = analytics.ContentGaps(posts, snapshots)
	data.growth, err = h.growthSeries(c, userID)
	return data, err
}

func (h *Handlers) summaryRows(data dashboardData) []render.KV {
	if !data.hasSummary {
		return nil
	}
	return []render.KV{
		{Key: "follower_count", Value: strconv.Itoa(data.summary.FollowerCount)},
		{Key: "follower_growth_pct", Value: strconv.FormatFloat(data.summary.GrowthPct, 'f', -1, 64)},
		{Key: "avg_engagement", Value: strconv.FormatFloat(data.summary.AvgEngagement, 'f', -1, 64)},
		{Key: "top_content_type", Value: data.summary.TopContentType},
		{Key: "posts_per_week", Value: strconv.Itoa(data.summary.PostsThisWeek)},
	}
}

func (h *Handlers) writeCSV(c *gin.Context, report string, rows [][]string) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.WriteAll(rows); err != nil {
		h.fail(c, report, "Failed to write CSV export", err)
		return
	}

	filename := fmt.Sprintf("%s-report-%s.csv", report, h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if h.metrics != nil {
		h.metrics.ReportExports.WithLabelValues(report, "csv", "success").Inc()
	}
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handlers) writePDF(c *gin.Context, report string, pages []render.Page) {
	payload, err := h.pdf.Encode(pages)
	if err != nil {
		if h.metrics != nil {
			h.metrics.ReportExports.WithLabelValues(report, "pdf", "error").Inc()
		}
		h.fail(c, report, "Failed to render PDF export", err)
		return
	}

	filename := fmt.Sprintf("%s-report-%s.pdf", report, h.now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if h.metrics != nil {
		h.metrics.ReportExports.WithLabelValues(report, "pdf", "success").Inc()
	}
	c.Data(http.StatusOK, "application/pdf", payload)
}

// ExportDashboardCSV exports the dashboard analytics as CSV
func (h *Handlers) ExportDashboardCSV(c *gin.Context) {
	start := h.now()
	defer h.observe("dashboard_csv", start)

	data, err := h.dashboardData(c.Request.Context())
	if err != nil {
		h.fail(c, "dashboard_csv", "Failed to build dashboard export", err)
		return
	}

	h.writeCSV(c, "dashboard", render.DashboardCSV(h.summaryRows(data), data.growth, data.mix))
}

// ExportCompetitorsCSV exports comparison, growth, and gaps as CSV
func (h *Handlers) ExportCompetitorsCSV(c *gin.Context) {
	start := h.now()
	defer h.observe("competitors_csv", start)

	data, err := h.competitorData(c)
	if err != nil {
		h.fail(c, "competitors_csv", "Failed to build competitor export", err)
		return
	}

	h.writeCSV(c, "competitors", render.CompetitorsCSV(data.comps, data.growth, data.gaps))
}

// ExportDashboardPDF renders the chart-focused dashboard PDF. Answers 503
// when no PDF encoder is wired.
func (h *Handlers) ExportDashboardPDF(c *gin.Context) {
	start := h.now()
	defer h.observe("dashboard_pdf", start)

	if h.pdf == nil {
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{Error: pdfUnavailableMessage})
		return
	}

	data, err := h.dashboardData(c.Request.Context())
	if err != nil {
		h.fail(c, "dashboard_pdf", "Failed to build dashboard export", err)
		return
	}

	pages := render.DashboardReport(h.now(), data.summary, data.hasSummary, data.growth, data.mix, data.trend)
	h.writePDF(c, "dashboard", pages)
}

// ExportCompetitorsPDF renders the chart-focused competitor PDF
func (h *Handlers) ExportCompetitorsPDF(c *gin.Context) {
	start := h.now()
	defer h.observe("competitors_pdf", start)

	if h.pdf == nil {
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{Error: pdfUnavailableMessage})
		return
	}

	data, err := h.competitorData(c)
	if err != nil {
		h.fail(c, "competitors_pdf", "Failed to build competitor export", err)
		return
	}

	pages := render.CompetitorReport(h.now(), data.comps, data.growth, data.gaps)
	h.writePDF(c, "competitors", pages)
}
