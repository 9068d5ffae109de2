package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiox2004/GapSight/internal/render"
	"github.com/hiox2004/GapSight/internal/store"
)

func TestExportDashboardCSV(t *testing.T) {
	router := setupRouter(t, seededStore(t), nil)

	w := get(t, router, "/reports/dashboard.csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=dashboard-report-2025-04-10.csv",
		w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Dashboard Summary\r\n"))
	assert.Contains(t, body, "Metric,Value\r\n")
	assert.Contains(t, body, "follower_count,150\r\n")
	assert.Contains(t, body, "follower_growth_pct,50\r\n")
	assert.Contains(t, body, "top_content_type,Reel\r\n")
	assert.Contains(t, body, "Follower Growth\r\n")
	assert.Contains(t, body, "2025-01-01,100\r\n")
	assert.Contains(t, body, "Content Types\r\n")
	assert.Contains(t, body, "Reel,2,15\r\n")
}

func TestExportDashboardCSVMissingBrand(t *testing.T) {
	router := setupRouter(t, &fakeStore{brandErr: store.ErrNotFound}, nil)

	w := get(t, router, "/reports/dashboard.csv")
	require.Equal(t, http.StatusOK, w.Code)

	// section headers survive with no data rows
	body := w.Body.String()
	assert.Contains(t, body, "Dashboard Summary")
	assert.Contains(t, body, "Follower Growth")
	assert.Contains(t, body, "Content Types")
	assert.NotContains(t, body, "follower_count")
}

func TestExportCompetitorsCSV(t *testing.T) {
	router := setupRouter(t, seededStore(t), nil)

	w := get(t, router, "/reports/competitors.csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=competitors-report-2025-04-10.csv",
		w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Competitor Snapshot\r\n"))
	assert.Contains(t, body, "my_brand,150,12\r\n")
	assert.Contains(t, body, "brand_alpha,5000,100\r\n")
	assert.Contains(t, body, "Follower Growth Over Time\r\n")
	assert.Contains(t, body, "Content Gaps\r\n")
	assert.Contains(t, body, "Competitor,Their Top Content,Your Usage,Suggested Extra Posts\r\n")
}

func TestExportDashboardPDF(t *testing.T) {
	router := setupRouter(t, seededStore(t), render.FPDF{})

	w := get(t, router, "/reports/dashboard.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=dashboard-report-2025-04-10.pdf",
		w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportDashboardPDFMissingBrand(t *testing.T) {
	router := setupRouter(t, &fakeStore{brandErr: store.ErrNotFound}, render.FPDF{})

	w := get(t, router, "/reports/dashboard.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportCompetitorsPDF(t *testing.T) {
	router := setupRouter(t, seededStore(t), render.FPDF{})

	w := get(t, router, "/reports/competitors.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestSummaryPDFAlias(t *testing.T) {
	router := setupRouter(t, seededStore(t), render.FPDF{})

	w := get(t, router, "/reports/summary.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=dashboard-report-2025-04-10.pdf",
		w.Header().Get("Content-Disposition"))
}

func TestExportPDFWithoutEncoder(t *testing.T) {
	router := setupRouter(t, seededStore(t), nil)

	for _, path := range []string{"/reports/dashboard.pdf", "/reports/competitors.pdf", "/reports/summary.pdf"} {
		w := get(t, router, path)
		require.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.JSONEq(t, `{"error": "PDF generation library is not installed on the server."}`, w.Body.String())
	}
}
