package main

import (
	"context"

	"github.com/hiox2004/GapSight/internal/handlers"
	"github.com/hiox2004/GapSight/internal/insights"
	"github.com/hiox2004/GapSight/internal/metrics"
	"github.com/hiox2004/GapSight/internal/render"
	"github.com/hiox2004/GapSight/internal/store"
	"github.com/hiox2004/GapSight/pkg/config"
	"github.com/hiox2004/GapSight/pkg/database"
	"github.com/hiox2004/GapSight/pkg/llm"
	"github.com/hiox2004/GapSight/pkg/logging"
	"github.com/hiox2004/GapSight/pkg/monitoring"
	"github.com/hiox2004/GapSight/pkg/server"
)

const serviceName = "gapsight"

// Set at build time via -ldflags
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	logger := logging.NewLoggerWithService(serviceName)
	config.LoadEnv(logger)

	databaseURL := config.RequireEnv("DATABASE_URL")

	dbConfig := database.DefaultConfig()
	dbConfig.URL = databaseURL
	db := database.MustConnect(context.Background(), dbConfig, logger)
	defer db.Close()

	pg := store.NewPostgres(db)
	st := store.WithRetry(pg, logger)

	llmConfig := llm.LoadConfig()
	var provider llm.Provider
	if llmConfig.Configured() {
		p, err := llm.NewProvider(llmConfig)
		if err != nil {
			logger.WithError(err).Warn("LLM provider misconfigured, insights fall back to rules")
		} else {
			provider = p
			logger.WithFields(logging.Fields{
				"provider": llmConfig.Provider,
				"model":    llmConfig.Model,
			}).Info("LLM provider enabled")
		}
	} else {
		logger.Info("No LLM provider configured, insights use rule-based baseline only")
	}
	synth := insights.NewSynthesizer(provider, logger)

	healthChecker := monitoring.NewHealthChecker(serviceName, version)
	healthChecker.AddCheck("postgres", monitoring.DatabaseHealthCheck(db))
	healthChecker.AddCheck("configuration", monitoring.ConfigurationHealthCheck(map[string]string{
		"DATABASE_URL": databaseURL,
	}))

	collector := monitoring.NewMetricsCollector(serviceName, version, commit)
	serviceMetrics := &metrics.Metrics{
		AnalyticsQueries: collector.NewCounter("analytics_queries_total",
			"Analytics queries served, by query type and status",
			[]string{"query_type", "status"}),
		QueryDuration: collector.NewHistogram("query_duration_seconds",
			"Analytics query handling duration in seconds",
			[]string{"query_type"}, nil),
		ReportExports: collector.NewCounter("report_exports_total",
			"Report exports served, by report, format, and status",
			[]string{"report", "format", "status"}),
		InsightRequests: collector.NewCounter("insight_requests_total",
			"Insight requests served, by synthesis source",
			[]string{"source"}),
	}

	router := server.SetupServiceRouter(logger, serviceName, healthChecker, collector)

	h := handlers.New(handlers.Config{
		Store:       st,
		Synthesizer: synth,
		PDF:         render.FPDF{},
		Logger:      logger,
		Metrics:     serviceMetrics,
	})
	h.Register(router)

	cfg := server.DefaultConfig(serviceName, "8000")
	if err := server.Start(cfg, router, logger); err != nil {
		logger.WithError(err).Fatal("Server error")
	}
}
