// Command gapsight-seed populates the database with a demo brand account,
// ninety days of follower history and posts, and three competitors. It is
// idempotent per run only in the sense that it always inserts fresh rows;
// point it at an empty database.
package main

import (
	"context"
	"time"

	"github.com/hiox2004/GapSight/internal/store"
	"github.com/hiox2004/GapSight/pkg/config"
	"github.com/hiox2004/GapSight/pkg/database"
	"github.com/hiox2004/GapSight/pkg/logging"
)

func main() {
	logger := logging.NewLoggerWithService("gapsight-seed")
	config.LoadEnv(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbConfig := database.DefaultConfig()
	dbConfig.URL = config.RequireEnv("DATABASE_URL")
	db := database.MustConnect(ctx, dbConfig, logger)
	defer db.Close()

	if err := store.NewPostgres(db).Seed(ctx, logger); err != nil {
		logger.WithError(err).Fatal("Seeding failed")
	}
	logger.Info("Seeding complete")
}
