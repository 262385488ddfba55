package main

import (
	"context"
	"flag"
	"os"

	"github.com/news-aggregator-api/internal/config"
	"github.com/news-aggregator-api/internal/database"
	"github.com/news-aggregator-api/internal/models"
	"github.com/news-aggregator-api/internal/repository"
	"github.com/news-aggregator-api/internal/seed"
	"github.com/news-aggregator-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	dataDir := flag.String("data", cfg.Seed.DataDir, "directory holding topics.json, users.json, articles.json and comments.json")
	rebuild := flag.Bool("rebuild", false, "roll back every migration before migrating up")
	flag.Parse()

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if *rebuild {
		if err := db.MigrateDown(cfg.Database.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to roll back migrations")
		}
	}
	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	fixtures, err := seed.LoadFixtures(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *dataDir).Msg("Failed to load fixtures")
	}

	report, err := seed.New(repository.New(db), log).Run(context.Background(), fixtures)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	if code := exitCode(report); code != 0 {
		log.Warn().Int("failed", report.Failed).Msg("Some fixtures were rejected")
		os.Exit(code)
	}
}

// exitCode is non-zero when any fixture was rejected
func exitCode(report *models.SeedReport) int {
	if report == nil || report.Failed > 0 {
		return 1
	}
	return 0
}
