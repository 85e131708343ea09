package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"dyne/salesboard/internal/api"
	"dyne/salesboard/internal/config"
	"dyne/salesboard/internal/db"
	"dyne/salesboard/internal/logging"
	"dyne/salesboard/internal/metrics"
)

// seed loads the bundled sample datasets through the same ingestion
// pipeline the upload endpoints use, in replace mode.
func main() {
	salesPath := flag.String("sales", "data/sales.csv", "path to the sales dataset")
	ratingsPath := flag.String("ratings", "data/ratings.csv", "path to the ratings dataset")
	replace := flag.Bool("replace", true, "truncate tables before inserting")
	flag.Parse()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	if err := db.InitPostgres(cfg.DSN()); err != nil {
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	orm, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	if err := db.Migrate(orm); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	deps, err := api.InitDependencies(metrics.NewMetricsRegistry())
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	ingestSvc := deps.Services.Ingest

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		data, err := os.ReadFile(*salesPath)
		if err != nil {
			return err
		}
		result, err := ingestSvc.IngestSales(ctx, filepath.Base(*salesPath), data, *replace)
		if err != nil {
			return err
		}
		logging.Info("Sales dataset seeded",
			"path", *salesPath,
			"records_inserted", result.RecordsInserted,
		)
		return nil
	})

	g.Go(func() error {
		data, err := os.ReadFile(*ratingsPath)
		if err != nil {
			return err
		}
		result, err := ingestSvc.IngestRatings(ctx, filepath.Base(*ratingsPath), data, *replace)
		if err != nil {
			return err
		}
		logging.Info("Ratings dataset seeded",
			"path", *ratingsPath,
			"records_inserted", result.RecordsInserted,
		)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	logging.Info("Seeding complete")
}
