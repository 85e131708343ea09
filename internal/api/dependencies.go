package api

import (
	"dyne/salesboard/internal/common"
	"dyne/salesboard/internal/db"
	"dyne/salesboard/internal/db/repositories"
	"dyne/salesboard/internal/metrics"
	"dyne/salesboard/internal/services"
)

type Repositories struct {
	Sales   *repositories.SalesRepository
	Reviews *repositories.ReviewsRepository
}

type Services struct {
	Cache         *common.CacheService
	Ingest        *services.IngestService
	SalesReports  *services.SalesReportService
	RatingReports *services.RatingsReportService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Sales:   repositories.NewSalesRepository(db.DB, metricsReg),
		Reviews: repositories.NewReviewsRepository(db.DB, metricsReg),
	}

	cacheSvc := common.NewCacheService(300, 600)

	svcs := &Services{
		Cache:         cacheSvc,
		Ingest:        services.NewIngestService(repos.Sales, repos.Reviews, cacheSvc, metricsReg),
		SalesReports:  services.NewSalesReportService(repos.Sales, cacheSvc),
		RatingReports: services.NewRatingsReportService(repos.Reviews, cacheSvc),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
