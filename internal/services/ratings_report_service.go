package services

import (
	"context"

	"dyne/salesboard/internal/common"
	"dyne/salesboard/internal/models/dtos"
)

// ReviewsReader is the slice of the reviews repository the report
// service needs.
type ReviewsReader interface {
	ProductsPerCategory(ctx context.Context, f dtos.RatingsFilter) ([]dtos.CategoryCount, error)
	TopReviewed(ctx context.Context, f dtos.RatingsFilter, limit int) ([]dtos.ReviewedProduct, error)
	DiscountDistribution(ctx context.Context, f dtos.RatingsFilter) ([]dtos.DiscountBucket, error)
	CategoryAvgRating(ctx context.Context, f dtos.RatingsFilter) ([]dtos.CategoryRating, error)
	List(ctx context.Context, f dtos.RatingsFilter, page, limit int) (*dtos.ReviewListPage, error)
	Filters(ctx context.Context) (*dtos.RatingsFilterOptions, error)
}

type RatingsReportService struct {
	repo  ReviewsReader
	cache *common.CacheService
}

func NewRatingsReportService(repo ReviewsReader, cache *common.CacheService) *RatingsReportService {
	return &RatingsReportService{repo: repo, cache: cache}
}

func (svc *RatingsReportService) ProductsPerCategory(ctx context.Context, f dtos.RatingsFilter) ([]dtos.CategoryCount, error) {
	return svc.repo.ProductsPerCategory(ctx, f)
}

func (svc *RatingsReportService) TopReviewed(ctx context.Context, f dtos.RatingsFilter, limit int) ([]dtos.ReviewedProduct, error) {
	return svc.repo.TopReviewed(ctx, f, limit)
}

func (svc *RatingsReportService) DiscountDistribution(ctx context.Context, f dtos.RatingsFilter) ([]dtos.DiscountBucket, error) {
	return svc.repo.DiscountDistribution(ctx, f)
}

func (svc *RatingsReportService) CategoryAvgRating(ctx context.Context, f dtos.RatingsFilter) ([]dtos.CategoryRating, error) {
	return svc.repo.CategoryAvgRating(ctx, f)
}

func (svc *RatingsReportService) List(ctx context.Context, f dtos.RatingsFilter, page, limit int) (*dtos.ReviewListPage, error) {
	return svc.repo.List(ctx, f, page, limit)
}

// Filters is cached until the next ratings upload.
func (svc *RatingsReportService) Filters(ctx context.Context) (*dtos.RatingsFilterOptions, error) {
	val, err := svc.cache.GetOrSet(CacheKeyRatingsFilters, lookupCacheTTL, func() (any, error) {
		return svc.repo.Filters(ctx)
	})
	if err != nil {
		return nil, err
	}
	return val.(*dtos.RatingsFilterOptions), nil
}
