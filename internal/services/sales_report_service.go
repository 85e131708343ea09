package services

import (
	"context"
	"strings"
	"time"

	"dyne/salesboard/internal/common"
	"dyne/salesboard/internal/constants"
	"dyne/salesboard/internal/db/repositories"
	"dyne/salesboard/internal/models/dtos"
)

const lookupCacheTTL = 5 * time.Minute

// SalesReader is the slice of the sales repository the report service
// needs; narrowed for testability.
type SalesReader interface {
	Summary(ctx context.Context, f dtos.SalesReportFilter) (*dtos.SalesSummary, error)
	Trends(ctx context.Context, f dtos.SalesReportFilter, bucket string) ([]dtos.TrendPoint, error)
	ProductWise(ctx context.Context, f dtos.SalesReportFilter) ([]dtos.ProductRevenue, error)
	RegionWise(ctx context.Context, f dtos.SalesReportFilter) ([]repositories.RegionSum, error)
	CategoryWise(ctx context.Context, f dtos.SalesReportFilter) ([]repositories.CategorySum, error)
	Categories(ctx context.Context) ([]string, error)
	Regions(ctx context.Context) ([]string, error)
}

type SalesReportService struct {
	repo  SalesReader
	cache *common.CacheService
}

func NewSalesReportService(repo SalesReader, cache *common.CacheService) *SalesReportService {
	return &SalesReportService{repo: repo, cache: cache}
}

func (svc *SalesReportService) Summary(ctx context.Context, f dtos.SalesReportFilter) (*dtos.SalesSummary, error) {
	return svc.repo.Summary(ctx, f)
}

// Trends accepts daily, weekly, or monthly buckets; anything else falls
// back to daily.
func (svc *SalesReportService) Trends(ctx context.Context, f dtos.SalesReportFilter, bucket string) ([]dtos.TrendPoint, error) {
	bucket = strings.ToLower(bucket)
	if bucket != "weekly" && bucket != "monthly" {
		bucket = "daily"
	}
	return svc.repo.Trends(ctx, f, bucket)
}

func (svc *SalesReportService) ProductWise(ctx context.Context, f dtos.SalesReportFilter) ([]dtos.ProductRevenue, error) {
	return svc.repo.ProductWise(ctx, f)
}

// RegionWise labels records without a region as "Other".
func (svc *SalesReportService) RegionWise(ctx context.Context, f dtos.SalesReportFilter) ([]dtos.RegionRevenue, error) {
	rows, err := svc.repo.RegionWise(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.RegionRevenue, 0, len(rows))
	for _, row := range rows {
		region := "Other"
		if row.Region != nil && *row.Region != "" {
			region = *row.Region
		}
		out = append(out, dtos.RegionRevenue{Region: region, Revenue: row.Revenue})
	}
	return out, nil
}

// CategoryWise keeps only allow-listed categories with positive revenue.
func (svc *SalesReportService) CategoryWise(ctx context.Context, f dtos.SalesReportFilter) ([]dtos.CategoryRevenue, error) {
	rows, err := svc.repo.CategoryWise(ctx, f)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(constants.AllowedSalesCategories))
	for _, c := range constants.AllowedSalesCategories {
		allowed[c] = true
	}

	out := make([]dtos.CategoryRevenue, 0, len(rows))
	for _, row := range rows {
		category := "Other"
		if row.Category != nil && strings.TrimSpace(*row.Category) != "" {
			category = strings.TrimSpace(*row.Category)
		}
		if row.Revenue > 0 && allowed[category] {
			out = append(out, dtos.CategoryRevenue{Category: category, Revenue: row.Revenue})
		}
	}
	return out, nil
}

// Categories returns the allow-listed categories actually present in
// the data, in allow-list order. Cached until the next sales upload.
func (svc *SalesReportService) Categories(ctx context.Context) ([]string, error) {
	val, err := svc.cache.GetOrSet(CacheKeySalesCategories, lookupCacheTTL, func() (any, error) {
		fromDB, err := svc.repo.Categories(ctx)
		if err != nil {
			return nil, err
		}
		present := make(map[string]bool, len(fromDB))
		for _, c := range fromDB {
			if c = strings.TrimSpace(c); c != "" {
				present[c] = true
			}
		}
		list := make([]string, 0, len(constants.AllowedSalesCategories))
		for _, c := range constants.AllowedSalesCategories {
			if present[c] {
				list = append(list, c)
			}
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]string), nil
}

// Regions returns the distinct trimmed regions. Cached until the next
// sales upload.
func (svc *SalesReportService) Regions(ctx context.Context) ([]string, error) {
	val, err := svc.cache.GetOrSet(CacheKeySalesRegions, lookupCacheTTL, func() (any, error) {
		fromDB, err := svc.repo.Regions(ctx)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool, len(fromDB))
		list := make([]string, 0, len(fromDB))
		for _, region := range fromDB {
			region = strings.TrimSpace(region)
			if region == "" || seen[region] {
				continue
			}
			seen[region] = true
			list = append(list, region)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]string), nil
}
