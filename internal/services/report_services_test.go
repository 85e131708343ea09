package services

import (
	"context"
	"reflect"
	"testing"

	"dyne/salesboard/internal/common"
	"dyne/salesboard/internal/db/repositories"
	"dyne/salesboard/internal/models/dtos"
)

type fakeSalesReader struct {
	SalesReader
	trendsBucket    string
	regionRows      []repositories.RegionSum
	categoryRows    []repositories.CategorySum
	categories      []string
	regions         []string
	categoriesCalls int
	regionsCalls    int
}

func (f *fakeSalesReader) Trends(ctx context.Context, _ dtos.SalesReportFilter, bucket string) ([]dtos.TrendPoint, error) {
	f.trendsBucket = bucket
	return nil, nil
}

func (f *fakeSalesReader) RegionWise(ctx context.Context, _ dtos.SalesReportFilter) ([]repositories.RegionSum, error) {
	return f.regionRows, nil
}

func (f *fakeSalesReader) CategoryWise(ctx context.Context, _ dtos.SalesReportFilter) ([]repositories.CategorySum, error) {
	return f.categoryRows, nil
}

func (f *fakeSalesReader) Categories(ctx context.Context) ([]string, error) {
	f.categoriesCalls++
	return f.categories, nil
}

func (f *fakeSalesReader) Regions(ctx context.Context) ([]string, error) {
	f.regionsCalls++
	return f.regions, nil
}

func strPtr(s string) *string { return &s }

func TestTrendsBucketFallback(t *testing.T) {
	reader := &fakeSalesReader{}
	svc := NewSalesReportService(reader, common.NewCacheService(60, 600))

	cases := map[string]string{
		"daily":   "daily",
		"Weekly":  "weekly",
		"MONTHLY": "monthly",
		"hourly":  "daily",
		"":        "daily",
	}
	for in, want := range cases {
		if _, err := svc.Trends(context.Background(), dtos.SalesReportFilter{}, in); err != nil {
			t.Fatalf("Trends(%q): %v", in, err)
		}
		if reader.trendsBucket != want {
			t.Errorf("Trends(%q) used bucket %q, want %q", in, reader.trendsBucket, want)
		}
	}
}

func TestRegionWiseMapsMissingRegionToOther(t *testing.T) {
	reader := &fakeSalesReader{regionRows: []repositories.RegionSum{
		{Region: strPtr("South"), Revenue: 100},
		{Region: nil, Revenue: 40},
		{Region: strPtr(""), Revenue: 10},
	}}
	svc := NewSalesReportService(reader, common.NewCacheService(60, 600))

	rows, err := svc.RegionWise(context.Background(), dtos.SalesReportFilter{})
	if err != nil {
		t.Fatal(err)
	}
	want := []dtos.RegionRevenue{
		{Region: "South", Revenue: 100},
		{Region: "Other", Revenue: 40},
		{Region: "Other", Revenue: 10},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %+v, want %+v", rows, want)
	}
}

func TestCategoryWiseFiltersToAllowList(t *testing.T) {
	reader := &fakeSalesReader{categoryRows: []repositories.CategorySum{
		{Category: strPtr("Electronics"), Revenue: 500},
		{Category: strPtr(" Home&Kitchen "), Revenue: 200},
		{Category: strPtr("Bogus"), Revenue: 150},
		{Category: strPtr("OfficeProducts"), Revenue: 0},
		{Category: nil, Revenue: 90},
	}}
	svc := NewSalesReportService(reader, common.NewCacheService(60, 600))

	rows, err := svc.CategoryWise(context.Background(), dtos.SalesReportFilter{})
	if err != nil {
		t.Fatal(err)
	}
	want := []dtos.CategoryRevenue{
		{Category: "Electronics", Revenue: 500},
		{Category: "Home&Kitchen", Revenue: 200},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %+v, want %+v", rows, want)
	}
}

func TestCategoriesAllowListOrderAndCaching(t *testing.T) {
	reader := &fakeSalesReader{categories: []string{"OfficeProducts", "Electronics", "Made Up"}}
	svc := NewSalesReportService(reader, common.NewCacheService(60, 600))

	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Electronics", "OfficeProducts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Second call is served from cache.
	if _, err := svc.Categories(context.Background()); err != nil {
		t.Fatal(err)
	}
	if reader.categoriesCalls != 1 {
		t.Errorf("repository hit %d times, want 1", reader.categoriesCalls)
	}
}

func TestRegionsTrimsAndDedupes(t *testing.T) {
	reader := &fakeSalesReader{regions: []string{" South ", "South", "", "North"}}
	svc := NewSalesReportService(reader, common.NewCacheService(60, 600))

	got, err := svc.Regions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"South", "North"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

type fakeReviewsReader struct {
	ReviewsReader
	filters      *dtos.RatingsFilterOptions
	filtersCalls int
}

func (f *fakeReviewsReader) Filters(ctx context.Context) (*dtos.RatingsFilterOptions, error) {
	f.filtersCalls++
	return f.filters, nil
}

func TestRatingsFiltersCached(t *testing.T) {
	reader := &fakeReviewsReader{filters: &dtos.RatingsFilterOptions{
		Categories: []string{"Electronics"},
		Ratings:    []float64{3.9, 4.5},
	}}
	svc := NewRatingsReportService(reader, common.NewCacheService(60, 600))

	for i := 0; i < 3; i++ {
		got, err := svc.Filters(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, reader.filters) {
			t.Errorf("got %+v, want %+v", got, reader.filters)
		}
	}
	if reader.filtersCalls != 1 {
		t.Errorf("repository hit %d times, want 1", reader.filtersCalls)
	}
}
