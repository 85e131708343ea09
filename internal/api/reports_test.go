package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dyne/salesboard/internal/common"
	"dyne/salesboard/internal/models/dtos"
	"dyne/salesboard/internal/services"
)

type stubSalesReader struct {
	services.SalesReader
	summary *dtos.SalesSummary
	filter  dtos.SalesReportFilter
}

func (s *stubSalesReader) Summary(ctx context.Context, f dtos.SalesReportFilter) (*dtos.SalesSummary, error) {
	s.filter = f
	return s.summary, nil
}

func newSalesReportHandlerService(reader services.SalesReader) *services.SalesReportService {
	return services.NewSalesReportService(reader, common.NewCacheService(60, 600))
}

func TestSalesSummaryDateValidation(t *testing.T) {
	handler := SalesSummaryHandler(newSalesReportHandlerService(&stubSalesReader{}))

	cases := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{"missing both", "", "startDate and endDate are required"},
		{"missing end", "?startDate=2024-01-01", "startDate and endDate are required"},
		{"bad start", "?startDate=2024-13-01&endDate=2024-12-31", "startDate must be YYYY-MM-DD"},
		{"bad start format", "?startDate=01/01/2024&endDate=2024-12-31", "startDate must be YYYY-MM-DD"},
		{"bad end", "?startDate=2024-01-01&endDate=2024-02-30", "endDate must be YYYY-MM-DD"},
		{"inverted", "?startDate=2024-06-01&endDate=2024-01-01", "startDate must be before or equal to endDate"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/sales/summary"+tc.query, nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", tc.name, rec.Code)
			continue
		}
		if got := decodeError(t, rec); got != tc.wantMsg {
			t.Errorf("%s: error %q, want %q", tc.name, got, tc.wantMsg)
		}
	}
}

func TestSalesSummaryPassesFilter(t *testing.T) {
	reader := &stubSalesReader{summary: &dtos.SalesSummary{TotalRevenue: 1234.5, TotalQuantity: 42}}
	handler := SalesSummaryHandler(newSalesReportHandlerService(reader))

	req := httptest.NewRequest(http.MethodGet,
		"/api/sales/summary?startDate=2024-01-01&endDate=2024-12-31&category=Electronics&region=%20South%20", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var body map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if body["totalRevenue"] != 1234.5 || body["totalQuantity"] != 42 {
		t.Errorf("body = %v", body)
	}

	if reader.filter.StartDate != "2024-01-01" || reader.filter.EndDate != "2024-12-31" {
		t.Errorf("dates = %q..%q", reader.filter.StartDate, reader.filter.EndDate)
	}
	if reader.filter.Category == nil || *reader.filter.Category != "Electronics" {
		t.Errorf("category = %v, want Electronics", reader.filter.Category)
	}
	if reader.filter.Region == nil || *reader.filter.Region != "South" {
		t.Errorf("region = %v, want trimmed South", reader.filter.Region)
	}
}

type stubReviewsReader struct {
	services.ReviewsReader
	filter dtos.RatingsFilter
	page   int
	limit  int
}

func (s *stubReviewsReader) TopReviewed(ctx context.Context, f dtos.RatingsFilter, limit int) ([]dtos.ReviewedProduct, error) {
	s.filter = f
	s.limit = limit
	return []dtos.ReviewedProduct{}, nil
}

func (s *stubReviewsReader) List(ctx context.Context, f dtos.RatingsFilter, page, limit int) (*dtos.ReviewListPage, error) {
	s.filter = f
	s.page = page
	s.limit = limit
	return &dtos.ReviewListPage{Data: []dtos.ReviewListItem{}, Page: page, Limit: limit}, nil
}

func TestTopReviewedLimitClamping(t *testing.T) {
	reader := &stubReviewsReader{}
	handler := RatingsTopReviewedHandler(
		services.NewRatingsReportService(reader, common.NewCacheService(60, 600)))

	cases := map[string]int{
		"":           20,
		"?limit=5":   5,
		"?limit=500": 50,
		"?limit=0":   20,
		"?limit=abc": 20,
	}
	for query, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/ratings/top-reviewed"+query, nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%q: status %d, want 200", query, rec.Code)
		}
		if reader.limit != want {
			t.Errorf("%q: limit %d, want %d", query, reader.limit, want)
		}
	}
}

func TestRatingsListPaginationDefaults(t *testing.T) {
	reader := &stubReviewsReader{}
	handler := RatingsListHandler(
		services.NewRatingsReportService(reader, common.NewCacheService(60, 600)))

	req := httptest.NewRequest(http.MethodGet,
		"/api/ratings/list?ratingMin=4&ratingMax=4.9&search=cable&category=Electronics", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if reader.page != 1 || reader.limit != 10 {
		t.Errorf("page/limit = %d/%d, want 1/10", reader.page, reader.limit)
	}
	if reader.filter.RatingMin == nil || *reader.filter.RatingMin != 4 {
		t.Errorf("ratingMin = %v, want 4", reader.filter.RatingMin)
	}
	if reader.filter.RatingMax == nil || *reader.filter.RatingMax != 4.9 {
		t.Errorf("ratingMax = %v, want 4.9", reader.filter.RatingMax)
	}
	if reader.filter.Search == nil || *reader.filter.Search != "cable" {
		t.Errorf("search = %v, want cable", reader.filter.Search)
	}
	if reader.filter.Category == nil || *reader.filter.Category != "Electronics" {
		t.Errorf("category = %v, want Electronics", reader.filter.Category)
	}
}

func TestRatingsListLimitClamp(t *testing.T) {
	reader := &stubReviewsReader{}
	handler := RatingsListHandler(
		services.NewRatingsReportService(reader, common.NewCacheService(60, 600)))

	req := httptest.NewRequest(http.MethodGet, "/api/ratings/list?page=3&limit=900", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if reader.page != 3 || reader.limit != 100 {
		t.Errorf("page/limit = %d/%d, want 3/100", reader.page, reader.limit)
	}
}
