package api

import (
	"net/http"
	"strings"

	"dyne/salesboard/internal/ingest"
	"dyne/salesboard/internal/models/dtos"
	"dyne/salesboard/internal/services"
)

func parseSalesFilter(r *http.Request) dtos.SalesReportFilter {
	q := r.URL.Query()
	f := dtos.SalesReportFilter{
		StartDate: strings.TrimSpace(q.Get("startDate")),
		EndDate:   strings.TrimSpace(q.Get("endDate")),
	}
	if category := strings.TrimSpace(q.Get("category")); category != "" {
		f.Category = &category
	}
	if region := strings.TrimSpace(q.Get("region")); region != "" {
		f.Region = &region
	}
	return f
}

// validateDateRange writes a 400 and returns false when the range is
// missing, malformed, or inverted.
func validateDateRange(w http.ResponseWriter, f dtos.SalesReportFilter) bool {
	if f.StartDate == "" || f.EndDate == "" {
		respondError(w, http.StatusBadRequest, "startDate and endDate are required")
		return false
	}
	if !ingest.IsISODate(f.StartDate) {
		respondError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return false
	}
	if !ingest.IsISODate(f.EndDate) {
		respondError(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
		return false
	}
	// ISO dates order lexicographically.
	if f.StartDate > f.EndDate {
		respondError(w, http.StatusBadRequest, "startDate must be before or equal to endDate")
		return false
	}
	return true
}

// SalesSummaryHandler handles GET /api/sales/summary.
func SalesSummaryHandler(svc *services.SalesReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := parseSalesFilter(r)
		if !validateDateRange(w, f) {
			return
		}
		summary, err := svc.Summary(r.Context(), f)
		if err != nil {
			respondReportError(w, r, err, "Failed to fetch summary")
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// SalesTrendsHandler handles GET /api/sales/trends.
func SalesTrendsHandler(svc *services.SalesReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := parseSalesFilter(r)
		if !validateDateRange(w, f) {
			return
		}
		rows, err := svc.Trends(r.Context(), f, r.URL.Query().Get("type"))
		if err != nil {
			respondReportError(w, r, err, "Failed to fetch trends")
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// SalesProductWiseHandler handles GET /api/sales/product-wise.
func SalesProductWiseHandler(svc *services.SalesReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := parseSalesFilter(r)
		if !validateDateRange(w, f) {
			return
		}
		rows, err := svc.ProductWise(r.Context(), f)
		if err != nil {
			respondReportError(w, r, err, "Failed to fetch product-wise data")
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// SalesRegionWiseHandler handles GET /api/sales/region-wise.
func SalesRegionWiseHandler(svc *services.SalesReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := parseSalesFilter(r)
		if !validateDateRange(w, f) {
			return
		}
		rows, err := svc.RegionWise(r.Context(), f)
		if err != nil {
			respondReportError(w, r, err, "Failed to fetch region-wise data")
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// SalesCategoryWiseHandler handles GET /api/sales/category-wise.
func SalesCategoryWiseHandler(svc *services.SalesReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := parseSalesFilter(r)
		if !validateDateRange(w, f) {
			return
		}
		rows, err := svc.CategoryWise(r.Context(), f)
		if err != nil {
			respondReportError(w, r, err, "Failed to fetch category-wise data")
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// SalesCategoriesHandler handles GET /api/sales/categories.
func SalesCategoriesHandler(svc *services.SalesReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Categories(r.Context())
		if err != nil {
			respondReportError(w, r, err, "Failed to fetch categories")
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}

// SalesRegionsHandler handles GET /api/sales/regions.
func SalesRegionsHandler(svc *services.SalesReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Regions(r.Context())
		if err != nil {
			respondReportError(w, r, err, "Failed to fetch regions")
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}
