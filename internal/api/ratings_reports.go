package api

import (
	"net/http"
	"strconv"
	"strings"

	"dyne/salesboard/internal/models/dtos"
	"dyne/salesboard/internal/services"
)

func parseRatingsFilter(r *http.Request) dtos.RatingsFilter {
	q := r.URL.Query()
	var f dtos.RatingsFilter
	if category := strings.TrimSpace(q.Get("category")); category != "" {
		f.Category = &category
	}
	if raw := q.Get("ratingMin"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.RatingMin = &v
		}
	}
	if raw := q.Get("ratingMax"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.RatingMax = &v
		}
	}
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		f.Search = &search
	}
	return f
}

// intParam parses a positive integer query parameter, clamping it to
// [min, max] and defaulting when absent or unparseable.
func intParam(r *http.Request, name string, def, min, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v == 0 {
		v = def
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// RatingsProductsPerCategoryHandler handles GET /api/ratings/products-per-category.
func RatingsProductsPerCategoryHandler(svc *services.RatingsReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ProductsPerCategory(r.Context(), parseRatingsFilter(r))
		if err != nil {
			respondReportError(w, r, err, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// RatingsTopReviewedHandler handles GET /api/ratings/top-reviewed.
func RatingsTopReviewedHandler(svc *services.RatingsReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := intParam(r, "limit", 20, 1, 50)
		rows, err := svc.TopReviewed(r.Context(), parseRatingsFilter(r), limit)
		if err != nil {
			respondReportError(w, r, err, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// RatingsDiscountDistributionHandler handles GET /api/ratings/discount-distribution.
func RatingsDiscountDistributionHandler(svc *services.RatingsReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.DiscountDistribution(r.Context(), parseRatingsFilter(r))
		if err != nil {
			respondReportError(w, r, err, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// RatingsCategoryAvgRatingHandler handles GET /api/ratings/category-avg-rating.
func RatingsCategoryAvgRatingHandler(svc *services.RatingsReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.CategoryAvgRating(r.Context(), parseRatingsFilter(r))
		if err != nil {
			respondReportError(w, r, err, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// RatingsListHandler handles GET /api/ratings/list.
func RatingsListHandler(svc *services.RatingsReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := intParam(r, "page", 1, 1, 1<<30)
		limit := intParam(r, "limit", 10, 1, 100)
		result, err := svc.List(r.Context(), parseRatingsFilter(r), page, limit)
		if err != nil {
			respondReportError(w, r, err, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// RatingsFiltersHandler handles GET /api/ratings/filters.
func RatingsFiltersHandler(svc *services.RatingsReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := svc.Filters(r.Context())
		if err != nil {
			respondReportError(w, r, err, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, opts)
	}
}
