package routes

import (
	"dyne/salesboard/internal/api"
	"dyne/salesboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the upload and report routes. Upload
// routes sit behind a per-IP rate limit; report routes do not.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api/sales", func(sales chi.Router) {
		sales.Group(func(upload chi.Router) {
			upload.Use(middleware.UploadRateLimitMiddleware)
			upload.Post("/upload", api.SalesUploadHandler(deps.Services.Ingest))
		})

		sales.Get("/summary", api.SalesSummaryHandler(deps.Services.SalesReports))
		sales.Get("/trends", api.SalesTrendsHandler(deps.Services.SalesReports))
		sales.Get("/product-wise", api.SalesProductWiseHandler(deps.Services.SalesReports))
		sales.Get("/region-wise", api.SalesRegionWiseHandler(deps.Services.SalesReports))
		sales.Get("/category-wise", api.SalesCategoryWiseHandler(deps.Services.SalesReports))
		sales.Get("/categories", api.SalesCategoriesHandler(deps.Services.SalesReports))
		sales.Get("/regions", api.SalesRegionsHandler(deps.Services.SalesReports))
	})

	r.Route("/api/ratings", func(ratings chi.Router) {
		ratings.Group(func(upload chi.Router) {
			upload.Use(middleware.UploadRateLimitMiddleware)
			upload.Post("/upload", api.RatingsUploadHandler(deps.Services.Ingest))
		})

		ratings.Get("/products-per-category", api.RatingsProductsPerCategoryHandler(deps.Services.RatingReports))
		ratings.Get("/top-reviewed", api.RatingsTopReviewedHandler(deps.Services.RatingReports))
		ratings.Get("/discount-distribution", api.RatingsDiscountDistributionHandler(deps.Services.RatingReports))
		ratings.Get("/category-avg-rating", api.RatingsCategoryAvgRatingHandler(deps.Services.RatingReports))
		ratings.Get("/list", api.RatingsListHandler(deps.Services.RatingReports))
		ratings.Get("/filters", api.RatingsFiltersHandler(deps.Services.RatingReports))
	})
}
