package dtos

// UploadResult reports the outcome of one file ingestion.
type UploadResult struct {
	RecordsInserted int  `json:"recordsInserted"`
	Replaced        bool `json:"replaced"`
}

// SalesSummary aggregates revenue and quantity over a date range.
type SalesSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalQuantity int64   `json:"totalQuantity"`
}

// TrendPoint is one bucket of the revenue trend series.
type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// ProductRevenue carries the product name twice because older clients
// read "product" while newer ones read "product_name".
type ProductRevenue struct {
	ProductName string  `json:"product_name"`
	Product     string  `json:"product"`
	Revenue     float64 `json:"revenue"`
}

type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}

type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// CategoryCount is one row of the products-per-category report.
type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}

// ReviewedProduct is one row of the top-reviewed report.
type ReviewedProduct struct {
	Name        string `json:"name" db:"name"`
	ReviewCount int    `json:"review_count" db:"review_count"`
}

// DiscountBucket is one 10%-wide bucket of the discount distribution.
type DiscountBucket struct {
	Bucket string `json:"bucket" db:"bucket"`
	Count  int    `json:"count" db:"count"`
}

type CategoryRating struct {
	Category  string  `json:"category" db:"category"`
	AvgRating float64 `json:"avg_rating" db:"avg_rating"`
}

// ReviewListItem is one row of the paginated product listing.
type ReviewListItem struct {
	ID                 int64    `json:"id" db:"id"`
	ProductID          *string  `json:"product_id" db:"product_id"`
	ProductName        string   `json:"product_name" db:"product_name"`
	Category           *string  `json:"category" db:"category"`
	DiscountedPrice    *float64 `json:"discounted_price" db:"discounted_price"`
	ActualPrice        *float64 `json:"actual_price" db:"actual_price"`
	DiscountPercentage *float64 `json:"discount_percentage" db:"discount_percentage"`
	Rating             *float64 `json:"rating" db:"rating"`
	RatingCount        *int64   `json:"rating_count" db:"rating_count"`
	ReviewPreview      *string  `json:"review_preview" db:"review_preview"`
}

// ReviewListPage wraps a listing page with pagination metadata.
type ReviewListPage struct {
	Data       []ReviewListItem `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// RatingsFilterOptions backs the filter dropdowns of the ratings UI.
type RatingsFilterOptions struct {
	Categories []string  `json:"categories"`
	Ratings    []float64 `json:"ratings"`
}
