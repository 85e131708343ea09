package dtos

// SalesReportFilter carries the common sales report query parameters.
// StartDate and EndDate are validated YYYY-MM-DD strings; Category and
// Region are nil when the filter is not applied.
type SalesReportFilter struct {
	StartDate string
	EndDate   string
	Category  *string
	Region    *string
}

// RatingsFilter carries the common ratings report query parameters.
type RatingsFilter struct {
	Category  *string
	RatingMin *float64
	RatingMax *float64
	Search    *string
}
