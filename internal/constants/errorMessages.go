package constants

const (
	ErrNoFileUploaded    = "No file uploaded"
	ErrBadExtension      = "Only CSV, XLSX, and XLS files are allowed"
	ErrFileTooLarge      = "File too large (max 10MB)"
	ErrEmptyFile         = "File is empty or has no data rows"
	ErrNoValidSalesRows  = "No valid rows found. Check product_name, price/total_amount/discounted_price format."
	ErrNoValidRatingRows = "No valid rows found. Need product_name and at least category."
)

// AllowedSalesCategories drives the category dropdown and the
// category-wise report; revenue outside these buckets is not reported.
var AllowedSalesCategories = []string{
	"Computers&Accessories",
	"Electronics",
	"Home&Kitchen",
	"HomeImprovement",
	"MusicalInstruments",
	"OfficeProducts",
}
