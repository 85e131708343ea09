package constants

// SalesColumnAliases maps each canonical sales column to the source
// header spellings accepted for it, in priority order. discounted_price
// and actual_price double as price aliases so that ratings-style
// exports can still be loaded as sales data.
var SalesColumnAliases = map[string][]string{
	"order_date":   {"order_date", "orderdate", "date", "order date"},
	"product_name": {"product_name", "productname", "product", "product name"},
	"category":     {"category", "categories"},
	"region":       {"region", "regions"},
	"quantity":     {"quantity", "qty", "qty_sold"},
	"price":        {"price", "unit_price", "unit price", "discounted_price", "actual_price"},
	"total_amount": {"total_amount", "totalamount", "total", "total amount", "revenue", "amount", "discounted_price", "actual_price"},
}

// Storage truncation limits for the sales table.
const (
	SalesProductNameMax = 255
	SalesCategoryMax    = 100
)

// Storage truncation limits for the product_reviews table.
const (
	ReviewProductIDMax     = 100
	ReviewProductNameMax   = 500
	ReviewCategoryMax      = 200
	ReviewAboutProductMax  = 5000
	ReviewUserNameMax      = 500
	ReviewReviewTitleMax   = 1000
	ReviewReviewContentMax = 5000
)
