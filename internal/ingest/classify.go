package ingest

import "strings"

// ClassifySales decides whether a resolved sales upload can proceed and
// whether it needs synthetic dates. A file qualifies when product_name
// and at least one of price/total_amount resolved; a qualifying file
// with no resolvable date column is accepted in synthetic-date mode
// instead of being rejected.
func ClassifySales(cols ColumnMap, headers []string) (syntheticDate bool, err error) {
	hasRequired := cols["product_name"] != "" && (cols["price"] != "" || cols["total_amount"] != "")
	if !hasRequired {
		return false, NewValidationError(
			"File must contain product_name (or product) and either price or total_amount (or discounted_price). Found columns: " +
				strings.Join(headers, ", "))
	}
	return cols["order_date"] == "", nil
}

// IsRatingsFormat reports whether the header set looks like the product
// ratings schema: a product identifier, a rating field, and a category
// field must all be present after normalization.
func IsRatingsFormat(headers []string) bool {
	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		set[NormalizeKey(h)] = true
	}
	return (set["product_id"] || set["product_name"]) &&
		(set["rating"] || set["rating_count"]) &&
		(set["category"] || set["categories"])
}
