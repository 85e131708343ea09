package ingest

import (
	"math/rand"
	"strings"
	"time"

	"dyne/salesboard/internal/constants"
	"dyne/salesboard/internal/models/entities"
)

// MapSalesRow converts one raw row into a sales record. Returns nil
// when order_date, product_name, price or total_amount is missing or
// unparseable; a nil result drops the row without touching the batch.
func MapSalesRow(row RawRow, cols ColumnMap) *entities.SalesRecord {
	orderDate := ReadString(row, cols["order_date"])
	productName := ReadString(row, cols["product_name"])
	price := ReadNumber(row, cols["price"])
	totalAmount := ReadNumber(row, cols["total_amount"])
	if orderDate == nil || productName == nil || price == nil || totalAmount == nil {
		return nil
	}

	dateStr := *orderDate
	if !IsISODate(dateStr) {
		t, ok := ParseDate(dateStr)
		if !ok {
			return nil
		}
		dateStr = t.Format(dateLayout)
	}

	quantity := 1
	if q := ReadInteger(row, cols["quantity"]); q != nil {
		quantity = int(*q)
	}

	return &entities.SalesRecord{
		OrderDate:   dateStr,
		ProductName: truncate(*productName, constants.SalesProductNameMax),
		Category:    truncatePtr(ReadString(row, cols["category"]), constants.SalesCategoryMax),
		Region:      ReadString(row, cols["region"]),
		Quantity:    quantity,
		Price:       round2(*price),
		TotalAmount: round2(*totalAmount),
	}
}

// MapSalesRowSyntheticDate is the fallback mapper for files with no
// date column. It needs only a product name and a positive price
// (falling back to total_amount), fabricates an order date uniformly at
// random inside [start, end], and persists a single-unit transaction
// where price and total_amount are always equal.
func MapSalesRowSyntheticDate(row RawRow, cols ColumnMap, start, end time.Time) *entities.SalesRecord {
	productName := ReadString(row, cols["product_name"])
	if productName == nil {
		return nil
	}
	price := ReadNumber(row, cols["price"])
	if price == nil {
		price = ReadNumber(row, cols["total_amount"])
	}
	if price == nil || *price <= 0 {
		return nil
	}
	amount := round2(*price)

	category := ReadString(row, cols["category"])
	if category != nil && strings.Contains(*category, "|") {
		// Sales path: an empty first segment drops the category entirely.
		first := strings.TrimSpace(strings.SplitN(*category, "|", 2)[0])
		if first == "" {
			category = nil
		} else {
			category = &first
		}
	}

	region := ReadString(row, cols["region"])
	if region == nil {
		online := "Online"
		region = &online
	}

	return &entities.SalesRecord{
		OrderDate:   randomDate(start, end),
		ProductName: truncate(*productName, constants.SalesProductNameMax),
		Category:    truncatePtr(category, constants.SalesCategoryMax),
		Region:      region,
		Quantity:    1,
		Price:       amount,
		TotalAmount: amount,
	}
}

// MapRatingsRow converts one raw row into a product review. Keys are
// normalized per row so any casing/spacing of the source headers works.
// Only product_name is mandatory.
func MapRatingsRow(raw RawRow) *entities.ProductReview {
	row := NormalizeRowKeys(raw)

	productName := ReadString(row, "product_name")
	if productName == nil {
		return nil
	}

	category := ReadString(row, "category")
	if category != nil && strings.Contains(*category, "|") {
		// Ratings path: an empty first segment keeps the ORIGINAL
		// untruncated value. Deliberately different from the sales path.
		first := strings.TrimSpace(strings.SplitN(*category, "|", 2)[0])
		if first != "" {
			category = &first
		}
	}

	name := truncate(*productName, constants.ReviewProductNameMax)

	return &entities.ProductReview{
		ProductID:          truncatePtr(ReadString(row, "product_id"), constants.ReviewProductIDMax),
		ProductName:        name,
		Category:           truncatePtr(category, constants.ReviewCategoryMax),
		DiscountedPrice:    ReadNumber(row, "discounted_price"),
		ActualPrice:        ReadNumber(row, "actual_price"),
		DiscountPercentage: ReadNumber(row, "discount_percentage"),
		Rating:             ReadNumber(row, "rating"),
		RatingCount:        ReadInteger(row, "rating_count"),
		AboutProduct:       truncatePtr(ReadString(row, "about_product"), constants.ReviewAboutProductMax),
		UserName:           truncatePtr(ReadString(row, "user_name"), constants.ReviewUserNameMax),
		ReviewTitle:        truncatePtr(ReadString(row, "review_title"), constants.ReviewReviewTitleMax),
		ReviewContent:      truncatePtr(ReadString(row, "review_content"), constants.ReviewReviewContentMax),
	}
}

func truncatePtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	t := truncate(*s, max)
	return &t
}

func randomDate(start, end time.Time) string {
	span := end.Unix() - start.Unix()
	if span <= 0 {
		return start.Format(dateLayout)
	}
	t := time.Unix(start.Unix()+rand.Int63n(span+1), 0).UTC()
	return t.Format(dateLayout)
}
