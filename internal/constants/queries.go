package constants

// ReviewCategoryExpr normalizes a pipe-delimited category to its first
// segment, falling back to the raw value when the first segment is empty.
const ReviewCategoryExpr = "COALESCE(NULLIF(TRIM(SPLIT_PART(category, '|', 1)), ''), category)"

const (
	InsertSale = `
	INSERT INTO sales (order_date, product_name, category, region, quantity, price, total_amount)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	InsertReview = `
	INSERT INTO product_reviews (product_id, product_name, category, discounted_price, actual_price,
		discount_percentage, rating, rating_count, about_product, user_name, review_title, review_content)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	TruncateSales = `
	TRUNCATE TABLE sales RESTART IDENTITY
	`

	TruncateReviews = `
	TRUNCATE TABLE product_reviews RESTART IDENTITY
	`

	SelectSalesCategories = `
	SELECT DISTINCT TRIM(category) AS category
	FROM sales
	WHERE category IS NOT NULL AND TRIM(category) != '' AND LENGTH(TRIM(category)) > 0
	`

	SelectSalesRegions = `
	SELECT DISTINCT TRIM(region) AS region FROM sales
	WHERE region IS NOT NULL AND TRIM(region) != ''
	ORDER BY region
	`
)

// SalesWhereClause is appended to every filtered sales report query.
// Parameters are always bound in the same order: startDate, endDate,
// category, region. Empty filters collapse to no-ops inside SQL so the
// statement shape never changes.
const SalesWhereClause = `
	WHERE order_date >= $1::date AND order_date <= $2::date
	AND ($3::text IS NULL OR $3 = '' OR category = $3)
	AND ($4::text IS NULL OR $4 = '' OR region = $4)
`
