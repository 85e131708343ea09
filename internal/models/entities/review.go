package entities

import "time"

// ProductReview is one canonical product rating row. ProductName is
// the only mandatory field; everything else is nullable.
type ProductReview struct {
	ID                 int64     `db:"id"`
	ProductID          *string   `db:"product_id"`
	ProductName        string    `db:"product_name"`
	Category           *string   `db:"category"`
	DiscountedPrice    *float64  `db:"discounted_price"`
	ActualPrice        *float64  `db:"actual_price"`
	DiscountPercentage *float64  `db:"discount_percentage"`
	Rating             *float64  `db:"rating"`
	RatingCount        *int64    `db:"rating_count"`
	AboutProduct       *string   `db:"about_product"`
	UserName           *string   `db:"user_name"`
	ReviewTitle        *string   `db:"review_title"`
	ReviewContent      *string   `db:"review_content"`
	CreatedAt          time.Time `db:"created_at"`
}
