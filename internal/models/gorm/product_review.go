package gorm

import "time"

// ProductReview is the GORM model backing the product_reviews table.
type ProductReview struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID          *string   `gorm:"column:product_id;type:varchar(100)"`
	ProductName        string    `gorm:"column:product_name;type:varchar(500);not null"`
	Category           *string   `gorm:"column:category;type:varchar(200);index"`
	DiscountedPrice    *float64  `gorm:"column:discounted_price;type:numeric(12,2)"`
	ActualPrice        *float64  `gorm:"column:actual_price;type:numeric(12,2)"`
	DiscountPercentage *float64  `gorm:"column:discount_percentage;type:numeric(8,4)"`
	Rating             *float64  `gorm:"column:rating;type:numeric(3,1);index"`
	RatingCount        *int64    `gorm:"column:rating_count"`
	AboutProduct       *string   `gorm:"column:about_product;type:varchar(5000)"`
	UserName           *string   `gorm:"column:user_name;type:varchar(500)"`
	ReviewTitle        *string   `gorm:"column:review_title;type:varchar(1000)"`
	ReviewContent      *string   `gorm:"column:review_content;type:varchar(5000)"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ProductReview) TableName() string {
	return "product_reviews"
}
