package gorm

import "time"

// Sale is the GORM model backing the sales table. AutoMigrate owns the
// schema; all reads and writes go through the sqlx repositories.
type Sale struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderDate   time.Time `gorm:"column:order_date;type:date;not null;index"`
	ProductName string    `gorm:"column:product_name;type:varchar(255);not null"`
	Category    *string   `gorm:"column:category;type:varchar(100);index"`
	Region      *string   `gorm:"column:region;type:varchar(100);index"`
	Quantity    int       `gorm:"column:quantity;not null;default:1"`
	Price       float64   `gorm:"column:price;type:numeric(12,2);not null"`
	TotalAmount float64   `gorm:"column:total_amount;type:numeric(14,2);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Sale) TableName() string {
	return "sales"
}
