package entities

import "time"

// SalesRecord is one canonical sales transaction as persisted in the
// sales table. OrderDate is always a valid YYYY-MM-DD string by the
// time a record exists; rows that cannot satisfy that are dropped
// during mapping and never reach this type.
type SalesRecord struct {
	ID          int64     `db:"id"`
	OrderDate   string    `db:"order_date"`
	ProductName string    `db:"product_name"`
	Category    *string   `db:"category"`
	Region      *string   `db:"region"`
	Quantity    int       `db:"quantity"`
	Price       float64   `db:"price"`
	TotalAmount float64   `db:"total_amount"`
	CreatedAt   time.Time `db:"created_at"`
}
