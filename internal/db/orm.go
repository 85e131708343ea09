package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "dyne/salesboard/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection used for schema management.
// All query traffic goes through sqlx; GORM only owns migrations.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// Migrate creates or updates the sales and product_reviews tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Sale{}, &models.ProductReview{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
