package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"dyne/salesboard/internal/constants"
	"dyne/salesboard/internal/metrics"
	"dyne/salesboard/internal/models/dtos"
	"dyne/salesboard/internal/models/entities"
)

type SalesRepository struct {
	db  *sqlx.DB
	reg *metrics.MetricsRegistry
}

func NewSalesRepository(db *sqlx.DB, reg *metrics.MetricsRegistry) *SalesRepository {
	return &SalesRepository{db: db, reg: reg}
}

func (r *SalesRepository) count(queryType string) {
	if r.reg != nil {
		r.reg.DBQueriesTotal.WithLabelValues(queryType).Inc()
	}
}

// InsertSales persists a mapped batch. With replace set, the table is
// truncated (identity reset) first. Truncate and inserts share one
// transaction, so a failed batch never leaves the table half-swapped.
func (r *SalesRepository) InsertSales(ctx context.Context, rows []entities.SalesRecord, replace bool) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin sales batch: %w", err)
	}
	defer tx.Rollback()

	if replace {
		r.count("truncate_sales")
		if _, err := tx.ExecContext(ctx, constants.TruncateSales); err != nil {
			return 0, fmt.Errorf("truncate sales: %w", err)
		}
	}

	inserted := 0
	for _, row := range rows {
		r.count("insert_sale")
		if _, err := tx.ExecContext(ctx, constants.InsertSale,
			row.OrderDate,
			row.ProductName,
			row.Category,
			row.Region,
			row.Quantity,
			row.Price,
			row.TotalAmount,
		); err != nil {
			return 0, fmt.Errorf("insert sales row %d: %w", inserted+1, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sales batch: %w", err)
	}
	return inserted, nil
}

func (r *SalesRepository) Summary(ctx context.Context, f dtos.SalesReportFilter) (*dtos.SalesSummary, error) {
	var row struct {
		TotalRevenue  float64 `db:"total_revenue"`
		TotalQuantity int64   `db:"total_quantity"`
	}
	query := `
	SELECT
		COALESCE(SUM(total_amount), 0)::float8 AS total_revenue,
		COALESCE(SUM(quantity), 0)::bigint AS total_quantity
	FROM sales` + constants.SalesWhereClause

	r.count("sales_summary")
	if err := r.db.GetContext(ctx, &row, query, f.StartDate, f.EndDate, f.Category, f.Region); err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &dtos.SalesSummary{
		TotalRevenue:  row.TotalRevenue,
		TotalQuantity: row.TotalQuantity,
	}, nil
}

// Trends buckets revenue by day, ISO week, or month. The bucket
// expression is chosen from a fixed set, never from user input.
func (r *SalesRepository) Trends(ctx context.Context, f dtos.SalesReportFilter, bucket string) ([]dtos.TrendPoint, error) {
	var dateExpr string
	switch bucket {
	case "weekly":
		dateExpr = "date_trunc('week', order_date)::date"
	case "monthly":
		dateExpr = "date_trunc('month', order_date)::date"
	default:
		dateExpr = "order_date"
	}

	query := fmt.Sprintf(`
	SELECT to_char(%s, 'YYYY-MM-DD') AS date,
		COALESCE(SUM(total_amount), 0)::float8 AS revenue
	FROM sales %s
	GROUP BY %s
	ORDER BY %s`, dateExpr, constants.SalesWhereClause, dateExpr, dateExpr)

	var rows []struct {
		Date    string  `db:"date"`
		Revenue float64 `db:"revenue"`
	}
	r.count("sales_trends")
	if err := r.db.SelectContext(ctx, &rows, query, f.StartDate, f.EndDate, f.Category, f.Region); err != nil {
		return nil, fmt.Errorf("sales trends: %w", err)
	}

	points := make([]dtos.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, dtos.TrendPoint{Date: row.Date, Revenue: row.Revenue})
	}
	return points, nil
}

func (r *SalesRepository) ProductWise(ctx context.Context, f dtos.SalesReportFilter) ([]dtos.ProductRevenue, error) {
	query := `
	SELECT product_name, COALESCE(SUM(total_amount), 0)::float8 AS revenue
	FROM sales` + constants.SalesWhereClause + `
	GROUP BY product_name
	ORDER BY revenue DESC`

	var rows []struct {
		ProductName string  `db:"product_name"`
		Revenue     float64 `db:"revenue"`
	}
	r.count("sales_product_wise")
	if err := r.db.SelectContext(ctx, &rows, query, f.StartDate, f.EndDate, f.Category, f.Region); err != nil {
		return nil, fmt.Errorf("sales product-wise: %w", err)
	}

	out := make([]dtos.ProductRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, dtos.ProductRevenue{
			ProductName: row.ProductName,
			Product:     row.ProductName,
			Revenue:     row.Revenue,
		})
	}
	return out, nil
}

// RegionSum is one raw region bucket; Region stays nullable so callers
// decide how to label records with no region.
type RegionSum struct {
	Region  *string `db:"region"`
	Revenue float64 `db:"revenue"`
}

func (r *SalesRepository) RegionWise(ctx context.Context, f dtos.SalesReportFilter) ([]RegionSum, error) {
	query := `
	SELECT region, COALESCE(SUM(total_amount), 0)::float8 AS revenue
	FROM sales` + constants.SalesWhereClause + `
	GROUP BY region
	ORDER BY revenue DESC`

	var rows []RegionSum
	r.count("sales_region_wise")
	if err := r.db.SelectContext(ctx, &rows, query, f.StartDate, f.EndDate, f.Category, f.Region); err != nil {
		return nil, fmt.Errorf("sales region-wise: %w", err)
	}
	return rows, nil
}

// CategorySum is one raw category bucket from the category-wise query.
type CategorySum struct {
	Category *string `db:"category"`
	Revenue  float64 `db:"revenue"`
}

func (r *SalesRepository) CategoryWise(ctx context.Context, f dtos.SalesReportFilter) ([]CategorySum, error) {
	query := `
	SELECT TRIM(category) AS category, COALESCE(SUM(total_amount), 0)::float8 AS revenue
	FROM sales` + constants.SalesWhereClause + `
	GROUP BY TRIM(category)
	ORDER BY revenue DESC`

	var rows []CategorySum
	r.count("sales_category_wise")
	if err := r.db.SelectContext(ctx, &rows, query, f.StartDate, f.EndDate, f.Category, f.Region); err != nil {
		return nil, fmt.Errorf("sales category-wise: %w", err)
	}
	return rows, nil
}

// Categories returns the distinct trimmed non-empty category values.
func (r *SalesRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	r.count("sales_categories")
	if err := r.db.SelectContext(ctx, &categories, constants.SelectSalesCategories); err != nil {
		return nil, fmt.Errorf("sales categories: %w", err)
	}
	return categories, nil
}

// Regions returns the distinct trimmed non-empty region values.
func (r *SalesRepository) Regions(ctx context.Context) ([]string, error) {
	var regions []string
	r.count("sales_regions")
	if err := r.db.SelectContext(ctx, &regions, constants.SelectSalesRegions); err != nil {
		return nil, fmt.Errorf("sales regions: %w", err)
	}
	return regions, nil
}
