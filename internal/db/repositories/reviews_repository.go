package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"dyne/salesboard/internal/constants"
	"dyne/salesboard/internal/metrics"
	"dyne/salesboard/internal/models/dtos"
	"dyne/salesboard/internal/models/entities"
)

type ReviewsRepository struct {
	db  *sqlx.DB
	reg *metrics.MetricsRegistry
}

func NewReviewsRepository(db *sqlx.DB, reg *metrics.MetricsRegistry) *ReviewsRepository {
	return &ReviewsRepository{db: db, reg: reg}
}

func (r *ReviewsRepository) count(queryType string) {
	if r.reg != nil {
		r.reg.DBQueriesTotal.WithLabelValues(queryType).Inc()
	}
}

// buildWhere assembles the shared ratings filter. Conditions are only
// added for filters actually present, so positional parameters are
// numbered on the fly.
func buildWhere(f dtos.RatingsFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	i := 1

	if f.Category != nil {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", constants.ReviewCategoryExpr, i))
		args = append(args, *f.Category)
		i++
	}
	if f.RatingMin != nil {
		conditions = append(conditions, fmt.Sprintf("rating >= $%d", i))
		args = append(args, *f.RatingMin)
		i++
	}
	if f.RatingMax != nil {
		conditions = append(conditions, fmt.Sprintf("rating <= $%d", i))
		args = append(args, *f.RatingMax)
		i++
	}
	if f.Search != nil {
		conditions = append(conditions, fmt.Sprintf("product_name ILIKE $%d", i))
		args = append(args, "%"+*f.Search+"%")
		i++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// InsertReviews persists a mapped ratings batch, truncating first when
// replace is set. Same single-transaction contract as the sales side.
func (r *ReviewsRepository) InsertReviews(ctx context.Context, rows []entities.ProductReview, replace bool) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin reviews batch: %w", err)
	}
	defer tx.Rollback()

	if replace {
		r.count("truncate_reviews")
		if _, err := tx.ExecContext(ctx, constants.TruncateReviews); err != nil {
			return 0, fmt.Errorf("truncate product_reviews: %w", err)
		}
	}

	inserted := 0
	for _, row := range rows {
		r.count("insert_review")
		if _, err := tx.ExecContext(ctx, constants.InsertReview,
			row.ProductID,
			row.ProductName,
			row.Category,
			row.DiscountedPrice,
			row.ActualPrice,
			row.DiscountPercentage,
			row.Rating,
			row.RatingCount,
			row.AboutProduct,
			row.UserName,
			row.ReviewTitle,
			row.ReviewContent,
		); err != nil {
			return 0, fmt.Errorf("insert review row %d: %w", inserted+1, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reviews batch: %w", err)
	}
	return inserted, nil
}

func (r *ReviewsRepository) ProductsPerCategory(ctx context.Context, f dtos.RatingsFilter) ([]dtos.CategoryCount, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
	SELECT %[1]s AS category, COUNT(*)::int AS count
	FROM product_reviews
	%[2]s
	GROUP BY %[1]s
	HAVING %[1]s IS NOT NULL AND %[1]s != ''
	ORDER BY count DESC`, constants.ReviewCategoryExpr, where)

	var rows []dtos.CategoryCount
	r.count("reviews_per_category")
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("products per category: %w", err)
	}
	return rows, nil
}

func (r *ReviewsRepository) TopReviewed(ctx context.Context, f dtos.RatingsFilter, limit int) ([]dtos.ReviewedProduct, error) {
	where, args := buildWhere(f)
	args = append(args, limit)
	query := fmt.Sprintf(`
	SELECT product_name AS name, COALESCE(rating_count, 0)::int AS review_count
	FROM product_reviews
	%s
	GROUP BY product_id, product_name, rating_count
	ORDER BY review_count DESC
	LIMIT $%d`, where, len(args))

	var rows []dtos.ReviewedProduct
	r.count("reviews_top_reviewed")
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("top reviewed: %w", err)
	}
	return rows, nil
}

// DiscountDistribution buckets products into 10%-wide discount bands.
// Stored percentages appear both as fractions (0.64) and whole numbers
// (64); fractions are scaled before bucketing.
func (r *ReviewsRepository) DiscountDistribution(ctx context.Context, f dtos.RatingsFilter) ([]dtos.DiscountBucket, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
	WITH pct AS (
		SELECT CASE
			WHEN COALESCE(discount_percentage, 0) <= 1 THEN discount_percentage * 100
			ELSE discount_percentage
		END AS pct
		FROM product_reviews
		%s
	), bucketed AS (
		SELECT CASE
			WHEN pct < 10 THEN '0-10%%'
			WHEN pct < 20 THEN '10-20%%'
			WHEN pct < 30 THEN '20-30%%'
			WHEN pct < 40 THEN '30-40%%'
			WHEN pct < 50 THEN '40-50%%'
			WHEN pct < 60 THEN '50-60%%'
			WHEN pct < 70 THEN '60-70%%'
			WHEN pct < 80 THEN '70-80%%'
			WHEN pct < 90 THEN '80-90%%'
			ELSE '90-100%%'
		END AS bucket,
		CASE
			WHEN pct < 10 THEN 1 WHEN pct < 20 THEN 2 WHEN pct < 30 THEN 3
			WHEN pct < 40 THEN 4 WHEN pct < 50 THEN 5 WHEN pct < 60 THEN 6
			WHEN pct < 70 THEN 7 WHEN pct < 80 THEN 8 WHEN pct < 90 THEN 9
			ELSE 10
		END AS ord
		FROM pct
	)
	SELECT bucket, COUNT(*)::int AS count
	FROM bucketed
	GROUP BY bucket, ord
	ORDER BY ord`, where)

	var rows []dtos.DiscountBucket
	r.count("reviews_discount_distribution")
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("discount distribution: %w", err)
	}
	return rows, nil
}

func (r *ReviewsRepository) CategoryAvgRating(ctx context.Context, f dtos.RatingsFilter) ([]dtos.CategoryRating, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf(`
	SELECT %[1]s AS category, ROUND(AVG(rating)::numeric, 2)::float8 AS avg_rating
	FROM product_reviews
	%[2]s
	GROUP BY %[1]s
	HAVING %[1]s IS NOT NULL AND %[1]s != '' AND AVG(rating) IS NOT NULL
	ORDER BY avg_rating DESC`, constants.ReviewCategoryExpr, where)

	var rows []dtos.CategoryRating
	r.count("reviews_category_avg_rating")
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("category avg rating: %w", err)
	}
	return rows, nil
}

// List returns one page of the product listing plus the total row count
// for the active filter.
func (r *ReviewsRepository) List(ctx context.Context, f dtos.RatingsFilter, page, limit int) (*dtos.ReviewListPage, error) {
	where, args := buildWhere(f)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*)::int AS total FROM product_reviews %s", where)
	r.count("reviews_list_count")
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	listQuery := fmt.Sprintf(`
	SELECT id, product_id, product_name, %s AS category,
		discounted_price::float8 AS discounted_price,
		actual_price::float8 AS actual_price,
		discount_percentage::float8 AS discount_percentage,
		rating::float8 AS rating,
		rating_count,
		LEFT(review_content, 200) AS review_preview
	FROM product_reviews
	%s
	ORDER BY rating_count DESC NULLS LAST, id
	LIMIT $%d OFFSET $%d`, constants.ReviewCategoryExpr, where, len(args)-1, len(args))

	items := make([]dtos.ReviewListItem, 0, limit)
	r.count("reviews_list")
	if err := r.db.SelectContext(ctx, &items, listQuery, args...); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &dtos.ReviewListPage{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Filters returns the distinct categories and distinct rounded ratings
// backing the listing filter dropdowns.
func (r *ReviewsRepository) Filters(ctx context.Context) (*dtos.RatingsFilterOptions, error) {
	categoriesQuery := fmt.Sprintf(`
	SELECT DISTINCT %[1]s AS category FROM product_reviews
	WHERE %[1]s IS NOT NULL AND %[1]s != ''
	ORDER BY 1`, constants.ReviewCategoryExpr)

	var categories []string
	r.count("reviews_filter_categories")
	if err := r.db.SelectContext(ctx, &categories, categoriesQuery); err != nil {
		return nil, fmt.Errorf("filter categories: %w", err)
	}

	var ratings []float64
	r.count("reviews_filter_ratings")
	if err := r.db.SelectContext(ctx, &ratings, `
	SELECT DISTINCT ROUND(rating::numeric, 1)::float8 AS rating
	FROM product_reviews WHERE rating IS NOT NULL ORDER BY 1`); err != nil {
		return nil, fmt.Errorf("filter ratings: %w", err)
	}

	return &dtos.RatingsFilterOptions{Categories: categories, Ratings: ratings}, nil
}
