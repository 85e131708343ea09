package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dyne/salesboard/internal/common"
	"dyne/salesboard/internal/constants"
	"dyne/salesboard/internal/ingest"
	"dyne/salesboard/internal/logging"
	"dyne/salesboard/internal/metrics"
	"dyne/salesboard/internal/models/dtos"
	"dyne/salesboard/internal/models/entities"
)

// Cache keys owned by the lookup endpoints; a successful upload makes
// them stale, so the ingest service deletes them.
const (
	CacheKeySalesCategories = "sales:categories"
	CacheKeySalesRegions    = "sales:regions"
	CacheKeyRatingsFilters  = "ratings:filters"
)

type SalesStore interface {
	InsertSales(ctx context.Context, rows []entities.SalesRecord, replace bool) (int, error)
}

type ReviewStore interface {
	InsertReviews(ctx context.Context, rows []entities.ProductReview, replace bool) (int, error)
}

// IngestService drives one upload end to end: parse, resolve headers,
// classify, map rows, persist. Per-row failures drop the row; only
// batch-level problems surface as errors.
type IngestService struct {
	sales   SalesStore
	reviews ReviewStore
	cache   *common.CacheService
	reg     *metrics.MetricsRegistry
}

func NewIngestService(sales SalesStore, reviews ReviewStore, cache *common.CacheService, reg *metrics.MetricsRegistry) *IngestService {
	return &IngestService{
		sales:   sales,
		reviews: reviews,
		cache:   cache,
		reg:     reg,
	}
}

// IngestSales loads a sales spreadsheet. Files without a resolvable
// date column are accepted in synthetic-date mode instead of rejected.
func (s *IngestService) IngestSales(ctx context.Context, filename string, data []byte, replace bool) (*dtos.UploadResult, error) {
	started := time.Now()

	ext := ingest.FileExtension(filename)
	if !ingest.AllowedExtension(ext) {
		return nil, ingest.NewValidationError(constants.ErrBadExtension)
	}

	rawRows, headers, err := ingest.ParseFile(data, ext)
	if err != nil {
		s.observe("sales", "parse_error", started)
		return nil, fmt.Errorf("parse %s file: %w", ext, err)
	}
	if len(rawRows) == 0 {
		return nil, ingest.NewValidationError(constants.ErrEmptyFile)
	}

	cols := ingest.ResolveColumns(headers, constants.SalesColumnAliases)
	syntheticDate, err := ingest.ClassifySales(cols, headers)
	if err != nil {
		s.observe("sales", "rejected", started)
		return nil, err
	}

	dateEnd := time.Now()
	dateStart := dateEnd.AddDate(-1, 0, 0)

	records := make([]entities.SalesRecord, 0, len(rawRows))
	for _, raw := range rawRows {
		var rec *entities.SalesRecord
		if syntheticDate {
			rec = ingest.MapSalesRowSyntheticDate(raw, cols, dateStart, dateEnd)
		} else {
			rec = ingest.MapSalesRow(raw, cols)
		}
		if rec == nil {
			continue
		}
		records = append(records, *rec)
	}
	dropped := len(rawRows) - len(records)

	if len(records) == 0 {
		s.observe("sales", "rejected", started)
		return nil, ingest.NewValidationError(constants.ErrNoValidSalesRows)
	}

	inserted, err := s.sales.InsertSales(ctx, records, replace)
	if err != nil {
		s.observe("sales", "persist_error", started)
		return nil, err
	}

	s.finish("sales", started, filename, inserted, dropped, replace, syntheticDate)
	s.cache.Delete(CacheKeySalesCategories)
	s.cache.Delete(CacheKeySalesRegions)

	return &dtos.UploadResult{RecordsInserted: inserted, Replaced: replace}, nil
}

// IngestRatings loads a product ratings spreadsheet.
func (s *IngestService) IngestRatings(ctx context.Context, filename string, data []byte, replace bool) (*dtos.UploadResult, error) {
	started := time.Now()

	ext := ingest.FileExtension(filename)
	if !ingest.AllowedExtension(ext) {
		return nil, ingest.NewValidationError(constants.ErrBadExtension)
	}

	rawRows, headers, err := ingest.ParseFile(data, ext)
	if err != nil {
		s.observe("ratings", "parse_error", started)
		return nil, fmt.Errorf("parse %s file: %w", ext, err)
	}
	if len(rawRows) == 0 {
		return nil, ingest.NewValidationError(constants.ErrEmptyFile)
	}

	if !ingest.IsRatingsFormat(headers) {
		s.observe("ratings", "rejected", started)
		return nil, ingest.NewValidationError(
			"File must contain product_name (or product_id), category, and rating (or rating_count). Columns: " +
				strings.Join(headers, ", "))
	}

	records := make([]entities.ProductReview, 0, len(rawRows))
	for _, raw := range rawRows {
		if rec := ingest.MapRatingsRow(raw); rec != nil {
			records = append(records, *rec)
		}
	}
	dropped := len(rawRows) - len(records)

	if len(records) == 0 {
		s.observe("ratings", "rejected", started)
		return nil, ingest.NewValidationError(constants.ErrNoValidRatingRows)
	}

	inserted, err := s.reviews.InsertReviews(ctx, records, replace)
	if err != nil {
		s.observe("ratings", "persist_error", started)
		return nil, err
	}

	s.finish("ratings", started, filename, inserted, dropped, replace, false)
	s.cache.Delete(CacheKeyRatingsFilters)

	return &dtos.UploadResult{RecordsInserted: inserted, Replaced: replace}, nil
}

func (s *IngestService) observe(dataset, outcome string, started time.Time) {
	if s.reg == nil {
		return
	}
	s.reg.UploadsTotal.WithLabelValues(dataset, outcome).Inc()
	s.reg.UploadDuration.WithLabelValues(dataset).Observe(time.Since(started).Seconds())
}

func (s *IngestService) finish(dataset string, started time.Time, filename string, inserted, dropped int, replaced, syntheticDate bool) {
	if s.reg != nil {
		s.reg.UploadsTotal.WithLabelValues(dataset, "ok").Inc()
		s.reg.UploadDuration.WithLabelValues(dataset).Observe(time.Since(started).Seconds())
		s.reg.RowsInsertedTotal.WithLabelValues(dataset).Add(float64(inserted))
		s.reg.RowsDroppedTotal.WithLabelValues(dataset).Add(float64(dropped))
		if replaced {
			s.reg.TableReplacesTotal.WithLabelValues(dataset).Inc()
		}
	}

	logging.Info("Upload ingested",
		"dataset", dataset,
		"filename", filename,
		"records_inserted", inserted,
		"rows_dropped", dropped,
		"replaced", replaced,
		"synthetic_date", syntheticDate,
		"duration_ms", time.Since(started).Milliseconds(),
	)
}
