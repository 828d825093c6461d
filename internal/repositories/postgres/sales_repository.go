package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marketlens/marketlens/internal/models"
	"github.com/marketlens/marketlens/internal/repositories"
)

type SalesRepository struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
	maxRetryWait time.Duration
}

func NewSalesRepository(pool *pgxpool.Pool, queryTimeout, maxRetryWait time.Duration) *SalesRepository {
	if queryTimeout <= 0 {
		queryTimeout = 30 * time.Second
	}
	if maxRetryWait <= 0 {
		maxRetryWait = 15 * time.Second
	}
	return &SalesRepository{pool: pool, queryTimeout: queryTimeout, maxRetryWait: maxRetryWait}
}

// MonthlyRecords returns per-channel monthly rows matching the filter, with
// periods canonicalized to "YYYY-MM". Rows whose stored period cannot be
// parsed are dropped rather than surfaced as an error.
func (r *SalesRepository) MonthlyRecords(ctx context.Context, filter repositories.SalesFilter) ([]models.SalesRecord, error) {
	query := `
        SELECT channel, city, area, cuisine, period,
               orders, net_sales, gross_sales, ads_spend, discount_spend, ads_return
        FROM channel_sales_monthly
        WHERE ($1::text[] IS NULL OR channel = ANY($1))
          AND ($2 = '' OR city = $2)
    `
	var channels interface{}
	if len(filter.Channels) > 0 {
		channels = filter.Channels
	}

	var records []models.SalesRecord
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.pool.Query(ctx, query, channels, filter.City)
		if err != nil {
			return err
		}
		defer rows.Close()

		records = records[:0]
		for rows.Next() {
			var rec models.SalesRecord
			var rawPeriod string
			err := rows.Scan(
				&rec.Channel,
				&rec.City,
				&rec.Area,
				&rec.Cuisine,
				&rawPeriod,
				&rec.Orders,
				&rec.NetSales,
				&rec.GrossSales,
				&rec.AdsSpend,
				&rec.DiscountSpend,
				&rec.AdsReturn,
			)
			if err != nil {
				return err
			}
			month, ok := canonicalMonth(rawPeriod)
			if !ok {
				continue
			}
			if filter.FromMonth != "" && month < filter.FromMonth {
				continue
			}
			if filter.ToMonth != "" && month > filter.ToMonth {
				continue
			}
			rec.Period = month
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("querying monthly sales: %w", err)
	}
	return records, nil
}

// WeeklyRecords returns per-channel weekly rows. The warehouse stores ISO
// year and week in separate columns; they come back joined as "YYYY-Wnn".
func (r *SalesRepository) WeeklyRecords(ctx context.Context, filter repositories.SalesFilter) ([]models.SalesRecord, error) {
	query := `
        SELECT channel, city, area, cuisine, iso_year, iso_week,
               orders, net_sales, gross_sales, ads_spend, discount_spend, ads_return
        FROM channel_sales_weekly
        WHERE ($1::text[] IS NULL OR channel = ANY($1))
          AND ($2 = '' OR city = $2)
    `
	var channels interface{}
	if len(filter.Channels) > 0 {
		channels = filter.Channels
	}

	var records []models.SalesRecord
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.pool.Query(ctx, query, channels, filter.City)
		if err != nil {
			return err
		}
		defer rows.Close()

		records = records[:0]
		for rows.Next() {
			var rec models.SalesRecord
			var year, week int
			err := rows.Scan(
				&rec.Channel,
				&rec.City,
				&rec.Area,
				&rec.Cuisine,
				&year,
				&week,
				&rec.Orders,
				&rec.NetSales,
				&rec.GrossSales,
				&rec.AdsSpend,
				&rec.DiscountSpend,
				&rec.AdsReturn,
			)
			if err != nil {
				return err
			}
			weekKey, ok := canonicalWeek(year, week)
			if !ok {
				continue
			}
			rec.Period = weekKey
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("querying weekly sales: %w", err)
	}
	return records, nil
}

// BulkInsert writes records into the monthly table in one batch. Used by
// the seed command only; the service itself never writes sales data.
func (r *SalesRepository) BulkInsert(ctx context.Context, records []models.SalesRecord) error {
	batch := &pgx.Batch{}
	stmt := `
        INSERT INTO channel_sales_monthly (
            channel, city, area, cuisine, period,
            orders, net_sales, gross_sales, ads_spend, discount_spend, ads_return
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	for _, rec := range records {
		batch.Queue(stmt,
			rec.Channel,
			rec.City,
			rec.Area,
			rec.Cuisine,
			rec.Period,
			rec.Orders,
			rec.NetSales,
			rec.GrossSales,
			rec.AdsSpend,
			rec.DiscountSpend,
			rec.AdsReturn,
		)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("inserting sales records: %w", err)
		}
	}
	return nil
}

func (r *SalesRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM channel_sales_monthly").Scan(&count)
	return count, err
}

func (r *SalesRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE channel_sales_monthly")
	return err
}

// withRetry retries transient query failures with exponential backoff,
// bounded so a dead warehouse fails the request instead of hanging it.
// Each attempt gets its own timeout.
func (r *SalesRepository) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = r.maxRetryWait
	attempt := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
		return op(attemptCtx)
	}
	return backoff.Retry(attempt, backoff.WithContext(policy, ctx))
}
