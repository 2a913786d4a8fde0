package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// PriceRepository provides data access methods for the price_cache table.
// It backs the caching provider: one row per (symbol, date), with the fetch
// timestamp recorded so stale series can be refreshed.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetSeries retrieves the cached price series for a symbol, oldest first,
// trimmed to the most recent lookbackDays observations. The returned
// timestamp is the oldest fetch time among the rows, so a partially stale
// series counts as stale.
func (r *PriceRepository) GetSeries(symbol string, lookbackDays int) (model.PriceSeries, time.Time, error) {
	query := `
          SELECT date, price, synthetic, fetched_at
          FROM price_cache
          WHERE symbol = ?
          ORDER BY date ASC
      `

	rows, err := r.db.Query(query, symbol)
	if err != nil {
		return model.PriceSeries{}, time.Time{}, fmt.Errorf("failed to query price_cache table: %w", err)
	}
	defer rows.Close()

	series := model.PriceSeries{Symbol: symbol}
	var oldestFetch time.Time

	for rows.Next() {
		var dateStr, fetchedAtStr string
		var point model.PricePoint
		var synthetic bool

		if err := rows.Scan(&dateStr, &point.Price, &synthetic, &fetchedAtStr); err != nil {
			return model.PriceSeries{}, time.Time{}, fmt.Errorf("failed to scan price_cache results: %w", err)
		}

		point.Date, err = ParseTime(dateStr)
		if err != nil {
			return model.PriceSeries{}, time.Time{}, err
		}
		fetchedAt, err := ParseTime(fetchedAtStr)
		if err != nil {
			return model.PriceSeries{}, time.Time{}, err
		}

		if oldestFetch.IsZero() || fetchedAt.Before(oldestFetch) {
			oldestFetch = fetchedAt
		}
		series.Synthetic = series.Synthetic || synthetic
		series.Points = append(series.Points, point)
	}

	if err = rows.Err(); err != nil {
		return model.PriceSeries{}, time.Time{}, fmt.Errorf("error iterating price_cache table: %w", err)
	}

	if lookbackDays > 0 && len(series.Points) > lookbackDays {
		series.Points = series.Points[len(series.Points)-lookbackDays:]
	}

	return series, oldestFetch, nil
}

// PutSeries replaces the cached series for a symbol in one transaction.
func (r *PriceRepository) PutSeries(series model.PriceSeries, fetchedAt time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin price_cache transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec("DELETE FROM price_cache WHERE symbol = ?", series.Symbol); err != nil {
		return fmt.Errorf("failed to clear price_cache for %s: %w", series.Symbol, err)
	}

	stmt, err := tx.Prepare(`
          INSERT INTO price_cache (symbol, date, price, synthetic, fetched_at)
          VALUES (?, ?, ?, ?, ?)
      `)
	if err != nil {
		return fmt.Errorf("failed to prepare price_cache insert: %w", err)
	}
	defer stmt.Close()

	fetchedAtStr := fetchedAt.UTC().Format(time.RFC3339)
	for _, point := range series.Points {
		_, err := stmt.Exec(
			series.Symbol,
			point.Date.Format("2006-01-02"),
			point.Price,
			series.Synthetic,
			fetchedAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to insert price_cache row for %s: %w", series.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price_cache transaction: %w", err)
	}

	return nil
}
