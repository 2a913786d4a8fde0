// Package marketdata provides price-history providers for the projection
// engine: a live Alpha Vantage client, a deterministic synthetic generator
// for offline use, and decorators adding fallback and caching behaviour.
package marketdata

import (
	"context"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// Provider is the price-history boundary consumed by the portfolio services.
// Implementations return a time-ordered series, oldest first. An empty
// series is a valid "no data" response, not an error signal.
type Provider interface {
	FetchHistory(ctx context.Context, symbol string, lookbackDays int) (model.PriceSeries, error)
}

// Day truncates a timestamp to midnight UTC. All series dates are normalized
// through this so date comparisons never depend on time components.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
