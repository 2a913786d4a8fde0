package marketdata

import (
	"context"
	"log"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// PriceStore persists fetched price series. Implemented by
// repository.PriceRepository.
type PriceStore interface {
	GetSeries(symbol string, lookbackDays int) (series model.PriceSeries, fetchedAt time.Time, err error)
	PutSeries(series model.PriceSeries, fetchedAt time.Time) error
}

// DefaultCacheTTL is how long a fetched series stays fresh.
const DefaultCacheTTL = time.Hour

// CachedProvider serves price series from the store while they are fresh,
// delegating to the wrapped provider otherwise. The cache lives at this
// boundary so the engine itself stays stateless.
//
// Only live, non-empty series are written back: empty results stay
// retryable, and caching synthetic data would hide live recovery for a full
// TTL.
type CachedProvider struct {
	next  Provider
	store PriceStore
	ttl   time.Duration
	now   func() time.Time
}

// NewCachedProvider wraps a provider with a store-backed cache.
func NewCachedProvider(next Provider, store PriceStore, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{
		next:  next,
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// FetchHistory returns the cached series when fresh, otherwise fetches
// through the wrapped provider and stores the result. Store failures are
// logged and do not fail the fetch.
func (p *CachedProvider) FetchHistory(ctx context.Context, symbol string, lookbackDays int) (model.PriceSeries, error) {
	cached, fetchedAt, err := p.store.GetSeries(symbol, lookbackDays)
	if err != nil {
		log.Printf("price cache: read failed for %s: %v", symbol, err)
	} else if !cached.Empty() && p.now().Sub(fetchedAt) < p.ttl {
		return cached, nil
	}

	series, err := p.next.FetchHistory(ctx, symbol, lookbackDays)
	if err != nil {
		return series, err
	}

	if !series.Empty() && !series.Synthetic {
		if err := p.store.PutSeries(series, p.now()); err != nil {
			log.Printf("price cache: write failed for %s: %v", symbol, err)
		}
	}
	return series, nil
}
