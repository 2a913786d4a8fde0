package marketdata

import (
	"context"
	"log"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// budgetReserve is the number of live calls kept in reserve: when the
// remaining daily budget drops to this level the fallback switches to
// synthetic data proactively instead of burning the last calls on fetches
// that are about to start failing.
const defaultBudgetReserve = 1

// liveClient is the subset of AlphaVantageClient the fallback needs.
type liveClient interface {
	Provider
	Remaining() int
}

// FallbackProvider serves live data when it can and deterministic synthetic
// data when it cannot. Unavailability is recovered locally and logged as a
// warning, never surfaced as a hard failure.
//
// An empty live series with no error is passed through untouched: that is
// the provider's "no data for this symbol" signal, and the valuator handles
// it by excluding the symbol.
type FallbackProvider struct {
	live      liveClient
	synthetic *SyntheticProvider
	reserve   int
}

// NewFallbackProvider wraps a live client with synthetic fallback.
func NewFallbackProvider(live liveClient) *FallbackProvider {
	return &FallbackProvider{
		live:      live,
		synthetic: NewSyntheticProvider(),
		reserve:   defaultBudgetReserve,
	}
}

// FetchHistory fetches from the live client, substituting a synthetic
// series when the daily budget is (nearly) exhausted or the live call
// fails. Synthetic results keep their Synthetic tag so downstream consumers
// can mark them as non-authoritative.
func (p *FallbackProvider) FetchHistory(ctx context.Context, symbol string, lookbackDays int) (model.PriceSeries, error) {
	if p.live.Remaining() <= p.reserve {
		log.Printf("marketdata: budget nearly exhausted, serving synthetic data for %s", symbol)
		return p.synthetic.FetchHistory(ctx, symbol, lookbackDays)
	}

	series, err := p.live.FetchHistory(ctx, symbol, lookbackDays)
	if err != nil {
		log.Printf("marketdata: live fetch failed for %s, serving synthetic data: %v", symbol, err)
		return p.synthetic.FetchHistory(ctx, symbol, lookbackDays)
	}
	return series, nil
}
