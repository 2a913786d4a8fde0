package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Lewis310/MyPortfolio/internal/marketdata"
)

// RefreshService warms the price cache for held symbols and resets the
// provider's daily call budget. Both operations are wired to the cron
// scheduler in main.
type RefreshService struct {
	holdingService *HoldingService
	provider       marketdata.Provider
	limiter        *marketdata.Limiter
	lookbackDays   int
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(holdingService *HoldingService, provider marketdata.Provider, limiter *marketdata.Limiter) *RefreshService {
	return &RefreshService{
		holdingService: holdingService,
		provider:       provider,
		lookbackDays:   DefaultLookbackDays,
		limiter:        limiter,
	}
}

// RefreshPrices fetches a fresh history for every held symbol. Fetching
// through the caching provider repopulates the cache as a side effect, so
// daytime requests are served without spending budget. Symbols are fetched
// sequentially; the refresh job has no reason to race the limiter.
func (s *RefreshService) RefreshPrices(ctx context.Context) error {
	holdings, err := s.holdingService.GetAllHoldings()
	if err != nil {
		return fmt.Errorf("price refresh: %w", err)
	}

	symbols := uniqueSymbols(holdings)
	for _, symbol := range symbols {
		if _, err := s.provider.FetchHistory(ctx, symbol, s.lookbackDays); err != nil {
			log.Printf("price refresh: fetch failed for %s: %v", symbol, err)
		}
	}

	log.Printf("price refresh: refreshed %d symbols", len(symbols))
	return nil
}

// ResetBudget clears the daily API call counter. Scheduled at midnight.
func (s *RefreshService) ResetBudget() {
	s.limiter.Reset()
	log.Printf("price refresh: daily API budget reset")
}
