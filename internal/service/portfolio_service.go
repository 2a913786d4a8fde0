package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
	"github.com/Lewis310/MyPortfolio/internal/marketdata"
	"github.com/Lewis310/MyPortfolio/internal/model"
)

// DefaultLookbackDays matches the provider's compact daily window.
const DefaultLookbackDays = 100

// PortfolioService orchestrates the projection engine: it loads holdings,
// fetches per-symbol histories through the provider, and combines the
// estimator, valuator, and projection generator into the results the
// presentation layer renders. It holds no state between calls; all series
// are fetched fresh (the 1h cache lives at the provider boundary).
type PortfolioService struct {
	holdingService *HoldingService
	provider       marketdata.Provider
	lookbackDays   int
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(holdingService *HoldingService, provider marketdata.Provider) *PortfolioService {
	return &PortfolioService{
		holdingService: holdingService,
		provider:       provider,
		lookbackDays:   DefaultLookbackDays,
	}
}

// fetchHistories retrieves price series for the given symbols in parallel.
// The provider's rate limiter is shared, so concurrency here never exceeds
// the API budget; the limiter serializes the actual calls.
//
// Fetch failures degrade to an empty series for that symbol (it then
// contributes no value and no return); only context cancellation aborts the
// whole fetch.
func (s *PortfolioService) fetchHistories(ctx context.Context, symbols []string) (map[string]model.PriceSeries, error) {
	histories := make(map[string]model.PriceSeries, len(symbols))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			series, err := s.provider.FetchHistory(ctx, symbol, s.lookbackDays)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				log.Printf("portfolio: history fetch failed for %s, treating as no data: %v", symbol, err)
				series = model.PriceSeries{Symbol: symbol}
			}
			mu.Lock()
			histories[symbol] = series
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return histories, nil
}

// uniqueSymbols collects the distinct symbols across holdings, preserving
// first-seen order.
func uniqueSymbols(holdings []model.Holding) []string {
	seen := make(map[string]struct{}, len(holdings))
	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if _, ok := seen[h.Symbol]; ok {
			continue
		}
		seen[h.Symbol] = struct{}{}
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}

// symbolReturns computes per-symbol annualized returns, catching domain
// errors at this boundary: a series with a non-positive price yields an
// undefined return for that symbol instead of propagating a numeric fault.
func symbolReturns(histories map[string]model.PriceSeries) map[string]model.AnnualizedReturn {
	returns := make(map[string]model.AnnualizedReturn, len(histories))
	for symbol, series := range histories {
		r, err := AnnualizedReturn(series)
		if err != nil {
			log.Printf("portfolio: return undefined for %s: %v", symbol, err)
			r = model.AnnualizedReturn{}
		}
		returns[symbol] = r
	}
	return returns
}

// Summary produces the holdings table: current price, market value, cost
// basis, and profit/loss per holding, plus portfolio totals.
func (s *PortfolioService) Summary(ctx context.Context) (model.PortfolioSummary, error) {
	holdings, err := s.holdingService.GetAllHoldings()
	if err != nil {
		return model.PortfolioSummary{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetSummary, err)
	}

	histories, err := s.fetchHistories(ctx, uniqueSymbols(holdings))
	if err != nil {
		return model.PortfolioSummary{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetSummary, err)
	}

	summary := model.PortfolioSummary{Holdings: make([]model.HoldingSummary, 0, len(holdings))}
	for _, h := range holdings {
		series := histories[h.Symbol]
		row := model.HoldingSummary{
			ID:            h.ID,
			Symbol:        h.Symbol,
			DisplayName:   h.DisplayName,
			Units:         h.Units,
			PurchasePrice: h.PurchasePrice,
			CostBasis:     h.CostBasis(),
			Synthetic:     series.Synthetic,
		}

		if price, ok := series.CurrentPrice(); ok {
			row.HasPrice = true
			row.CurrentPrice = price
			row.CurrentValue = float64(h.Units) * price
			row.GainLoss = row.CurrentValue - row.CostBasis
			if row.CostBasis > 0 {
				row.GainLossPct = row.GainLoss / row.CostBasis * 100
			}
		}

		summary.TotalValue += row.CurrentValue
		summary.TotalCost += row.CostBasis
		summary.Holdings = append(summary.Holdings, row)
	}

	summary.TotalGainLoss = summary.TotalValue - summary.TotalCost
	if summary.TotalCost > 0 {
		summary.TotalGainLossPct = summary.TotalGainLoss / summary.TotalCost * 100
	}

	return summary, nil
}

// History produces the combined historical and projected portfolio value
// series: the forward-filled aggregate value over the union of constituent
// dates, extended by a daily-compounded projection at the blended
// annualized return.
//
// When no holding has any defined return, the blended rate is 0 by policy
// and the projection runs flat.
func (s *PortfolioService) History(ctx context.Context, horizonDays int) (model.PortfolioChart, error) {
	holdings, err := s.holdingService.GetAllHoldings()
	if err != nil {
		return model.PortfolioChart{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetHistory, err)
	}

	histories, err := s.fetchHistories(ctx, uniqueSymbols(holdings))
	if err != nil {
		return model.PortfolioChart{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetHistory, err)
	}

	valueSeries := ValueSeries(holdings, histories)
	chart := model.PortfolioChart{
		Points:    []model.ChartPoint{},
		Synthetic: valueSeries.Synthetic,
	}

	last, ok := valueSeries.Last()
	if !ok {
		return chart, nil
	}

	returns := symbolReturns(histories)
	currentValues := make(map[string]float64, len(histories))
	for _, h := range holdings {
		if price, ok := histories[h.Symbol].CurrentPrice(); ok {
			currentValues[h.Symbol] += float64(h.Units) * price
		}
	}

	for _, r := range returns {
		if r.Defined {
			chart.RateDefined = true
			break
		}
	}
	chart.AnnualRate = WeightedReturn(currentValues, returns)

	projection, err := Project(last.Value, last.Date, chart.AnnualRate, horizonDays)
	if err != nil {
		return model.PortfolioChart{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetHistory, err)
	}

	for _, p := range valueSeries.Points {
		value := p.Value
		point := model.ChartPoint{Date: p.Date.Format("2006-01-02"), Historical: &value}
		chart.Points = append(chart.Points, point)
	}
	for i, p := range projection.Points {
		value := p.Value
		if i == 0 {
			// The projection starts on the last historical date; both
			// columns carry the same value there so the chart joins.
			chart.Points[len(chart.Points)-1].Expected = &value
			continue
		}
		chart.Points = append(chart.Points, model.ChartPoint{
			Date:     p.Date.Format("2006-01-02"),
			Expected: &value,
		})
	}

	return chart, nil
}

// Watchlist fetches the latest price for each requested symbol.
func (s *PortfolioService) Watchlist(ctx context.Context, symbols []string) ([]model.WatchlistEntry, error) {
	histories, err := s.fetchHistories(ctx, symbols)
	if err != nil {
		return nil, err
	}

	entries := make([]model.WatchlistEntry, 0, len(symbols))
	for _, symbol := range symbols {
		series := histories[symbol]
		entry := model.WatchlistEntry{Symbol: symbol, Synthetic: series.Synthetic}
		if price, ok := series.CurrentPrice(); ok {
			entry.Price = price
			entry.HasPrice = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
