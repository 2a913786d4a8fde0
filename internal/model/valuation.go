package model

import "time"

// ValuePoint is a single dated aggregate portfolio value.
type ValuePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// PortfolioValueSeries is the aggregate value of all holdings over the union
// of the constituent price-series dates, forward-filled per symbol. Holdings
// whose symbol has no history contribute nothing to historical value.
//
// Synthetic is true when any constituent series came from the offline
// generator.
type PortfolioValueSeries struct {
	Points    []ValuePoint `json:"points"`
	Synthetic bool         `json:"synthetic"`
}

// Last returns the most recent point of the series.
// The second return value is false for an empty series.
func (s PortfolioValueSeries) Last() (ValuePoint, bool) {
	if len(s.Points) == 0 {
		return ValuePoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Projection is the forward extrapolation of the portfolio value, compounded
// daily. Its first point equals the last historical value exactly.
type Projection struct {
	Points []ValuePoint `json:"points"`
}

// HoldingSummary is the per-holding row of the portfolio summary table:
// current price, market value, cost basis, and profit/loss in currency and
// percent. Synthetic marks valuations priced from generated data.
type HoldingSummary struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	DisplayName   string  `json:"displayName"`
	Units         int64   `json:"units"`
	PurchasePrice float64 `json:"purchasePrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	CurrentValue  float64 `json:"currentValue"`
	CostBasis     float64 `json:"costBasis"`
	GainLoss      float64 `json:"gainLoss"`
	GainLossPct   float64 `json:"gainLossPct"`
	HasPrice      bool    `json:"hasPrice"`
	Synthetic     bool    `json:"synthetic"`
}

// PortfolioSummary aggregates the per-holding rows with portfolio totals.
type PortfolioSummary struct {
	Holdings         []HoldingSummary `json:"holdings"`
	TotalValue       float64          `json:"totalValue"`
	TotalCost        float64          `json:"totalCost"`
	TotalGainLoss    float64          `json:"totalGainLoss"`
	TotalGainLossPct float64          `json:"totalGainLossPct"`
}

// ChartPoint is one row of the combined historical/expected chart. Exactly
// one of the two columns is set for most dates; both are set on the pivot
// date where the projection starts, with equal values.
type ChartPoint struct {
	Date       string   `json:"date"`
	Historical *float64 `json:"historical"`
	Expected   *float64 `json:"expected"`
}

// PortfolioChart is the combined historical value series and forward
// projection, aligned on date and suitable for direct charting.
type PortfolioChart struct {
	Points      []ChartPoint `json:"points"`
	AnnualRate  float64      `json:"annualRate"`
	RateDefined bool         `json:"rateDefined"`
	Synthetic   bool         `json:"synthetic"`
}

// WatchlistEntry is one symbol of the watchlist with its latest price.
type WatchlistEntry struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	HasPrice  bool    `json:"hasPrice"`
	Synthetic bool    `json:"synthetic"`
}
