package model

import "time"

// PricePoint is a single dated observation of a price. Dates carry no time
// component; they are normalized to midnight UTC.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceSeries is a time-ordered series of price points for one symbol.
// Points are strictly increasing by date with no duplicates, oldest first.
// An empty series is a valid "no data" response, not an error signal.
//
// Synthetic marks a series produced by the offline generator instead of the
// live feed. Synthetic data must never be silently indistinguishable from
// live data, so the flag travels with the series through valuation.
type PriceSeries struct {
	Symbol    string       `json:"symbol"`
	Points    []PricePoint `json:"points"`
	Synthetic bool         `json:"synthetic"`
}

// Empty reports whether the series contains no observations.
func (s PriceSeries) Empty() bool {
	return len(s.Points) == 0
}

// Last returns the most recent point of the series.
// The second return value is false for an empty series.
func (s PriceSeries) Last() (PricePoint, bool) {
	if len(s.Points) == 0 {
		return PricePoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// CurrentPrice returns the last observed price of the series.
// The second return value is false when the series holds no data; callers
// must not coerce that case to a zero price.
func (s PriceSeries) CurrentPrice() (float64, bool) {
	last, ok := s.Last()
	if !ok {
		return 0, false
	}
	return last.Price, true
}

// AnnualizedReturn is the expected geometric annual growth rate implied by a
// price series. Defined is false when fewer than two valid observations
// exist; an undefined return is distinct from an actual 0% return and must
// not be folded into weighted averages as zero.
type AnnualizedReturn struct {
	Rate    float64
	Defined bool
}
