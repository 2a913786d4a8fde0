package service

import (
	"sort"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// ValueSeries combines per-holding price histories and unit counts into a
// single time-indexed portfolio value series.
//
// The date axis is the union of all constituent series dates. Each symbol
// is forward-filled: a missing day uses the symbol's last known price, and
// days before a symbol's first observation contribute nothing for it.
// Holdings whose symbol has no history contribute 0 to historical value
// (their cost basis still shows up in the summary, which is bookkeeping
// outside this function).
func ValueSeries(holdings []model.Holding, histories map[string]model.PriceSeries) model.PortfolioValueSeries {
	unitsBySymbol := make(map[string]int64)
	for _, h := range holdings {
		unitsBySymbol[h.Symbol] += h.Units
	}

	var result model.PortfolioValueSeries
	dateSet := make(map[time.Time]struct{})
	for symbol, units := range unitsBySymbol {
		series, ok := histories[symbol]
		if !ok || series.Empty() || units == 0 {
			continue
		}
		result.Synthetic = result.Synthetic || series.Synthetic
		for _, p := range series.Points {
			dateSet[p.Date] = struct{}{}
		}
	}

	if len(dateSet) == 0 {
		return result
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// Per-symbol cursor into its sorted series; lastPrice carries the
	// forward-fill.
	type cursor struct {
		points    []model.PricePoint
		idx       int
		lastPrice float64
		seen      bool
	}
	cursors := make(map[string]*cursor, len(unitsBySymbol))
	for symbol := range unitsBySymbol {
		if series, ok := histories[symbol]; ok && !series.Empty() {
			cursors[symbol] = &cursor{points: series.Points}
		}
	}

	result.Points = make([]model.ValuePoint, 0, len(dates))
	for _, date := range dates {
		var total float64
		for symbol, units := range unitsBySymbol {
			c, ok := cursors[symbol]
			if !ok {
				continue
			}
			for c.idx < len(c.points) && !c.points[c.idx].Date.After(date) {
				c.lastPrice = c.points[c.idx].Price
				c.seen = true
				c.idx++
			}
			if c.seen {
				total += float64(units) * c.lastPrice
			}
		}
		result.Points = append(result.Points, model.ValuePoint{Date: date, Value: total})
	}

	return result
}

// WeightedReturn blends per-symbol annualized returns into a portfolio-level
// expected return, weighting each symbol by its share of total current value.
//
// Symbols with an undefined return are excluded from both the numerator and
// the denominator, re-normalizing the weights over the symbols that have
// data. Folding "no data" in as 0% would silently drag the blended return
// toward zero whenever any holding lacks history.
//
// A zero (or negative) total current value yields 0 by policy.
func WeightedReturn(currentValues map[string]float64, returns map[string]model.AnnualizedReturn) float64 {
	var total, weighted float64
	for symbol, value := range currentValues {
		r, ok := returns[symbol]
		if !ok || !r.Defined {
			continue
		}
		total += value
		weighted += value * r.Rate
	}

	if total <= 0 {
		return 0
	}
	return weighted / total
}
