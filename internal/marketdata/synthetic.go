package marketdata

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// Synthetic walk parameters. The base price is derived from the symbol so
// distinct symbols get distinct but stable anchors; moves are bounded and
// floored so a generated series never trends into degenerate territory.
const (
	syntheticBaseMin  = 25.0
	syntheticBaseSpan = 475.0
	maxDailyMove      = 0.02
	priceFloorRatio   = 0.5
)

// SyntheticProvider generates deterministic stand-in price series so the
// rest of the system has something to render when the live feed is
// unavailable or the server runs in demo mode. Every returned series is
// tagged Synthetic.
type SyntheticProvider struct {
	now func() time.Time
}

// NewSyntheticProvider creates a synthetic provider anchored at the current
// date.
func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{now: time.Now}
}

// FetchHistory generates a pseudo-random daily walk for the symbol ending
// today. The walk is a pure function of symbol and lookbackDays, so repeated
// requests render identically.
func (p *SyntheticProvider) FetchHistory(_ context.Context, symbol string, lookbackDays int) (model.PriceSeries, error) {
	return Synthesize(symbol, lookbackDays, p.now()), nil
}

// Synthesize produces a deterministic daily price walk for a symbol: seeded
// by the symbol name, anchored at a per-symbol base price, with day-over-day
// moves bounded to ±2% and a floor at 50% of the base price.
func Synthesize(symbol string, days int, end time.Time) model.PriceSeries {
	series := model.PriceSeries{Symbol: symbol, Synthetic: true}
	if days <= 0 {
		return series
	}

	h := fnv.New64a()
	h.Write([]byte(symbol))
	seed := h.Sum64()

	rng := rand.New(rand.NewSource(int64(seed)))
	base := syntheticBaseMin + float64(seed%1000)/1000.0*syntheticBaseSpan
	floor := base * priceFloorRatio

	endDay := Day(end)
	price := base
	points := make([]model.PricePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		move := (rng.Float64()*2 - 1) * maxDailyMove
		price *= 1 + move
		if price < floor {
			price = floor
		}
		points = append(points, model.PricePoint{
			Date:  endDay.AddDate(0, 0, -i),
			Price: price,
		})
	}

	series.Points = points
	return series
}
