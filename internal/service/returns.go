package service

import (
	"fmt"
	"math"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
	"github.com/Lewis310/MyPortfolio/internal/model"
)

// TradingDaysPerYear is the annualization convention for daily log returns.
const TradingDaysPerYear = 252

// AnnualizedReturn computes the expected geometric annual growth rate
// implied by a price series: the mean of per-step log returns, scaled by a
// 252-trading-day year and converted back to an arithmetic rate.
//
// Gaps between observations are allowed; each log return is taken between
// the two nearest points with no calendar-gap adjustment.
//
// A series with fewer than two observations yields an undefined result,
// which is distinct from a 0% return and must not be coerced to zero by
// callers. A zero or negative price is a contract violation and returns
// ErrNonPositivePrice instead of letting NaN leak into aggregation.
//
// Pure function of its input.
func AnnualizedReturn(series model.PriceSeries) (model.AnnualizedReturn, error) {
	points := series.Points
	if len(points) < 2 {
		return model.AnnualizedReturn{}, nil
	}

	if points[0].Price <= 0 {
		return model.AnnualizedReturn{}, fmt.Errorf("%s at %s: %w",
			series.Symbol, points[0].Date.Format("2006-01-02"), apperrors.ErrNonPositivePrice)
	}

	var sum float64
	for i := 1; i < len(points); i++ {
		if points[i].Price <= 0 {
			return model.AnnualizedReturn{}, fmt.Errorf("%s at %s: %w",
				series.Symbol, points[i].Date.Format("2006-01-02"), apperrors.ErrNonPositivePrice)
		}
		sum += math.Log(points[i].Price / points[i-1].Price)
	}

	mean := sum / float64(len(points)-1)
	return model.AnnualizedReturn{
		Rate:    math.Exp(mean*TradingDaysPerYear) - 1,
		Defined: true,
	}, nil
}
