package service

import (
	"math"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
	"github.com/Lewis310/MyPortfolio/internal/model"
)

// DefaultHorizonDays is the standard one-year projection horizon.
const DefaultHorizonDays = 365

// Project extrapolates the last known portfolio value forward, compounding
// the annual rate daily: value(k) = lastValue × ((1+rate)^(1/365))^k for
// k = 0..horizonDays inclusive. The first point equals lastValue exactly,
// so the projection joins the historical series without a seam.
//
// A rate of 0 (including the by-policy value for "no data", see
// WeightedReturn) produces a flat series. Pure and deterministic.
func Project(lastValue float64, lastDate time.Time, annualRate float64, horizonDays int) (model.Projection, error) {
	if lastValue < 0 {
		return model.Projection{}, apperrors.ErrNegativeValue
	}
	if horizonDays < 0 {
		return model.Projection{}, apperrors.ErrNegativeHorizon
	}

	// The estimator can never produce a rate at or below -100%, but a
	// caller-supplied one is clamped to total loss rather than fed to Pow
	// with a negative base.
	dailyFactor := 0.0
	if 1+annualRate > 0 {
		dailyFactor = math.Pow(1+annualRate, 1.0/365.0)
	}

	points := make([]model.ValuePoint, 0, horizonDays+1)
	for k := 0; k <= horizonDays; k++ {
		points = append(points, model.ValuePoint{
			Date:  lastDate.AddDate(0, 0, k),
			Value: lastValue * math.Pow(dailyFactor, float64(k)),
		})
	}

	return model.Projection{Points: points}, nil
}
