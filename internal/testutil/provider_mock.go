package testutil

import (
	"context"
	"sync"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// MockProvider is a mock implementation of marketdata.Provider for testing.
// It returns predefined series instead of making actual API calls.
type MockProvider struct {
	mu sync.Mutex

	// Series maps symbol to the series to return. Symbols without an entry
	// get an empty series, the provider's "no data" signal.
	Series map[string]model.PriceSeries
	// Err is returned from FetchHistory for every symbol when set.
	Err error
	// FetchCount tracks how many times FetchHistory was called.
	FetchCount int
}

// NewMockProvider creates a mock provider with no data configured.
func NewMockProvider() *MockProvider {
	return &MockProvider{Series: make(map[string]model.PriceSeries)}
}

// WithSeries configures the series returned for a symbol.
func (m *MockProvider) WithSeries(series model.PriceSeries) *MockProvider {
	m.Series[series.Symbol] = series
	return m
}

// WithError configures the mock to return the specified error.
func (m *MockProvider) WithError(err error) *MockProvider {
	m.Err = err
	return m
}

// FetchHistory returns the configured series for the symbol, or an empty
// series when none is configured.
func (m *MockProvider) FetchHistory(_ context.Context, symbol string, _ int) (model.PriceSeries, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCount++
	if m.Err != nil {
		return model.PriceSeries{Symbol: symbol}, m.Err
	}
	if series, ok := m.Series[symbol]; ok {
		return series, nil
	}
	return model.PriceSeries{Symbol: symbol}, nil
}

// Calls returns the number of FetchHistory invocations.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchCount
}
