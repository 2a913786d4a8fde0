package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Lewis310/MyPortfolio/internal/model"
)

// MakeID generates a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build(t, db)
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithSymbol("CBA.AX").
//	    WithUnits(5).
//	    WithPurchasePrice(90.0).
//	    Build(t, db)
type HoldingBuilder struct {
	ID            string
	Symbol        string
	DisplayName   string
	Units         int64
	PurchasePrice float64
	PurchaseDate  time.Time
	Notes         string
	AddedAt       time.Time
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:            MakeID(),
		Symbol:        "TEST",
		DisplayName:   "Test Holding",
		Units:         10,
		PurchasePrice: 100.0,
		PurchaseDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AddedAt:       time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom ticker symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithUnits sets a custom unit count.
func (b *HoldingBuilder) WithUnits(units int64) *HoldingBuilder {
	b.Units = units
	return b
}

// WithPurchasePrice sets a custom purchase price.
func (b *HoldingBuilder) WithPurchasePrice(price float64) *HoldingBuilder {
	b.PurchasePrice = price
	return b
}

// WithPurchaseDate sets a custom purchase date.
func (b *HoldingBuilder) WithPurchaseDate(date time.Time) *HoldingBuilder {
	b.PurchaseDate = date
	return b
}

// Holding returns the built holding without persisting it.
func (b *HoldingBuilder) Holding() model.Holding {
	return model.Holding{
		ID:            b.ID,
		Symbol:        b.Symbol,
		DisplayName:   b.DisplayName,
		Units:         b.Units,
		PurchasePrice: b.PurchasePrice,
		PurchaseDate:  b.PurchaseDate,
		Notes:         b.Notes,
		AddedAt:       b.AddedAt,
	}
}

// Build persists the holding and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	h := b.Holding()
	_, err := db.Exec(`
		INSERT INTO holding (id, symbol, display_name, units, purchase_price, purchase_date, notes, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID,
		h.Symbol,
		h.DisplayName,
		h.Units,
		h.PurchasePrice,
		h.PurchaseDate.Format("2006-01-02"),
		h.Notes,
		h.AddedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to insert test holding: %v", err)
	}

	return h
}

// MakeSeries builds a price series from consecutive daily prices ending at
// the given date, oldest first.
func MakeSeries(symbol string, end time.Time, prices ...float64) model.PriceSeries {
	series := model.PriceSeries{Symbol: symbol}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	for i, price := range prices {
		series.Points = append(series.Points, model.PricePoint{
			Date:  end.AddDate(0, 0, i-len(prices)+1),
			Price: price,
		})
	}
	return series
}
