package model

import "time"

// Holding represents a recorded lot of a single symbol. Holdings are
// immutable once recorded except through an explicit edit, and re-adding a
// symbol creates a distinct holding rather than merging lots.
type Holding struct {
	ID            string    `json:"id"`
	Symbol        string    `json:"symbol"`
	DisplayName   string    `json:"displayName"`
	Units         int64     `json:"units"`
	PurchasePrice float64   `json:"purchasePrice"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	Notes         string    `json:"notes"`
	AddedAt       time.Time `json:"addedAt"`
}

// CostBasis returns the total purchase cost of the holding.
func (h Holding) CostBasis() float64 {
	return float64(h.Units) * h.PurchasePrice
}
