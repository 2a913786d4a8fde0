package request

// CreateHoldingRequest represents the request body for recording a holding
type CreateHoldingRequest struct {
	Symbol        string  `json:"symbol"`
	DisplayName   string  `json:"displayName"`
	Units         int64   `json:"units"`
	PurchasePrice float64 `json:"purchasePrice"`
	PurchaseDate  string  `json:"purchaseDate"`
	Notes         string  `json:"notes"`
}

type UpdateHoldingRequest struct {
	Symbol        *string  `json:"symbol,omitempty"`
	DisplayName   *string  `json:"displayName,omitempty"`
	Units         *int64   `json:"units,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	PurchaseDate  *string  `json:"purchaseDate,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}
