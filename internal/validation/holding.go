package validation

import (
	"strings"

	"github.com/Lewis310/MyPortfolio/internal/api/request"
)

func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	} else if len(req.Symbol) > 12 {
		errors["symbol"] = "symbol must be 12 characters or less"
	}

	if req.Units < 0 {
		errors["units"] = "units cannot be negative"
	}

	if req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be positive"
	}

	if strings.TrimSpace(req.PurchaseDate) == "" {
		errors["purchaseDate"] = "purchase date is required"
	} else if _, err := ParseDate(req.PurchaseDate); err != nil {
		errors["purchaseDate"] = "purchase date must be YYYY-MM-DD"
	}

	// Optional but has constraints
	if len(req.DisplayName) > 100 {
		errors["displayName"] = "display name must be 100 characters or less"
	}
	if len(req.Notes) > 500 {
		errors["notes"] = "notes must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Symbol != nil {
		if strings.TrimSpace(*req.Symbol) == "" {
			errors["symbol"] = "symbol cannot be empty"
		} else if len(*req.Symbol) > 12 {
			errors["symbol"] = "symbol must be 12 characters or less"
		}
	}

	if req.Units != nil && *req.Units < 0 {
		errors["units"] = "units cannot be negative"
	}

	if req.PurchasePrice != nil && *req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be positive"
	}

	if req.PurchaseDate != nil {
		if _, err := ParseDate(*req.PurchaseDate); err != nil {
			errors["purchaseDate"] = "purchase date must be YYYY-MM-DD"
		}
	}

	if req.DisplayName != nil && len(*req.DisplayName) > 100 {
		errors["displayName"] = "display name must be 100 characters or less"
	}
	if req.Notes != nil && len(*req.Notes) > 500 {
		errors["notes"] = "notes must be 500 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
