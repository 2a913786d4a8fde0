package validation_test

import (
	"strings"
	"testing"

	"github.com/Lewis310/MyPortfolio/internal/api/request"
	"github.com/Lewis310/MyPortfolio/internal/validation"
)

func validCreateRequest() request.CreateHoldingRequest {
	return request.CreateHoldingRequest{
		Symbol:        "CBA.AX",
		DisplayName:   "Commonwealth Bank",
		Units:         10,
		PurchasePrice: 95.50,
		PurchaseDate:  "2024-01-15",
	}
}

// TestValidateCreateHolding tests the create-request field checks.
func TestValidateCreateHolding(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateCreateHolding(validCreateRequest()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts zero units", func(t *testing.T) {
		req := validCreateRequest()
		req.Units = 0
		if err := validation.ValidateCreateHolding(req); err != nil {
			t.Errorf("Expected zero units to pass, got %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*request.CreateHoldingRequest)
		field  string
	}{
		{"missing symbol", func(r *request.CreateHoldingRequest) { r.Symbol = "  " }, "symbol"},
		{"overlong symbol", func(r *request.CreateHoldingRequest) { r.Symbol = "TOOLONGSYMBOL" }, "symbol"},
		{"negative units", func(r *request.CreateHoldingRequest) { r.Units = -1 }, "units"},
		{"zero price", func(r *request.CreateHoldingRequest) { r.PurchasePrice = 0 }, "purchasePrice"},
		{"negative price", func(r *request.CreateHoldingRequest) { r.PurchasePrice = -10 }, "purchasePrice"},
		{"missing date", func(r *request.CreateHoldingRequest) { r.PurchaseDate = "" }, "purchaseDate"},
		{"unparseable date", func(r *request.CreateHoldingRequest) { r.PurchaseDate = "15/01/2024" }, "purchaseDate"},
		{"overlong display name", func(r *request.CreateHoldingRequest) { r.DisplayName = strings.Repeat("x", 101) }, "displayName"},
		{"overlong notes", func(r *request.CreateHoldingRequest) { r.Notes = strings.Repeat("x", 501) }, "notes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			err := validation.ValidateCreateHolding(req)
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			vErr, ok := err.(*validation.Error)
			if !ok {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, present := vErr.Fields[tc.field]; !present {
				t.Errorf("Expected failure on field %q, got %v", tc.field, vErr.Fields)
			}
		})
	}
}

// TestValidateUpdateHolding tests the partial-update field checks.
func TestValidateUpdateHolding(t *testing.T) {
	str := func(s string) *string { return &s }
	i64 := func(i int64) *int64 { return &i }
	f64 := func(f float64) *float64 { return &f }

	t.Run("accepts an empty patch", func(t *testing.T) {
		if err := validation.ValidateUpdateHolding(request.UpdateHoldingRequest{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts valid provided fields", func(t *testing.T) {
		req := request.UpdateHoldingRequest{
			Symbol:        str("BHP.AX"),
			Units:         i64(5),
			PurchasePrice: f64(44.10),
			PurchaseDate:  str("2024-02-01"),
		}
		if err := validation.ValidateUpdateHolding(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	cases := []struct {
		name  string
		req   request.UpdateHoldingRequest
		field string
	}{
		{"blank symbol", request.UpdateHoldingRequest{Symbol: str("  ")}, "symbol"},
		{"negative units", request.UpdateHoldingRequest{Units: i64(-1)}, "units"},
		{"zero price", request.UpdateHoldingRequest{PurchasePrice: f64(0)}, "purchasePrice"},
		{"unparseable date", request.UpdateHoldingRequest{PurchaseDate: str("soon")}, "purchaseDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateUpdateHolding(tc.req)
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			vErr, ok := err.(*validation.Error)
			if !ok {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, present := vErr.Fields[tc.field]; !present {
				t.Errorf("Expected failure on field %q, got %v", tc.field, vErr.Fields)
			}
		})
	}
}

// TestValidateUUID tests UUID format checking.
func TestValidateUUID(t *testing.T) {
	t.Run("accepts a valid UUID", func(t *testing.T) {
		if err := validation.ValidateUUID("a2f41af1-8cf1-4edb-9fb0-0b3a1a9c6b01"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		if err := validation.ValidateUUID("not-a-uuid"); err == nil {
			t.Error("Expected an error")
		}
	})
}
