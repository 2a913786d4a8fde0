package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lewis310/MyPortfolio/internal/api/request"
	"github.com/Lewis310/MyPortfolio/internal/apperrors"
	"github.com/Lewis310/MyPortfolio/internal/model"
	"github.com/Lewis310/MyPortfolio/internal/service"
	"github.com/Lewis310/MyPortfolio/internal/validation"
)

// HoldingHandler handles holding-related HTTP requests
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// HoldingResponse represents a holding in API responses
type HoldingResponse struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	DisplayName   string  `json:"displayName"`
	Units         int64   `json:"units"`
	PurchasePrice float64 `json:"purchasePrice"`
	PurchaseDate  string  `json:"purchaseDate"`
	Notes         string  `json:"notes"`
	AddedAt       string  `json:"addedAt"`
}

func toHoldingResponse(h model.Holding) HoldingResponse {
	return HoldingResponse{
		ID:            h.ID,
		Symbol:        h.Symbol,
		DisplayName:   h.DisplayName,
		Units:         h.Units,
		PurchasePrice: h.PurchasePrice,
		PurchaseDate:  h.PurchaseDate.Format("2006-01-02"),
		Notes:         h.Notes,
		AddedAt:       h.AddedAt.Format(time.RFC3339),
	}
}

// Holdings lists all recorded holdings
func (h *HoldingHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.holdingService.GetAllHoldings()
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve holdings",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	response := make([]HoldingResponse, len(holdings))
	for i, holding := range holdings {
		response[i] = toHoldingResponse(holding)
	}

	respondJSON(w, http.StatusOK, response)
}

// CreateHolding records a new holding
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Validation failed",
			"detail": err.Error(),
		})
		return
	}

	purchaseDate, err := validation.ParseDate(req.PurchaseDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Failed to parse purchase date",
			"detail": err.Error(),
		})
		return
	}

	holding, err := h.holdingService.CreateHolding(model.Holding{
		Symbol:        req.Symbol,
		DisplayName:   req.DisplayName,
		Units:         req.Units,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		Notes:         req.Notes,
	})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to create holding",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, toHoldingResponse(holding))
}

// UpdateHolding applies an explicit edit to an existing holding
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	var req request.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "Validation failed",
			"detail": err.Error(),
		})
		return
	}

	holding, err := h.holdingService.GetHolding(id)
	if errors.Is(err, apperrors.ErrHoldingNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": "Holding not found",
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to retrieve holding",
			"detail": err.Error(),
		})
		return
	}

	if req.Symbol != nil {
		holding.Symbol = *req.Symbol
	}
	if req.DisplayName != nil {
		holding.DisplayName = *req.DisplayName
	}
	if req.Units != nil {
		holding.Units = *req.Units
	}
	if req.PurchasePrice != nil {
		holding.PurchasePrice = *req.PurchasePrice
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := validation.ParseDate(*req.PurchaseDate)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error":  "Failed to parse purchase date",
				"detail": err.Error(),
			})
			return
		}
		holding.PurchaseDate = purchaseDate
	}
	if req.Notes != nil {
		holding.Notes = *req.Notes
	}

	updated, err := h.holdingService.UpdateHolding(holding)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to update holding",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, toHoldingResponse(updated))
}

// DeleteHolding removes a holding
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	err := h.holdingService.DeleteHolding(id)
	if errors.Is(err, apperrors.ErrHoldingNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": "Holding not found",
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to delete holding",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
