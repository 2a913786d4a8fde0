package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Lewis310/MyPortfolio/internal/model"
	"github.com/Lewis310/MyPortfolio/internal/service"
)

// PortfolioHandler handles portfolio valuation and projection requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// PortfolioSummary returns the holdings table with current prices, values,
// cost basis, and profit/loss, plus portfolio totals.
func (h *PortfolioHandler) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.Summary(r.Context())
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to get portfolio summary",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// PortfolioHistory returns the combined historical value series and forward
// projection, aligned on date.
//
// Query parameters:
//   - projection_days: projection horizon (default 365, must be >= 0)
func (h *PortfolioHandler) PortfolioHistory(w http.ResponseWriter, r *http.Request) {
	horizonDays := service.DefaultHorizonDays
	if raw := r.URL.Query().Get("projection_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error": "projection_days must be a non-negative integer",
			})
			return
		}
		horizonDays = parsed
	}

	chart, err := h.portfolioService.History(r.Context(), horizonDays)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to get portfolio history",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, chart)
}

// Watchlist returns the latest price for each requested symbol.
//
// Query parameters:
//   - symbols: comma-separated ticker symbols (required)
func (h *PortfolioHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("symbols")
	if raw == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "symbols query parameter is required",
		})
		return
	}

	symbols := make([]string, 0)
	for _, symbol := range strings.Split(raw, ",") {
		symbol = strings.TrimSpace(symbol)
		if symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	if len(symbols) == 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "symbols query parameter is required",
		})
		return
	}

	entries, err := h.portfolioService.Watchlist(r.Context(), symbols)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "Failed to get watchlist",
			"detail": err.Error(),
		})
		return
	}

	if entries == nil {
		entries = []model.WatchlistEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
