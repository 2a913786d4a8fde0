package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/testutil"
)

// TestPortfolioSummaryEndpoint tests GET /api/portfolio/summary.
func TestPortfolioSummaryEndpoint(t *testing.T) {
	end := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)

	t.Run("returns priced holdings and totals", func(t *testing.T) {
		provider := testutil.NewMockProvider().
			WithSeries(testutil.MakeSeries("CBA.AX", end, 100, 110, 120))
		server := setupTestServer(t, provider)
		createHolding(t, server, "CBA.AX")

		resp, err := http.Get(server.URL + "/api/portfolio/summary")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var summary struct {
			Holdings []struct {
				Symbol       string  `json:"symbol"`
				CurrentValue float64 `json:"currentValue"`
				HasPrice     bool    `json:"hasPrice"`
			} `json:"holdings"`
			TotalValue float64 `json:"totalValue"`
			TotalCost  float64 `json:"totalCost"`
		}
		decodeBody(t, resp, &summary)

		if len(summary.Holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(summary.Holdings))
		}
		if !summary.Holdings[0].HasPrice || summary.Holdings[0].CurrentValue != 1200 {
			t.Errorf("Expected priced holding worth 1200, got %+v", summary.Holdings[0])
		}
		if summary.TotalValue != 1200 || summary.TotalCost != 1000 {
			t.Errorf("Expected totals 1200/1000, got %v/%v", summary.TotalValue, summary.TotalCost)
		}
	})

	t.Run("empty portfolio returns zero totals", func(t *testing.T) {
		server := setupTestServer(t, testutil.NewMockProvider())

		resp, err := http.Get(server.URL + "/api/portfolio/summary")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var summary struct {
			TotalValue float64 `json:"totalValue"`
		}
		decodeBody(t, resp, &summary)
		if summary.TotalValue != 0 {
			t.Errorf("Expected 0 total value, got %v", summary.TotalValue)
		}
	})
}

// TestPortfolioHistoryEndpoint tests GET /api/portfolio/history.
func TestPortfolioHistoryEndpoint(t *testing.T) {
	end := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)

	t.Run("returns historical and projected points", func(t *testing.T) {
		provider := testutil.NewMockProvider().
			WithSeries(testutil.MakeSeries("CBA.AX", end, 100, 101, 102))
		server := setupTestServer(t, provider)
		createHolding(t, server, "CBA.AX")

		resp, err := http.Get(server.URL + "/api/portfolio/history?projection_days=30")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var chart struct {
			Points []struct {
				Date       string   `json:"date"`
				Historical *float64 `json:"historical"`
				Expected   *float64 `json:"expected"`
			} `json:"points"`
			RateDefined bool `json:"rateDefined"`
		}
		decodeBody(t, resp, &chart)

		if len(chart.Points) != 3+30 {
			t.Fatalf("Expected 33 points, got %d", len(chart.Points))
		}
		if !chart.RateDefined {
			t.Error("Expected a defined rate")
		}
		pivot := chart.Points[2]
		if pivot.Historical == nil || pivot.Expected == nil {
			t.Error("Expected the pivot point to carry both columns")
		}
		if chart.Points[0].Expected != nil {
			t.Error("Expected no projection column before the pivot")
		}
		if chart.Points[len(chart.Points)-1].Historical != nil {
			t.Error("Expected no historical column after the pivot")
		}
	})

	t.Run("rejects negative projection days", func(t *testing.T) {
		server := setupTestServer(t, testutil.NewMockProvider())

		resp, err := http.Get(server.URL + "/api/portfolio/history?projection_days=-1")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("rejects non-numeric projection days", func(t *testing.T) {
		server := setupTestServer(t, testutil.NewMockProvider())

		resp, err := http.Get(server.URL + "/api/portfolio/history?projection_days=soon")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})
}

// TestWatchlistEndpoint tests GET /api/watchlist.
func TestWatchlistEndpoint(t *testing.T) {
	end := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)

	t.Run("returns prices for requested symbols", func(t *testing.T) {
		provider := testutil.NewMockProvider().
			WithSeries(testutil.MakeSeries("CBA.AX", end, 100, 105))
		server := setupTestServer(t, provider)

		resp, err := http.Get(server.URL + "/api/watchlist?symbols=CBA.AX,%20NODATA")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected 200, got %d", resp.StatusCode)
		}

		var entries []struct {
			Symbol   string  `json:"symbol"`
			Price    float64 `json:"price"`
			HasPrice bool    `json:"hasPrice"`
		}
		decodeBody(t, resp, &entries)

		if len(entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(entries))
		}
		if entries[0].Symbol != "CBA.AX" || entries[0].Price != 105 || !entries[0].HasPrice {
			t.Errorf("Expected CBA.AX at 105, got %+v", entries[0])
		}
		if entries[1].HasPrice {
			t.Errorf("Expected NODATA without a price, got %+v", entries[1])
		}
	})

	t.Run("missing symbols parameter returns 400", func(t *testing.T) {
		server := setupTestServer(t, testutil.NewMockProvider())

		resp, err := http.Get(server.URL + "/api/watchlist")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})
}
