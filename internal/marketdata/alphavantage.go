package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
	"github.com/Lewis310/MyPortfolio/internal/model"
)

const defaultBaseURL = "https://www.alphavantage.co/query"

// AlphaVantageClient fetches daily adjusted closing prices from the Alpha
// Vantage API. It wraps an HTTP client and routes every request through the
// shared Limiter so the API-key-wide budget is respected regardless of how
// many symbols are fetched concurrently.
type AlphaVantageClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	limiter    *Limiter
}

// NewAlphaVantageClient creates a new Alpha Vantage client.
//
// Parameters:
//   - apiKey: the Alpha Vantage API key
//   - limiter: the shared call limiter; must not be nil
func NewAlphaVantageClient(apiKey string, limiter *Limiter) *AlphaVantageClient {
	return &AlphaVantageClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		limiter:    limiter,
	}
}

// WithBaseURL points the client at an alternate endpoint. Used by tests to
// target an httptest server.
func (c *AlphaVantageClient) WithBaseURL(baseURL string) *AlphaVantageClient {
	c.baseURL = baseURL
	return c
}

// Remaining reports how many live calls are left in the daily budget.
func (c *AlphaVantageClient) Remaining() int {
	return c.limiter.Remaining()
}

// avResponse maps the TIME_SERIES_DAILY_ADJUSTED response shape. Alpha
// Vantage returns prices as strings keyed by date, plus informational
// Note/Information fields when the request was throttled or rejected.
type avResponse struct {
	TimeSeries  map[string]avBar `json:"Time Series (Daily)"`
	Note        string           `json:"Note"`
	Information string           `json:"Information"`
}

type avBar struct {
	AdjustedClose string `json:"5. adjusted close"`
}

// FetchHistory fetches the daily adjusted close series for a symbol, oldest
// first, trimmed to the most recent lookbackDays observations.
//
// Error contract:
//   - budget exhausted: ErrRateLimitExceeded without attempting the call
//   - transport failure or timeout: ErrDataUnavailable (recoverable; the
//     fallback provider substitutes synthetic data)
//   - malformed or missing response body: empty series, nil error; the
//     valuator treats the symbol as having no data, contributing no value
//     and no return
func (c *AlphaVantageClient) FetchHistory(ctx context.Context, symbol string, lookbackDays int) (model.PriceSeries, error) {
	series := model.PriceSeries{Symbol: symbol}

	if err := c.limiter.Acquire(); err != nil {
		return series, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY_ADJUSTED")
	params.Set("symbol", symbol)
	params.Set("apikey", c.apiKey)
	params.Set("outputsize", "compact")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return series, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return series, fmt.Errorf("fetch %s: %w: %w", symbol, apperrors.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return series, fmt.Errorf("fetch %s: %w: %w", symbol, apperrors.ErrDataUnavailable, err)
	}

	var parsed avResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Printf("alphavantage: malformed response body for %s: %v", symbol, err)
		return series, nil
	}
	if len(parsed.TimeSeries) == 0 {
		if parsed.Note != "" || parsed.Information != "" {
			log.Printf("alphavantage: no data for %s: %s%s", symbol, parsed.Note, parsed.Information)
		}
		return series, nil
	}

	series.Points = parseTimeSeries(symbol, parsed.TimeSeries)
	if lookbackDays > 0 && len(series.Points) > lookbackDays {
		series.Points = series.Points[len(series.Points)-lookbackDays:]
	}
	return series, nil
}

// parseTimeSeries converts the date-keyed bar map into an ordered point
// slice, oldest first. Entries with unparseable dates or prices are skipped.
func parseTimeSeries(symbol string, bars map[string]avBar) []model.PricePoint {
	points := make([]model.PricePoint, 0, len(bars))
	for day, bar := range bars {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			log.Printf("alphavantage: skipping %s entry with bad date %q: %v", symbol, day, err)
			continue
		}
		price, err := strconv.ParseFloat(bar.AdjustedClose, 64)
		if err != nil {
			log.Printf("alphavantage: skipping %s entry %s with bad price %q: %v", symbol, day, bar.AdjustedClose, err)
			continue
		}
		points = append(points, model.PricePoint{Date: Day(date), Price: price})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
