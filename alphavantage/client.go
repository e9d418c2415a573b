// Package alphavantage fetches daily FX time series from the Alpha Vantage API.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rustyeddy/fxsignal/market"
)

// DefaultBaseURL is the public Alpha Vantage endpoint.
const DefaultBaseURL = "https://www.alphavantage.co"

// ErrUpstream means the API or network failed. It is distinct from the
// data-shape errors reported by the market package.
var ErrUpstream = errors.New("alphavantage: upstream unavailable")

// Client is an Alpha Vantage API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client against the public endpoint.
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests, proxies).
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// fxDailyResponse represents the FX_DAILY API response.
type fxDailyResponse struct {
	Meta         map[string]string `json:"Meta Data"`
	Series       market.RawSeries  `json:"Time Series FX (Daily)"`
	ErrorMessage string            `json:"Error Message"`
	Note         string            `json:"Note"`
	Information  string            `json:"Information"`
}

// FXDaily fetches the daily series for a currency pair, e.g. ("EUR", "USD").
// Set full to request the complete history instead of the trailing 100 days.
func (c *Client) FXDaily(ctx context.Context, from, to string, full bool) (market.RawSeries, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("from and to currencies are required")
	}

	params := url.Values{}
	params.Set("function", "FX_DAILY")
	params.Set("from_symbol", from)
	params.Set("to_symbol", to)
	params.Set("apikey", c.apiKey)
	if full {
		params.Set("outputsize", "full")
	}

	apiURL := fmt.Sprintf("%s/query?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var apiResp fxDailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	return seriesFromResponse(apiResp)
}

func seriesFromResponse(r fxDailyResponse) (market.RawSeries, error) {
	switch {
	case r.ErrorMessage != "":
		return nil, fmt.Errorf("%w: %s", ErrUpstream, r.ErrorMessage)
	case r.Note != "":
		// Rate-limit responses come back with status 200 and a "Note" body.
		return nil, fmt.Errorf("%w: %s", ErrUpstream, r.Note)
	case r.Information != "":
		return nil, fmt.Errorf("%w: %s", ErrUpstream, r.Information)
	case r.Series == nil:
		return nil, fmt.Errorf("%w: response has no time series", ErrUpstream)
	}
	return r.Series, nil
}
