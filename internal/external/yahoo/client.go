// Package yahoo implements the MarketDataProvider over the Yahoo Finance
// chart and quoteSummary APIs. IDX ticker normalization (bare code to
// .JK suffix) happens here and nowhere else.
package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/httputil"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// Client handles communication with Yahoo Finance.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// Interface check: Client is a full MarketDataProvider.
var _ contracts.MarketDataProvider = (*Client)(nil)

// NewClient creates a new Yahoo Finance client.
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://query1.finance.yahoo.com"
	}
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
	}
}

// NormalizeTicker maps a bare IDX code onto Yahoo's symbol convention.
// Codes that already carry a market suffix pass through unchanged.
func NormalizeTicker(ticker string) string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return ticker
	}
	if strings.Contains(ticker, ".") {
		return ticker
	}
	return ticker + ".JK"
}

// fetchJSON fetches a URL and returns the raw response body.
func (c *Client) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body failed: %w", err)
	}

	return body, nil
}
