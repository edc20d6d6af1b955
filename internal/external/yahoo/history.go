package yahoo

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/prasetyo/idxquant/internal/contracts"
)

// GetHistory fetches daily bars for a ticker, ascending by date. A ticker
// Yahoo does not know yields an empty history, not an error; transport
// failures are returned as errors.
func (c *Client) GetHistory(ctx context.Context, ticker string, lookbackDays int) (contracts.PriceHistory, error) {
	symbol := NormalizeTicker(ticker)

	url := fmt.Sprintf(
		"%s/v8/finance/chart/%s?range=%s&interval=1d&events=history",
		c.baseURL, symbol, rangeParam(lookbackDays),
	)

	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch chart for %s: %w", symbol, err)
	}

	history := parseChart(body)

	c.logger.WithFields(map[string]interface{}{
		"ticker": symbol,
		"bars":   history.Len(),
	}).Debug("Fetched price history")

	return history, nil
}

// rangeParam maps a lookback in days onto Yahoo's coarse range values.
func rangeParam(lookbackDays int) string {
	switch {
	case lookbackDays <= 0:
		return "1y"
	case lookbackDays <= 250:
		return "1y"
	case lookbackDays <= 500:
		return "2y"
	default:
		return "5y"
	}
}

// parseChart extracts bars from the chart API payload. Sessions with a
// null close (halted days) are skipped.
func parseChart(body []byte) contracts.PriceHistory {
	root := gjson.GetBytes(body, "chart.result.0")
	if !root.Exists() {
		return nil
	}

	timestamps := root.Get("timestamp").Array()
	quote := root.Get("indicators.quote.0")
	opens := quote.Get("open").Array()
	highs := quote.Get("high").Array()
	lows := quote.Get("low").Array()
	closes := quote.Get("close").Array()
	volumes := quote.Get("volume").Array()

	history := make(contracts.PriceHistory, 0, len(timestamps))
	for i, ts := range timestamps {
		if i >= len(closes) || closes[i].Type == gjson.Null {
			continue
		}
		bar := contracts.PriceBar{
			Date:  time.Unix(ts.Int(), 0).UTC(),
			Close: closes[i].Float(),
		}
		if i < len(opens) {
			bar.Open = opens[i].Float()
		}
		if i < len(highs) {
			bar.High = highs[i].Float()
		}
		if i < len(lows) {
			bar.Low = lows[i].Float()
		}
		if i < len(volumes) {
			bar.Volume = volumes[i].Float()
		}
		history = append(history, bar)
	}

	return history
}
