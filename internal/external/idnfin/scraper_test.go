package idnfin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/idxquant/pkg/httputil"
	"github.com/prasetyo/idxquant/pkg/logger"
)

const ratioPage = `<html><body>
<table>
  <tr><th>Ratio</th><th>Value</th></tr>
  <tr><td>Capital Adequacy Ratio (CAR)</td><td>25,8%</td></tr>
  <tr><td>Non-Performing Loan (gross)</td><td>1.9%</td></tr>
  <tr><td>Return on Assets</td><td>3.1%</td></tr>
</table>
</body></html>`

func TestParseRatioTable(t *testing.T) {
	ratios := parseRatioTable(ratioPage)

	assert.True(t, ratios.Measured)
	assert.InDelta(t, 25.8, ratios.CAR, 1e-9)
	assert.InDelta(t, 1.9, ratios.NPL, 1e-9)
}

func TestParseRatioTablePartial(t *testing.T) {
	// Only CAR present: without both figures the whole record is dropped.
	html := `<table><tr><td>CAR</td><td>20%</td></tr></table>`
	ratios := parseRatioTable(html)

	assert.False(t, ratios.Measured)
	assert.Zero(t, ratios.CAR)
	assert.Zero(t, ratios.NPL)
}

func TestParseRatioTableNoTable(t *testing.T) {
	ratios := parseRatioTable(`<html><body><p>nothing here</p></body></html>`)
	assert.False(t, ratios.Measured)
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"25.8%", 25.8, true},
		{"25,8%", 25.8, true},
		{"25,8 %", 25.8, true},
		{"3", 3, true},
		{"n/a", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePercent(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.in)
		}
	}
}

func newTestScraper(t *testing.T, handler http.HandlerFunc) *Scraper {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := httputil.New(logger.Nop(), 5*time.Second).DisableRetry()
	return NewScraper(httpClient, server.URL, logger.Nop())
}

func TestGetBankRatios(t *testing.T) {
	scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/BBCA/ratios", r.URL.Path)
		fmt.Fprint(w, ratioPage)
	})

	ratios, err := scraper.GetBankRatios(context.Background(), "bbca.JK")

	require.NoError(t, err)
	assert.True(t, ratios.Measured)
	assert.InDelta(t, 25.8, ratios.CAR, 1e-9)
}

func TestGetBankRatiosPortalDown(t *testing.T) {
	scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ratios, err := scraper.GetBankRatios(context.Background(), "BBCA")

	// Scrape failure is soft: zero value, nil error.
	require.NoError(t, err)
	assert.False(t, ratios.Measured)
}
