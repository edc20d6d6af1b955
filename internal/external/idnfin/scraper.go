// Package idnfin scrapes supplemental bank solvency ratios (CAR, NPL)
// from a financial portal. The scorer only ever sees the optional float
// fields; HTML and network concerns stay inside this package.
package idnfin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/httputil"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// Scraper fetches bank ratios from the portal's ratio table.
type Scraper struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

var _ contracts.BankRatioScraper = (*Scraper)(nil)

// NewScraper creates a new bank ratio scraper.
func NewScraper(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Scraper {
	if baseURL == "" {
		baseURL = "https://www.idnfinancials.com"
	}
	return &Scraper{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
	}
}

// GetBankRatios scrapes CAR and NPL for a bank ticker. On any failure it
// returns the zero value with Measured=false and a nil error; the caller
// falls back to its proxy computation.
func (s *Scraper) GetBankRatios(ctx context.Context, ticker string) (contracts.BankRatios, error) {
	code := strings.ToUpper(strings.TrimSpace(strings.TrimSuffix(ticker, ".JK")))
	url := fmt.Sprintf("%s/%s/ratios", s.baseURL, code)

	resp, err := s.httpClient.Get(ctx, url)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"ticker": code,
			"error":  err.Error(),
		}).Warn("Bank ratio fetch failed")
		return contracts.BankRatios{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WithFields(map[string]interface{}{
			"ticker":      code,
			"status_code": resp.StatusCode,
		}).Warn("Bank ratio fetch returned non-200")
		return contracts.BankRatios{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return contracts.BankRatios{}, nil
	}

	ratios := parseRatioTable(string(body))

	s.logger.WithFields(map[string]interface{}{
		"ticker":   code,
		"car":      ratios.CAR,
		"npl":      ratios.NPL,
		"measured": ratios.Measured,
	}).Debug("Scraped bank ratios")

	return ratios, nil
}

var percentRe = regexp.MustCompile(`([0-9]+(?:[.,][0-9]+)?)\s*%?`)

// parseRatioTable walks the ratio table rows looking for CAR and NPL
// labels. Measured is set only when both values were found.
func parseRatioTable(html string) contracts.BankRatios {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return contracts.BankRatios{}
	}

	var ratios contracts.BankRatios
	var foundCAR, foundNPL bool

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}

		label := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
		value := strings.TrimSpace(cells.Eq(1).Text())

		switch {
		case strings.Contains(label, "capital adequacy") || strings.Contains(label, "car"):
			if v, ok := parsePercent(value); ok && !foundCAR {
				ratios.CAR = v
				foundCAR = true
			}
		case strings.Contains(label, "non-performing") || strings.Contains(label, "npl"):
			if v, ok := parsePercent(value); ok && !foundNPL {
				ratios.NPL = v
				foundNPL = true
			}
		}
	})

	ratios.Measured = foundCAR && foundNPL
	if !ratios.Measured {
		return contracts.BankRatios{}
	}
	return ratios
}

// parsePercent extracts a percentage figure from a table cell, accepting
// both decimal point and Indonesian decimal comma.
func parsePercent(text string) (float64, bool) {
	match := percentRe.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	normalized := strings.ReplaceAll(match[1], ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
