package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/idxquant/internal/analysis"
	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/internal/screening"
	"github.com/prasetyo/idxquant/pkg/logger"
)

type stubProvider struct {
	histories map[string]contracts.PriceHistory
}

func (s *stubProvider) GetHistory(ctx context.Context, ticker string, lookbackDays int) (contracts.PriceHistory, error) {
	return s.histories[ticker], nil
}

func (s *stubProvider) GetFundamentalInfo(ctx context.Context, ticker string) (contracts.FundamentalInfo, error) {
	return contracts.FundamentalInfo{Sector: "Consumer Defensive"}, nil
}

func (s *stubProvider) GetFinancialStatements(ctx context.Context, ticker string) ([]contracts.FinancialPeriod, error) {
	return nil, nil
}

func risingHistory(n int) contracts.PriceHistory {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	history := make(contracts.PriceHistory, n)
	for i := range history {
		c := 1000 + float64(i)*2
		history[i] = contracts.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 50_000_000,
		}
	}
	return history
}

func newTestRouter(provider contracts.MarketDataProvider) http.Handler {
	log := logger.Nop()
	analyzer := analysis.New(provider, nil, nil, log)

	cfg := screening.DefaultConfig()
	cfg.ItemDelay = 0
	ranker := screening.NewRanker(provider, cfg, log)

	r := mux.NewRouter()
	analysisHandler := NewAnalysisHandler(analyzer, log)
	screenHandler := NewScreenHandler(ranker, log)
	r.HandleFunc("/api/v1/analyze/{ticker}", analysisHandler.Analyze).Methods("GET")
	r.HandleFunc("/api/v1/screen", screenHandler.Screen).Methods("GET")
	return r
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(&stubProvider{
		histories: map[string]contracts.PriceHistory{"TLKM": risingHistory(260)},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze/TLKM?mode=deep", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Success bool                     `json:"success"`
		Data    contracts.AnalysisResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "TLKM", payload.Data.Ticker)
	assert.Equal(t, "deep", payload.Data.Plan.Profile)
}

func TestAnalyzeEndpointNoData(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze/ZZZZ", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScreenEndpoint(t *testing.T) {
	router := newTestRouter(&stubProvider{
		histories: map[string]contracts.PriceHistory{
			"BBCA": risingHistory(260),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/screen?tickers=bbca,GOTO", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Success bool                      `json:"success"`
		Data    contracts.ScreeningResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	require.Len(t, payload.Data.Candidates, 1)
	assert.Equal(t, "BBCA", payload.Data.Candidates[0].Ticker)
	assert.Equal(t, []string{"GOTO"}, payload.Data.Missed)
}
