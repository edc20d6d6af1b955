// Package handlers holds the HTTP handlers for the JSON API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prasetyo/idxquant/internal/analysis"
	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// AnalysisHandler serves single-ticker analysis requests.
type AnalysisHandler struct {
	analyzer *analysis.Analyzer
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analyzer *analysis.Analyzer, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		logger:   log,
	}
}

// Analyze runs one analysis pass for a ticker.
// GET /api/v1/analyze/{ticker}?mode=quick|deep
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := mux.Vars(r)["ticker"]

	mode := analysis.ModeQuick
	if r.URL.Query().Get("mode") == string(analysis.ModeDeep) {
		mode = analysis.ModeDeep
	}

	result, err := h.analyzer.Analyze(ctx, ticker, mode)
	if err != nil {
		if errors.Is(err, contracts.ErrNoData) {
			respondError(w, http.StatusNotFound, "No price history for "+ticker)
			return
		}
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"ticker": ticker,
			"mode":   mode,
		}).Error("Analysis failed")
		respondError(w, http.StatusBadGateway, "Analysis failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}
