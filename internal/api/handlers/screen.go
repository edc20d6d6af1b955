package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/prasetyo/idxquant/internal/screening"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// ScreenHandler serves screening sweep requests.
type ScreenHandler struct {
	ranker *screening.Ranker
	logger *logger.Logger
}

// NewScreenHandler creates a new screening handler.
func NewScreenHandler(ranker *screening.Ranker, log *logger.Logger) *ScreenHandler {
	return &ScreenHandler{
		ranker: ranker,
		logger: log,
	}
}

// Screen sweeps the universe and returns the ranked candidates.
// GET /api/v1/screen?tickers=BBCA,TLKM (optional, defaults to the
// built-in universe)
func (h *ScreenHandler) Screen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	universe := screening.DefaultUniverse()
	if raw := r.URL.Query().Get("tickers"); raw != "" {
		universe = nil
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				universe = append(universe, strings.ToUpper(t))
			}
		}
	}

	result, err := h.ranker.Screen(ctx, universe)
	if err != nil {
		h.logger.WithError(err).Error("Screening sweep failed")
		respondError(w, http.StatusBadGateway, "Screening failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
