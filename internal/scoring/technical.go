package scoring

import (
	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// NoStrongSignal is the sentinel reason when no technical check fired.
const NoStrongSignal = "no strong signal"

// TechnicalScorer scores the latest indicator snapshot against the
// previous one. Purely additive over independent boolean checks:
// trend 30 + volume 20 + momentum 20 + price action 20 + volatility 10.
type TechnicalScorer struct {
	logger *logger.Logger
}

// NewTechnicalScorer creates a new technical scorer
func NewTechnicalScorer(log *logger.Logger) *TechnicalScorer {
	return &TechnicalScorer{logger: log}
}

// Score evaluates the current snapshot against the previous one.
func (s *TechnicalScorer) Score(cur, prev contracts.IndicatorSnapshot) contracts.ScoreResult {
	result := contracts.ScoreResult{Reasons: make([]string, 0, 10)}
	price := cur.Close

	// Trend (max 30)
	if price > cur.MA200 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "price above MA200")
	}
	if price > cur.MA50 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "price above MA50")
	}
	if price > cur.MA20 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "price above MA20")
	}

	// Volume / liquidity (max 20)
	if cur.Volume > cur.VolMA20 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "volume above 20-day average")
	}
	if price > cur.VWAP20 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "price above VWAP20")
	}

	// Momentum (max 20)
	if cur.RSI >= 50 && cur.RSI <= 70 {
		result.Score += 5
		result.Reasons = append(result.Reasons, "RSI in bullish band")
	}
	if cur.RSI > prev.RSI {
		result.Score += 5
		result.Reasons = append(result.Reasons, "RSI rising")
	}
	if cur.MACD > cur.Signal {
		result.Score += 10
		result.Reasons = append(result.Reasons, "MACD above signal")
	}

	// Price action (max 20)
	if cur.EMA9 > cur.EMA21 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "EMA9 above EMA21")
	}
	if cur.Close > prev.Close {
		result.Score += 10
		result.Reasons = append(result.Reasons, "close above previous close")
	}

	// Volatility / position (max 10)
	if price > cur.MA20 && price < cur.BollUpper {
		result.Score += 10
		result.Reasons = append(result.Reasons, "price between MA20 and upper band")
	}

	if len(result.Reasons) == 0 {
		result.Reasons = append(result.Reasons, NoStrongSignal)
	}

	s.logger.WithFields(map[string]interface{}{
		"price": price,
		"score": result.Score,
	}).Debug("Calculated technical score")

	return result
}
