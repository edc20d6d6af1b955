package contracts

import "time"

// SectorClass is the scoring branch a stock is classified into.
// Classification is total: every stock lands in exactly one class.
type SectorClass string

const (
	SectorBank    SectorClass = "bank"
	SectorInfra   SectorClass = "infrastructure"
	SectorGeneral SectorClass = "general"
)

// Sentiment is the coarse trend label derived from price vs. moving averages.
type Sentiment string

const (
	SentimentStrongBullish Sentiment = "strong bullish"
	SentimentMildBullish   Sentiment = "mild bullish"
	SentimentBearish       Sentiment = "bearish"
	SentimentNeutral       Sentiment = "neutral/sideways"
)

// ScoreResult is a 0-100 score plus the labels of every check that fired.
// The fundamental score is reported unclamped: degenerate records can
// exceed 100 and are surfaced as-is.
type ScoreResult struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// StopBasis records which rule produced the final stop-loss.
type StopBasis string

const (
	StopBasisATR   StopBasis = "atr"
	StopBasisFloor StopBasis = "floor" // 8%-of-price hard floor won
)

// TradingPlan is the entry band, stop-loss and take-profit derived from
// current price, EMA9, ATR14 and the technical score.
// Invariants: StopLoss < EntryLow, TakeProfit > EntryHigh,
// StopLoss >= 0.92 * current price.
type TradingPlan struct {
	Profile   string    `json:"profile"` // quick or deep
	EntryLow  float64   `json:"entry_low"`
	EntryHigh float64   `json:"entry_high"`
	StopLoss  float64   `json:"stop_loss"`
	StopBasis StopBasis `json:"stop_basis"`

	TakeProfit      float64   `json:"take_profit"`
	TakeProfitTiers []float64 `json:"take_profit_tiers,omitempty"` // deep profile only

	RiskPct   float64 `json:"risk_pct"`
	RewardPct float64 `json:"reward_pct"`

	Recommendation string `json:"recommendation"`
}

// AnalysisResult bundles everything the presentation layer needs to render
// a dashboard view and the PDF export without recomputing anything.
type AnalysisResult struct {
	Ticker       string      `json:"ticker"`
	Sector       SectorClass `json:"sector"`
	CurrentPrice float64     `json:"current_price"`

	Fundamental ScoreResult `json:"fundamental"`
	Technical   ScoreResult `json:"technical"`

	Sentiment Sentiment   `json:"sentiment"`
	Plan      TradingPlan `json:"plan"`

	SolvencyLabel     string `json:"solvency_label"`
	BankRatioMeasured bool   `json:"bank_ratio_measured"` // scraped vs. proxy provenance

	GeneratedAt time.Time `json:"generated_at"`
}

// ScreeningCandidate is one ticker that passed the screening gates.
type ScreeningCandidate struct {
	Ticker   string  `json:"ticker"`
	Score    int     `json:"score"`
	Price    float64 `json:"price"`
	RSI      float64 `json:"rsi"`
	Notional float64 `json:"notional"` // 20-day average traded value
}

// ScreeningResult is the ranked outcome of one screening sweep.
// Missed records tickers whose fetch or check failed; a per-ticker
// failure never aborts the batch.
type ScreeningResult struct {
	Candidates []ScreeningCandidate `json:"candidates"`
	Missed     []string             `json:"missed,omitempty"`
	SweptAt    time.Time            `json:"swept_at"`
}
