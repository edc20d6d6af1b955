package contracts

import "time"

// PriceBar represents one daily trading session.
// Invariant: High >= max(Open, Close, Low), Low <= min(Open, Close, High).
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceHistory is an ordered daily price series, ascending by date,
// unique per date. May be shorter than any indicator window; indicator
// code degrades to sentinels instead of failing.
type PriceHistory []PriceBar

// Len returns the number of bars.
func (h PriceHistory) Len() int {
	return len(h)
}

// Last returns the most recent bar. Callers must check Len() > 0 first.
func (h PriceHistory) Last() PriceBar {
	return h[len(h)-1]
}

// Closes returns the close series.
func (h PriceHistory) Closes() []float64 {
	closes := make([]float64, len(h))
	for i, bar := range h {
		closes[i] = bar.Close
	}
	return closes
}

// IndicatorSnapshot holds every computed indicator value at one bar.
// A field whose window exceeds the available history is 0, except RSI
// which defaults to the neutral 50.
type IndicatorSnapshot struct {
	Date   time.Time `json:"date"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`

	MA20  float64 `json:"ma20"`
	MA50  float64 `json:"ma50"`
	MA200 float64 `json:"ma200"`

	EMA9  float64 `json:"ema9"`
	EMA21 float64 `json:"ema21"`
	EMA12 float64 `json:"ema12"`
	EMA26 float64 `json:"ema26"`

	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`

	RSI float64 `json:"rsi"`

	VWAP20 float64 `json:"vwap20"`

	BollMid   float64 `json:"boll_mid"`
	BollUpper float64 `json:"boll_upper"`
	BollLower float64 `json:"boll_lower"`

	ATR14 float64 `json:"atr14"`

	Value     float64 `json:"value"` // close * volume
	VolMA20   float64 `json:"vol_ma20"`
	ValueMA20 float64 `json:"value_ma20"`
}
