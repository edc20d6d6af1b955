// Package indicator derives the full technical indicator series from a
// daily price history. Every function is pure; a window that exceeds the
// available history yields the documented sentinel (0, or 50 for RSI)
// instead of an error.
package indicator

import (
	"math"

	"github.com/prasetyo/idxquant/internal/contracts"
)

const (
	// NeutralRSI is substituted whenever RSI is undefined (short history
	// or zero loss average). Guards against NaN leaking into scores.
	NeutralRSI = 50.0

	rsiPeriod  = 14
	atrPeriod  = 14
	rollWindow = 20
)

// Compute calculates an IndicatorSnapshot for every bar of the history.
// The history must be ascending by date; an empty history returns nil.
func Compute(history contracts.PriceHistory) []contracts.IndicatorSnapshot {
	n := history.Len()
	if n == 0 {
		return nil
	}

	closes := history.Closes()

	ema9 := emaSeries(closes, 9)
	ema21 := emaSeries(closes, 21)
	ema12 := emaSeries(closes, 12)
	ema26 := emaSeries(closes, 26)

	macd := make([]float64, n)
	for i := 0; i < n; i++ {
		macd[i] = ema12[i] - ema26[i]
	}
	signal := emaSeries(macd, 9)

	snapshots := make([]contracts.IndicatorSnapshot, n)
	for i := 0; i < n; i++ {
		bar := history[i]

		snap := contracts.IndicatorSnapshot{
			Date:   bar.Date,
			Close:  bar.Close,
			Volume: bar.Volume,

			MA20:  sma(closes, i, 20),
			MA50:  sma(closes, i, 50),
			MA200: sma(closes, i, 200),

			EMA9:  ema9[i],
			EMA21: ema21[i],
			EMA12: ema12[i],
			EMA26: ema26[i],

			MACD:      macd[i],
			Signal:    signal[i],
			Histogram: macd[i] - signal[i],

			RSI: rsiAt(closes, i),

			VWAP20: vwapAt(history, i, rollWindow),

			ATR14: atrAt(history, i, atrPeriod),

			Value: bar.Close * bar.Volume,
		}

		mid := snap.MA20
		if mid > 0 {
			std := stdAt(closes, i, rollWindow)
			snap.BollMid = mid
			snap.BollUpper = mid + 2*std
			snap.BollLower = mid - 2*std
		}

		snap.VolMA20 = volMAAt(history, i, rollWindow)
		snap.ValueMA20 = valueMAAt(history, i, rollWindow)

		snapshots[i] = snap
	}

	return snapshots
}

// sma returns the simple moving average of the window ending at index i,
// or 0 when the window does not fit.
func sma(values []float64, i, window int) float64 {
	if i+1 < window {
		return 0
	}
	var sum float64
	for j := i - window + 1; j <= i; j++ {
		sum += values[j]
	}
	return sum / float64(window)
}

// emaSeries computes the exponential moving average with adjust=False
// semantics: seeded by the first value, not a simple average.
func emaSeries(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	k := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}

// rsiAt computes RSI14 as a simple rolling mean of gains over losses.
// Zero loss average (flat or monotone-up window) maps to the neutral
// sentinel, never NaN.
func rsiAt(closes []float64, i int) float64 {
	if i < rsiPeriod {
		return NeutralRSI
	}

	var gains, losses float64
	for j := i - rsiPeriod + 1; j <= i; j++ {
		change := closes[j] - closes[j-1]
		if change > 0 {
			gains += change
		} else {
			losses += -change
		}
	}

	avgGain := gains / float64(rsiPeriod)
	avgLoss := losses / float64(rsiPeriod)

	if avgLoss == 0 {
		return NeutralRSI
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// vwapAt computes the rolling volume-weighted average of the typical
// price (high+low+close)/3. Zero total volume maps to 0.
func vwapAt(history contracts.PriceHistory, i, window int) float64 {
	if i+1 < window {
		return 0
	}
	var pvSum, volSum float64
	for j := i - window + 1; j <= i; j++ {
		bar := history[j]
		typical := (bar.High + bar.Low + bar.Close) / 3
		pvSum += typical * bar.Volume
		volSum += bar.Volume
	}
	if volSum == 0 {
		return 0
	}
	return pvSum / volSum
}

// atrAt computes the rolling mean of the true range. Needs window+1 bars
// because the true range references the previous close.
func atrAt(history contracts.PriceHistory, i, window int) float64 {
	if i < window {
		return 0
	}
	var sum float64
	for j := i - window + 1; j <= i; j++ {
		bar := history[j]
		prevClose := history[j-1].Close
		tr := bar.High - bar.Low
		if hc := math.Abs(bar.High - prevClose); hc > tr {
			tr = hc
		}
		if lc := math.Abs(bar.Low - prevClose); lc > tr {
			tr = lc
		}
		sum += tr
	}
	return sum / float64(window)
}

// stdAt computes the sample standard deviation of the window ending at i.
func stdAt(values []float64, i, window int) float64 {
	if i+1 < window || window < 2 {
		return 0
	}
	mean := sma(values, i, window)
	var sq float64
	for j := i - window + 1; j <= i; j++ {
		d := values[j] - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(window-1))
}

func volMAAt(history contracts.PriceHistory, i, window int) float64 {
	if i+1 < window {
		return 0
	}
	var sum float64
	for j := i - window + 1; j <= i; j++ {
		sum += history[j].Volume
	}
	return sum / float64(window)
}

func valueMAAt(history contracts.PriceHistory, i, window int) float64 {
	if i+1 < window {
		return 0
	}
	var sum float64
	for j := i - window + 1; j <= i; j++ {
		sum += history[j].Close * history[j].Volume
	}
	return sum / float64(window)
}
