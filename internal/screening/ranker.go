// Package screening sweeps a fixed ticker universe with a reduced
// technical check and ranks the survivors by a coarse confidence score.
package screening

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/internal/indicator"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// Config controls the sweep.
type Config struct {
	// Concurrency bounds the worker pool. Default 1, capped at 5 to
	// respect the provider rate limit.
	Concurrency int

	// ItemDelay is the politeness throttle between items per worker.
	ItemDelay time.Duration

	// LookbackDays of history fetched per ticker.
	LookbackDays int

	// Gates
	MinPrice    float64 // minimum close
	MinNotional float64 // minimum 20-day average traded value

	BaseScore int // awarded to every passer
	RSIBonus  int // added when RSI sits in the sweet band
}

// DefaultConfig returns the default sweep configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency:  1,
		ItemDelay:    500 * time.Millisecond,
		LookbackDays: 260,
		MinPrice:     55,
		MinNotional:  10_000_000_000, // 10B IDR daily notional
		BaseScore:    60,
		RSIBonus:     20,
	}
}

// Ranker batch-applies the reduced technical check across a universe.
type Ranker struct {
	provider contracts.MarketDataProvider
	config   Config
	logger   *logger.Logger
}

// NewRanker creates a new screening ranker.
func NewRanker(provider contracts.MarketDataProvider, config Config, log *logger.Logger) *Ranker {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	if config.Concurrency > 5 {
		config.Concurrency = 5
	}
	return &Ranker{
		provider: provider,
		config:   config,
		logger:   log,
	}
}

// sweepItem pairs a universe position with its outcome so results can be
// re-assembled in first-appearance order before ranking.
type sweepItem struct {
	index     int
	ticker    string
	candidate *contracts.ScreeningCandidate
	missed    bool
}

// Screen sweeps the universe and returns passers sorted descending by
// score. Ties keep first-appearance order. A failed fetch for one ticker
// is recorded as a miss and never aborts the batch. An empty universe
// returns an empty result.
func (r *Ranker) Screen(ctx context.Context, universe []string) (contracts.ScreeningResult, error) {
	result := contracts.ScreeningResult{
		Candidates: make([]contracts.ScreeningCandidate, 0, len(universe)),
		SweptAt:    time.Now(),
	}
	if len(universe) == 0 {
		return result, nil
	}

	jobs := make(chan sweepItem)
	items := make([]sweepItem, len(universe))

	var wg sync.WaitGroup
	for w := 0; w < r.config.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				items[job.index] = r.checkTicker(ctx, job)
				if r.config.ItemDelay > 0 {
					select {
					case <-ctx.Done():
						return
					case <-time.After(r.config.ItemDelay):
					}
				}
			}
		}()
	}

	for i, ticker := range universe {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return result, ctx.Err()
		case jobs <- sweepItem{index: i, ticker: ticker}:
		}
	}
	close(jobs)
	wg.Wait()

	for _, item := range items {
		if item.missed {
			result.Missed = append(result.Missed, item.ticker)
			continue
		}
		if item.candidate != nil {
			result.Candidates = append(result.Candidates, *item.candidate)
		}
	}

	// Stable sort keeps first-appearance order on equal scores.
	sort.SliceStable(result.Candidates, func(i, j int) bool {
		return result.Candidates[i].Score > result.Candidates[j].Score
	})

	r.logger.WithFields(map[string]interface{}{
		"universe": len(universe),
		"passed":   len(result.Candidates),
		"missed":   len(result.Missed),
	}).Info("Screening sweep completed")

	return result, nil
}

// checkTicker fetches history for one ticker and applies the reduced
// check. Returns a candidate, a filtered no-op, or a miss.
func (r *Ranker) checkTicker(ctx context.Context, job sweepItem) sweepItem {
	history, err := r.provider.GetHistory(ctx, job.ticker, r.config.LookbackDays)
	if err != nil || history.Len() == 0 {
		r.logger.WithFields(map[string]interface{}{
			"ticker": job.ticker,
			"error":  errString(err),
		}).Warn("Screening fetch failed, recording miss")
		job.missed = true
		return job
	}

	snapshots := indicator.Compute(history)
	cur := snapshots[len(snapshots)-1]

	if !r.passes(cur) {
		return job
	}

	score := r.config.BaseScore
	if cur.RSI >= 50 && cur.RSI <= 68 {
		score += r.config.RSIBonus
	}

	job.candidate = &contracts.ScreeningCandidate{
		Ticker:   job.ticker,
		Score:    score,
		Price:    cur.Close,
		RSI:      cur.RSI,
		Notional: cur.ValueMA20,
	}
	return job
}

// passes applies the uptrend, RSI band and price/liquidity gates.
func (r *Ranker) passes(cur contracts.IndicatorSnapshot) bool {
	// Uptrend
	if cur.Close <= cur.MA20 || cur.Close <= cur.MA50 {
		return false
	}
	// RSI band: skip oversold collapse and overbought chase
	if cur.RSI < 40 || cur.RSI > 75 {
		return false
	}
	// Gates
	if cur.Close <= r.config.MinPrice {
		return false
	}
	if cur.ValueMA20 <= r.config.MinNotional {
		return false
	}
	return true
}

func errString(err error) string {
	if err == nil {
		return "empty history"
	}
	return err.Error()
}

// DefaultUniverse is the fixed IDX ticker list the sweep runs over.
func DefaultUniverse() []string {
	return []string{
		"BBCA", "BBRI", "BMRI", "BBNI", "BRIS",
		"TLKM", "ISAT", "EXCL",
		"ASII", "UNTR", "AUTO",
		"UNVR", "ICBP", "INDF", "MYOR", "KLBF", "SIDO",
		"ADRO", "PTBA", "ITMG", "ANTM", "INCO", "MDKA", "TINS",
		"JSMR", "PGAS", "SMGR", "INTP", "WIKA", "PTPP",
		"AMRT", "MAPI", "ACES",
		"BRPT", "TPIA", "MEDC", "AKRA", "CPIN", "JPFA", "GOTO",
	}
}
