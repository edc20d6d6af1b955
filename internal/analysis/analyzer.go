// Package analysis orchestrates one fetch-then-compute pass for a ticker:
// price history and fundamentals in, a complete AnalysisResult out.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/internal/indicator"
	"github.com/prasetyo/idxquant/internal/plan"
	"github.com/prasetyo/idxquant/internal/scoring"
	"github.com/prasetyo/idxquant/internal/sectors"
	"github.com/prasetyo/idxquant/pkg/logger"
)

// Mode selects the call-site constants: the quick dashboard view or the
// deep technical view. The two differ in plan profile and in how far
// back the "previous" indicator snapshot sits.
type Mode string

const (
	ModeQuick Mode = "quick"
	ModeDeep  Mode = "deep"
)

const defaultLookbackDays = 400

// Analyzer wires the external collaborators to the scoring core.
type Analyzer struct {
	provider contracts.MarketDataProvider
	scraper  contracts.BankRatioScraper

	fundamental *scoring.FundamentalScorer
	technical   *scoring.TechnicalScorer

	sectorTable *sectors.Table

	logger *logger.Logger
}

// New creates a new analyzer. scraper may be nil when bank ratio scraping
// is disabled; bank stocks then always use the proxy computation.
// table may be nil; it only backfills sectors the provider leaves blank.
func New(provider contracts.MarketDataProvider, scraper contracts.BankRatioScraper, table *sectors.Table, log *logger.Logger) *Analyzer {
	return &Analyzer{
		provider:    provider,
		scraper:     scraper,
		fundamental: scoring.NewFundamentalScorer(log),
		technical:   scoring.NewTechnicalScorer(log),
		sectorTable: table,
		logger:      log,
	}
}

// Analyze runs one full analysis pass for a ticker. The only fatal
// outcome is an empty price history (ErrNoData); every other missing
// input degrades to its documented default.
func (a *Analyzer) Analyze(ctx context.Context, ticker string, mode Mode) (*contracts.AnalysisResult, error) {
	history, err := a.provider.GetHistory(ctx, ticker, defaultLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", ticker, err)
	}
	if history.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", ticker, contracts.ErrNoData)
	}

	snapshots := indicator.Compute(history)
	cur := snapshots[len(snapshots)-1]
	prev := previousSnapshot(snapshots, mode)

	info, err := a.provider.GetFundamentalInfo(ctx, ticker)
	if err != nil {
		// Missing fundamentals are not fatal; score on zero values.
		a.logger.WithFields(map[string]interface{}{
			"ticker": ticker,
			"error":  err.Error(),
		}).Warn("Fundamental info unavailable, scoring on defaults")
		info = contracts.FundamentalInfo{}
	}
	if info.CurrentPrice == 0 {
		info.CurrentPrice = cur.Close
	}
	if info.Sector == "" && a.sectorTable != nil {
		info.Sector = a.sectorTable.Sector(ticker)
	}

	financials, err := a.provider.GetFinancialStatements(ctx, ticker)
	if err != nil {
		a.logger.WithFields(map[string]interface{}{
			"ticker": ticker,
			"error":  err.Error(),
		}).Warn("Financial statements unavailable")
		financials = nil
	}

	sector := scoring.ClassifySector(info)

	var ratios contracts.BankRatios
	if sector == contracts.SectorBank && a.scraper != nil {
		ratios, err = a.scraper.GetBankRatios(ctx, ticker)
		if err != nil {
			a.logger.WithFields(map[string]interface{}{
				"ticker": ticker,
				"error":  err.Error(),
			}).Warn("Bank ratio scrape failed, using proxy")
			ratios = contracts.BankRatios{}
		}
	}

	fundamentalScore, solvencyLabel := a.fundamental.Score(info, financials, ratios)
	technicalScore := a.technical.Score(cur, prev)

	builder := plan.NewBuilder(planProfile(mode))
	tradingPlan := builder.Build(cur.Close, cur.EMA9, cur.ATR14, technicalScore.Score)

	result := &contracts.AnalysisResult{
		Ticker:       ticker,
		Sector:       sector,
		CurrentPrice: cur.Close,

		Fundamental: fundamentalScore,
		Technical:   technicalScore,

		Sentiment: scoring.ClassifySentiment(cur),
		Plan:      tradingPlan,

		SolvencyLabel:     solvencyLabel,
		BankRatioMeasured: ratios.Measured,

		GeneratedAt: time.Now(),
	}

	a.logger.WithFields(map[string]interface{}{
		"ticker":      ticker,
		"mode":        mode,
		"fundamental": fundamentalScore.Score,
		"technical":   technicalScore.Score,
		"sentiment":   result.Sentiment,
	}).Info("Analysis completed")

	return result, nil
}

// previousSnapshot picks the reference bar for momentum checks: one
// session back for the quick view, five for the deep view. Short
// histories fall back to the earliest bar.
func previousSnapshot(snapshots []contracts.IndicatorSnapshot, mode Mode) contracts.IndicatorSnapshot {
	offset := 1
	if mode == ModeDeep {
		offset = 5
	}
	idx := len(snapshots) - 1 - offset
	if idx < 0 {
		idx = 0
	}
	return snapshots[idx]
}

func planProfile(mode Mode) plan.Profile {
	if mode == ModeDeep {
		return plan.DeepProfile()
	}
	return plan.QuickProfile()
}
