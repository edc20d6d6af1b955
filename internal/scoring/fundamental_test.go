package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/logger"
)

func newFundamentalScorer() *FundamentalScorer {
	return NewFundamentalScorer(logger.Nop())
}

func TestScoreGeneralStockFullHouse(t *testing.T) {
	s := newFundamentalScorer()

	info := contracts.FundamentalInfo{
		Name:   "PT Unilever Indonesia Tbk",
		Sector: "Consumer Defensive",

		ReturnOnEquity:    0.20, // 20% -> 10
		ProfitMargins:     0.15, // 15% -> 10
		DebtToEquity:      0.4,  // -> 10
		CurrentRatio:      2.0,  // -> 10
		TrailingPE:        15,   // near proxy mean -> 5
		PriceToBook:       2.0,  // near proxy mean -> 5
		EarningsGrowth:    0.20, // 20% -> 10
		RevenueGrowth:     0.12, // 12% -> 10
		OperatingCashflow: 120,
		NetIncomeToCommon: 100, // OCF > NI -> 10
		DividendYield:     0.03, // 3% -> 5
	}

	result, label := s.Score(info, nil, contracts.BankRatios{})

	assert.Equal(t, 85, result.Score)
	assert.NotEmpty(t, result.Reasons)
	assert.Contains(t, label, "DER")
	assert.Contains(t, label, "CR")
}

func TestScoreBankScrapedRatios(t *testing.T) {
	s := newFundamentalScorer()

	info := contracts.FundamentalInfo{
		Name:     "PT Bank Central Asia Tbk",
		Industry: "Banks - Regional",
	}
	ratios := contracts.BankRatios{CAR: 25.0, NPL: 1.5, Measured: true}

	result, label := s.Score(info, nil, ratios)

	// NPL < 2 and CAR > 20: full 20 solvency points.
	assert.GreaterOrEqual(t, result.Score, 20)
	assert.Contains(t, label, "scraped")
	assert.Contains(t, label, "CAR 25.0%")
}

func TestScoreBankProxyRatios(t *testing.T) {
	s := newFundamentalScorer()

	info := contracts.FundamentalInfo{
		Name:                   "PT Bank Rakyat Indonesia Tbk",
		Industry:               "Banks - Regional",
		TotalAssets:            1000,
		TotalStockholderEquity: 180, // proxy CAR 18% -> 5
	}

	result, label := s.Score(info, nil, contracts.BankRatios{})

	// Proxy path: default NPL 2.5 -> 5, proxy CAR 18 -> 5.
	assert.Equal(t, 10, solvencyPoints(s, contracts.SectorBank, info, nil, contracts.BankRatios{}))
	assert.Contains(t, label, "proxy")
	assert.Contains(t, label, "NPL 2.5%")
	assert.NotZero(t, result.Score)
}

func TestScoreBankProxyWithoutBalanceSheet(t *testing.T) {
	s := newFundamentalScorer()

	info := contracts.FundamentalInfo{Industry: "Banks"}

	// No assets: proxy CAR stays 0 and earns nothing, NPL default still
	// lands the manageable 5.
	assert.Equal(t, 5, solvencyPoints(s, contracts.SectorBank, info, nil, contracts.BankRatios{}))
}

func TestScoreInfraSolvency(t *testing.T) {
	s := newFundamentalScorer()

	info := contracts.FundamentalInfo{
		Name:         "PT Jasa Marga Tbk",
		Sector:       "Industrials",
		DebtToEquity: 120, // percent scale -> 1.20 -> 10
	}
	financials := []contracts.FinancialPeriod{
		{
			EndDate:         time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			EBIT:            400,
			InterestExpense: -100, // ICR 4.0x -> 10
		},
	}

	assert.Equal(t, 20, solvencyPoints(s, contracts.SectorInfra, info, financials, contracts.BankRatios{}))
}

func TestScoreInfraDefaultICR(t *testing.T) {
	s := newFundamentalScorer()

	info := contracts.FundamentalInfo{
		Sector:       "Utilities",
		DebtToEquity: 3.0, // too leveraged, no points
	}

	// Missing statements: default ICR 2.0 lands the adequate 5.
	assert.Equal(t, 5, solvencyPoints(s, contracts.SectorInfra, info, nil, contracts.BankRatios{}))
}

// solvencyPoints isolates the 20-point solvency component.
func solvencyPoints(
	s *FundamentalScorer,
	sector contracts.SectorClass,
	info contracts.FundamentalInfo,
	financials []contracts.FinancialPeriod,
	ratios contracts.BankRatios,
) int {
	res, _ := s.scoreSolvency(sector, info, financials, ratios)
	return res.Score
}

func TestScoreEmptyRecord(t *testing.T) {
	s := newFundamentalScorer()

	result, _ := s.Score(contracts.FundamentalInfo{}, nil, contracts.BankRatios{})

	// Zero record still scores: DER 0 reads as unlevered (10), flat EPS
	// growth (3) and non-negative revenue growth (5).
	assert.Equal(t, 18, result.Score)
}

func TestScoreValuationSkipsNonPositiveMultiples(t *testing.T) {
	s := newFundamentalScorer()

	var with, without contracts.ScoreResult
	s.scoreValuation(contracts.FundamentalInfo{TrailingPE: 12, PriceToBook: 1.5}, &with)
	s.scoreValuation(contracts.FundamentalInfo{TrailingPE: -3, PriceToBook: 0}, &without)

	assert.Equal(t, 10, with.Score)
	assert.Zero(t, without.Score)
}

func TestRevenueGrowthPrefersCAGR(t *testing.T) {
	financials := []contracts.FinancialPeriod{
		{Revenue: 1210}, // latest
		{Revenue: 1100},
		{Revenue: 1000}, // oldest
	}

	// (1210/1000)^(1/2) - 1 = 10%
	got := revenueGrowthPct(contracts.FundamentalInfo{RevenueGrowth: 0.5}, financials)
	assert.InDelta(t, 10.0, got, 0.01)

	// Single period falls back to the provider figure.
	got = revenueGrowthPct(contracts.FundamentalInfo{RevenueGrowth: 0.08}, financials[:1])
	assert.InDelta(t, 8.0, got, 1e-9)
}

func TestNormalizeDER(t *testing.T) {
	assert.InDelta(t, 0.8, normalizeDER(0.8), 1e-9)
	assert.InDelta(t, 1.5, normalizeDER(150), 1e-9)
	assert.InDelta(t, 10.0, normalizeDER(10), 1e-9)
}

func TestNormalizeDividendYieldIdempotent(t *testing.T) {
	once := NormalizeDividendYield(0.035)
	require.InDelta(t, 3.5, once, 1e-9)

	// Applying again must not multiply a second time.
	assert.InDelta(t, once, NormalizeDividendYield(once), 1e-9)

	assert.Zero(t, NormalizeDividendYield(0))
	assert.InDelta(t, 4.2, NormalizeDividendYield(4.2), 1e-9)
}

func TestInterestCoverage(t *testing.T) {
	assert.InDelta(t, defaultICR, interestCoverage(nil), 1e-9)
	assert.InDelta(t, defaultICR, interestCoverage([]contracts.FinancialPeriod{{EBIT: 100}}), 1e-9)
	assert.InDelta(t, 2.5, interestCoverage([]contracts.FinancialPeriod{{EBIT: 250, InterestExpense: -100}}), 1e-9)
}
