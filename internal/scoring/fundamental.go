package scoring

import (
	"fmt"
	"math"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/logger"
)

const (
	// defaultNPL is assumed when no scraped NPL is available for a bank.
	defaultNPL = 2.5
	// defaultICR is assumed when statement data is missing or interest
	// expense is zero.
	defaultICR = 2.0
)

// FundamentalScorer turns a sparse fundamental record into a 0-100 score.
// Bank ratios arrive already resolved; the scorer itself never touches
// the network.
type FundamentalScorer struct {
	logger *logger.Logger
}

// NewFundamentalScorer creates a new fundamental scorer
func NewFundamentalScorer(log *logger.Logger) *FundamentalScorer {
	return &FundamentalScorer{logger: log}
}

// Score computes the fundamental score for a stock. financials may be
// empty and ratios may be the zero value; every component degrades to a
// documented default. The total is reported unclamped.
func (s *FundamentalScorer) Score(
	info contracts.FundamentalInfo,
	financials []contracts.FinancialPeriod,
	ratios contracts.BankRatios,
) (contracts.ScoreResult, string) {
	sector := ClassifySector(info)

	result := contracts.ScoreResult{Reasons: make([]string, 0, 10)}

	solvency, label := s.scoreSolvency(sector, info, financials, ratios)
	result.Score += solvency.Score
	result.Reasons = append(result.Reasons, solvency.Reasons...)

	s.scoreProfitability(info, &result)
	s.scoreValuation(info, &result)
	s.scoreGrowth(info, financials, &result)
	s.scoreCashflow(info, &result)
	s.scoreDividend(info, &result)

	s.logger.WithFields(map[string]interface{}{
		"name":   info.Name,
		"sector": sector,
		"score":  result.Score,
	}).Debug("Calculated fundamental score")

	return result, label
}

// scoreSolvency awards at most 20 points, on different metrics per branch.
func (s *FundamentalScorer) scoreSolvency(
	sector contracts.SectorClass,
	info contracts.FundamentalInfo,
	financials []contracts.FinancialPeriod,
	ratios contracts.BankRatios,
) (contracts.ScoreResult, string) {
	switch sector {
	case contracts.SectorBank:
		return s.scoreBankSolvency(info, ratios)
	case contracts.SectorInfra:
		return s.scoreInfraSolvency(info, financials)
	default:
		return s.scoreGeneralSolvency(info)
	}
}

func (s *FundamentalScorer) scoreBankSolvency(info contracts.FundamentalInfo, ratios contracts.BankRatios) (contracts.ScoreResult, string) {
	var res contracts.ScoreResult

	car := ratios.CAR
	npl := ratios.NPL
	provenance := "scraped"
	if !ratios.Measured {
		provenance = "proxy"
		npl = defaultNPL
		car = 0
		if info.TotalAssets > 0 {
			car = info.TotalStockholderEquity / info.TotalAssets * 100
		}
	}

	switch {
	case npl < 2.0:
		res.Score += 10
		res.Reasons = append(res.Reasons, fmt.Sprintf("NPL %.1f%% below 2%%", npl))
	case npl <= 3.5:
		res.Score += 5
		res.Reasons = append(res.Reasons, fmt.Sprintf("NPL %.1f%% manageable", npl))
	}

	switch {
	case car > 20.0:
		res.Score += 10
		res.Reasons = append(res.Reasons, fmt.Sprintf("CAR %.1f%% above 20%%", car))
	case car >= 15.0:
		res.Score += 5
		res.Reasons = append(res.Reasons, fmt.Sprintf("CAR %.1f%% adequate", car))
	}

	label := fmt.Sprintf("CAR %.1f%% / NPL %.1f%% (%s)", car, npl, provenance)
	return res, label
}

func (s *FundamentalScorer) scoreInfraSolvency(info contracts.FundamentalInfo, financials []contracts.FinancialPeriod) (contracts.ScoreResult, string) {
	var res contracts.ScoreResult

	der := normalizeDER(info.DebtToEquity)
	switch {
	case der < 1.5:
		res.Score += 10
		res.Reasons = append(res.Reasons, fmt.Sprintf("DER %.2f below 1.5", der))
	case der <= 2.5:
		res.Score += 5
		res.Reasons = append(res.Reasons, fmt.Sprintf("DER %.2f acceptable for infrastructure", der))
	}

	icr := interestCoverage(financials)
	switch {
	case icr > 3.0:
		res.Score += 10
		res.Reasons = append(res.Reasons, fmt.Sprintf("interest coverage %.1fx above 3x", icr))
	case icr >= 1.5:
		res.Score += 5
		res.Reasons = append(res.Reasons, fmt.Sprintf("interest coverage %.1fx adequate", icr))
	}

	label := fmt.Sprintf("DER %.2f / ICR %.1fx", der, icr)
	return res, label
}

func (s *FundamentalScorer) scoreGeneralSolvency(info contracts.FundamentalInfo) (contracts.ScoreResult, string) {
	var res contracts.ScoreResult

	der := normalizeDER(info.DebtToEquity)
	switch {
	case der < 0.5:
		res.Score += 10
		res.Reasons = append(res.Reasons, fmt.Sprintf("DER %.2f below 0.5", der))
	case der <= 1.0:
		res.Score += 5
		res.Reasons = append(res.Reasons, fmt.Sprintf("DER %.2f moderate", der))
	}

	cr := info.CurrentRatio
	switch {
	case cr > 1.5:
		res.Score += 10
		res.Reasons = append(res.Reasons, fmt.Sprintf("current ratio %.1f above 1.5", cr))
	case cr >= 1.0:
		res.Score += 5
		res.Reasons = append(res.Reasons, fmt.Sprintf("current ratio %.1f adequate", cr))
	}

	label := fmt.Sprintf("DER %.2f / CR %.1f", der, cr)
	return res, label
}

func (s *FundamentalScorer) scoreProfitability(info contracts.FundamentalInfo, result *contracts.ScoreResult) {
	roe := info.ReturnOnEquity * 100
	switch {
	case roe > 15:
		result.Score += 10
		result.Reasons = append(result.Reasons, fmt.Sprintf("ROE %.1f%% above 15%%", roe))
	case roe >= 10:
		result.Score += 5
		result.Reasons = append(result.Reasons, fmt.Sprintf("ROE %.1f%% solid", roe))
	}

	margin := info.ProfitMargins * 100
	switch {
	case margin > 10:
		result.Score += 10
		result.Reasons = append(result.Reasons, fmt.Sprintf("net margin %.1f%% above 10%%", margin))
	case margin >= 5:
		result.Score += 5
		result.Reasons = append(result.Reasons, fmt.Sprintf("net margin %.1f%% healthy", margin))
	}
}

// scoreValuation compares current multiples against a 5-year proxy mean.
// Without historical multiples the proxy is a fixed fraction of the
// current multiple (PE x0.95, PBV x0.90) and the gap is measured from
// the proxy.
func (s *FundamentalScorer) scoreValuation(info contracts.FundamentalInfo, result *contracts.ScoreResult) {
	if pe := info.TrailingPE; pe > 0 {
		mean := pe * 0.95
		gap := (pe - mean) / mean * 100
		switch {
		case gap > 20:
			result.Score += 10
			result.Reasons = append(result.Reasons, fmt.Sprintf("PE %.1f far from 5y mean", pe))
		case gap >= 0:
			result.Score += 5
			result.Reasons = append(result.Reasons, fmt.Sprintf("PE %.1f near 5y mean", pe))
		}
	}

	if pbv := info.PriceToBook; pbv > 0 {
		mean := pbv * 0.90
		gap := (pbv - mean) / mean * 100
		switch {
		case gap > 20:
			result.Score += 10
			result.Reasons = append(result.Reasons, fmt.Sprintf("PBV %.2f far from 5y mean", pbv))
		case gap >= 0:
			result.Score += 5
			result.Reasons = append(result.Reasons, fmt.Sprintf("PBV %.2f near 5y mean", pbv))
		}
	}
}

func (s *FundamentalScorer) scoreGrowth(info contracts.FundamentalInfo, financials []contracts.FinancialPeriod, result *contracts.ScoreResult) {
	eps := info.EarningsGrowth * 100
	switch {
	case eps > 15:
		result.Score += 10
		result.Reasons = append(result.Reasons, fmt.Sprintf("EPS growth %.1f%% above 15%%", eps))
	case eps >= 5:
		result.Score += 7
		result.Reasons = append(result.Reasons, fmt.Sprintf("EPS growth %.1f%% decent", eps))
	case eps >= 0:
		result.Score += 3
		result.Reasons = append(result.Reasons, fmt.Sprintf("EPS growth %.1f%% flat", eps))
	}

	growth := revenueGrowthPct(info, financials)
	switch {
	case growth > 10:
		result.Score += 10
		result.Reasons = append(result.Reasons, fmt.Sprintf("revenue growth %.1f%% above 10%%", growth))
	case growth >= 0:
		result.Score += 5
		result.Reasons = append(result.Reasons, fmt.Sprintf("revenue growth %.1f%% positive", growth))
	}
}

func (s *FundamentalScorer) scoreCashflow(info contracts.FundamentalInfo, result *contracts.ScoreResult) {
	ocf := info.OperatingCashflow
	ni := info.NetIncomeToCommon
	switch {
	case ocf > ni && ni != 0:
		result.Score += 10
		result.Reasons = append(result.Reasons, "operating cash flow exceeds net income")
	case ocf > 0:
		result.Score += 5
		result.Reasons = append(result.Reasons, "operating cash flow positive")
	}
}

func (s *FundamentalScorer) scoreDividend(info contracts.FundamentalInfo, result *contracts.ScoreResult) {
	yield := NormalizeDividendYield(info.DividendYield)
	switch {
	case yield > 5:
		result.Score += 10
		result.Reasons = append(result.Reasons, fmt.Sprintf("dividend yield %.1f%% above 5%%", yield))
	case yield >= 2:
		result.Score += 5
		result.Reasons = append(result.Reasons, fmt.Sprintf("dividend yield %.1f%% decent", yield))
	}
}

// normalizeDER maps a raw debt-to-equity figure onto ratio scale. Raw
// values above 10 are assumed to be percentages and divided by 100.
func normalizeDER(raw float64) float64 {
	if raw > 10 {
		return raw / 100
	}
	return raw
}

// NormalizeDividendYield maps a dividend yield onto percentage scale.
// Values below 1 are assumed decimal scale and multiplied by 100; the
// operation is idempotent on its own output.
func NormalizeDividendYield(raw float64) float64 {
	if raw > 0 && raw < 1 {
		return raw * 100
	}
	return raw
}

// interestCoverage computes EBIT / |interest expense| from the latest
// period, defaulting when statements are missing or interest is zero.
func interestCoverage(financials []contracts.FinancialPeriod) float64 {
	if len(financials) == 0 {
		return defaultICR
	}
	latest := financials[0]
	if latest.InterestExpense == 0 {
		return defaultICR
	}
	return latest.EBIT / math.Abs(latest.InterestExpense)
}

// revenueGrowthPct prefers a multi-year CAGR from statements when at
// least two periods are available, else the single-period growth figure.
func revenueGrowthPct(info contracts.FundamentalInfo, financials []contracts.FinancialPeriod) float64 {
	if len(financials) >= 2 {
		latest := financials[0].Revenue
		oldest := financials[len(financials)-1].Revenue
		years := float64(len(financials) - 1)
		if latest > 0 && oldest > 0 {
			return (math.Pow(latest/oldest, 1/years) - 1) * 100
		}
	}
	return info.RevenueGrowth * 100
}
