package contracts

import "time"

// FundamentalInfo is the sparse fundamental record for a ticker.
// Any field the provider did not return stays at its zero value; scoring
// formulas always operate on concrete numbers, never on "missing".
type FundamentalInfo struct {
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`

	CurrentPrice float64 `json:"current_price"`

	ReturnOnEquity    float64 `json:"return_on_equity"`   // decimal, e.g. 0.18
	ProfitMargins     float64 `json:"profit_margins"`     // decimal
	DebtToEquity      float64 `json:"debt_to_equity"`     // ratio or percentage, normalized by scorer
	TrailingPE        float64 `json:"trailing_pe"`
	PriceToBook       float64 `json:"price_to_book"`
	EarningsGrowth    float64 `json:"earnings_growth"`    // decimal
	RevenueGrowth     float64 `json:"revenue_growth"`     // decimal
	OperatingCashflow float64 `json:"operating_cashflow"`
	NetIncomeToCommon float64 `json:"net_income_to_common"`
	DividendYield     float64 `json:"dividend_yield"` // decimal or percentage, normalized by scorer
	CurrentRatio      float64 `json:"current_ratio"`

	TotalAssets            float64 `json:"total_assets"`
	TotalStockholderEquity float64 `json:"total_stockholder_equity"`
}

// FinancialPeriod is one reporting period from the income statement,
// series ordered most-recent-first.
type FinancialPeriod struct {
	EndDate         time.Time `json:"end_date"`
	Revenue         float64   `json:"revenue"`
	NetIncome       float64   `json:"net_income"`
	EBIT            float64   `json:"ebit"`
	InterestExpense float64   `json:"interest_expense"`
}

// BankRatios holds the supplemental bank solvency ratios, in percent.
// Measured is true when the values were scraped from the portal; false
// means the scorer fell back to its proxy computation.
type BankRatios struct {
	CAR      float64 `json:"car"` // Capital Adequacy Ratio, %
	NPL      float64 `json:"npl"` // Non-Performing Loan ratio, %
	Measured bool    `json:"measured"`
}
