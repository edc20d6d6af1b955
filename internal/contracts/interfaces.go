package contracts

import (
	"context"
	"errors"
)

// ErrNoData is the only fatal outcome of an analysis request: the ticker
// has no usable price history at all. Everything else degrades to
// documented defaults.
var ErrNoData = errors.New("no price data for ticker")

// MarketDataProvider supplies price history and fundamentals for a ticker.
// Implementations return empty values for missing data instead of errors;
// errors are reserved for transport-level failures.
type MarketDataProvider interface {
	// GetHistory returns up to lookbackDays of daily bars, ascending.
	GetHistory(ctx context.Context, ticker string, lookbackDays int) (PriceHistory, error)

	// GetFundamentalInfo returns the sparse fundamental record. Missing
	// keys stay at zero values.
	GetFundamentalInfo(ctx context.Context, ticker string) (FundamentalInfo, error)

	// GetFinancialStatements returns income-statement periods,
	// most-recent-first. May be empty.
	GetFinancialStatements(ctx context.Context, ticker string) ([]FinancialPeriod, error)
}

// BankRatioScraper supplies CAR/NPL for bank stocks. On total failure it
// returns a zero BankRatios with Measured=false and a nil error; the
// fundamental scorer then falls back to its proxy computation.
type BankRatioScraper interface {
	GetBankRatios(ctx context.Context, ticker string) (BankRatios, error)
}
