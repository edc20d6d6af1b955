package yahoo

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/prasetyo/idxquant/internal/contracts"
)

const summaryModules = "summaryProfile,price,summaryDetail,financialData," +
	"defaultKeyStatistics,incomeStatementHistory,balanceSheetHistory"

// GetFundamentalInfo fetches the sparse fundamental record. Every key the
// payload lacks stays at its zero value; only transport failures error.
func (c *Client) GetFundamentalInfo(ctx context.Context, ticker string) (contracts.FundamentalInfo, error) {
	symbol := NormalizeTicker(ticker)

	body, err := c.fetchSummary(ctx, symbol)
	if err != nil {
		return contracts.FundamentalInfo{}, err
	}

	root := gjson.GetBytes(body, "quoteSummary.result.0")

	info := contracts.FundamentalInfo{
		Name:     root.Get("price.longName").String(),
		Sector:   root.Get("summaryProfile.sector").String(),
		Industry: root.Get("summaryProfile.industry").String(),

		CurrentPrice: root.Get("price.regularMarketPrice.raw").Float(),

		ReturnOnEquity:    root.Get("financialData.returnOnEquity.raw").Float(),
		ProfitMargins:     root.Get("financialData.profitMargins.raw").Float(),
		DebtToEquity:      root.Get("financialData.debtToEquity.raw").Float(),
		TrailingPE:        root.Get("summaryDetail.trailingPE.raw").Float(),
		PriceToBook:       root.Get("defaultKeyStatistics.priceToBook.raw").Float(),
		EarningsGrowth:    root.Get("financialData.earningsGrowth.raw").Float(),
		RevenueGrowth:     root.Get("financialData.revenueGrowth.raw").Float(),
		OperatingCashflow: root.Get("financialData.operatingCashflow.raw").Float(),
		NetIncomeToCommon: root.Get("defaultKeyStatistics.netIncomeToCommon.raw").Float(),
		DividendYield:     root.Get("summaryDetail.dividendYield.raw").Float(),
		CurrentRatio:      root.Get("financialData.currentRatio.raw").Float(),

		TotalAssets:            root.Get("balanceSheetHistory.balanceSheetStatements.0.totalAssets.raw").Float(),
		TotalStockholderEquity: root.Get("balanceSheetHistory.balanceSheetStatements.0.totalStockholderEquity.raw").Float(),
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": symbol,
		"sector": info.Sector,
	}).Debug("Fetched fundamental info")

	return info, nil
}

// GetFinancialStatements fetches income-statement periods,
// most-recent-first. May be empty.
func (c *Client) GetFinancialStatements(ctx context.Context, ticker string) ([]contracts.FinancialPeriod, error) {
	symbol := NormalizeTicker(ticker)

	body, err := c.fetchSummary(ctx, symbol)
	if err != nil {
		return nil, err
	}

	statements := gjson.GetBytes(body,
		"quoteSummary.result.0.incomeStatementHistory.incomeStatementHistory").Array()

	periods := make([]contracts.FinancialPeriod, 0, len(statements))
	for _, stmt := range statements {
		periods = append(periods, contracts.FinancialPeriod{
			EndDate:         time.Unix(stmt.Get("endDate.raw").Int(), 0).UTC(),
			Revenue:         stmt.Get("totalRevenue.raw").Float(),
			NetIncome:       stmt.Get("netIncome.raw").Float(),
			EBIT:            stmt.Get("ebit.raw").Float(),
			InterestExpense: stmt.Get("interestExpense.raw").Float(),
		})
	}

	return periods, nil
}

func (c *Client) fetchSummary(ctx context.Context, symbol string) ([]byte, error) {
	url := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, symbol, summaryModules,
	)

	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch quote summary for %s: %w", symbol, err)
	}
	return body, nil
}
