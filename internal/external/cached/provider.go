// Package cached decorates a MarketDataProvider with an in-process TTL
// cache so repeated dashboard refreshes within the window reuse provider
// responses. The scoring core never knows a cache exists.
package cached

import (
	"context"
	"fmt"

	"github.com/prasetyo/idxquant/internal/contracts"
	"github.com/prasetyo/idxquant/pkg/cache"
)

// Provider wraps a MarketDataProvider with response caching.
type Provider struct {
	inner contracts.MarketDataProvider
	store *cache.Store
}

var _ contracts.MarketDataProvider = (*Provider)(nil)

// Wrap decorates a provider with the given cache store.
func Wrap(inner contracts.MarketDataProvider, store *cache.Store) *Provider {
	return &Provider{inner: inner, store: store}
}

// GetHistory implements MarketDataProvider. Errors are never cached.
func (p *Provider) GetHistory(ctx context.Context, ticker string, lookbackDays int) (contracts.PriceHistory, error) {
	key := fmt.Sprintf("history:%s:%d", ticker, lookbackDays)
	if v, ok := p.store.Get(key); ok {
		return v.(contracts.PriceHistory), nil
	}

	history, err := p.inner.GetHistory(ctx, ticker, lookbackDays)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, history)
	return history, nil
}

// GetFundamentalInfo implements MarketDataProvider.
func (p *Provider) GetFundamentalInfo(ctx context.Context, ticker string) (contracts.FundamentalInfo, error) {
	key := "info:" + ticker
	if v, ok := p.store.Get(key); ok {
		return v.(contracts.FundamentalInfo), nil
	}

	info, err := p.inner.GetFundamentalInfo(ctx, ticker)
	if err != nil {
		return contracts.FundamentalInfo{}, err
	}
	p.store.Set(key, info)
	return info, nil
}

// GetFinancialStatements implements MarketDataProvider.
func (p *Provider) GetFinancialStatements(ctx context.Context, ticker string) ([]contracts.FinancialPeriod, error) {
	key := "financials:" + ticker
	if v, ok := p.store.Get(key); ok {
		return v.([]contracts.FinancialPeriod), nil
	}

	periods, err := p.inner.GetFinancialStatements(ctx, ticker)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, periods)
	return periods, nil
}
