package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/idxquant/internal/contracts"
)

// assertOrdering checks the plan invariants that hold for every input:
// stop below the entry band, target above it, stop never worse than 8%.
func assertOrdering(t *testing.T, price float64, p contracts.TradingPlan) {
	t.Helper()
	assert.Less(t, p.StopLoss, p.EntryLow, "stop must sit below the entry band")
	assert.LessOrEqual(t, p.EntryLow, p.EntryHigh)
	assert.Greater(t, p.TakeProfit, p.EntryHigh, "target must sit above the entry band")
	assert.GreaterOrEqual(t, p.StopLoss, price*stopFloorPct*0.99, "stop must respect the 8%% floor")
	assert.Greater(t, p.RiskPct, 0.0)
	assert.Greater(t, p.RewardPct, 0.0)
}

func TestBuildQuickATRStop(t *testing.T) {
	b := NewBuilder(QuickProfile())

	p := b.Build(1000, 980, 30, 85)

	// EMA9 sits inside the band: it becomes the entry floor.
	assert.InDelta(t, 980, p.EntryLow, 1e-9)
	assert.InDelta(t, 1000, p.EntryHigh, 1e-9)

	// ATR stop 1000 - 2.5*30 = 925 stays above the 920 floor.
	assert.InDelta(t, 925, p.StopLoss, 1e-9)
	assert.Equal(t, contracts.StopBasisATR, p.StopBasis)

	// Reward 2x risk off the average entry 990.
	assert.InDelta(t, 990+2*(990-925), p.TakeProfit, 1e-9)
	assert.Empty(t, p.TakeProfitTiers)
	assert.Equal(t, "quick", p.Profile)

	assertOrdering(t, 1000, p)
}

func TestBuildQuickFloorStop(t *testing.T) {
	b := NewBuilder(QuickProfile())

	// ATR stop 1000 - 2.5*50 = 875 would lose more than 8%.
	p := b.Build(1000, 980, 50, 85)

	assert.InDelta(t, 920, p.StopLoss, 1e-9)
	assert.Equal(t, contracts.StopBasisFloor, p.StopBasis)
	assertOrdering(t, 1000, p)
}

func TestBuildEMAOutsideBand(t *testing.T) {
	b := NewBuilder(QuickProfile())

	// EMA9 below the discount cap: band floor wins.
	p := b.Build(1000, 900, 30, 85)
	assert.InDelta(t, 960, p.EntryLow, 1e-9)

	// EMA9 above price: band floor wins too.
	p = b.Build(1000, 1050, 30, 85)
	assert.InDelta(t, 960, p.EntryLow, 1e-9)
}

func TestBuildMissingATR(t *testing.T) {
	for _, atr := range []float64{0, -5} {
		b := NewBuilder(QuickProfile())
		p := b.Build(1000, 980, atr, 85)

		// 2% default ATR: stop 1000 - 2.5*20 = 950.
		assert.InDelta(t, 950, p.StopLoss, 1e-9)
		assertOrdering(t, 1000, p)
	}
}

func TestBuildTinyATRClampsStop(t *testing.T) {
	b := NewBuilder(DeepProfile())

	// Stop 1000 - 1.5*1 = 998.5 would land inside the entry band.
	p := b.Build(1000, 985, 1, 85)

	require.Less(t, p.StopLoss, p.EntryLow)
	assert.InDelta(t, p.EntryLow*0.99, p.StopLoss, 1e-9)
	assertOrdering(t, 1000, p)
}

func TestBuildDeepTiers(t *testing.T) {
	b := NewBuilder(DeepProfile())

	p := b.Build(1000, 990, 30, 75)

	assert.Equal(t, "deep", p.Profile)
	require.Len(t, p.TakeProfitTiers, 3)
	assert.Equal(t, p.TakeProfitTiers[0], p.TakeProfit)
	assert.Less(t, p.TakeProfitTiers[0], p.TakeProfitTiers[1])
	assert.Less(t, p.TakeProfitTiers[1], p.TakeProfitTiers[2])

	// Deep profile measures risk from the current price.
	// Stop 1000 - 1.5*30 = 955, risk 45, avg entry 995.
	assert.InDelta(t, 995+1.5*45, p.TakeProfitTiers[0], 1e-9)
	assert.InDelta(t, (1000-955.0)/1000*100, p.RiskPct, 1e-9)

	assertOrdering(t, 1000, p)
}

func TestRecommendationTiers(t *testing.T) {
	tests := []struct {
		profile Profile
		score   int
		want    string
	}{
		{QuickProfile(), 85, "high confidence / concentrate"},
		{QuickProfile(), 80, "high confidence / concentrate"},
		{QuickProfile(), 70, "medium confidence / scale in"},
		{QuickProfile(), 59, avoidLabel},
		{DeepProfile(), 75, "high confidence / concentrate"},
		{DeepProfile(), 55, "medium confidence / scale in"},
		{DeepProfile(), 45, "speculative / wait for confirmation"},
		{DeepProfile(), 30, avoidLabel},
	}

	for _, tt := range tests {
		b := NewBuilder(tt.profile)
		p := b.Build(1000, 980, 30, tt.score)
		assert.Equal(t, tt.want, p.Recommendation, "profile %s score %d", tt.profile.Name, tt.score)
	}
}
