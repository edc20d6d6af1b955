// Package plan builds the entry band, stop-loss and take-profit for a
// stock from its current price, EMA9, ATR14 and technical score.
//
// Two named profiles exist because the quick-analysis and deep-technical
// views intentionally use different constants. They are configuration,
// not variants to be unified.
package plan

import (
	"github.com/prasetyo/idxquant/internal/contracts"
)

const (
	// stopFloorPct caps the stop-loss at an 8% loss from current price.
	stopFloorPct = 0.92
	// defaultATRPct substitutes a 2% ATR when the real one is missing,
	// keeping stop and target strictly ordered around the entry band.
	defaultATRPct = 0.02
)

// Tier maps a minimum technical score onto a recommendation label.
type Tier struct {
	MinScore int
	Label    string
}

// Profile holds the per-call-site constants for plan construction.
type Profile struct {
	Name             string
	EntryDiscountCap float64   // entry band floor as fraction of price
	StopATRMultiple  float64   // ATR multiplier for the stop
	RewardMultiples  []float64 // reward targets as multiples of risk
	RiskFromPrice    bool      // risk base: current price instead of avg entry
	Tiers            []Tier    // recommendation tiers, highest first
}

// QuickProfile returns the quick-analysis plan constants.
func QuickProfile() Profile {
	return Profile{
		Name:             "quick",
		EntryDiscountCap: 0.96,
		StopATRMultiple:  2.5,
		RewardMultiples:  []float64{2.0},
		RiskFromPrice:    false,
		Tiers: []Tier{
			{MinScore: 80, Label: "high confidence / concentrate"},
			{MinScore: 60, Label: "medium confidence / scale in"},
		},
	}
}

// DeepProfile returns the deep-technical plan constants.
func DeepProfile() Profile {
	return Profile{
		Name:             "deep",
		EntryDiscountCap: 0.98,
		StopATRMultiple:  1.5,
		RewardMultiples:  []float64{1.5, 2.5, 3.5},
		RiskFromPrice:    true,
		Tiers: []Tier{
			{MinScore: 70, Label: "high confidence / concentrate"},
			{MinScore: 50, Label: "medium confidence / scale in"},
			{MinScore: 40, Label: "speculative / wait for confirmation"},
		},
	}
}

// avoidLabel is the fall-through recommendation below every tier.
const avoidLabel = "avoid - reversal risk too high"

// Builder constructs trading plans for one profile.
type Builder struct {
	profile Profile
}

// NewBuilder creates a plan builder for the given profile.
func NewBuilder(profile Profile) *Builder {
	return &Builder{profile: profile}
}

// Build computes the plan. currentPrice must be positive; atr14 may be
// zero or negative and is then replaced by the 2% default.
func (b *Builder) Build(currentPrice, ema9, atr14 float64, technicalScore int) contracts.TradingPlan {
	p := b.profile

	if atr14 <= 0 {
		atr14 = currentPrice * defaultATRPct
	}

	// Entry band: pinned to current price on top, EMA9 pullback or the
	// profile discount cap on the bottom.
	entryHigh := currentPrice
	discountFloor := currentPrice * p.EntryDiscountCap
	entryLow := discountFloor
	if ema9 < currentPrice && ema9 > discountFloor {
		entryLow = ema9
	}

	// Stop: ATR-derived, but the 8% hard floor always wins when the ATR
	// stop would lose more.
	slByATR := currentPrice - p.StopATRMultiple*atr14
	stopLoss := slByATR
	basis := contracts.StopBasisATR
	if slByATR < currentPrice*stopFloorPct {
		stopLoss = currentPrice * stopFloorPct
		basis = contracts.StopBasisFloor
	}
	// A near-zero ATR can push the stop into the entry band.
	if stopLoss >= entryLow {
		stopLoss = entryLow * 0.99
	}

	avgEntry := (entryLow + entryHigh) / 2

	risk := avgEntry - stopLoss
	riskBase := avgEntry
	if p.RiskFromPrice {
		risk = currentPrice - stopLoss
		riskBase = currentPrice
	}

	tiers := make([]float64, len(p.RewardMultiples))
	for i, mult := range p.RewardMultiples {
		tiers[i] = avgEntry + risk*mult
	}

	result := contracts.TradingPlan{
		Profile:   p.Name,
		EntryLow:  entryLow,
		EntryHigh: entryHigh,
		StopLoss:  stopLoss,
		StopBasis: basis,

		TakeProfit: tiers[0],

		RiskPct:   (riskBase - stopLoss) / riskBase * 100,
		RewardPct: (tiers[0] - riskBase) / riskBase * 100,

		Recommendation: b.recommend(technicalScore),
	}
	if len(tiers) > 1 {
		result.TakeProfitTiers = tiers
	}

	return result
}

// recommend maps the technical score onto the profile's tier table.
func (b *Builder) recommend(score int) string {
	for _, tier := range b.profile.Tiers {
		if score >= tier.MinScore {
			return tier.Label
		}
	}
	return avoidLabel
}
