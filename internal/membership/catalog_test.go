package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedTiers(t *testing.T) {
	tiers := OrderedTiers()
	require.Equal(t, []Tier{TierFriend, TierRider, TierPro, TierLegend, TierMaster}, tiers)

	// Mutating the returned slice must not leak into the catalog.
	tiers[0] = TierMaster
	assert.Equal(t, TierFriend, OrderedTiers()[0])
}

func TestNextTier(t *testing.T) {
	tests := []struct {
		current Tier
		next    Tier
		ok      bool
	}{
		{TierFriend, TierRider, true},
		{TierRider, TierPro, true},
		{TierPro, TierLegend, true},
		{TierLegend, TierMaster, true},
		{TierMaster, "", false},
		{Tier("Leader"), "", false},
		{Tier("bogus"), "", false},
	}

	for _, tt := range tests {
		next, ok := NextTier(tt.current)
		assert.Equal(t, tt.ok, ok, "NextTier(%s)", tt.current)
		assert.Equal(t, tt.next, next, "NextTier(%s)", tt.current)
	}
}

func TestTierValid(t *testing.T) {
	for _, tier := range OrderedTiers() {
		assert.True(t, tier.Valid())
	}
	assert.False(t, Tier("Leader").Valid(), "Leader is a role, not a tier")
	assert.False(t, Tier("").Valid())
}

func TestRuleFor(t *testing.T) {
	cfg := DefaultConfig()

	for _, tier := range OrderedTiers()[:4] {
		_, ok := cfg.RuleFor(tier)
		assert.True(t, ok, "tier %s must have a promotion rule", tier)
	}

	_, ok := cfg.RuleFor(TierMaster)
	assert.False(t, ok, "terminal tier has no promotion rule")
}

func TestDefaultConfigThresholds(t *testing.T) {
	cfg := DefaultConfig()

	friend := cfg.Rules[TierFriend]
	assert.Equal(t, 1000, friend.Points)
	assert.True(t, friend.LeapYearAdjusted)

	rider := cfg.Rules[TierRider]
	assert.Equal(t, 3000, rider.Points)
	assert.Equal(t, 1000, rider.TrailingYearPoints)
	assert.Equal(t, 730, rider.TenureDays)

	pro := cfg.Rules[TierPro]
	assert.Equal(t, 9000, pro.Points)
	assert.Equal(t, 20, pro.CommunityEventPercent)
	assert.Equal(t, 20, pro.EducationalEventPercent)

	legend := cfg.Rules[TierLegend]
	assert.Equal(t, 50000, legend.Points)
	assert.Equal(t, 50, legend.FixedEvents)
	assert.Equal(t, 15, legend.Volunteering)
	assert.Equal(t, 365, legend.TenureDays)
}
