package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPopulation struct {
	count int
	exact bool
}

func (p fixedPopulation) OfficialEventsInYear(int) (int, bool) {
	return p.count, p.exact
}

func findReq(t *testing.T, spec RequirementSpec, metric Metric) Requirement {
	t.Helper()
	for _, r := range spec.Requirements {
		if r.Metric == metric {
			return r
		}
	}
	t.Fatalf("spec has no requirement for metric %s", metric)
	return Requirement{}
}

func TestMaterializeFriendDefaultEstimate(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	snap := Snapshot{
		AsOf:     asOf,
		JoinDate: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Tier:     TierFriend,
	}

	spec := calc.Materialize(snap, ActivityRecord{})
	require.Equal(t, TierRider, spec.NextTier)

	events := findReq(t, spec, MetricEventsAttended)
	assert.Equal(t, 12, events.Target, "half of the 24 events/year estimate")
	assert.True(t, events.Estimated)

	tenure := findReq(t, spec, MetricTenureDays)
	assert.Equal(t, 365, tenure.Target, "2026 is not a leap year")

	findReq(t, spec, MetricCleanRecord)
	findReq(t, spec, MetricCumulativePoints)
}

func TestMaterializeFriendLeapYear(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)

	tests := []struct {
		year int
		want int
	}{
		{2024, 366},
		{2023, 365},
		{2000, 366}, // divisible by 400
		{1900, 365}, // century, not divisible by 400
	}

	for _, tt := range tests {
		snap := Snapshot{
			AsOf:     asOf,
			JoinDate: time.Date(tt.year, 3, 1, 0, 0, 0, 0, time.UTC),
			Tier:     TierFriend,
		}
		spec := calc.Materialize(snap, ActivityRecord{})
		tenure := findReq(t, spec, MetricTenureDays)
		assert.Equal(t, tt.want, tenure.Target, "join year %d", tt.year)
	}
}

func TestMaterializeFriendExactPopulation(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), fixedPopulation{count: 31, exact: true})
	snap := Snapshot{AsOf: asOf, JoinDate: asOf.AddDate(0, -2, 0), Tier: TierFriend}

	spec := calc.Materialize(snap, ActivityRecord{})
	events := findReq(t, spec, MetricEventsAttended)
	assert.Equal(t, 16, events.Target, "ceil(50% of 31)")
	assert.False(t, events.Estimated, "real population is not flagged")
}

func TestMaterializeRiderConfirmedBase(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	snap := Snapshot{AsOf: asOf, JoinDate: asOf.AddDate(-3, 0, 0), Tier: TierRider}

	spec := calc.Materialize(snap, ActivityRecord{EventsRegistered: 100})
	require.Equal(t, TierPro, spec.NextTier)

	confirmed := findReq(t, spec, MetricConfirmedEvents)
	assert.Equal(t, 50, confirmed.Target, "half of the member's 100 historical events")

	vol := findReq(t, spec, MetricVolunteering)
	assert.Equal(t, 1, vol.Target)
	findReq(t, spec, MetricDigitalParticipation)
	findReq(t, spec, MetricTrailingYearPoints)
}

func TestMaterializeProPercentagesShareBase(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	snap := Snapshot{AsOf: asOf, JoinDate: asOf.AddDate(-4, 0, 0), Tier: TierPro}

	spec := calc.Materialize(snap, ActivityRecord{EventsRegistered: 47})
	require.Equal(t, TierLegend, spec.NextTier)

	general := findReq(t, spec, MetricEventsAttended)
	community := findReq(t, spec, MetricCommunityEvents)
	educational := findReq(t, spec, MetricEducationalEvents)

	assert.Equal(t, 24, general.Target, "ceil(50% of 47)")
	assert.Equal(t, 10, community.Target, "ceil(20% of 47), same base as the general requirement")
	assert.Equal(t, 10, educational.Target)

	findReq(t, spec, MetricDemonstrableContribution)
	findReq(t, spec, MetricExemplaryAttitude)
}

func TestMaterializeLegendFixedThresholds(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	snap := Snapshot{AsOf: asOf, JoinDate: asOf.AddDate(-6, 0, 0), Tier: TierLegend}

	spec := calc.Materialize(snap, ActivityRecord{EventsRegistered: 300})
	require.Equal(t, TierMaster, spec.NextTier)

	assert.Equal(t, 50000, findReq(t, spec, MetricCumulativePoints).Target)
	assert.Equal(t, 50, findReq(t, spec, MetricEventsAttended).Target,
		"Legend thresholds are fixed, not derived from the member's history")
	assert.Equal(t, 15, findReq(t, spec, MetricVolunteering).Target)
	assert.Equal(t, 365, findReq(t, spec, MetricTenureDays).Target)
}

func TestMaterializeMasterIsTerminal(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	snap := Snapshot{AsOf: asOf, JoinDate: asOf.AddDate(-8, 0, 0), Tier: TierMaster}

	spec := calc.Materialize(snap, ActivityRecord{})
	assert.Empty(t, spec.NextTier)
	assert.Empty(t, spec.Requirements, "the Leader path never appears in the automatic spec")
}

func TestLeaderRequirement(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	req := calc.LeaderRequirement()
	assert.Equal(t, MetricLeaderApproval, req.Metric)
	assert.True(t, req.Boolean)
}

func TestCeilPercent(t *testing.T) {
	tests := []struct {
		base, pct, want int
	}{
		{24, 50, 12},
		{25, 50, 13},
		{47, 20, 10},
		{1, 20, 1},
		{0, 50, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ceilPercent(tt.base, tt.pct), "ceil(%d%% of %d)", tt.pct, tt.base)
	}
}
