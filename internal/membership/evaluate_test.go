package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTerminalTier(t *testing.T) {
	progress := Evaluate(ActivityRecord{}, PointTotals{}, testSnapshot(TierMaster), RequirementSpec{})
	assert.Equal(t, 100, progress.OverallPercent)
	assert.Empty(t, progress.Requirements)
	assert.False(t, progress.Eligible(), "terminal tier is never eligible for an upgrade")
}

// A brand-new Friend with an empty history scores near zero but still gets
// a fully materialized requirement list.
func TestEvaluateFreshFriend(t *testing.T) {
	join := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{AsOf: join, JoinDate: join, Tier: TierFriend}
	calc := NewCalculator(DefaultConfig(), nil)

	activity := Aggregate(snap, nil, Engagement{})
	totals := DefaultConfig().EstimateTotals(join, join, 0)
	progress := Evaluate(activity, totals, snap, calc.Materialize(snap, activity))

	require.Equal(t, TierRider, progress.NextTier)
	require.Len(t, progress.Requirements, 4)
	assert.False(t, progress.Eligible())

	for _, r := range progress.Requirements {
		if r.ID == string(MetricCleanRecord) {
			assert.Equal(t, 100, r.Percent, "an empty record is clean")
			continue
		}
		assert.Zero(t, r.Percent, "%s starts at zero", r.ID)
	}
	assert.Equal(t, 25, progress.OverallPercent)
}

// A Rider meeting every threshold exactly reports 100% on each requirement
// and is eligible.
func TestEvaluateExactRiderBoundary(t *testing.T) {
	cfg := DefaultConfig()
	calc := NewCalculator(cfg, nil)
	snap := Snapshot{
		AsOf:     asOf,
		JoinDate: asOf.AddDate(0, 0, -730),
		Tier:     TierRider,
	}

	activity := ActivityRecord{
		EventsRegistered:     100,
		ConfirmedEvents:      50,
		VolunteeringDone:     1,
		TenureDays:           730,
		DigitalParticipation: true,
		CleanRecord:          true,
	}
	totals := PointTotals{Cumulative: 3000, TrailingYear: 1000}

	progress := Evaluate(activity, totals, snap, calc.Materialize(snap, activity))
	require.Equal(t, TierPro, progress.NextTier)

	for _, r := range progress.Requirements {
		assert.True(t, r.Fulfilled, "%s must be fulfilled at the exact boundary", r.ID)
		assert.Equal(t, 100, r.Percent, r.ID)
	}
	assert.Equal(t, 100, progress.OverallPercent)
	assert.True(t, progress.Eligible())
}

func TestEvaluateOnePointShort(t *testing.T) {
	spec := RequirementSpec{
		NextTier: TierLegend,
		Requirements: []Requirement{
			numericReq(MetricCumulativePoints, 9000, "points", "Accumulate 9000 points"),
		},
	}

	progress := Evaluate(ActivityRecord{}, PointTotals{Cumulative: 8999}, testSnapshot(TierPro), spec)
	req := progress.Requirements[0]
	assert.False(t, req.Fulfilled)
	assert.Equal(t, 99, req.Percent, "8999 of 9000 floors to 99, never rounds to 100")
	assert.False(t, progress.Eligible())

	progress = Evaluate(ActivityRecord{}, PointTotals{Cumulative: 9000}, testSnapshot(TierPro), spec)
	assert.True(t, progress.Requirements[0].Fulfilled)
	assert.Equal(t, 100, progress.Requirements[0].Percent)
}

// Percent is clamped to [0, 100] for any actual/target combination.
func TestPercentOfBounds(t *testing.T) {
	targets := []int{0, 1, 3, 12, 1000, 50000}
	actuals := []int{-5, 0, 1, 2, 11, 999, 1000, 1001, 75000, 1 << 20}

	for _, target := range targets {
		for _, actual := range actuals {
			p := percentOf(actual, target)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100, "percentOf(%d, %d)", actual, target)
			if target > 0 && actual >= target {
				assert.Equal(t, 100, p)
			}
		}
	}
}

func TestEvaluateBooleanAllOrNothing(t *testing.T) {
	spec := RequirementSpec{
		NextTier: TierPro,
		Requirements: []Requirement{
			boolReq(MetricDigitalParticipation, "Stay active in the club's forums and groups"),
		},
	}

	// Almost there on every axis: still 0, never partial credit.
	near := Aggregate(Snapshot{AsOf: asOf, JoinDate: asOf.AddDate(-1, 0, 0), Tier: TierRider}, nil, Engagement{
		ForumPosts:          4,
		GroupInteractions:   9,
		LastDigitalActivity: asOf,
	})
	progress := Evaluate(near, PointTotals{}, testSnapshot(TierRider), spec)
	assert.Zero(t, progress.Requirements[0].Percent)
	assert.False(t, progress.Requirements[0].Fulfilled)

	met := ActivityRecord{DigitalParticipation: true}
	progress = Evaluate(met, PointTotals{}, testSnapshot(TierRider), spec)
	assert.Equal(t, 100, progress.Requirements[0].Percent)
	assert.True(t, progress.Requirements[0].Fulfilled)
}

func TestEvaluateEstimatedTotalsFlagged(t *testing.T) {
	spec := RequirementSpec{
		NextTier: TierRider,
		Requirements: []Requirement{
			numericReq(MetricCumulativePoints, 1000, "points", "Accumulate 1000 points"),
			numericReq(MetricTenureDays, 365, "days", "Hold the current level for 365 days"),
		},
	}
	totals := PointTotals{Cumulative: 500, TrailingYear: 500, IsEstimated: true}

	progress := Evaluate(ActivityRecord{TenureDays: 100}, totals, testSnapshot(TierFriend), spec)
	assert.True(t, progress.Requirements[0].Estimated, "point figures carry the estimate flag")
	assert.Contains(t, progress.Requirements[0].Detail, "estimated")
	assert.False(t, progress.Requirements[1].Estimated, "tenure is not estimated")
}

func TestEvaluateRequirementLeaderApproval(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	req := calc.LeaderRequirement()

	snap := testSnapshot(TierMaster)
	res := EvaluateRequirement(req, ActivityRecord{}, PointTotals{}, snap)
	assert.False(t, res.Fulfilled, "approval is never granted automatically")

	snap.LeaderApproved = true
	res = EvaluateRequirement(req, ActivityRecord{}, PointTotals{}, snap)
	assert.True(t, res.Fulfilled)
	assert.Equal(t, 100, res.Percent)
}

func TestOverallPercentIsFlooredMean(t *testing.T) {
	spec := RequirementSpec{
		NextTier: TierRider,
		Requirements: []Requirement{
			numericReq(MetricCumulativePoints, 1000, "points", "Accumulate 1000 points"),
			numericReq(MetricVolunteering, 1, "volunteering activities", "Complete 1 volunteering activity"),
		},
	}

	progress := Evaluate(
		ActivityRecord{VolunteeringDone: 1},
		PointTotals{Cumulative: 999},
		testSnapshot(TierFriend),
		spec,
	)
	// (99 + 100) / 2 floors to 99: overall 100 implies every requirement at 100.
	assert.Equal(t, 99, progress.OverallPercent)
}
