package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeIDs(badges []Achievement) []string {
	ids := make([]string, len(badges))
	for i, b := range badges {
		ids[i] = b.ID
	}
	return ids
}

func TestAchievementsThresholds(t *testing.T) {
	tests := []struct {
		name     string
		activity ActivityRecord
		totals   PointTotals
		want     []string
	}{
		{"no activity", ActivityRecord{}, PointTotals{}, []string{}},
		{"single event", ActivityRecord{EventsAttended: 1}, PointTotals{}, []string{"first_event"}},
		{"five events", ActivityRecord{EventsAttended: 5}, PointTotals{}, []string{"first_event", "event_enthusiast"}},
		{"volunteer", ActivityRecord{VolunteeringDone: 1}, PointTotals{}, []string{"first_volunteer"}},
		{"collector", ActivityRecord{}, PointTotals{Cumulative: 1000}, []string{"point_collector"}},
		{
			"everything",
			ActivityRecord{EventsAttended: 12, VolunteeringDone: 3},
			PointTotals{Cumulative: 4200},
			[]string{"first_event", "event_enthusiast", "first_volunteer", "point_collector"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, badgeIDs(Achievements(tt.activity, tt.totals)))
		})
	}
}

func TestAchievementsIdempotent(t *testing.T) {
	activity := ActivityRecord{EventsAttended: 7, VolunteeringDone: 2}
	totals := PointTotals{Cumulative: 1500}

	first := Achievements(activity, totals)
	second := Achievements(activity, totals)
	require.Equal(t, first, second, "derivation is pure: same inputs, same badges")
}

func TestEstimateRankingClamps(t *testing.T) {
	tests := []struct {
		points, total int
		wantPos       int
	}{
		{0, 100, 100},
		{50000, 100, 50},
		{100000, 100, 1},
		{250000, 100, 1}, // above the ceiling
		{-10, 100, 100},  // defensive lower bound
		{99999, 100, 1},
		{0, 1, 1},
	}

	for _, tt := range tests {
		r := EstimateRanking(tt.points, tt.total)
		assert.Equal(t, tt.wantPos, r.Position, "points=%d total=%d", tt.points, tt.total)
		assert.Equal(t, tt.total, r.TotalMembers)
		assert.GreaterOrEqual(t, r.Position, 1)
		assert.LessOrEqual(t, r.Position, tt.total)
	}
}

func TestEstimateRankingNoMembers(t *testing.T) {
	assert.Zero(t, EstimateRanking(500, 0))
}
