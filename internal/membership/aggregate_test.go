package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSnapshot(tier Tier) Snapshot {
	return Snapshot{
		AsOf:     asOf,
		JoinDate: asOf.AddDate(-3, 0, 0),
		Tier:     tier,
	}
}

func TestAggregateEventCounts(t *testing.T) {
	history := []EventRecord{
		{Type: EventCommunity, Attended: true, Confirmed: true},
		{Type: EventEducational, Attended: true},
		{Type: EventOther, Attended: true, Confirmed: true},
		{Type: "", Attended: true}, // untagged counts as other
		{Type: EventCommunity, Attended: false, Confirmed: true}, // absent: never confirmed
		{Type: EventCommunity, Attended: false},
	}

	rec := Aggregate(testSnapshot(TierRider), history, Engagement{})
	assert.Equal(t, 6, rec.EventsRegistered)
	assert.Equal(t, 4, rec.EventsAttended)
	assert.Equal(t, 2, rec.ConfirmedEvents)
	assert.Equal(t, 1, rec.CommunityEvents)
	assert.Equal(t, 1, rec.EducationalEvents)
	assert.Equal(t, 2, rec.OtherEvents, "untagged events stay in the other bucket")
}

func TestAggregateTenure(t *testing.T) {
	snap := Snapshot{
		AsOf:      asOf,
		JoinDate:  asOf.AddDate(-3, 0, 0),
		Tier:      TierRider,
		TierSince: asOf.AddDate(0, 0, -400),
	}
	rec := Aggregate(snap, nil, Engagement{})
	assert.Equal(t, 400, rec.TenureDays, "tenure counts from the tier start")

	snap.TierSince = time.Time{}
	rec = Aggregate(snap, nil, Engagement{})
	assert.Equal(t, 365*3, rec.TenureDays, "missing tier start falls back to the join date")

	snap.JoinDate = asOf.Add(time.Hour)
	rec = Aggregate(snap, nil, Engagement{})
	assert.Zero(t, rec.TenureDays)
}

func TestHasDigitalParticipation(t *testing.T) {
	active := Engagement{
		ForumPosts:          5,
		GroupInteractions:   10,
		LastDigitalActivity: asOf.AddDate(0, 0, -30),
	}

	tests := []struct {
		name string
		eng  Engagement
		want bool
	}{
		{"all thresholds met at the boundary", active, true},
		{"one forum post short", with(active, func(e *Engagement) { e.ForumPosts = 4 }), false},
		{"one interaction short", with(active, func(e *Engagement) { e.GroupInteractions = 9 }), false},
		{"idle 31 days", with(active, func(e *Engagement) { e.LastDigitalActivity = asOf.AddDate(0, 0, -31) }), false},
		{"never active", with(active, func(e *Engagement) { e.LastDigitalActivity = time.Time{} }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDigitalParticipation(tt.eng, asOf))
		})
	}
}

func TestHasCleanRecord(t *testing.T) {
	assert.True(t, HasCleanRecord(Engagement{}))
	assert.False(t, HasCleanRecord(Engagement{DisciplinaryRecords: 1}))
	assert.False(t, HasCleanRecord(Engagement{EthicsViolations: 1}))
}

func TestHasDemonstrableContribution(t *testing.T) {
	assert.False(t, HasDemonstrableContribution(Engagement{OrganizedActivities: 1, SupportActivities: 2}),
		"near misses on every axis do not combine")
	assert.True(t, HasDemonstrableContribution(Engagement{OrganizedActivities: 2}))
	assert.True(t, HasDemonstrableContribution(Engagement{SupportActivities: 3}))
	assert.True(t, HasDemonstrableContribution(Engagement{LeadershipRoles: 1}))
}

func TestHasExemplaryAttitude(t *testing.T) {
	base := Engagement{PositiveFeedback: 3, BehaviorReports: 1}

	assert.True(t, HasExemplaryAttitude(base))
	assert.True(t, HasExemplaryAttitude(Engagement{PositiveFeedback: 3, CommunityContributions: 1}))
	assert.False(t, HasExemplaryAttitude(Engagement{PositiveFeedback: 3}),
		"positive feedback alone is not enough without documented evidence")
	assert.False(t, HasExemplaryAttitude(Engagement{PositiveFeedback: 2, BehaviorReports: 1}))
	assert.False(t, HasExemplaryAttitude(with(base, func(e *Engagement) { e.EthicsViolations = 1 })),
		"exemplary attitude requires a clean record")
}

func with(e Engagement, mod func(*Engagement)) Engagement {
	mod(&e)
	return e
}
