package membership

import "time"

// Snapshot is the consistent, point-in-time view of one member that every
// engine call works from. All derived figures reference AsOf so a single
// evaluation never mixes clocks.
type Snapshot struct {
	AsOf      time.Time
	JoinDate  time.Time
	Tier      Tier
	TierSince time.Time // zero means the member never changed tier
	Volunteer bool
	// LeaderApproved is the stored outcome of the administrative Leader
	// application. The engine only reads it; it never grants it.
	LeaderApproved bool
}

// tierStart returns when the member entered their current tier.
func (s Snapshot) tierStart() time.Time {
	if s.TierSince.IsZero() {
		return s.JoinDate
	}
	return s.TierSince
}

// EventType classifies a club event for the per-type distribution.
type EventType string

const (
	EventCommunity   EventType = "community"
	EventEducational EventType = "educational"
	EventOther       EventType = "other"
)

// EventRecord is one entry of a member's event history. Confirmed means the
// attendance was verified by an organizer; an absent member is never
// confirmed regardless of the flag.
type EventRecord struct {
	Type      EventType
	Attended  bool
	Confirmed bool
	Date      time.Time
}

// Engagement holds the stored counters behind the soft qualitative
// requirements. They are maintained by outside collaborators; the engine
// only compares them against thresholds.
type Engagement struct {
	VolunteeringDone int

	OrganizedActivities    int
	SupportActivities      int
	LeadershipRoles        int
	PositiveFeedback       int
	BehaviorReports        int
	CommunityContributions int

	ForumPosts          int
	GroupInteractions   int
	LastDigitalActivity time.Time // zero means never active

	DisciplinaryRecords int
	EthicsViolations    int
}

// ActivityRecord is the aggregated activity view the evaluator consumes.
type ActivityRecord struct {
	EventsRegistered int // full historical event population for the member
	EventsAttended   int
	ConfirmedEvents  int

	CommunityEvents   int
	EducationalEvents int
	OtherEvents       int

	VolunteeringDone int
	TenureDays       int

	DigitalParticipation     bool
	CleanRecord              bool
	DemonstrableContribution bool
	ExemplaryAttitude        bool
}

// Aggregate derives the activity record for one member. Event typing is
// taken as stored: untagged events count as "other", never redistributed
// into community or educational buckets.
func Aggregate(snap Snapshot, history []EventRecord, eng Engagement) ActivityRecord {
	rec := ActivityRecord{
		EventsRegistered: len(history),
		VolunteeringDone: eng.VolunteeringDone,
	}

	for _, ev := range history {
		if !ev.Attended {
			continue
		}
		rec.EventsAttended++
		if ev.Confirmed {
			rec.ConfirmedEvents++
		}
		switch ev.Type {
		case EventCommunity:
			rec.CommunityEvents++
		case EventEducational:
			rec.EducationalEvents++
		default:
			rec.OtherEvents++
		}
	}

	tenure := snap.AsOf.Sub(snap.tierStart())
	if tenure > 0 {
		rec.TenureDays = int(tenure.Hours() / 24)
	}

	rec.DigitalParticipation = HasDigitalParticipation(eng, snap.AsOf)
	rec.CleanRecord = HasCleanRecord(eng)
	rec.DemonstrableContribution = HasDemonstrableContribution(eng)
	rec.ExemplaryAttitude = HasExemplaryAttitude(eng)

	return rec
}

// Soft-requirement thresholds. Each predicate is all-or-nothing: no partial
// credit, no substituting one axis for another.
const (
	minForumPosts          = 5
	minGroupInteractions   = 10
	maxDigitalIdleDays     = 30
	minOrganizedActivities = 2
	minSupportActivities   = 3
	minLeadershipRoles     = 1
	minPositiveFeedback    = 3
	minBehaviorEvidence    = 1
)

// HasDigitalParticipation requires sustained forum and group activity with
// a recent last-seen timestamp.
func HasDigitalParticipation(eng Engagement, asOf time.Time) bool {
	if eng.ForumPosts < minForumPosts || eng.GroupInteractions < minGroupInteractions {
		return false
	}
	if eng.LastDigitalActivity.IsZero() {
		return false
	}
	idle := asOf.Sub(eng.LastDigitalActivity)
	return idle <= time.Duration(maxDigitalIdleDays)*24*time.Hour
}

// HasCleanRecord requires zero disciplinary records and zero ethics
// violations.
func HasCleanRecord(eng Engagement) bool {
	return eng.DisciplinaryRecords == 0 && eng.EthicsViolations == 0
}

// HasDemonstrableContribution is satisfied by any one of: organized
// activities, recurring support, or a leadership role.
func HasDemonstrableContribution(eng Engagement) bool {
	return eng.OrganizedActivities >= minOrganizedActivities ||
		eng.SupportActivities >= minSupportActivities ||
		eng.LeadershipRoles >= minLeadershipRoles
}

// HasExemplaryAttitude layers positive feedback and documented evidence on
// top of a clean record.
func HasExemplaryAttitude(eng Engagement) bool {
	if !HasCleanRecord(eng) {
		return false
	}
	if eng.PositiveFeedback < minPositiveFeedback {
		return false
	}
	return eng.BehaviorReports >= minBehaviorEvidence ||
		eng.CommunityContributions >= minBehaviorEvidence
}
