package membership

import "fmt"

// Metric names the activity figure a requirement is checked against.
type Metric string

const (
	MetricCumulativePoints   Metric = "cumulative_points"
	MetricTrailingYearPoints Metric = "trailing_year_points"
	MetricEventsAttended     Metric = "events_attended"
	MetricConfirmedEvents    Metric = "confirmed_events"
	MetricCommunityEvents    Metric = "community_events"
	MetricEducationalEvents  Metric = "educational_events"
	MetricVolunteering       Metric = "volunteering"
	MetricTenureDays         Metric = "tenure_days"

	MetricCleanRecord              Metric = "clean_record"
	MetricDigitalParticipation     Metric = "digital_participation"
	MetricDemonstrableContribution Metric = "demonstrable_contribution"
	MetricExemplaryAttitude        Metric = "exemplary_attitude"
	MetricLeaderApproval           Metric = "administrative_approval"
)

// Requirement is one materialized condition with its numeric target already
// resolved. Boolean requirements carry Target 1 and score all-or-nothing.
type Requirement struct {
	ID      string
	Label   string
	Metric  Metric
	Target  int
	Unit    string
	Boolean bool
	// Estimated marks a target derived from an estimated reference
	// population rather than a real event count.
	Estimated bool
}

// RequirementSpec is the full requirement set for one transition.
type RequirementSpec struct {
	NextTier     Tier
	Requirements []Requirement
}

// EventPopulation resolves the reference population dynamic event
// requirements are computed against. exact is false when the figure is an
// estimate rather than a real count.
type EventPopulation interface {
	OfficialEventsInYear(year int) (count int, exact bool)
}

// fixedAnnualEstimate is the default population: a flat events-per-year
// figure, always inexact.
type fixedAnnualEstimate int

func (f fixedAnnualEstimate) OfficialEventsInYear(int) (int, bool) {
	return int(f), false
}

// Calculator materializes requirement specs from the injected rule config
// and an event population source.
type Calculator struct {
	cfg    Config
	events EventPopulation
}

// NewCalculator builds a calculator. A nil population falls back to the
// configured flat annual estimate.
func NewCalculator(cfg Config, events EventPopulation) *Calculator {
	if events == nil {
		events = fixedAnnualEstimate(cfg.EstimatedEventsPerYear)
	}
	return &Calculator{cfg: cfg, events: events}
}

// Materialize resolves the requirement set for promotion out of the
// member's current tier. The terminal tier yields an empty spec.
func (c *Calculator) Materialize(snap Snapshot, activity ActivityRecord) RequirementSpec {
	next, ok := NextTier(snap.Tier)
	if !ok {
		return RequirementSpec{}
	}
	rule := c.cfg.Rules[snap.Tier]

	var reqs []Requirement

	if rule.Points > 0 {
		reqs = append(reqs, numericReq(MetricCumulativePoints, rule.Points, "points",
			fmt.Sprintf("Accumulate %d points", rule.Points)))
	}
	if rule.TrailingYearPoints > 0 {
		reqs = append(reqs, numericReq(MetricTrailingYearPoints, rule.TrailingYearPoints, "points",
			fmt.Sprintf("Earn %d points within the last year", rule.TrailingYearPoints)))
	}

	if rule.EventPercent > 0 {
		base, estimated := c.eventBase(snap, activity)
		target := ceilPercent(base, rule.EventPercent)
		req := numericReq(MetricEventsAttended, target, "events",
			fmt.Sprintf("Attend %d events (%d%% of %d)", target, rule.EventPercent, base))
		req.Estimated = estimated
		reqs = append(reqs, req)
	}
	if rule.ConfirmedEventPercent > 0 {
		target := ceilPercent(activity.EventsRegistered, rule.ConfirmedEventPercent)
		reqs = append(reqs, numericReq(MetricConfirmedEvents, target, "events",
			fmt.Sprintf("Attend %d events with confirmed attendance (%d%% of %d)",
				target, rule.ConfirmedEventPercent, activity.EventsRegistered)))
	}
	if rule.CommunityEventPercent > 0 {
		base, estimated := c.eventBase(snap, activity)
		target := ceilPercent(base, rule.CommunityEventPercent)
		req := numericReq(MetricCommunityEvents, target, "events",
			fmt.Sprintf("Attend %d community or humanitarian events (%d%% of %d)",
				target, rule.CommunityEventPercent, base))
		req.Estimated = estimated
		reqs = append(reqs, req)
	}
	if rule.EducationalEventPercent > 0 {
		base, estimated := c.eventBase(snap, activity)
		target := ceilPercent(base, rule.EducationalEventPercent)
		req := numericReq(MetricEducationalEvents, target, "events",
			fmt.Sprintf("Attend %d educational events (%d%% of %d)",
				target, rule.EducationalEventPercent, base))
		req.Estimated = estimated
		reqs = append(reqs, req)
	}
	if rule.FixedEvents > 0 {
		reqs = append(reqs, numericReq(MetricEventsAttended, rule.FixedEvents, "events",
			fmt.Sprintf("Attend %d events", rule.FixedEvents)))
	}

	if rule.Volunteering > 0 {
		reqs = append(reqs, numericReq(MetricVolunteering, rule.Volunteering, "volunteering activities",
			fmt.Sprintf("Complete %d volunteering activities", rule.Volunteering)))
	}

	if rule.TenureDays > 0 {
		days := rule.TenureDays
		if rule.LeapYearAdjusted && isLeapYear(snap.JoinDate.Year()) {
			days++
		}
		reqs = append(reqs, numericReq(MetricTenureDays, days, "days",
			fmt.Sprintf("Hold the current level for %d days", days)))
	}

	if rule.NeedsCleanRecord {
		reqs = append(reqs, boolReq(MetricCleanRecord,
			"Keep a record free of disciplinary and ethics violations"))
	}
	if rule.NeedsDigitalParticipation {
		reqs = append(reqs, boolReq(MetricDigitalParticipation,
			"Stay active in the club's forums and groups"))
	}
	if rule.NeedsDemonstrableContribution {
		reqs = append(reqs, boolReq(MetricDemonstrableContribution,
			"Demonstrate contribution through organizing, support or leadership"))
	}
	if rule.NeedsExemplaryAttitude {
		reqs = append(reqs, boolReq(MetricExemplaryAttitude,
			"Maintain an exemplary attitude with documented positive feedback"))
	}

	return RequirementSpec{NextTier: next, Requirements: reqs}
}

// LeaderRequirement is the single condition of the Master→Leader path. It
// is intentionally outside Materialize: the Leader role is granted by
// administrative decision, never by the automatic evaluation.
func (c *Calculator) LeaderRequirement() Requirement {
	return boolReq(MetricLeaderApproval,
		"Obtain administrative approval of the Leader application")
}

// eventBase resolves the reference event population for percentage
// requirements. A member still in the entry tier is measured against the
// official event count of their join year; afterwards the member's own
// registered history is the base.
func (c *Calculator) eventBase(snap Snapshot, activity ActivityRecord) (int, bool) {
	if snap.Tier == TierFriend {
		if count, exact := c.events.OfficialEventsInYear(snap.JoinDate.Year()); count > 0 {
			return count, !exact
		}
		return c.cfg.EstimatedEventsPerYear, true
	}
	return activity.EventsRegistered, false
}

func numericReq(metric Metric, target int, unit, label string) Requirement {
	return Requirement{
		ID:     string(metric),
		Label:  label,
		Metric: metric,
		Target: target,
		Unit:   unit,
	}
}

func boolReq(metric Metric, label string) Requirement {
	return Requirement{
		ID:      string(metric),
		Label:   label,
		Metric:  metric,
		Target:  1,
		Boolean: true,
	}
}

// ceilPercent computes ceil(base * pct%), the "required events" rounding
// rule: fractional requirements always round up.
func ceilPercent(base, pct int) int {
	if base <= 0 || pct <= 0 {
		return 0
	}
	return (base*pct + 99) / 100
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
