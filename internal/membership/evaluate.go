package membership

import "fmt"

// RequirementResult is the evaluated state of one requirement.
type RequirementResult struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Fulfilled bool   `json:"fulfilled"`
	Percent   int    `json:"percent"`
	Detail    string `json:"detail"`
	Estimated bool   `json:"estimated,omitempty"`
}

// Progress is the outcome of evaluating one member against the
// requirements for their next tier.
type Progress struct {
	NextTier       Tier                `json:"nextTier,omitempty"`
	OverallPercent int                 `json:"overallPercent"`
	Requirements   []RequirementResult `json:"requirements"`
}

// Eligible reports whether every requirement is fulfilled and a next tier
// exists. Eligibility is advisory: the upgrade itself is an administrative
// write, never performed here.
func (p Progress) Eligible() bool {
	if p.NextTier == "" || len(p.Requirements) == 0 {
		return false
	}
	for _, r := range p.Requirements {
		if !r.Fulfilled {
			return false
		}
	}
	return true
}

// Evaluate scores the materialized spec against the member's activity and
// point totals. Numeric requirements score min(100, 100*actual/target) with
// integer arithmetic; boolean requirements score 0 or 100 with no partial
// credit. A member at the terminal tier gets an empty list and 100%.
func Evaluate(activity ActivityRecord, totals PointTotals, snap Snapshot, spec RequirementSpec) Progress {
	if spec.NextTier == "" {
		return Progress{OverallPercent: 100, Requirements: []RequirementResult{}}
	}

	results := make([]RequirementResult, 0, len(spec.Requirements))
	sum := 0
	for _, req := range spec.Requirements {
		res := evaluateOne(req, activity, totals, snap)
		sum += res.Percent
		results = append(results, res)
	}

	overall := 100
	if len(results) > 0 {
		overall = sum / len(results)
	}

	return Progress{
		NextTier:       spec.NextTier,
		OverallPercent: overall,
		Requirements:   results,
	}
}

// EvaluateRequirement scores a single requirement outside a full spec.
// Used for the Master→Leader administrative requirement, which never rides
// the automatic path.
func EvaluateRequirement(req Requirement, activity ActivityRecord, totals PointTotals, snap Snapshot) RequirementResult {
	return evaluateOne(req, activity, totals, snap)
}

func evaluateOne(req Requirement, activity ActivityRecord, totals PointTotals, snap Snapshot) RequirementResult {
	res := RequirementResult{
		ID:        req.ID,
		Label:     req.Label,
		Estimated: req.Estimated,
	}

	if req.Boolean {
		met := booleanActual(req.Metric, activity, snap)
		res.Fulfilled = met
		if met {
			res.Percent = 100
			res.Detail = "Requirement met"
		} else {
			res.Detail = "Requirement not yet met"
		}
		return res
	}

	actual := numericActual(req.Metric, activity, totals)
	res.Fulfilled = actual >= req.Target
	res.Percent = percentOf(actual, req.Target)
	res.Detail = fmt.Sprintf("%d of %d %s", actual, req.Target, req.Unit)
	if totals.IsEstimated && pointsMetric(req.Metric) {
		res.Detail += " (estimated)"
		res.Estimated = true
	}
	return res
}

func numericActual(metric Metric, activity ActivityRecord, totals PointTotals) int {
	switch metric {
	case MetricCumulativePoints:
		return totals.Cumulative
	case MetricTrailingYearPoints:
		return totals.TrailingYear
	case MetricEventsAttended:
		return activity.EventsAttended
	case MetricConfirmedEvents:
		return activity.ConfirmedEvents
	case MetricCommunityEvents:
		return activity.CommunityEvents
	case MetricEducationalEvents:
		return activity.EducationalEvents
	case MetricVolunteering:
		return activity.VolunteeringDone
	case MetricTenureDays:
		return activity.TenureDays
	}
	return 0
}

func booleanActual(metric Metric, activity ActivityRecord, snap Snapshot) bool {
	switch metric {
	case MetricCleanRecord:
		return activity.CleanRecord
	case MetricDigitalParticipation:
		return activity.DigitalParticipation
	case MetricDemonstrableContribution:
		return activity.DemonstrableContribution
	case MetricExemplaryAttitude:
		return activity.ExemplaryAttitude
	case MetricLeaderApproval:
		return snap.LeaderApproved
	}
	return false
}

func pointsMetric(m Metric) bool {
	return m == MetricCumulativePoints || m == MetricTrailingYearPoints
}

// percentOf caps progress at 100 and treats a zero target as satisfied.
func percentOf(actual, target int) int {
	if target <= 0 {
		return 100
	}
	if actual >= target {
		return 100
	}
	if actual <= 0 {
		return 0
	}
	return actual * 100 / target
}
