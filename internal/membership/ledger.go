package membership

import "time"

// LedgerEntry is one immutable point accrual. Entries are append-only;
// totals are always derived, never stored back into the ledger.
type LedgerEntry struct {
	Points     int
	OccurredAt time.Time
}

// PointTotals is the derived view of a member's ledger at a point in time.
type PointTotals struct {
	Cumulative   int
	TrailingYear int
	// IsEstimated marks totals derived from tenure instead of real ledger
	// history. Estimated figures are advisory and never trigger upgrades
	// on their own.
	IsEstimated bool
}

const trailingWindow = 365 * 24 * time.Hour

// Totals sums a member's ledger as of a given instant. Cumulative counts
// every entry up to asOf; TrailingYear counts the fixed 365-day window
// ending at asOf. Entries dated after asOf are ignored. Summation is
// order-independent.
func Totals(entries []LedgerEntry, asOf time.Time) PointTotals {
	var totals PointTotals
	windowStart := asOf.Add(-trailingWindow)
	for _, e := range entries {
		if e.OccurredAt.After(asOf) {
			continue
		}
		totals.Cumulative += e.Points
		if !e.OccurredAt.Before(windowStart) {
			totals.TrailingYear += e.Points
		}
	}
	return totals
}

// EstimateTotals reconstructs plausible totals for a member with no ledger
// history: the monthly tenure bonus for every full month since joining plus
// the standard value of each attended event, spread evenly over the tenure
// for the trailing-year figure.
func (c Config) EstimateTotals(joinDate, asOf time.Time, eventsAttended int) PointTotals {
	months := monthsBetween(joinDate, asOf)
	eventPoints := eventsAttended * c.Points.EventAttendance
	cumulative := months*c.Points.MonthlyBonus + eventPoints

	trailing := cumulative
	if months > 12 {
		trailing = 12*c.Points.MonthlyBonus + eventPoints*12/months
	}

	return PointTotals{
		Cumulative:   cumulative,
		TrailingYear: trailing,
		IsEstimated:  true,
	}
}

// monthsBetween counts full calendar months elapsed from a to b.
func monthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
