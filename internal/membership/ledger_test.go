package membership

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTotalsEmptyLedger(t *testing.T) {
	totals := Totals(nil, asOf)
	assert.Zero(t, totals.Cumulative)
	assert.Zero(t, totals.TrailingYear)
	assert.False(t, totals.IsEstimated, "real summation is never flagged estimated")
}

func TestTotalsTrailingWindow(t *testing.T) {
	entries := []LedgerEntry{
		{Points: 100, OccurredAt: asOf.AddDate(-2, 0, 0)},          // outside window
		{Points: 200, OccurredAt: asOf.Add(-364 * 24 * time.Hour)}, // inside
		{Points: 300, OccurredAt: asOf.Add(-time.Hour)},            // inside
		{Points: 400, OccurredAt: asOf.Add(time.Hour)},             // future, ignored
	}

	totals := Totals(entries, asOf)
	assert.Equal(t, 600, totals.Cumulative)
	assert.Equal(t, 500, totals.TrailingYear)
}

// Cumulative total must equal the plain sum of the entries regardless of
// the order they arrive in.
func TestTotalsOrderIndependent(t *testing.T) {
	entries := make([]LedgerEntry, 0, 50)
	want := 0
	for i := 0; i < 50; i++ {
		p := (i % 7) * 25
		want += p
		entries = append(entries, LedgerEntry{
			Points:     p,
			OccurredAt: asOf.AddDate(0, 0, -i),
		})
	}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 5; trial++ {
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		assert.Equal(t, want, Totals(entries, asOf).Cumulative)
	}
}

func TestEstimateTotalsFlagsEstimate(t *testing.T) {
	cfg := DefaultConfig()
	join := asOf.AddDate(0, -10, 0)

	totals := cfg.EstimateTotals(join, asOf, 4)
	require.True(t, totals.IsEstimated)
	// 10 months of tenure bonus plus 4 events at standard value.
	assert.Equal(t, 10*50+4*100, totals.Cumulative)
	assert.Equal(t, totals.Cumulative, totals.TrailingYear,
		"under a year of tenure the whole estimate falls in the window")
}

func TestEstimateTotalsLongTenure(t *testing.T) {
	cfg := DefaultConfig()
	join := asOf.AddDate(-2, 0, 0) // 24 months

	totals := cfg.EstimateTotals(join, asOf, 24)
	assert.Equal(t, 24*50+24*100, totals.Cumulative)
	// Trailing year keeps 12 months of bonus and a proportional event share.
	assert.Equal(t, 12*50+24*100*12/24, totals.TrailingYear)
	assert.Less(t, totals.TrailingYear, totals.Cumulative)
}

func TestEstimateTotalsFreshMember(t *testing.T) {
	cfg := DefaultConfig()

	totals := cfg.EstimateTotals(asOf, asOf, 0)
	assert.Zero(t, totals.Cumulative)
	assert.Zero(t, totals.TrailingYear)
	assert.True(t, totals.IsEstimated)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		a, b time.Time
		want int
	}{
		{time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, monthsBetween(tt.a, tt.b), "%s -> %s", tt.a, tt.b)
	}
}
