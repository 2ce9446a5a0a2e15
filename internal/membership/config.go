package membership

// PointValues maps each accruable activity to its point worth.
type PointValues struct {
	EventAttendance   int
	EventOrganization int
	Volunteering      int
	PQRSDFResolution  int
	MonthlyBonus      int
	Referral          int
	SocialEngagement  int
}

// Config carries every tunable the engine reads. It is injected into the
// calculator and the ledger reader; the package holds no mutable state.
type Config struct {
	Points PointValues

	// EstimatedEventsPerYear backs the default event population when the
	// real official-event count for a year is unavailable.
	EstimatedEventsPerYear int

	// Rules keys the promotion rule by the tier being promoted OUT of.
	// The terminal tier has no entry.
	Rules map[Tier]TierRule
}

// DefaultConfig returns the club's standing point values and transition
// thresholds.
func DefaultConfig() Config {
	return Config{
		Points: PointValues{
			EventAttendance:   100,
			EventOrganization: 500,
			Volunteering:      200,
			PQRSDFResolution:  50,
			MonthlyBonus:      50,
			Referral:          300,
			SocialEngagement:  25,
		},
		EstimatedEventsPerYear: 24,
		Rules: map[Tier]TierRule{
			TierFriend: {
				Points:           1000,
				EventPercent:     50,
				TenureDays:       365,
				LeapYearAdjusted: true,
				NeedsCleanRecord: true,
			},
			TierRider: {
				Points:                    3000,
				TrailingYearPoints:        1000,
				ConfirmedEventPercent:     50,
				Volunteering:              1,
				TenureDays:                730,
				NeedsCleanRecord:          true,
				NeedsDigitalParticipation: true,
			},
			TierPro: {
				Points:                        9000,
				TrailingYearPoints:            1000,
				EventPercent:                  50,
				CommunityEventPercent:         20,
				EducationalEventPercent:       20,
				Volunteering:                  5,
				TenureDays:                    1095,
				NeedsDemonstrableContribution: true,
				NeedsExemplaryAttitude:        true,
			},
			TierLegend: {
				Points:       50000,
				FixedEvents:  50,
				Volunteering: 15,
				TenureDays:   365,
			},
		},
	}
}
