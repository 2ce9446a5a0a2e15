package membership

// Tier is an ordered membership level. The five tiers form a strictly
// ordered path with no downgrade edge; demotion is an administrative action
// outside this package.
type Tier string

const (
	TierFriend Tier = "Friend"
	TierRider  Tier = "Rider"
	TierPro    Tier = "Pro"
	TierLegend Tier = "Legend"
	TierMaster Tier = "Master"
)

// RoleLeader is not a tier. It is a gated role reachable only from Master
// with the Volunteer flag plus an approved administrative application, and
// is never granted by the automatic evaluator.
const RoleLeader = "Leader"

var orderedTiers = []Tier{TierFriend, TierRider, TierPro, TierLegend, TierMaster}

// OrderedTiers returns the tier sequence from entry level to terminal.
func OrderedTiers() []Tier {
	tiers := make([]Tier, len(orderedTiers))
	copy(tiers, orderedTiers)
	return tiers
}

// Valid reports whether t is a recognized catalog entry. The tier set is
// closed; an unknown stored tier is a programming error upstream.
func (t Tier) Valid() bool {
	for _, tier := range orderedTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// NextTier returns the tier following current in the ordered path.
// ok is false for the terminal tier and for unknown values.
func NextTier(current Tier) (Tier, bool) {
	for i, tier := range orderedTiers {
		if tier == current && i < len(orderedTiers)-1 {
			return orderedTiers[i+1], true
		}
	}
	return "", false
}

// TierRule is the rule set governing promotion out of a tier, a superset of
// fixed and dynamic thresholds. Percentage fields resolve against a
// reference event population at materialization time; zero fields mean the
// transition does not use that axis.
type TierRule struct {
	Points             int // cumulative points
	TrailingYearPoints int // points earned in the trailing 365 days

	// Dynamic event thresholds, as percentages of a reference population.
	EventPercent            int // general attended events
	ConfirmedEventPercent   int // confirmed-attendance events
	CommunityEventPercent   int // community/social/humanitarian events
	EducationalEventPercent int // educational events

	FixedEvents  int // absolute event count (Legend -> Master)
	Volunteering int // volunteering completions

	TenureDays       int  // days in the current tier
	LeapYearAdjusted bool // tenure becomes 366 when the join year is a leap year

	NeedsCleanRecord              bool
	NeedsDigitalParticipation     bool
	NeedsDemonstrableContribution bool
	NeedsExemplaryAttitude        bool
}

// RuleFor returns the promotion rule out of tier t. ok is false for the
// terminal tier.
func (c Config) RuleFor(t Tier) (TierRule, bool) {
	rule, ok := c.Rules[t]
	return rule, ok
}

// TierInfo carries display metadata for a tier.
type TierInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
}

var tierInfo = map[Tier]TierInfo{
	TierFriend: {Name: "Friend", Description: "Entry level, the door into the club", Badge: "🤝"},
	TierRider:  {Name: "Rider", Description: "Active, committed club member", Badge: "🏍️"},
	TierPro:    {Name: "Pro", Description: "Committed collaborator of the club", Badge: "🏆"},
	TierLegend: {Name: "Legend", Description: "Reference figure with exceptional contributions", Badge: "👑"},
	TierMaster: {Name: "Master", Description: "Top of the membership path and community mentor", Badge: "💎"},
}

// Info returns display metadata for t. Unknown tiers yield a zero TierInfo.
func Info(t Tier) TierInfo {
	return tierInfo[t]
}
