package membership

// Achievement is a derived badge. Derivation is pure and idempotent: the
// same activity always yields the same badge set, and badges are not stored
// by the engine.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

const (
	enthusiastEvents    = 5
	collectorPointsGoal = 1000
)

// Achievements derives the badges earned by the given activity and totals.
func Achievements(activity ActivityRecord, totals PointTotals) []Achievement {
	badges := make([]Achievement, 0, 4)

	if activity.EventsAttended >= 1 {
		badges = append(badges, Achievement{
			ID:          "first_event",
			Name:        "First Event",
			Description: "Attended a club event for the first time",
			Points:      100,
		})
	}
	if activity.EventsAttended >= enthusiastEvents {
		badges = append(badges, Achievement{
			ID:          "event_enthusiast",
			Name:        "Event Enthusiast",
			Description: "Attended five or more club events",
			Points:      250,
		})
	}
	if activity.VolunteeringDone >= 1 {
		badges = append(badges, Achievement{
			ID:          "first_volunteer",
			Name:        "First Volunteering",
			Description: "Completed a volunteering activity",
			Points:      200,
		})
	}
	if totals.Cumulative >= collectorPointsGoal {
		badges = append(badges, Achievement{
			ID:          "point_collector",
			Name:        "Point Collector",
			Description: "Accumulated a thousand points",
			Points:      500,
		})
	}

	return badges
}
