package membership

// rankingCeiling is the point total treated as "top of the table" by the
// position approximation.
const rankingCeiling = 100000

// Ranking approximates a member's position among active members.
type Ranking struct {
	Position     int `json:"position"`
	TotalMembers int `json:"totalMembers"`
}

// EstimateRanking places a member by linear interpolation of their points
// against a fixed ceiling: position = total * (ceiling - points) / ceiling,
// clamped to [1, total]. It is an estimate, not a leaderboard query; exact
// ordering comes from the ledger.
func EstimateRanking(points, totalActive int) Ranking {
	if totalActive < 1 {
		return Ranking{}
	}
	if points < 0 {
		points = 0
	}
	if points > rankingCeiling {
		points = rankingCeiling
	}

	position := totalActive * (rankingCeiling - points) / rankingCeiling
	if position < 1 {
		position = 1
	}
	if position > totalActive {
		position = totalActive
	}

	return Ranking{Position: position, TotalMembers: totalActive}
}
