package dto

type LeaderboardEntry struct {
	Username string `json:"username"`
	Tier     string `json:"tier"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
}
