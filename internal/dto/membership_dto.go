package dto

import (
	"time"

	"anoa.com/bskmtclub/internal/membership"
)

type PointsSummary struct {
	Cumulative   int  `json:"cumulative"`
	TrailingYear int  `json:"trailing_year"`
	IsEstimated  bool `json:"is_estimated"`
}

type ProgressSection struct {
	NextTier       string                         `json:"next_tier,omitempty"`
	OverallPercent int                            `json:"overall_percent"`
	Eligible       bool                           `json:"eligible"`
	Requirements   []membership.RequirementResult `json:"requirements"`
}

type RankingResponse struct {
	Position     int  `json:"position"`
	TotalMembers int  `json:"total_members"`
	Approximate  bool `json:"approximate"` // interpolated estimate, not a leaderboard query
}

type LeaderSection struct {
	Requirement       membership.RequirementResult `json:"requirement"`
	ApplicationStatus string                       `json:"application_status,omitempty"`
}

type MembershipProgressResponse struct {
	MemberID    string              `json:"member_id"`
	Username    string              `json:"username"`
	Tier        string              `json:"tier"`
	TierInfo    membership.TierInfo `json:"tier_info"`
	JoinDate    time.Time           `json:"join_date"`
	IsVolunteer bool                `json:"is_volunteer"`

	Points       PointsSummary            `json:"points"`
	Progress     ProgressSection          `json:"progress"`
	Achievements []membership.Achievement `json:"achievements"`
	Ranking      RankingResponse          `json:"ranking"`
	Leader       *LeaderSection           `json:"leader,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

type VolunteerInput struct {
	IsVolunteer *bool `json:"is_volunteer" binding:"required"`
}

type LeaderApplicationInput struct {
	Motivation string `json:"motivation" binding:"required,min=10,max=2000"`
}
