package model

import (
	"time"

	"github.com/google/uuid"
)

// DigitalActivity is the per-user counter row behind the digital
// participation check. Maintained by the forum/group integrations; this
// service only reads it.
type DigitalActivity struct {
	UserID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	User              User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ForumPosts        int        `gorm:"default:0" json:"forum_posts"`
	GroupInteractions int        `gorm:"default:0" json:"group_interactions"`
	LastActivityAt    *time.Time `json:"last_activity_at,omitempty"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type FeedbackRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Kind      string    `gorm:"size:40;not null" json:"kind"` // 'positive', 'exemplary_behavior', 'community_contribution'
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

const (
	FeedbackPositive              = "positive"
	FeedbackExemplaryBehavior     = "exemplary_behavior"
	FeedbackCommunityContribution = "community_contribution"
)

type ContributionRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Kind      string    `gorm:"size:40;not null" json:"kind"` // 'organized', 'support', 'leadership'
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

const (
	ContributionOrganized  = "organized"
	ContributionSupport    = "support"
	ContributionLeadership = "leadership"
)
