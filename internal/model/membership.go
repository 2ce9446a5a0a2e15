package model

import (
	"time"

	"github.com/google/uuid"
)

type TierTransition struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index:idx_user_changed,priority:1;not null" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FromTier  string     `gorm:"size:20;not null" json:"from_tier"`
	ToTier    string     `gorm:"size:20;not null" json:"to_tier"`
	ChangedBy *uuid.UUID `gorm:"type:uuid" json:"changed_by,omitempty"` // admin who approved the change
	ChangedAt time.Time  `gorm:"index:idx_user_changed,priority:2;not null" json:"changed_at"`
}

type LeaderApplication struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Status     string     `gorm:"size:20;not null;default:pending" json:"status"` // 'pending', 'approved', 'rejected'
	Motivation string     `gorm:"type:text" json:"motivation"`
	ReviewNote *string    `gorm:"type:text" json:"review_note,omitempty"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	AppliedAt  time.Time  `gorm:"autoCreateTime" json:"applied_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

type VolunteeringRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Activity    string    `gorm:"size:150;not null" json:"activity"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
