package model

import (
	"time"

	"github.com/google/uuid"
)

type PointLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index:idx_user_date,priority:1;not null" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	ActivityType   string    `gorm:"size:50;not null" json:"activity_type"` // 'event_attendance', 'volunteering', 'monthly_bonus'
	Points         int       `gorm:"not null" json:"points"`
	ReferenceID    string    `gorm:"size:36" json:"reference_id"`    // UUID string
	ReferenceTable string    `gorm:"size:50" json:"reference_table"` // 'events', 'volunteering_records'
	OccurredAt     time.Time `gorm:"index:idx_user_date,priority:2;index:idx_date;not null" json:"occurred_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type UserStats struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User               User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	TotalPointsAllTime int       `gorm:"default:0" json:"total_points_all_time"`
	LastUpdatedAt      time.Time `gorm:"autoUpdateTime" json:"last_updated_at"`
}
