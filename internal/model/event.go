package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Type      string    `gorm:"size:30;not null;default:other" json:"type"` // 'community', 'educational', 'other'
	Official  bool      `gorm:"default:true" json:"official"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type EventAttendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_event_user;not null" json:"event_id"`
	Event     Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_event_user;index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Attended  bool      `gorm:"default:false" json:"attended"`
	Confirmed bool      `gorm:"default:false" json:"confirmed"` // organizer-verified attendance
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
