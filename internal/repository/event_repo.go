package repository

import (
	"context"

	"anoa.com/bskmtclub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	HistoryByUser(ctx context.Context, userID uuid.UUID) ([]model.EventAttendance, error)
	CreateAttendance(ctx context.Context, att *model.EventAttendance) error
	FindAttendance(ctx context.Context, eventID, userID uuid.UUID) (*model.EventAttendance, error)
	SaveAttendance(ctx context.Context, att *model.EventAttendance) error
	CountOfficialInYear(ctx context.Context, year int) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) HistoryByUser(ctx context.Context, userID uuid.UUID) ([]model.EventAttendance, error) {
	var history []model.EventAttendance
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *eventRepository) CreateAttendance(ctx context.Context, att *model.EventAttendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

// FindAttendance returns nil, nil when the member has no record for the
// event.
func (r *eventRepository) FindAttendance(ctx context.Context, eventID, userID uuid.UUID) (*model.EventAttendance, error) {
	var att model.EventAttendance
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&att).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

func (r *eventRepository) SaveAttendance(ctx context.Context, att *model.EventAttendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *eventRepository) CountOfficialInYear(ctx context.Context, year int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("official = ? AND EXTRACT(YEAR FROM date) = ?", true, year).
		Count(&count).Error
	return count, err
}
