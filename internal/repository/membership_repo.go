package repository

import (
	"context"

	"anoa.com/bskmtclub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository interface {
	LatestTransition(ctx context.Context, userID uuid.UUID) (*model.TierTransition, error)
	CreateTransition(ctx context.Context, tr *model.TierTransition) error
	LatestLeaderApplication(ctx context.Context, userID uuid.UUID) (*model.LeaderApplication, error)
	FindLeaderApplicationByID(ctx context.Context, id uint) (*model.LeaderApplication, error)
	CreateLeaderApplication(ctx context.Context, app *model.LeaderApplication) error
	UpdateLeaderApplication(ctx context.Context, app *model.LeaderApplication) error
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// LatestTransition returns nil without error when the user never changed
// tier; callers fall back to the join date.
func (r *membershipRepository) LatestTransition(ctx context.Context, userID uuid.UUID) (*model.TierTransition, error) {
	var tr model.TierTransition
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("changed_at DESC").
		First(&tr).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tr, nil
}

func (r *membershipRepository) CreateTransition(ctx context.Context, tr *model.TierTransition) error {
	return r.db.WithContext(ctx).Create(tr).Error
}

func (r *membershipRepository) LatestLeaderApplication(ctx context.Context, userID uuid.UUID) (*model.LeaderApplication, error) {
	var app model.LeaderApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		First(&app).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *membershipRepository) FindLeaderApplicationByID(ctx context.Context, id uint) (*model.LeaderApplication, error) {
	var app model.LeaderApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *membershipRepository) CreateLeaderApplication(ctx context.Context, app *model.LeaderApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *membershipRepository) UpdateLeaderApplication(ctx context.Context, app *model.LeaderApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}
