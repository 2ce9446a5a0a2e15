package repository

import (
	"context"

	"anoa.com/bskmtclub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EngagementCounters bundles every stored counter the qualitative
// requirement checks read.
type EngagementCounters struct {
	Volunteering int

	Organized  int
	Support    int
	Leadership int

	PositiveFeedback       int
	BehaviorReports        int
	CommunityContributions int

	Disciplinary     int
	EthicsViolations int

	Digital *model.DigitalActivity // nil when the user has no digital row
}

type EngagementRepository interface {
	CountersByUser(ctx context.Context, userID uuid.UUID) (*EngagementCounters, error)
	CreateVolunteering(ctx context.Context, rec *model.VolunteeringRecord) error
	CreateDisciplinary(ctx context.Context, rec *model.DisciplinaryRecord) error
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) CountersByUser(ctx context.Context, userID uuid.UUID) (*EngagementCounters, error) {
	counters := &EngagementCounters{}
	db := r.db.WithContext(ctx)

	var volunteering int64
	if err := db.Model(&model.VolunteeringRecord{}).
		Where("user_id = ?", userID).
		Count(&volunteering).Error; err != nil {
		return nil, err
	}
	counters.Volunteering = int(volunteering)

	type kindCount struct {
		Kind  string
		Count int
	}

	var contributions []kindCount
	if err := db.Model(&model.ContributionRecord{}).
		Select("kind, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&contributions).Error; err != nil {
		return nil, err
	}
	for _, c := range contributions {
		switch c.Kind {
		case model.ContributionOrganized:
			counters.Organized = c.Count
		case model.ContributionSupport:
			counters.Support = c.Count
		case model.ContributionLeadership:
			counters.Leadership = c.Count
		}
	}

	var feedback []kindCount
	if err := db.Model(&model.FeedbackRecord{}).
		Select("kind, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&feedback).Error; err != nil {
		return nil, err
	}
	for _, f := range feedback {
		switch f.Kind {
		case model.FeedbackPositive:
			counters.PositiveFeedback = f.Count
		case model.FeedbackExemplaryBehavior:
			counters.BehaviorReports = f.Count
		case model.FeedbackCommunityContribution:
			counters.CommunityContributions = f.Count
		}
	}

	var records []kindCount
	if err := db.Model(&model.DisciplinaryRecord{}).
		Select("kind, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("kind").
		Scan(&records).Error; err != nil {
		return nil, err
	}
	for _, rec := range records {
		switch rec.Kind {
		case model.RecordDisciplinary:
			counters.Disciplinary = rec.Count
		case model.RecordEthics:
			counters.EthicsViolations = rec.Count
		}
	}

	var digital model.DigitalActivity
	err := db.Where("user_id = ?", userID).First(&digital).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err == nil {
		counters.Digital = &digital
	}

	return counters, nil
}

func (r *engagementRepository) CreateVolunteering(ctx context.Context, rec *model.VolunteeringRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *engagementRepository) CreateDisciplinary(ctx context.Context, rec *model.DisciplinaryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}
