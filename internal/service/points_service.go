package service

import (
	"context"
	"log"
	"time"

	"anoa.com/bskmtclub/internal/dto"
	"anoa.com/bskmtclub/internal/membership"
	"anoa.com/bskmtclub/internal/model"
	"anoa.com/bskmtclub/internal/repository"
	"github.com/google/uuid"
)

const (
	ActivityEventAttendance   = "event_attendance"
	ActivityEventOrganization = "event_organization"
	ActivityVolunteering      = "volunteering"
	ActivityPQRSDFResolution  = "pqrsdf_resolution"
	ActivityMonthlyBonus      = "monthly_bonus"
	ActivityReferral          = "referral"
	ActivitySocialEngagement  = "social_engagement"
)

type PointsService interface {
	AwardPoints(ctx context.Context, userID uuid.UUID, activityType, referenceID, referenceTable string) error
	AwardPointsAsync(userID uuid.UUID, activityType, referenceID, referenceTable string)
	GetLeaderboard(ctx context.Context, limit int, timeframe string) ([]dto.LeaderboardEntry, error)
}

type pointsService struct {
	repo     repository.PointLogRepository
	userRepo repository.UserRepository
	cache    *ProgressCache
	cfg      membership.Config
}

func NewPointsService(repo repository.PointLogRepository, userRepo repository.UserRepository, cache *ProgressCache, cfg membership.Config) PointsService {
	return &pointsService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cache,
		cfg:      cfg,
	}
}

func (s *pointsService) pointsFor(activityType string) (int, bool) {
	p := s.cfg.Points
	switch activityType {
	case ActivityEventAttendance:
		return p.EventAttendance, true
	case ActivityEventOrganization:
		return p.EventOrganization, true
	case ActivityVolunteering:
		return p.Volunteering, true
	case ActivityPQRSDFResolution:
		return p.PQRSDFResolution, true
	case ActivityMonthlyBonus:
		return p.MonthlyBonus, true
	case ActivityReferral:
		return p.Referral, true
	case ActivitySocialEngagement:
		return p.SocialEngagement, true
	}
	return 0, false
}

// AwardPoints appends one immutable ledger entry and bumps the denormalized
// stats row. Totals are always recomputed from the ledger; the stats table
// only serves the leaderboard.
func (s *pointsService) AwardPoints(ctx context.Context, userID uuid.UUID, activityType, referenceID, referenceTable string) error {
	points, ok := s.pointsFor(activityType)
	if !ok {
		log.Printf("Unknown activity type: %s", activityType)
		return nil
	}

	entry := &model.PointLog{
		UserID:         userID,
		ActivityType:   activityType,
		Points:         points,
		ReferenceID:    referenceID,
		ReferenceTable: referenceTable,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return err
	}

	if err := s.repo.UpdateUserStats(ctx, userID, points); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, userID)
	return nil
}

// AwardPointsAsync runs the accrual in the background so the triggering
// request never waits on the ledger write.
func (s *pointsService) AwardPointsAsync(userID uuid.UUID, activityType, referenceID, referenceTable string) {
	go func() {
		ctx := context.Background()

		user, err := s.userRepo.FindByID(ctx, userID.String())
		if err != nil {
			log.Printf("Failed to find user %s for point accrual: %v", userID, err)
			return
		}
		if !user.IsActive {
			return
		}

		if err := s.AwardPoints(ctx, userID, activityType, referenceID, referenceTable); err != nil {
			log.Printf("Failed to award %s points to user %s: %v", activityType, userID, err)
		}
	}()
}

func (s *pointsService) GetLeaderboard(ctx context.Context, limit int, timeframe string) ([]dto.LeaderboardEntry, error) {
	stats, err := s.repo.GetTopUsers(ctx, limit, timeframe)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(stats))
	for i, stat := range stats {
		entries = append(entries, dto.LeaderboardEntry{
			Username: stat.User.Username,
			Tier:     stat.User.Tier,
			Position: i + 1,
			Points:   stat.TotalPointsAllTime,
		})
	}

	return entries, nil
}
