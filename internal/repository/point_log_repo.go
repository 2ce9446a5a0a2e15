package repository

import (
	"context"
	"time"

	"anoa.com/bskmtclub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PointLogRepository interface {
	Create(ctx context.Context, log *model.PointLog) error
	ListByUser(ctx context.Context, userID uuid.UUID, until time.Time) ([]model.PointLog, error)
	UpdateUserStats(ctx context.Context, userID uuid.UUID, points int) error
	GetTopUsers(ctx context.Context, limit int, timeframe string) ([]model.UserStats, error)
	MonthlyBonusExists(ctx context.Context, userID uuid.UUID, month time.Time) (bool, error)
}

type pointLogRepository struct {
	db *gorm.DB
}

func NewPointLogRepository(db *gorm.DB) PointLogRepository {
	return &pointLogRepository{db: db}
}

func (r *pointLogRepository) Create(ctx context.Context, log *model.PointLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *pointLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, until time.Time) ([]model.PointLog, error) {
	var logs []model.PointLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at <= ?", userID, until).
		Order("occurred_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *pointLogRepository) UpdateUserStats(ctx context.Context, userID uuid.UUID, points int) error {
	// GORM OnConflict upsert keeps the denormalized total in one statement.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_points_all_time": gorm.Expr("user_stats.total_points_all_time + ?", points),
			"last_updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&model.UserStats{
		UserID:             userID,
		TotalPointsAllTime: points,
	}).Error
}

// GetTopUsers returns the exact leaderboard. all_time reads the
// denormalized stats table; trailing_year aggregates the ledger over the
// last 365 days.
func (r *pointLogRepository) GetTopUsers(ctx context.Context, limit int, timeframe string) ([]model.UserStats, error) {
	var stats []model.UserStats

	if timeframe == "" || timeframe == "all_time" {
		err := r.db.WithContext(ctx).
			Preload("User").Preload("User.Role").
			Order("total_points_all_time DESC").
			Limit(limit).
			Find(&stats).Error
		return stats, err
	}

	startDate := time.Now().AddDate(0, 0, -365)

	type result struct {
		UserID uuid.UUID
		Score  int
	}
	var results []result
	err := r.db.WithContext(ctx).Model(&model.PointLog{}).
		Select("user_id, SUM(points) as score").
		Where("occurred_at >= ?", startDate).
		Group("user_id").
		Order("score DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return stats, nil
	}

	userIDs := make([]uuid.UUID, 0, len(results))
	for _, res := range results {
		userIDs = append(userIDs, res.UserID)
	}

	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Role").Find(&users, userIDs).Error; err != nil {
		return nil, err
	}
	userMap := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for _, res := range results {
		stats = append(stats, model.UserStats{
			UserID:             res.UserID,
			User:               userMap[res.UserID],
			TotalPointsAllTime: res.Score, // period score for this timeframe
		})
	}

	return stats, nil
}

// MonthlyBonusExists reports whether the tenure bonus was already credited
// for the given calendar month, keeping the cron job idempotent.
func (r *pointLogRepository) MonthlyBonusExists(ctx context.Context, userID uuid.UUID, month time.Time) (bool, error) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var count int64
	err := r.db.WithContext(ctx).Model(&model.PointLog{}).
		Where("user_id = ? AND activity_type = ? AND occurred_at >= ? AND occurred_at < ?",
			userID, "monthly_bonus", start, end).
		Count(&count).Error
	return count > 0, err
}
