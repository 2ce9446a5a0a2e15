package service

import (
	"context"
	"log"
	"time"

	"anoa.com/bskmtclub/internal/repository"
	"github.com/robfig/cron/v3"
)

// TenureBonusJob credits the monthly tenure bonus to every active member.
// The ledger check keeps the run idempotent: re-running within the same
// month never double-credits.
type TenureBonusJob struct {
	cron         *cron.Cron
	userRepo     repository.UserRepository
	pointLogRepo repository.PointLogRepository
	points       PointsService
}

func NewTenureBonusJob(userRepo repository.UserRepository, pointLogRepo repository.PointLogRepository, points PointsService) *TenureBonusJob {
	return &TenureBonusJob{
		cron:         cron.New(),
		userRepo:     userRepo,
		pointLogRepo: pointLogRepo,
		points:       points,
	}
}

func (j *TenureBonusJob) Start() {
	// 03:00 on the first day of every month
	_, err := j.cron.AddFunc("0 3 1 * *", func() {
		log.Printf("🗓️ [tenure-bonus] Starting monthly accrual run...")
		if err := j.Run(context.Background()); err != nil {
			log.Printf("❌ [tenure-bonus] Run failed: %v", err)
		} else {
			log.Printf("✅ [tenure-bonus] Run completed")
		}
	})
	if err != nil {
		log.Printf("⚠️ Failed to schedule tenure bonus job: %v", err)
		return
	}

	j.cron.Start()
	log.Printf("📅 [tenure-bonus] Scheduled monthly at 03:00 on day 1")
}

func (j *TenureBonusJob) Stop() {
	j.cron.Stop()
	log.Println("🛑 [tenure-bonus] Stopped")
}

func (j *TenureBonusJob) Run(ctx context.Context) error {
	users, err := j.userRepo.FindAllActive(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	credited := 0
	for _, user := range users {
		exists, err := j.pointLogRepo.MonthlyBonusExists(ctx, user.ID, now)
		if err != nil {
			log.Printf("Failed to check monthly bonus for user %s: %v", user.ID, err)
			continue
		}
		if exists {
			continue
		}

		if err := j.points.AwardPoints(ctx, user.ID, ActivityMonthlyBonus, "", ""); err != nil {
			log.Printf("Failed to credit monthly bonus to user %s: %v", user.ID, err)
			continue
		}
		credited++
	}

	log.Printf("🗓️ [tenure-bonus] Credited %d of %d active members", credited, len(users))
	return nil
}
