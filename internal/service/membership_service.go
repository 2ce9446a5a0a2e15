package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"anoa.com/bskmtclub/internal/dto"
	"anoa.com/bskmtclub/internal/membership"
	"anoa.com/bskmtclub/internal/model"
	"anoa.com/bskmtclub/internal/repository"
	"anoa.com/bskmtclub/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipService interface {
	GetMembershipProgress(ctx context.Context, memberID uuid.UUID) (*dto.MembershipProgressResponse, error)
	SetVolunteer(ctx context.Context, memberID uuid.UUID, volunteer bool) error
	ApplyForLeader(ctx context.Context, memberID uuid.UUID, motivation string) (*model.LeaderApplication, error)
	ReviewLeaderApplication(ctx context.Context, applicationID uint, reviewerID uuid.UUID, approve bool, note *string) (*model.LeaderApplication, error)
	ChangeTier(ctx context.Context, memberID, adminID uuid.UUID, newTier string) error
	RecordAttendance(ctx context.Context, memberID uuid.UUID, eventID string) error
	ConfirmAttendance(ctx context.Context, memberID uuid.UUID, eventID string) error
}

type membershipService struct {
	userRepo       repository.UserRepository
	pointLogRepo   repository.PointLogRepository
	eventRepo      repository.EventRepository
	engagementRepo repository.EngagementRepository
	membershipRepo repository.MembershipRepository
	points         PointsService
	cache          *ProgressCache
	cfg            membership.Config
}

func NewMembershipService(
	userRepo repository.UserRepository,
	pointLogRepo repository.PointLogRepository,
	eventRepo repository.EventRepository,
	engagementRepo repository.EngagementRepository,
	membershipRepo repository.MembershipRepository,
	points PointsService,
	cache *ProgressCache,
	cfg membership.Config,
) MembershipService {
	return &membershipService{
		userRepo:       userRepo,
		pointLogRepo:   pointLogRepo,
		eventRepo:      eventRepo,
		engagementRepo: engagementRepo,
		membershipRepo: membershipRepo,
		points:         points,
		cache:          cache,
		cfg:            cfg,
	}
}

// mapUpstreamErr folds context expiry into the retryable taxonomy so the
// HTTP layer answers 503 instead of 500 when a collaborator timed out.
func mapUpstreamErr(err error, what string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.New(503, fmt.Sprintf("%s is temporarily unavailable", what), apperror.ErrUnavailable)
	}
	return err
}

// dbEventPopulation resolves the official event count of a year from the
// events table, falling back to the flat annual estimate when no events
// are recorded for that year.
type dbEventPopulation struct {
	ctx      context.Context
	repo     repository.EventRepository
	estimate int
}

func (p dbEventPopulation) OfficialEventsInYear(year int) (int, bool) {
	count, err := p.repo.CountOfficialInYear(p.ctx, year)
	if err != nil || count == 0 {
		return p.estimate, false
	}
	return int(count), true
}

func (s *membershipService) GetMembershipProgress(ctx context.Context, memberID uuid.UUID) (*dto.MembershipProgressResponse, error) {
	if report, ok := s.cache.Get(ctx, memberID); ok {
		return report, nil
	}

	user, err := s.userRepo.FindByID(ctx, memberID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(404, "member not found", apperror.ErrNotFound)
		}
		return nil, mapUpstreamErr(err, "member store")
	}

	tier := membership.Tier(user.Tier)
	if !tier.Valid() {
		return nil, apperror.New(500, fmt.Sprintf("member %s has unknown tier %q", memberID, user.Tier), apperror.ErrInternal)
	}

	asOf := time.Now().UTC()

	logs, err := s.pointLogRepo.ListByUser(ctx, memberID, asOf)
	if err != nil {
		return nil, mapUpstreamErr(err, "points ledger")
	}

	history, err := s.eventRepo.HistoryByUser(ctx, memberID)
	if err != nil {
		return nil, mapUpstreamErr(err, "event history")
	}

	counters, err := s.engagementRepo.CountersByUser(ctx, memberID)
	if err != nil {
		return nil, mapUpstreamErr(err, "engagement records")
	}

	transition, err := s.membershipRepo.LatestTransition(ctx, memberID)
	if err != nil {
		return nil, mapUpstreamErr(err, "tier history")
	}

	application, err := s.membershipRepo.LatestLeaderApplication(ctx, memberID)
	if err != nil {
		return nil, mapUpstreamErr(err, "leader applications")
	}

	snap := membership.Snapshot{
		AsOf:           asOf,
		JoinDate:       user.JoinDate,
		Tier:           tier,
		Volunteer:      user.IsVolunteer,
		LeaderApproved: application != nil && application.Status == model.ApplicationApproved,
	}
	if transition != nil {
		snap.TierSince = transition.ChangedAt
	}

	events := make([]membership.EventRecord, 0, len(history))
	for _, att := range history {
		events = append(events, membership.EventRecord{
			Type:      membership.EventType(att.Event.Type),
			Attended:  att.Attended,
			Confirmed: att.Attended && att.Confirmed,
			Date:      att.Event.Date,
		})
	}

	engagement := toEngagement(counters)
	activity := membership.Aggregate(snap, events, engagement)

	entries := make([]membership.LedgerEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, membership.LedgerEntry{Points: l.Points, OccurredAt: l.OccurredAt})
	}

	var totals membership.PointTotals
	if len(entries) > 0 {
		totals = membership.Totals(entries, asOf)
	} else {
		// No ledger history: estimate from tenure and flag the figures.
		totals = s.cfg.EstimateTotals(user.JoinDate, asOf, activity.EventsAttended)
	}

	calc := membership.NewCalculator(s.cfg, dbEventPopulation{
		ctx:      ctx,
		repo:     s.eventRepo,
		estimate: s.cfg.EstimatedEventsPerYear,
	})
	spec := calc.Materialize(snap, activity)
	progress := membership.Evaluate(activity, totals, snap, spec)

	totalActive, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, mapUpstreamErr(err, "member store")
	}

	report := &dto.MembershipProgressResponse{
		MemberID:    user.ID.String(),
		Username:    user.Username,
		Tier:        string(tier),
		TierInfo:    membership.Info(tier),
		JoinDate:    user.JoinDate,
		IsVolunteer: user.IsVolunteer,
		Points: dto.PointsSummary{
			Cumulative:   totals.Cumulative,
			TrailingYear: totals.TrailingYear,
			IsEstimated:  totals.IsEstimated,
		},
		Progress: dto.ProgressSection{
			NextTier:       string(progress.NextTier),
			OverallPercent: progress.OverallPercent,
			Eligible:       progress.Eligible(),
			Requirements:   progress.Requirements,
		},
		Achievements: membership.Achievements(activity, totals),
		Ranking:      toRanking(membership.EstimateRanking(totals.Cumulative, int(totalActive))),
		GeneratedAt:  asOf,
	}

	// Masters see the Leader path as a separate section; it never joins the
	// automatic requirement list.
	if tier == membership.TierMaster {
		leader := &dto.LeaderSection{
			Requirement: membership.EvaluateRequirement(calc.LeaderRequirement(), activity, totals, snap),
		}
		if application != nil {
			leader.ApplicationStatus = application.Status
		}
		report.Leader = leader
	}

	s.cache.Set(ctx, memberID, report)
	return report, nil
}

func toEngagement(c *repository.EngagementCounters) membership.Engagement {
	eng := membership.Engagement{
		VolunteeringDone:       c.Volunteering,
		OrganizedActivities:    c.Organized,
		SupportActivities:      c.Support,
		LeadershipRoles:        c.Leadership,
		PositiveFeedback:       c.PositiveFeedback,
		BehaviorReports:        c.BehaviorReports,
		CommunityContributions: c.CommunityContributions,
		DisciplinaryRecords:    c.Disciplinary,
		EthicsViolations:       c.EthicsViolations,
	}
	if c.Digital != nil {
		eng.ForumPosts = c.Digital.ForumPosts
		eng.GroupInteractions = c.Digital.GroupInteractions
		if c.Digital.LastActivityAt != nil {
			eng.LastDigitalActivity = *c.Digital.LastActivityAt
		}
	}
	return eng
}

func toRanking(r membership.Ranking) dto.RankingResponse {
	return dto.RankingResponse{
		Position:     r.Position,
		TotalMembers: r.TotalMembers,
		Approximate:  true,
	}
}

func (s *membershipService) SetVolunteer(ctx context.Context, memberID uuid.UUID, volunteer bool) error {
	if _, err := s.userRepo.FindByID(ctx, memberID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(404, "member not found", apperror.ErrNotFound)
		}
		return mapUpstreamErr(err, "member store")
	}

	if err := s.userRepo.UpdateVolunteer(ctx, memberID.String(), volunteer); err != nil {
		return mapUpstreamErr(err, "member store")
	}

	s.cache.Invalidate(ctx, memberID)
	return nil
}

func (s *membershipService) ApplyForLeader(ctx context.Context, memberID uuid.UUID, motivation string) (*model.LeaderApplication, error) {
	user, err := s.userRepo.FindByID(ctx, memberID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(404, "member not found", apperror.ErrNotFound)
		}
		return nil, mapUpstreamErr(err, "member store")
	}

	if membership.Tier(user.Tier) != membership.TierMaster || !user.IsVolunteer {
		return nil, apperror.New(403, "only Master-level volunteers may apply for Leader", apperror.ErrForbidden)
	}

	existing, err := s.membershipRepo.LatestLeaderApplication(ctx, memberID)
	if err != nil {
		return nil, mapUpstreamErr(err, "leader applications")
	}
	if existing != nil && existing.Status != model.ApplicationRejected {
		return nil, apperror.New(400, "an application is already on file", apperror.ErrBadRequest)
	}

	app := &model.LeaderApplication{
		UserID:     memberID,
		Status:     model.ApplicationPending,
		Motivation: motivation,
	}
	if err := s.membershipRepo.CreateLeaderApplication(ctx, app); err != nil {
		return nil, mapUpstreamErr(err, "leader applications")
	}

	return app, nil
}

func (s *membershipService) ReviewLeaderApplication(ctx context.Context, applicationID uint, reviewerID uuid.UUID, approve bool, note *string) (*model.LeaderApplication, error) {
	app, err := s.membershipRepo.FindLeaderApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(404, "application not found", apperror.ErrNotFound)
		}
		return nil, mapUpstreamErr(err, "leader applications")
	}

	if app.Status != model.ApplicationPending {
		return nil, apperror.New(400, "application has already been reviewed", apperror.ErrBadRequest)
	}

	now := time.Now().UTC()
	app.Status = model.ApplicationRejected
	if approve {
		app.Status = model.ApplicationApproved
	}
	app.ReviewNote = note
	app.ReviewedBy = &reviewerID
	app.ReviewedAt = &now

	if err := s.membershipRepo.UpdateLeaderApplication(ctx, app); err != nil {
		return nil, mapUpstreamErr(err, "leader applications")
	}

	s.cache.Invalidate(ctx, app.UserID)
	return app, nil
}

// ChangeTier is the administrative upgrade write. The path is forward-only:
// the new tier must be the direct successor of the current one, matching
// the evaluation the admin acted on.
func (s *membershipService) ChangeTier(ctx context.Context, memberID, adminID uuid.UUID, newTier string) error {
	user, err := s.userRepo.FindByID(ctx, memberID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(404, "member not found", apperror.ErrNotFound)
		}
		return mapUpstreamErr(err, "member store")
	}

	next, ok := membership.NextTier(membership.Tier(user.Tier))
	if !ok {
		return apperror.New(400, fmt.Sprintf("%s is the final level", user.Tier), apperror.ErrBadRequest)
	}
	if membership.Tier(newTier) != next {
		return apperror.New(400,
			fmt.Sprintf("cannot move from %s to %s: the next level is %s", user.Tier, newTier, next),
			apperror.ErrBadRequest)
	}

	if err := s.userRepo.UpdateTier(ctx, memberID.String(), newTier); err != nil {
		return mapUpstreamErr(err, "member store")
	}

	transition := &model.TierTransition{
		UserID:    memberID,
		FromTier:  user.Tier,
		ToTier:    newTier,
		ChangedBy: &adminID,
		ChangedAt: time.Now().UTC(),
	}
	if err := s.membershipRepo.CreateTransition(ctx, transition); err != nil {
		return mapUpstreamErr(err, "tier history")
	}

	log.Printf("Member %s promoted from %s to %s by %s", memberID, user.Tier, newTier, adminID)
	s.cache.Invalidate(ctx, memberID)
	return nil
}

// RecordAttendance stores a member's self-reported attendance. It is never
// confirmed here: confirmation is an organizer judgement and only
// ConfirmAttendance can set it.
func (s *membershipService) RecordAttendance(ctx context.Context, memberID uuid.UUID, eventID string) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(404, "event not found", apperror.ErrNotFound)
		}
		return mapUpstreamErr(err, "event store")
	}

	att := &model.EventAttendance{
		EventID:  event.ID,
		UserID:   memberID,
		Attended: true,
	}
	if err := s.eventRepo.CreateAttendance(ctx, att); err != nil {
		return mapUpstreamErr(err, "event store")
	}

	s.points.AwardPointsAsync(memberID, ActivityEventAttendance, event.ID.String(), "events")
	s.cache.Invalidate(ctx, memberID)
	return nil
}

// ConfirmAttendance is the organizer-side verification. It marks an existing
// self-reported record confirmed, or records the attendance outright when
// the member never reported it (points accrue only in that case, so a
// confirmation never double-credits).
func (s *membershipService) ConfirmAttendance(ctx context.Context, memberID uuid.UUID, eventID string) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(404, "event not found", apperror.ErrNotFound)
		}
		return mapUpstreamErr(err, "event store")
	}

	if _, err := s.userRepo.FindByID(ctx, memberID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(404, "member not found", apperror.ErrNotFound)
		}
		return mapUpstreamErr(err, "member store")
	}

	att, err := s.eventRepo.FindAttendance(ctx, event.ID, memberID)
	if err != nil {
		return mapUpstreamErr(err, "event store")
	}

	if att == nil {
		att = &model.EventAttendance{
			EventID:   event.ID,
			UserID:    memberID,
			Attended:  true,
			Confirmed: true,
		}
		if err := s.eventRepo.CreateAttendance(ctx, att); err != nil {
			return mapUpstreamErr(err, "event store")
		}
		s.points.AwardPointsAsync(memberID, ActivityEventAttendance, event.ID.String(), "events")
	} else {
		att.Attended = true
		att.Confirmed = true
		if err := s.eventRepo.SaveAttendance(ctx, att); err != nil {
			return mapUpstreamErr(err, "event store")
		}
	}

	s.cache.Invalidate(ctx, memberID)
	return nil
}
