package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/bskmtclub/internal/dto"
	"anoa.com/bskmtclub/internal/membership"
	"anoa.com/bskmtclub/internal/model"
	"anoa.com/bskmtclub/internal/repository"
	"anoa.com/bskmtclub/pkg/apperror"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService interface {
	CreateMember(ctx context.Context, input dto.CreateMemberInput) (*model.User, error)
	ListMembers(ctx context.Context) ([]*model.User, error)
	CreateEvent(ctx context.Context, input dto.CreateEventInput) (*model.Event, error)
	AddDisciplinaryRecord(ctx context.Context, memberID uuid.UUID, input dto.DisciplinaryInput) error
	AddVolunteeringRecord(ctx context.Context, memberID uuid.UUID, input dto.VolunteeringInput) error
}

type adminService struct {
	userRepo       repository.UserRepository
	eventRepo      repository.EventRepository
	engagementRepo repository.EngagementRepository
	points         PointsService
	cache          *ProgressCache
}

func NewAdminService(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	engagementRepo repository.EngagementRepository,
	points PointsService,
	cache *ProgressCache,
) AdminService {
	return &adminService{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		engagementRepo: engagementRepo,
		points:         points,
		cache:          cache,
	}
}

func (s *adminService) CreateMember(ctx context.Context, input dto.CreateMemberInput) (*model.User, error) {
	roleName := "member"
	if input.Role != nil && *input.Role != "" {
		roleName = *input.Role
	}

	role, err := s.userRepo.FindRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(400, fmt.Sprintf("role %s not found", roleName), apperror.ErrBadRequest)
		}
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roleID := role.ID
	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		RoleID:       &roleID,
		Tier:         string(membership.TierFriend),
	}
	if input.JoinDate != nil {
		user.JoinDate = input.JoinDate.UTC()
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *adminService) ListMembers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *adminService) CreateEvent(ctx context.Context, input dto.CreateEventInput) (*model.Event, error) {
	official := true
	if input.Official != nil {
		official = *input.Official
	}

	event := &model.Event{
		Title:    input.Title,
		Type:     input.Type,
		Official: official,
		Date:     input.Date.UTC(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *adminService) AddDisciplinaryRecord(ctx context.Context, memberID uuid.UUID, input dto.DisciplinaryInput) error {
	if _, err := s.userRepo.FindByID(ctx, memberID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(404, "member not found", apperror.ErrNotFound)
		}
		return err
	}

	rec := &model.DisciplinaryRecord{
		UserID:      memberID,
		Kind:        input.Kind,
		Description: input.Description,
	}
	if err := s.engagementRepo.CreateDisciplinary(ctx, rec); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, memberID)
	return nil
}

func (s *adminService) AddVolunteeringRecord(ctx context.Context, memberID uuid.UUID, input dto.VolunteeringInput) error {
	if _, err := s.userRepo.FindByID(ctx, memberID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(404, "member not found", apperror.ErrNotFound)
		}
		return err
	}

	completedAt := time.Now().UTC()
	if input.CompletedAt != nil {
		completedAt = input.CompletedAt.UTC()
	}

	rec := &model.VolunteeringRecord{
		UserID:      memberID,
		Activity:    input.Activity,
		CompletedAt: completedAt,
	}
	if err := s.engagementRepo.CreateVolunteering(ctx, rec); err != nil {
		return err
	}

	s.points.AwardPointsAsync(memberID, ActivityVolunteering, "", "volunteering_records")
	s.cache.Invalidate(ctx, memberID)
	return nil
}
