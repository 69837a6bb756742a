package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-tracker-backend/internal/database/models"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/logger"
	"task-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService is the authority over teams and their memberships
type TeamService struct {
	teamRepo       repository.TeamRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	teamRepo repository.TeamRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name    string   `json:"name" validate:"required,max=100"`
	Members []string `json:"members"`
}

// AddMemberRequest represents the request to add a member to a team
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// CreateTeam creates the team with the creator as admin, then attaches the invited members.
// Invitees that cannot be attached are skipped without failing the operation.
func (s *TeamService) CreateTeam(ctx context.Context, creatorID uuid.UUID, req *CreateTeamRequest) (uuid.UUID, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req, "Team name required"); err != nil {
		return uuid.Nil, err
	}

	team := &models.Team{
		Name:      req.Name,
		CreatedBy: creatorID,
	}
	if err := s.teamRepo.CreateWithCreator(team); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create team: %w", err)
	}

	log := logger.WithContext(ctx).WithField("team_id", team.ID)
	for _, raw := range req.Members {
		memberID, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			log.Warnf("Skipping invitee %q: not a valid id", raw)
			continue
		}
		if memberID == creatorID {
			continue
		}
		if _, err := s.userRepo.GetByID(memberID); err != nil {
			log.WithError(err).Warnf("Skipping invitee %s: user lookup failed", memberID)
			continue
		}
		if _, err := s.membershipRepo.Add(team.ID, memberID, false); err != nil {
			log.WithError(err).Warnf("Skipping invitee %s: membership insert failed", memberID)
		}
	}

	log.Info("Team created")
	return team.ID, nil
}

// ListTeamsForUser returns the user's teams annotated with their admin flag
func (s *TeamService) ListTeamsForUser(userID uuid.UUID) ([]models.TeamWithRole, error) {
	teams, err := s.teamRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if teams == nil {
		teams = []models.TeamWithRole{}
	}
	return teams, nil
}

// AddMember lets a team admin enroll an existing user. Adding a current member is a no-op.
func (s *TeamService) AddMember(ctx context.Context, actorID, teamID uuid.UUID, req *AddMemberRequest) error {
	if err := s.requireAdmin(teamID, actorID, apperrors.ErrAdminRequiredToAdd); err != nil {
		return err
	}
	if err := validateRequest(s.validator, req, "A valid user_id is required"); err != nil {
		return err
	}

	userID := uuid.MustParse(req.UserID)
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	created, err := s.membershipRepo.Add(teamID, userID, false)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	if created {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"team_id": teamID,
			"user_id": userID,
		}).Info("Member added")
	}
	return nil
}

// RemoveMember lets a team admin remove a membership. Removing the only admin fails and
// changes nothing; removing a user who is not a member is a no-op.
func (s *TeamService) RemoveMember(ctx context.Context, actorID, teamID, targetID uuid.UUID) error {
	if err := s.requireAdmin(teamID, actorID, apperrors.ErrAdminRequiredToRemove); err != nil {
		return err
	}

	removed, err := s.membershipRepo.RemoveUnlessSoleAdmin(teamID, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrSoleAdmin) {
			return apperrors.ErrLastTeamAdmin
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if removed {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"team_id": teamID,
			"user_id": targetID,
		}).Info("Member removed")
	}
	return nil
}

// ListMembers returns the team's members ordered by username
func (s *TeamService) ListMembers(teamID uuid.UUID) ([]models.TeamMember, error) {
	members, err := s.membershipRepo.ListMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if members == nil {
		members = []models.TeamMember{}
	}
	return members, nil
}

// IsMember reports whether the user belongs to the team
func (s *TeamService) IsMember(teamID, userID uuid.UUID) (bool, error) {
	ok, err := s.membershipRepo.IsMember(teamID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return ok, nil
}

// IsAdmin reports whether the user is an admin of the team
func (s *TeamService) IsAdmin(teamID, userID uuid.UUID) (bool, error) {
	ok, err := s.membershipRepo.IsAdmin(teamID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check admin role: %w", err)
	}
	return ok, nil
}

func (s *TeamService) requireAdmin(teamID, userID uuid.UUID, denied error) error {
	isAdmin, err := s.IsAdmin(teamID, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return denied
	}
	return nil
}
