package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-tracker-backend/internal/database/models"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/logger"
	"task-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamTaskService handles team-scoped tasks. Authorization goes through the team
// authority's IsMember and IsAdmin predicates.
type TeamTaskService struct {
	repo      repository.TeamTaskRepositoryInterface
	teams     TeamServiceInterface
	location  *time.Location
	validator *validator.Validate
}

// NewTeamTaskService creates a new team task service
func NewTeamTaskService(repo repository.TeamTaskRepositoryInterface, teams TeamServiceInterface, location *time.Location, validator *validator.Validate) *TeamTaskService {
	return &TeamTaskService{
		repo:      repo,
		teams:     teams,
		location:  location,
		validator: validator,
	}
}

// CreateTeamTaskRequest represents the request to create a team task
type CreateTeamTaskRequest struct {
	Title          string  `json:"title" validate:"required,max=200"`
	Description    *string `json:"description"`
	AssigneeID     *string `json:"assignee_id"`
	TargetDatetime string  `json:"targetDatetime"`
}

// UpdateTeamTaskRequest represents a partial update of status and deadline.
// Omitted fields keep their value; an empty targetDatetime clears the deadline.
type UpdateTeamTaskRequest struct {
	Status         *string `json:"status"`
	TargetDatetime *string `json:"targetDatetime"`
}

// TeamTaskResponse represents a team task with its assignee's names
type TeamTaskResponse struct {
	ID               uuid.UUID         `json:"id"`
	TeamID           uuid.UUID         `json:"team_id"`
	Title            string            `json:"title"`
	Description      *string           `json:"description"`
	AssigneeID       *uuid.UUID        `json:"assignee_id"`
	AssigneeUsername *string           `json:"assignee_username"`
	AssigneeFullName *string           `json:"assignee_full_name"`
	TargetDatetime   *string           `json:"target_datetime" example:"2030-01-02T15:04:05Z"`
	Status           models.TaskStatus `json:"status"`
	CreatedBy        uuid.UUID         `json:"created_by"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

// Create lets a team admin add a task, optionally assigned to a current member
func (s *TeamTaskService) Create(ctx context.Context, actorID, teamID uuid.UUID, req *CreateTeamTaskRequest) (*TeamTaskResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateRequest(s.validator, req, "Title required"); err != nil {
		return nil, err
	}

	isAdmin, err := s.teams.IsAdmin(teamID, actorID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, apperrors.ErrAdminRequiredForTasks
	}

	var assigneeID *uuid.UUID
	if req.AssigneeID != nil && strings.TrimSpace(*req.AssigneeID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.AssigneeID))
		if err != nil {
			return nil, apperrors.ErrAssigneeNotMember
		}
		isMember, err := s.teams.IsMember(teamID, id)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, apperrors.ErrAssigneeNotMember
		}
		assigneeID = &id
	}

	target, err := NormalizeDatetime(req.TargetDatetime, s.location)
	if err != nil {
		return nil, err
	}

	var description *string
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		description = req.Description
	}

	task := &models.TeamTask{
		TeamID:         teamID,
		Title:          req.Title,
		Description:    description,
		AssigneeID:     assigneeID,
		TargetDatetime: target,
		Status:         models.TaskStatusTodo,
		CreatedBy:      actorID,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": teamID,
		"task_id": task.ID,
	}).Info("Team task created")
	return s.load(task.ID)
}

// List returns the team's tasks, newest first, to any member
func (s *TeamTaskService) List(actorID, teamID uuid.UUID) ([]TeamTaskResponse, error) {
	isMember, err := s.teams.IsMember(teamID, actorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.ErrNotTeamMember
	}

	tasks, err := s.repo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TeamTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toTeamTaskResponse(&tasks[i])
	}
	return responses, nil
}

// Update lets a team admin or the task's assignee change status and deadline.
// Title, description and assignee are never touched.
func (s *TeamTaskService) Update(ctx context.Context, actorID, teamID, taskID uuid.UUID, req *UpdateTeamTaskRequest) (*TeamTaskResponse, error) {
	task, err := s.repo.GetInTeam(teamID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	isAssignee := task.AssigneeID != nil && *task.AssigneeID == actorID
	if !isAssignee {
		isAdmin, err := s.teams.IsAdmin(teamID, actorID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, apperrors.ErrNotTeamAdminOrAssignee
		}
	}

	status, err := parseOptionalStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status != nil {
		task.Status = *status
	}
	if req.TargetDatetime != nil {
		target, err := NormalizeDatetime(*req.TargetDatetime, s.location)
		if err != nil {
			return nil, err
		}
		task.TargetDatetime = target
	}

	if err := s.repo.UpdateSchedule(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": teamID,
		"task_id": task.ID,
		"status":  task.Status,
	}).Info("Team task updated")
	return s.load(task.ID)
}

func (s *TeamTaskService) load(taskID uuid.UUID) (*TeamTaskResponse, error) {
	task, err := s.repo.GetWithAssignee(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return toTeamTaskResponse(task), nil
}

func toTeamTaskResponse(task *models.TeamTaskWithAssignee) *TeamTaskResponse {
	return &TeamTaskResponse{
		ID:               task.ID,
		TeamID:           task.TeamID,
		Title:            task.Title,
		Description:      task.Description,
		AssigneeID:       task.AssigneeID,
		AssigneeUsername: task.AssigneeUsername,
		AssigneeFullName: task.AssigneeFullName,
		TargetDatetime:   FormatDatetime(task.TargetDatetime),
		Status:           task.Status,
		CreatedBy:        task.CreatedBy,
		CreatedAt:        task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
