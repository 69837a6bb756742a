package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"task-tracker-backend/internal/database/models"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TodoService handles personal todos. Every lookup is scoped to the owner, so
// another user's todo is indistinguishable from a missing one.
type TodoService struct {
	repo      repository.TodoRepositoryInterface
	location  *time.Location
	validator *validator.Validate
}

// NewTodoService creates a new todo service
func NewTodoService(repo repository.TodoRepositoryInterface, location *time.Location, validator *validator.Validate) *TodoService {
	return &TodoService{
		repo:      repo,
		location:  location,
		validator: validator,
	}
}

// CreateTodoRequest represents the request to create a personal todo
type CreateTodoRequest struct {
	Task           string `json:"task" validate:"required"`
	TargetDatetime string `json:"targetDatetime" validate:"required"`
}

// UpdateTodoRequest represents a partial update. Omitted fields keep their value;
// an empty targetDatetime clears the deadline.
type UpdateTodoRequest struct {
	Status         *string `json:"status"`
	TargetDatetime *string `json:"targetDatetime"`
}

// TodoResponse represents a personal todo
type TodoResponse struct {
	ID             uuid.UUID         `json:"id"`
	Task           string            `json:"task"`
	Status         models.TaskStatus `json:"status"`
	TargetDatetime *string           `json:"targetDatetime" example:"2030-01-02T15:04:05Z"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// Create creates a todo in the Todo state
func (s *TodoService) Create(ownerID uuid.UUID, req *CreateTodoRequest) (*TodoResponse, error) {
	req.Task = strings.TrimSpace(req.Task)
	req.TargetDatetime = strings.TrimSpace(req.TargetDatetime)
	if err := validateRequest(s.validator, req, "Task and targetDatetime are required"); err != nil {
		return nil, err
	}

	target, err := NormalizeDatetime(req.TargetDatetime, s.location)
	if err != nil {
		return nil, err
	}

	todo := &models.PersonalTodo{
		UserID:         ownerID,
		Task:           req.Task,
		Status:         models.TaskStatusTodo,
		TargetDatetime: target,
	}
	if err := s.repo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return toTodoResponse(todo), nil
}

// List returns the owner's todos, newest first
func (s *TodoService) List(ownerID uuid.UUID) ([]TodoResponse, error) {
	todos, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	responses := make([]TodoResponse, len(todos))
	for i := range todos {
		responses[i] = *toTodoResponse(&todos[i])
	}
	return responses, nil
}

// Update changes status and deadline of an owned todo
func (s *TodoService) Update(ownerID, todoID uuid.UUID, req *UpdateTodoRequest) (*TodoResponse, error) {
	status, err := parseOptionalStatus(req.Status)
	if err != nil {
		return nil, err
	}
	var target *time.Time
	if req.TargetDatetime != nil {
		if target, err = NormalizeDatetime(*req.TargetDatetime, s.location); err != nil {
			return nil, err
		}
	}

	todo, err := s.repo.GetForOwner(todoID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	if status != nil {
		todo.Status = *status
	}
	if req.TargetDatetime != nil {
		todo.TargetDatetime = target
	}

	if err := s.repo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return toTodoResponse(todo), nil
}

// Delete removes an owned todo
func (s *TodoService) Delete(ownerID, todoID uuid.UUID) error {
	deleted, err := s.repo.DeleteForOwner(todoID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if !deleted {
		return apperrors.ErrTodoNotFound
	}
	return nil
}

func parseOptionalStatus(raw *string) (*models.TaskStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := models.ParseTaskStatus(strings.TrimSpace(*raw))
	if err != nil {
		return nil, apperrors.NewValidationError("status", "Invalid status: must be one of Todo, Doing, Done")
	}
	return &status, nil
}

func toTodoResponse(todo *models.PersonalTodo) *TodoResponse {
	return &TodoResponse{
		ID:             todo.ID,
		Task:           todo.Task,
		Status:         todo.Status,
		TargetDatetime: FormatDatetime(todo.TargetDatetime),
		CreatedAt:      todo.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      todo.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
