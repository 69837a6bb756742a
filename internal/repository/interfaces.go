package repository

import (
	"task-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithCreator(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	ListForUser(userID uuid.UUID) ([]models.TeamWithRole, error)
}

// MembershipRepositoryInterface defines the interface for team membership operations
type MembershipRepositoryInterface interface {
	Add(teamID, userID uuid.UUID, isAdmin bool) (bool, error)
	IsMember(teamID, userID uuid.UUID) (bool, error)
	IsAdmin(teamID, userID uuid.UUID) (bool, error)
	ListMembers(teamID uuid.UUID) ([]models.TeamMember, error)
	RemoveUnlessSoleAdmin(teamID, userID uuid.UUID) (bool, error)
}

// TodoRepositoryInterface defines the interface for personal todo operations
type TodoRepositoryInterface interface {
	Create(todo *models.PersonalTodo) error
	GetForOwner(id, ownerID uuid.UUID) (*models.PersonalTodo, error)
	ListByOwner(ownerID uuid.UUID) ([]models.PersonalTodo, error)
	Update(todo *models.PersonalTodo) error
	DeleteForOwner(id, ownerID uuid.UUID) (bool, error)
}

// TeamTaskRepositoryInterface defines the interface for team task operations
type TeamTaskRepositoryInterface interface {
	Create(task *models.TeamTask) error
	GetInTeam(teamID, taskID uuid.UUID) (*models.TeamTask, error)
	GetWithAssignee(taskID uuid.UUID) (*models.TeamTaskWithAssignee, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamTaskWithAssignee, error)
	UpdateSchedule(task *models.TeamTask) error
}
