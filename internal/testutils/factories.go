package testutils

import (
	"time"

	"task-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext behind every factory-built user's password hash
const TestPassword = "password123"

var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique username
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user-" + id.String()[:8],
		FullName:     "Jane Doe",
		PasswordHash: testPasswordHash,
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// Federated creates a user provisioned through Google login
func (f *UserFactory) Federated(subject string) *models.User {
	user := f.Create()
	user.PasswordHash = models.FederatedPasswordSentinel
	user.GoogleID = &subject
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Eng",
		CreatedBy: uuid.New(),
	}
}

// WithCreator creates a test Team created by the given user
func (f *TeamFactory) WithCreator(creatorID uuid.UUID) *models.Team {
	team := f.Create()
	team.CreatedBy = creatorID
	return team
}

// TodoFactory provides methods to create test PersonalTodo data
type TodoFactory struct{}

// NewTodoFactory creates a new TodoFactory
func NewTodoFactory() *TodoFactory {
	return &TodoFactory{}
}

// Create creates a test PersonalTodo with default values
func (f *TodoFactory) Create() *models.PersonalTodo {
	target := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	return &models.PersonalTodo{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         uuid.New(),
		Task:           "buy milk",
		Status:         models.TaskStatusTodo,
		TargetDatetime: &target,
	}
}

// WithOwner creates a test PersonalTodo owned by the given user
func (f *TodoFactory) WithOwner(ownerID uuid.UUID) *models.PersonalTodo {
	todo := f.Create()
	todo.UserID = ownerID
	return todo
}

// TeamTaskFactory provides methods to create test TeamTask data
type TeamTaskFactory struct{}

// NewTeamTaskFactory creates a new TeamTaskFactory
func NewTeamTaskFactory() *TeamTaskFactory {
	return &TeamTaskFactory{}
}

// Create creates a test TeamTask with default values
func (f *TeamTaskFactory) Create() *models.TeamTask {
	description := "Write the release notes"
	return &models.TeamTask{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      uuid.New(),
		Title:       "Release",
		Description: &description,
		Status:      models.TaskStatusTodo,
		CreatedBy:   uuid.New(),
	}
}

// InTeam creates a test TeamTask in the given team, created by the given admin
func (f *TeamTaskFactory) InTeam(teamID, creatorID uuid.UUID) *models.TeamTask {
	task := f.Create()
	task.TeamID = teamID
	task.CreatedBy = creatorID
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Team     *TeamFactory
	Todo     *TodoFactory
	TeamTask *TeamTaskFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Team:     NewTeamFactory(),
		Todo:     NewTodoFactory(),
		TeamTask: NewTeamTaskFactory(),
	}
}
