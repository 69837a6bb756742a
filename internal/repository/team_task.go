package repository

import (
	"task-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const teamTaskWithAssigneeColumns = "team_tasks.*, users.username AS assignee_username, users.full_name AS assignee_full_name"

// TeamTaskRepository handles database operations for team tasks
type TeamTaskRepository struct {
	db *gorm.DB
}

// NewTeamTaskRepository creates a new team task repository
func NewTeamTaskRepository(db *gorm.DB) *TeamTaskRepository {
	return &TeamTaskRepository{db: db}
}

// Create creates a new team task
func (r *TeamTaskRepository) Create(task *models.TeamTask) error {
	return r.db.Create(task).Error
}

// GetInTeam retrieves a task only if it belongs to the given team
func (r *TeamTaskRepository) GetInTeam(teamID, taskID uuid.UUID) (*models.TeamTask, error) {
	var task models.TeamTask
	err := r.db.First(&task, "id = ? AND team_id = ?", taskID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetWithAssignee retrieves a task joined with its assignee's names
func (r *TeamTaskRepository) GetWithAssignee(taskID uuid.UUID) (*models.TeamTaskWithAssignee, error) {
	var task models.TeamTaskWithAssignee
	result := r.db.Model(&models.TeamTask{}).
		Select(teamTaskWithAssigneeColumns).
		Joins("LEFT JOIN users ON users.id = team_tasks.assignee_id").
		Where("team_tasks.id = ?", taskID).
		Limit(1).
		Scan(&task)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

// ListByTeam retrieves the team's tasks with assignee names, newest first
func (r *TeamTaskRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamTaskWithAssignee, error) {
	var tasks []models.TeamTaskWithAssignee
	err := r.db.Model(&models.TeamTask{}).
		Select(teamTaskWithAssigneeColumns).
		Joins("LEFT JOIN users ON users.id = team_tasks.assignee_id").
		Where("team_tasks.team_id = ?", teamID).
		Order("team_tasks.created_at DESC").
		Scan(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateSchedule writes only the status and target datetime of a task
func (r *TeamTaskRepository) UpdateSchedule(task *models.TeamTask) error {
	return r.db.Model(task).
		Where("team_id = ?", task.TeamID).
		Select("status", "target_datetime", "updated_at").
		Updates(task).Error
}
