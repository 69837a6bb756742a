package repository

import (
	"task-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithCreator inserts the team and enrolls team.CreatedBy as its admin in one transaction
func (r *TeamRepository) CreateWithCreator(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		membership := &models.TeamMembership{
			TeamID:  team.ID,
			UserID:  team.CreatedBy,
			IsAdmin: true,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListForUser retrieves every team the user belongs to, with that user's admin flag
func (r *TeamRepository) ListForUser(userID uuid.UUID) ([]models.TeamWithRole, error) {
	var teams []models.TeamWithRole
	err := r.db.Model(&models.Team{}).
		Select("teams.id, teams.name, teams.created_by, team_memberships.is_admin").
		Joins("JOIN team_memberships ON team_memberships.team_id = teams.id").
		Where("team_memberships.user_id = ?", userID).
		Order("teams.created_at DESC").
		Scan(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
