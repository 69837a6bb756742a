package repository

import (
	"errors"

	"task-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSoleAdmin is returned when a removal would leave a team without an admin
var ErrSoleAdmin = errors.New("membership belongs to the only team admin")

// MembershipRepository handles database operations for team memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Add inserts a membership. An existing (team, user) pair is left untouched and
// reported as not created.
func (r *MembershipRepository) Add(teamID, userID uuid.UUID, isAdmin bool) (bool, error) {
	membership := &models.TeamMembership{
		TeamID:  teamID,
		UserID:  userID,
		IsAdmin: isAdmin,
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(membership)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsMember reports whether the user holds any membership in the team
func (r *MembershipRepository) IsMember(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMembership{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsAdmin reports whether the user is an admin of the team
func (r *MembershipRepository) IsAdmin(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMembership{}).
		Where("team_id = ? AND user_id = ? AND is_admin = ?", teamID, userID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMembers retrieves the team's members ordered by username
func (r *MembershipRepository) ListMembers(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Model(&models.TeamMembership{}).
		Select("users.id, users.username, users.full_name, team_memberships.is_admin").
		Joins("JOIN users ON users.id = team_memberships.user_id").
		Where("team_memberships.team_id = ?", teamID).
		Order("users.username ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountAdmins returns the number of admins in the team
func (r *MembershipRepository) CountAdmins(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMembership{}).
		Where("team_id = ? AND is_admin = ?", teamID, true).
		Count(&count).Error
	return count, err
}

// RemoveUnlessSoleAdmin deletes the membership unless the user is the team's only admin,
// in which case ErrSoleAdmin is returned and nothing changes. The team row is locked for
// the duration of the check so concurrent removals on one team run one after another.
// The boolean reports whether a row was deleted.
func (r *MembershipRepository) RemoveUnlessSoleAdmin(teamID, userID uuid.UUID) (bool, error) {
	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&team, "id = ?", teamID).Error; err != nil {
			return err
		}

		var admins []uuid.UUID
		if err := tx.Model(&models.TeamMembership{}).
			Where("team_id = ? AND is_admin = ?", teamID, true).
			Pluck("user_id", &admins).Error; err != nil {
			return err
		}
		if len(admins) == 1 && admins[0] == userID {
			return ErrSoleAdmin
		}

		result := tx.Where("team_id = ? AND user_id = ?", teamID, userID).
			Delete(&models.TeamMembership{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
