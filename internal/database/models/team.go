package models

import (
	"github.com/google/uuid"
)

// Team represents a group of users sharing tasks
type Team struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null;size:100"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index"`

	// Relationships
	Creator     *User            `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
	Memberships []TeamMembership `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Tasks       []TeamTask       `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamWithRole is a team annotated with one user's admin flag
type TeamWithRole struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedBy uuid.UUID `json:"created_by"`
	IsAdmin   bool      `json:"is_admin"`
}
