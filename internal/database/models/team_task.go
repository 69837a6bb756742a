package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamTask is a task scoped to a team, optionally assigned to one of its members
type TeamTask struct {
	BaseModel
	TeamID         uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	Title          string     `json:"title" gorm:"not null;size:200"`
	Description    *string    `json:"description" gorm:"type:text"`
	AssigneeID     *uuid.UUID `json:"assignee_id" gorm:"type:uuid;index"`
	TargetDatetime *time.Time `json:"target_datetime" gorm:"type:timestamptz"`
	Status         TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'Todo'"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`

	Assignee *User `json:"-" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	Creator  *User `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TeamTask
func (TeamTask) TableName() string {
	return "team_tasks"
}

// TeamTaskWithAssignee is a team task joined with its assignee's names
type TeamTaskWithAssignee struct {
	TeamTask
	AssigneeUsername *string `json:"assignee_username"`
	AssigneeFullName *string `json:"assignee_full_name"`
}
