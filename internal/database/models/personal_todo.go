package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonalTodo is a to-do item owned by a single user
type PersonalTodo struct {
	BaseModel
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Task           string     `json:"task" gorm:"type:text;not null"`
	Status         TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'Todo'"`
	TargetDatetime *time.Time `json:"target_datetime" gorm:"type:timestamptz"`

	Owner *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PersonalTodo
func (PersonalTodo) TableName() string {
	return "personal_todos"
}
