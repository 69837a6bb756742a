package models

import "fmt"

// TaskStatus is the closed set of states a todo or team task can be in
type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "Todo"
	TaskStatusDoing TaskStatus = "Doing"
	TaskStatusDone  TaskStatus = "Done"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

// ParseTaskStatus converts raw input into a TaskStatus, rejecting anything outside the enum
func ParseTaskStatus(raw string) (TaskStatus, error) {
	s := TaskStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status %q: must be one of Todo, Doing, Done", raw)
	}
	return s, nil
}
