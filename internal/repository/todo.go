package repository

import (
	"task-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TodoRepository handles database operations for personal todos
type TodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create creates a new todo
func (r *TodoRepository) Create(todo *models.PersonalTodo) error {
	return r.db.Create(todo).Error
}

// GetForOwner retrieves a todo matching both id and owner
func (r *TodoRepository) GetForOwner(id, ownerID uuid.UUID) (*models.PersonalTodo, error) {
	var todo models.PersonalTodo
	err := r.db.First(&todo, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListByOwner retrieves the owner's todos, newest first
func (r *TodoRepository) ListByOwner(ownerID uuid.UUID) ([]models.PersonalTodo, error) {
	var todos []models.PersonalTodo
	err := r.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// Update writes status and target datetime of an owned todo
func (r *TodoRepository) Update(todo *models.PersonalTodo) error {
	return r.db.Model(todo).
		Where("user_id = ?", todo.UserID).
		Select("status", "target_datetime", "updated_at").
		Updates(todo).Error
}

// DeleteForOwner deletes a todo matching both id and owner and reports whether a row was removed
func (r *TodoRepository) DeleteForOwner(id, ownerID uuid.UUID) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.PersonalTodo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
