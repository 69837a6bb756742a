package handlers

import (
	"net/http"

	"task-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles the caller's personal todos
type TodoHandler struct {
	todoService service.TodoServiceInterface
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService service.TodoServiceInterface) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// TodoUpdatedResponse represents a successful todo update
type TodoUpdatedResponse struct {
	Message string               `json:"message" example:"Todo updated"`
	Todo    service.TodoResponse `json:"todo"`
}

// ListTodos handles GET /todos
// @Summary List own todos
// @Description List the caller's personal todos, newest first
// @Tags todos
// @Produce json
// @Success 200 {array} service.TodoResponse "Todos"
// @Failure 401 {object} ErrorResponse "Access token required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todos, err := h.todoService.List(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodo handles POST /todos
// @Summary Create a todo
// @Description Create a personal todo in the Todo state
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body service.CreateTodoRequest true "Todo data"
// @Success 201 {object} service.TodoResponse "Created todo"
// @Failure 400 {object} ErrorResponse "Task and targetDatetime are required"
// @Failure 401 {object} ErrorResponse "Access token required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Task and targetDatetime are required")
		return
	}

	todo, err := h.todoService.Create(userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo handles PUT /todos/:id
// @Summary Update a todo
// @Description Change status and/or deadline of an owned todo. Omitted fields are kept; an empty targetDatetime clears it.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID (UUID)"
// @Param todo body service.UpdateTodoRequest true "Fields to change"
// @Success 200 {object} TodoUpdatedResponse "Todo updated"
// @Failure 400 {object} ErrorResponse "Invalid status or datetime"
// @Failure 404 {object} ErrorResponse "Todo not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /todos/{id} [put]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todoID, ok := pathUUID(c, "id", "todo")
	if !ok {
		return
	}

	var req service.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.Update(userID, todoID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TodoUpdatedResponse{Message: "Todo updated", Todo: *todo})
}

// DeleteTodo handles DELETE /todos/:id
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID (UUID)"
// @Success 200 {object} MessageResponse "Todo deleted"
// @Failure 400 {object} ErrorResponse "Invalid todo ID"
// @Failure 404 {object} ErrorResponse "Todo not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todoID, ok := pathUUID(c, "id", "todo")
	if !ok {
		return
	}

	if err := h.todoService.Delete(userID, todoID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Todo deleted"})
}
