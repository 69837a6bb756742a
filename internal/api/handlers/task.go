package handlers

import (
	"net/http"

	"task-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamTaskHandler handles HTTP requests for team tasks
type TeamTaskHandler struct {
	taskService service.TeamTaskServiceInterface
}

// NewTeamTaskHandler creates a new team task handler
func NewTeamTaskHandler(taskService service.TeamTaskServiceInterface) *TeamTaskHandler {
	return &TeamTaskHandler{
		taskService: taskService,
	}
}

// TaskCreatedResponse represents a successful team task creation
type TaskCreatedResponse struct {
	Message string                   `json:"message" example:"Task created"`
	TaskID  uuid.UUID                `json:"taskId"`
	Task    service.TeamTaskResponse `json:"task"`
}

// TaskUpdatedResponse represents a successful team task update
type TaskUpdatedResponse struct {
	Message string                   `json:"message" example:"Task updated"`
	Task    service.TeamTaskResponse `json:"task"`
}

// CreateTask handles POST /teams/:teamId/tasks
// @Summary Create a team task
// @Description Team admins create a task, optionally assigned to a current member
// @Tags tasks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param task body service.CreateTeamTaskRequest true "Task data"
// @Success 201 {object} TaskCreatedResponse "Task created"
// @Failure 400 {object} ErrorResponse "Title required or assignee not a member"
// @Failure 403 {object} ErrorResponse "Only team admin can create tasks"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/tasks [post]
func (h *TeamTaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId", "team")
	if !ok {
		return
	}

	var req service.CreateTeamTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Title required")
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID, teamID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TaskCreatedResponse{Message: "Task created", TaskID: task.ID, Task: *task})
}

// ListTasks handles GET /teams/:teamId/tasks
// @Summary List team tasks
// @Description Members list the team's tasks, newest first, with assignee names
// @Tags tasks
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.TeamTaskResponse "Tasks"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/tasks [get]
func (h *TeamTaskHandler) ListTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId", "team")
	if !ok {
		return
	}

	tasks, err := h.taskService.List(userID, teamID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask handles PUT /teams/:teamId/tasks/:taskId
// @Summary Update a team task
// @Description Team admins or the assignee change status and/or deadline. Omitted fields are kept.
// @Tags tasks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Param task body service.UpdateTeamTaskRequest true "Fields to change"
// @Success 200 {object} TaskUpdatedResponse "Task updated"
// @Failure 400 {object} ErrorResponse "Invalid status or datetime"
// @Failure 403 {object} ErrorResponse "Only team admin or assignee can modify status"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/tasks/{taskId} [put]
func (h *TeamTaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId", "team")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId", "task")
	if !ok {
		return
	}

	var req service.UpdateTeamTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), userID, teamID, taskID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TaskUpdatedResponse{Message: "Task updated", Task: *task})
}
