package handlers

import (
	"net/http"

	"task-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for teams and their memberships
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// TeamCreatedResponse represents a successful team creation
type TeamCreatedResponse struct {
	Message string    `json:"message" example:"Team created"`
	TeamID  uuid.UUID `json:"teamId"`
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team with the caller as admin and optionally invite members by user id
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} TeamCreatedResponse "Team created"
// @Failure 400 {object} ErrorResponse "Team name required"
// @Failure 401 {object} ErrorResponse "Access token required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Team name required")
		return
	}

	teamID, err := h.teamService.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TeamCreatedResponse{Message: "Team created", TeamID: teamID})
}

// ListTeams handles GET /teams
// @Summary List own teams
// @Description List the teams the caller belongs to with the caller's admin flag
// @Tags teams
// @Produce json
// @Success 200 {array} models.TeamWithRole "Teams"
// @Failure 401 {object} ErrorResponse "Access token required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeamsForUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// ListMembers handles GET /teams/:teamId/members
// @Summary List team members
// @Description List a team's members ordered by username
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} models.TeamMember "Members"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/members [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	teamID, ok := pathUUID(c, "teamId", "team")
	if !ok {
		return
	}

	members, err := h.teamService.ListMembers(teamID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /teams/:teamId/members
// @Summary Add a team member
// @Description Team admins enroll an existing user. Adding a current member is a no-op.
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param member body service.AddMemberRequest true "User to add"
// @Success 200 {object} MessageResponse "Member added"
// @Failure 400 {object} ErrorResponse "Invalid team or user ID"
// @Failure 403 {object} ErrorResponse "Only team admin can add members"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId", "team")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "A valid user_id is required")
		return
	}

	if err := h.teamService.AddMember(c.Request.Context(), userID, teamID, &req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Member added"})
}

// RemoveMember handles DELETE /teams/:teamId/members/:userId
// @Summary Remove a team member
// @Description Team admins remove a membership. The only admin of a team cannot be removed.
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} MessageResponse "Member removed"
// @Failure 400 {object} ErrorResponse "Cannot remove the only team admin"
// @Failure 403 {object} ErrorResponse "Only team admin can remove members"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{teamId}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "teamId", "team")
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(c.Request.Context(), actorID, teamID, targetID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Member removed"})
}
