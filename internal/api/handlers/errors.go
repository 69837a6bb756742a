package handlers

import (
	"net/http"

	"task-tracker-backend/internal/auth"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/logger"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Message string `json:"message" example:"Task not found"`
}

// MessageResponse represents a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Todo deleted"`
}

const serverErrorMessage = "Server error"

// writeError maps a domain error to its HTTP status. Anything unclassified is logged,
// reported and answered with a generic 500 so internal detail never reaches the client.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err), apperrors.IsInvariant(err):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithFields(map[string]interface{}{"method": c.Request.Method, "path": c.FullPath()}).
			Error("Request failed")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		c.JSON(status, ErrorResponse{Message: serverErrorMessage})
		return
	}

	c.JSON(status, ErrorResponse{Message: apperrors.PublicMessage(err)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// pathUUID parses a UUID path parameter, answering 400 when it is malformed
func pathUUID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the authenticated caller. Routes behind RequireAuth always have one.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: apperrors.ErrMissingToken.Error()})
		return uuid.Nil, false
	}
	return id, true
}
