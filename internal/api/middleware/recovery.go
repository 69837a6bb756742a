package middleware

import (
	"fmt"
	"net/http"

	"task-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a logged 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).
			WithField("request_id", GetRequestID(c)).
			WithError(fmt.Errorf("panic: %v", recovered)).
			Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	})
}
