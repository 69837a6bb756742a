package auth

import (
	"net/http"
	"strings"

	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey     = "user_id"
	usernameKey   = "username"
	authClaimsKey = "auth_claims"
)

// TokenVerifier validates session tokens
type TokenVerifier interface {
	Verify(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth validates the bearer token and sets user context.
// A missing token is rejected with 401; a malformed, invalid or expired one with 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, isBearer := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrMissingToken.Error()})
			return
		}
		if !isBearer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": apperrors.ErrInvalidToken.Error()})
			return
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": apperrors.ErrInvalidToken.Error()})
			return
		}

		SetUser(c, claims)
		c.Next()
	}
}

// SetUser stores the authenticated identity on the gin and request contexts
func SetUser(c *gin.Context, claims *AuthClaims) {
	c.Set(userIDKey, claims.UserID)
	c.Set(usernameKey, claims.Username)
	c.Set(authClaimsKey, claims)
	if c.Request != nil {
		c.Request = c.Request.WithContext(logger.ContextWithUsername(c.Request.Context(), claims.Username))
	}
}

// bearerToken returns the credential following the auth scheme and whether the scheme is Bearer
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], strings.EqualFold(parts[0], "Bearer")
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(usernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
