package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"task-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const profileImageField = "profile_image"

// AuthHandler handles registration and login
type AuthHandler struct {
	identityService service.IdentityServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService service.IdentityServiceInterface) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
	}
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	Message string              `json:"message" example:"User registered successfully"`
	User    service.UserSummary `json:"user"`
}

// Register handles POST /register
// @Summary Register a user
// @Description Create an account from JSON or multipart form data with an optional profile image
// @Tags auth
// @Accept json,mpfd
// @Produce json
// @Param user body service.RegisterRequest true "Registration data"
// @Param profile_image formData file false "Profile image (PNG, JPEG, GIF or WebP)"
// @Success 201 {object} RegisterResponse "User registered"
// @Failure 400 {object} ErrorResponse "Missing fields or unsupported image"
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	var image *multipart.FileHeader

	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, "Missing fields")
			return
		}
		var ok bool
		if image, ok = optionalFile(c, profileImageField); !ok {
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing fields")
		return
	}

	user, err := h.identityService.Register(c.Request.Context(), &req, image)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Message: "User registered successfully", User: *user})
}

// Login handles POST /login
// @Summary Log in with a password
// @Description Verify credentials (and the reCAPTCHA token when enabled) and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.SessionResponse "Login Successful"
// @Failure 400 {object} ErrorResponse "Missing fields or failed bot check"
// @Failure 401 {object} ErrorResponse "Invalid Credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing fields")
		return
	}

	session, err := h.identityService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// FederatedLogin handles POST /auth/federated
// @Summary Log in with Google
// @Description Verify a Google ID token or authorization code, provisioning the user on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param credential body service.FederatedLoginRequest true "Google credential"
// @Success 200 {object} service.SessionResponse "Google login successful"
// @Failure 400 {object} ErrorResponse "Token is required"
// @Failure 401 {object} ErrorResponse "Google authentication failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/federated [post]
func (h *AuthHandler) FederatedLogin(c *gin.Context) {
	var req service.FederatedLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Token is required")
		return
	}

	session, err := h.identityService.FederatedLogin(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// optionalFile returns the uploaded file for field, or nil when none was sent
func optionalFile(c *gin.Context, field string) (*multipart.FileHeader, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		badRequest(c, "Invalid "+field+" upload")
		return nil, false
	}
	return file, true
}
