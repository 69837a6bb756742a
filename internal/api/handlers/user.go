package handlers

import (
	"mime/multipart"
	"net/http"

	"task-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profiles and the user directory
type UserHandler struct {
	identityService service.IdentityServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(identityService service.IdentityServiceInterface) *UserHandler {
	return &UserHandler{
		identityService: identityService,
	}
}

// ProfileUpdateResponse represents a successful profile update
type ProfileUpdateResponse struct {
	Message      string  `json:"message" example:"Profile updated successfully"`
	FullName     string  `json:"full_name"`
	ProfileImage *string `json:"profile_image"`
}

// GetProfile handles GET /profile/:username
// @Summary Get a public profile
// @Description Get a user's full name and profile image by username
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.ProfileResponse "Profile"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /profile/{username} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.identityService.GetProfile(c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile
// @Summary Update own profile
// @Description Change the caller's full name and optionally replace their profile image
// @Tags profile
// @Accept json,mpfd
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile data"
// @Param profile_image formData file false "New profile image"
// @Success 200 {object} ProfileUpdateResponse "Profile updated"
// @Failure 400 {object} ErrorResponse "Full name is required"
// @Failure 401 {object} ErrorResponse "Access token required"
// @Failure 403 {object} ErrorResponse "Invalid or expired token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	var image *multipart.FileHeader
	if isMultipart(c) {
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, "Full name is required")
			return
		}
		if image, ok = optionalFile(c, profileImageField); !ok {
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Full name is required")
		return
	}

	profile, err := h.identityService.UpdateProfile(c.Request.Context(), userID, &req, image)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileUpdateResponse{
		Message:      "Profile updated successfully",
		FullName:     profile.FullName,
		ProfileImage: profile.ProfileImage,
	})
}

// ListUsers handles GET /users
// @Summary List users
// @Description List every registered user ordered by username
// @Tags users
// @Produce json
// @Success 200 {array} service.UserListItem "Users"
// @Failure 401 {object} ErrorResponse "Access token required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.identityService.ListUsers()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
