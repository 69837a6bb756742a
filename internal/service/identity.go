package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"task-tracker-backend/internal/auth"
	"task-tracker-backend/internal/database/models"
	apperrors "task-tracker-backend/internal/errors"
	"task-tracker-backend/internal/logger"
	"task-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyPasswordHash is compared against when no usable hash exists, so that
// unknown users cost the same as wrong passwords.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("task-tracker-dummy-password"), bcrypt.DefaultCost)

// IdentityService handles registration, login, federated login and profiles
type IdentityService struct {
	userRepo  repository.UserRepositoryInterface
	tokens    SessionTokens
	captcha   CaptchaVerifier
	federated FederatedVerifier
	images    ImageStore
	validator *validator.Validate
}

// NewIdentityService creates a new identity service. captcha may be nil to disable the bot check.
func NewIdentityService(
	userRepo repository.UserRepositoryInterface,
	tokens SessionTokens,
	captcha CaptchaVerifier,
	federated FederatedVerifier,
	images ImageStore,
	validator *validator.Validate,
) *IdentityService {
	return &IdentityService{
		userRepo:  userRepo,
		tokens:    tokens,
		captcha:   captcha,
		federated: federated,
		images:    images,
		validator: validator,
	}
}

// RegisterRequest represents the request to register a user
type RegisterRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=200"`
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// LoginRequest represents the request to log in with a password
type LoginRequest struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// FederatedLoginRequest carries either a Google ID token or an authorization code
type FederatedLoginRequest struct {
	Token string `json:"token" validate:"required_without=Code"`
	Code  string `json:"code" validate:"required_without=Token"`
}

// UpdateProfileRequest represents the request to update the caller's profile
type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=200"`
}

// UserSummary is the user block returned with a session
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	ProfileImage *string   `json:"profile_image"`
}

// SessionResponse represents a successful login
type SessionResponse struct {
	Message string      `json:"message" example:"Login Successful"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// ProfileResponse represents a public profile
type ProfileResponse struct {
	FullName     string  `json:"full_name"`
	ProfileImage *string `json:"profile_image"`
}

// UserListItem represents one entry of the user directory
type UserListItem struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
}

// Register creates a user with a bcrypt-hashed password and an optional profile image
func (s *IdentityService) Register(ctx context.Context, req *RegisterRequest, image *multipart.FileHeader) (*UserSummary, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Username = strings.TrimSpace(req.Username)
	if err := validateRequest(s.validator, req, "Missing fields"); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var imagePath *string
	if image != nil {
		path, err := s.images.Save(image)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	user := &models.User{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		ProfileImage: imagePath,
	}
	if err := s.userRepo.Create(user); err != nil {
		s.discardImage(ctx, imagePath)
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User registered")
	return toUserSummary(user), nil
}

// Login runs the optional bot check, verifies the password and issues a session token.
// Unknown users and wrong passwords produce the same error.
func (s *IdentityService) Login(ctx context.Context, req *LoginRequest, remoteIP string) (*SessionResponse, error) {
	if err := validateRequest(s.validator, req, "Missing fields"); err != nil {
		return nil, err
	}

	if s.captcha != nil {
		if err := s.captcha.Verify(ctx, req.RecaptchaToken, remoteIP); err != nil {
			if apperrors.IsValidation(err) {
				return nil, err
			}
			return nil, fmt.Errorf("bot check unavailable: %w", err)
		}
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	hash := dummyPasswordHash
	if user != nil && !user.IsFederatedOnly() {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil || user == nil || user.IsFederatedOnly() {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.newSession(user, "Login Successful")
}

// FederatedLogin verifies a Google credential, provisioning the user on first sight
func (s *IdentityService) FederatedLogin(ctx context.Context, req *FederatedLoginRequest) (*SessionResponse, error) {
	if err := validateRequest(s.validator, req, "Token is required"); err != nil {
		return nil, err
	}

	var identity *auth.GoogleIdentity
	var err error
	if req.Token != "" {
		identity, err = s.federated.VerifyIDToken(ctx, req.Token)
	} else {
		identity, err = s.federated.ExchangeCode(ctx, req.Code)
	}
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByGoogleID(identity.Subject)
	switch {
	case err == nil:
		if identity.Picture != "" && (user.ProfileImage == nil || *user.ProfileImage == "") {
			picture := identity.Picture
			user.ProfileImage = &picture
			if err := s.userRepo.Update(user); err != nil {
				return nil, fmt.Errorf("failed to backfill avatar: %w", err)
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.provisionFederatedUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.newSession(user, "Google login successful")
}

func (s *IdentityService) provisionFederatedUser(ctx context.Context, identity *auth.GoogleIdentity) (*models.User, error) {
	displayName := strings.TrimSpace(identity.Name)
	if displayName == "" {
		displayName = strings.Split(identity.Email, "@")[0]
	}
	if displayName == "" {
		displayName = "google-user"
	}

	username := displayName
	taken, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		username = displayName + "-" + subjectSuffix(identity.Subject)
	}

	subject := identity.Subject
	user := &models.User{
		Username:     username,
		FullName:     displayName,
		PasswordHash: models.FederatedPasswordSentinel,
		GoogleID:     &subject,
	}
	if identity.Email != "" {
		email := identity.Email
		user.Email = &email
	}
	if identity.Picture != "" {
		picture := identity.Picture
		user.ProfileImage = &picture
	}

	if err := s.userRepo.Create(user); err != nil {
		if repository.IsDuplicateKey(err) {
			// a concurrent first login for the same subject won the insert
			if existing, getErr := s.userRepo.GetByGoogleID(subject); getErr == nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create federated user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("Provisioned federated user")
	return user, nil
}

func subjectSuffix(subject string) string {
	if len(subject) > 6 {
		return subject[len(subject)-6:]
	}
	return subject
}

// VerifySession decodes a session token into its claims
func (s *IdentityService) VerifySession(token string) (*auth.AuthClaims, error) {
	if token == "" {
		return nil, apperrors.ErrMissingToken
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// GetProfile returns the public profile of a user
func (s *IdentityService) GetProfile(username string) (*ProfileResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &ProfileResponse{FullName: user.FullName, ProfileImage: user.ProfileImage}, nil
}

// UpdateProfile changes the caller's full name and, when a file is uploaded, their image
func (s *IdentityService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest, image *multipart.FileHeader) (*ProfileResponse, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	if err := validateRequest(s.validator, req, "Full name is required"); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	previousImage := user.ProfileImage
	user.FullName = req.FullName
	if image != nil {
		path, err := s.images.Save(image)
		if err != nil {
			return nil, err
		}
		user.ProfileImage = &path
	}

	if err := s.userRepo.Update(user); err != nil {
		if image != nil {
			s.discardImage(ctx, user.ProfileImage)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if image != nil {
		s.discardImage(ctx, previousImage)
	}

	return &ProfileResponse{FullName: user.FullName, ProfileImage: user.ProfileImage}, nil
}

// ListUsers returns every user ordered by username
func (s *IdentityService) ListUsers() ([]UserListItem, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]UserListItem, len(users))
	for i, u := range users {
		items[i] = UserListItem{ID: u.ID, Username: u.Username, FullName: u.FullName}
	}
	return items, nil
}

func (s *IdentityService) newSession(user *models.User, message string) (*SessionResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &SessionResponse{
		Message: message,
		Token:   token,
		User:    *toUserSummary(user),
	}, nil
}

func (s *IdentityService) discardImage(ctx context.Context, path *string) {
	if path == nil {
		return
	}
	if err := s.images.Remove(*path); err != nil {
		logger.WithContext(ctx).WithError(err).Warnf("Failed to remove image %s", *path)
	}
}

func toUserSummary(user *models.User) *UserSummary {
	return &UserSummary{
		ID:           user.ID,
		Username:     user.Username,
		FullName:     user.FullName,
		ProfileImage: user.ProfileImage,
	}
}
