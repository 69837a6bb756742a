package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this username"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvariantError is returned when an operation would break a rule the data must always satisfy
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound     = &NotFoundError{Entity: "User"}
	ErrTeamNotFound     = &NotFoundError{Entity: "Team"}
	ErrTodoNotFound     = &NotFoundError{Entity: "Todo"}
	ErrTeamTaskNotFound = &NotFoundError{Entity: "Task"}
)

// Already Exists Errors
var (
	ErrUsernameExists = &AlreadyExistsError{Entity: "Username"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "Invalid Credentials"}
	ErrMissingToken       = &AuthenticationError{Message: "Access token required"}
	ErrInvalidToken       = &AuthenticationError{Message: "Invalid or expired token"}
	ErrFederatedAuth      = &AuthenticationError{Message: "Google authentication failed"}
)

// Authorization Errors
var (
	ErrAdminRequiredToAdd     = &AuthorizationError{Message: "Only team admin can add members"}
	ErrAdminRequiredToRemove  = &AuthorizationError{Message: "Only team admin can remove members"}
	ErrAdminRequiredForTasks  = &AuthorizationError{Message: "Only team admin can create tasks"}
	ErrNotTeamMember          = &AuthorizationError{Message: "Access denied"}
	ErrNotTeamAdminOrAssignee = &AuthorizationError{Message: "Only team admin or assignee can modify status"}
)

// Business Logic Errors
var (
	ErrLastTeamAdmin        = &InvariantError{Message: "Cannot remove the only team admin"}
	ErrAssigneeNotMember    = &ValidationError{Field: "assignee_id", Message: "Assignee must be a team member"}
	ErrCaptchaFailed        = &ValidationError{Field: "recaptchaToken", Message: "reCAPTCHA verification failed"}
	ErrCaptchaTokenRequired = &ValidationError{Field: "recaptchaToken", Message: "reCAPTCHA token is required"}
	ErrUnsupportedImage     = &ValidationError{Field: "profile_image", Message: "Profile image must be a PNG, JPEG, GIF or WebP file"}
	ErrImageTooLarge        = &ValidationError{Field: "profile_image", Message: "Profile image is too large"}
)

// Configuration Errors
var (
	ErrProviderNotConfigured = errors.New("provider is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvariant checks if an error is an InvariantError
func IsInvariant(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// PublicMessage returns the text safe to show to API clients for a domain error.
// Wrapping context is dropped; validation errors expose only their message.
func PublicMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.Error()
	}
	var existsErr *AlreadyExistsError
	if errors.As(err, &existsErr) {
		return existsErr.Error()
	}
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var authzErr *AuthorizationError
	if errors.As(err, &authzErr) {
		return authzErr.Message
	}
	var invErr *InvariantError
	if errors.As(err, &invErr) {
		return invErr.Message
	}
	return err.Error()
}
