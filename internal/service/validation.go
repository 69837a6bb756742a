package service

import (
	"errors"

	apperrors "task-tracker-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns the validator shared by all services
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validateRequest runs struct validation and reports any failure as a ValidationError
// carrying the first failing field and the given client-facing message.
func validateRequest(v *validator.Validate, req interface{}, message string) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.NewValidationError(fieldErrs[0].Field(), message)
	}
	return apperrors.NewValidationError("", message)
}
