package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// TranslateValidationError creates a human-readable message for a binding
// failure. Only presence checks are enforced, so the messages stay short.
func TranslateValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return formatValidationError(validationErrors[0])
	}
	return "Invalid request body"
}

// formatValidationError creates a message for a single field error
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
