package dto

import (
	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding error into a client-facing
// ErrorDetail. Validator errors are reported per field; anything else is
// treated as a malformed request body.
func HandleValidationError(err error) *ErrorDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		detail := NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
		return detail.WithDetails(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}

	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")
	detail = detail.WithDetails(messages)
	if len(validationErrors) == 1 {
		detail = detail.WithField(validationErrors[0].Field())
	}
	return detail
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "required_if":
		return e.Field() + " is required for this role"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "studentnumber":
		return e.Field() + " must be 3-20 uppercase letters or digits"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
