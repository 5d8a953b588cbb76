package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/api/shared"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

// Client-facing messages.
const (
	msgTaskNotFound   = "Task not found"
	msgInvalidRequest = "Invalid request format"
	msgInvalidEntity  = "Invalid task data"
	msgUnexpected     = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErrs),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var domainErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return msgTaskNotFound

	case errors.As(err, &domainErr):
		return "Validation error: " + domainErr.Error()

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity

	default:
		return msgUnexpected
	}
}

// SanitizeValidationError turns validator errors into a user-friendly message
// naming the first offending JSON field.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}

	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
