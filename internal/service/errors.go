package service

import (
	"errors"
	"fmt"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

// Error handling principles:
// 1. Expected conditions (not found, validation) are returned as their sentinel
//    or typed error so callers can use errors.Is / errors.As.
// 2. Unexpected errors are wrapped in TaskServiceError with the failing operation.
// 3. The API layer maps these errors to HTTP status codes.

// ErrTaskNotFound is re-exported so callers of the service need not import store.
var ErrTaskNotFound = store.ErrTaskNotFound

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "list_tasks")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Not-found and validation errors are returned unwrapped.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
