package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
)

// getPathID extracts a task ID from the URL path parameters.
// Returns a domain.ValidationError if the parameter is missing or not an
// integer. Range is left to the service: an id no task can have is not found.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer", domain.ErrInvalidID)
	}
	return id, nil
}
