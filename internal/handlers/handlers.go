package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/services"
)

// ErrorResponse is the uniform failure envelope returned by every handler.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Human-readable error message
	// default: Internal server error
	Error string `json:"error"`
}

// StatusResponse is the success envelope for operations without a payload.
// swagger:model StatusResponse
type StatusResponse struct {
	// Always true
	Success bool `json:"success"`
}

// respondJSON writes v as the JSON response body with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// fail converts a service error into the failure envelope. Domain errors keep
// their message; anything else is rendered as a generic internal error so that
// storage and transport details never leak past this boundary.
func fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
		msg = "Internal server error"
	}
	respondJSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// failValidation rejects a request before any service call.
func failValidation(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: msg})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCompetencyNotFound),
		errors.Is(err, services.ErrResourceNotFound),
		errors.Is(err, services.ErrRelationshipNotFound),
		errors.Is(err, services.ErrLinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailAlreadyExists),
		errors.Is(err, services.ErrURLAlreadyExists),
		errors.Is(err, services.ErrRelationshipExists),
		errors.Is(err, services.ErrStillReferenced):
		return http.StatusConflict
	case errors.Is(err, services.ErrSelfRelationship),
		errors.Is(err, services.ErrMissingReference),
		errors.Is(err, services.ErrNotEnoughCompetencies):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
