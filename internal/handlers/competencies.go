package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

// CompetencyCreator defines the interface that the service must implement.
type CompetencyCreator interface {
	CreateCompetency(ctx context.Context, data models.CreateCompetencyInput) (*models.Competency, error)
}

// CompetencyGetter defines the interface that the service must implement.
type CompetencyGetter interface {
	GetCompetencyByID(ctx context.Context, id uuid.UUID) (*models.Competency, error)
	GetAllCompetencies(ctx context.Context) ([]models.Competency, error)
	GetRandomCompetencies(ctx context.Context, count int) ([]models.Competency, error)
}

// CompetencyUpdater defines the interface that the service must implement.
type CompetencyUpdater interface {
	UpdateCompetency(ctx context.Context, id uuid.UUID, data models.UpdateCompetencyInput) (*models.Competency, error)
}

// CompetencyDeleter defines the interface that the service must implement.
type CompetencyDeleter interface {
	DeleteCompetency(ctx context.Context, id uuid.UUID) error
}

// CreateCompetencyRequest represents the JSON body for creating a competency
// swagger:model CreateCompetencyRequest
type CreateCompetencyRequest struct {
	// Competency title
	// required: true
	// default: Higher-Order Functions
	Title string `json:"title"`

	// Optional description
	Description *string `json:"description,omitempty"`
}

// UpdateCompetencyRequest represents the JSON body for a partial competency update
// swagger:model UpdateCompetencyRequest
type UpdateCompetencyRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CompetencyResponse represents a successful response carrying one competency
// swagger:model CompetencyResponse
type CompetencyResponse struct {
	Success    bool               `json:"success"`
	Competency *models.Competency `json:"competency"`
}

// CompetenciesResponse represents a successful response carrying a list of competencies
// swagger:model CompetenciesResponse
type CompetenciesResponse struct {
	Success      bool                `json:"success"`
	Competencies []models.Competency `json:"competencies"`
}

// NewCreateCompetencyHandler returns an HTTP handler for creating a competency.
// @Summary Create a competency
// @Tags competencies
// @Accept json
// @Produce json
// @Param request body handlers.CreateCompetencyRequest true "Competency creation request"
// @Success 201 {object} handlers.CompetencyResponse "Competency created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /competencies [post]
func NewCreateCompetencyHandler(svc CompetencyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCompetencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.Title) == "" {
			failValidation(w, "Title is required")
			return
		}

		competency, err := svc.CreateCompetency(r.Context(), models.CreateCompetencyInput{
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, CompetencyResponse{Success: true, Competency: competency})
	}
}

// NewGetCompetencyHandler returns an HTTP handler for fetching a competency by id.
// @Summary Get a competency
// @Tags competencies
// @Produce json
// @Param id path string true "Competency id"
// @Success 200 {object} handlers.CompetencyResponse "Competency"
// @Failure 404 {object} handlers.ErrorResponse "Competency not found"
// @Router /competencies/{id} [get]
func NewGetCompetencyHandler(svc CompetencyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrCompetencyNotFound)
			return
		}

		competency, err := svc.GetCompetencyByID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, CompetencyResponse{Success: true, Competency: competency})
	}
}

// NewListCompetenciesHandler returns an HTTP handler for listing all competencies.
// @Summary List competencies
// @Description Returns all competencies ordered by creation time, newest first.
// @Tags competencies
// @Produce json
// @Success 200 {object} handlers.CompetenciesResponse "Competencies"
// @Router /competencies [get]
func NewListCompetenciesHandler(svc CompetencyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competencies, err := svc.GetAllCompetencies(r.Context())
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, CompetenciesResponse{Success: true, Competencies: competencies})
	}
}

// NewRandomCompetenciesHandler returns an HTTP handler for the random sampler.
// It fails explicitly when the store has fewer rows than requested.
// @Summary Get random competencies
// @Tags competencies
// @Produce json
// @Param count query int false "Number of competencies" default(2)
// @Success 200 {object} handlers.CompetenciesResponse "Random competencies"
// @Failure 400 {object} handlers.ErrorResponse "Not enough competencies"
// @Router /competencies/random [get]
func NewRandomCompetenciesHandler(svc CompetencyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := 2
		if raw := r.URL.Query().Get("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				failValidation(w, "Invalid count")
				return
			}
			count = parsed
		}

		competencies, err := svc.GetRandomCompetencies(r.Context(), count)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, CompetenciesResponse{Success: true, Competencies: competencies})
	}
}

// NewUpdateCompetencyHandler returns an HTTP handler for partially updating a competency.
// @Summary Update a competency
// @Tags competencies
// @Accept json
// @Produce json
// @Param id path string true "Competency id"
// @Param request body handlers.UpdateCompetencyRequest true "Fields to update"
// @Success 200 {object} handlers.CompetencyResponse "Updated competency"
// @Failure 404 {object} handlers.ErrorResponse "Competency not found"
// @Router /competencies/{id} [put]
func NewUpdateCompetencyHandler(svc CompetencyUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrCompetencyNotFound)
			return
		}

		var req UpdateCompetencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		competency, err := svc.UpdateCompetency(r.Context(), id, models.UpdateCompetencyInput{
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, CompetencyResponse{Success: true, Competency: competency})
	}
}

// NewDeleteCompetencyHandler returns an HTTP handler for deleting a competency.
// @Summary Delete a competency
// @Tags competencies
// @Produce json
// @Param id path string true "Competency id"
// @Success 200 {object} handlers.StatusResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Competency not found"
// @Failure 409 {object} handlers.ErrorResponse "Still referenced"
// @Router /competencies/{id} [delete]
func NewDeleteCompetencyHandler(svc CompetencyDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrCompetencyNotFound)
			return
		}

		if err := svc.DeleteCompetency(r.Context(), id); err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
