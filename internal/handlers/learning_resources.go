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

// ResourceCreator defines the interface that the service must implement.
type ResourceCreator interface {
	CreateResource(ctx context.Context, data models.CreateLearningResourceInput) (*models.LearningResource, error)
}

// ResourceGetter defines the interface that the service must implement.
type ResourceGetter interface {
	GetResourceByID(ctx context.Context, id uuid.UUID) (*models.LearningResource, error)
	GetResourceByURL(ctx context.Context, url string) (*models.LearningResource, error)
	GetAllResources(ctx context.Context) ([]models.LearningResource, error)
	GetRandomResources(ctx context.Context, count int) ([]models.LearningResource, error)
}

// ResourceUpdater defines the interface that the service must implement.
type ResourceUpdater interface {
	UpdateResource(ctx context.Context, id uuid.UUID, data models.UpdateLearningResourceInput) (*models.LearningResource, error)
}

// ResourceDeleter defines the interface that the service must implement.
type ResourceDeleter interface {
	DeleteResource(ctx context.Context, id uuid.UUID) error
}

// CreateLearningResourceRequest represents the JSON body for creating a resource
// swagger:model CreateLearningResourceRequest
type CreateLearningResourceRequest struct {
	// Resource title
	// required: true
	// default: OCaml manual
	Title string `json:"title"`

	// Resource URL, globally unique
	// required: true
	// default: https://ocaml.org/manual
	URL string `json:"url"`
}

// UpdateLearningResourceRequest represents the JSON body for a partial resource update
// swagger:model UpdateLearningResourceRequest
type UpdateLearningResourceRequest struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
}

// LearningResourceResponse represents a successful response carrying one resource
// swagger:model LearningResourceResponse
type LearningResourceResponse struct {
	Success  bool                     `json:"success"`
	Resource *models.LearningResource `json:"resource"`
}

// LearningResourcesResponse represents a successful response carrying a list of resources
// swagger:model LearningResourcesResponse
type LearningResourcesResponse struct {
	Success   bool                      `json:"success"`
	Resources []models.LearningResource `json:"resources"`
}

// NewCreateLearningResourceHandler returns an HTTP handler for creating a resource.
// @Summary Create a learning resource
// @Tags learning-resources
// @Accept json
// @Produce json
// @Param request body handlers.CreateLearningResourceRequest true "Resource creation request"
// @Success 201 {object} handlers.LearningResourceResponse "Resource created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "URL already exists"
// @Router /learning-resources [post]
func NewCreateLearningResourceHandler(svc ResourceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateLearningResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.URL) == "" {
			failValidation(w, "Title and url are required")
			return
		}

		resource, err := svc.CreateResource(r.Context(), models.CreateLearningResourceInput{
			Title: req.Title,
			URL:   req.URL,
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, LearningResourceResponse{Success: true, Resource: resource})
	}
}

// NewGetLearningResourceHandler returns an HTTP handler for fetching a resource by id.
// @Summary Get a learning resource
// @Tags learning-resources
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} handlers.LearningResourceResponse "Resource"
// @Failure 404 {object} handlers.ErrorResponse "Resource not found"
// @Router /learning-resources/{id} [get]
func NewGetLearningResourceHandler(svc ResourceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrResourceNotFound)
			return
		}

		resource, err := svc.GetResourceByID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, LearningResourceResponse{Success: true, Resource: resource})
	}
}

// NewGetLearningResourceByURLHandler returns an HTTP handler for the secondary-key lookup.
// A 404 here means "absent" and carries the failure envelope.
// @Summary Get a learning resource by URL
// @Tags learning-resources
// @Produce json
// @Param url query string true "Resource URL"
// @Success 200 {object} handlers.LearningResourceResponse "Resource"
// @Failure 404 {object} handlers.ErrorResponse "Resource not found"
// @Router /learning-resources/by-url [get]
func NewGetLearningResourceByURLHandler(svc ResourceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if strings.TrimSpace(url) == "" {
			failValidation(w, "Url is required")
			return
		}

		resource, err := svc.GetResourceByURL(r.Context(), url)
		if err != nil {
			fail(w, err)
			return
		}
		if resource == nil {
			fail(w, services.ErrResourceNotFound)
			return
		}

		respondJSON(w, http.StatusOK, LearningResourceResponse{Success: true, Resource: resource})
	}
}

// NewListLearningResourcesHandler returns an HTTP handler for listing all resources.
// @Summary List learning resources
// @Description Returns all learning resources ordered by creation time, newest first.
// @Tags learning-resources
// @Produce json
// @Success 200 {object} handlers.LearningResourcesResponse "Resources"
// @Router /learning-resources [get]
func NewListLearningResourcesHandler(svc ResourceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resources, err := svc.GetAllResources(r.Context())
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, LearningResourcesResponse{Success: true, Resources: resources})
	}
}

// NewRandomLearningResourcesHandler returns an HTTP handler for the random sampler.
// @Summary Get random learning resources
// @Tags learning-resources
// @Produce json
// @Param count query int false "Number of resources" default(1)
// @Success 200 {object} handlers.LearningResourcesResponse "Random resources"
// @Router /learning-resources/random [get]
func NewRandomLearningResourcesHandler(svc ResourceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := 1
		if raw := r.URL.Query().Get("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				failValidation(w, "Invalid count")
				return
			}
			count = parsed
		}

		resources, err := svc.GetRandomResources(r.Context(), count)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, LearningResourcesResponse{Success: true, Resources: resources})
	}
}

// NewUpdateLearningResourceHandler returns an HTTP handler for partially updating a resource.
// @Summary Update a learning resource
// @Tags learning-resources
// @Accept json
// @Produce json
// @Param id path string true "Resource id"
// @Param request body handlers.UpdateLearningResourceRequest true "Fields to update"
// @Success 200 {object} handlers.LearningResourceResponse "Updated resource"
// @Failure 404 {object} handlers.ErrorResponse "Resource not found"
// @Failure 409 {object} handlers.ErrorResponse "URL already exists"
// @Router /learning-resources/{id} [put]
func NewUpdateLearningResourceHandler(svc ResourceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrResourceNotFound)
			return
		}

		var req UpdateLearningResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		resource, err := svc.UpdateResource(r.Context(), id, models.UpdateLearningResourceInput{
			Title: req.Title,
			URL:   req.URL,
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, LearningResourceResponse{Success: true, Resource: resource})
	}
}

// NewDeleteLearningResourceHandler returns an HTTP handler for deleting a resource.
// @Summary Delete a learning resource
// @Tags learning-resources
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} handlers.StatusResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Resource not found"
// @Failure 409 {object} handlers.ErrorResponse "Still referenced"
// @Router /learning-resources/{id} [delete]
func NewDeleteLearningResourceHandler(svc ResourceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrResourceNotFound)
			return
		}

		if err := svc.DeleteResource(r.Context(), id); err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
