package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

// LinkCreator defines the interface that the service must implement.
type LinkCreator interface {
	CreateLink(ctx context.Context, data models.CreateCompetencyResourceLinkInput) (*models.CompetencyResourceLink, error)
}

// LinkGetter defines the interface that the service must implement.
type LinkGetter interface {
	GetLinkByID(ctx context.Context, id uuid.UUID) (*models.CompetencyResourceLink, error)
	GetLinksByCompetencyID(ctx context.Context, competencyID uuid.UUID) ([]models.CompetencyResourceLink, error)
	GetLinksByResourceID(ctx context.Context, resourceID uuid.UUID) ([]models.CompetencyResourceLink, error)
	GetAllLinks(ctx context.Context) ([]models.CompetencyResourceLink, error)
}

// LinkDeleter defines the interface that the service must implement.
type LinkDeleter interface {
	DeleteLink(ctx context.Context, id uuid.UUID) error
}

// CreateResourceLinkRequest represents the JSON body for asserting a resource link
// swagger:model CreateResourceLinkRequest
type CreateResourceLinkRequest struct {
	// Competency id
	// required: true
	CompetencyID string `json:"competencyId"`

	// Learning resource id
	// required: true
	ResourceID string `json:"resourceId"`

	// Asserting user id
	// required: true
	UserID string `json:"userId"`

	// Match type: UNRELATED, WEAK, GOOD_FIT or PERFECT_MATCH
	// required: true
	// default: GOOD_FIT
	MatchType string `json:"matchType"`
}

// ResourceLinkResponse represents a successful response carrying one link
// swagger:model ResourceLinkResponse
type ResourceLinkResponse struct {
	Success bool                           `json:"success"`
	Link    *models.CompetencyResourceLink `json:"link"`
}

// ResourceLinksResponse represents a successful response carrying a list of links
// swagger:model ResourceLinksResponse
type ResourceLinksResponse struct {
	Success bool                            `json:"success"`
	Links   []models.CompetencyResourceLink `json:"links"`
}

var validMatchTypes = map[string]struct{}{
	string(models.MatchUnrelated):    {},
	string(models.MatchWeak):         {},
	string(models.MatchGoodFit):      {},
	string(models.MatchPerfectMatch): {},
}

// NewCreateResourceLinkHandler returns an HTTP handler for asserting a resource link.
// @Summary Create a competency-resource link
// @Tags competency-resource-links
// @Accept json
// @Produce json
// @Param request body handlers.CreateResourceLinkRequest true "Link creation request"
// @Success 201 {object} handlers.ResourceLinkResponse "Link created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /competency-resource-links [post]
func NewCreateResourceLinkHandler(svc LinkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateResourceLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		if _, ok := validMatchTypes[req.MatchType]; !ok {
			failValidation(w, "Invalid match type")
			return
		}

		competencyID, err := uuid.Parse(strings.TrimSpace(req.CompetencyID))
		if err != nil {
			failValidation(w, "Invalid competency id")
			return
		}
		resourceID, err := uuid.Parse(strings.TrimSpace(req.ResourceID))
		if err != nil {
			failValidation(w, "Invalid resource id")
			return
		}
		userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
		if err != nil {
			failValidation(w, "Invalid user id")
			return
		}

		link, err := svc.CreateLink(r.Context(), models.CreateCompetencyResourceLinkInput{
			CompetencyID: competencyID,
			ResourceID:   resourceID,
			UserID:       userID,
			MatchType:    models.MatchType(req.MatchType),
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, ResourceLinkResponse{Success: true, Link: link})
	}
}

// NewGetResourceLinkHandler returns an HTTP handler for fetching a link by id.
// @Summary Get a competency-resource link
// @Tags competency-resource-links
// @Produce json
// @Param id path string true "Link id"
// @Success 200 {object} handlers.ResourceLinkResponse "Link"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /competency-resource-links/{id} [get]
func NewGetResourceLinkHandler(svc LinkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrLinkNotFound)
			return
		}

		link, err := svc.GetLinkByID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ResourceLinkResponse{Success: true, Link: link})
	}
}

// NewListResourceLinksHandler returns an HTTP handler for listing all links.
// @Summary List competency-resource links
// @Tags competency-resource-links
// @Produce json
// @Success 200 {object} handlers.ResourceLinksResponse "Links"
// @Router /competency-resource-links [get]
func NewListResourceLinksHandler(svc LinkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := svc.GetAllLinks(r.Context())
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ResourceLinksResponse{Success: true, Links: links})
	}
}

// NewResourceLinksByCompetencyHandler returns an HTTP handler for the competency lookup.
// @Summary List links by competency
// @Tags competency-resource-links
// @Produce json
// @Param id path string true "Competency id"
// @Success 200 {object} handlers.ResourceLinksResponse "Links"
// @Router /competency-resource-links/by-competency/{id} [get]
func NewResourceLinksByCompetencyHandler(svc LinkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			failValidation(w, "Invalid competency id")
			return
		}

		links, err := svc.GetLinksByCompetencyID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ResourceLinksResponse{Success: true, Links: links})
	}
}

// NewResourceLinksByResourceHandler returns an HTTP handler for the resource lookup.
// @Summary List links by learning resource
// @Tags competency-resource-links
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} handlers.ResourceLinksResponse "Links"
// @Router /competency-resource-links/by-resource/{id} [get]
func NewResourceLinksByResourceHandler(svc LinkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			failValidation(w, "Invalid resource id")
			return
		}

		links, err := svc.GetLinksByResourceID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ResourceLinksResponse{Success: true, Links: links})
	}
}

// NewDeleteResourceLinkHandler returns an HTTP handler for deleting a link.
// @Summary Delete a competency-resource link
// @Tags competency-resource-links
// @Produce json
// @Param id path string true "Link id"
// @Success 200 {object} handlers.StatusResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Link not found"
// @Router /competency-resource-links/{id} [delete]
func NewDeleteResourceLinkHandler(svc LinkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrLinkNotFound)
			return
		}

		if err := svc.DeleteLink(r.Context(), id); err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
