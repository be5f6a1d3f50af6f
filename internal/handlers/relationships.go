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

// RelationshipCreator defines the interface that the service must implement.
type RelationshipCreator interface {
	CreateRelationship(ctx context.Context, data models.CreateCompetencyRelationshipInput) (*models.CompetencyRelationship, error)
}

// RelationshipGetter defines the interface that the service must implement.
type RelationshipGetter interface {
	GetRelationshipByID(ctx context.Context, id uuid.UUID) (*models.CompetencyRelationship, error)
	GetRelationshipsByOriginID(ctx context.Context, originID uuid.UUID) ([]models.CompetencyRelationship, error)
	GetRelationshipsByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]models.CompetencyRelationship, error)
	GetAllRelationships(ctx context.Context) ([]models.CompetencyRelationship, error)
}

// RelationshipDeleter defines the interface that the service must implement.
type RelationshipDeleter interface {
	DeleteRelationship(ctx context.Context, id uuid.UUID) error
}

// CreateRelationshipRequest represents the JSON body for asserting a relationship
// swagger:model CreateRelationshipRequest
type CreateRelationshipRequest struct {
	// Relationship type: ASSUMES, EXTENDS or MATCHES
	// required: true
	// default: ASSUMES
	RelationshipType string `json:"relationshipType"`

	// Origin competency id
	// required: true
	OriginID string `json:"originId"`

	// Destination competency id
	// required: true
	DestinationID string `json:"destinationId"`

	// Asserting user id
	// required: true
	UserID string `json:"userId"`
}

// RelationshipResponse represents a successful response carrying one relationship
// swagger:model RelationshipResponse
type RelationshipResponse struct {
	Success      bool                           `json:"success"`
	Relationship *models.CompetencyRelationship `json:"relationship"`
}

// RelationshipsResponse represents a successful response carrying a list of relationships
// swagger:model RelationshipsResponse
type RelationshipsResponse struct {
	Success       bool                            `json:"success"`
	Relationships []models.CompetencyRelationship `json:"relationships"`
}

var validRelationshipTypes = map[string]struct{}{
	string(models.RelationshipAssumes): {},
	string(models.RelationshipExtends): {},
	string(models.RelationshipMatches): {},
}

// NewCreateRelationshipHandler returns an HTTP handler for asserting a relationship.
// Self-referential edges and duplicate edges are rejected before any write.
// @Summary Create a competency relationship
// @Tags competency-relationships
// @Accept json
// @Produce json
// @Param request body handlers.CreateRelationshipRequest true "Relationship creation request"
// @Success 201 {object} handlers.RelationshipResponse "Relationship created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / self-relationship"
// @Failure 409 {object} handlers.ErrorResponse "Relationship already exists"
// @Router /competency-relationships [post]
func NewCreateRelationshipHandler(svc RelationshipCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRelationshipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		if _, ok := validRelationshipTypes[req.RelationshipType]; !ok {
			failValidation(w, "Invalid relationship type")
			return
		}

		originID, err := uuid.Parse(strings.TrimSpace(req.OriginID))
		if err != nil {
			failValidation(w, "Invalid origin id")
			return
		}
		destinationID, err := uuid.Parse(strings.TrimSpace(req.DestinationID))
		if err != nil {
			failValidation(w, "Invalid destination id")
			return
		}
		userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
		if err != nil {
			failValidation(w, "Invalid user id")
			return
		}

		relationship, err := svc.CreateRelationship(r.Context(), models.CreateCompetencyRelationshipInput{
			RelationshipType: models.RelationshipType(req.RelationshipType),
			OriginID:         originID,
			DestinationID:    destinationID,
			UserID:           userID,
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, RelationshipResponse{Success: true, Relationship: relationship})
	}
}

// NewGetRelationshipHandler returns an HTTP handler for fetching a relationship by id.
// @Summary Get a competency relationship
// @Tags competency-relationships
// @Produce json
// @Param id path string true "Relationship id"
// @Success 200 {object} handlers.RelationshipResponse "Relationship"
// @Failure 404 {object} handlers.ErrorResponse "Relationship not found"
// @Router /competency-relationships/{id} [get]
func NewGetRelationshipHandler(svc RelationshipGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrRelationshipNotFound)
			return
		}

		relationship, err := svc.GetRelationshipByID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RelationshipResponse{Success: true, Relationship: relationship})
	}
}

// NewListRelationshipsHandler returns an HTTP handler for listing all relationships.
// @Summary List competency relationships
// @Tags competency-relationships
// @Produce json
// @Success 200 {object} handlers.RelationshipsResponse "Relationships"
// @Router /competency-relationships [get]
func NewListRelationshipsHandler(svc RelationshipGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		relationships, err := svc.GetAllRelationships(r.Context())
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RelationshipsResponse{Success: true, Relationships: relationships})
	}
}

// NewRelationshipsByOriginHandler returns an HTTP handler for the origin lookup.
// @Summary List relationships by origin competency
// @Tags competency-relationships
// @Produce json
// @Param id path string true "Origin competency id"
// @Success 200 {object} handlers.RelationshipsResponse "Relationships"
// @Router /competency-relationships/by-origin/{id} [get]
func NewRelationshipsByOriginHandler(svc RelationshipGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			failValidation(w, "Invalid origin id")
			return
		}

		relationships, err := svc.GetRelationshipsByOriginID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RelationshipsResponse{Success: true, Relationships: relationships})
	}
}

// NewRelationshipsByDestinationHandler returns an HTTP handler for the destination lookup.
// @Summary List relationships by destination competency
// @Tags competency-relationships
// @Produce json
// @Param id path string true "Destination competency id"
// @Success 200 {object} handlers.RelationshipsResponse "Relationships"
// @Router /competency-relationships/by-destination/{id} [get]
func NewRelationshipsByDestinationHandler(svc RelationshipGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			failValidation(w, "Invalid destination id")
			return
		}

		relationships, err := svc.GetRelationshipsByDestinationID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RelationshipsResponse{Success: true, Relationships: relationships})
	}
}

// NewDeleteRelationshipHandler returns an HTTP handler for deleting a relationship.
// @Summary Delete a competency relationship
// @Tags competency-relationships
// @Produce json
// @Param id path string true "Relationship id"
// @Success 200 {object} handlers.StatusResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Relationship not found"
// @Router /competency-relationships/{id} [delete]
func NewDeleteRelationshipHandler(svc RelationshipDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrRelationshipNotFound)
			return
		}

		if err := svc.DeleteRelationship(r.Context(), id); err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
