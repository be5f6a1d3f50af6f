package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/models"
)

// Error variables
var (
	ErrRelationshipNotFound = errors.New("Relationship not found")
	ErrSelfRelationship     = errors.New("Cannot create relationship to itself")
	ErrRelationshipExists   = errors.New("Relationship already exists between these competencies with this type")
	ErrMissingReference     = errors.New("Referenced competency or user does not exist")
)

// RelationshipRepo defines the storage operations the relationship service relies on.
type RelationshipRepo interface {
	Create(ctx context.Context, data models.CreateCompetencyRelationshipInput) (*models.CompetencyRelationship, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CompetencyRelationship, error)
	FindByOriginID(ctx context.Context, originID uuid.UUID) ([]models.CompetencyRelationship, error)
	FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]models.CompetencyRelationship, error)
	FindAll(ctx context.Context) ([]models.CompetencyRelationship, error)
	ExistsByEdge(ctx context.Context, originID, destinationID uuid.UUID, relationshipType models.RelationshipType) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContributionNotifier publishes contribution events.
type ContributionNotifier interface {
	Publish(ctx context.Context, event models.ContributionEvent)
}

// RelationshipService wraps the relationship repository with business-rule validation.
type RelationshipService struct {
	repo     RelationshipRepo
	notifier ContributionNotifier
}

// NewRelationshipService creates a new RelationshipService instance.
// notifier may be nil to disable contribution events.
func NewRelationshipService(repo RelationshipRepo, notifier ContributionNotifier) *RelationshipService {
	return &RelationshipService{repo: repo, notifier: notifier}
}

// CreateRelationship asserts a new directed edge between two distinct competencies.
func (svc *RelationshipService) CreateRelationship(ctx context.Context, data models.CreateCompetencyRelationshipInput) (*models.CompetencyRelationship, error) {
	if data.OriginID == data.DestinationID {
		return nil, ErrSelfRelationship
	}

	exists, err := svc.repo.ExistsByEdge(ctx, data.OriginID, data.DestinationID, data.RelationshipType)
	if err != nil {
		logger.Log.Errorw("failed to check relationship exists", "origin", data.OriginID, "destination", data.DestinationID, "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrRelationshipExists
	}

	relationship, err := svc.repo.Create(ctx, data)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrMissingReference
		}
		logger.Log.Errorw("failed to create relationship", "origin", data.OriginID, "destination", data.DestinationID, "err", err)
		return nil, err
	}

	if svc.notifier != nil {
		svc.notifier.Publish(ctx, models.ContributionEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			UserID:    relationship.UserID.String(),
			Kind:      "relationship",
			EntityID:  relationship.ID.String(),
		})
	}

	return relationship, nil
}

// GetRelationshipByID returns the relationship with the given id or ErrRelationshipNotFound.
func (svc *RelationshipService) GetRelationshipByID(ctx context.Context, id uuid.UUID) (*models.CompetencyRelationship, error) {
	relationship, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get relationship", "id", id, "err", err)
		return nil, err
	}
	if relationship == nil {
		return nil, ErrRelationshipNotFound
	}
	return relationship, nil
}

// GetRelationshipsByOriginID returns all relationships starting at the given competency.
func (svc *RelationshipService) GetRelationshipsByOriginID(ctx context.Context, originID uuid.UUID) ([]models.CompetencyRelationship, error) {
	return svc.repo.FindByOriginID(ctx, originID)
}

// GetRelationshipsByDestinationID returns all relationships ending at the given competency.
func (svc *RelationshipService) GetRelationshipsByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]models.CompetencyRelationship, error) {
	return svc.repo.FindByDestinationID(ctx, destinationID)
}

// GetAllRelationships returns all relationships, newest first.
func (svc *RelationshipService) GetAllRelationships(ctx context.Context) ([]models.CompetencyRelationship, error) {
	return svc.repo.FindAll(ctx)
}

// DeleteRelationship removes an existing relationship.
func (svc *RelationshipService) DeleteRelationship(ctx context.Context, id uuid.UUID) error {
	if _, err := svc.GetRelationshipByID(ctx, id); err != nil {
		return err
	}

	if err := svc.repo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete relationship", "id", id, "err", err)
		return err
	}
	return nil
}
