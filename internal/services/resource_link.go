package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/models"
)

// ErrLinkNotFound is returned when a resource link lookup by id fails.
var ErrLinkNotFound = errors.New("Competency resource link not found")

// ResourceLinkRepo defines the storage operations the link service relies on.
type ResourceLinkRepo interface {
	Create(ctx context.Context, data models.CreateCompetencyResourceLinkInput) (*models.CompetencyResourceLink, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CompetencyResourceLink, error)
	FindByCompetencyID(ctx context.Context, competencyID uuid.UUID) ([]models.CompetencyResourceLink, error)
	FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]models.CompetencyResourceLink, error)
	FindAll(ctx context.Context) ([]models.CompetencyResourceLink, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceLinkService wraps the link repository with business-rule validation.
type ResourceLinkService struct {
	repo     ResourceLinkRepo
	notifier ContributionNotifier
}

// NewResourceLinkService creates a new ResourceLinkService instance.
// notifier may be nil to disable contribution events.
func NewResourceLinkService(repo ResourceLinkRepo, notifier ContributionNotifier) *ResourceLinkService {
	return &ResourceLinkService{repo: repo, notifier: notifier}
}

// CreateLink asserts a new competency-resource association.
func (svc *ResourceLinkService) CreateLink(ctx context.Context, data models.CreateCompetencyResourceLinkInput) (*models.CompetencyResourceLink, error) {
	link, err := svc.repo.Create(ctx, data)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrMissingReference
		}
		logger.Log.Errorw("failed to create resource link", "competency", data.CompetencyID, "resource", data.ResourceID, "err", err)
		return nil, err
	}

	if svc.notifier != nil {
		svc.notifier.Publish(ctx, models.ContributionEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			UserID:    link.UserID.String(),
			Kind:      "resource_link",
			EntityID:  link.ID.String(),
		})
	}

	return link, nil
}

// GetLinkByID returns the link with the given id or ErrLinkNotFound.
func (svc *ResourceLinkService) GetLinkByID(ctx context.Context, id uuid.UUID) (*models.CompetencyResourceLink, error) {
	link, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get resource link", "id", id, "err", err)
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

// GetLinksByCompetencyID returns all links for the given competency.
func (svc *ResourceLinkService) GetLinksByCompetencyID(ctx context.Context, competencyID uuid.UUID) ([]models.CompetencyResourceLink, error) {
	return svc.repo.FindByCompetencyID(ctx, competencyID)
}

// GetLinksByResourceID returns all links for the given resource.
func (svc *ResourceLinkService) GetLinksByResourceID(ctx context.Context, resourceID uuid.UUID) ([]models.CompetencyResourceLink, error) {
	return svc.repo.FindByResourceID(ctx, resourceID)
}

// GetAllLinks returns all links, newest first.
func (svc *ResourceLinkService) GetAllLinks(ctx context.Context) ([]models.CompetencyResourceLink, error) {
	return svc.repo.FindAll(ctx)
}

// DeleteLink removes an existing link.
func (svc *ResourceLinkService) DeleteLink(ctx context.Context, id uuid.UUID) error {
	if _, err := svc.GetLinkByID(ctx, id); err != nil {
		return err
	}

	if err := svc.repo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete resource link", "id", id, "err", err)
		return err
	}
	return nil
}
