package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/models"
)

// Error variables
var (
	ErrResourceNotFound = errors.New("Learning resource not found")
	ErrURLAlreadyExists = errors.New("Learning resource with this URL already exists")
)

// LearningResourceRepo defines the storage operations the resource service relies on.
type LearningResourceRepo interface {
	Create(ctx context.Context, data models.CreateLearningResourceInput) (*models.LearningResource, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.LearningResource, error)
	FindByURL(ctx context.Context, url string) (*models.LearningResource, error)
	FindAll(ctx context.Context) ([]models.LearningResource, error)
	FindRandom(ctx context.Context, count int) ([]models.LearningResource, error)
	Update(ctx context.Context, id uuid.UUID, data models.UpdateLearningResourceInput) (*models.LearningResource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LearningResourceService wraps the resource repository with business-rule validation.
type LearningResourceService struct {
	repo LearningResourceRepo
}

// NewLearningResourceService creates a new LearningResourceService instance.
func NewLearningResourceService(repo LearningResourceRepo) *LearningResourceService {
	return &LearningResourceService{repo: repo}
}

// CreateResource creates a new learning resource, rejecting duplicate URLs.
func (svc *LearningResourceService) CreateResource(ctx context.Context, data models.CreateLearningResourceInput) (*models.LearningResource, error) {
	existing, err := svc.repo.FindByURL(ctx, data.URL)
	if err != nil {
		logger.Log.Errorw("failed to check resource exists", "url", data.URL, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrURLAlreadyExists
	}

	resource, err := svc.repo.Create(ctx, data)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the check-then-create race against a concurrent create.
			return nil, ErrURLAlreadyExists
		}
		logger.Log.Errorw("failed to create resource", "url", data.URL, "err", err)
		return nil, err
	}
	return resource, nil
}

// GetResourceByID returns the resource with the given id or ErrResourceNotFound.
func (svc *LearningResourceService) GetResourceByID(ctx context.Context, id uuid.UUID) (*models.LearningResource, error) {
	resource, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get resource", "id", id, "err", err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}
	return resource, nil
}

// GetResourceByURL returns the resource with the given url, or nil when absent.
func (svc *LearningResourceService) GetResourceByURL(ctx context.Context, url string) (*models.LearningResource, error) {
	return svc.repo.FindByURL(ctx, url)
}

// GetAllResources returns all learning resources, newest first.
func (svc *LearningResourceService) GetAllResources(ctx context.Context) ([]models.LearningResource, error) {
	return svc.repo.FindAll(ctx)
}

// GetRandomResources returns up to count resources selected uniformly at random.
func (svc *LearningResourceService) GetRandomResources(ctx context.Context, count int) ([]models.LearningResource, error) {
	if count <= 0 {
		return []models.LearningResource{}, nil
	}
	return svc.repo.FindRandom(ctx, count)
}

// UpdateResource applies a partial update to an existing resource.
func (svc *LearningResourceService) UpdateResource(ctx context.Context, id uuid.UUID, data models.UpdateLearningResourceInput) (*models.LearningResource, error) {
	if _, err := svc.GetResourceByID(ctx, id); err != nil {
		return nil, err
	}

	resource, err := svc.repo.Update(ctx, id, data)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrURLAlreadyExists
		}
		logger.Log.Errorw("failed to update resource", "id", id, "err", err)
		return nil, err
	}
	return resource, nil
}

// DeleteResource removes an existing resource.
func (svc *LearningResourceService) DeleteResource(ctx context.Context, id uuid.UUID) error {
	if _, err := svc.GetResourceByID(ctx, id); err != nil {
		return err
	}

	if err := svc.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return ErrStillReferenced
		}
		logger.Log.Errorw("failed to delete resource", "id", id, "err", err)
		return err
	}
	return nil
}
