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
	ErrCompetencyNotFound    = errors.New("Competency not found")
	ErrNotEnoughCompetencies = errors.New("Not enough competencies in database. Run db:seed first.")
)

// CompetencyRepo defines the storage operations the competency service relies on.
type CompetencyRepo interface {
	Create(ctx context.Context, data models.CreateCompetencyInput) (*models.Competency, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Competency, error)
	FindByTitle(ctx context.Context, title string) (*models.Competency, error)
	FindAll(ctx context.Context) ([]models.Competency, error)
	FindRandom(ctx context.Context, count int) ([]models.Competency, error)
	Update(ctx context.Context, id uuid.UUID, data models.UpdateCompetencyInput) (*models.Competency, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompetencyService wraps the competency repository with business-rule validation.
type CompetencyService struct {
	repo CompetencyRepo
}

// NewCompetencyService creates a new CompetencyService instance.
func NewCompetencyService(repo CompetencyRepo) *CompetencyService {
	return &CompetencyService{repo: repo}
}

// CreateCompetency creates a new competency.
func (svc *CompetencyService) CreateCompetency(ctx context.Context, data models.CreateCompetencyInput) (*models.Competency, error) {
	competency, err := svc.repo.Create(ctx, data)
	if err != nil {
		logger.Log.Errorw("failed to create competency", "title", data.Title, "err", err)
		return nil, err
	}
	return competency, nil
}

// GetCompetencyByID returns the competency with the given id or ErrCompetencyNotFound.
func (svc *CompetencyService) GetCompetencyByID(ctx context.Context, id uuid.UUID) (*models.Competency, error) {
	competency, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get competency", "id", id, "err", err)
		return nil, err
	}
	if competency == nil {
		return nil, ErrCompetencyNotFound
	}
	return competency, nil
}

// GetCompetencyByTitle returns the competency with the given title, or nil when absent.
func (svc *CompetencyService) GetCompetencyByTitle(ctx context.Context, title string) (*models.Competency, error) {
	return svc.repo.FindByTitle(ctx, title)
}

// GetAllCompetencies returns all competencies, newest first.
func (svc *CompetencyService) GetAllCompetencies(ctx context.Context) ([]models.Competency, error) {
	return svc.repo.FindAll(ctx)
}

// GetRandomCompetencies returns count distinct competencies selected uniformly
// at random. It fails with ErrNotEnoughCompetencies rather than returning a
// short list when the store holds fewer rows than requested.
func (svc *CompetencyService) GetRandomCompetencies(ctx context.Context, count int) ([]models.Competency, error) {
	if count <= 0 {
		return []models.Competency{}, nil
	}

	competencies, err := svc.repo.FindRandom(ctx, count)
	if err != nil {
		logger.Log.Errorw("failed to get random competencies", "count", count, "err", err)
		return nil, err
	}
	if len(competencies) < count {
		return nil, ErrNotEnoughCompetencies
	}
	return competencies, nil
}

// UpdateCompetency applies a partial update to an existing competency.
func (svc *CompetencyService) UpdateCompetency(ctx context.Context, id uuid.UUID, data models.UpdateCompetencyInput) (*models.Competency, error) {
	if _, err := svc.GetCompetencyByID(ctx, id); err != nil {
		return nil, err
	}

	competency, err := svc.repo.Update(ctx, id, data)
	if err != nil {
		logger.Log.Errorw("failed to update competency", "id", id, "err", err)
		return nil, err
	}
	return competency, nil
}

// DeleteCompetency removes an existing competency.
func (svc *CompetencyService) DeleteCompetency(ctx context.Context, id uuid.UUID) error {
	if _, err := svc.GetCompetencyByID(ctx, id); err != nil {
		return err
	}

	if err := svc.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return ErrStillReferenced
		}
		logger.Log.Errorw("failed to delete competency", "id", id, "err", err)
		return err
	}
	return nil
}
