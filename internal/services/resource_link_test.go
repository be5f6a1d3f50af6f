package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

func TestResourceLinkService_CreateLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockResourceLinkRepo(ctrl)
	mockNotifier := services.NewMockContributionNotifier(ctrl)
	svc := services.NewResourceLinkService(mockRepo, mockNotifier)

	input := models.CreateCompetencyResourceLinkInput{
		CompetencyID: uuid.New(),
		ResourceID:   uuid.New(),
		UserID:       uuid.New(),
		MatchType:    models.MatchGoodFit,
	}

	t.Run("success publishes contribution event", func(t *testing.T) {
		created := &models.CompetencyResourceLink{
			ID:           uuid.New(),
			CompetencyID: input.CompetencyID,
			ResourceID:   input.ResourceID,
			UserID:       input.UserID,
			MatchType:    models.MatchGoodFit,
		}

		mockRepo.EXPECT().Create(gomock.Any(), input).Return(created, nil)
		mockNotifier.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event models.ContributionEvent) {
				assert.Equal(t, "resource_link", event.Kind)
				assert.Equal(t, created.ID.String(), event.EntityID)
			})

		got, err := svc.CreateLink(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("missing referenced row maps to ErrMissingReference", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), input).Return(nil, &pgconn.PgError{Code: "23503"})

		_, err := svc.CreateLink(context.Background(), input)
		assert.ErrorIs(t, err, services.ErrMissingReference)
	})
}

func TestResourceLinkService_GetLinkByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockResourceLinkRepo(ctrl)
	svc := services.NewResourceLinkService(mockRepo, nil)

	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.GetLinkByID(context.Background(), id)
		assert.ErrorIs(t, err, services.ErrLinkNotFound)
	})
}

func TestResourceLinkService_DeleteLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockResourceLinkRepo(ctrl)
	svc := services.NewResourceLinkService(mockRepo, nil)

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.CompetencyResourceLink{ID: id}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.DeleteLink(context.Background(), id))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		assert.ErrorIs(t, svc.DeleteLink(context.Background(), id), services.ErrLinkNotFound)
	})
}
