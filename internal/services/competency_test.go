package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

func TestCompetencyService_GetRandomCompetencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockCompetencyRepo(ctrl)
	svc := services.NewCompetencyService(mockRepo)

	tests := []struct {
		name    string
		count   int
		rows    []models.Competency
		repoErr error
		wantErr error
		wantLen int
	}{
		{
			name:    "two of five",
			count:   2,
			rows:    []models.Competency{{ID: uuid.New()}, {ID: uuid.New()}},
			wantLen: 2,
		},
		{
			name:    "not enough rows",
			count:   3,
			rows:    []models.Competency{{ID: uuid.New()}},
			wantErr: services.ErrNotEnoughCompetencies,
		},
		{
			name:    "zero count short-circuits",
			count:   0,
			wantLen: 0,
		},
		{
			name:    "negative count short-circuits",
			count:   -1,
			wantLen: 0,
		},
		{
			name:    "repo error",
			count:   2,
			repoErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.count > 0 {
				mockRepo.EXPECT().FindRandom(gomock.Any(), tt.count).Return(tt.rows, tt.repoErr)
			}

			got, err := svc.GetRandomCompetencies(context.Background(), tt.count)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
		})
	}
}

func TestCompetencyService_GetCompetencyByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockCompetencyRepo(ctrl)
	svc := services.NewCompetencyService(mockRepo)

	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Competency{ID: id, Title: "Polymorphism"}, nil)

		c, err := svc.GetCompetencyByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, "Polymorphism", c.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.GetCompetencyByID(context.Background(), id)
		assert.ErrorIs(t, err, services.ErrCompetencyNotFound)
	})
}

func TestCompetencyService_GetCompetencyByTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockCompetencyRepo(ctrl)
	svc := services.NewCompetencyService(mockRepo)

	mockRepo.EXPECT().FindByTitle(gomock.Any(), "Unknown Title").Return(nil, nil)

	c, err := svc.GetCompetencyByTitle(context.Background(), "Unknown Title")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestCompetencyService_UpdateCompetency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockCompetencyRepo(ctrl)
	svc := services.NewCompetencyService(mockRepo)

	id := uuid.New()
	title := "Higher-Order Functions"

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Competency{ID: id}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), id, models.UpdateCompetencyInput{Title: &title}).
			Return(&models.Competency{ID: id, Title: title}, nil)

		c, err := svc.UpdateCompetency(context.Background(), id, models.UpdateCompetencyInput{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, title, c.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.UpdateCompetency(context.Background(), id, models.UpdateCompetencyInput{Title: &title})
		assert.ErrorIs(t, err, services.ErrCompetencyNotFound)
	})
}

func TestCompetencyService_DeleteCompetency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockCompetencyRepo(ctrl)
	svc := services.NewCompetencyService(mockRepo)

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Competency{ID: id}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.DeleteCompetency(context.Background(), id))
	})

	t.Run("still referenced by relationships", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Competency{ID: id}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), id).Return(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, svc.DeleteCompetency(context.Background(), id), services.ErrStillReferenced)
	})
}
