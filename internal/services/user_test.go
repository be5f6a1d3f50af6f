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

func TestUserService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockUserRepo(ctrl)
	svc := services.NewUserService(mockRepo)

	tests := []struct {
		name      string
		input     models.CreateUserInput
		existing  *models.User
		lookupErr error
		createErr error
		wantErr   error
	}{
		{
			name:  "successful creation",
			input: models.CreateUserInput{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser},
		},
		{
			name:     "email already exists",
			input:    models.CreateUserInput{Name: "Bob", Email: "bob@example.com"},
			existing: &models.User{ID: uuid.New(), Email: "bob@example.com"},
			wantErr:  services.ErrEmailAlreadyExists,
		},
		{
			name:      "lookup error",
			input:     models.CreateUserInput{Name: "Eve", Email: "eve@example.com"},
			lookupErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "lost unique race maps to conflict",
			input:     models.CreateUserInput{Name: "Carol", Email: "carol@example.com"},
			createErr: &pgconn.PgError{Code: "23505"},
			wantErr:   services.ErrEmailAlreadyExists,
		},
		{
			name:      "create error",
			input:     models.CreateUserInput{Name: "Dave", Email: "dave@example.com"},
			createErr: errors.New("insert failed"),
			wantErr:   errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				FindByEmail(gomock.Any(), tt.input.Email).
				Return(tt.existing, tt.lookupErr)

			if tt.existing == nil && tt.lookupErr == nil {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, data models.CreateUserInput) (*models.User, error) {
						assert.Equal(t, models.RoleUser, data.Role)
						if tt.createErr != nil {
							return nil, tt.createErr
						}
						return &models.User{ID: uuid.New(), Name: data.Name, Email: data.Email, Role: data.Role}, nil
					})
			}

			user, err := svc.CreateUser(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Email, user.Email)
			}
		})
	}
}

func TestUserService_GetUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockUserRepo(ctrl)
	svc := services.NewUserService(mockRepo)

	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)

		user, err := svc.GetUserByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		user, err := svc.GetUserByID(context.Background(), id)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("repo error", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("db error"))

		_, err := svc.GetUserByID(context.Background(), id)
		assert.EqualError(t, err, "db error")
	})
}

func TestUserService_GetUserByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockUserRepo(ctrl)
	svc := services.NewUserService(mockRepo)

	// Absence is not an error for secondary-key lookups.
	mockRepo.EXPECT().FindByEmail(gomock.Any(), "missing@example.com").Return(nil, nil)

	user, err := svc.GetUserByEmail(context.Background(), "missing@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockUserRepo(ctrl)
	svc := services.NewUserService(mockRepo)

	id := uuid.New()
	newName := "Renamed"

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), id, models.UpdateUserInput{Name: &newName}).
			Return(&models.User{ID: id, Name: newName}, nil)

		user, err := svc.UpdateUser(context.Background(), id, models.UpdateUserInput{Name: &newName})
		assert.NoError(t, err)
		assert.Equal(t, newName, user.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.UpdateUser(context.Background(), id, models.UpdateUserInput{Name: &newName})
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("duplicate email on update", func(t *testing.T) {
		email := "taken@example.com"
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), id, models.UpdateUserInput{Email: &email}).
			Return(nil, &pgconn.PgError{Code: "23505"})

		_, err := svc.UpdateUser(context.Background(), id, models.UpdateUserInput{Email: &email})
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := services.NewMockUserRepo(ctrl)
	svc := services.NewUserService(mockRepo)

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.DeleteUser(context.Background(), id))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), id), services.ErrUserNotFound)
	})

	t.Run("still referenced", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), id).Return(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, svc.DeleteUser(context.Background(), id), services.ErrStillReferenced)
	})
}
