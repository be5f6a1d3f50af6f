package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"name":"Alice","email":"alice@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					CreateUser(gomock.Any(), models.CreateUserInput{Name: "Alice", Email: "alice@example.com"}).
					Return(&models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid json",
			body:         `{"name":`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name:         "blank name",
			body:         `{"name":"  ","email":"a@example.com"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Name and email are required",
		},
		{
			name:         "missing email",
			body:         `{"name":"Alice"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Name and email are required",
		},
		{
			name:         "invalid role",
			body:         `{"name":"Alice","email":"a@example.com","role":"ROOT"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid role",
		},
		{
			name: "duplicate email",
			body: `{"name":"Bob","email":"bob@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "User with this email already exists",
		},
		{
			name: "internal error is not leaked",
			body: `{"name":"Eve","email":"eve@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("pq: connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}
			handler := NewCreateUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedErr, resp.Error)
			} else {
				var resp UserResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.NotNil(t, resp.User)
			}
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	r := chi.NewRouter()
	r.Get("/api/users/{id}", NewGetUserHandler(mockSvc))

	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetUserByID(gomock.Any(), id).Return(nil, services.ErrUserNotFound)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id answers 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetUserByEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	handler := NewGetUserByEmailHandler(mockSvc)

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().
			GetUserByEmail(gomock.Any(), "demo@memo.local").
			Return(&models.User{ID: uuid.New(), Email: "demo@memo.local"}, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/by-email?email=demo@memo.local", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("absent answers 404 with envelope", func(t *testing.T) {
		mockSvc.EXPECT().GetUserByEmail(gomock.Any(), "missing@memo.local").Return(nil, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/by-email?email=missing@memo.local", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "User not found", resp.Error)
	})

	t.Run("missing email param", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/by-email", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	handler := NewListUsersHandler(mockSvc)

	mockSvc.EXPECT().GetAllUsers(gomock.Any()).Return([]models.User{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp UsersResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Users, 2)
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserUpdater(ctrl)
	r := chi.NewRouter()
	r.Put("/api/users/{id}", NewUpdateUserHandler(mockSvc))

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		name := "Renamed"
		mockSvc.EXPECT().
			UpdateUser(gomock.Any(), id, models.UpdateUserInput{Name: &name}).
			Return(&models.User{ID: id, Name: name}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/users/"+id.String(),
			bytes.NewBufferString(`{"name":"Renamed"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/users/"+id.String(),
			bytes.NewBufferString(`{"role":"ROOT"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserDeleter(ctrl)
	r := chi.NewRouter()
	r.Delete("/api/users/{id}", NewDeleteUserHandler(mockSvc))

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().DeleteUser(gomock.Any(), id).Return(nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/users/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp StatusResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("still referenced", func(t *testing.T) {
		mockSvc.EXPECT().DeleteUser(gomock.Any(), id).Return(services.ErrStillReferenced)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/users/"+id.String(), nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
