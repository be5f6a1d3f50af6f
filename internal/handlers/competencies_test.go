package handlers

import (
	"bytes"
	"encoding/json"
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

func TestCreateCompetencyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCompetencyCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success with description",
			body: `{"title":"Polymorphism","description":"Parametric and ad-hoc polymorphism."}`,
			mockSetup: func(m *MockCompetencyCreator) {
				m.EXPECT().
					CreateCompetency(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, data models.CreateCompetencyInput) (*models.Competency, error) {
						assert.Equal(t, "Polymorphism", data.Title)
						assert.NotNil(t, data.Description)
						return &models.Competency{ID: uuid.New(), Title: data.Title, Description: data.Description}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "success without description",
			body: `{"title":"Recursion"}`,
			mockSetup: func(m *MockCompetencyCreator) {
				m.EXPECT().
					CreateCompetency(gomock.Any(), gomock.Any()).
					Return(&models.Competency{ID: uuid.New(), Title: "Recursion"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "blank title",
			body:         `{"title":"   "}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCompetencyCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}
			handler := NewCreateCompetencyHandler(mockSvc)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/competencies", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}

func TestRandomCompetenciesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompetencyGetter(ctrl)
	handler := NewRandomCompetenciesHandler(mockSvc)

	t.Run("defaults to two", func(t *testing.T) {
		mockSvc.EXPECT().
			GetRandomCompetencies(gomock.Any(), 2).
			Return([]models.Competency{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/competencies/random", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp CompetenciesResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Competencies, 2)
	})

	t.Run("explicit count", func(t *testing.T) {
		mockSvc.EXPECT().
			GetRandomCompetencies(gomock.Any(), 4).
			Return([]models.Competency{{}, {}, {}, {}}, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/competencies/random?count=4", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not enough competencies", func(t *testing.T) {
		mockSvc.EXPECT().
			GetRandomCompetencies(gomock.Any(), 2).
			Return(nil, services.ErrNotEnoughCompetencies)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/competencies/random", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Not enough competencies in database. Run db:seed first.", resp.Error)
	})

	t.Run("non-numeric count", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/competencies/random?count=two", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetCompetencyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompetencyGetter(ctrl)
	r := chi.NewRouter()
	r.Get("/api/competencies/{id}", NewGetCompetencyHandler(mockSvc))

	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetCompetencyByID(gomock.Any(), id).Return(nil, services.ErrCompetencyNotFound)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/competencies/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteCompetencyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompetencyDeleter(ctrl)
	r := chi.NewRouter()
	r.Delete("/api/competencies/{id}", NewDeleteCompetencyHandler(mockSvc))

	id := uuid.New()

	t.Run("still referenced", func(t *testing.T) {
		mockSvc.EXPECT().DeleteCompetency(gomock.Any(), id).Return(services.ErrStillReferenced)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/competencies/"+id.String(), nil))

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Cannot delete: still referenced by existing contributions", resp.Error)
	})
}
