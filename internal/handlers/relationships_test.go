package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
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

func TestCreateRelationshipHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	originID := uuid.New()
	destinationID := uuid.New()
	userID := uuid.New()

	validBody := fmt.Sprintf(
		`{"relationshipType":"ASSUMES","originId":"%s","destinationId":"%s","userId":"%s"}`,
		originID, destinationID, userID)

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRelationshipCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: validBody,
			mockSetup: func(m *MockRelationshipCreator) {
				m.EXPECT().
					CreateRelationship(gomock.Any(), models.CreateCompetencyRelationshipInput{
						RelationshipType: models.RelationshipAssumes,
						OriginID:         originID,
						DestinationID:    destinationID,
						UserID:           userID,
					}).
					Return(&models.CompetencyRelationship{ID: uuid.New()}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid type",
			body:         fmt.Sprintf(`{"relationshipType":"IMPLIES","originId":"%s","destinationId":"%s","userId":"%s"}`, originID, destinationID, userID),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid relationship type",
		},
		{
			name:         "invalid origin id",
			body:         fmt.Sprintf(`{"relationshipType":"EXTENDS","originId":"nope","destinationId":"%s","userId":"%s"}`, destinationID, userID),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid origin id",
		},
		{
			name:         "invalid destination id",
			body:         fmt.Sprintf(`{"relationshipType":"EXTENDS","originId":"%s","destinationId":"","userId":"%s"}`, originID, userID),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid destination id",
		},
		{
			name:         "invalid user id",
			body:         fmt.Sprintf(`{"relationshipType":"MATCHES","originId":"%s","destinationId":"%s","userId":"42"}`, originID, destinationID),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid user id",
		},
		{
			name: "self relationship",
			body: fmt.Sprintf(`{"relationshipType":"ASSUMES","originId":"%s","destinationId":"%s","userId":"%s"}`, originID, originID, userID),
			mockSetup: func(m *MockRelationshipCreator) {
				m.EXPECT().
					CreateRelationship(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrSelfRelationship)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Cannot create relationship to itself",
		},
		{
			name: "duplicate edge",
			body: validBody,
			mockSetup: func(m *MockRelationshipCreator) {
				m.EXPECT().
					CreateRelationship(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrRelationshipExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "Relationship already exists between these competencies with this type",
		},
		{
			name: "missing referenced row",
			body: validBody,
			mockSetup: func(m *MockRelationshipCreator) {
				m.EXPECT().
					CreateRelationship(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrMissingReference)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Referenced competency or user does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRelationshipCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}
			handler := NewCreateRelationshipHandler(mockSvc)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/competency-relationships", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}

func TestRelationshipsByOriginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRelationshipGetter(ctrl)

	r := chi.NewRouter()
	r.Get("/competency-relationships/by-origin/{id}", NewRelationshipsByOriginHandler(mockSvc))

	t.Run("lists outgoing edges", func(t *testing.T) {
		originID := uuid.New()
		mockSvc.EXPECT().
			GetRelationshipsByOriginID(gomock.Any(), originID).
			Return([]models.CompetencyRelationship{{ID: uuid.New(), OriginID: originID}}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competency-relationships/by-origin/"+originID.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RelationshipsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Relationships, 1)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competency-relationships/by-origin/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid origin id", resp.Error)
	})
}

func TestRelationshipsByDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRelationshipGetter(ctrl)

	r := chi.NewRouter()
	r.Get("/competency-relationships/by-destination/{id}", NewRelationshipsByDestinationHandler(mockSvc))

	t.Run("empty list is a success", func(t *testing.T) {
		destinationID := uuid.New()
		mockSvc.EXPECT().
			GetRelationshipsByDestinationID(gomock.Any(), destinationID).
			Return([]models.CompetencyRelationship{}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competency-relationships/by-destination/"+destinationID.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RelationshipsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Relationships)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competency-relationships/by-destination/xyz", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid destination id", resp.Error)
	})
}

func TestDeleteRelationshipHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRelationshipDeleter(ctrl)

	r := chi.NewRouter()
	r.Delete("/competency-relationships/{id}", NewDeleteRelationshipHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mockSvc.EXPECT().DeleteRelationship(gomock.Any(), id).Return(nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/competency-relationships/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp StatusResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockSvc.EXPECT().DeleteRelationship(gomock.Any(), id).Return(services.ErrRelationshipNotFound)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/competency-relationships/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
