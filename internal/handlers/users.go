package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, data models.CreateUserInput) (*models.User, error)
}

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id uuid.UUID, data models.UpdateUserInput) (*models.User, error)
}

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// required: true
	// default: Demo User
	Name string `json:"name"`

	// Email, globally unique
	// required: true
	// default: demo@memo.local
	Email string `json:"email"`

	// Role, USER or ADMIN
	// default: USER
	Role string `json:"role,omitempty"`
}

// UpdateUserRequest represents the JSON body for a partial user update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// UserResponse represents a successful response carrying one user
// swagger:model UserResponse
type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// UsersResponse represents a successful response carrying a list of users
// swagger:model UsersResponse
type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}

var validRoles = map[string]struct{}{
	string(models.RoleUser):  {},
	string(models.RoleAdmin): {},
}

// NewCreateUserHandler returns an HTTP handler for creating a user.
// @Summary Create a user
// @Description Creates a new contributor account. Email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.UserResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
			failValidation(w, "Name and email are required")
			return
		}
		if req.Role != "" {
			if _, ok := validRoles[req.Role]; !ok {
				failValidation(w, "Invalid role")
				return
			}
		}

		user, err := svc.CreateUser(r.Context(), models.CreateUserInput{
			Name:  req.Name,
			Email: req.Email,
			Role:  models.UserRole(req.Role),
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, UserResponse{Success: true, User: user})
	}
}

// NewGetUserHandler returns an HTTP handler for fetching a user by id.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrUserNotFound)
			return
		}

		user, err := svc.GetUserByID(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, UserResponse{Success: true, User: user})
	}
}

// NewGetUserByEmailHandler returns an HTTP handler for the secondary-key lookup.
// A 404 here means "absent" and carries the failure envelope.
// @Summary Get a user by email
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/by-email [get]
func NewGetUserByEmailHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if strings.TrimSpace(email) == "" {
			failValidation(w, "Email is required")
			return
		}

		user, err := svc.GetUserByEmail(r.Context(), email)
		if err != nil {
			fail(w, err)
			return
		}
		if user == nil {
			fail(w, services.ErrUserNotFound)
			return
		}

		respondJSON(w, http.StatusOK, UserResponse{Success: true, User: user})
	}
}

// NewListUsersHandler returns an HTTP handler for listing all users.
// @Summary List users
// @Description Returns all users ordered by creation time, newest first.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Users"
// @Router /users [get]
func NewListUsersHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.GetAllUsers(r.Context())
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, UsersResponse{Success: true, Users: users})
	}
}

// NewUpdateUserHandler returns an HTTP handler for partially updating a user.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrUserNotFound)
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failValidation(w, "Invalid request body")
			return
		}

		var role *models.UserRole
		if req.Role != nil {
			if _, ok := validRoles[*req.Role]; !ok {
				failValidation(w, "Invalid role")
				return
			}
			v := models.UserRole(*req.Role)
			role = &v
		}

		user, err := svc.UpdateUser(r.Context(), id, models.UpdateUserInput{
			Name:  req.Name,
			Email: req.Email,
			Role:  role,
		})
		if err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, UserResponse{Success: true, User: user})
	}
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.StatusResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Still referenced"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			fail(w, services.ErrUserNotFound)
			return
		}

		if err := svc.DeleteUser(r.Context(), id); err != nil {
			fail(w, err)
			return
		}

		respondJSON(w, http.StatusOK, StatusResponse{Success: true})
	}
}
