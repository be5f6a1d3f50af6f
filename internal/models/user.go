package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole classifies a contributor account.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a contributor record in the database
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      UserRole  `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateUserInput holds the fields accepted when creating a user.
type CreateUserInput struct {
	Name  string
	Email string
	Role  UserRole // defaults to USER when empty
}

// UpdateUserInput holds optional fields for a partial user update.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *UserRole
}
