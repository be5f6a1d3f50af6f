package models

import (
	"time"

	"github.com/google/uuid"
)

// Competency is a node in the competency graph: a discrete, nameable skill.
type Competency struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateCompetencyInput holds the fields accepted when creating a competency.
type CreateCompetencyInput struct {
	Title       string
	Description *string
}

// UpdateCompetencyInput holds optional fields for a partial competency update.
type UpdateCompetencyInput struct {
	Title       *string
	Description *string
}
