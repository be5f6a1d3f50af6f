package models

import (
	"time"

	"github.com/google/uuid"
)

// LearningResource is an external content item identified by its URL.
type LearningResource struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateLearningResourceInput holds the fields accepted when creating a resource.
type CreateLearningResourceInput struct {
	Title string
	URL   string
}

// UpdateLearningResourceInput holds optional fields for a partial resource update.
type UpdateLearningResourceInput struct {
	Title *string
	URL   *string
}
