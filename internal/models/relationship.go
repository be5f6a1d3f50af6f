package models

import (
	"time"

	"github.com/google/uuid"
)

// RelationshipType classifies a directed edge between two competencies.
// ASSUMES = prerequisite, EXTENDS = builds on, MATCHES = equivalent.
type RelationshipType string

const (
	RelationshipAssumes RelationshipType = "ASSUMES"
	RelationshipExtends RelationshipType = "EXTENDS"
	RelationshipMatches RelationshipType = "MATCHES"
)

// CompetencyRelationship is a typed edge between two distinct competencies,
// asserted by a user. Relationships are immutable once created.
type CompetencyRelationship struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	RelationshipType RelationshipType `json:"relationshipType" db:"relationship_type"`
	OriginID         uuid.UUID        `json:"originId" db:"origin_id"`
	DestinationID    uuid.UUID        `json:"destinationId" db:"destination_id"`
	UserID           uuid.UUID        `json:"userId" db:"user_id"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
}

// CreateCompetencyRelationshipInput holds the fields accepted when asserting a relationship.
type CreateCompetencyRelationshipInput struct {
	RelationshipType RelationshipType
	OriginID         uuid.UUID
	DestinationID    uuid.UUID
	UserID           uuid.UUID
}
