package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchType classifies how well a learning resource fits a competency.
type MatchType string

const (
	MatchUnrelated    MatchType = "UNRELATED"
	MatchWeak         MatchType = "WEAK"
	MatchGoodFit      MatchType = "GOOD_FIT"
	MatchPerfectMatch MatchType = "PERFECT_MATCH"
)

// CompetencyResourceLink associates a competency with a learning resource,
// asserted by a user. Links are immutable once created.
type CompetencyResourceLink struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CompetencyID uuid.UUID `json:"competencyId" db:"competency_id"`
	ResourceID   uuid.UUID `json:"resourceId" db:"resource_id"`
	UserID       uuid.UUID `json:"userId" db:"user_id"`
	MatchType    MatchType `json:"matchType" db:"match_type"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// CreateCompetencyResourceLinkInput holds the fields accepted when asserting a link.
type CreateCompetencyResourceLinkInput struct {
	CompetencyID uuid.UUID
	ResourceID   uuid.UUID
	UserID       uuid.UUID
	MatchType    MatchType
}
