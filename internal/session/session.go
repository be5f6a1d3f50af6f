// Package session exposes the benchmarking-session actions behind one
// interface with interchangeable local and remote implementations.
package session

import (
	"context"

	"github.com/tum-cit/memo-bench/internal/models"
)

// Demo user identity used when a session starts without authentication.
const (
	DemoUserName  = "Demo User"
	DemoUserEmail = "demo@memo.local"
)

// Result is the tagged outcome of a session action. Either Success is true
// and Data carries the payload, or Success is false and Error carries a
// human-readable message.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// wrap converts a (value, error) pair into a Result. Every action funnels
// through here so no error type ever crosses the session boundary.
func wrap[T any](data T, err error) Result[T] {
	if err != nil {
		return Result[T]{Error: err.Error()}
	}
	return Result[T]{Success: true, Data: data}
}

// failure builds a failed Result from a validation message.
func failure[T any](msg string) Result[T] {
	return Result[T]{Error: msg}
}

// RelationshipForm is the string-typed payload for asserting a relationship.
type RelationshipForm struct {
	RelationshipType string
	OriginID         string
	DestinationID    string
	UserID           string
}

// ResourceLinkForm is the string-typed payload for asserting a resource link.
type ResourceLinkForm struct {
	CompetencyID string
	ResourceID   string
	UserID       string
	MatchType    string
}

// Actions is the contract a benchmarking session depends on. Presentation
// code holds this interface and never learns whether the data lives in the
// local database or behind a remote API.
type Actions interface {
	// DemoUser returns the demo user, creating it on first call.
	DemoUser(ctx context.Context) Result[*models.User]

	// RandomCompetencies returns count distinct random competencies.
	RandomCompetencies(ctx context.Context, count int) Result[[]models.Competency]

	// RandomLearningResource returns one random learning resource, nil when
	// none exist.
	RandomLearningResource(ctx context.Context) Result[*models.LearningResource]

	// AssertRelationship records a typed edge between two competencies.
	AssertRelationship(ctx context.Context, form RelationshipForm) Result[*models.CompetencyRelationship]

	// RetractRelationship removes a previously asserted relationship.
	RetractRelationship(ctx context.Context, id string) Result[struct{}]

	// AssertResourceLink records a competency-to-resource association.
	AssertResourceLink(ctx context.Context, form ResourceLinkForm) Result[*models.CompetencyResourceLink]

	// RetractResourceLink removes a previously asserted resource link.
	RetractResourceLink(ctx context.Context, id string) Result[struct{}]
}
