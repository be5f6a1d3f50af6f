package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/models"
)

// UserActionService defines the user operations the local session needs.
type UserActionService interface {
	CreateUser(ctx context.Context, data models.CreateUserInput) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// CompetencyActionService defines the competency operations the local session needs.
type CompetencyActionService interface {
	GetRandomCompetencies(ctx context.Context, count int) ([]models.Competency, error)
}

// ResourceActionService defines the learning-resource operations the local session needs.
type ResourceActionService interface {
	GetRandomResources(ctx context.Context, count int) ([]models.LearningResource, error)
}

// RelationshipActionService defines the relationship operations the local session needs.
type RelationshipActionService interface {
	CreateRelationship(ctx context.Context, data models.CreateCompetencyRelationshipInput) (*models.CompetencyRelationship, error)
	DeleteRelationship(ctx context.Context, id uuid.UUID) error
}

// LinkActionService defines the resource-link operations the local session needs.
type LinkActionService interface {
	CreateLink(ctx context.Context, data models.CreateCompetencyResourceLinkInput) (*models.CompetencyResourceLink, error)
	DeleteLink(ctx context.Context, id uuid.UUID) error
}

// LocalActions implements Actions directly on top of the service layer.
type LocalActions struct {
	users         UserActionService
	competencies  CompetencyActionService
	resources     ResourceActionService
	relationships RelationshipActionService
	links         LinkActionService
}

// NewLocalActions creates a service-backed Actions implementation.
func NewLocalActions(
	users UserActionService,
	competencies CompetencyActionService,
	resources ResourceActionService,
	relationships RelationshipActionService,
	links LinkActionService,
) *LocalActions {
	return &LocalActions{
		users:         users,
		competencies:  competencies,
		resources:     resources,
		relationships: relationships,
		links:         links,
	}
}

// DemoUser returns the demo user, creating it on first call. A lost
// create race against a concurrent session resolves by re-reading.
func (a *LocalActions) DemoUser(ctx context.Context) Result[*models.User] {
	user, err := a.users.GetUserByEmail(ctx, DemoUserEmail)
	if err != nil {
		return wrap[*models.User](nil, err)
	}
	if user != nil {
		return wrap(user, nil)
	}
	user, err = a.users.CreateUser(ctx, models.CreateUserInput{
		Name:  DemoUserName,
		Email: DemoUserEmail,
		Role:  models.RoleUser,
	})
	if err != nil {
		if existing, lookupErr := a.users.GetUserByEmail(ctx, DemoUserEmail); lookupErr == nil && existing != nil {
			return wrap(existing, nil)
		}
		return wrap[*models.User](nil, err)
	}
	return wrap(user, nil)
}

func (a *LocalActions) RandomCompetencies(ctx context.Context, count int) Result[[]models.Competency] {
	return wrap(a.competencies.GetRandomCompetencies(ctx, count))
}

func (a *LocalActions) RandomLearningResource(ctx context.Context) Result[*models.LearningResource] {
	resources, err := a.resources.GetRandomResources(ctx, 1)
	if err != nil {
		return wrap[*models.LearningResource](nil, err)
	}
	if len(resources) == 0 {
		return wrap[*models.LearningResource](nil, nil)
	}
	return wrap(&resources[0], nil)
}

func (a *LocalActions) AssertRelationship(ctx context.Context, form RelationshipForm) Result[*models.CompetencyRelationship] {
	relType := models.RelationshipType(form.RelationshipType)
	switch relType {
	case models.RelationshipAssumes, models.RelationshipExtends, models.RelationshipMatches:
	default:
		return failure[*models.CompetencyRelationship]("relationshipType must be one of ASSUMES, EXTENDS, MATCHES")
	}
	originID, err := uuid.Parse(form.OriginID)
	if err != nil {
		return failure[*models.CompetencyRelationship]("originId must be a valid id")
	}
	destinationID, err := uuid.Parse(form.DestinationID)
	if err != nil {
		return failure[*models.CompetencyRelationship]("destinationId must be a valid id")
	}
	userID, err := uuid.Parse(form.UserID)
	if err != nil {
		return failure[*models.CompetencyRelationship]("userId must be a valid id")
	}
	return wrap(a.relationships.CreateRelationship(ctx, models.CreateCompetencyRelationshipInput{
		RelationshipType: relType,
		OriginID:         originID,
		DestinationID:    destinationID,
		UserID:           userID,
	}))
}

func (a *LocalActions) RetractRelationship(ctx context.Context, id string) Result[struct{}] {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return failure[struct{}]("id must be a valid id")
	}
	return wrap(struct{}{}, a.relationships.DeleteRelationship(ctx, parsed))
}

func (a *LocalActions) AssertResourceLink(ctx context.Context, form ResourceLinkForm) Result[*models.CompetencyResourceLink] {
	matchType := models.MatchType(form.MatchType)
	switch matchType {
	case models.MatchUnrelated, models.MatchWeak, models.MatchGoodFit, models.MatchPerfectMatch:
	default:
		return failure[*models.CompetencyResourceLink]("matchType must be one of UNRELATED, WEAK, GOOD_FIT, PERFECT_MATCH")
	}
	competencyID, err := uuid.Parse(form.CompetencyID)
	if err != nil {
		return failure[*models.CompetencyResourceLink]("competencyId must be a valid id")
	}
	resourceID, err := uuid.Parse(form.ResourceID)
	if err != nil {
		return failure[*models.CompetencyResourceLink]("resourceId must be a valid id")
	}
	userID, err := uuid.Parse(form.UserID)
	if err != nil {
		return failure[*models.CompetencyResourceLink]("userId must be a valid id")
	}
	return wrap(a.links.CreateLink(ctx, models.CreateCompetencyResourceLinkInput{
		CompetencyID: competencyID,
		ResourceID:   resourceID,
		UserID:       userID,
		MatchType:    matchType,
	}))
}

func (a *LocalActions) RetractResourceLink(ctx context.Context, id string) Result[struct{}] {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return failure[struct{}]("id must be a valid id")
	}
	return wrap(struct{}{}, a.links.DeleteLink(ctx, parsed))
}
