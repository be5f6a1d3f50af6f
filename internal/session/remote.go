package session

import (
	"context"

	"github.com/tum-cit/memo-bench/internal/client"
	"github.com/tum-cit/memo-bench/internal/models"
)

// RemoteAPI defines the subset of the HTTP client the remote session needs.
type RemoteAPI interface {
	CreateUser(ctx context.Context, req client.CreateUserRequest) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetRandomCompetencies(ctx context.Context, count int) ([]models.Competency, error)
	GetRandomLearningResources(ctx context.Context, count int) ([]models.LearningResource, error)
	CreateRelationship(ctx context.Context, req client.CreateRelationshipRequest) (*models.CompetencyRelationship, error)
	DeleteRelationship(ctx context.Context, id string) error
	CreateResourceLink(ctx context.Context, req client.CreateResourceLinkRequest) (*models.CompetencyResourceLink, error)
	DeleteResourceLink(ctx context.Context, id string) error
}

// RemoteActions implements Actions over the remote HTTP API.
type RemoteActions struct {
	api RemoteAPI
}

// NewRemoteActions creates an HTTP-backed Actions implementation.
func NewRemoteActions(api RemoteAPI) *RemoteActions {
	return &RemoteActions{api: api}
}

// DemoUser returns the demo user, creating it on first call. A lost
// create race against a concurrent session resolves by re-reading.
func (a *RemoteActions) DemoUser(ctx context.Context) Result[*models.User] {
	user, err := a.api.GetUserByEmail(ctx, DemoUserEmail)
	if err != nil {
		return wrap[*models.User](nil, err)
	}
	if user != nil {
		return wrap(user, nil)
	}
	user, err = a.api.CreateUser(ctx, client.CreateUserRequest{
		Name:  DemoUserName,
		Email: DemoUserEmail,
		Role:  string(models.RoleUser),
	})
	if err != nil {
		if existing, lookupErr := a.api.GetUserByEmail(ctx, DemoUserEmail); lookupErr == nil && existing != nil {
			return wrap(existing, nil)
		}
		return wrap[*models.User](nil, err)
	}
	return wrap(user, nil)
}

func (a *RemoteActions) RandomCompetencies(ctx context.Context, count int) Result[[]models.Competency] {
	return wrap(a.api.GetRandomCompetencies(ctx, count))
}

func (a *RemoteActions) RandomLearningResource(ctx context.Context) Result[*models.LearningResource] {
	resources, err := a.api.GetRandomLearningResources(ctx, 1)
	if err != nil {
		return wrap[*models.LearningResource](nil, err)
	}
	if len(resources) == 0 {
		return wrap[*models.LearningResource](nil, nil)
	}
	return wrap(&resources[0], nil)
}

func (a *RemoteActions) AssertRelationship(ctx context.Context, form RelationshipForm) Result[*models.CompetencyRelationship] {
	return wrap(a.api.CreateRelationship(ctx, client.CreateRelationshipRequest{
		RelationshipType: form.RelationshipType,
		OriginID:         form.OriginID,
		DestinationID:    form.DestinationID,
		UserID:           form.UserID,
	}))
}

func (a *RemoteActions) RetractRelationship(ctx context.Context, id string) Result[struct{}] {
	return wrap(struct{}{}, a.api.DeleteRelationship(ctx, id))
}

func (a *RemoteActions) AssertResourceLink(ctx context.Context, form ResourceLinkForm) Result[*models.CompetencyResourceLink] {
	return wrap(a.api.CreateResourceLink(ctx, client.CreateResourceLinkRequest{
		CompetencyID: form.CompetencyID,
		ResourceID:   form.ResourceID,
		UserID:       form.UserID,
		MatchType:    form.MatchType,
	}))
}

func (a *RemoteActions) RetractResourceLink(ctx context.Context, id string) Result[struct{}] {
	return wrap(struct{}{}, a.api.DeleteResourceLink(ctx, id))
}
