package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

var (
	_ Actions = (*LocalActions)(nil)

	// The real service layer satisfies every consumer interface.
	_ UserActionService         = (*services.UserService)(nil)
	_ CompetencyActionService   = (*services.CompetencyService)(nil)
	_ ResourceActionService     = (*services.LearningResourceService)(nil)
	_ RelationshipActionService = (*services.RelationshipService)(nil)
	_ LinkActionService         = (*services.ResourceLinkService)(nil)
)

// --- Fake services ---

type fakeUserService struct {
	existing    *models.User
	createErr   error
	createCalls int
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.existing, nil
}

func (f *fakeUserService) CreateUser(ctx context.Context, data models.CreateUserInput) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.existing = &models.User{ID: uuid.New(), Name: data.Name, Email: data.Email, Role: data.Role}
	return f.existing, nil
}

type fakeCompetencyService struct {
	competencies []models.Competency
	err          error
}

func (f *fakeCompetencyService) GetRandomCompetencies(ctx context.Context, count int) ([]models.Competency, error) {
	if f.err != nil {
		return nil, f.err
	}
	if count > len(f.competencies) {
		count = len(f.competencies)
	}
	return f.competencies[:count], nil
}

type fakeResourceService struct {
	resources []models.LearningResource
}

func (f *fakeResourceService) GetRandomResources(ctx context.Context, count int) ([]models.LearningResource, error) {
	if count > len(f.resources) {
		count = len(f.resources)
	}
	return f.resources[:count], nil
}

type fakeRelationshipService struct {
	createErr error
	deletedID uuid.UUID
}

func (f *fakeRelationshipService) CreateRelationship(ctx context.Context, data models.CreateCompetencyRelationshipInput) (*models.CompetencyRelationship, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.CompetencyRelationship{
		ID:               uuid.New(),
		RelationshipType: data.RelationshipType,
		OriginID:         data.OriginID,
		DestinationID:    data.DestinationID,
		UserID:           data.UserID,
	}, nil
}

func (f *fakeRelationshipService) DeleteRelationship(ctx context.Context, id uuid.UUID) error {
	f.deletedID = id
	return nil
}

type fakeLinkService struct {
	createErr error
	deleteErr error
}

func (f *fakeLinkService) CreateLink(ctx context.Context, data models.CreateCompetencyResourceLinkInput) (*models.CompetencyResourceLink, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.CompetencyResourceLink{
		ID:           uuid.New(),
		CompetencyID: data.CompetencyID,
		ResourceID:   data.ResourceID,
		UserID:       data.UserID,
		MatchType:    data.MatchType,
	}, nil
}

func (f *fakeLinkService) DeleteLink(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

func newLocal(users *fakeUserService, competencies *fakeCompetencyService, resources *fakeResourceService, relationships *fakeRelationshipService, links *fakeLinkService) *LocalActions {
	if users == nil {
		users = &fakeUserService{}
	}
	if competencies == nil {
		competencies = &fakeCompetencyService{}
	}
	if resources == nil {
		resources = &fakeResourceService{}
	}
	if relationships == nil {
		relationships = &fakeRelationshipService{}
	}
	if links == nil {
		links = &fakeLinkService{}
	}
	return NewLocalActions(users, competencies, resources, relationships, links)
}

// --- Tests ---

func TestLocalActions_DemoUser(t *testing.T) {
	t.Run("creates on first call", func(t *testing.T) {
		users := &fakeUserService{}
		actions := newLocal(users, nil, nil, nil, nil)

		res := actions.DemoUser(context.Background())
		assert.True(t, res.Success)
		assert.Equal(t, DemoUserName, res.Data.Name)
		assert.Equal(t, DemoUserEmail, res.Data.Email)
		assert.Equal(t, models.RoleUser, res.Data.Role)
		assert.Equal(t, 1, users.createCalls)
	})

	t.Run("reuses existing user", func(t *testing.T) {
		users := &fakeUserService{existing: &models.User{ID: uuid.New(), Email: DemoUserEmail}}
		actions := newLocal(users, nil, nil, nil, nil)

		res := actions.DemoUser(context.Background())
		assert.True(t, res.Success)
		assert.Equal(t, users.existing.ID, res.Data.ID)
		assert.Equal(t, 0, users.createCalls)
	})

	t.Run("lost create race resolves to existing user", func(t *testing.T) {
		raced := &models.User{ID: uuid.New(), Email: DemoUserEmail}
		users := &racedUserService{winner: raced}
		actions := NewLocalActions(users, &fakeCompetencyService{}, &fakeResourceService{}, &fakeRelationshipService{}, &fakeLinkService{})

		res := actions.DemoUser(context.Background())
		assert.True(t, res.Success)
		assert.Equal(t, raced.ID, res.Data.ID)
	})
}

// racedUserService simulates another session creating the demo user between
// the lookup and the create.
type racedUserService struct {
	winner  *models.User
	lookups int
}

func (f *racedUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.lookups++
	if f.lookups == 1 {
		return nil, nil
	}
	return f.winner, nil
}

func (f *racedUserService) CreateUser(ctx context.Context, data models.CreateUserInput) (*models.User, error) {
	return nil, errors.New("User with this email already exists")
}

func TestLocalActions_RandomCompetencies(t *testing.T) {
	competencies := &fakeCompetencyService{competencies: []models.Competency{
		{ID: uuid.New(), Title: "Polymorphism"},
		{ID: uuid.New(), Title: "Recursion"},
	}}
	actions := newLocal(nil, competencies, nil, nil, nil)

	res := actions.RandomCompetencies(context.Background(), 2)
	assert.True(t, res.Success)
	assert.Len(t, res.Data, 2)
	assert.Empty(t, res.Error)
}

func TestLocalActions_RandomCompetencies_Failure(t *testing.T) {
	competencies := &fakeCompetencyService{err: errors.New("Not enough competencies in database. Run db:seed first.")}
	actions := newLocal(nil, competencies, nil, nil, nil)

	res := actions.RandomCompetencies(context.Background(), 2)
	assert.False(t, res.Success)
	assert.Equal(t, "Not enough competencies in database. Run db:seed first.", res.Error)
	assert.Nil(t, res.Data)
}

func TestLocalActions_RandomLearningResource(t *testing.T) {
	t.Run("returns one resource", func(t *testing.T) {
		resources := &fakeResourceService{resources: []models.LearningResource{{ID: uuid.New(), Title: "Real World OCaml"}}}
		actions := newLocal(nil, nil, resources, nil, nil)

		res := actions.RandomLearningResource(context.Background())
		assert.True(t, res.Success)
		assert.NotNil(t, res.Data)
	})

	t.Run("empty table yields nil data", func(t *testing.T) {
		actions := newLocal(nil, nil, &fakeResourceService{}, nil, nil)

		res := actions.RandomLearningResource(context.Background())
		assert.True(t, res.Success)
		assert.Nil(t, res.Data)
	})
}

func TestLocalActions_AssertRelationship(t *testing.T) {
	originID := uuid.NewString()
	destinationID := uuid.NewString()
	userID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		actions := newLocal(nil, nil, nil, &fakeRelationshipService{}, nil)

		res := actions.AssertRelationship(context.Background(), RelationshipForm{
			RelationshipType: "EXTENDS",
			OriginID:         originID,
			DestinationID:    destinationID,
			UserID:           userID,
		})
		assert.True(t, res.Success)
		assert.Equal(t, models.RelationshipExtends, res.Data.RelationshipType)
	})

	t.Run("invalid type", func(t *testing.T) {
		actions := newLocal(nil, nil, nil, &fakeRelationshipService{}, nil)

		res := actions.AssertRelationship(context.Background(), RelationshipForm{
			RelationshipType: "IMPLIES",
			OriginID:         originID,
			DestinationID:    destinationID,
			UserID:           userID,
		})
		assert.False(t, res.Success)
		assert.Equal(t, "relationshipType must be one of ASSUMES, EXTENDS, MATCHES", res.Error)
	})

	t.Run("invalid origin id", func(t *testing.T) {
		actions := newLocal(nil, nil, nil, &fakeRelationshipService{}, nil)

		res := actions.AssertRelationship(context.Background(), RelationshipForm{
			RelationshipType: "ASSUMES",
			OriginID:         "nope",
			DestinationID:    destinationID,
			UserID:           userID,
		})
		assert.False(t, res.Success)
		assert.Equal(t, "originId must be a valid id", res.Error)
	})

	t.Run("service failure carries the message", func(t *testing.T) {
		relationships := &fakeRelationshipService{createErr: errors.New("Cannot create relationship to itself")}
		actions := newLocal(nil, nil, nil, relationships, nil)

		res := actions.AssertRelationship(context.Background(), RelationshipForm{
			RelationshipType: "ASSUMES",
			OriginID:         originID,
			DestinationID:    originID,
			UserID:           userID,
		})
		assert.False(t, res.Success)
		assert.Equal(t, "Cannot create relationship to itself", res.Error)
	})
}

func TestLocalActions_RetractRelationship(t *testing.T) {
	relationships := &fakeRelationshipService{}
	actions := newLocal(nil, nil, nil, relationships, nil)

	id := uuid.New()
	res := actions.RetractRelationship(context.Background(), id.String())
	assert.True(t, res.Success)
	assert.Equal(t, id, relationships.deletedID)

	res = actions.RetractRelationship(context.Background(), "not-an-id")
	assert.False(t, res.Success)
	assert.Equal(t, "id must be a valid id", res.Error)
}

func TestLocalActions_AssertResourceLink(t *testing.T) {
	competencyID := uuid.NewString()
	resourceID := uuid.NewString()
	userID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		actions := newLocal(nil, nil, nil, nil, &fakeLinkService{})

		res := actions.AssertResourceLink(context.Background(), ResourceLinkForm{
			CompetencyID: competencyID,
			ResourceID:   resourceID,
			UserID:       userID,
			MatchType:    "PERFECT_MATCH",
		})
		assert.True(t, res.Success)
		assert.Equal(t, models.MatchPerfectMatch, res.Data.MatchType)
	})

	t.Run("invalid match type", func(t *testing.T) {
		actions := newLocal(nil, nil, nil, nil, &fakeLinkService{})

		res := actions.AssertResourceLink(context.Background(), ResourceLinkForm{
			CompetencyID: competencyID,
			ResourceID:   resourceID,
			UserID:       userID,
			MatchType:    "GREAT",
		})
		assert.False(t, res.Success)
		assert.Equal(t, "matchType must be one of UNRELATED, WEAK, GOOD_FIT, PERFECT_MATCH", res.Error)
	})

	t.Run("invalid competency id", func(t *testing.T) {
		actions := newLocal(nil, nil, nil, nil, &fakeLinkService{})

		res := actions.AssertResourceLink(context.Background(), ResourceLinkForm{
			CompetencyID: "xyz",
			ResourceID:   resourceID,
			UserID:       userID,
			MatchType:    "WEAK",
		})
		assert.False(t, res.Success)
		assert.Equal(t, "competencyId must be a valid id", res.Error)
	})
}

func TestLocalActions_RetractResourceLink(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actions := newLocal(nil, nil, nil, nil, &fakeLinkService{})

		res := actions.RetractResourceLink(context.Background(), uuid.NewString())
		assert.True(t, res.Success)
	})

	t.Run("delete failure", func(t *testing.T) {
		links := &fakeLinkService{deleteErr: errors.New("Competency resource link not found")}
		actions := newLocal(nil, nil, nil, nil, links)

		res := actions.RetractResourceLink(context.Background(), uuid.NewString())
		assert.False(t, res.Success)
		assert.Equal(t, "Competency resource link not found", res.Error)
	})
}
