// Package seed inserts the fixed starter dataset. Running it repeatedly
// is safe: existing rows are skipped by their natural keys.
package seed

import (
	"context"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/models"
)

// UserSeeder defines the user operations the seeder needs.
type UserSeeder interface {
	CreateUser(ctx context.Context, data models.CreateUserInput) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// CompetencySeeder defines the competency operations the seeder needs.
type CompetencySeeder interface {
	CreateCompetency(ctx context.Context, data models.CreateCompetencyInput) (*models.Competency, error)
	GetCompetencyByTitle(ctx context.Context, title string) (*models.Competency, error)
}

// ResourceSeeder defines the learning-resource operations the seeder needs.
type ResourceSeeder interface {
	CreateResource(ctx context.Context, data models.CreateLearningResourceInput) (*models.LearningResource, error)
	GetResourceByURL(ctx context.Context, url string) (*models.LearningResource, error)
}

// Seeder populates the database with the starter dataset.
type Seeder struct {
	users        UserSeeder
	competencies CompetencySeeder
	resources    ResourceSeeder
}

// NewSeeder creates a Seeder over the given services.
func NewSeeder(users UserSeeder, competencies CompetencySeeder, resources ResourceSeeder) *Seeder {
	return &Seeder{users: users, competencies: competencies, resources: resources}
}

type competencySeed struct {
	title       string
	description string
}

var competencySeeds = []competencySeed{
	{
		title:       "Data Structures and Pattern Matching",
		description: "Utilize built-in data types, implement pattern matching to deconstruct complex types, and create user-defined data structures.",
	},
	{
		title:       "Functional Programming Paradigms",
		description: "Implement solutions using pure functions without side effects, write recursive functions, and optimize through tail recursion.",
	},
	{
		title:       "Higher-Order Functions",
		description: "Differentiate between named and anonymous functions, create higher-order functions, and apply currying and partial application techniques.",
	},
	{
		title:       "Polymorphism",
		description: "Understand polymorphism and instantiation, implement polymorphic functions and data types for general-purpose reusable code.",
	},
	{
		title:       "Module System and Abstraction",
		description: "Design modules with clear interfaces, implement information hiding through abstract types, create functors, and structure programs using modular components.",
	},
}

type resourceSeed struct {
	title string
	url   string
}

var resourceSeeds = []resourceSeed{
	{
		title: "OCaml Programming: Correct + Efficient + Beautiful",
		url:   "https://cs3110.github.io/textbook/cover.html",
	},
	{
		title: "Real World OCaml",
		url:   "https://dev.realworldocaml.org/",
	},
	{
		title: "Learn You a Haskell for Great Good!",
		url:   "https://learnyouahaskell.com/",
	},
}

// Run seeds the demo user, the starter competencies and the starter
// learning resources.
func (s *Seeder) Run(ctx context.Context) error {
	logger.Log.Infow("starting database seed")

	user, err := s.users.GetUserByEmail(ctx, "demo@memo.local")
	if err != nil {
		return err
	}
	if user == nil {
		user, err = s.users.CreateUser(ctx, models.CreateUserInput{
			Name:  "Demo User",
			Email: "demo@memo.local",
			Role:  models.RoleUser,
		})
		if err != nil {
			return err
		}
	}
	logger.Log.Infow("demo user ready", "email", user.Email)

	createdCompetencies := 0
	for _, c := range competencySeeds {
		existing, err := s.competencies.GetCompetencyByTitle(ctx, c.title)
		if err != nil {
			return err
		}
		if existing != nil {
			logger.Log.Infow("skipping existing competency", "title", c.title)
			continue
		}
		description := c.description
		if _, err := s.competencies.CreateCompetency(ctx, models.CreateCompetencyInput{
			Title:       c.title,
			Description: &description,
		}); err != nil {
			return err
		}
		createdCompetencies++
		logger.Log.Infow("created competency", "title", c.title)
	}

	createdResources := 0
	for _, r := range resourceSeeds {
		existing, err := s.resources.GetResourceByURL(ctx, r.url)
		if err != nil {
			return err
		}
		if existing != nil {
			logger.Log.Infow("skipping existing learning resource", "url", r.url)
			continue
		}
		if _, err := s.resources.CreateResource(ctx, models.CreateLearningResourceInput{
			Title: r.title,
			URL:   r.url,
		}); err != nil {
			return err
		}
		createdResources++
		logger.Log.Infow("created learning resource", "url", r.url)
	}

	logger.Log.Infow("seeding complete",
		"new_competencies", createdCompetencies,
		"new_resources", createdResources,
	)
	return nil
}
