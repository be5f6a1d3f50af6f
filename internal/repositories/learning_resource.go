package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/models"
)

// LearningResourceRepository provides CRUD access to the learning_resources table.
type LearningResourceRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLearningResourceRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LearningResourceRepository {
	return &LearningResourceRepository{db: db, txGetter: txGetter}
}

func (r *LearningResourceRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new learning resource with a server-assigned id and returns the stored row.
func (r *LearningResourceRepository) Create(ctx context.Context, data models.CreateLearningResourceInput) (*models.LearningResource, error) {
	const query = `
		INSERT INTO learning_resources (id, title, url)
		VALUES ($1, $2, $3)
		RETURNING id, title, url, created_at
	`
	args := []any{uuid.New(), data.Title, data.URL}

	var resource models.LearningResource
	err := sqlx.GetContext(ctx, r.executor(ctx), &resource, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindByID returns the resource with the given id, or nil when absent.
func (r *LearningResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.LearningResource, error) {
	const query = `
		SELECT id, title, url, created_at
		FROM learning_resources
		WHERE id = $1
	`

	var resource models.LearningResource
	err := r.db.GetContext(ctx, &resource, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindByURL returns the resource with the given url, or nil when absent.
func (r *LearningResourceRepository) FindByURL(ctx context.Context, url string) (*models.LearningResource, error) {
	const query = `
		SELECT id, title, url, created_at
		FROM learning_resources
		WHERE url = $1
	`

	var resource models.LearningResource
	err := r.db.GetContext(ctx, &resource, query, url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindAll returns all learning resources, newest first.
func (r *LearningResourceRepository) FindAll(ctx context.Context) ([]models.LearningResource, error) {
	const query = `
		SELECT id, title, url, created_at
		FROM learning_resources
		ORDER BY created_at DESC
	`

	resources := make([]models.LearningResource, 0)
	err := r.db.SelectContext(ctx, &resources, query)
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// FindRandom returns up to count distinct resources selected uniformly at random.
func (r *LearningResourceRepository) FindRandom(ctx context.Context, count int) ([]models.LearningResource, error) {
	const query = `
		SELECT id, title, url, created_at
		FROM learning_resources
		ORDER BY RANDOM()
		LIMIT $1
	`

	resources := make([]models.LearningResource, 0, count)
	err := r.db.SelectContext(ctx, &resources, query, count)
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Update applies the non-nil fields and returns the stored row.
func (r *LearningResourceRepository) Update(ctx context.Context, id uuid.UUID, data models.UpdateLearningResourceInput) (*models.LearningResource, error) {
	const query = `
		UPDATE learning_resources
		SET title = COALESCE($2::VARCHAR, title),
		    url = COALESCE($3::VARCHAR, url)
		WHERE id = $1
		RETURNING id, title, url, created_at
	`
	args := []any{id, data.Title, data.URL}

	var resource models.LearningResource
	err := sqlx.GetContext(ctx, r.executor(ctx), &resource, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// Delete removes the resource with the given id.
func (r *LearningResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
		DELETE FROM learning_resources
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
