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

// CompetencyRepository provides CRUD access to the competencies table.
type CompetencyRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCompetencyRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CompetencyRepository {
	return &CompetencyRepository{db: db, txGetter: txGetter}
}

func (r *CompetencyRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new competency with a server-assigned id and returns the stored row.
func (r *CompetencyRepository) Create(ctx context.Context, data models.CreateCompetencyInput) (*models.Competency, error) {
	const query = `
		INSERT INTO competencies (id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, created_at
	`
	args := []any{uuid.New(), data.Title, data.Description}

	var competency models.Competency
	err := sqlx.GetContext(ctx, r.executor(ctx), &competency, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// FindByID returns the competency with the given id, or nil when absent.
func (r *CompetencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Competency, error) {
	const query = `
		SELECT id, title, description, created_at
		FROM competencies
		WHERE id = $1
	`

	var competency models.Competency
	err := r.db.GetContext(ctx, &competency, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// FindByTitle returns the first competency with the given title, or nil when
// absent. Title is the natural key used by the idempotent seed step.
func (r *CompetencyRepository) FindByTitle(ctx context.Context, title string) (*models.Competency, error) {
	const query = `
		SELECT id, title, description, created_at
		FROM competencies
		WHERE title = $1
		LIMIT 1
	`

	var competency models.Competency
	err := r.db.GetContext(ctx, &competency, query, title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// FindAll returns all competencies, newest first.
func (r *CompetencyRepository) FindAll(ctx context.Context) ([]models.Competency, error) {
	const query = `
		SELECT id, title, description, created_at
		FROM competencies
		ORDER BY created_at DESC
	`

	competencies := make([]models.Competency, 0)
	err := r.db.SelectContext(ctx, &competencies, query)
	if err != nil {
		return nil, err
	}
	return competencies, nil
}

// FindRandom returns up to count distinct competencies selected uniformly at random.
func (r *CompetencyRepository) FindRandom(ctx context.Context, count int) ([]models.Competency, error) {
	const query = `
		SELECT id, title, description, created_at
		FROM competencies
		ORDER BY RANDOM()
		LIMIT $1
	`

	competencies := make([]models.Competency, 0, count)
	err := r.db.SelectContext(ctx, &competencies, query, count)
	if err != nil {
		return nil, err
	}
	return competencies, nil
}

// Update applies the non-nil fields and returns the stored row.
func (r *CompetencyRepository) Update(ctx context.Context, id uuid.UUID, data models.UpdateCompetencyInput) (*models.Competency, error) {
	const query = `
		UPDATE competencies
		SET title = COALESCE($2::VARCHAR, title),
		    description = COALESCE($3::TEXT, description)
		WHERE id = $1
		RETURNING id, title, description, created_at
	`
	args := []any{id, data.Title, data.Description}

	var competency models.Competency
	err := sqlx.GetContext(ctx, r.executor(ctx), &competency, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// Delete removes the competency with the given id.
func (r *CompetencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
		DELETE FROM competencies
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
