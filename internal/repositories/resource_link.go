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

// ResourceLinkRepository provides access to competency_resource_links.
// Links are immutable facts: create, read and delete only.
type ResourceLinkRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewResourceLinkRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ResourceLinkRepository {
	return &ResourceLinkRepository{db: db, txGetter: txGetter}
}

func (r *ResourceLinkRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new link with a server-assigned id and returns the stored row.
func (r *ResourceLinkRepository) Create(ctx context.Context, data models.CreateCompetencyResourceLinkInput) (*models.CompetencyResourceLink, error) {
	const query = `
		INSERT INTO competency_resource_links (id, competency_id, resource_id, user_id, match_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, competency_id, resource_id, user_id, match_type, created_at
	`
	args := []any{uuid.New(), data.CompetencyID, data.ResourceID, data.UserID, data.MatchType}

	var link models.CompetencyResourceLink
	err := sqlx.GetContext(ctx, r.executor(ctx), &link, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindByID returns the link with the given id, or nil when absent.
func (r *ResourceLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CompetencyResourceLink, error) {
	const query = `
		SELECT id, competency_id, resource_id, user_id, match_type, created_at
		FROM competency_resource_links
		WHERE id = $1
	`

	var link models.CompetencyResourceLink
	err := r.db.GetContext(ctx, &link, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindByCompetencyID returns all links for the given competency, newest first.
func (r *ResourceLinkRepository) FindByCompetencyID(ctx context.Context, competencyID uuid.UUID) ([]models.CompetencyResourceLink, error) {
	const query = `
		SELECT id, competency_id, resource_id, user_id, match_type, created_at
		FROM competency_resource_links
		WHERE competency_id = $1
		ORDER BY created_at DESC
	`

	links := make([]models.CompetencyResourceLink, 0)
	err := r.db.SelectContext(ctx, &links, query, competencyID)
	if err != nil {
		return nil, err
	}
	return links, nil
}

// FindByResourceID returns all links for the given resource, newest first.
func (r *ResourceLinkRepository) FindByResourceID(ctx context.Context, resourceID uuid.UUID) ([]models.CompetencyResourceLink, error) {
	const query = `
		SELECT id, competency_id, resource_id, user_id, match_type, created_at
		FROM competency_resource_links
		WHERE resource_id = $1
		ORDER BY created_at DESC
	`

	links := make([]models.CompetencyResourceLink, 0)
	err := r.db.SelectContext(ctx, &links, query, resourceID)
	if err != nil {
		return nil, err
	}
	return links, nil
}

// FindAll returns all links, newest first.
func (r *ResourceLinkRepository) FindAll(ctx context.Context) ([]models.CompetencyResourceLink, error) {
	const query = `
		SELECT id, competency_id, resource_id, user_id, match_type, created_at
		FROM competency_resource_links
		ORDER BY created_at DESC
	`

	links := make([]models.CompetencyResourceLink, 0)
	err := r.db.SelectContext(ctx, &links, query)
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Delete removes the link with the given id.
func (r *ResourceLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
		DELETE FROM competency_resource_links
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
