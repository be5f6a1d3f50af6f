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

// RelationshipRepository provides access to competency_relationships.
// Relationships are immutable facts: create, read and delete only.
type RelationshipRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRelationshipRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RelationshipRepository {
	return &RelationshipRepository{db: db, txGetter: txGetter}
}

func (r *RelationshipRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new relationship with a server-assigned id and returns the stored row.
func (r *RelationshipRepository) Create(ctx context.Context, data models.CreateCompetencyRelationshipInput) (*models.CompetencyRelationship, error) {
	const query = `
		INSERT INTO competency_relationships (id, relationship_type, origin_id, destination_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, relationship_type, origin_id, destination_id, user_id, created_at
	`
	args := []any{uuid.New(), data.RelationshipType, data.OriginID, data.DestinationID, data.UserID}

	var relationship models.CompetencyRelationship
	err := sqlx.GetContext(ctx, r.executor(ctx), &relationship, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &relationship, nil
}

// FindByID returns the relationship with the given id, or nil when absent.
func (r *RelationshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CompetencyRelationship, error) {
	const query = `
		SELECT id, relationship_type, origin_id, destination_id, user_id, created_at
		FROM competency_relationships
		WHERE id = $1
	`

	var relationship models.CompetencyRelationship
	err := r.db.GetContext(ctx, &relationship, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &relationship, nil
}

// FindByOriginID returns all relationships starting at the given competency, newest first.
func (r *RelationshipRepository) FindByOriginID(ctx context.Context, originID uuid.UUID) ([]models.CompetencyRelationship, error) {
	const query = `
		SELECT id, relationship_type, origin_id, destination_id, user_id, created_at
		FROM competency_relationships
		WHERE origin_id = $1
		ORDER BY created_at DESC
	`

	relationships := make([]models.CompetencyRelationship, 0)
	err := r.db.SelectContext(ctx, &relationships, query, originID)
	if err != nil {
		return nil, err
	}
	return relationships, nil
}

// FindByDestinationID returns all relationships ending at the given competency, newest first.
func (r *RelationshipRepository) FindByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]models.CompetencyRelationship, error) {
	const query = `
		SELECT id, relationship_type, origin_id, destination_id, user_id, created_at
		FROM competency_relationships
		WHERE destination_id = $1
		ORDER BY created_at DESC
	`

	relationships := make([]models.CompetencyRelationship, 0)
	err := r.db.SelectContext(ctx, &relationships, query, destinationID)
	if err != nil {
		return nil, err
	}
	return relationships, nil
}

// FindAll returns all relationships, newest first.
func (r *RelationshipRepository) FindAll(ctx context.Context) ([]models.CompetencyRelationship, error) {
	const query = `
		SELECT id, relationship_type, origin_id, destination_id, user_id, created_at
		FROM competency_relationships
		ORDER BY created_at DESC
	`

	relationships := make([]models.CompetencyRelationship, 0)
	err := r.db.SelectContext(ctx, &relationships, query)
	if err != nil {
		return nil, err
	}
	return relationships, nil
}

// ExistsByEdge reports whether an edge with the same origin, destination and
// type has already been asserted.
func (r *RelationshipRepository) ExistsByEdge(ctx context.Context, originID, destinationID uuid.UUID, relationshipType models.RelationshipType) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM competency_relationships
			WHERE origin_id = $1 AND destination_id = $2 AND relationship_type = $3
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, originID, destinationID, relationshipType)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Delete removes the relationship with the given id.
func (r *RelationshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
		DELETE FROM competency_relationships
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
