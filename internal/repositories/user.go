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

// UserRepository provides CRUD access to the users table.
type UserRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

func (r *UserRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new user with a server-assigned id and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, data models.CreateUserInput) (*models.User, error) {
	const query = `
		INSERT INTO users (id, name, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, role, created_at
	`
	args := []any{uuid.New(), data.Name, data.Email, data.Role}

	var user models.User
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id, or nil when absent.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or nil when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll returns all users, newest first.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY created_at DESC
	`

	users := make([]models.User, 0)
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies the non-nil fields and returns the stored row.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, data models.UpdateUserInput) (*models.User, error) {
	const query = `
		UPDATE users
		SET name = COALESCE($2::VARCHAR, name),
		    email = COALESCE($3::VARCHAR, email),
		    role = COALESCE($4::user_role, role)
		WHERE id = $1
		RETURNING id, name, email, role, created_at
	`
	args := []any{id, data.Name, data.Email, data.Role}

	var user models.User
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user with the given id.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
		DELETE FROM users
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
