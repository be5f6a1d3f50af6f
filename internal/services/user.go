package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/models"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailAlreadyExists = errors.New("User with this email already exists")
)

// UserRepo defines the storage operations the user service relies on.
type UserRepo interface {
	Create(ctx context.Context, data models.CreateUserInput) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, data models.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService wraps the user repository with business-rule validation.
type UserService struct {
	repo UserRepo
}

// NewUserService creates a new UserService instance.
func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

// CreateUser creates a new user, rejecting duplicate emails.
func (svc *UserService) CreateUser(ctx context.Context, data models.CreateUserInput) (*models.User, error) {
	existing, err := svc.repo.FindByEmail(ctx, data.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", data.Email, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if data.Role == "" {
		data.Role = models.RoleUser
	}

	user, err := svc.repo.Create(ctx, data)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the check-then-create race against a concurrent create.
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to create user", "email", data.Email, "err", err)
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the user with the given id or ErrUserNotFound.
func (svc *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserByEmail returns the user with the given email, or nil when absent.
func (svc *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return svc.repo.FindByEmail(ctx, email)
}

// GetAllUsers returns all users, newest first.
func (svc *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return svc.repo.FindAll(ctx)
}

// UpdateUser applies a partial update to an existing user.
func (svc *UserService) UpdateUser(ctx context.Context, id uuid.UUID, data models.UpdateUserInput) (*models.User, error) {
	if _, err := svc.GetUserByID(ctx, id); err != nil {
		return nil, err
	}

	user, err := svc.repo.Update(ctx, id, data)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an existing user.
func (svc *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := svc.GetUserByID(ctx, id); err != nil {
		return err
	}

	if err := svc.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return ErrStillReferenced
		}
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	return nil
}
