package client

import (
	"context"
	"fmt"

	"github.com/tum-cit/memo-bench/internal/models"
)

// CreateUserRequest is the JSON body for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// UpdateUserRequest is the JSON body for a partial user update.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

type userEnvelope struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Error   string       `json:"error"`
}

type usersEnvelope struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
	Error   string        `json:"error"`
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var env userEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Post("/api/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.User, nil
}

// GetUserByID fetches a user by id.
func (c *Client) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var env userEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/users/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.User, nil
}

// GetUserByEmail fetches a user by email; a 404 means absent, not an error.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var env userEnvelope
	resp, err := c.http.R().SetContext(ctx).SetQueryParam("email", email).
		SetResult(&env).SetError(&env).
		Get("/api/users/by-email")
	if err != nil {
		return nil, err
	}
	if isNotFound(resp) {
		return nil, nil
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.User, nil
}

// GetAllUsers lists all users, newest first.
func (c *Client) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var env usersEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get("/api/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Users, nil
}

// UpdateUser applies a partial update to a user.
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	var env userEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Put(fmt.Sprintf("/api/users/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.User, nil
}

// DeleteUser deletes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	var env statusResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Delete(fmt.Sprintf("/api/users/%s", id))
	if err != nil {
		return err
	}
	if resp.IsError() || !env.Success {
		return apiError(resp, env.Error)
	}
	return nil
}
