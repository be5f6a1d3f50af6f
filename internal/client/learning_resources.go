package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tum-cit/memo-bench/internal/models"
)

// CreateLearningResourceRequest is the JSON body for creating a resource.
type CreateLearningResourceRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// UpdateLearningResourceRequest is the JSON body for a partial resource update.
type UpdateLearningResourceRequest struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
}

type resourceEnvelope struct {
	Success  bool                     `json:"success"`
	Resource *models.LearningResource `json:"resource"`
	Error    string                   `json:"error"`
}

type resourcesEnvelope struct {
	Success   bool                      `json:"success"`
	Resources []models.LearningResource `json:"resources"`
	Error     string                    `json:"error"`
}

// CreateLearningResource creates a new learning resource.
func (c *Client) CreateLearningResource(ctx context.Context, req CreateLearningResourceRequest) (*models.LearningResource, error) {
	var env resourceEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Post("/api/learning-resources")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Resource, nil
}

// GetLearningResourceByID fetches a resource by id.
func (c *Client) GetLearningResourceByID(ctx context.Context, id string) (*models.LearningResource, error) {
	var env resourceEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/learning-resources/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Resource, nil
}

// GetLearningResourceByURL fetches a resource by URL; a 404 means absent, not an error.
func (c *Client) GetLearningResourceByURL(ctx context.Context, url string) (*models.LearningResource, error) {
	var env resourceEnvelope
	resp, err := c.http.R().SetContext(ctx).SetQueryParam("url", url).
		SetResult(&env).SetError(&env).
		Get("/api/learning-resources/by-url")
	if err != nil {
		return nil, err
	}
	if isNotFound(resp) {
		return nil, nil
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Resource, nil
}

// GetAllLearningResources lists all resources, newest first.
func (c *Client) GetAllLearningResources(ctx context.Context) ([]models.LearningResource, error) {
	var env resourcesEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get("/api/learning-resources")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Resources, nil
}

// GetRandomLearningResources fetches up to count random resources.
func (c *Client) GetRandomLearningResources(ctx context.Context, count int) ([]models.LearningResource, error) {
	var env resourcesEnvelope
	resp, err := c.http.R().SetContext(ctx).SetQueryParam("count", strconv.Itoa(count)).
		SetResult(&env).SetError(&env).
		Get("/api/learning-resources/random")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Resources, nil
}

// UpdateLearningResource applies a partial update to a resource.
func (c *Client) UpdateLearningResource(ctx context.Context, id string, req UpdateLearningResourceRequest) (*models.LearningResource, error) {
	var env resourceEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Put(fmt.Sprintf("/api/learning-resources/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Resource, nil
}

// DeleteLearningResource deletes a resource by id.
func (c *Client) DeleteLearningResource(ctx context.Context, id string) error {
	var env statusResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Delete(fmt.Sprintf("/api/learning-resources/%s", id))
	if err != nil {
		return err
	}
	if resp.IsError() || !env.Success {
		return apiError(resp, env.Error)
	}
	return nil
}
