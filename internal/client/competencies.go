package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tum-cit/memo-bench/internal/models"
)

// CreateCompetencyRequest is the JSON body for creating a competency.
type CreateCompetencyRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateCompetencyRequest is the JSON body for a partial competency update.
type UpdateCompetencyRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type competencyEnvelope struct {
	Success    bool               `json:"success"`
	Competency *models.Competency `json:"competency"`
	Error      string             `json:"error"`
}

type competenciesEnvelope struct {
	Success      bool                `json:"success"`
	Competencies []models.Competency `json:"competencies"`
	Error        string              `json:"error"`
}

// CreateCompetency creates a new competency.
func (c *Client) CreateCompetency(ctx context.Context, req CreateCompetencyRequest) (*models.Competency, error) {
	var env competencyEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Post("/api/competencies")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Competency, nil
}

// GetCompetencyByID fetches a competency by id.
func (c *Client) GetCompetencyByID(ctx context.Context, id string) (*models.Competency, error) {
	var env competencyEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/competencies/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Competency, nil
}

// GetAllCompetencies lists all competencies, newest first.
func (c *Client) GetAllCompetencies(ctx context.Context) ([]models.Competency, error) {
	var env competenciesEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get("/api/competencies")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Competencies, nil
}

// GetRandomCompetencies fetches count distinct random competencies. The server
// fails with an explicit error when it holds fewer rows than requested.
func (c *Client) GetRandomCompetencies(ctx context.Context, count int) ([]models.Competency, error) {
	var env competenciesEnvelope
	resp, err := c.http.R().SetContext(ctx).SetQueryParam("count", strconv.Itoa(count)).
		SetResult(&env).SetError(&env).
		Get("/api/competencies/random")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Competencies, nil
}

// UpdateCompetency applies a partial update to a competency.
func (c *Client) UpdateCompetency(ctx context.Context, id string, req UpdateCompetencyRequest) (*models.Competency, error) {
	var env competencyEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Put(fmt.Sprintf("/api/competencies/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Competency, nil
}

// DeleteCompetency deletes a competency by id.
func (c *Client) DeleteCompetency(ctx context.Context, id string) error {
	var env statusResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Delete(fmt.Sprintf("/api/competencies/%s", id))
	if err != nil {
		return err
	}
	if resp.IsError() || !env.Success {
		return apiError(resp, env.Error)
	}
	return nil
}
