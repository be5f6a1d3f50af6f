package client

import (
	"context"
	"fmt"

	"github.com/tum-cit/memo-bench/internal/models"
)

// CreateResourceLinkRequest is the JSON body for asserting a resource link.
type CreateResourceLinkRequest struct {
	CompetencyID string `json:"competencyId"`
	ResourceID   string `json:"resourceId"`
	UserID       string `json:"userId"`
	MatchType    string `json:"matchType"`
}

type linkEnvelope struct {
	Success bool                           `json:"success"`
	Link    *models.CompetencyResourceLink `json:"link"`
	Error   string                         `json:"error"`
}

type linksEnvelope struct {
	Success bool                            `json:"success"`
	Links   []models.CompetencyResourceLink `json:"links"`
	Error   string                          `json:"error"`
}

// CreateResourceLink asserts a link between a competency and a learning resource.
func (c *Client) CreateResourceLink(ctx context.Context, req CreateResourceLinkRequest) (*models.CompetencyResourceLink, error) {
	var env linkEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Post("/api/competency-resource-links")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Link, nil
}

// GetResourceLinkByID fetches a link by id.
func (c *Client) GetResourceLinkByID(ctx context.Context, id string) (*models.CompetencyResourceLink, error) {
	var env linkEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/competency-resource-links/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Link, nil
}

// GetResourceLinksByCompetencyID lists links asserted for a competency.
func (c *Client) GetResourceLinksByCompetencyID(ctx context.Context, competencyID string) ([]models.CompetencyResourceLink, error) {
	var env linksEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/competency-resource-links/by-competency/%s", competencyID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Links, nil
}

// GetResourceLinksByResourceID lists links asserted for a learning resource.
func (c *Client) GetResourceLinksByResourceID(ctx context.Context, resourceID string) ([]models.CompetencyResourceLink, error) {
	var env linksEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/competency-resource-links/by-resource/%s", resourceID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Links, nil
}

// GetAllResourceLinks lists all links, newest first.
func (c *Client) GetAllResourceLinks(ctx context.Context) ([]models.CompetencyResourceLink, error) {
	var env linksEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get("/api/competency-resource-links")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Links, nil
}

// DeleteResourceLink deletes a link by id.
func (c *Client) DeleteResourceLink(ctx context.Context, id string) error {
	var env statusResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Delete(fmt.Sprintf("/api/competency-resource-links/%s", id))
	if err != nil {
		return err
	}
	if resp.IsError() || !env.Success {
		return apiError(resp, env.Error)
	}
	return nil
}
