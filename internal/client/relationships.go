package client

import (
	"context"
	"fmt"

	"github.com/tum-cit/memo-bench/internal/models"
)

// CreateRelationshipRequest is the JSON body for asserting a relationship.
type CreateRelationshipRequest struct {
	RelationshipType string `json:"relationshipType"`
	OriginID         string `json:"originId"`
	DestinationID    string `json:"destinationId"`
	UserID           string `json:"userId"`
}

type relationshipEnvelope struct {
	Success      bool                           `json:"success"`
	Relationship *models.CompetencyRelationship `json:"relationship"`
	Error        string                         `json:"error"`
}

type relationshipsEnvelope struct {
	Success       bool                            `json:"success"`
	Relationships []models.CompetencyRelationship `json:"relationships"`
	Error         string                          `json:"error"`
}

// CreateRelationship asserts a relationship between two competencies.
func (c *Client) CreateRelationship(ctx context.Context, req CreateRelationshipRequest) (*models.CompetencyRelationship, error) {
	var env relationshipEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(req).SetResult(&env).SetError(&env).
		Post("/api/competency-relationships")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Relationship, nil
}

// GetRelationshipByID fetches a relationship by id.
func (c *Client) GetRelationshipByID(ctx context.Context, id string) (*models.CompetencyRelationship, error) {
	var env relationshipEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/competency-relationships/%s", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Relationship, nil
}

// GetRelationshipsByOriginID lists relationships originating at a competency.
func (c *Client) GetRelationshipsByOriginID(ctx context.Context, originID string) ([]models.CompetencyRelationship, error) {
	var env relationshipsEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/competency-relationships/by-origin/%s", originID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Relationships, nil
}

// GetRelationshipsByDestinationID lists relationships pointing at a competency.
func (c *Client) GetRelationshipsByDestinationID(ctx context.Context, destinationID string) ([]models.CompetencyRelationship, error) {
	var env relationshipsEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get(fmt.Sprintf("/api/competency-relationships/by-destination/%s", destinationID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Relationships, nil
}

// GetAllRelationships lists all relationships, newest first.
func (c *Client) GetAllRelationships(ctx context.Context) ([]models.CompetencyRelationship, error) {
	var env relationshipsEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get("/api/competency-relationships")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !env.Success {
		return nil, apiError(resp, env.Error)
	}
	return env.Relationships, nil
}

// DeleteRelationship deletes a relationship by id.
func (c *Client) DeleteRelationship(ctx context.Context, id string) error {
	var env statusResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Delete(fmt.Sprintf("/api/competency-relationships/%s", id))
	if err != nil {
		return err
	}
	if resp.IsError() || !env.Success {
		return apiError(resp, env.Error)
	}
	return nil
}
