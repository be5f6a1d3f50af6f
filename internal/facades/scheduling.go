package facades

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tum-cit/memo-bench/internal/logger"
)

// DefaultTimeout bounds every scheduling API call.
const DefaultTimeout = 10 * time.Second

// CompetencyInfo is the competency payload returned by the scheduling API.
type CompetencyInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// VoteCounts holds the current tallies for a relationship under review.
type VoteCounts struct {
	Assumes   int `json:"assumes"`
	Extends   int `json:"extendsRelation"`
	Matches   int `json:"matches"`
	Unrelated int `json:"unrelated"`
}

// RelationshipTask is the next relationship the scheduler wants a vote on.
type RelationshipTask struct {
	RelationshipID string         `json:"relationshipId"`
	Origin         CompetencyInfo `json:"origin"`
	Destination    CompetencyInfo `json:"destination"`
	Pipeline       string         `json:"pipeline"`
	CurrentVotes   VoteCounts     `json:"currentVotes"`
}

// VoteRequest is the body submitted when a user votes on a relationship.
type VoteRequest struct {
	RelationshipID string `json:"relationshipId"`
	Vote           string `json:"vote"`
}

// VoteResponse is the scheduler's acknowledgement of a submitted vote.
type VoteResponse struct {
	Success      bool       `json:"success"`
	UpdatedVotes VoteCounts `json:"updatedVotes"`
	NewEntropy   float64    `json:"newEntropy"`
	Error        string     `json:"error"`
}

// SchedulingHTTPFacade implements the scheduling API over HTTP.
type SchedulingHTTPFacade struct {
	http *resty.Client
}

// NewSchedulingHTTPFacade creates a new facade for the scheduling API at baseURL.
func NewSchedulingHTTPFacade(baseURL string) *SchedulingHTTPFacade {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultTimeout).
		SetHeader("Accept", "application/json")
	return &SchedulingHTTPFacade{http: c}
}

// GetNextRelationship asks the scheduler for the next relationship the given
// user should vote on. A 204 means the user has no pending tasks and yields
// (nil, nil).
func (f *SchedulingHTTPFacade) GetNextRelationship(ctx context.Context, userID string) (*RelationshipTask, error) {
	var task RelationshipTask
	resp, err := f.http.R().SetContext(ctx).
		SetHeader("X-User-Id", userID).
		SetResult(&task).
		Get("/api/scheduling/next-relationship")
	if err != nil {
		logger.Log.Errorw("failed to fetch next relationship task", "user_id", userID, "error", err)
		return nil, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("scheduling API: %s", resp.Status())
	}
	return &task, nil
}

// SubmitVote submits a user's vote on a relationship and returns the updated
// tallies together with the recomputed entropy.
func (f *SchedulingHTTPFacade) SubmitVote(ctx context.Context, userID string, req VoteRequest) (*VoteResponse, error) {
	var out VoteResponse
	resp, err := f.http.R().SetContext(ctx).
		SetHeader("X-User-Id", userID).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/api/scheduling/vote")
	if err != nil {
		logger.Log.Errorw("failed to submit vote", "user_id", userID, "relationship_id", req.RelationshipID, "error", err)
		return nil, err
	}
	if resp.IsError() || !out.Success {
		if out.Error != "" {
			return nil, fmt.Errorf("scheduling API: %s", out.Error)
		}
		return nil, fmt.Errorf("scheduling API: %s", resp.Status())
	}
	return &out, nil
}
