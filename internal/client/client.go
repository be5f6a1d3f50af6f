// Package client is a typed HTTP client for the memo-bench REST API. It is
// the remote-backed counterpart of the local service layer: both honor the
// same {success, error?, data?} contract, so callers are interchangeable.
package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds every API round trip; there are no retries.
const DefaultTimeout = 10 * time.Second

// Client talks to a remote memo-bench API server.
type Client struct {
	http *resty.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultTimeout).
		SetHeader("Content-Type", "application/json")
	return &Client{http: c}
}

// statusResponse mirrors the payload-free success envelope.
type statusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// apiError converts a failure envelope into an error, falling back to the
// HTTP status when the body carried no message.
func apiError(resp *resty.Response, msg string) error {
	if msg == "" {
		msg = resp.Status()
	}
	return fmt.Errorf("api: %s", msg)
}

// isNotFound reports whether the response is a secondary-key miss.
func isNotFound(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusNotFound
}
