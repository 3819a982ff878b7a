// Package client provides the HTTP client used by the healthcheck binary
// to query a running server's status endpoint.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/avdorokhov/devops-demo/models"
)

// StatusClient queries the /api/status/ endpoint of a running server.
// It wraps a resty.Client with its own connection pool and state.
type StatusClient struct {
	http    *resty.Client
	baseURL string
}

// NewStatusClient returns a client for the server at baseURL,
// e.g. "http://localhost:8080".
func NewStatusClient(baseURL string) *StatusClient {
	return &StatusClient{
		http:    resty.New(),
		baseURL: baseURL,
	}
}

// Fetch requests the current status. It returns an error when the request
// fails or the server answers with a non-200 code.
func (c *StatusClient) Fetch(ctx context.Context) (models.Status, error) {
	var status models.Status

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&status).
		Get(c.baseURL + "/api/status/")
	if err != nil {
		return models.Status{}, fmt.Errorf("error requesting status: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return models.Status{}, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode())
	}

	return status, nil
}
