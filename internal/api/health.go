package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Health is the body of GET /health.
type Health struct {
	Status   string          `json:"status"`
	Service  string          `json:"service"`
	Version  string          `json:"version"`
	Database string          `json:"database"`
	Features map[string]bool `json:"features"`
	Error    string          `json:"error"`
}

// Healthy reports whether the API declared itself healthy.
func (h Health) Healthy() bool { return h.Status == "healthy" }

// Status is the body of GET /status.
type Status struct {
	APIVersion string            `json:"api_version"`
	Status     string            `json:"status"`
	Endpoints  map[string]string `json:"endpoints"`
	Features   map[string]bool   `json:"features"`
}

// Health checks the API and its database. A 503 answer is reported as an
// unhealthy Health rather than an error.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	err := c.get(ctx, "health", "/health", &h)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusServiceUnavailable {
		return &Health{Status: "unhealthy", Error: apiErr.Message}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return &h, nil
}

// Status returns the API version and feature flags.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var s Status
	if err := c.get(ctx, "status", "/status", &s); err != nil {
		return nil, fmt.Errorf("api status: %w", err)
	}
	return &s, nil
}
