package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/moogar0880/problems"
)

// Errors returned for well-known response codes.
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrRateLimited  = errors.New("too many requests, please try again later")
)

// APIError is a non-2xx response other than 401 and 429.
type APIError struct {
	Status  int
	Message string
	Problem *problems.Problem
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

// NotFound reports whether the API answered 404.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

// errorBody covers the error shapes the API produces.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// responseError builds the error for a failed response.
func responseError(status int, contentType string, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}

	apiErr := &APIError{Status: status}
	if strings.HasPrefix(contentType, problems.ProblemMediaType) {
		var p problems.Problem
		if err := json.Unmarshal(body, &p); err == nil {
			apiErr.Problem = &p
			apiErr.Message = p.Detail
			if apiErr.Message == "" {
				apiErr.Message = p.Title
			}
		}
	}
	if apiErr.Message == "" {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return apiErr
}

// IsRetryable reports whether a GET that failed with err is worth repeating.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}
