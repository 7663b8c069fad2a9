package gong

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Gong API operations.
var (
	// ErrMissingCredentials indicates the access key or secret is empty.
	ErrMissingCredentials = errors.New("gong: access key and access secret are required")

	// ErrUpstream indicates a request to the Gong API failed, either at the
	// network level or with a non-2xx response.
	ErrUpstream = errors.New("gong: upstream request failed")
)

// APIError carries the details of a non-2xx Gong API response.
type APIError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int

	// RequestID is Gong's request identifier, when the error body carried one.
	RequestID string

	// Messages holds the error strings from the response body, when parseable.
	Messages []string

	// Body is the raw response body, kept for diagnostics when the error
	// shape is not the documented one.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("gong: upstream request failed: status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	if e.Body != "" && len(e.Body) < 500 {
		return fmt.Sprintf("gong: upstream request failed: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("gong: upstream request failed: status %d", e.StatusCode)
}

// Unwrap makes APIError match ErrUpstream under errors.Is.
func (e *APIError) Unwrap() error {
	return ErrUpstream
}

// newAPIError builds an APIError from a response body, extracting Gong's
// documented error shape ({"requestId": "...", "errors": ["..."]}) when present.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var parsed struct {
		RequestID string   `json:"requestId"`
		Errors    []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.RequestID = parsed.RequestID
		apiErr.Messages = parsed.Errors
	}

	return apiErr
}
