package authapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequestFailed is returned when a request never produced a response.
	ErrRequestFailed = errors.New("authapi: request failed")
	// ErrInvalidResponse is returned when a success response body cannot be decoded.
	ErrInvalidResponse = errors.New("authapi: invalid response body")
)

// APIError is a non-2xx backend response. Message carries the backend's
// human-readable explanation when the body held one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// IsAuthFailure reports whether the error is an authentication failure (401).
func (e *APIError) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized
}

// IsForbidden reports whether the error is an authorization failure (403).
func (e *APIError) IsForbidden() bool {
	return e.Status == http.StatusForbidden
}

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
