package authctl

import (
	"github.com/storeratings/authkit/core/authapi"
)

// Fallback messages shown when neither the backend nor the transport
// produced anything displayable.
const (
	loginFallback  = "Failed to log in. Please check your credentials."
	signupFallback = "Failed to sign up. Please check your information."
)

// AuthError is a rejected login or signup. Error() is the display-ready
// message a form can show inline; the structured cause stays reachable
// through Unwrap for logging but is not part of the display contract.
type AuthError struct {
	Message string
	cause   error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.cause }

// flatten collapses a failed credential call into an *AuthError, preferring
// the backend's {message} body, then the transport error text, then the
// fixed fallback.
func flatten(err error, fallback string) *AuthError {
	msg := fallback
	if apiErr, ok := authapi.AsAPIError(err); ok {
		if apiErr.Message != "" {
			msg = apiErr.Message
		}
	} else if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &AuthError{Message: msg, cause: err}
}
