package api

import (
	"errors"
	"fmt"
)

// ErrNotOnboarded is returned when wedding details are absent after login.
// Routing logic uses it to branch into the onboarding flow.
var ErrNotOnboarded = errors.New("wedding details not submitted yet")

// ValidationError reports a client-side form check failure. Operations
// returning it never reached the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequestError reports a failed API call: either a non-2xx response or a
// transport failure. Message carries the server-provided reason when the
// response body had an "error" or "message" field, a generic fallback
// otherwise. StatusCode is zero for transport failures.
type RequestError struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() error { return e.cause }
