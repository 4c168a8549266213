package bling

import (
	"errors"
	"fmt"
)

// ErrConfiguration is returned before any network I/O when no bearer token
// is configured.
var ErrConfiguration = errors.New("bling api token is not configured")

// ErrMalformedResponse is returned when a 2xx response body is not valid JSON.
var ErrMalformedResponse = errors.New("malformed response from bling")

// RemoteCallError covers every transport-level failure: connection errors,
// timeouts and non-2xx statuses. Request always returns these as
// *RemoteCallError; the underlying cause stays reachable through Unwrap.
type RemoteCallError struct {
	Method     string
	URL        string
	StatusCode int // zero when no response was received
	Cause      error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("bling request %s %s failed with status %d: %v", e.Method, e.URL, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("bling request %s %s failed: %v", e.Method, e.URL, e.Cause)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Cause
}
