package cmi5

import "fmt"

// LaunchError indicates malformed or incomplete launch parameters.
type LaunchError struct {
	Param string
	Err   error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("invalid launch parameter %q: %v", e.Param, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// AuthError indicates the auth token exchange with the LMS failed.
type AuthError struct {
	URL string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth token exchange with %s failed: %v", e.URL, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError indicates an LRS request failed. StatusCode is zero
// when the request never reached the server.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: HTTP %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
