// Package common contains shared constants, sentinel errors, and small
// utilities used across the LearnTrack client. Callers should use errors.Is
// to match the sentinel values.
package common

import "errors"

var (
	// ErrNotFound is returned when the server reports a missing resource.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable covers transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps HTTP 401 before any recovery is attempted.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps HTTP 403 that survived the recovery attempt.
	ErrForbidden = errors.New("forbidden")

	// ErrSessionExpired marks an irrecoverable 401: the refresh failed and
	// the session was torn down. The user must log in again.
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrNotAuthenticated is returned by operations that require an active
	// session when there is none.
	ErrNotAuthenticated = errors.New("not authenticated")
)
