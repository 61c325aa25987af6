package api

import (
	"fmt"
	"net/http"

	"github.com/xshsama/learntrack/internal/common"
)

// Error is a request failure carrying the HTTP status, the envelope code,
// and the server-provided message, when present.
type Error struct {
	Status  int    // HTTP status code
	Code    int    // application code from the response envelope
	Message string // server-provided message
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d, code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error (status %d, code %d)", e.Status, e.Code)
}

// Is lets errors.Is match an *Error against the shared sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.effectiveStatus() == http.StatusUnauthorized
	case common.ErrForbidden:
		return e.effectiveStatus() == http.StatusForbidden
	case common.ErrNotFound:
		return e.effectiveStatus() == http.StatusNotFound
	}
	return false
}

// effectiveStatus prefers the HTTP status; when the transport answered 2xx
// but the envelope carried a failure code, the envelope code is the status.
func (e *Error) effectiveStatus() int {
	if e.Status >= 200 && e.Status < 300 {
		return e.Code
	}
	return e.Status
}

func newAPIError(status int, env *Envelope) *Error {
	e := &Error{Status: status}
	if env != nil {
		e.Code = env.Code
		e.Message = env.Message
	}
	return e
}
