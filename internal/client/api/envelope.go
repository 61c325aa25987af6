package api

import (
	"encoding/json"
	"fmt"
)

// Envelope is the backend's uniform response wrapper. Code 200 denotes
// success regardless of payload shape.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Decode unmarshals the envelope payload into out. A nil out or empty
// payload is a no-op. The receiver may be nil: a 2xx response with an
// empty or non-envelope body yields no envelope at all.
func (e *Envelope) Decode(out any) error {
	if e == nil || out == nil || len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}

// tokenPayload is the refresh-endpoint payload shape; the same shape is
// looked for inside a 401 body when the server refreshed transparently.
type tokenPayload struct {
	Token string `json:"token"`
}

// embeddedToken extracts a server-issued replacement token from a failure
// envelope, or "" when none is present.
func embeddedToken(env *Envelope) string {
	if env == nil || len(env.Data) == 0 {
		return ""
	}
	var p tokenPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return ""
	}
	return p.Token
}
