package api

import (
	"net/http"

	"github.com/google/uuid"
)

// Descriptor is the in-flight representation of one HTTP call. The body is
// kept as bytes so a retried request replays identical content. The attempt
// counter flips 0→1 at most once, and only the failure classifier touches
// it; a descriptor that has been retried never re-enters recovery.
type Descriptor struct {
	ID     string
	Method string
	Path   string
	Body   []byte
	Header http.Header

	attempts int
}

// NewDescriptor builds a descriptor with a fresh request id.
func NewDescriptor(method, path string, body []byte) *Descriptor {
	return &Descriptor{
		ID:     uuid.NewString(),
		Method: method,
		Path:   path,
		Body:   body,
		Header: make(http.Header),
	}
}

func (d *Descriptor) retried() bool { return d.attempts > 0 }

func (d *Descriptor) markRetried() { d.attempts = 1 }
