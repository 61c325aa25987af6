// Package services contains the typed resource services of the LearnTrack
// client: thin wrappers that translate between Go models and the backend's
// REST endpoints. All recovery behavior lives below them in the dispatcher;
// a service only shapes requests and decodes payloads.
package services

import "context"

// Caller is the slice of the API client the services depend on.
type Caller interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
