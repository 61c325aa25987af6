package services

import (
	"context"
	"fmt"

	"github.com/xshsama/learntrack/internal/client/models"
)

// ProfileService reads and edits the current user's profile. Fetch also
// serves the session controller's startup restoration (it implements
// session.ProfileFetcher). Local session state stays out of this service;
// the caller merges a successful edit into the session afterwards.
type ProfileService struct {
	caller Caller
}

func NewProfileService(caller Caller) *ProfileService {
	return &ProfileService{caller: caller}
}

// Fetch retrieves the profile of the user owning the current token.
func (p *ProfileService) Fetch(ctx context.Context) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := p.caller.Get(ctx, "/profile", &user); err != nil {
		return nil, fmt.Errorf("fetch profile error: %w", err)
	}
	return &user, nil
}

// Update applies a partial edit server-side.
func (p *ProfileService) Update(ctx context.Context, patch models.ProfilePatch) error {
	if err := p.caller.Put(ctx, "/profile", patch, nil); err != nil {
		return fmt.Errorf("update profile error: %w", err)
	}
	return nil
}
