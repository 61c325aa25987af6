// Package session owns the client's authentication state: the authenticated
// flag, the current user, and the startup restoration sequence. All
// mutations go through the Controller; nothing else touches the state.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xshsama/learntrack/internal/client/credstore"
	"github.com/xshsama/learntrack/internal/client/models"
	"github.com/xshsama/learntrack/internal/common"
	"github.com/xshsama/learntrack/internal/logging"
)

// ProfileFetcher retrieves the current user's profile from the backend.
// The profile service implements it; the indirection keeps this package
// free of a dependency on the service layer.
type ProfileFetcher interface {
	Fetch(ctx context.Context) (*models.UserProfile, error)
}

// Controller holds the session state. The invariant authenticated ==
// (currentUser != nil) is maintained under the mutex; the loading flag is
// true only while Restore runs.
type Controller struct {
	mu            sync.Mutex
	authenticated bool
	currentUser   *models.UserProfile
	loading       bool

	store    credstore.Store
	profiles ProfileFetcher
	ttl      time.Duration
	log      logging.Logger
}

func NewController(store credstore.Store, profiles ProfileFetcher, ttl time.Duration, log logging.Logger) *Controller {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Controller{
		store:    store,
		profiles: profiles,
		ttl:      ttl,
		log:      log.With("component", "session"),
	}
}

// IsAuthenticated reports whether a user is logged in.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

// IsLoading reports whether startup restoration is still in progress.
func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (c *Controller) CurrentUser() *models.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentUser == nil {
		return nil
	}
	u := *c.currentUser
	return &u
}

// Login persists the credential record and marks the session authenticated.
func (c *Controller) Login(ctx context.Context, token string, user *models.UserProfile) error {
	if err := c.store.Write(ctx, token, user, c.ttl); err != nil {
		return err
	}
	c.setUser(user)
	c.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

// Logout clears the credential store and resets the session. Safe to call
// repeatedly; logging out while logged out is a successful no-op.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.setUser(nil)
	return nil
}

// OnSessionExpired implements the dispatcher's session listener: the
// credential store has already been cleared, so only the in-memory state is
// reset here. Logout is idempotent, so clearing again would also be fine.
func (c *Controller) OnSessionExpired(ctx context.Context) {
	c.log.Warn(ctx, "session expired, please log in again")
	c.setUser(nil)
}

// UpdateUser merges patch into the current user and persists the result,
// preserving the token. Returns common.ErrNotAuthenticated when logged out.
func (c *Controller) UpdateUser(ctx context.Context, patch models.ProfilePatch) (*models.UserProfile, error) {
	c.mu.Lock()
	if !c.authenticated {
		c.mu.Unlock()
		return nil, common.ErrNotAuthenticated
	}
	merged := patch.Apply(*c.currentUser)
	c.mu.Unlock()

	if err := c.store.WriteUser(ctx, &merged); err != nil {
		return nil, err
	}
	c.setUser(&merged)
	return &merged, nil
}

// Restore runs the startup recovery sequence once per application load:
//
//  1. no stored token → stay unauthenticated;
//  2. token plus cached user → adopt the cached user without a server round
//     trip; a revoked token surfaces on the next request via the 401/403
//     recovery flow;
//  3. token without cached user → fetch the profile with the stored token;
//     adopt on success, clear the store and stay logged out on failure.
func (c *Controller) Restore(ctx context.Context) error {
	c.setLoading(true)
	defer c.setLoading(false)

	rec, err := c.store.Read(ctx)
	if err != nil {
		return err
	}
	if rec.Empty() {
		c.log.Debug(ctx, "no stored credentials")
		return nil
	}

	if rec.User != nil {
		c.setUser(rec.User)
		c.log.Info(ctx, "session restored from cache", "username", rec.User.Username)
		return nil
	}

	user, err := c.profiles.Fetch(ctx)
	if err != nil {
		c.log.Warn(ctx, "stored token rejected, clearing credentials", "err", err)
		if cerr := c.store.Clear(ctx); cerr != nil {
			return errors.Join(err, cerr)
		}
		return nil
	}

	if err := c.store.WriteUser(ctx, user); err != nil {
		return err
	}
	c.setUser(user)
	c.log.Info(ctx, "session restored from server", "username", user.Username)
	return nil
}

func (c *Controller) setUser(u *models.UserProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentUser = u
	c.authenticated = u != nil
}

func (c *Controller) setLoading(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = v
}
