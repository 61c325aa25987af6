package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xshsama/learntrack/internal/client/credstore"
	"github.com/xshsama/learntrack/internal/client/models"
	"github.com/xshsama/learntrack/internal/common"
	"github.com/xshsama/learntrack/internal/logging"
)

// ---- fakes ----

type fakeStore struct {
	rec credstore.Record

	writeCalls  int
	userWrites  int
	clearCalls  int
	readErr     error
	clearErr    error
	writeErr    error
	lastTTL     time.Duration
	lastWritten *models.UserProfile
}

func (f *fakeStore) Write(ctx context.Context, token string, user *models.UserProfile, ttl time.Duration) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writeCalls++
	f.lastTTL = ttl
	f.rec = credstore.Record{Token: token, User: user}
	return nil
}

func (f *fakeStore) WriteToken(ctx context.Context, token string) error {
	f.rec.Token = token
	return nil
}

func (f *fakeStore) WriteUser(ctx context.Context, user *models.UserProfile) error {
	f.userWrites++
	f.lastWritten = user
	f.rec.User = user
	return nil
}

func (f *fakeStore) Read(ctx context.Context) (credstore.Record, error) {
	if f.readErr != nil {
		return credstore.Record{}, f.readErr
	}
	return f.rec, nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.clearCalls++
	f.rec = credstore.Record{}
	return nil
}

type fakeFetcher struct {
	user  *models.UserProfile
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context) (*models.UserProfile, error) {
	f.calls++
	return f.user, f.err
}

func newController(store *fakeStore, fetcher *fakeFetcher) *Controller {
	return NewController(store, fetcher, 7*24*time.Hour, logging.NewNopLogger())
}

// ---- tests ----

func TestLogin_SetsStateAndPersists(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, &fakeFetcher{})
	ctx := context.Background()

	user := &models.UserProfile{Username: "alice"}
	require.NoError(t, c.Login(ctx, "abc123", user))

	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, "alice", c.CurrentUser().Username)
	assert.Equal(t, 1, store.writeCalls)
	assert.Equal(t, 7*24*time.Hour, store.lastTTL)
}

func TestLogout_IsIdempotent(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, &fakeFetcher{})
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "abc123", &models.UserProfile{Username: "alice"}))

	require.NoError(t, c.Logout(ctx))
	require.NoError(t, c.Logout(ctx))

	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.CurrentUser())
	assert.True(t, store.rec.Empty())
}

func TestUpdateUser_MergesAndPersists(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, &fakeFetcher{})
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "abc123", &models.UserProfile{Username: "alice", Nickname: "al"}))

	nick := "allie"
	updated, err := c.UpdateUser(ctx, models.ProfilePatch{Nickname: &nick})
	require.NoError(t, err)

	assert.Equal(t, "allie", updated.Nickname)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "allie", c.CurrentUser().Nickname)
	assert.Equal(t, 1, store.userWrites)
	// token preserved
	assert.Equal(t, "abc123", store.rec.Token)
}

func TestUpdateUser_NoopWhenLoggedOut(t *testing.T) {
	c := newController(&fakeStore{}, &fakeFetcher{})

	nick := "x"
	_, err := c.UpdateUser(context.Background(), models.ProfilePatch{Nickname: &nick})
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestRestore_NoToken(t *testing.T) {
	c := newController(&fakeStore{}, &fakeFetcher{})

	require.NoError(t, c.Restore(context.Background()))
	assert.False(t, c.IsAuthenticated())
	assert.False(t, c.IsLoading())
}

func TestRestore_TrustsCachedUserWithoutFetch(t *testing.T) {
	store := &fakeStore{rec: credstore.Record{
		Token: "abc123",
		User:  &models.UserProfile{Username: "alice"},
	}}
	fetcher := &fakeFetcher{}
	c := newController(store, fetcher)

	require.NoError(t, c.Restore(context.Background()))

	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, "alice", c.CurrentUser().Username)
	assert.Zero(t, fetcher.calls, "cached user must be adopted without a server round trip")
}

func TestRestore_FetchesWhenUserMissing(t *testing.T) {
	store := &fakeStore{rec: credstore.Record{Token: "abc123"}}
	fetcher := &fakeFetcher{user: &models.UserProfile{Username: "alice"}}
	c := newController(store, fetcher)

	require.NoError(t, c.Restore(context.Background()))

	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, store.userWrites, "fetched profile is persisted")
}

func TestRestore_InvalidTokenClearsStore(t *testing.T) {
	store := &fakeStore{rec: credstore.Record{Token: "bad"}}
	fetcher := &fakeFetcher{err: errors.New("401")}
	c := newController(store, fetcher)

	require.NoError(t, c.Restore(context.Background()))

	assert.False(t, c.IsAuthenticated())
	assert.Equal(t, 1, store.clearCalls)
	assert.False(t, c.IsLoading())
}

func TestOnSessionExpired_ResetsState(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, &fakeFetcher{})
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "abc123", &models.UserProfile{Username: "alice"}))

	c.OnSessionExpired(ctx)

	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.CurrentUser())
}
