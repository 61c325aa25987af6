package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xshsama/learntrack/internal/client/api"
	"github.com/xshsama/learntrack/internal/client/credstore"
	"github.com/xshsama/learntrack/internal/client/models"
	"github.com/xshsama/learntrack/internal/common"
	"github.com/xshsama/learntrack/internal/logging"

	_ "modernc.org/sqlite"
)

// TestExpiredSessionLifecycle wires the real store, dispatcher, and
// controller together: a cached session is restored without any network
// traffic, then an expired token with a failing refresh tears it down.
func TestExpiredSessionLifecycle(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", "file:lifecycle?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE credentials (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	store := credstore.NewSQLiteStore(db, logging.NewNopLogger())
	require.NoError(t, store.Write(ctx, "abc123", &models.UserProfile{Username: "alice"}, time.Hour))

	var networkCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		networkCalls++
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 401})
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		networkCalls++
		var p map[string]string
		_ = json.NewDecoder(r.Body).Decode(&p)
		assert.Equal(t, "abc123", p["token"])
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 500})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, store, 5*time.Second, logging.NewNopLogger())
	ctrl := NewController(store, nil, time.Hour, logging.NewNopLogger())
	client.RegisterSessionListener(ctrl)

	// restoration adopts the cached user with zero network calls
	require.NoError(t, ctrl.Restore(ctx))
	require.True(t, ctrl.IsAuthenticated())
	require.Equal(t, "alice", ctrl.CurrentUser().Username)
	require.Zero(t, networkCalls)

	// an expired token plus a failing refresh ends the session
	err = client.Get(ctx, "/api/tasks", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSessionExpired)

	assert.False(t, ctrl.IsAuthenticated())
	assert.Nil(t, ctrl.CurrentUser())

	rec, err := store.Read(ctx)
	require.NoError(t, err)
	assert.True(t, rec.Empty())
}
