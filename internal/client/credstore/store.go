// Package credstore persists the client's credential record: the bearer
// token and the cached user profile, written together on login and cleared
// together on logout. It is the single canonical store; the original
// application's localStorage/cookie dual-write collapses into this one
// abstraction, with the cookie's expiry reproduced as a TTL column.
package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/xshsama/learntrack/internal/client/models"
	"github.com/xshsama/learntrack/internal/dbx"
	"github.com/xshsama/learntrack/internal/logging"
)

// Storage keys, named after the original application's persisted state.
const (
	keyToken     = "authToken"
	keyUser      = "user"
	keyExpiresAt = "expiresAt"
)

// Record is the credential record read back from the store. A zero Token
// means no credentials are present.
type Record struct {
	Token     string
	User      *models.UserProfile
	ExpiresAt time.Time
}

// Empty reports whether the record carries no token.
func (r Record) Empty() bool { return r.Token == "" }

// Store is the persistence contract the dispatcher and session controller
// depend on.
//
//   - Write persists token and user together (login, full refresh).
//   - WriteToken replaces the token only (token refresh).
//   - WriteUser replaces the cached user only (profile edits).
//   - Read never fails on malformed or expired data; it degrades to an
//     empty record and logs what it dropped.
//   - Clear removes token and user in one transaction.
type Store interface {
	Write(ctx context.Context, token string, user *models.UserProfile, ttl time.Duration) error
	WriteToken(ctx context.Context, token string) error
	WriteUser(ctx context.Context, user *models.UserProfile) error
	Read(ctx context.Context) (Record, error)
	Clear(ctx context.Context) error
}

// SQLiteStore keeps the credential record in a sqlite key-value table.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger

	// now is a test seam for TTL checks.
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &SQLiteStore{db: db, log: log, now: time.Now}
}

func set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

// Write persists the token, the serialized user, and the expiry timestamp in
// a single transaction so a concurrent reader never observes a half-written
// record.
func (s *SQLiteStore) Write(ctx context.Context, token string, user *models.UserProfile, ttl time.Duration) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	expiresAt := s.now().Add(ttl).UTC().Format(time.RFC3339)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		if err := set(ctx, tx, keyUser, userJSON); err != nil {
			return err
		}
		return set(ctx, tx, keyExpiresAt, []byte(expiresAt))
	})
}

// WriteToken replaces the stored token, leaving the cached user and the
// expiry untouched. Used after a successful refresh.
func (s *SQLiteStore) WriteToken(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return set(ctx, tx, keyToken, []byte(token))
	})
}

// WriteUser replaces the cached user profile, preserving the token.
func (s *SQLiteStore) WriteUser(ctx context.Context, user *models.UserProfile) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return set(ctx, tx, keyUser, userJSON)
	})
}

// Read returns the current record. Malformed stored data is not an error:
// an unparsable user blob yields a record without a user, and an expired or
// unparsable expiry yields an empty record. Both cases are logged.
func (s *SQLiteStore) Read(ctx context.Context) (Record, error) {
	tokenRaw, err := s.get(ctx, keyToken)
	if err != nil {
		return Record{}, err
	}
	if len(tokenRaw) == 0 {
		return Record{}, nil
	}

	rec := Record{Token: string(tokenRaw)}

	if expRaw, err := s.get(ctx, keyExpiresAt); err != nil {
		return Record{}, err
	} else if len(expRaw) > 0 {
		exp, perr := time.Parse(time.RFC3339, string(expRaw))
		if perr != nil {
			s.log.Warn(ctx, "stored credential expiry is malformed, treating credentials as absent", "err", perr)
			return Record{}, nil
		}
		if exp.Before(s.now()) {
			s.log.Info(ctx, "stored credentials expired", "expired_at", exp)
			return Record{}, nil
		}
		rec.ExpiresAt = exp
	}

	userRaw, err := s.get(ctx, keyUser)
	if err != nil {
		return Record{}, err
	}
	if len(userRaw) > 0 {
		var user models.UserProfile
		if uerr := json.Unmarshal(userRaw, &user); uerr != nil {
			s.log.Warn(ctx, "stored user profile is malformed, treating it as absent", "err", uerr)
		} else if user.Username != "" {
			rec.User = &user
		}
	}

	return rec, nil
}

// Clear removes every credential key in one transaction. Clearing an already
// empty store succeeds.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		return nil
	})
}
