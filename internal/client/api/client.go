package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xshsama/learntrack/internal/client/credstore"
	"github.com/xshsama/learntrack/internal/common"
	"github.com/xshsama/learntrack/internal/logging"
)

const refreshPath = "/auth/refresh-token"

// authPathPrefix marks endpoints that must be called unauthenticated, so a
// missing or expired token can never block login, registration, or the
// refresh itself.
const authPathPrefix = "/auth/"

// CredentialSource is the slice of the credential store the dispatcher
// needs: read the token before every call, persist a refreshed one, and
// clear everything on irrecoverable failure.
type CredentialSource interface {
	Read(ctx context.Context) (credstore.Record, error)
	WriteToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SessionListener is notified when the dispatcher tears a session down
// after an irrecoverable 401. The session controller registers itself here;
// a mutable global callback is deliberately avoided.
type SessionListener interface {
	OnSessionExpired(ctx context.Context)
}

// Client dispatches HTTP requests against the backend, attaching the stored
// bearer token and recovering from authentication failures.
type Client struct {
	baseURL  string
	hc       *http.Client
	creds    CredentialSource
	listener SessionListener
	log      logging.Logger
}

func NewClient(baseURL string, creds CredentialSource, timeout time.Duration, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With("component", "api"),
	}
}

// RegisterSessionListener wires the logout observer. Must be called before
// requests are dispatched; typically right after the session controller is
// constructed.
func (c *Client) RegisterSessionListener(l SessionListener) {
	c.listener = l
}

// Get issues a GET and decodes the envelope payload into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

// Post marshals body, issues a POST, and decodes the payload into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out)
}

// Put marshals body, issues a PUT, and decodes the payload into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to serialize request body: %w", err)
		}
	}

	env, err := c.Do(ctx, NewDescriptor(method, path, raw))
	if err != nil {
		return err
	}
	return env.Decode(out)
}

// Do runs the full lifecycle for one descriptor: dispatch, classify,
// recover at most once, and return the final envelope or error.
func (c *Client) Do(ctx context.Context, d *Descriptor) (*Envelope, error) {
	status, env, err := c.dispatch(ctx, d)
	if err != nil {
		return nil, err
	}

	switch classify(status, env) {
	case http.StatusForbidden:
		return c.recoverForbidden(ctx, d, status, env)
	case http.StatusUnauthorized:
		return c.recoverUnauthorized(ctx, d, status, env)
	case 0:
		return env, nil
	default:
		return nil, newAPIError(status, env)
	}
}

// classify returns 0 for success, or the effective failure status. The
// envelope code stands in for the HTTP status when the transport answered
// 2xx but the application reported a failure.
func classify(status int, env *Envelope) int {
	effective := status
	if status >= 200 && status < 300 {
		if env == nil || env.Code == 0 || env.Code == 200 {
			return 0
		}
		effective = env.Code
	}
	return effective
}

// dispatch performs one HTTP round trip, attaching the bearer token unless
// the path is an auth endpoint. It returns the status and parsed envelope;
// a body that is not a valid envelope yields a nil envelope, not an error.
func (c *Client) dispatch(ctx context.Context, d *Descriptor) (int, *Envelope, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, d.Method, c.baseURL+d.Path, bytes.NewReader(d.Body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	for k, vs := range d.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if len(d.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", d.ID)

	if !strings.HasPrefix(d.Path, authPathPrefix) {
		if rec, rerr := c.creds.Read(ctx); rerr != nil {
			c.log.Warn(ctx, "failed to read credentials, sending request unauthenticated", "err", rerr)
		} else if !rec.Empty() {
			req.Header.Set("Authorization", "Bearer "+rec.Token)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "request_id", d.ID, "method", d.Method, "path", d.Path, "err", err)
		return 0, nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var env *Envelope
	if len(raw) > 0 {
		var e Envelope
		if uerr := json.Unmarshal(raw, &e); uerr == nil {
			env = &e
		}
	}

	c.log.Info(ctx, "request completed",
		"request_id", d.ID, "method", d.Method, "path", d.Path,
		"status", resp.StatusCode, "duration", time.Since(start))

	return resp.StatusCode, env, nil
}

// recoverForbidden handles a 403: one refresh, one replay. A failed refresh
// surfaces the original 403 unchanged; a 403 can be a genuine authorization
// denial, so the session is never torn down here.
func (c *Client) recoverForbidden(ctx context.Context, d *Descriptor, status int, env *Envelope) (*Envelope, error) {
	if d.retried() {
		return nil, newAPIError(status, env)
	}
	d.markRetried()

	token, err := c.refresh(ctx)
	if err != nil {
		c.log.Warn(ctx, "refresh after 403 failed, surfacing original error", "request_id", d.ID, "err", err)
		return nil, newAPIError(status, env)
	}
	if err := c.creds.WriteToken(ctx, token); err != nil {
		return nil, newAPIError(status, env)
	}
	return c.replay(ctx, d)
}

// recoverUnauthorized handles a 401: adopt a server-embedded replacement
// token if the body carries one, otherwise refresh explicitly. When both
// paths fail the session is irrecoverable.
func (c *Client) recoverUnauthorized(ctx context.Context, d *Descriptor, status int, env *Envelope) (*Envelope, error) {
	if d.retried() {
		return nil, newAPIError(status, env)
	}
	d.markRetried()

	if token := embeddedToken(env); token != "" {
		c.log.Info(ctx, "adopting server-embedded replacement token", "request_id", d.ID)
		if err := c.creds.WriteToken(ctx, token); err == nil {
			return c.replay(ctx, d)
		}
		c.log.Warn(ctx, "failed to persist embedded token, trying refresh", "request_id", d.ID)
	}
	if token, err := c.refresh(ctx); err == nil {
		if werr := c.creds.WriteToken(ctx, token); werr == nil {
			return c.replay(ctx, d)
		}
	}

	c.log.Warn(ctx, "session irrecoverable, logging out", "request_id", d.ID)
	if err := c.creds.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credentials", "err", err)
	}
	if c.listener != nil {
		c.listener.OnSessionExpired(ctx)
	}
	return nil, fmt.Errorf("%w: %v", common.ErrSessionExpired, newAPIError(status, env))
}

// replay re-issues an already-retried descriptor. Whatever comes back is
// terminal: failures, including a repeated 401/403, are surfaced as-is.
func (c *Client) replay(ctx context.Context, d *Descriptor) (*Envelope, error) {
	status, env, err := c.dispatch(ctx, d)
	if err != nil {
		return nil, err
	}
	if classify(status, env) != 0 {
		return nil, newAPIError(status, env)
	}
	return env, nil
}

// refresh exchanges the currently stored token for a new one. The refresh
// endpoint is an auth path, so the exchange itself is sent unauthenticated
// and can never recurse into recovery.
func (c *Client) refresh(ctx context.Context) (string, error) {
	rec, err := c.creds.Read(ctx)
	if err != nil {
		return "", err
	}
	if rec.Empty() {
		return "", common.ErrNotAuthenticated
	}

	body, err := json.Marshal(tokenPayload{Token: rec.Token})
	if err != nil {
		return "", err
	}

	d := NewDescriptor(http.MethodPost, refreshPath, body)
	status, env, err := c.dispatch(ctx, d)
	if err != nil {
		return "", err
	}
	if classify(status, env) != 0 {
		return "", newAPIError(status, env)
	}

	var p tokenPayload
	if env == nil || env.Decode(&p) != nil || p.Token == "" {
		return "", fmt.Errorf("refresh response carried no token")
	}

	if ttl, ok := tokenTTL(p.Token); ok {
		c.log.Info(ctx, "token refreshed", "expires_in", ttl)
	} else {
		c.log.Info(ctx, "token refreshed")
	}
	return p.Token, nil
}

// tokenTTL reports the remaining validity of a JWT bearer token. The claims
// are not verified; this feeds logging only, never a decision.
func tokenTTL(token string) (time.Duration, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	return time.Until(exp.Time), true
}
