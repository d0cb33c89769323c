// Package client is the HostelHut API client. All backend calls pass
// through a single request path that injects the session's access token
// and transparently refreshes it once on a 401 response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hostelhut/hostelhut/pkg/domain"
	"github.com/hostelhut/hostelhut/pkg/session"
)

// Client is the HostelHut API client.
type Client struct {
	baseURL    string
	session    *session.Store
	httpClient *http.Client
	refresh    singleflight.Group
	onExpired  func()
}

// New creates a new API client over the given session store.
func New(baseURL string, sess *session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		session: sess,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// OnSessionExpired registers a callback fired when a 401 cannot be
// recovered and the session has been cleared. The TUI uses it to drop
// back to the landing view. Not safe to call concurrently with requests.
func (c *Client) OnSessionExpired(fn func()) {
	c.onExpired = fn
}

// Session returns the session store the client reads tokens from.
func (c *Client) Session() *session.Store {
	return c.session
}

// reqOpts shapes a single request through the wrapper.
type reqOpts struct {
	body        []byte
	contentType string
	// skipAuth suppresses access-token injection and the refresh-on-401
	// branch. Requests that authenticate with the refresh token set
	// authToken instead; it implies skipAuth.
	skipAuth  bool
	authToken string
	// fallback is the human-readable message used when an error body
	// has no message field.
	fallback string
}

// do sends one request. Unless opted out it carries the current access
// token verbatim as the Authorization header (no "Bearer " scheme —
// the platform convention is the raw token string). On a 401 it runs
// the refresh protocol and retries the original request at most once.
func (c *Client) do(ctx context.Context, method, path string, opts reqOpts, out any) error {
	token := ""
	switch {
	case opts.authToken != "":
		token = opts.authToken
	case !opts.skipAuth:
		token = c.session.AccessToken()
	}

	resp, err := c.send(ctx, method, path, opts, token)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !opts.skipAuth && opts.authToken == "" {
		if c.session.RefreshToken() == "" {
			// Nothing to refresh with: clear the session and surface
			// the original 401.
			httpErr := readError(resp, opts.fallback)
			closeBody(resp)
			c.expireSession()
			return httpErr
		}

		closeBody(resp)
		newToken, refreshErr := c.refreshSession(ctx)
		if refreshErr != nil {
			c.expireSession()
			return fmt.Errorf("refresh session: %w", refreshErr)
		}

		// Retry exactly once with the new access token. A second 401
		// falls through to the error path below.
		resp, err = c.send(ctx, method, path, opts, newToken)
		if err != nil {
			return fmt.Errorf("retry request: %w", err)
		}
	}
	defer closeBody(resp)

	if resp.StatusCode >= 400 {
		return readError(resp, opts.fallback)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// send performs a single HTTP exchange with no retry logic.
func (c *Client) send(ctx context.Context, method, path string, opts reqOpts, token string) (*http.Response, error) {
	var body io.Reader
	if opts.body != nil {
		body = bytes.NewReader(opts.body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if opts.contentType != "" {
		req.Header.Set("Content-Type", opts.contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return c.httpClient.Do(req)
}

// refreshSession exchanges the refresh token for a new token pair and
// stores it. Concurrent callers coalesce onto a single in-flight
// refresh so a burst of 401s issues one refresh call, not one each.
func (c *Client) refreshSession(ctx context.Context) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		refreshToken := c.session.RefreshToken()
		if refreshToken == "" {
			return nil, ErrNoRefreshToken
		}

		resp, err := c.send(ctx, http.MethodGet, "/api/auth/refresh", reqOpts{}, refreshToken)
		if err != nil {
			return nil, fmt.Errorf("refresh request: %w", err)
		}
		defer closeBody(resp)

		if resp.StatusCode >= 400 {
			return nil, readError(resp, "Token refresh failed")
		}

		var payload domain.AuthPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode refresh response: %w", err)
		}
		if err := c.session.UpdateTokens(payload.AccessToken, payload.RefreshToken); err != nil {
			return nil, err
		}
		return payload.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// expireSession clears the local session and notifies the UI. Clearing
// is unconditional; a storage error here cannot make the tokens valid
// again.
func (c *Client) expireSession() {
	c.session.Clear() //nolint:errcheck
	if c.onExpired != nil {
		c.onExpired()
	}
}

// readError turns an error response into an *HTTPError, preferring the
// body's message field over the fallback.
func readError(resp *http.Response, fallback string) *HTTPError {
	msg := fallback
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
	if err == nil {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
}

func closeBody(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck // drain for connection reuse
	resp.Body.Close()                                    //nolint:errcheck // best-effort close
}

// jsonBody marshals v for use as a request body.
func jsonBody(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	return data, nil
}
