package client

import (
	"context"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Client is an authenticated-session client for the Alliant REST API.
// Construct it with [New], call [Client.Login] before issuing requests, and
// [Client.Logout] when done so no server-side session is left orphaned.
//
// A Client is safe for concurrent use by multiple goroutines. Login and
// logout are serialized internally, so concurrent requests that hit a
// retryable error share a single session refresh between them.
type Client struct {
	baseURL string
	options *Options
	http    *resty.Client
	session *session

	// refreshMu serializes login/logout so the session token is never
	// mutated by two callers at once.
	refreshMu sync.Mutex

	// retryMu guards the retryable status code set, which can be replaced
	// at runtime through SetRetryableStatusCodes.
	retryMu sync.RWMutex

	userXURLBase         string
	adjustmentHeadersURL string
	contactsURL          string
	contractsURL         string
	metadataResetURL     string
}

// New creates a Client for the API rooted at baseURL. The URL is normalized
// to end in the fixed "/api" segment with no trailing slash, so both
// "https://host/alliant" and "https://host/alliant/api/" are accepted.
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	base := normalizeBaseURL(baseURL)

	httpClient := resty.New().
		SetTimeout(options.requestTimeout).
		SetRetryCount(0) // the executor owns retries; resty must not add its own

	return &Client{
		baseURL:              base,
		options:              options,
		http:                 httpClient,
		session:              newSession(options.requestHeaders),
		userXURLBase:         base + "/data/user",
		adjustmentHeadersURL: base + "/data/adjustmentHeaders",
		contactsURL:          base + "/data/contacts",
		contractsURL:         base + "/data/contracts",
		metadataResetURL:     base + "/metadata/reset",
	}
}

// normalizeBaseURL strips a trailing slash and appends the fixed "api"
// segment unless the URL already ends in it.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")

	if !strings.HasSuffix(baseURL, "api") {
		baseURL += "/api"
	}

	return baseURL
}

// BaseURL returns the normalized root endpoint the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the current session token, or the empty string when not
// logged in.
func (c *Client) Token() string {
	return c.session.Token()
}

// TokenExpires returns the expiry hint the server reported at login. It is
// advisory only; the client reacts to server-reported failures rather than
// checking it.
func (c *Client) TokenExpires() string {
	return c.session.Expires()
}

// SetRetryableStatusCodes replaces the set of status codes that trigger the
// retry path. Use it to stop retrying a code that is a legitimate business
// rejection for your workload, e.g. a 403 raised by a permissions rule
// rather than an expired session.
func (c *Client) SetRetryableStatusCodes(codes ...int) {
	set := make(map[int]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}

	c.retryMu.Lock()
	c.options.retry.RetryableStatusCodes = set
	c.retryMu.Unlock()
}

func (c *Client) isRetryable(statusCode int) bool {
	c.retryMu.RLock()
	defer c.retryMu.RUnlock()

	return c.options.retry.retryable(statusCode)
}

// Login authenticates against the vendor login endpoint and stores the
// session token. A response without a token is a normal, reportable outcome
// (bad credentials, unknown layer, server down): it is returned for
// inspection with no error raised and the token left unset.
//
// Logging in while a session is already active performs an implicit logout
// first so no orphaned session is left on the server.
func (c *Client) Login(ctx context.Context) (*Response, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	return c.login(ctx)
}

// Logout posts to the logout endpoint and clears the session token. The
// token is cleared even when the logout call fails, so a failed logout can
// never leave behind a stale token that looks valid.
func (c *Client) Logout(ctx context.Context) (*Response, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	return c.logout(ctx)
}

// login performs the actual login. Callers must hold refreshMu.
func (c *Client) login(ctx context.Context) (*Response, error) {
	if c.session.Token() != "" {
		if _, err := c.logout(ctx); err != nil {
			c.options.requestLogger.Warnf("logout before re-login failed: %v", err)
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"userId":           c.options.userID,
			"password":         c.options.password,
			"systemLayer":      c.options.systemLayerKey,
			"applicationLayer": c.options.applicationLayer,
		}).
		Post(c.baseURL + "/security/login")
	if err != nil {
		return nil, err
	}

	result := newResponse(resp, c.options.requestLogger)

	token, expires, ok := result.loginToken()
	if !ok {
		return result, nil
	}

	c.session.setToken(token, expires)
	c.options.requestLogger.Debugf("logged in, token = %s", token)

	return result, nil
}

// logout performs the actual logout. Callers must hold refreshMu.
func (c *Client) logout(ctx context.Context) (*Response, error) {
	defer c.session.clearToken()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.session.snapshotHeaders()).
		Post(c.baseURL + "/security/logout")
	if err != nil {
		return nil, err
	}

	c.options.requestLogger.Debugf("logged out")

	return newResponse(resp, c.options.requestLogger), nil
}

// refreshSession re-establishes the session for the retry path. seenGen is
// the session generation observed by the failing attempt: if another caller
// already refreshed past it, the refresh is skipped and the caller simply
// re-sends with the newer token. At most one logout/login sequence runs at
// a time per client.
func (c *Client) refreshSession(ctx context.Context, seenGen uint64) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.session.currentGeneration() != seenGen {
		return nil
	}

	if _, err := c.logout(ctx); err != nil {
		c.options.requestLogger.Warnf("logout during session refresh failed: %v", err)
	}

	_, err := c.login(ctx)

	return err
}
