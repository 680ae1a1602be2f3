package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// logicalRequest is the immutable description of a single API call: method,
// target URL, raw query string, and JSON body. The executor re-sends it
// verbatim on every retry attempt; only the session headers are refreshed
// between attempts. The id correlates all attempts of one logical call in
// logs and is attached as the X-Request-Id header.
type logicalRequest struct {
	method string
	url    string
	query  string
	body   any
	id     string
}

func newLogicalRequest(method, url, query string, body any) logicalRequest {
	return logicalRequest{
		method: method,
		url:    url,
		query:  query,
		body:   body,
		id:     uuid.NewString(),
	}
}

// send executes a logical request with the retry/re-auth loop:
//
//  1. Send once. With MaxRetries == 0 the response is returned immediately
//     whatever its status.
//  2. While the status code is in the retryable set: sleep the current
//     backoff delay, re-establish the session (serialized logout + login),
//     sleep the fixed settle delay, re-prepare with fresh headers, and
//     re-send.
//  3. After MaxRetries attempts the last response is returned whether or
//     not it is still failing. Exhaustion is logged, never raised; callers
//     inspect the outcome fields.
//
// A transport-level failure (connection refused, context cancelled) is the
// only condition reported as a Go error.
func (c *Client) send(ctx context.Context, lr logicalRequest) (*resty.Response, error) {
	resp, err := c.attempt(ctx, lr)
	if err != nil {
		return nil, err
	}

	retry := c.retryConfig()
	if retry.MaxRetries == 0 {
		return resp, nil
	}

	for attempt := 1; c.isRetryable(resp.StatusCode()); attempt++ {
		c.options.requestLogger.Warnf(
			"retrying API call - attempt %d\n  request = %s\n  method = %s\n  url = %s\n  status = %d\n  body = %q",
			attempt, lr.id, lr.method, lr.url, resp.StatusCode(), resp.Body())

		if err := sleepContext(ctx, retry.Delay(attempt)); err != nil {
			return resp, err
		}

		seenGen := c.session.currentGeneration()
		if err := c.refreshSession(ctx, seenGen); err != nil {
			c.options.requestLogger.Warnf("session refresh failed: %v", err)
		}

		if err := sleepContext(ctx, retry.SettleDelay); err != nil {
			return resp, err
		}

		resp, err = c.attempt(ctx, lr)
		if err != nil {
			return nil, err
		}

		if attempt == retry.MaxRetries {
			if c.isRetryable(resp.StatusCode()) {
				c.options.requestLogger.Errorf(
					"finished retrying - call not made successfully\n  request = %s\n  method = %s\n  url = %s\n  status = %d\n  body = %q",
					lr.id, lr.method, lr.url, resp.StatusCode(), resp.Body())
			}

			break
		}
	}

	return resp, nil
}

// attempt prepares and sends the transport request from the logical request
// using the session headers current at call time, so a token set by a
// re-login between attempts is picked up.
func (c *Client) attempt(ctx context.Context, lr logicalRequest) (*resty.Response, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.session.snapshotHeaders()).
		SetHeader("X-Request-Id", lr.id)

	if lr.body != nil {
		req.SetBody(lr.body)
	}

	// The query string is appended verbatim: the server reads the verbosity
	// as a bare token and the filter in its own pre-escaped format, neither
	// of which survives a round trip through url.Values.
	url := lr.url
	if lr.query != "" {
		url += "?" + lr.query
	}

	return req.Execute(lr.method, url)
}

func (c *Client) retryConfig() RetryPolicy {
	c.retryMu.RLock()
	defer c.retryMu.RUnlock()

	return c.options.retry
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
