package client

import (
	"math"
	"time"
)

// RetryPolicy controls how [Client] handles responses with a retryable
// status code. Each retry attempt re-establishes the session (logout then
// login) before the request is re-sent, because the Alliant API signals
// session death through ordinary error statuses rather than a dedicated
// unauthorized code.
//
// MaxRetries set to 0 disables retrying entirely: the first response is
// returned as-is regardless of status.
type RetryPolicy struct {
	// MaxRetries is the number of re-send attempts after the initial
	// request. Must be non-negative.
	MaxRetries int

	// InitialDelay is the sleep before the first retry attempt.
	InitialDelay time.Duration

	// BackoffMultiplier scales the delay between consecutive attempts:
	// the n-th retry sleeps InitialDelay * BackoffMultiplier^(n-1).
	BackoffMultiplier float64

	// SettleDelay is a fixed pause after re-login before the request is
	// re-sent, independent of the backoff sequence. It gives the server
	// time to propagate the fresh session.
	SettleDelay time.Duration

	// RetryableStatusCodes is the set of HTTP status codes that trigger
	// the retry path. Replace it through [Client.SetRetryableStatusCodes],
	// not by mutating the map of a policy already handed to a client.
	RetryableStatusCodes map[int]bool
}

// DefaultRetryPolicy returns the retry configuration used when no retry
// options are supplied: 3 retries, 3s initial delay doubling per attempt,
// 1s settle delay, retrying on 500 and on 403 (the status the vendor uses
// to signal an expired session).
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        3,
		InitialDelay:      3 * time.Second,
		BackoffMultiplier: 2,
		SettleDelay:       time.Second,
		RetryableStatusCodes: map[int]bool{
			500: true,
			403: true,
		},
	}
}

// Delay returns the sleep before the n-th retry attempt, n starting at 1.
func (p RetryPolicy) Delay(n int) time.Duration {
	if n < 1 {
		return 0
	}

	return time.Duration(float64(p.InitialDelay) * math.Pow(p.BackoffMultiplier, float64(n-1)))
}

func (p RetryPolicy) retryable(statusCode int) bool {
	return p.RetryableStatusCodes[statusCode]
}
