package client

import (
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	userID           string
	password         string
	systemLayerKey   string
	applicationLayer string
	retry            RetryPolicy
	requestLogger    RequestLogger
	requestHeaders   map[string]string
	requestTimeout   time.Duration
}

func newClientOptions() *Options {
	return &Options{
		retry:         DefaultRetryPolicy(),
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithCredentials sets the user id and password sent at login, preferably
// those of a service account.
func WithCredentials(userID, password string) Option {
	return func(o *Options) {
		o.userID = userID
		o.password = password
	}
}

// WithLayers sets the system layer key and application layer sent at login.
// The system layer key is typically "default"; both can be discovered with
// [GetSystemLayers] and [GetApplicationLayers].
func WithLayers(systemLayerKey, applicationLayer string) Option {
	return func(o *Options) {
		o.systemLayerKey = systemLayerKey
		o.applicationLayer = applicationLayer
	}
}

// WithMaxRetries sets the number of re-send attempts after the initial
// request. Zero disables retrying entirely.
func WithMaxRetries(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retry.MaxRetries = count
		}
	}
}

// WithRetryDelay sets the sleep before the first retry attempt.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay > 0 {
			o.retry.InitialDelay = delay
		}
	}
}

// WithRetryBackoff sets the multiplier applied to the retry delay between
// consecutive attempts.
func WithRetryBackoff(multiplier float64) Option {
	return func(o *Options) {
		if multiplier >= 1 {
			o.retry.BackoffMultiplier = multiplier
		}
	}
}

// WithSettleDelay sets the fixed pause after re-login before a request is
// re-sent.
func WithSettleDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay >= 0 {
			o.retry.SettleDelay = delay
		}
	}
}

// WithRetryableStatusCodes replaces the set of HTTP status codes that
// trigger the retry path. An empty call is ignored and the default set is
// retained; use [WithMaxRetries] with 0 to disable retrying.
func WithRetryableStatusCodes(codes ...int) Option {
	return func(o *Options) {
		if len(codes) == 0 {
			return
		}

		set := make(map[int]bool, len(codes))
		for _, code := range codes {
			set[code] = true
		}

		o.retry.RetryableStatusCodes = set
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithRequestTimeout sets the per-request timeout on the underlying
// transport. Zero (the default) leaves requests without a client-side
// timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.requestTimeout = timeout
		}
	}
}
