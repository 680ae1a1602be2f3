package client

import (
	"testing"
	"time"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.retry.MaxRetries != 3 {
		t.Errorf("expected MaxRetries=3, got %d", opts.retry.MaxRetries)
	}

	if opts.retry.InitialDelay != 3*time.Second {
		t.Errorf("expected InitialDelay=3s, got %v", opts.retry.InitialDelay)
	}

	if opts.retry.BackoffMultiplier != 2 {
		t.Errorf("expected BackoffMultiplier=2, got %v", opts.retry.BackoffMultiplier)
	}

	if opts.retry.SettleDelay != time.Second {
		t.Errorf("expected SettleDelay=1s, got %v", opts.retry.SettleDelay)
	}

	if !opts.retry.retryable(500) || !opts.retry.retryable(403) {
		t.Error("expected 500 and 403 retryable by default")
	}

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if opts.requestHeaders["Content-Type"] != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", opts.requestHeaders["Content-Type"])
	}

	if opts.requestHeaders["Accept"] != "application/json" {
		t.Errorf("expected Accept=application/json, got %s", opts.requestHeaders["Accept"])
	}
}

func TestWithCredentialsAndLayers(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithCredentials("svc", "pw")(opts)
	WithLayers("default", "prod")(opts)

	if opts.userID != "svc" || opts.password != "pw" {
		t.Errorf("unexpected credentials: %s/%s", opts.userID, opts.password)
	}

	if opts.systemLayerKey != "default" || opts.applicationLayer != "prod" {
		t.Errorf("unexpected layers: %s/%s", opts.systemLayerKey, opts.applicationLayer)
	}
}

func TestWithMaxRetries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid positive", 5, 5},
		{"zero disables", 0, 0},
		{"negative ignored", -1, 3}, // default is 3
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithMaxRetries(tt.input)(opts)

			if opts.retry.MaxRetries != tt.expected {
				t.Errorf("expected MaxRetries=%d, got %d", tt.expected, opts.retry.MaxRetries)
			}
		})
	}
}

func TestWithRetryDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 200 * time.Millisecond, 200 * time.Millisecond},
		{"zero ignored", 0, 3 * time.Second}, // default is 3s
		{"negative ignored", -1, 3 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRetryDelay(tt.input)(opts)

			if opts.retry.InitialDelay != tt.expected {
				t.Errorf("expected InitialDelay=%v, got %v", tt.expected, opts.retry.InitialDelay)
			}
		})
	}
}

func TestWithRetryBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"valid", 1.5, 1.5},
		{"one is valid", 1, 1},
		{"below one ignored", 0.5, 2}, // default is 2
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRetryBackoff(tt.input)(opts)

			if opts.retry.BackoffMultiplier != tt.expected {
				t.Errorf("expected BackoffMultiplier=%v, got %v", tt.expected, opts.retry.BackoffMultiplier)
			}
		})
	}
}

func TestWithRetryableStatusCodes(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithRetryableStatusCodes(502, 503)(opts)

	if !opts.retry.retryable(502) || !opts.retry.retryable(503) {
		t.Error("expected 502 and 503 retryable")
	}

	if opts.retry.retryable(500) || opts.retry.retryable(403) {
		t.Error("expected replacement, not merge, of the default set")
	}

	// Empty call keeps the default set.
	opts = newClientOptions()
	WithRetryableStatusCodes()(opts)

	if !opts.retry.retryable(500) {
		t.Error("expected empty call to retain defaults")
	}
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		value     string
		expectSet bool
	}{
		{"custom header", "X-Custom", "v", true},
		{"empty name ignored", "", "v", false},
		{"content-type protected", "Content-Type", "text/plain", false},
		{"accept protected", "accept", "text/plain", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.expectSet {
				if opts.requestHeaders[tt.header] != tt.value {
					t.Errorf("expected %s=%s, got %s", tt.header, tt.value, opts.requestHeaders[tt.header])
				}
				return
			}

			if opts.requestHeaders["Content-Type"] != "application/json" {
				t.Error("expected Content-Type to stay application/json")
			}

			if opts.requestHeaders["Accept"] != "application/json" {
				t.Error("expected Accept to stay application/json")
			}
		})
	}
}

func TestWithRequestLogger_NilIgnored(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithRequestLogger(nil)(opts)

	if opts.requestLogger == nil {
		t.Error("expected nil logger to be ignored")
	}
}
