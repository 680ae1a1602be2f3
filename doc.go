// Package client provides an HTTP client for the Alliant REST API,
// covering contract and adjustment management.
//
// The client wraps [github.com/go-resty/resty/v2] with session token
// management, automatic re-authentication and retry on transient server
// errors, and pluggable logging.
//
// # Basic Usage
//
//	c := client.New("https://alliant.example.com",
//	    client.WithCredentials("svc-account", "secret"),
//	    client.WithLayers("default", "production"),
//	)
//
//	if _, err := c.Login(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Logout(ctx)
//
//	contract, err := c.LookupContract(ctx, guid, client.ResourceParams{})
//
// A login response without a token is not an error: it is the server's way
// of reporting bad credentials or an unknown layer. Check Token() after
// Login, or inspect the returned envelope.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained. A client
// can also be built from ALLIANT_* environment variables via
// [ConfigFromEnv] and [NewFromConfig].
//
// # Retry Behaviour
//
// The Alliant server signals a dead session through ordinary error status
// codes (500, and 403 for an expired session) rather than a dedicated
// unauthorized code, so a plain resend would fail forever. When a response
// status is in the retryable set, the client sleeps with exponential
// backoff, logs out and back in to establish a fresh session, and re-sends
// the identical request with the new token, up to [WithMaxRetries]
// attempts. The final response is returned whether or not it still carries
// an error; retrying is a best-effort reliability layer and callers must
// inspect the outcome. Use [Client.SetRetryableStatusCodes] to stop
// retrying a code that is a legitimate business rejection for your
// workload.
//
// Login and logout are serialized per client, so goroutines sharing one
// client that hit retryable errors at the same time trigger a single
// session refresh between them.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger] for
// zerolog. The default [NoopLogger] discards all log output. Retry and
// error log lines include request bodies and session tokens; redact before
// persisting if needed.
package client
