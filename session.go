package client

import "sync"

// SessionHeader is the HTTP header carrying the session token on every
// authenticated call.
const SessionHeader = "X-AlliantSession"

// session holds the authentication token and the default headers attached
// to every request. All mutation goes through setToken/clearToken, which
// rebuild the header map from the configured defaults rather than patching
// it in place, so a re-login can never leave stale token remnants behind.
//
// The generation counter increments on every token change. The retry path
// reads the generation before requesting a refresh; the refresh is skipped
// if another caller already advanced it, so concurrent retries trigger at
// most one logout/login cycle between them.
type session struct {
	mu         sync.Mutex
	defaults   map[string]string
	token      string
	expires    string
	headers    map[string]string
	generation uint64
}

func newSession(defaults map[string]string) *session {
	s := &session{defaults: defaults}
	s.headers = s.rebuildHeaders()

	return s
}

// rebuildHeaders composes a fresh header map. Callers must hold mu.
func (s *session) rebuildHeaders() map[string]string {
	headers := make(map[string]string, len(s.defaults)+1)
	for k, v := range s.defaults {
		headers[k] = v
	}

	if s.token != "" {
		headers[SessionHeader] = s.token
	}

	return headers
}

func (s *session) setToken(token, expires string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expires = expires
	s.headers = s.rebuildHeaders()
	s.generation++
}

func (s *session) clearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expires = ""
	s.headers = s.rebuildHeaders()
	s.generation++
}

// Token returns the current session token, or the empty string when not
// logged in.
func (s *session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

// Expires returns the token expiry hint reported by the server at login.
// It is advisory only: the client reacts to server-reported auth failures
// rather than checking expiry proactively.
func (s *session) Expires() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.expires
}

func (s *session) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// snapshotHeaders returns a copy of the current headers so that an in-flight
// request keeps a consistent view even if a refresh lands mid-send.
func (s *session) snapshotHeaders() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	headers := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		headers[k] = v
	}

	return headers
}
