package remote

import (
	"net/http"
	"time"
)

// ServerBuilderOption is a functional option for configuring a Server.
type ServerBuilderOption func(*server)

// WithPath sets the websocket endpoint path used by Start. Defaults to DefaultPath.
//
// Parameters:
//   - path: the URL path
//
// Returns:
//   - ServerBuilderOption: option function to apply
func WithPath(path string) ServerBuilderOption {
	return func(s *server) {
		if path != "" {
			s.path = path
		}
	}
}

// WithAllowedOrigins restricts which browser origins may connect. With no origins
// the upgrader's same-origin check applies; "*" allows every origin.
//
// Parameters:
//   - origins: allowed Origin header values
//
// Returns:
//   - ServerBuilderOption: option function to apply
func WithAllowedOrigins(origins ...string) ServerBuilderOption {
	return func(s *server) {
		if len(origins) == 0 {
			s.upgrader.CheckOrigin = nil
			return
		}
		allowed := make(map[string]bool, len(origins))
		for _, o := range origins {
			allowed[o] = true
		}
		s.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed["*"] || allowed[origin]
		}
	}
}

// WithReadLimit caps the size of a single client message.
//
// Parameters:
//   - bytes: the maximum message size
//
// Returns:
//   - ServerBuilderOption: option function to apply
func WithReadLimit(bytes int64) ServerBuilderOption {
	return func(s *server) {
		if bytes > 0 {
			s.readLimit = bytes
		}
	}
}

// WithWriteTimeout bounds each reply write and the shutdown grace period.
//
// Parameters:
//   - d: the timeout
//
// Returns:
//   - ServerBuilderOption: option function to apply
func WithWriteTimeout(d time.Duration) ServerBuilderOption {
	return func(s *server) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}
