package session

import "github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"

// SessionBuilderOption is a functional option for configuring a Session.
type SessionBuilderOption func(*session)

// WithConfig sets the session policies.
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithConfig(cfg Config) SessionBuilderOption {
	return func(s *session) {
		s.cfg = cfg
	}
}

// WithScheduler sets the scheduler for overlay resets. Defaults to the wall clock.
//
// Parameters:
//   - scheduler: the scheduler
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithScheduler(scheduler overlay.Scheduler) SessionBuilderOption {
	return func(s *session) {
		s.scheduler = scheduler
	}
}
