package media

import "time"

// ClockSourceBuilderOption is a functional option for configuring a ClockSource.
type ClockSourceBuilderOption func(*ClockSource)

// WithDuration sets the media length in seconds.
//
// Parameters:
//   - seconds: the duration; zero or less leaves the source unavailable
//
// Returns:
//   - ClockSourceBuilderOption: option function to apply
func WithDuration(seconds float64) ClockSourceBuilderOption {
	return func(c *ClockSource) {
		c.duration = seconds
	}
}

// WithLoop sets whether playback wraps to the start at the end of the media.
//
// Parameters:
//   - loop: true to wrap, false to hold at the end
//
// Returns:
//   - ClockSourceBuilderOption: option function to apply
func WithLoop(loop bool) ClockSourceBuilderOption {
	return func(c *ClockSource) {
		c.loop = loop
	}
}

// WithClock replaces the time source. Nil is ignored.
//
// Parameters:
//   - now: returns the current time
//
// Returns:
//   - ClockSourceBuilderOption: option function to apply
func WithClock(now func() time.Time) ClockSourceBuilderOption {
	return func(c *ClockSource) {
		if now != nil {
			c.now = now
		}
	}
}
