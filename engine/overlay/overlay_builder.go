package overlay

import (
	"time"

	"github.com/samber/lo"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithPolicy sets the feedback policy.
//
// Parameters:
//   - policy: TimedFlash or HoverReveal
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithPolicy(policy Policy) ControllerBuilderOption {
	return func(c *controller) {
		c.policy = policy
	}
}

// WithScheduler replaces the wall-clock scheduler used for deferred resets.
// A nil scheduler is ignored.
//
// Parameters:
//   - scheduler: the scheduler to use
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithScheduler(scheduler Scheduler) ControllerBuilderOption {
	return func(c *controller) {
		if scheduler != nil {
			c.scheduler = scheduler
		}
	}
}

// WithFlashOpacity sets the opacity a flashed icon jumps to, clamped to [0, 1].
//
// Parameters:
//   - opacity: the flash opacity
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithFlashOpacity(opacity float32) ControllerBuilderOption {
	return func(c *controller) {
		c.flashOpacity = lo.Clamp(opacity, 0, 1)
	}
}

// WithFlashDuration sets how long a flashed icon stays lit. Non-positive durations are ignored.
//
// Parameters:
//   - d: the flash duration
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithFlashDuration(d time.Duration) ControllerBuilderOption {
	return func(c *controller) {
		if d > 0 {
			c.flashDuration = d
		}
	}
}

// WithSpring tunes the easing of display opacity.
//
// Parameters:
//   - frequency: angular frequency; higher converges faster
//   - damping: damping ratio; 1 is critically damped
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithSpring(frequency, damping float64) ControllerBuilderOption {
	return func(c *controller) {
		c.springFrequency = frequency
		c.springDamping = damping
	}
}
