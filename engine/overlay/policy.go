package overlay

import "time"

// Policy selects how icons give feedback.
type Policy int

const (
	// TimedFlash pulses an icon to the flash opacity and fades it back after a fixed delay.
	TimedFlash Policy = iota
	// HoverReveal keeps every icon at the flash opacity and shows the whole group
	// only while the pointer is over the surface. Flash is ignored.
	HoverReveal
)

func (p Policy) String() string {
	switch p {
	case TimedFlash:
		return "timed-flash"
	case HoverReveal:
		return "hover-reveal"
	default:
		return "unknown"
	}
}

const (
	// DefaultFlashOpacity is the opacity an icon jumps to when flashed.
	DefaultFlashOpacity float32 = 0.7
	// DefaultFlashDuration is how long a flashed icon stays lit.
	DefaultFlashDuration = 500 * time.Millisecond

	defaultSpringFrequency = 12.0
	defaultSpringDamping   = 1.0
)

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already ran or was stopped.
	Stop() bool
}

// Scheduler creates deferred callbacks. Tests substitute a manual clock.
type Scheduler interface {
	// AfterFunc runs f on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock returns a Scheduler backed by time.AfterFunc.
func WallClock() Scheduler {
	return wallScheduler{}
}
