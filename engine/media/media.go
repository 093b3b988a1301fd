package media

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNotReady is returned when an operation needs media that has not loaded yet.
	ErrNotReady = errors.New("media: source not ready")
	// ErrSocketNotReady is returned when the mpv IPC socket never accepts connections.
	ErrSocketNotReady = errors.New("media: mpv socket not ready")
)

// Source is the media element driven by the playback controller. Implementations
// never block the caller on I/O: commands are applied to cached state immediately
// and forwarded to the backend asynchronously.
type Source interface {
	// Start begins loading the media. The ready notification fires once the
	// duration is known.
	//
	// Parameters:
	//   - ctx: bounds startup (process launch, socket wait)
	//
	// Returns:
	//   - error: non-nil if the backend could not be started
	Start(ctx context.Context) error

	// Play resumes playback.
	Play()

	// Pause halts playback.
	Pause()

	// CurrentTime returns the playback position in seconds.
	CurrentTime() float64

	// SetCurrentTime seeks to an absolute position in seconds.
	SetCurrentTime(seconds float64)

	// Duration returns the media length in seconds, or 0 if unknown.
	Duration() float64

	// Paused reports whether playback is halted.
	Paused() bool

	// OnReady registers a one-shot callback for when the media has loaded.
	// Callbacks registered after the media is ready run immediately.
	OnReady(f func())

	// Ready reports whether the ready notification has fired.
	Ready() bool

	// Close releases the backend.
	Close() error
}

// readyLatch is a one-shot notification shared by the Source implementations.
type readyLatch struct {
	mu        sync.Mutex
	fired     bool
	callbacks []func()
}

// subscribe registers f, or runs it right away if the latch already fired.
func (l *readyLatch) subscribe(f func()) {
	if f == nil {
		return
	}
	l.mu.Lock()
	if !l.fired {
		l.callbacks = append(l.callbacks, f)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	f()
}

// fire runs every pending callback exactly once. It reports whether this call fired the latch.
func (l *readyLatch) fire() bool {
	l.mu.Lock()
	if l.fired {
		l.mu.Unlock()
		return false
	}
	l.fired = true
	callbacks := l.callbacks
	l.callbacks = nil
	l.mu.Unlock()

	for _, f := range callbacks {
		f()
	}
	return true
}

func (l *readyLatch) isFired() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fired
}
