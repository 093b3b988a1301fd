package media

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/samber/lo"
)

// ClockSource is an in-process Source that advances a playback position with the
// wall clock. It stands in for a decoder when running headless and in tests.
type ClockSource struct {
	mu *sync.Mutex

	duration float64
	loop     bool
	now      func() time.Time

	paused   bool
	position float64
	since    time.Time

	ready readyLatch
}

var _ Source = &ClockSource{}

// NewClockSource creates a paused ClockSource.
// Defaults: 120 s duration, looping, wall clock.
//
// Parameters:
//   - options: functional options to configure the source
//
// Returns:
//   - *ClockSource: the newly created source
func NewClockSource(options ...ClockSourceBuilderOption) *ClockSource {
	c := &ClockSource{
		mu:       &sync.Mutex{},
		duration: 120,
		loop:     true,
		now:      time.Now,
		paused:   true,
	}
	for _, option := range options {
		option(c)
	}
	if math.IsNaN(c.duration) || math.IsInf(c.duration, 0) || c.duration < 0 {
		c.duration = 0
	}
	return c
}

// Start marks the media as loaded. A zero duration never becomes ready, which
// models an asset that failed to load.
func (c *ClockSource) Start(_ context.Context) error {
	if c.Duration() <= 0 {
		log.Warn("media: clock source has no duration, staying unavailable")
		return nil
	}
	c.ready.fire()
	return nil
}

func (c *ClockSource) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.since = c.now()
}

func (c *ClockSource) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.position = c.currentLocked()
	c.paused = true
}

func (c *ClockSource) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked()
}

func (c *ClockSource) SetCurrentTime(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if math.IsNaN(seconds) {
		return
	}
	c.position = lo.Clamp(seconds, 0, c.duration)
	c.since = c.now()
}

func (c *ClockSource) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

func (c *ClockSource) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *ClockSource) OnReady(f func()) {
	c.ready.subscribe(f)
}

func (c *ClockSource) Ready() bool {
	return c.ready.isFired()
}

func (c *ClockSource) Close() error {
	c.Pause()
	return nil
}

// currentLocked computes the live position. Only time that passes while playing
// wraps; a position set at the end stays at the end. Caller must hold c.mu.
func (c *ClockSource) currentLocked() float64 {
	if c.duration <= 0 {
		return 0
	}
	pos := lo.Clamp(c.position, 0, c.duration)
	if c.paused {
		return pos
	}
	pos += c.now().Sub(c.since).Seconds()
	if pos <= c.duration {
		return pos
	}
	if c.loop {
		return math.Mod(pos, c.duration)
	}
	return c.duration
}
