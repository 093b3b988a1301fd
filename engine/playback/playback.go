package playback

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/media"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/samber/lo"
)

// Mode is the playback state machine's state.
type Mode int

const (
	Paused Mode = iota
	Playing
)

func (m Mode) String() string {
	if m == Playing {
		return "playing"
	}
	return "paused"
}

// State is a value snapshot of playback.
// Invariant: 0 <= PositionSeconds <= DurationSeconds.
type State struct {
	IsPlaying       bool
	PositionSeconds float64
	DurationSeconds float64
}

// Mode returns the state machine state for this snapshot.
func (s State) Mode() Mode {
	if s.IsPlaying {
		return Playing
	}
	return Paused
}

// Notifier receives the icon matching each successful playback transition.
type Notifier interface {
	Flash(id overlay.IconID)
}

type holder struct {
	mu *sync.Mutex

	source   media.Source
	notifier Notifier

	ready bool
	state State
}

// Holder tracks whether media is playing, where it is and how long it is, and
// forwards play/pause/seek to the media source. Every operation is a no-op until
// MediaReady has been called.
type Holder interface {
	// MediaReady creates the playback state from the loaded source. The state starts
	// Paused at the source's current position. Later calls are ignored.
	MediaReady()

	// Ready reports whether MediaReady has been called.
	Ready() bool

	// TogglePlayPause flips between Paused and Playing, commands the source and
	// notifies Play or Pause.
	//
	// Returns:
	//   - bool: false if the media is not ready
	TogglePlayPause() bool

	// SeekBy moves the position by delta seconds from the source's current time,
	// clamped to [0, duration]. A negative delta notifies Rewind and a positive one
	// Forward. An unknown duration clamps every seek to 0.
	//
	// Parameters:
	//   - delta: signed offset in seconds
	//
	// Returns:
	//   - bool: false if the media is not ready or delta is NaN
	SeekBy(delta float64) bool

	// State returns a snapshot of the playback state.
	State() State
}

var _ Holder = &holder{}

// NewHolder creates a Holder for the given source.
//
// Parameters:
//   - source: the media source to command
//   - options: functional options to configure the holder
//
// Returns:
//   - Holder: the newly created holder
func NewHolder(source media.Source, options ...HolderBuilderOption) Holder {
	h := &holder{
		mu:     &sync.Mutex{},
		source: source,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *holder) MediaReady() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ready || h.source == nil {
		return
	}
	if !h.source.Paused() {
		h.source.Pause()
	}
	duration := sanitizeDuration(h.source.Duration())
	h.state = State{
		IsPlaying:       false,
		PositionSeconds: lo.Clamp(sanitizePosition(h.source.CurrentTime()), 0, duration),
		DurationSeconds: duration,
	}
	h.ready = true
}

func (h *holder) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ready
}

func (h *holder) TogglePlayPause() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready {
		return false
	}

	icon := overlay.Play
	if h.source.Paused() {
		h.source.Play()
	} else {
		h.source.Pause()
		icon = overlay.Pause
	}
	h.state.IsPlaying = icon == overlay.Play
	log.Info(lo.Ternary(h.state.IsPlaying, "Play", "Pause"))

	h.notify(icon)
	return true
}

func (h *holder) SeekBy(delta float64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready || math.IsNaN(delta) {
		return false
	}

	duration := sanitizeDuration(h.source.Duration())
	position := lo.Clamp(sanitizePosition(h.source.CurrentTime())+delta, 0, duration)
	h.state.DurationSeconds = duration
	h.state.PositionSeconds = position
	h.source.SetCurrentTime(position)

	switch {
	case delta < 0:
		log.Infof("Rewind %g seconds", -delta)
		h.notify(overlay.Rewind)
	case delta > 0:
		log.Infof("Forward %g seconds", delta)
		h.notify(overlay.Forward)
	}
	return true
}

func (h *holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready {
		return State{}
	}
	duration := sanitizeDuration(h.source.Duration())
	return State{
		IsPlaying:       !h.source.Paused(),
		PositionSeconds: lo.Clamp(sanitizePosition(h.source.CurrentTime()), 0, duration),
		DurationSeconds: duration,
	}
}

// notify forwards an icon to the notifier, if any. Caller must hold h.mu.
func (h *holder) notify(id overlay.IconID) {
	if h.notifier != nil {
		h.notifier.Flash(id)
	}
}

// sanitizeDuration maps unknown or degenerate durations to 0.
func sanitizeDuration(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0
	}
	return d
}

func sanitizePosition(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
