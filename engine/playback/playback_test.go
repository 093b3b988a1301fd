package playback_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/media"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is a media.Source with a frozen clock.
type stubSource struct {
	position float64
	duration float64
	paused   bool
	plays    int
	pauses   int
	seeks    []float64
}

var _ media.Source = &stubSource{}

func (s *stubSource) Start(context.Context) error { return nil }
func (s *stubSource) Play()                       { s.paused = false; s.plays++ }
func (s *stubSource) Pause()                      { s.paused = true; s.pauses++ }
func (s *stubSource) CurrentTime() float64        { return s.position }
func (s *stubSource) SetCurrentTime(v float64)    { s.position = v; s.seeks = append(s.seeks, v) }
func (s *stubSource) Duration() float64           { return s.duration }
func (s *stubSource) Paused() bool                { return s.paused }
func (s *stubSource) OnReady(f func())            { f() }
func (s *stubSource) Ready() bool                 { return true }
func (s *stubSource) Close() error                { return nil }

type recorder struct {
	icons []overlay.IconID
}

func (r *recorder) Flash(id overlay.IconID) { r.icons = append(r.icons, id) }

func newReady(t *testing.T, duration float64) (playback.Holder, *stubSource, *recorder) {
	t.Helper()
	src := &stubSource{duration: duration, paused: true}
	rec := &recorder{}
	h := playback.NewHolder(src, playback.WithNotifier(rec))
	h.MediaReady()
	require.True(t, h.Ready())
	return h, src, rec
}

func TestOperationsBeforeReadyAreNoops(t *testing.T) {
	src := &stubSource{duration: 120, paused: true}
	rec := &recorder{}
	h := playback.NewHolder(src, playback.WithNotifier(rec))

	assert.False(t, h.TogglePlayPause())
	assert.False(t, h.SeekBy(5))
	assert.Equal(t, playback.State{}, h.State())
	assert.Zero(t, src.plays)
	assert.Empty(t, src.seeks)
	assert.Empty(t, rec.icons)
}

func TestInitialStateIsPaused(t *testing.T) {
	h, _, _ := newReady(t, 120)
	st := h.State()
	assert.Equal(t, playback.Paused, st.Mode())
	assert.Zero(t, st.PositionSeconds)
	assert.Equal(t, 120.0, st.DurationSeconds)
}

func TestMediaReadyPausesRunningSource(t *testing.T) {
	src := &stubSource{duration: 10}
	h := playback.NewHolder(src)
	h.MediaReady()
	assert.True(t, src.paused)
	assert.False(t, h.State().IsPlaying)
}

func TestToggleIsAnInvolution(t *testing.T) {
	h, src, rec := newReady(t, 120)

	require.True(t, h.TogglePlayPause())
	assert.Equal(t, playback.Playing, h.State().Mode())
	assert.False(t, src.paused)

	require.True(t, h.TogglePlayPause())
	assert.Equal(t, playback.Paused, h.State().Mode())
	assert.True(t, src.paused)

	assert.Equal(t, []overlay.IconID{overlay.Play, overlay.Pause}, rec.icons)
}

func TestSeekScenario(t *testing.T) {
	h, src, rec := newReady(t, 120)

	for range 3 {
		h.SeekBy(5)
	}
	assert.Equal(t, 15.0, h.State().PositionSeconds)
	assert.Equal(t, 15.0, src.position)

	for range 5 {
		h.SeekBy(-5)
	}
	assert.Zero(t, h.State().PositionSeconds)
	assert.Equal(t, []float64{5, 10, 15, 10, 5, 0, 0, 0}, src.seeks)

	assert.Equal(t, overlay.Forward, rec.icons[0])
	assert.Equal(t, overlay.Rewind, rec.icons[len(rec.icons)-1])
}

func TestToggleFollowsSourcePauseState(t *testing.T) {
	h, src, rec := newReady(t, 120)

	require.True(t, h.TogglePlayPause())
	require.False(t, src.paused)

	// Paused from the player's own controls.
	src.paused = true
	assert.False(t, h.State().IsPlaying)

	require.True(t, h.TogglePlayPause())
	assert.False(t, src.paused)
	assert.True(t, h.State().IsPlaying)
	assert.Equal(t, []overlay.IconID{overlay.Play, overlay.Play}, rec.icons)
}

func TestSeekPastEndClampsOnClockSource(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	src := media.NewClockSource(
		media.WithDuration(120),
		media.WithClock(func() time.Time { return clock }),
	)
	h := playback.NewHolder(src)
	require.NoError(t, src.Start(context.Background()))
	h.MediaReady()

	var positions []float64
	for range 3 {
		require.True(t, h.SeekBy(100))
		positions = append(positions, h.State().PositionSeconds)
	}
	assert.Equal(t, []float64{100, 120, 120}, positions)
	assert.Equal(t, 120.0, src.CurrentTime())

	require.True(t, h.SeekBy(-5))
	assert.Equal(t, 115.0, h.State().PositionSeconds)
}

func TestSeekStaysInBounds(t *testing.T) {
	deltas := []float64{-1e9, -121, -5, -0.5, 0, 0.25, 5, 119.9, 121, 1e9, math.Inf(1), math.Inf(-1)}
	h, _, _ := newReady(t, 120)

	for _, start := range []float64{0, 60, 120} {
		for _, d := range deltas {
			h.SeekBy(start - h.State().PositionSeconds)
			h.SeekBy(d)
			st := h.State()
			assert.GreaterOrEqual(t, st.PositionSeconds, 0.0, "start %v delta %v", start, d)
			assert.LessOrEqual(t, st.PositionSeconds, st.DurationSeconds, "start %v delta %v", start, d)
		}
	}
}

func TestSeekPastBoundsIsIdempotent(t *testing.T) {
	h, _, _ := newReady(t, 120)

	h.SeekBy(500)
	assert.Equal(t, 120.0, h.State().PositionSeconds)
	h.SeekBy(500)
	assert.Equal(t, 120.0, h.State().PositionSeconds)

	h.SeekBy(-500)
	h.SeekBy(-500)
	assert.Zero(t, h.State().PositionSeconds)
}

func TestSeekWithUnknownDurationClampsToZero(t *testing.T) {
	for _, d := range []float64{0, math.NaN(), math.Inf(1), -3} {
		h, src, _ := newReady(t, d)
		h.SeekBy(5)
		assert.Zero(t, h.State().PositionSeconds)
		assert.Zero(t, h.State().DurationSeconds)
		assert.Equal(t, []float64{0}, src.seeks)
	}
}

func TestSeekNaNDeltaIsRejected(t *testing.T) {
	h, src, rec := newReady(t, 120)
	assert.False(t, h.SeekBy(math.NaN()))
	assert.Empty(t, src.seeks)
	assert.Empty(t, rec.icons)
}

func TestZeroSeekDoesNotNotify(t *testing.T) {
	h, _, rec := newReady(t, 120)
	assert.True(t, h.SeekBy(0))
	assert.Empty(t, rec.icons)
}
