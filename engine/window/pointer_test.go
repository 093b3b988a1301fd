package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(events []input.Event) []input.EventKind {
	out := make([]input.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestReleaseNearPressSynthesizesClick(t *testing.T) {
	p := newPointerTracker(defaultClickSlop)

	assert.Equal(t, []input.EventKind{input.PointerDown}, kinds(p.down(input.PrimaryButton, 100, 100)))

	events := p.up(input.PrimaryButton, 103, 100)
	require.Equal(t, []input.EventKind{input.PointerUp, input.Click}, kinds(events))
	assert.Equal(t, float32(103), events[1].X)
	assert.Equal(t, input.PrimaryButton, events[1].Button)
}

func TestReleaseAfterDragIsNotAClick(t *testing.T) {
	p := newPointerTracker(defaultClickSlop)

	p.down(input.PrimaryButton, 100, 100)
	assert.Equal(t, []input.EventKind{input.PointerUp}, kinds(p.up(input.PrimaryButton, 140, 100)))
}

func TestReleaseWithoutPressIsNotAClick(t *testing.T) {
	p := newPointerTracker(defaultClickSlop)

	assert.Equal(t, []input.EventKind{input.PointerUp}, kinds(p.up(2, 10, 10)))
}

func TestButtonsAreTrackedIndependently(t *testing.T) {
	p := newPointerTracker(defaultClickSlop)

	p.down(input.PrimaryButton, 0, 0)
	p.down(2, 50, 50)
	assert.Equal(t, []input.EventKind{input.PointerUp, input.Click}, kinds(p.up(2, 50, 51)))
	assert.Equal(t, []input.EventKind{input.PointerUp, input.Click}, kinds(p.up(input.PrimaryButton, 1, 1)))
}

func TestWheelEventUsesBrowserSign(t *testing.T) {
	e, ok := wheelEvent(1)
	require.True(t, ok)
	assert.Equal(t, input.Wheel, e.Kind)
	assert.Less(t, e.DeltaY, float32(0))

	e, ok = wheelEvent(-2)
	require.True(t, ok)
	assert.Equal(t, float32(200), e.DeltaY)

	_, ok = wheelEvent(0)
	assert.False(t, ok)
}

func TestHighDPICursorMapsToFramebufferPixels(t *testing.T) {
	p := newPointerTracker(defaultClickSlop)
	p.setScale(1600, 1200, 800, 600)

	move := p.move(400, 300)
	assert.Equal(t, float32(800), move.X)
	assert.Equal(t, float32(600), move.Y)

	p.down(input.PrimaryButton, 100, 50)
	events := p.up(input.PrimaryButton, 101, 50)
	require.Equal(t, []input.EventKind{input.PointerUp, input.Click}, kinds(events))
	assert.Equal(t, float32(202), events[1].X)
	assert.Equal(t, float32(100), events[1].Y)

	p.setScale(1600, 1200, 0, 0)
	assert.Equal(t, float32(10), p.move(10, 10).X)
}
