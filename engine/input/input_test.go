package input_test

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyTable(t *testing.T) {
	tests := []struct {
		name string
		key  uint32
		want input.Intent
		ok   bool
	}{
		{name: "space", key: common.KeySpace, want: input.Intent{Kind: input.TogglePlayPause}, ok: true},
		{name: "left", key: common.KeyLeft, want: input.Intent{Kind: input.SeekBy, Seconds: -5}, ok: true},
		{name: "right", key: common.KeyRight, want: input.Intent{Kind: input.SeekBy, Seconds: 5}, ok: true},
		{name: "move key", key: common.KeyW},
		{name: "alt", key: common.KeyLeftAlt},
		{name: "unknown", key: 12345},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := input.NewMapper()
			got, ok := m.Map(input.Event{Kind: input.KeyDown, Key: tt.key})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomSeekStep(t *testing.T) {
	m := input.NewMapper(input.WithSeekStep(10))
	got, ok := m.Map(input.Event{Kind: input.KeyDown, Key: common.KeyRight})
	require.True(t, ok)
	assert.Equal(t, 10.0, got.Seconds)
	assert.Equal(t, 10.0, m.SeekStep())
}

func TestDragLifecycle(t *testing.T) {
	m := input.NewMapper(input.WithViewport(800, 600))

	_, ok := m.Map(input.Event{Kind: input.PointerMove, X: 10, Y: 10})
	assert.False(t, ok, "move without a press is not a drag")

	begin, ok := m.Map(input.Event{Kind: input.PointerDown, X: 100, Y: 100})
	require.True(t, ok)
	assert.Equal(t, input.BeginDrag, begin.Kind)
	assert.Equal(t, mgl32.Vec2{100, 100}, begin.Point)
	assert.True(t, m.Dragging())

	drag, ok := m.Map(input.Event{Kind: input.PointerMove, X: 180, Y: 40})
	require.True(t, ok)
	assert.Equal(t, input.Drag, drag.Kind)
	assert.InDelta(t, 0.1, drag.Delta[0], 1e-6)
	assert.InDelta(t, -0.1, drag.Delta[1], 1e-6)

	// Deltas are between consecutive positions.
	drag, ok = m.Map(input.Event{Kind: input.PointerMove, X: 180, Y: 100})
	require.True(t, ok)
	assert.InDelta(t, 0, drag.Delta[0], 1e-6)
	assert.InDelta(t, 0.1, drag.Delta[1], 1e-6)

	end, ok := m.Map(input.Event{Kind: input.PointerUp, X: 180, Y: 100})
	require.True(t, ok)
	assert.Equal(t, input.EndDrag, end.Kind)
	assert.False(t, m.Dragging())

	_, ok = m.Map(input.Event{Kind: input.PointerMove, X: 0, Y: 0})
	assert.False(t, ok)
}

func TestDragDeltaIsViewportIndependent(t *testing.T) {
	small := input.NewMapper(input.WithViewport(400, 300))
	large := input.NewMapper(input.WithViewport(1600, 1200))

	small.Map(input.Event{Kind: input.PointerDown})
	large.Map(input.Event{Kind: input.PointerDown})
	a, _ := small.Map(input.Event{Kind: input.PointerMove, X: 40, Y: 30})
	b, _ := large.Map(input.Event{Kind: input.PointerMove, X: 160, Y: 120})

	assert.InDelta(t, a.Delta[0], b.Delta[0], 1e-6)
	assert.InDelta(t, a.Delta[1], b.Delta[1], 1e-6)
}

func TestDragWithEmptyViewport(t *testing.T) {
	m := input.NewMapper()
	m.Map(input.Event{Kind: input.PointerDown})
	drag, ok := m.Map(input.Event{Kind: input.PointerMove, X: 50, Y: 50})
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{}, drag.Delta)
}

func TestNonPrimaryButtonsAreIgnored(t *testing.T) {
	m := input.NewMapper(input.WithViewport(800, 600))
	for _, kind := range []input.EventKind{input.PointerDown, input.PointerUp, input.Click} {
		_, ok := m.Map(input.Event{Kind: kind, Button: 2})
		assert.False(t, ok, kind.String())
	}
	assert.False(t, m.Dragging())
}

func TestWheel(t *testing.T) {
	m := input.NewMapper()

	out, ok := m.Map(input.Event{Kind: input.Wheel, DeltaY: 120})
	require.True(t, ok)
	assert.Equal(t, input.Intent{Kind: input.Zoom, Direction: input.ZoomOut}, out)

	in, ok := m.Map(input.Event{Kind: input.Wheel, DeltaY: -3})
	require.True(t, ok)
	assert.Equal(t, input.ZoomIn, in.Direction)

	_, ok = m.Map(input.Event{Kind: input.Wheel})
	assert.False(t, ok)
}

func TestClick(t *testing.T) {
	m := input.NewMapper()
	got, ok := m.Map(input.Event{Kind: input.Click, X: 12, Y: 34})
	require.True(t, ok)
	assert.Equal(t, input.Intent{Kind: input.ActivateAt, Point: mgl32.Vec2{12, 34}}, got)

	p, seen := m.Pointer()
	assert.True(t, seen)
	assert.Equal(t, mgl32.Vec2{12, 34}, p)
}

func TestModifierAndMoveKeys(t *testing.T) {
	m := input.NewMapper()
	assert.False(t, m.AltHeld())
	assert.False(t, m.MoveKeys().Any())

	m.Map(input.Event{Kind: input.KeyDown, Key: common.KeyRightAlt})
	m.Map(input.Event{Kind: input.KeyDown, Key: common.KeyQ})
	m.Map(input.Event{Kind: input.KeyDown, Key: common.KeyW})
	assert.True(t, m.AltHeld())
	assert.Equal(t, input.MoveKeys{Forward: true, Up: true}, m.MoveKeys())

	m.Map(input.Event{Kind: input.KeyUp, Key: common.KeyRightAlt})
	m.Map(input.Event{Kind: input.KeyUp, Key: common.KeyW})
	assert.False(t, m.AltHeld())
	assert.Equal(t, input.MoveKeys{Up: true}, m.MoveKeys())
}

func TestResizeUpdatesViewport(t *testing.T) {
	m := input.NewMapper()
	_, ok := m.Map(input.Event{Kind: input.Resize, Width: 1280, Height: 720})
	assert.False(t, ok)

	w, h := m.Viewport()
	assert.Equal(t, float32(1280), w)
	assert.Equal(t, float32(720), h)

	m.SetViewport(-1, 10)
	w, _ = m.Viewport()
	assert.Zero(t, w)
}
