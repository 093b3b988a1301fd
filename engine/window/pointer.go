package window

import (
	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultClickSlop = 4

	// scrollLineHeight converts wheel notches to browser-style pixel deltas.
	scrollLineHeight = 100
)

// pointerTracker turns native button transitions into pointer events and
// synthesizes a Click when a button is released close to where it was pressed.
// Cursor positions arrive in screen coordinates and leave in framebuffer pixels,
// the unit of the viewport sent with Resize events.
type pointerTracker struct {
	slop    float32
	scale   mgl32.Vec2
	pressed map[int]mgl32.Vec2
}

func newPointerTracker(slop float32) *pointerTracker {
	return &pointerTracker{
		slop:    slop,
		scale:   mgl32.Vec2{1, 1},
		pressed: make(map[int]mgl32.Vec2),
	}
}

// setScale records the framebuffer to window size ratio. Unknown sizes reset it to 1.
//
// Parameters:
//   - fbWidth, fbHeight: framebuffer size in pixels
//   - winWidth, winHeight: window size in screen coordinates
func (p *pointerTracker) setScale(fbWidth, fbHeight, winWidth, winHeight int) {
	p.scale = mgl32.Vec2{1, 1}
	if fbWidth > 0 && winWidth > 0 {
		p.scale[0] = float32(fbWidth) / float32(winWidth)
	}
	if fbHeight > 0 && winHeight > 0 {
		p.scale[1] = float32(fbHeight) / float32(winHeight)
	}
}

func (p *pointerTracker) toPixels(x, y float32) (float32, float32) {
	return x * p.scale[0], y * p.scale[1]
}

func (p *pointerTracker) down(button int, x, y float32) []input.Event {
	x, y = p.toPixels(x, y)
	p.pressed[button] = mgl32.Vec2{x, y}
	return []input.Event{{Kind: input.PointerDown, Button: button, X: x, Y: y}}
}

func (p *pointerTracker) up(button int, x, y float32) []input.Event {
	x, y = p.toPixels(x, y)
	events := []input.Event{{Kind: input.PointerUp, Button: button, X: x, Y: y}}
	start, ok := p.pressed[button]
	delete(p.pressed, button)
	if ok && (mgl32.Vec2{x, y}).Sub(start).Len() <= p.slop {
		events = append(events, input.Event{Kind: input.Click, Button: button, X: x, Y: y})
	}
	return events
}

func (p *pointerTracker) move(x, y float32) input.Event {
	x, y = p.toPixels(x, y)
	return input.Event{Kind: input.PointerMove, X: x, Y: y}
}

// wheelEvent converts a vertical scroll offset (positive away from the user) to a
// browser-style Wheel event (negative deltaY away from the user).
func wheelEvent(yoff float64) (input.Event, bool) {
	if yoff == 0 {
		return input.Event{}, false
	}
	return input.Event{Kind: input.Wheel, DeltaY: float32(-yoff * scrollLineHeight)}, true
}
