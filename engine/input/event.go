package input

import "github.com/go-gl/mathgl/mgl32"

// EventKind identifies a raw device notification.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	PointerDown
	PointerMove
	PointerUp
	Wheel
	Click
	Resize
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case Wheel:
		return "wheel"
	case Click:
		return "click"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// PrimaryButton is the button index of the left mouse button or a touch contact.
const PrimaryButton = 0

// Event is a raw notification from an input surface. Coordinates are in window
// pixels with the origin at the top left.
type Event struct {
	Kind EventKind
	// Key is a common key code, set for KeyDown and KeyUp.
	Key uint32
	// Button is the pointer button, set for PointerDown, PointerUp and Click.
	Button int
	// X and Y locate the pointer.
	X, Y float32
	// DeltaY is the wheel delta; positive scrolls away from the user (zoom out).
	DeltaY float32
	// Width and Height carry the new viewport size for Resize.
	Width, Height float32
}

// IntentKind identifies a semantic user action.
type IntentKind int

const (
	TogglePlayPause IntentKind = iota + 1
	SeekBy
	BeginDrag
	Drag
	EndDrag
	Zoom
	ActivateAt
)

func (k IntentKind) String() string {
	switch k {
	case TogglePlayPause:
		return "toggle-play-pause"
	case SeekBy:
		return "seek-by"
	case BeginDrag:
		return "begin-drag"
	case Drag:
		return "drag"
	case EndDrag:
		return "end-drag"
	case Zoom:
		return "zoom"
	case ActivateAt:
		return "activate-at"
	default:
		return "none"
	}
}

// ZoomDirection is the sense of a wheel tick.
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota + 1
	ZoomOut
)

func (d ZoomDirection) String() string {
	switch d {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "none"
	}
}

// Intent is the mapper's output. Only the fields relevant to Kind are set.
type Intent struct {
	Kind IntentKind
	// Seconds is the signed offset for SeekBy.
	Seconds float64
	// Point is the pointer position for BeginDrag, Drag and ActivateAt.
	Point mgl32.Vec2
	// Delta is the pointer motion as a fraction of the viewport for Drag.
	Delta mgl32.Vec2
	// Direction is set for Zoom.
	Direction ZoomDirection
}

// MoveKeys is the set of continuous-movement keys currently held.
type MoveKeys struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Any reports whether at least one movement key is held.
func (m MoveKeys) Any() bool {
	return m.Forward || m.Back || m.Left || m.Right || m.Up || m.Down
}
