package transform

// DragPolicy selects what a pointer drag manipulates.
type DragPolicy int

const (
	// OrbitCamera turns the camera: horizontal drag yaws, vertical drag pitches.
	OrbitCamera DragPolicy = iota
	// PanSurface translates the surface in its plane.
	PanSurface
	// ModifierSwitchedBoth rotates the surface while the modifier is held and pans it otherwise.
	ModifierSwitchedBoth
)

func (p DragPolicy) String() string {
	switch p {
	case OrbitCamera:
		return "orbit-camera"
	case PanSurface:
		return "pan-surface"
	case ModifierSwitchedBoth:
		return "modifier-switched"
	default:
		return "unknown"
	}
}

// ZoomPolicy selects what a wheel tick manipulates.
type ZoomPolicy int

const (
	// DollyCamera moves the camera along world Z by a fixed step.
	DollyCamera ZoomPolicy = iota
	// ScaleSurface scales the surface by a fixed factor.
	ScaleSurface
)

func (p ZoomPolicy) String() string {
	switch p {
	case DollyCamera:
		return "dolly-camera"
	case ScaleSurface:
		return "scale-surface"
	default:
		return "unknown"
	}
}

const (
	// DefaultPanScale converts a full-viewport drag into world units of surface travel.
	DefaultPanScale float32 = 10
	// DefaultDollyStep is the camera Z travel per wheel tick.
	DefaultDollyStep float32 = 1
	// DefaultScaleStep is the fractional surface scale change per wheel tick.
	DefaultScaleStep float32 = 0.1
)
