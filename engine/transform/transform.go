package transform

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

type controller struct {
	mu *sync.Mutex

	cam     camera.CameraController
	surface game_object.GameObject

	dragPolicy DragPolicy
	zoomPolicy ZoomPolicy
	panScale   float32
	dollyStep  float32
	scaleStep  float32
}

// Controller applies drag, zoom and held-key movement to the camera and the
// interactive surface. Camera bounds are enforced by the camera controller.
// Surface operations are no-ops until a surface is set.
type Controller interface {
	// ApplyDrag applies a normalized pointer delta according to the drag policy.
	//
	// Parameters:
	//   - delta: pointer motion as a fraction of the viewport
	//   - modifierHeld: whether the modifier key is held
	ApplyDrag(delta mgl32.Vec2, modifierHeld bool)

	// ApplyZoom applies one wheel tick according to the zoom policy.
	//
	// Parameters:
	//   - dir: ZoomIn or ZoomOut
	ApplyZoom(dir input.ZoomDirection)

	// ApplyContinuousMove advances the camera one step along its forward, right and
	// up axes for each held key.
	//
	// Parameters:
	//   - keys: the held movement keys
	ApplyContinuousMove(keys input.MoveKeys)

	// FaceCamera turns the surface so its front faces the camera.
	FaceCamera()

	// SetSurface sets the interactive surface.
	SetSurface(surface game_object.GameObject)

	// DragPolicy returns the drag policy.
	DragPolicy() DragPolicy

	// ZoomPolicy returns the zoom policy.
	ZoomPolicy() ZoomPolicy
}

var _ Controller = &controller{}

// NewController creates a transform Controller driving the given camera controller.
// Defaults: OrbitCamera, DollyCamera.
//
// Parameters:
//   - cam: the camera controller to move
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(cam camera.CameraController, options ...ControllerBuilderOption) Controller {
	c := &controller{
		mu:         &sync.Mutex{},
		cam:        cam,
		dragPolicy: OrbitCamera,
		zoomPolicy: DollyCamera,
		panScale:   DefaultPanScale,
		dollyStep:  DefaultDollyStep,
		scaleStep:  DefaultScaleStep,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) ApplyDrag(delta mgl32.Vec2, modifierHeld bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.dragPolicy {
	case OrbitCamera:
		if c.cam != nil {
			c.cam.Rotate(-delta[1]*math.Pi, -delta[0]*math.Pi)
		}
	case PanSurface:
		c.pan(delta)
	case ModifierSwitchedBoth:
		if modifierHeld {
			c.rotate(delta)
		} else {
			c.pan(delta)
		}
	}
}

func (c *controller) ApplyZoom(dir input.ZoomDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sign float32
	switch dir {
	case input.ZoomIn:
		sign = -1
	case input.ZoomOut:
		sign = 1
	default:
		return
	}

	switch c.zoomPolicy {
	case DollyCamera:
		if c.cam != nil {
			c.cam.Dolly(sign * c.dollyStep)
		}
	case ScaleSurface:
		if c.surface == nil {
			return
		}
		// In grows the surface, out shrinks it.
		factor := 1 - sign*c.scaleStep
		sx, sy, sz := c.surface.Scale()
		c.surface.SetScale(sx*factor, sy*factor, sz*factor)
	}
}

func (c *controller) ApplyContinuousMove(keys input.MoveKeys) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cam == nil || !keys.Any() {
		return
	}
	if forward := axis(keys.Forward, keys.Back); forward != 0 {
		c.cam.MoveForward(forward)
	}
	if right := axis(keys.Right, keys.Left); right != 0 {
		c.cam.MoveRight(right)
	}
	if up := axis(keys.Up, keys.Down); up != 0 {
		c.cam.MoveUp(up)
	}
}

func (c *controller) FaceCamera() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface == nil || c.cam == nil {
		return
	}
	x, y, z := c.cam.Position()
	c.surface.LookAt(mgl32.Vec3{x, y, z})
}

func (c *controller) SetSurface(surface game_object.GameObject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surface = surface
}

func (c *controller) DragPolicy() DragPolicy {
	return c.dragPolicy
}

func (c *controller) ZoomPolicy() ZoomPolicy {
	return c.zoomPolicy
}

// pan moves the surface in screen directions. Caller must hold c.mu.
func (c *controller) pan(delta mgl32.Vec2) {
	if c.surface == nil {
		return
	}
	x, y, z := c.surface.Position()
	c.surface.SetPosition(x+delta[0]*c.panScale, y-delta[1]*c.panScale, z)
}

// rotate turns the surface: vertical drag pitches, horizontal drag yaws. Caller must hold c.mu.
func (c *controller) rotate(delta mgl32.Vec2) {
	if c.surface == nil {
		return
	}
	rx, ry, rz := c.surface.Rotation()
	c.surface.SetRotation(rx+delta[1]*math.Pi, ry+delta[0]*math.Pi, rz)
}

// axis folds a pair of opposing keys into -1, 0 or 1.
func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
