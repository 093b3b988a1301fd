package transform

import "github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithDragPolicy sets the drag policy.
func WithDragPolicy(policy DragPolicy) ControllerBuilderOption {
	return func(c *controller) {
		c.dragPolicy = policy
	}
}

// WithZoomPolicy sets the zoom policy.
func WithZoomPolicy(policy ZoomPolicy) ControllerBuilderOption {
	return func(c *controller) {
		c.zoomPolicy = policy
	}
}

// WithSurface sets the initial interactive surface.
func WithSurface(surface game_object.GameObject) ControllerBuilderOption {
	return func(c *controller) {
		c.surface = surface
	}
}

// WithPanScale sets the world distance a full-viewport drag pans the surface.
// Non-positive values are ignored.
func WithPanScale(scale float32) ControllerBuilderOption {
	return func(c *controller) {
		if scale > 0 {
			c.panScale = scale
		}
	}
}

// WithDollyStep sets the camera Z travel per wheel tick. Non-positive values are ignored.
func WithDollyStep(step float32) ControllerBuilderOption {
	return func(c *controller) {
		if step > 0 {
			c.dollyStep = step
		}
	}
}

// WithScaleStep sets the fractional surface scale change per wheel tick, in (0, 1).
// Values outside that range are ignored.
func WithScaleStep(step float32) ControllerBuilderOption {
	return func(c *controller) {
		if step > 0 && step < 1 {
			c.scaleStep = step
		}
	}
}
