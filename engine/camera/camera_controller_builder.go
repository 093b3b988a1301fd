package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial pitch and yaw.
//
// Parameters:
//   - rx: pitch in radians
//   - ry: yaw in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation
func WithRotation(rx, ry float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotationX = rx
		cc.rotationY = ry
	}
}

// WithMoveStep sets the distance moved per unit of planar input.
//
// Parameters:
//   - step: world units per step
//
// Returns:
//   - CameraControllerOption: functional option to set the move step
func WithMoveStep(step float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveStep = step
	}
}

// WithBound sets the symmetric per-axis position bound.
// Negative values are treated as their absolute value.
//
// Parameters:
//   - bound: each position axis is kept within [-bound, bound]
//
// Returns:
//   - CameraControllerOption: functional option to set the bound
func WithBound(bound float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if bound < 0 {
			bound = -bound
		}
		cc.bound = bound
	}
}

// WithClamping enables or disables position clamping.
//
// Parameters:
//   - enabled: true to keep the position within the bound
//
// Returns:
//   - CameraControllerOption: functional option to toggle clamping
func WithClamping(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.clampEnabled = enabled
	}
}
