package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController defines the union interface for camera control systems.
// Controllers own positional state (position, rotation). Camera reads from controller
// and computes view/projection matrices. Embeds both lookCameraController and
// planarCameraController, enabling rotation and translation to work simultaneously
// from a single controller instance.
type CameraController interface {
	lookCameraController
	planarCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// SetPosition sets the camera's world-space position directly.
	// The position is clamped to the configured bound when clamping is enabled.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Bound returns the symmetric per-axis position bound.
	//
	// Returns:
	//   - float32: the bound applied to each position axis
	Bound() float32

	// ClampEnabled reports whether position clamping is active.
	//
	// Returns:
	//   - bool: true if every move is clamped into [-Bound, Bound]
	ClampEnabled() bool
}

// lookCameraController defines rotation control methods.
// Rotation is expressed as pitch (RotationX) and yaw (RotationY) applied in Y * X order.
type lookCameraController interface {
	// RotationX returns the pitch in radians.
	RotationX() float32

	// RotationY returns the yaw in radians.
	RotationY() float32

	// SetRotation sets pitch and yaw directly.
	//
	// Parameters:
	//   - rx: pitch in radians
	//   - ry: yaw in radians
	SetRotation(rx, ry float32)

	// Rotate adds to the current pitch and yaw.
	//
	// Parameters:
	//   - drx: pitch delta in radians
	//   - dry: yaw delta in radians
	Rotate(drx, dry float32)

	// Axes returns the camera's local basis vectors in world space.
	//
	// Returns:
	//   - right, up, forward: unit vectors (forward is the viewing direction, -Z local)
	Axes() (right, up, forward mgl32.Vec3)
}

// planarCameraController defines planar translation control methods.
// Provides first-person-style movement along the camera's local axes without
// changing rotation.
type planarCameraController interface {
	// MoveRight translates the camera along its local right axis.
	// Positive delta moves right, negative moves left.
	//
	// Parameters:
	//   - delta: move amount scaled by MoveStep
	MoveRight(delta float32)

	// MoveUp translates the camera along its local up axis.
	// Positive delta moves up, negative moves down.
	//
	// Parameters:
	//   - delta: move amount scaled by MoveStep
	MoveUp(delta float32)

	// MoveForward translates the camera along its viewing direction.
	// Positive delta moves forward, negative moves back.
	//
	// Parameters:
	//   - delta: move amount scaled by MoveStep
	MoveForward(delta float32)

	// Dolly translates the camera along the world Z axis by an absolute amount.
	// Positive delta moves away from the origin on +Z.
	//
	// Parameters:
	//   - delta: world units to move
	Dolly(delta float32)

	// MoveStep returns the distance moved per unit delta.
	//
	// Returns:
	//   - float32: world units per step
	MoveStep() float32
}
