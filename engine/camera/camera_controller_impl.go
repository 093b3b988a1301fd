package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// Rotation methods modify pitch/yaw; planar methods translate the position along
// local camera axes and then clamp it when clamping is enabled.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3

	// Rotation in radians, applied as Y * X
	rotationX float32
	rotationY float32

	moveStep     float32
	bound        float32
	clampEnabled bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with defaults matching the
// player's initial view: position (0, 0, 5) looking down -Z, step 0.1, bound 9.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:           &sync.Mutex{},
		position:     mgl32.Vec3{0, 0, 5},
		moveStep:     0.1,
		bound:        9,
		clampEnabled: true,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clamp()
	return cc
}

// --- internal helpers ---

// clamp applies the position bound if enabled.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) clamp() {
	if !cc.clampEnabled {
		return
	}
	cc.position = common.ClampVec3(cc.position, cc.bound)
}

// localAxes computes the camera's local coordinate axes from the current rotation.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) localAxes() (right, up, forward mgl32.Vec3) {
	rot := common.RotationYXZ(cc.rotationX, cc.rotationY, 0)
	right = rot.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	up = rot.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
	forward = rot.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	return right, up, forward
}

// translate moves the position along axis by delta steps and clamps.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) translate(axis mgl32.Vec3, delta float32) {
	cc.position = cc.position.Add(axis.Mul(delta * cc.moveStep))
	cc.clamp()
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = mgl32.Vec3{x, y, z}
	cc.clamp()
}

func (cc *cameraControllerImpl) Bound() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.bound
}

func (cc *cameraControllerImpl) ClampEnabled() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.clampEnabled
}

// --- lookCameraController implementation ---

func (cc *cameraControllerImpl) RotationX() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotationX
}

func (cc *cameraControllerImpl) RotationY() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotationY
}

func (cc *cameraControllerImpl) SetRotation(rx, ry float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotationX = rx
	cc.rotationY = ry
}

func (cc *cameraControllerImpl) Rotate(drx, dry float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotationX += drx
	cc.rotationY += dry
}

func (cc *cameraControllerImpl) Axes() (right, up, forward mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.localAxes()
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) MoveRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	right, _, _ := cc.localAxes()
	cc.translate(right, delta)
}

func (cc *cameraControllerImpl) MoveUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, up, _ := cc.localAxes()
	cc.translate(up, delta)
}

func (cc *cameraControllerImpl) MoveForward(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, _, forward := cc.localAxes()
	cc.translate(forward, delta)
}

func (cc *cameraControllerImpl) Dolly(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position[2] += delta
	cc.clamp()
}

func (cc *cameraControllerImpl) MoveStep() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveStep
}
