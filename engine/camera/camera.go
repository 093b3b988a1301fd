package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix                  mgl32.Mat4
	projectionMatrix            mgl32.Mat4
	viewProjectionMatrix        mgl32.Mat4
	inverseViewProjectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the perspective camera.
// The camera holds perspective settings and computes view/projection matrices
// from an attached CameraController via Update(). It also answers ray queries
// for hit-testing.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the current combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4

	// Controller returns the attached CameraController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Position returns the world-space position read from the controller,
	// or the origin if no controller is attached.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// Update reads position/rotation from the controller and recomputes matrices.
	// Should be called once per frame. If no controller is attached, this method does nothing.
	Update()

	// Ray builds a world-space ray from the camera through a point given in
	// normalized device coordinates. Matrices are refreshed from the controller first.
	//
	// Parameters:
	//   - ndcX, ndcY: normalized device coordinates in [-1, 1], y up
	//
	// Returns:
	//   - origin: the camera position
	//   - dir: unit direction of the ray
	Ray(ndcX, ndcY float32) (origin, dir mgl32.Vec3)

	// SetFov sets the field of view in radians and recomputes matrices.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	SetFar(far float32)

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings (70° fov,
// near 0.1, far 100). A controller must be attached via SetController or the
// WithController option before position data is available.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                          &sync.Mutex{},
		fov:                         70.0 * (math.Pi / 180.0), // radians
		aspect:                      1.0,
		near:                        0.1,
		far:                         100.0,
		viewMatrix:                  mgl32.Ident4(),
		projectionMatrix:            mgl32.Ident4(),
		viewProjectionMatrix:        mgl32.Ident4(),
		inverseViewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return mgl32.Vec3{}
	}
	x, y, z := c.controller.Position()
	return mgl32.Vec3{x, y, z}
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) Ray(ndcX, ndcY float32) (origin, dir mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()

	if c.controller != nil {
		x, y, z := c.controller.Position()
		origin = mgl32.Vec3{x, y, z}
	}

	far := c.inverseViewProjectionMatrix.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	if far[3] != 0 {
		far = far.Mul(1 / far[3])
	}
	dir = far.Vec3().Sub(origin)
	if dir.Len() == 0 {
		return origin, mgl32.Vec3{0, 0, -1}
	}
	return origin, dir.Normalize()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, view-projection and inverse
// view-projection matrices. The view matrix is the inverse of the camera's world
// transform T * Ry * Rx built from the controller; without a controller the camera
// sits at the origin looking down -Z.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	world := mgl32.Ident4()
	if c.controller != nil {
		px, py, pz := c.controller.Position()
		world = mgl32.Translate3D(px, py, pz).
			Mul4(common.RotationYXZ(c.controller.RotationX(), c.controller.RotationY(), 0))
	}
	c.viewMatrix = world.Inv()

	aspect := c.aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projectionMatrix = mgl32.Perspective(c.fov, aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.inverseViewProjectionMatrix = c.viewProjectionMatrix.Inv()
}
