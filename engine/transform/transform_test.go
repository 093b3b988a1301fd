package transform_test

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func position(obj game_object.GameObject) mgl32.Vec3 {
	x, y, z := obj.Position()
	return mgl32.Vec3{x, y, z}
}

func camPosition(cc camera.CameraController) mgl32.Vec3 {
	x, y, z := cc.Position()
	return mgl32.Vec3{x, y, z}
}

func TestOrbitCameraDrag(t *testing.T) {
	cc := camera.NewCameraController()
	c := transform.NewController(cc)

	c.ApplyDrag(mgl32.Vec2{0.5, 0.25}, false)
	assert.InDelta(t, -math.Pi/2, cc.RotationY(), 1e-6)
	assert.InDelta(t, -math.Pi/4, cc.RotationX(), 1e-6)

	// Orbit ignores the modifier.
	c.ApplyDrag(mgl32.Vec2{-0.5, 0}, true)
	assert.InDelta(t, 0, cc.RotationY(), 1e-6)
}

func TestPanSurfaceDrag(t *testing.T) {
	surface := game_object.NewGameObject()
	cc := camera.NewCameraController()
	c := transform.NewController(cc, transform.WithDragPolicy(transform.PanSurface), transform.WithSurface(surface))

	c.ApplyDrag(mgl32.Vec2{0.1, 0.2}, false)
	assert.True(t, position(surface).ApproxEqual(mgl32.Vec3{1, -2, 0}))
	assert.Zero(t, cc.RotationY())
}

func TestModifierSwitchedDrag(t *testing.T) {
	surface := game_object.NewGameObject()
	c := transform.NewController(camera.NewCameraController(),
		transform.WithDragPolicy(transform.ModifierSwitchedBoth),
		transform.WithSurface(surface),
	)

	c.ApplyDrag(mgl32.Vec2{0.5, 0.25}, true)
	rx, ry, rz := surface.Rotation()
	assert.InDelta(t, math.Pi/4, rx, 1e-6)
	assert.InDelta(t, math.Pi/2, ry, 1e-6)
	assert.Zero(t, rz)
	assert.Equal(t, mgl32.Vec3{}, position(surface))

	c.ApplyDrag(mgl32.Vec2{0.5, 0}, false)
	assert.InDelta(t, 5, position(surface)[0], 1e-6)
}

func TestSurfaceOpsWithoutSurfaceAreNoops(t *testing.T) {
	cc := camera.NewCameraController()
	c := transform.NewController(cc,
		transform.WithDragPolicy(transform.PanSurface),
		transform.WithZoomPolicy(transform.ScaleSurface),
	)
	c.ApplyDrag(mgl32.Vec2{1, 1}, false)
	c.ApplyZoom(input.ZoomIn)
	c.FaceCamera()
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, camPosition(cc))
}

func TestDollyCameraZoom(t *testing.T) {
	cc := camera.NewCameraController()
	c := transform.NewController(cc)

	c.ApplyZoom(input.ZoomOut)
	assert.InDelta(t, 6, camPosition(cc)[2], 1e-6)
	c.ApplyZoom(input.ZoomIn)
	c.ApplyZoom(input.ZoomIn)
	assert.InDelta(t, 4, camPosition(cc)[2], 1e-6)

	for range 20 {
		c.ApplyZoom(input.ZoomOut)
	}
	assert.Equal(t, float32(9), camPosition(cc)[2])

	c.ApplyZoom(input.ZoomDirection(0))
	assert.Equal(t, float32(9), camPosition(cc)[2])
}

func TestScaleSurfaceZoom(t *testing.T) {
	surface := game_object.NewGameObject()
	c := transform.NewController(camera.NewCameraController(),
		transform.WithZoomPolicy(transform.ScaleSurface),
		transform.WithSurface(surface),
	)

	c.ApplyZoom(input.ZoomIn)
	sx, sy, sz := surface.Scale()
	assert.InDelta(t, 1.1, sx, 1e-6)
	assert.InDelta(t, 1.1, sy, 1e-6)
	assert.InDelta(t, 1.1, sz, 1e-6)

	c.ApplyZoom(input.ZoomOut)
	sx, _, _ = surface.Scale()
	assert.InDelta(t, 0.99, sx, 1e-6)
}

func TestContinuousUpMoveClamps(t *testing.T) {
	for _, frames := range []int{1, 10, 50, 89, 90, 91, 200} {
		cc := camera.NewCameraController()
		c := transform.NewController(cc)
		for range frames {
			c.ApplyContinuousMove(input.MoveKeys{Up: true})
		}
		want := math.Min(9, 0.1*float64(frames))
		pos := camPosition(cc)
		assert.InDelta(t, want, pos[1], 1e-3, "frames %d", frames)
		assert.LessOrEqual(t, pos[1], float32(9))
		assert.Equal(t, float32(5), pos[2])
	}
}

func TestContinuousMoveAlongCameraAxes(t *testing.T) {
	cc := camera.NewCameraController()
	c := transform.NewController(cc)

	c.ApplyContinuousMove(input.MoveKeys{Forward: true})
	assert.True(t, camPosition(cc).ApproxEqualThreshold(mgl32.Vec3{0, 0, 4.9}, 1e-5))

	c.ApplyContinuousMove(input.MoveKeys{Right: true, Down: true})
	assert.True(t, camPosition(cc).ApproxEqualThreshold(mgl32.Vec3{0.1, -0.1, 4.9}, 1e-5))

	// Opposing keys cancel.
	c.ApplyContinuousMove(input.MoveKeys{Left: true, Right: true})
	assert.True(t, camPosition(cc).ApproxEqualThreshold(mgl32.Vec3{0.1, -0.1, 4.9}, 1e-5))

	// Facing +X, forward moves along +X.
	cc.SetRotation(0, -math.Pi/2)
	c.ApplyContinuousMove(input.MoveKeys{Forward: true})
	assert.True(t, camPosition(cc).ApproxEqualThreshold(mgl32.Vec3{0.2, -0.1, 4.9}, 1e-5))
}

func TestFaceCamera(t *testing.T) {
	surface := game_object.NewGameObject()
	cc := camera.NewCameraController(camera.WithPosition(5, 0, 5))
	c := transform.NewController(cc, transform.WithSurface(surface))

	c.FaceCamera()
	_, ry, _ := surface.Rotation()
	assert.InDelta(t, math.Pi/4, ry, 1e-6)

	// The surface's front now points at the camera.
	front := mgl32.TransformNormal(mgl32.Vec3{0, 0, 1}, surface.WorldMatrix())
	assert.True(t, front.ApproxEqualThreshold(mgl32.Vec3{1, 0, 1}.Normalize(), 1e-5))
}
