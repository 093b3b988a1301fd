package hittest_test

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/hittest"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/model"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay/overlaytest"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewport struct{ w, h float32 }

func (v viewport) Viewport() (float32, float32) { return v.w, v.h }

type fixture struct {
	cam     camera.Camera
	scn     scene.Scene
	surface game_object.GameObject
	icons   overlay.Controller
	vp      viewport
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	vp := viewport{800, 600}
	cam := camera.NewCamera(
		camera.WithAspect(vp.w/vp.h),
		camera.WithController(camera.NewCameraController()),
	)
	scn := scene.NewScene("test", cam)
	surface := game_object.NewGameObject(
		game_object.WithName("videoPlane"),
		game_object.WithModel(model.NewPlane("videoPlane", 10, 6)),
	)
	scn.Add(surface)

	icons := overlay.NewController(overlay.WithScheduler(overlaytest.NewScheduler()))
	icons.Attach(surface)
	return &fixture{cam: cam, scn: scn, surface: surface, icons: icons, vp: vp}
}

func (f *fixture) gate(options ...hittest.GateBuilderOption) hittest.Gate {
	base := []hittest.GateBuilderOption{hittest.WithSurface(f.surface), hittest.WithIcons(f.icons)}
	return hittest.NewGate(f.cam, f.scn, f.vp, append(base, options...)...)
}

// toScreen projects a world point to window pixels.
func (f *fixture) toScreen(p mgl32.Vec3) mgl32.Vec2 {
	clip := f.cam.ViewProjectionMatrix().Mul4x1(p.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip[3])
	return mgl32.Vec2{(ndc[0] + 1) / 2 * f.vp.w, (1 - ndc[1]) / 2 * f.vp.h}
}

var center = mgl32.Vec2{400, 300}

func TestGateWithoutSurfaceMisses(t *testing.T) {
	f := newFixture(t)
	g := hittest.NewGate(f.cam, f.scn, f.vp, hittest.WithIcons(f.icons))

	assert.False(t, g.IsOverSurface(center))
	assert.True(t, g.PickIcon(center).IsAbsent())
}

func TestSurfaceCenterHitsWhenFacingCamera(t *testing.T) {
	f := newFixture(t)
	g := f.gate()
	assert.True(t, g.IsOverSurface(center))

	g = f.gate(hittest.WithRecursive(true))
	assert.True(t, g.IsOverSurface(center))
}

func TestPointsOffTheSurfaceMiss(t *testing.T) {
	f := newFixture(t)
	g := f.gate()

	for _, p := range []mgl32.Vec2{{0, 0}, {800, 600}, {400, 0}, {400, 599}} {
		assert.False(t, g.IsOverSurface(p), "%v", p)
	}

	// Either side of the top edge of the plane.
	inside := f.toScreen(mgl32.Vec3{0, 2.9, 0})
	assert.True(t, g.IsOverSurface(inside))
	outside := f.toScreen(mgl32.Vec3{0, 3.1, 0})
	assert.False(t, g.IsOverSurface(outside))
}

func TestCameraFacingAwayMisses(t *testing.T) {
	f := newFixture(t)
	f.cam.Controller().SetRotation(0, math.Pi)
	assert.False(t, f.gate().IsOverSurface(center))
}

func TestDisabledSurfaceMisses(t *testing.T) {
	f := newFixture(t)
	f.surface.SetEnabled(false)
	assert.False(t, f.gate().IsOverSurface(center))
}

func TestPickIconRequiresOpacity(t *testing.T) {
	f := newFixture(t)
	g := f.gate()

	assert.True(t, g.PickIcon(center).IsAbsent(), "icons start transparent")

	f.icons.Flash(overlay.Play)
	assert.Equal(t, overlay.Play, g.PickIcon(center).MustGet())

	f.icons.Flash(overlay.Rewind)
	rewind := f.toScreen(mgl32.Vec3{-3, 0, 0.1})
	assert.Equal(t, overlay.Rewind, g.PickIcon(rewind).MustGet())

	// The forward icon is still transparent.
	forward := f.toScreen(mgl32.Vec3{3, 0, 0.1})
	assert.True(t, g.PickIcon(forward).IsAbsent())
	assert.True(t, g.IsOverSurface(forward))
}

func TestPickIconRequiresVisibility(t *testing.T) {
	f := newFixture(t)
	f.icons.Flash(overlay.Play)
	f.icons.SetGroupVisible(false)
	assert.True(t, f.gate().PickIcon(center).IsAbsent())
}

func TestRayThroughCenterPointsForward(t *testing.T) {
	f := newFixture(t)
	origin, dir := f.gate().Ray(center)
	require.InDelta(t, 5, origin[2], 1e-5)
	assert.InDelta(t, 0, dir[0], 1e-4)
	assert.InDelta(t, 0, dir[1], 1e-4)
	assert.InDelta(t, -1, dir[2], 1e-4)
}
