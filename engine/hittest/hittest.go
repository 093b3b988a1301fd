package hittest

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/mo"
)

// Viewport supplies the current viewport size in pixels.
type Viewport interface {
	Viewport() (width, height float32)
}

// IconResolver maps scene nodes to overlay icons and reports their visibility.
// The overlay Controller satisfies it.
type IconResolver interface {
	Lookup(obj game_object.GameObject) mo.Option[overlay.IconID]
	Opacity(id overlay.IconID) float32
	Visible(id overlay.IconID) bool
}

type gate struct {
	mu *sync.Mutex

	cam       camera.Camera
	scn       scene.Scene
	viewport  Viewport
	icons     IconResolver
	surface   game_object.GameObject
	recursive bool
}

// Gate answers whether a screen point lands on the interactive surface or one of
// its icons by casting a ray from the camera through the point. Before a surface is
// set every query misses.
type Gate interface {
	// IsOverSurface reports whether the nearest object under the point is the surface
	// (or, with recursive picking, one of its descendants).
	//
	// Parameters:
	//   - point: window position in pixels
	//
	// Returns:
	//   - bool: true on a hit
	IsOverSurface(point mgl32.Vec2) bool

	// PickIcon returns the nearest visible icon with non-zero opacity under the point.
	// Icon picking always descends into the surface's children.
	//
	// Parameters:
	//   - point: window position in pixels
	//
	// Returns:
	//   - mo.Option[overlay.IconID]: the icon, or None
	PickIcon(point mgl32.Vec2) mo.Option[overlay.IconID]

	// Ray returns the world-space pick ray through a window point.
	//
	// Parameters:
	//   - point: window position in pixels
	//
	// Returns:
	//   - origin: the camera position
	//   - dir: normalized direction
	Ray(point mgl32.Vec2) (origin, dir mgl32.Vec3)

	// SetSurface sets the interactive surface. Nil disables the gate.
	SetSurface(surface game_object.GameObject)

	// Surface returns the interactive surface, or nil.
	Surface() game_object.GameObject
}

var _ Gate = &gate{}

// NewGate creates a Gate over the given camera, scene and viewport.
//
// Parameters:
//   - cam: the camera rays are cast from
//   - scn: the scene to intersect
//   - viewport: supplies the viewport size for NDC conversion
//   - options: functional options to configure the gate
//
// Returns:
//   - Gate: the newly created gate
func NewGate(cam camera.Camera, scn scene.Scene, viewport Viewport, options ...GateBuilderOption) Gate {
	g := &gate{
		mu:       &sync.Mutex{},
		cam:      cam,
		scn:      scn,
		viewport: viewport,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gate) IsOverSurface(point mgl32.Vec2) bool {
	surface, recursive := g.target()
	if surface == nil {
		return false
	}
	origin, dir := g.Ray(point)
	hits := g.scn.Raycast(origin, dir, recursive)
	if len(hits) == 0 {
		return false
	}
	return belongsTo(hits[0].Object, surface)
}

func (g *gate) PickIcon(point mgl32.Vec2) mo.Option[overlay.IconID] {
	surface, _ := g.target()
	g.mu.Lock()
	icons := g.icons
	g.mu.Unlock()
	if surface == nil || icons == nil {
		return mo.None[overlay.IconID]()
	}

	origin, dir := g.Ray(point)
	for _, hit := range g.scn.Raycast(origin, dir, true) {
		id, ok := icons.Lookup(hit.Object).Get()
		if !ok || !belongsTo(hit.Object, surface) {
			continue
		}
		if icons.Visible(id) && icons.Opacity(id) > 0 {
			return mo.Some(id)
		}
	}
	return mo.None[overlay.IconID]()
}

func (g *gate) Ray(point mgl32.Vec2) (origin, dir mgl32.Vec3) {
	var w, h float32
	if g.viewport != nil {
		w, h = g.viewport.Viewport()
	}
	ndcX, ndcY := common.ScreenToNDC(point[0], point[1], w, h)
	return g.cam.Ray(ndcX, ndcY)
}

func (g *gate) SetSurface(surface game_object.GameObject) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.surface = surface
}

func (g *gate) Surface() game_object.GameObject {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.surface
}

func (g *gate) target() (game_object.GameObject, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.surface, g.recursive
}

// belongsTo reports whether obj is root or one of its descendants.
func belongsTo(obj, root game_object.GameObject) bool {
	for o := obj; o != nil; o = o.Parent() {
		if o == root {
			return true
		}
	}
	return false
}
