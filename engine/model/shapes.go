package model

import "github.com/go-gl/mathgl/mgl32"

// Outline is a closed 2D polygon in the local XY plane. The closing edge is implicit;
// a trailing point equal to the first one is ignored.
type Outline []mgl32.Vec2

// NewPlane builds a rectangle of the given size centered at the origin in the XY plane,
// facing +Z.
//
// Parameters:
//   - name: the model identifier
//   - width: extent along X
//   - height: extent along Y
//
// Returns:
//   - Model: a two-triangle double-sided model
func NewPlane(name string, width, height float32) Model {
	hw, hh := width/2, height/2
	return NewShape(name, Outline{
		{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh},
	})
}

// NewShape builds flat geometry from one or more convex outlines lying in the XY plane.
// Each outline is triangulated as a fan from its first point.
//
// Parameters:
//   - name: the model identifier
//   - outlines: convex polygons, at least three distinct points each
//
// Returns:
//   - Model: the triangulated double-sided model
func NewShape(name string, outlines ...Outline) Model {
	var triangles []Triangle
	for _, outline := range outlines {
		triangles = append(triangles, triangulateFan(outline)...)
	}
	return NewModel(
		WithName(name),
		WithTriangles(triangles...),
		WithDoubleSided(true),
	)
}

// triangulateFan splits a convex outline into triangles sharing its first point.
func triangulateFan(outline Outline) []Triangle {
	pts := outline
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if len(pts) < 3 {
		return nil
	}
	out := make([]Triangle, 0, len(pts)-2)
	origin := pts[0].Vec3(0)
	for i := 1; i+1 < len(pts); i++ {
		out = append(out, Triangle{origin, pts[i].Vec3(0), pts[i+1].Vec3(0)})
	}
	return out
}
