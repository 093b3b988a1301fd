package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is a single face in model-local space.
type Triangle [3]mgl32.Vec3

// model is the implementation of the Model interface.
type model struct {
	name           string
	triangles      []Triangle
	doubleSided    bool
	boundingRadius float32
}

// Model defines the interface for a piece of static geometry.
// A Model is a flat list of triangles in local space, used both by renderers and
// by ray intersection queries. It is immutable after construction.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Triangles retrieves a copy of the model's faces in local space.
	//
	// Returns:
	//   - []Triangle: the faces
	Triangles() []Triangle

	// TriangleCount returns the number of faces.
	//
	// Returns:
	//   - int: the face count
	TriangleCount() int

	// DoubleSided reports whether both faces of each triangle are visible.
	//
	// Returns:
	//   - bool: true if the geometry renders from both sides
	DoubleSided() bool

	// BoundingRadius returns the radius of a sphere centered at the local origin
	// enclosing every vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model configured with the given options.
// If no bounding radius is given, it is computed from the triangles.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		doubleSided: true,
	}
	for _, option := range options {
		option(m)
	}
	if m.boundingRadius == 0 {
		m.boundingRadius = computeBoundingRadius(m.triangles)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Triangles() []Triangle {
	out := make([]Triangle, len(m.triangles))
	copy(out, m.triangles)
	return out
}

func (m *model) TriangleCount() int {
	return len(m.triangles)
}

func (m *model) DoubleSided() bool {
	return m.doubleSided
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

// computeBoundingRadius returns the largest vertex distance from the local origin.
func computeBoundingRadius(triangles []Triangle) float32 {
	var r float32
	for _, tri := range triangles {
		for _, v := range tri {
			if l := v.Len(); l > r {
				r = l
			}
		}
	}
	return r
}
