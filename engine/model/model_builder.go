package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithTriangles is an option builder that appends faces to the Model.
//
// Parameters:
//   - triangles: faces in local space
//
// Returns:
//   - ModelBuilderOption: a function that applies the faces to a model
func WithTriangles(triangles ...Triangle) ModelBuilderOption {
	return func(m *model) {
		m.triangles = append(m.triangles, triangles...)
	}
}

// WithDoubleSided is an option builder that sets whether both faces are visible.
//
// Parameters:
//   - doubleSided: true to render both sides
//
// Returns:
//   - ModelBuilderOption: a function that applies the option to a model
func WithDoubleSided(doubleSided bool) ModelBuilderOption {
	return func(m *model) {
		m.doubleSided = doubleSided
	}
}

// WithBoundingRadius is an option builder that overrides the computed bounding radius.
//
// Parameters:
//   - radius: the bounding sphere radius
//
// Returns:
//   - ModelBuilderOption: a function that applies the radius to a model
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}
