package hittest

import "github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"

// GateBuilderOption is a functional option for configuring a Gate.
type GateBuilderOption func(*gate)

// WithIcons sets the resolver used by PickIcon. Without one PickIcon always misses.
//
// Parameters:
//   - icons: the icon resolver, usually the overlay controller
//
// Returns:
//   - GateBuilderOption: option function to apply
func WithIcons(icons IconResolver) GateBuilderOption {
	return func(g *gate) {
		g.icons = icons
	}
}

// WithRecursive sets whether IsOverSurface also counts hits on the surface's children.
//
// Parameters:
//   - recursive: true to descend into children
//
// Returns:
//   - GateBuilderOption: option function to apply
func WithRecursive(recursive bool) GateBuilderOption {
	return func(g *gate) {
		g.recursive = recursive
	}
}

// WithSurface sets the initial interactive surface.
//
// Parameters:
//   - surface: the surface node
//
// Returns:
//   - GateBuilderOption: option function to apply
func WithSurface(surface game_object.GameObject) GateBuilderOption {
	return func(g *gate) {
		g.surface = surface
	}
}
