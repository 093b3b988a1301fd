package renderer

import (
	"github.com/Carmen-Shannon/oxy-vidplane/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeHeadless selects the backend that records draw lists and reports
	// frame statistics without touching a GPU.
	BackendTypeHeadless RendererBackendType = iota
)

// DrawCall is one node submitted for drawing.
type DrawCall struct {
	Name      string
	World     mgl32.Mat4
	Opacity   float32
	Triangles []model.Triangle
	// Depth is the view-space distance used to order translucent draws.
	Depth float32
}

// Translucent reports whether the draw needs blending.
func (d DrawCall) Translucent() bool {
	return d.Opacity < 1
}

// RendererBackend consumes ordered draw lists produced by the Renderer.
type RendererBackend interface {
	// Configure sets the target surface size in pixels.
	Configure(width, height int)

	// Submit draws one frame.
	//
	// Parameters:
	//   - calls: opaque draws first, then translucent draws back to front
	//
	// Returns:
	//   - error: an error if the frame could not be drawn
	Submit(calls []DrawCall) error

	// Close releases backend resources.
	Close() error
}
