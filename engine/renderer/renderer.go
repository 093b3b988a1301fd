package renderer

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/profiler"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/scene"
)

// ErrNoCamera is returned when a scene without a camera is rendered.
var ErrNoCamera = errors.New("renderer: scene has no camera")

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	profiler    *profiler.Profiler

	frames   uint64
	lastDraw []DrawCall
}

// Renderer turns a scene into an ordered draw list and hands it to a backend.
//
// Disabled nodes hide their whole subtree. Nodes without a model or with zero
// opacity are skipped. Opaque draws come first in scene order; translucent draws
// follow, farthest from the camera first.
type Renderer interface {
	// Render draws one frame of the scene through its camera.
	//
	// Parameters:
	//   - scn: the scene to draw
	//
	// Returns:
	//   - error: ErrNoCamera, or the backend's submit error
	Render(scn scene.Scene) error

	// Resize configures the backend for a new surface size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Frames returns how many frames have been submitted.
	Frames() uint64

	// LastFrame returns a copy of the most recent draw list.
	LastFrame() []DrawCall

	// BackendType returns the backend the renderer was created with.
	BackendType() RendererBackendType

	// Close releases the backend.
	//
	// Returns:
	//   - error: the backend's close error
	Close() error
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend type.
//
// Parameters:
//   - backendType: the type of backend to use
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}
	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeHeadless:
			fallthrough
		default:
			r.backend = newHeadlessRendererBackend(r.profiler)
		}
	}
	return r
}

func (r *renderer) Render(scn scene.Scene) error {
	cam := scn.Camera()
	if cam == nil {
		return ErrNoCamera
	}
	view := cam.ViewMatrix()

	var opaque, translucent []DrawCall
	var walk func(obj game_object.GameObject)
	walk = func(obj game_object.GameObject) {
		if !obj.Enabled() {
			return
		}
		if mdl := obj.Model(); mdl != nil && obj.Opacity() > 0 {
			world := obj.WorldMatrix()
			eye := view.Mul4x1(world.Col(3))
			call := DrawCall{
				Name:      obj.Name(),
				World:     world,
				Opacity:   obj.Opacity(),
				Triangles: mdl.Triangles(),
				Depth:     -eye[2],
			}
			if call.Translucent() {
				translucent = append(translucent, call)
			} else {
				opaque = append(opaque, call)
			}
		}
		for _, child := range obj.Children() {
			walk(child)
		}
	}
	for _, obj := range scn.Objects() {
		walk(obj)
	}

	slices.SortStableFunc(translucent, func(a, b DrawCall) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	calls := append(opaque, translucent...)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.backend.Submit(calls); err != nil {
		return err
	}
	r.frames++
	r.lastDraw = calls
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.Configure(width, height)
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) LastFrame() []DrawCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.lastDraw)
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Close() error {
	return r.backend.Close()
}
