package renderer

import "github.com/Carmen-Shannon/oxy-vidplane/engine/profiler"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithProfiler attaches a profiler that receives per-frame draw counts.
//
// Parameters:
//   - p: the profiler to report to
//
// Returns:
//   - RendererBuilderOption: a function that applies the profiler option to a renderer
func WithProfiler(p *profiler.Profiler) RendererBuilderOption {
	return func(r *renderer) {
		r.profiler = p
	}
}

// WithBackend replaces the backend selected by the backend type.
//
// Parameters:
//   - backend: the backend to submit frames to
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}
