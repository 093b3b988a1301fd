package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/profiler"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/samber/lo"
)

// headlessRendererBackend keeps the last submitted frame and feeds draw counts to
// the profiler.
type headlessRendererBackend struct {
	mu *sync.Mutex

	profiler *profiler.Profiler
	width    int
	height   int
	frames   uint64
	last     []DrawCall
}

var _ RendererBackend = &headlessRendererBackend{}

func newHeadlessRendererBackend(p *profiler.Profiler) *headlessRendererBackend {
	return &headlessRendererBackend{
		mu:       &sync.Mutex{},
		profiler: p,
	}
}

func (b *headlessRendererBackend) Configure(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
	log.Debugf("headless surface configured %dx%d", width, height)
}

func (b *headlessRendererBackend) Submit(calls []DrawCall) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frames++
	b.last = calls
	triangles := lo.SumBy(calls, func(c DrawCall) int { return len(c.Triangles) })

	if b.profiler != nil {
		b.profiler.Record(len(calls), triangles)
		b.profiler.Tick()
	}
	return nil
}

func (b *headlessRendererBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = nil
	return nil
}
