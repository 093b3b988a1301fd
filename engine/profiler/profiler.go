package profiler

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/log"
)

// Stats is one reporting window of frame and memory statistics.
type Stats struct {
	FPS         float64
	Frames      int
	DrawCalls   int
	Triangles   int
	HeapMB      float64
	AllocRateMB float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
	SysMB       float64
}

// Profiler tracks frame rate, per-frame draw work and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	mu *sync.Mutex

	now            func() time.Time
	frameCount     int
	drawCalls      int
	triangles      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Record adds one frame's draw work to the current window.
//
// Parameters:
//   - drawCalls: number of nodes drawn
//   - triangles: number of triangles submitted
func (p *Profiler) Record(drawCalls, triangles int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawCalls += drawCalls
	p.triangles += triangles
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	stats := Stats{
		FPS:       float64(p.frameCount) / elapsed.Seconds(),
		Frames:    p.frameCount,
		DrawCalls: p.drawCalls,
		Triangles: p.triangles,
		// Alloc is live heap; Sys is the process footprint.
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:     p.memStats.NumGC,
	}

	if gcCount := p.memStats.NumGC; gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		stats.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			stats.MaxPauseUs = max(stats.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	log.WithFields(log.Fields{
		"fps":        stats.FPS,
		"draw_calls": stats.DrawCalls / stats.Frames,
		"triangles":  stats.Triangles / stats.Frames,
		"heap_mb":    stats.HeapMB,
		"alloc_mb_s": stats.AllocRateMB,
		"gc":         stats.GCCount,
		"gc_last_us": stats.LastPauseUs,
		"gc_max_us":  stats.MaxPauseUs,
		"sys_mb":     stats.SysMB,
	}).Info("profiler")

	p.last = stats
	p.frameCount = 0
	p.drawCalls = 0
	p.triangles = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the statistics of the most recently completed window.
func (p *Profiler) Last() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
