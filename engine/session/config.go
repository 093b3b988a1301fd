package session

import (
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/transform"
)

// SurfaceName is the scene name of the interactive surface.
const SurfaceName = "videoPlane"

// Config holds the per-session policies. Every behavioral variant is an explicit
// field here rather than a global.
type Config struct {
	OverlayPolicy overlay.Policy
	DragPolicy    transform.DragPolicy
	ZoomPolicy    transform.ZoomPolicy
	// RecursivePick makes surface hit tests also count hits on the surface's icons.
	RecursivePick bool
	// Billboard turns the surface toward the camera every frame.
	Billboard bool

	SeekStep      float64
	FlashOpacity  float32
	FlashDuration time.Duration
	PanScale      float32

	SurfaceWidth  float32
	SurfaceHeight float32
}

// DefaultConfig returns the policies of the reference player: timed flash, camera
// orbit, camera dolly, flat picking and a billboarded 10x6 surface.
func DefaultConfig() Config {
	return Config{
		OverlayPolicy: overlay.TimedFlash,
		DragPolicy:    transform.OrbitCamera,
		ZoomPolicy:    transform.DollyCamera,
		RecursivePick: false,
		Billboard:     true,
		SeekStep:      input.DefaultSeekStep,
		FlashOpacity:  overlay.DefaultFlashOpacity,
		FlashDuration: overlay.DefaultFlashDuration,
		PanScale:      transform.DefaultPanScale,
		SurfaceWidth:  10,
		SurfaceHeight: 6,
	}
}
