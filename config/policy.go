package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/transform"
)

// ErrInvalidPolicy is returned for a policy or backend name that is not recognized.
var ErrInvalidPolicy = errors.New("invalid policy")

// Media backends.
const (
	BackendMPV   = "mpv"
	BackendClock = "clock"
)

var (
	overlayPolicies = map[string]overlay.Policy{
		"timed-flash":  overlay.TimedFlash,
		"hover-reveal": overlay.HoverReveal,
	}
	dragPolicies = map[string]transform.DragPolicy{
		"orbit": transform.OrbitCamera,
		"pan":   transform.PanSurface,
		"both":  transform.ModifierSwitchedBoth,
	}
	zoomPolicies = map[string]transform.ZoomPolicy{
		"dolly": transform.DollyCamera,
		"scale": transform.ScaleSurface,
	}
)

func parse[T any](kind string, table map[string]T, name string) (T, error) {
	if v, ok := table[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrInvalidPolicy, kind, name)
}

// ParseOverlayPolicy resolves "timed-flash" or "hover-reveal".
func ParseOverlayPolicy(name string) (overlay.Policy, error) {
	return parse("overlay", overlayPolicies, name)
}

// ParseDragPolicy resolves "orbit", "pan" or "both".
func ParseDragPolicy(name string) (transform.DragPolicy, error) {
	return parse("drag", dragPolicies, name)
}

// ParseZoomPolicy resolves "dolly" or "scale".
func ParseZoomPolicy(name string) (transform.ZoomPolicy, error) {
	return parse("zoom", zoomPolicies, name)
}

// ParseBackend resolves "mpv" or "clock".
func ParseBackend(name string) (string, error) {
	return parse("backend", map[string]string{BackendMPV: BackendMPV, BackendClock: BackendClock}, name)
}
