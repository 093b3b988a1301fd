package config

import (
	"slices"
	"strings"
)

// Field is one registered configuration key.
type Field struct {
	Key         string `json:"key"`
	Value       any    `json:"default"`
	Description string `json:"description"`
}

// Env returns the environment variable that overrides this field.
func (f Field) Env() string {
	return strings.ToUpper(EnvPrefix + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Default holds every configuration field by key.
var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	register(KeyMediaPath, "Sample Videos/sample4.mp4", "Media file or URL to play")
	register(KeyMediaBackend, BackendMPV, "Media backend: mpv or clock (no video, wall-clock timeline)")
	register(KeyMediaMPVBinary, "mpv", "mpv executable to launch")
	register(KeyMediaMPVSocket, "", "Attach to an already running mpv IPC socket instead of launching one")
	register(KeyMediaClockDuration, 120.0, "Timeline length in seconds for the clock backend")

	register(KeyPolicyOverlay, "timed-flash", "Icon feedback: timed-flash or hover-reveal")
	register(KeyPolicyDrag, "orbit", "Primary-button drag: orbit, pan or both (Alt switches pan to rotate)")
	register(KeyPolicyZoom, "dolly", "Wheel zoom: dolly (move camera) or scale (resize surface)")
	register(KeyPolicyRecursivePick, false, "Count clicks on icons as clicks on the surface")
	register(KeyPolicyBillboard, true, "Turn the surface toward the camera every frame")

	register(KeyPlaybackSeekStep, 5.0, "Seconds moved by the arrow keys and seek icons")

	register(KeyOverlayFlashOpacity, 0.7, "Opacity of a flashed icon, 0 to 1")
	register(KeyOverlayFlashDuration, "500ms", "How long a flashed icon stays lit")

	register(KeyWindowEnabled, true, "Open a desktop window; disable to run headless")
	register(KeyWindowTitle, "vidplane", "Window title")
	register(KeyWindowWidth, 1280, "Initial window width in pixels")
	register(KeyWindowHeight, 720, "Initial window height in pixels")

	register(KeyRemoteEnabled, false, "Accept browser input over a websocket")
	register(KeyRemoteAddr, "127.0.0.1:8090", "Websocket listen address")
	register(KeyRemoteOrigins, []string{}, "Allowed browser origins; empty means same origin only")

	register(KeyEngineTickRate, 60, "Session ticks per second")
	register(KeyEngineFrameLimit, 60, "Render frames per second, 0 for uncapped")
	register(KeyEngineProfile, false, "Log frame statistics every second")

	register(KeyLogsLevel, "info", "Log level: panic, fatal, error, warn, info, debug, trace")
	register(KeyLogsJSON, false, "Write logs as JSON lines")
}

// Fields returns every registered field sorted by key.
func Fields() []Field {
	keys := make([]string, 0, len(Default))
	for k := range Default {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Default[k]
	}
	return fields
}
