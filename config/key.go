package config

// Configuration keys. Nested keys map to TOML tables and to VIDPLANE_ env vars
// with dots replaced by underscores.
const (
	KeyMediaPath          = "media.path"
	KeyMediaBackend       = "media.backend"
	KeyMediaMPVBinary     = "media.mpv.binary"
	KeyMediaMPVSocket     = "media.mpv.socket"
	KeyMediaClockDuration = "media.clock.duration"

	KeyPolicyOverlay       = "policy.overlay"
	KeyPolicyDrag          = "policy.drag"
	KeyPolicyZoom          = "policy.zoom"
	KeyPolicyRecursivePick = "policy.recursive_pick"
	KeyPolicyBillboard     = "policy.billboard"

	KeyPlaybackSeekStep = "playback.seek_step"

	KeyOverlayFlashOpacity  = "overlay.flash_opacity"
	KeyOverlayFlashDuration = "overlay.flash_duration"

	KeyWindowEnabled = "window.enabled"
	KeyWindowTitle   = "window.title"
	KeyWindowWidth   = "window.width"
	KeyWindowHeight  = "window.height"

	KeyRemoteEnabled = "remote.enabled"
	KeyRemoteAddr    = "remote.addr"
	KeyRemoteOrigins = "remote.origins"

	KeyEngineTickRate   = "engine.tick_rate"
	KeyEngineFrameLimit = "engine.frame_limit"
	KeyEngineProfile    = "engine.profile"

	KeyLogsLevel = "logs.level"
	KeyLogsJSON  = "logs.json"
)
