package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)

	KeyEsc = 256 // Escape key (GLFW)
)

// Navigation keys (GLFW)
const (
	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
)

// Modifier keys (GLFW)
const (
	KeyLeftShift  = 340
	KeyLeftAlt    = 342
	KeyRightShift = 344
	KeyRightAlt   = 346
)

// browserCodes maps DOM KeyboardEvent.code values to virtual key codes.
// Only keys with a meaning to the player are listed.
var browserCodes = map[string]uint32{
	"Space":      KeySpace,
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
	"ArrowUp":    KeyUp,
	"ArrowDown":  KeyDown,
	"KeyW":       KeyW,
	"KeyA":       KeyA,
	"KeyS":       KeyS,
	"KeyD":       KeyD,
	"KeyQ":       KeyQ,
	"KeyE":       KeyE,
	"AltLeft":    KeyLeftAlt,
	"AltRight":   KeyRightAlt,
	"ShiftLeft":  KeyLeftShift,
	"ShiftRight": KeyRightShift,
	"Escape":     KeyEsc,
}

// KeyFromBrowserCode resolves a DOM KeyboardEvent.code string to a virtual key code.
//
// Parameters:
//   - code: the DOM code string (e.g. "ArrowLeft")
//
// Returns:
//   - uint32: the virtual key code
//   - bool: false if the code is not known
func KeyFromBrowserCode(code string) (uint32, bool) {
	k, ok := browserCodes[code]
	return k, ok
}

// IsAltKey reports whether the key code is either Alt key.
func IsAltKey(keyCode uint32) bool {
	return keyCode == KeyLeftAlt || keyCode == KeyRightAlt
}
