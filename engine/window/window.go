package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
)

// Window provides platform windowing and input event handling. The window has no
// drawing surface; it is an input canvas only.
// Wraps platform-specific window implementations with a common interface and
// translates native input into browser-style input.Events.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetInputCallback sets the function receiving every translated input event,
	// including Resize events.
	//
	// Parameters:
	//   - callback: function receiving the event (or nil to disable)
	SetInputCallback(callback func(e input.Event))

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	mu *sync.Mutex

	title     string
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int
	width     int
	height    int

	// clickSlop is the farthest, in pixels, a button may travel between press and
	// release and still count as a click.
	clickSlop float32

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	pointer *pointerTracker

	onUpdate func()
	onResize func(width, height int)
	onInput  func(e input.Event)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options and spawns the
// platform window.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		mu:        &sync.Mutex{},
		title:     "vidplane",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
		clickSlop: defaultClickSlop,
	}
	for _, opt := range options {
		opt(w)
	}
	w.pointer = newPointerTracker(w.clickSlop)
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onResize = callback
}

func (w *engineWindow) SetInputCallback(callback func(e input.Event)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onInput = callback
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		w.mu.Lock()
		update := w.onUpdate
		w.mu.Unlock()
		if update != nil {
			update()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// emit forwards an event to the input callback, if any.
func (w *engineWindow) emit(e input.Event) {
	w.mu.Lock()
	cb := w.onInput
	w.mu.Unlock()
	if cb != nil {
		cb(e)
	}
}

// resized records the new framebuffer size and notifies both callbacks.
func (w *engineWindow) resized(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	cb := w.onResize
	w.mu.Unlock()

	if cb != nil {
		cb(width, height)
	}
	w.emit(input.Event{Kind: input.Resize, Width: float32(width), Height: float32(height)})
}
