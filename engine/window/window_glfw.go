package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// browserButton maps GLFW buttons to DOM MouseEvent.button numbering.
func browserButton(button glfw.MouseButton) (int, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return input.PrimaryButton, true
	case glfw.MouseButtonMiddle:
		return 1, true
	case glfw.MouseButtonRight:
		return 2, true
	default:
		return 0, false
	}
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Drawing goes through the renderer backend, so no GL context is needed.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.emit(input.Event{Kind: input.KeyDown, Key: uint32(key)})
		case glfw.Release:
			w.emit(input.Event{Kind: input.KeyUp, Key: uint32(key)})
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if e, ok := wheelEvent(yoff); ok {
			w.emit(e)
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := browserButton(button)
		if !ok {
			return
		}
		xpos, ypos := win.GetCursorPos()
		x, y := float32(xpos), float32(ypos)

		var events []input.Event
		switch action {
		case glfw.Press:
			events = w.pointer.down(b, x, y)
		case glfw.Release:
			events = w.pointer.up(b, x, y)
		}
		for _, e := range events {
			w.emit(e)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.emit(w.pointer.move(float32(xpos), float32(ypos)))
	})

	// Framebuffer size is in pixels; on high-DPI displays it differs from window size.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		winWidth, winHeight := win.GetSize()
		w.pointer.setScale(width, height, winWidth, winHeight)
		w.resized(width, height)
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	winWidth, winHeight := win.GetSize()
	w.pointer.setScale(fbWidth, fbHeight, winWidth, winHeight)
	w.width = fbWidth
	w.height = fbHeight

	return nil
}

// platformIsRunningCheck returns whether the GLFW window is still active.
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
