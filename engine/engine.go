package engine

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/profiler"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/renderer"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/scene"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/session"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/window"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
)

// engine implements the Engine interface.
// Coordinates the tick, render and window threads around one session.
type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	closeOnce   sync.Once
	closeErr    error

	window   window.Window
	session  session.Session
	renderer renderer.Renderer
	closers  []io.Closer

	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine drives a session: it ticks the session at a fixed rate, renders its
// scene on a separate goroutine and, when a window is attached, pumps the
// window's message loop on the calling goroutine.
type Engine interface {
	// Window returns the attached window, or nil when running headless.
	Window() window.Window

	// Session returns the session the engine drives.
	Session() session.Session

	// Renderer returns the renderer drawing the session's scene.
	Renderer() renderer.Renderer

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called each tick after the session frame.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets the render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop.
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddCloser registers a resource released when the engine shuts down, after
	// the session is closed. Closers run in registration order.
	//
	// Parameters:
	//   - c: the resource to close
	AddCloser(c io.Closer)

	// Run starts the engine and blocks until the window closes, ctx is cancelled
	// or Quit is called. With a window attached it must be called from the main
	// goroutine.
	//
	// Parameters:
	//   - ctx: cancels the run
	//
	// Returns:
	//   - error: the joined errors from closing the registered resources
	Run(ctx context.Context) error

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Done is closed once Quit has been signalled.
	Done() <-chan struct{}
}

var _ Engine = &engine{}

// NewEngine creates a new Engine around the given session.
//
// Parameters:
//   - sess: the session to drive
//   - options: functional options for engine configuration (window, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(sess session.Session, options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:               &sync.Mutex{},
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		session:          sess,
		engineTickRate:   time.Second / 60,
		renderFrameLimit: time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.renderer == nil {
		var ropts []renderer.RendererBuilderOption
		if e.profilingEnabled {
			ropts = append(ropts, renderer.WithProfiler(profiler.NewProfiler()))
		}
		e.renderer = renderer.NewRenderer(renderer.BackendTypeHeadless, ropts...)
	}

	if e.window != nil {
		e.window.SetResizeCallback(e.renderer.Resize)
		e.window.SetInputCallback(e.session.HandleEvent)
		e.window.SetUpdateCallback(func() {
			select {
			case <-e.quitChannel:
				if err := e.window.Close(); err != nil {
					log.Warnf("closing window: %v", err)
				}
			default:
			}
		})
		width, height := e.window.Width(), e.window.Height()
		e.renderer.Resize(width, height)
		e.session.Resize(float32(width), float32(height))
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Session() session.Session {
	return e.session
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run(ctx context.Context) error {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()

	stop := context.AfterFunc(ctx, e.signalQuit)
	defer stop()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}

	e.wg.Wait()
	return e.shutdown()
}

func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// shutdown closes the session, then every registered closer, then the renderer.
func (e *engine) shutdown() error {
	e.closeOnce.Do(func() {
		e.session.Close()

		e.mu.Lock()
		closers := append([]io.Closer(nil), e.closers...)
		e.mu.Unlock()

		var errs []error
		for _, c := range closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		if err := e.renderer.Close(); err != nil {
			errs = append(errs, err)
		}
		e.closeErr = errors.Join(errs...)
		log.Info("engine stopped")
	})
	return e.closeErr
}

// handle launches the tick and render goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Advances the session each tick and listens for dynamic rate changes via
// tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickRate())
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.session.Frame(dt)

			e.mu.Lock()
			cb := e.tickCallback
			e.mu.Unlock()
			if cb != nil {
				cb(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

// handleRender runs the (optionally frame-limited) render loop in its own goroutine.
// A frame that panics is logged and skipped; the loop keeps going.
func (e *engine) handleRender() {
	defer e.wg.Done()

	scn := e.session.Scene()
	for {
		select {
		case <-e.quitChannel:
			return
		default:
		}

		frameStart := time.Now()
		if scn.Active() {
			e.renderFrame(scn)
		}

		e.mu.Lock()
		limit := e.renderFrameLimit
		e.mu.Unlock()
		if limit <= 0 {
			continue
		}
		if remaining := limit - time.Since(frameStart); remaining > 0 {
			select {
			case <-e.quitChannel:
				return
			case <-time.After(remaining):
			}
		}
	}
}

// renderFrame draws one frame, recovering from a panic in the renderer.
func (e *engine) renderFrame(scn scene.Scene) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("render frame recovered from panic: %v", r)
		}
	}()
	if err := e.renderer.Render(scn); err != nil {
		log.Warnf("render: %v", err)
	}
}

func (e *engine) tickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engineTickRate
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// Replace any pending update rather than block.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameInterval(fps)
}

func (e *engine) AddCloser(c io.Closer) {
	if c == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closers = append(e.closers, c)
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

func frameInterval(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
