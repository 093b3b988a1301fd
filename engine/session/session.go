package session

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/hittest"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/media"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/model"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/playback"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/scene"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/transform"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type session struct {
	mu *sync.Mutex

	id        uuid.UUID
	cfg       Config
	scheduler overlay.Scheduler
	logger    *logrus.Entry

	source media.Source
	cam    camera.Camera
	scn    scene.Scene

	mapper    input.Mapper
	holder    playback.Holder
	gate      hittest.Gate
	icons     overlay.Controller
	transform transform.Controller

	surface game_object.GameObject
	ready   bool
	closed  bool
}

// Session is the controller for one running player. It owns the input mapper,
// playback holder, hit-test gate, overlay and transform controllers, and routes
// each input event through them. Input callbacks and frame ticks may arrive on
// different goroutines; the session serializes them.
type Session interface {
	// ID returns the session's unique identifier.
	ID() uuid.UUID

	// MediaReady builds the playback state, the surface and its icons. It is wired to
	// the media source's ready notification; later calls are ignored.
	MediaReady()

	// Ready reports whether MediaReady has run.
	Ready() bool

	// HandleEvent maps a raw event to an intent and applies it.
	//
	// Parameters:
	//   - e: the raw input event
	HandleEvent(e input.Event)

	// Frame runs the per-frame work: held-key movement, billboarding, hover reveal
	// and overlay easing.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	Frame(dt float32)

	// Resize updates the viewport and camera aspect.
	//
	// Parameters:
	//   - width, height: the viewport size in pixels
	Resize(width, height float32)

	// Snapshot returns the current state.
	Snapshot() Snapshot

	// Scene returns the scene the session populates.
	Scene() scene.Scene

	// Camera returns the session's camera.
	Camera() camera.Camera

	// Overlay returns the overlay controller.
	Overlay() overlay.Controller

	// Playback returns the playback holder.
	Playback() playback.Holder

	// Close cancels pending overlay timers. Later events are ignored.
	Close()
}

var _ Session = &session{}

// NewSession creates a Session over the given media source, camera and scene and
// subscribes to the source's ready notification.
//
// Parameters:
//   - source: the media source to control
//   - cam: the camera the user views and picks through; it must carry a controller
//   - scn: the scene to place the surface in
//   - options: functional options to configure the session
//
// Returns:
//   - Session: the newly created session
func NewSession(source media.Source, cam camera.Camera, scn scene.Scene, options ...SessionBuilderOption) Session {
	s := &session{
		mu:     &sync.Mutex{},
		id:     uuid.New(),
		cfg:    DefaultConfig(),
		source: source,
		cam:    cam,
		scn:    scn,
	}
	for _, option := range options {
		option(s)
	}
	s.logger = log.WithField("session", s.id.String())

	s.mapper = input.NewMapper(input.WithSeekStep(s.cfg.SeekStep))
	s.icons = overlay.NewController(
		overlay.WithPolicy(s.cfg.OverlayPolicy),
		overlay.WithScheduler(s.scheduler),
		overlay.WithFlashOpacity(s.cfg.FlashOpacity),
		overlay.WithFlashDuration(s.cfg.FlashDuration),
	)
	s.holder = playback.NewHolder(source, playback.WithNotifier(s.icons))
	s.gate = hittest.NewGate(cam, scn, s.mapper,
		hittest.WithIcons(s.icons),
		hittest.WithRecursive(s.cfg.RecursivePick),
	)
	s.transform = transform.NewController(cam.Controller(),
		transform.WithDragPolicy(s.cfg.DragPolicy),
		transform.WithZoomPolicy(s.cfg.ZoomPolicy),
		transform.WithPanScale(s.cfg.PanScale),
	)

	if source != nil {
		source.OnReady(s.MediaReady)
	}
	return s
}

func (s *session) ID() uuid.UUID {
	return s.id
}

func (s *session) MediaReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready || s.closed {
		return
	}

	s.holder.MediaReady()

	s.surface = game_object.NewGameObject(
		game_object.WithName(SurfaceName),
		game_object.WithModel(model.NewPlane(SurfaceName, s.cfg.SurfaceWidth, s.cfg.SurfaceHeight)),
	)
	s.scn.Add(s.surface)
	s.icons.Attach(s.surface)
	s.gate.SetSurface(s.surface)
	s.transform.SetSurface(s.surface)
	if s.cfg.Billboard {
		s.transform.FaceCamera()
	}

	s.ready = true
	st := s.holder.State()
	s.logger.WithField("duration", st.DurationSeconds).Info("media ready, surface created")
}

func (s *session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *session) HandleEvent(e input.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if e.Kind == input.Resize {
		s.resize(e.Width, e.Height)
		return
	}

	intent, ok := s.mapper.Map(e)
	if !ok {
		return
	}
	s.logger.Debugf("%s -> %s", e.Kind, intent.Kind)

	switch intent.Kind {
	case input.TogglePlayPause:
		s.holder.TogglePlayPause()
	case input.SeekBy:
		s.holder.SeekBy(intent.Seconds)
	case input.Drag:
		s.transform.ApplyDrag(intent.Delta, s.mapper.AltHeld())
	case input.Zoom:
		s.transform.ApplyZoom(intent.Direction)
	case input.ActivateAt:
		s.activate(intent)
	}
}

// activate handles a click. Clicks off the surface are discarded; a click on a
// lit seek icon seeks, any other click on the surface toggles playback.
// Caller must hold s.mu.
func (s *session) activate(intent input.Intent) {
	s.cam.Update()
	if !s.gate.IsOverSurface(intent.Point) {
		return
	}
	s.logger.Info("Video plane clicked")

	icon, picked := s.gate.PickIcon(intent.Point).Get()
	switch {
	case picked && icon == overlay.Rewind:
		s.holder.SeekBy(-s.mapper.SeekStep())
	case picked && icon == overlay.Forward:
		s.holder.SeekBy(s.mapper.SeekStep())
	default:
		s.holder.TogglePlayPause()
	}
}

func (s *session) Frame(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.transform.ApplyContinuousMove(s.mapper.MoveKeys())
	if s.ready && s.cfg.Billboard {
		s.transform.FaceCamera()
	}
	s.cam.Update()

	if s.ready && s.cfg.OverlayPolicy == overlay.HoverReveal {
		point, seen := s.mapper.Pointer()
		s.icons.SetGroupVisible(seen && s.gate.IsOverSurface(point))
	}
	s.icons.Step(dt)
}

func (s *session) Resize(width, height float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resize(width, height)
}

// resize updates viewport and aspect. Caller must hold s.mu.
func (s *session) resize(width, height float32) {
	s.mapper.SetViewport(width, height)
	if width > 0 && height > 0 {
		s.cam.SetAspect(width / height)
	}
}

func (s *session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.holder.State()
	snap := Snapshot{
		SessionID: s.id.String(),
		Ready:     s.ready,
		Playback: PlaybackSnapshot{
			Playing:  st.IsPlaying,
			Position: st.PositionSeconds,
			Duration: st.DurationSeconds,
		},
	}

	if ctrl := s.cam.Controller(); ctrl != nil {
		x, y, z := ctrl.Position()
		snap.Camera = CameraSnapshot{
			Position:  [3]float32{x, y, z},
			RotationX: ctrl.RotationX(),
			RotationY: ctrl.RotationY(),
		}
	}

	if s.surface != nil {
		px, py, pz := s.surface.Position()
		rx, ry, rz := s.surface.Rotation()
		sx, sy, sz := s.surface.Scale()
		snap.Surface = &ObjectSnapshot{
			Position: [3]float32{px, py, pz},
			Rotation: [3]float32{rx, ry, rz},
			Scale:    [3]float32{sx, sy, sz},
		}
	}

	snap.Icons = lo.Map(s.icons.States(), func(ic overlay.IconState, _ int) IconSnapshot {
		return IconSnapshot{
			ID:             ic.ID.String(),
			Opacity:        ic.Opacity,
			DisplayOpacity: ic.DisplayOpacity,
			Visible:        ic.Visible,
		}
	})
	return snap
}

func (s *session) Scene() scene.Scene {
	return s.scn
}

func (s *session) Camera() camera.Camera {
	return s.cam
}

func (s *session) Overlay() overlay.Controller {
	return s.icons
}

func (s *session) Playback() playback.Holder {
	return s.holder
}

func (s *session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.icons.Close()
	s.logger.Info("session closed")
}
