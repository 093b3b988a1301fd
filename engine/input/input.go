package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSeekStep is the seek distance in seconds for the arrow keys.
const DefaultSeekStep = 5.0

type mapper struct {
	mu *sync.Mutex

	seekStep      float64
	width, height float32

	dragging   bool
	last       mgl32.Vec2
	pointer    mgl32.Vec2
	hasPointer bool
	held       map[uint32]bool
}

// Mapper turns raw device events into intents by a fixed table and tracks the
// modifier, held-key, drag and viewport state needed to do so.
type Mapper interface {
	// Map consumes one event and yields at most one intent.
	//
	// Parameters:
	//   - e: the raw event
	//
	// Returns:
	//   - Intent: the mapped intent
	//   - bool: false if the event produces no intent
	Map(e Event) (Intent, bool)

	// Dragging reports whether a primary-button drag is in progress.
	Dragging() bool

	// AltHeld reports whether either Alt key is held.
	AltHeld() bool

	// MoveKeys returns the held continuous-movement keys.
	MoveKeys() MoveKeys

	// Pointer returns the last known pointer position.
	//
	// Returns:
	//   - mgl32.Vec2: the position in window pixels
	//   - bool: false if the pointer has not been seen yet
	Pointer() (mgl32.Vec2, bool)

	// Viewport returns the viewport size in pixels.
	Viewport() (width, height float32)

	// SetViewport updates the viewport size used to normalize drag deltas.
	SetViewport(width, height float32)

	// SeekStep returns the arrow-key seek distance in seconds.
	SeekStep() float64
}

var _ Mapper = &mapper{}

// NewMapper creates a Mapper.
// Defaults: 5 second seek step, empty viewport.
//
// Parameters:
//   - options: functional options to configure the mapper
//
// Returns:
//   - Mapper: the newly created mapper
func NewMapper(options ...MapperBuilderOption) Mapper {
	m := &mapper{
		mu:       &sync.Mutex{},
		seekStep: DefaultSeekStep,
		held:     make(map[uint32]bool),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *mapper) Map(e Event) (Intent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e.Kind {
	case KeyDown:
		m.held[e.Key] = true
		switch e.Key {
		case common.KeySpace:
			return Intent{Kind: TogglePlayPause}, true
		case common.KeyLeft:
			return Intent{Kind: SeekBy, Seconds: -m.seekStep}, true
		case common.KeyRight:
			return Intent{Kind: SeekBy, Seconds: m.seekStep}, true
		}
		return Intent{}, false

	case KeyUp:
		delete(m.held, e.Key)
		return Intent{}, false

	case PointerDown:
		m.track(e)
		if e.Button != PrimaryButton {
			return Intent{}, false
		}
		m.dragging = true
		m.last = mgl32.Vec2{e.X, e.Y}
		return Intent{Kind: BeginDrag, Point: m.last}, true

	case PointerMove:
		m.track(e)
		if !m.dragging {
			return Intent{}, false
		}
		point := mgl32.Vec2{e.X, e.Y}
		delta := mgl32.Vec2{
			normalize(point[0]-m.last[0], m.width),
			normalize(point[1]-m.last[1], m.height),
		}
		m.last = point
		return Intent{Kind: Drag, Point: point, Delta: delta}, true

	case PointerUp:
		m.track(e)
		if e.Button != PrimaryButton {
			return Intent{}, false
		}
		m.dragging = false
		return Intent{Kind: EndDrag}, true

	case Wheel:
		switch {
		case e.DeltaY > 0:
			return Intent{Kind: Zoom, Direction: ZoomOut}, true
		case e.DeltaY < 0:
			return Intent{Kind: Zoom, Direction: ZoomIn}, true
		}
		return Intent{}, false

	case Click:
		m.track(e)
		if e.Button != PrimaryButton {
			return Intent{}, false
		}
		return Intent{Kind: ActivateAt, Point: mgl32.Vec2{e.X, e.Y}}, true

	case Resize:
		m.setViewport(e.Width, e.Height)
		return Intent{}, false
	}
	return Intent{}, false
}

func (m *mapper) Dragging() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dragging
}

func (m *mapper) AltHeld() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.held {
		if common.IsAltKey(key) {
			return true
		}
	}
	return false
}

func (m *mapper) MoveKeys() MoveKeys {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MoveKeys{
		Forward: m.held[common.KeyW],
		Back:    m.held[common.KeyS],
		Left:    m.held[common.KeyA],
		Right:   m.held[common.KeyD],
		Up:      m.held[common.KeyQ],
		Down:    m.held[common.KeyE],
	}
}

func (m *mapper) Pointer() (mgl32.Vec2, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer, m.hasPointer
}

func (m *mapper) Viewport() (width, height float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *mapper) SetViewport(width, height float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setViewport(width, height)
}

func (m *mapper) SeekStep() float64 {
	return m.seekStep
}

// track records the pointer position. Caller must hold m.mu.
func (m *mapper) track(e Event) {
	m.pointer = mgl32.Vec2{e.X, e.Y}
	m.hasPointer = true
}

// setViewport ignores negative sizes. Caller must hold m.mu.
func (m *mapper) setViewport(width, height float32) {
	m.width = max(width, 0)
	m.height = max(height, 0)
}

// normalize divides a pixel offset by the viewport extent, yielding 0 for an empty viewport.
func normalize(offset, extent float32) float32 {
	if extent <= 0 {
		return 0
	}
	return offset / extent
}
