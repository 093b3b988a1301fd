package overlay

import (
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/charmbracelet/harmonica"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// IconState is a value snapshot of one icon.
type IconState struct {
	ID             IconID
	Opacity        float32
	DisplayOpacity float32
	Visible        bool
}

// icon is the per-id bookkeeping owned by the controller.
type icon struct {
	obj        game_object.GameObject
	opacity    float32
	timer      Timer
	generation uint64

	display  float64
	velocity float64
}

type controller struct {
	mu *sync.Mutex

	policy        Policy
	scheduler     Scheduler
	flashOpacity  float32
	flashDuration time.Duration

	springFrequency float64
	springDamping   float64
	spring          harmonica.Spring
	springDelta     float64

	surface game_object.GameObject
	icons   map[IconID]*icon
	closed  bool
}

// Controller drives the transient opacity and visibility of the feedback icons.
// Icons do not exist until Attach is called; every operation on a missing icon is a no-op.
// Deferred resets run on scheduler goroutines and only take the controller's own lock.
type Controller interface {
	// Attach creates the icons as children of the surface. Only the first call has an effect.
	//
	// Parameters:
	//   - surface: the interactive surface to anchor the icons on
	Attach(surface game_object.GameObject)

	// Attached reports whether the icons exist.
	Attached() bool

	// Policy returns the feedback policy chosen at construction.
	Policy() Policy

	// Flash sets the icon's opacity to the flash opacity and schedules a reset to 0
	// after the flash duration. A newer flash of the same icon cancels and replaces
	// the pending reset. Ignored under HoverReveal.
	//
	// Parameters:
	//   - id: the icon to flash
	Flash(id IconID)

	// SetGroupVisible shows or hides every icon at once.
	//
	// Parameters:
	//   - visible: the new visibility
	SetGroupVisible(visible bool)

	// Pending returns the number of scheduled resets that have not yet run.
	Pending() int

	// Opacity returns the logical opacity of an icon, or 0 for a missing icon.
	Opacity(id IconID) float32

	// DisplayOpacity returns the eased opacity renderers should draw, or 0 for a missing icon.
	DisplayOpacity(id IconID) float32

	// Visible reports whether an icon is shown.
	Visible(id IconID) bool

	// Object returns the scene node for an icon.
	//
	// Parameters:
	//   - id: the icon
	//
	// Returns:
	//   - mo.Option[game_object.GameObject]: the node, or None before Attach
	Object(id IconID) mo.Option[game_object.GameObject]

	// Lookup maps a scene node back to the icon it represents.
	//
	// Parameters:
	//   - obj: a scene node, typically from a raycast hit
	//
	// Returns:
	//   - mo.Option[IconID]: the icon, or None if obj is not an icon
	Lookup(obj game_object.GameObject) mo.Option[IconID]

	// Step eases every icon's display opacity toward its logical opacity and pushes
	// the result to the icon's material.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the last step
	Step(dt float32)

	// States returns a snapshot of every icon in creation order.
	States() []IconState

	// Close cancels every pending reset. Later Flash calls are ignored.
	Close()
}

var _ Controller = &controller{}

// NewController creates a new overlay Controller.
// Defaults: TimedFlash, wall-clock scheduler, opacity 0.7, 500 ms.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controller{
		mu:              &sync.Mutex{},
		policy:          TimedFlash,
		scheduler:       WallClock(),
		flashOpacity:    DefaultFlashOpacity,
		flashDuration:   DefaultFlashDuration,
		springFrequency: defaultSpringFrequency,
		springDamping:   defaultSpringDamping,
		icons:           make(map[IconID]*icon),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) Attach(surface game_object.GameObject) {
	if surface == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface != nil {
		return
	}

	// Hover mode icons rest at the flash opacity and are revealed as a group.
	opacity, visible := float32(0), true
	if c.policy == HoverReveal {
		opacity, visible = c.flashOpacity, false
	}

	c.surface = surface
	for _, id := range Icons {
		obj := newIconObject(id, opacity, visible)
		surface.AddChild(obj)
		c.icons[id] = &icon{obj: obj, opacity: opacity, display: float64(opacity)}
	}
}

func (c *controller) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface != nil
}

func (c *controller) Policy() Policy {
	return c.policy
}

func (c *controller) Flash(id IconID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.policy == HoverReveal {
		return
	}
	ic, ok := c.icons[id]
	if !ok {
		return
	}

	if ic.timer != nil {
		ic.timer.Stop()
	}
	ic.generation++
	generation := ic.generation
	ic.opacity = c.flashOpacity
	ic.timer = c.scheduler.AfterFunc(c.flashDuration, func() {
		c.reset(id, generation)
	})
	log.Debugf("overlay: flash %s (generation %d)", id, generation)
}

// reset clears an icon's opacity if no newer flash has happened since generation.
func (c *controller) reset(id IconID, generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ic, ok := c.icons[id]
	if !ok || ic.generation != generation {
		return
	}
	ic.opacity = 0
	ic.timer = nil
}

func (c *controller) SetGroupVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ic := range c.icons {
		ic.obj.SetEnabled(visible)
	}
}

func (c *controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.CountBy(lo.Values(c.icons), func(ic *icon) bool {
		return ic.timer != nil
	})
}

func (c *controller) Opacity(id IconID) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ic, ok := c.icons[id]; ok {
		return ic.opacity
	}
	return 0
}

func (c *controller) DisplayOpacity(id IconID) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ic, ok := c.icons[id]; ok {
		return float32(ic.display)
	}
	return 0
}

func (c *controller) Visible(id IconID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ic, ok := c.icons[id]; ok {
		return ic.obj.Enabled()
	}
	return false
}

func (c *controller) Object(id IconID) mo.Option[game_object.GameObject] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ic, ok := c.icons[id]; ok {
		return mo.Some(ic.obj)
	}
	return mo.None[game_object.GameObject]()
}

func (c *controller) Lookup(obj game_object.GameObject) mo.Option[IconID] {
	if obj == nil {
		return mo.None[IconID]()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, ic := range c.icons {
		if ic.obj == obj {
			return mo.Some(id)
		}
	}
	return mo.None[IconID]()
}

func (c *controller) Step(dt float32) {
	if dt <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if delta := float64(dt); delta != c.springDelta {
		c.spring = harmonica.NewSpring(delta, c.springFrequency, c.springDamping)
		c.springDelta = delta
	}

	for _, ic := range c.icons {
		target := float64(ic.opacity)
		ic.display, ic.velocity = c.spring.Update(ic.display, ic.velocity, target)
		if math.Abs(ic.display-target) < 1e-3 && math.Abs(ic.velocity) < 1e-2 {
			ic.display, ic.velocity = target, 0
		}
		ic.display = lo.Clamp(ic.display, 0, 1)
		ic.obj.SetOpacity(float32(ic.display))
	}
}

func (c *controller) States() []IconState {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]IconState, 0, len(c.icons))
	for _, id := range Icons {
		ic, ok := c.icons[id]
		if !ok {
			continue
		}
		out = append(out, IconState{
			ID:             id,
			Opacity:        ic.opacity,
			DisplayOpacity: float32(ic.display),
			Visible:        ic.obj.Enabled(),
		})
	}
	return out
}

func (c *controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for _, ic := range c.icons {
		if ic.timer != nil {
			ic.timer.Stop()
			ic.timer = nil
		}
		// Invalidate callbacks that already fired but are waiting on the lock.
		ic.generation++
	}
}
