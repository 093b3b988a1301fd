package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"
)

type gameObject struct {
	mu *sync.RWMutex

	id      uint64
	name    string
	enabled atomic.Bool
	mdl     model.Model

	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
	opacity  float32

	parent   GameObject
	children []GameObject
}

// GameObject defines the interface for a scene graph entity.
// It owns a local transform (position, Euler rotation in Y * X * Z order, scale),
// an optional Model, a material opacity and visibility flag, and child objects
// whose transforms are relative to it.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's name, used for lookups and hit reporting.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Enabled returns whether this object is visible. Disabled objects and their
	// children are skipped by rendering and ray queries.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Position returns the local position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the local Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// Scale returns the local scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// Opacity returns the material opacity in [0, 1].
	//
	// Returns:
	//   - float32: the opacity
	Opacity() float32

	// Parent returns the parent object, or nil for a root object.
	//
	// Returns:
	//   - GameObject: the parent or nil
	Parent() GameObject

	// Children returns a copy of the child list.
	//
	// Returns:
	//   - []GameObject: the children in insertion order
	Children() []GameObject

	// LocalMatrix returns T * R * S for the local transform.
	//
	// Returns:
	//   - mgl32.Mat4: the local model matrix
	LocalMatrix() mgl32.Mat4

	// WorldMatrix returns the parent chain's world matrix multiplied by the local matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the world model matrix
	WorldMatrix() mgl32.Mat4

	// WorldPosition returns the object's origin in world space.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	WorldPosition() mgl32.Vec3

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is visible.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetModel assigns a Model to this object.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)

	// SetPosition sets the local position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the local Euler rotation.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles in radians
	SetRotation(rx, ry, rz float32)

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetOpacity sets the material opacity, clamped to [0, 1].
	//
	// Parameters:
	//   - opacity: the new opacity
	SetOpacity(opacity float32)

	// AddChild attaches a child object. The child's parent is set to this object.
	// Adding nil or the object itself is a no-op.
	//
	// Parameters:
	//   - child: the object to attach
	AddChild(child GameObject)

	// LookAt rotates the object so its local +Z axis points at a world-space target.
	// Only pitch and yaw are changed; roll is reset to zero. The parent's rotation is
	// not compensated, so this is meant for root objects.
	//
	// Parameters:
	//   - target: the world-space point to face
	LookAt(target mgl32.Vec3)

	// setParent is used by AddChild to link the child back to its parent.
	setParent(parent GameObject)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Defaults: enabled, unit scale, opacity 1.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:      &sync.RWMutex{},
		scale:   mgl32.Vec3{1, 1, 1},
		opacity: 1,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.id
}

func (g *gameObject) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Model() model.Model {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mdl
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) Opacity() float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.opacity
}

func (g *gameObject) Parent() GameObject {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.parent
}

func (g *gameObject) Children() []GameObject {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]GameObject, len(g.children))
	copy(out, g.children)
	return out
}

func (g *gameObject) LocalMatrix() mgl32.Mat4 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return common.BuildModelMatrix(g.position, g.rotation, g.scale)
}

func (g *gameObject) WorldMatrix() mgl32.Mat4 {
	local := g.LocalMatrix()
	if parent := g.Parent(); parent != nil {
		return parent.WorldMatrix().Mul4(local)
	}
	return local
}

func (g *gameObject) WorldPosition() mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3{}, g.WorldMatrix())
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetModel(m model.Model) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mdl = m
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = mgl32.Vec3{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = mgl32.Vec3{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = mgl32.Vec3{sx, sy, sz}
}

func (g *gameObject) SetOpacity(opacity float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.opacity = lo.Clamp(opacity, 0, 1)
}

func (g *gameObject) AddChild(child GameObject) {
	if child == nil || child == GameObject(g) {
		return
	}
	g.mu.Lock()
	g.children = append(g.children, child)
	g.mu.Unlock()
	child.setParent(g)
}

func (g *gameObject) LookAt(target mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	rx, ry, ok := common.LookAtAngles(g.position, target)
	if !ok {
		return
	}
	g.rotation = mgl32.Vec3{rx, ry, 0}
}

func (g *gameObject) setParent(parent GameObject) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.parent = parent
}
