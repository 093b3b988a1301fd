package scene

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// Intersection is a single ray hit against a scene object.
type Intersection struct {
	// Object is the object whose geometry was hit.
	Object game_object.GameObject
	// Distance is the world-space distance from the ray origin to the hit point.
	Distance float32
	// Point is the world-space hit point.
	Point mgl32.Vec3
}

// Scene manages a registry of root GameObjects and the Camera used to view them.
// Children attached to a root object are reached through that object rather than
// the registry. Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Count returns the number of root GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of root GameObjects
	Count() int

	// Add adds a root GameObject to the scene. Objects without an ID are assigned one.
	// Adding nil is a no-op and returns 0.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a root GameObject by ID.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil if not registered
	Get(id uint64) game_object.GameObject

	// Find retrieves the first root GameObject with the given name, in insertion order.
	//
	// Parameters:
	//   - name: the object name
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil if none matches
	Find(name string) game_object.GameObject

	// Objects returns the root GameObjects in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: the root objects
	Objects() []game_object.GameObject

	// Remove removes a root GameObject by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear removes every object from the scene.
	Clear()

	// Raycast intersects a world-space ray with every enabled root object's geometry.
	// When recursive is true, enabled descendants are tested too. Results are sorted
	// nearest first; each object contributes at most its nearest hit.
	//
	// Parameters:
	//   - origin: ray origin in world space
	//   - dir: normalized ray direction in world space
	//   - recursive: whether to descend into children
	//
	// Returns:
	//   - []Intersection: hits ordered by ascending distance
	Raycast(origin, dir mgl32.Vec3, recursive bool) []Intersection
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	order    []uint64
	nextID   uint64

	cam camera.Camera
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene viewed through the given camera. NewScene panics if
// the camera is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		active:   true,
		cam:      cam,
		registry: make(map[uint64]game_object.GameObject),
		nextID:   1,
	}

	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if obj == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.register(obj)
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Find(name string) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if obj := s.registry[id]; obj.Name() == name {
			return obj
		}
	}
	return nil
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game_object.GameObject, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.registry[id])
	}
	return out
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registry[id]; !exists {
		return
	}
	delete(s.registry, id)
	s.order = slices.DeleteFunc(s.order, func(existing uint64) bool { return existing == id })
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
	s.order = nil
}

func (s *scene) Raycast(origin, dir mgl32.Vec3, recursive bool) []Intersection {
	var hits []Intersection
	for _, obj := range s.Objects() {
		hits = intersectObject(obj, origin, dir, recursive, hits)
	}
	slices.SortStableFunc(hits, func(a, b Intersection) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// register assigns an ID if needed and stores obj. Caller must hold s.mu write lock.
func (s *scene) register(obj game_object.GameObject) {
	if obj.ID() == 0 {
		obj.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
	}
	if _, exists := s.registry[obj.ID()]; !exists {
		s.order = append(s.order, obj.ID())
	}
	s.registry[obj.ID()] = obj
}

// intersectObject appends obj's nearest hit (if any) to hits and, when recursive,
// visits its enabled children.
//
// Parameters:
//   - obj: the object to test
//   - origin: ray origin in world space
//   - dir: ray direction in world space
//   - recursive: whether to descend into children
//   - hits: the accumulator
//
// Returns:
//   - []Intersection: the accumulator with any new hits appended
func intersectObject(obj game_object.GameObject, origin, dir mgl32.Vec3, recursive bool, hits []Intersection) []Intersection {
	if obj == nil || !obj.Enabled() {
		return hits
	}

	if mdl := obj.Model(); mdl != nil {
		world := obj.WorldMatrix()
		nearest := float32(-1)
		for _, tri := range mdl.Triangles() {
			a := mgl32.TransformCoordinate(tri[0], world)
			b := mgl32.TransformCoordinate(tri[1], world)
			c := mgl32.TransformCoordinate(tri[2], world)
			if !mdl.DoubleSided() && b.Sub(a).Cross(c.Sub(a)).Dot(dir) > 0 {
				continue
			}
			if t, ok := common.IntersectTriangle(origin, dir, a, b, c); ok && (nearest < 0 || t < nearest) {
				nearest = t
			}
		}
		if nearest >= 0 {
			point := origin.Add(dir.Mul(nearest))
			hits = append(hits, Intersection{
				Object:   obj,
				Distance: point.Sub(origin).Len(),
				Point:    point,
			})
		}
	}

	if recursive {
		for _, child := range obj.Children() {
			hits = intersectObject(child, origin, dir, recursive, hits)
		}
	}
	return hits
}
