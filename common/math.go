package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"
)

// rayEpsilon is the determinant threshold below which a ray is treated as parallel to a triangle.
const rayEpsilon = 1e-7

// ScreenToNDC converts a window-space point (origin top-left, y down) to normalized device
// coordinates in [-1, 1] with y up.
//
// Parameters:
//   - x, y: window-space position in pixels
//   - width, height: viewport size in pixels
//
// Returns:
//   - ndcX, ndcY: normalized device coordinates, or (0, 0) for an empty viewport
func ScreenToNDC(x, y, width, height float32) (ndcX, ndcY float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return (x/width)*2 - 1, -(y/height)*2 + 1
}

// RotationYXZ builds a rotation matrix from Euler angles applied in Y * X * Z order
// (yaw-pitch-roll), the same convention the model matrices use.
//
// Parameters:
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
//
// Returns:
//   - mgl32.Mat4: the rotation matrix (column-major)
func RotationYXZ(rotX, rotY, rotZ float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(rotY).
		Mul4(mgl32.HomogRotate3DX(rotX)).
		Mul4(mgl32.HomogRotate3DZ(rotZ))
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). All matrices are column-major.
//
// Parameters:
//   - pos: translation in parent space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: T * R * S
func BuildModelMatrix(pos, rot, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(RotationYXZ(rot[0], rot[1], rot[2])).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// LookAtAngles returns the pitch and yaw that orient an object's local +Z axis from
// `from` towards `to` under the Y * X rotation order. Roll is always zero.
//
// Parameters:
//   - from: the object's world position
//   - to: the point to face
//
// Returns:
//   - rotX: pitch in radians
//   - rotY: yaw in radians
//   - ok: false when the two points coincide
func LookAtAngles(from, to mgl32.Vec3) (rotX, rotY float32, ok bool) {
	d := to.Sub(from)
	if d.Len() < 1e-8 {
		return 0, 0, false
	}
	horizontal := math.Hypot(float64(d[0]), float64(d[2]))
	rotY = float32(math.Atan2(float64(d[0]), float64(d[2])))
	rotX = float32(-math.Atan2(float64(d[1]), horizontal))
	return rotX, rotY, true
}

// ClampVec3 clamps each component of v into [-bound, bound].
//
// Parameters:
//   - v: the vector to clamp
//   - bound: the symmetric bound (must be >= 0)
//
// Returns:
//   - mgl32.Vec3: the clamped vector
func ClampVec3(v mgl32.Vec3, bound float32) mgl32.Vec3 {
	return mgl32.Vec3{
		lo.Clamp(v[0], -bound, bound),
		lo.Clamp(v[1], -bound, bound),
		lo.Clamp(v[2], -bound, bound),
	}
}

// IntersectTriangle tests a ray against a triangle using the Möller–Trumbore algorithm.
// Both faces are considered (no backface culling).
//
// Reference: https://en.wikipedia.org/wiki/M%C3%B6ller%E2%80%93Trumbore_intersection_algorithm
//
// Parameters:
//   - origin: ray origin
//   - dir: ray direction (need not be normalized; distance is in units of dir)
//   - a, b, c: triangle vertices
//
// Returns:
//   - float32: distance along the ray to the hit point
//   - bool: true if the ray hits the triangle in front of the origin
func IntersectTriangle(origin, dir, a, b, c mgl32.Vec3) (float32, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	p := dir.Cross(edge2)
	det := edge1.Dot(p)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false
	}
	invDet := 1 / det

	s := origin.Sub(a)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t <= rayEpsilon {
		return 0, false
	}
	return t, true
}
