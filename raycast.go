package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/void191/v0-game-engine/scene"
)

// RaycastHit describes the nearest collider struck by a ray.
type RaycastHit struct {
	Entity   *scene.Entity
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Raycast casts a ray from origin along direction and returns the first
// hit among active box and sphere colliders within maxDistance, using
// exact ray-shape intersection. Capsule and mesh colliders are ignored.
// Rays starting inside a shape do not hit it; a zero direction hits
// nothing.
func (e *Engine) Raycast(store *scene.Store, origin, direction mgl64.Vec3, maxDistance float64) (RaycastHit, bool) {
	if direction.Len() == 0 {
		return RaycastHit{}, false
	}
	dir := direction.Normalize()

	var best RaycastHit
	found := false

	for ent := range store.AllActive() {
		if ent.Collider == nil {
			continue
		}

		var t float64
		var normal mgl64.Vec3
		var ok bool

		switch ent.Collider.Shape {
		case scene.ShapeTypeBox:
			t, normal, ok = rayBox(origin, dir, ent.Collider.AABB(ent.Transform))
		case scene.ShapeTypeSphere:
			t, normal, ok = raySphere(origin, dir, ent.Transform.Position, ent.Collider.ScaledRadius(ent.Transform))
		default:
			continue
		}

		if !ok || t > maxDistance {
			continue
		}
		if !found || t < best.Distance {
			best = RaycastHit{
				Entity:   ent,
				Point:    origin.Add(dir.Mul(t)),
				Normal:   normal,
				Distance: t,
			}
			found = true
		}
	}

	return best, found
}

// rayBox runs the slab test against a world-space AABB. Returns the
// entry distance and the face normal of the entered face.
func rayBox(origin, dir mgl64.Vec3, box scene.AABB) (float64, mgl64.Vec3, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	entryAxis := -1

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			// Parallel to this slab; must already be inside it.
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}

		inv := 1.0 / dir[axis]
		tNear := (box.Min[axis] - origin[axis]) * inv
		tFar := (box.Max[axis] - origin[axis]) * inv
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}

		if tNear > tMin {
			tMin = tNear
			entryAxis = axis
		}
		if tFar < tMax {
			tMax = tFar
		}
		if tMin > tMax {
			return 0, mgl64.Vec3{}, false
		}
	}

	// tMin < 0 means the origin is inside the box (or behind it).
	if tMin < 0 || entryAxis == -1 {
		return 0, mgl64.Vec3{}, false
	}

	var normal mgl64.Vec3
	if dir[entryAxis] > 0 {
		normal[entryAxis] = -1
	} else {
		normal[entryAxis] = 1
	}
	return tMin, normal, true
}

// raySphere solves the quadratic for the nearest positive intersection.
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, mgl64.Vec3, bool) {
	oc := origin.Sub(center)
	// dir is unit length, so a == 1.
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return 0, mgl64.Vec3{}, false
	}

	t := -b - math.Sqrt(discriminant)
	if t < 0 {
		return 0, mgl64.Vec3{}, false
	}

	point := origin.Add(dir.Mul(t))
	normal := point.Sub(center).Mul(1.0 / radius)
	return t, normal, true
}
