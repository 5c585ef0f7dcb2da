package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/void191/v0-game-engine/contact"
	"github.com/void191/v0-game-engine/scene"
)

// upNormal is the fallback contact normal for degenerate geometry
// (coincident centers, sphere center exactly on a box face). It keeps
// the solver free of zero-length normals and divide-by-zero faults.
var upNormal = mgl64.Vec3{0, 1, 0}

// detectCollisions runs the exhaustive pairwise scan over every active
// entity carrying a collider and appends one Collision per overlapping
// pair to out. Enumeration follows the store's creation order with
// i < j indexing, so the pair list is identical between runs on an
// unchanged scene.
//
// Trigger colliders produce records like any other; downstream policy
// (the event manager, game code) decides what a trigger means.
func detectCollisions(store *scene.Store, out []contact.Collision) []contact.Collision {
	var entities []*scene.Entity
	for e := range store.AllActive() {
		if e.Collider != nil {
			entities = append(entities, e)
		}
	}

	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			if c, ok := collidePair(entities[i], entities[j]); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// collidePair dispatches on the shape-kind pair. Capsule and mesh shapes
// are recognized tags but produce no contacts here; callers tolerate the
// missing response.
func collidePair(a, b *scene.Entity) (contact.Collision, bool) {
	shapeA := a.Collider.Shape
	shapeB := b.Collider.Shape

	switch {
	case shapeA == scene.ShapeTypeBox && shapeB == scene.ShapeTypeBox:
		return collideBoxBox(a, b)
	case shapeA == scene.ShapeTypeSphere && shapeB == scene.ShapeTypeSphere:
		return collideSphereSphere(a, b)
	case shapeA == scene.ShapeTypeBox && shapeB == scene.ShapeTypeSphere:
		return collideBoxSphere(a, b)
	case shapeA == scene.ShapeTypeSphere && shapeB == scene.ShapeTypeBox:
		// Normalize to box-then-sphere, then restore the caller's pair
		// order and flip the normal to match it.
		c, ok := collideBoxSphere(b, a)
		if ok {
			c.EntityA, c.EntityB = a, b
			c.Normal = c.Normal.Mul(-1)
		}
		return c, ok
	}

	return contact.Collision{}, false
}

// collideBoxBox treats both boxes as axis aligned, with full extents
// Size * transform scale. A collision needs strictly positive overlap on
// all three axes. The normal lies along the minimum-overlap axis, ties
// broken x then y then z, signed toward the box whose center sits lower
// on that axis.
func collideBoxBox(a, b *scene.Entity) (contact.Collision, bool) {
	posA := a.Transform.Position
	posB := b.Transform.Position
	halfA := a.Collider.HalfExtents(a.Transform)
	halfB := b.Collider.HalfExtents(b.Transform)

	var overlap mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		d := posA[axis] - posB[axis]
		if d < 0 {
			d = -d
		}
		overlap[axis] = halfA[axis] + halfB[axis] - d
		if overlap[axis] <= 0 {
			return contact.Collision{}, false
		}
	}

	minAxis := 0
	if overlap[1] < overlap[minAxis] {
		minAxis = 1
	}
	if overlap[2] < overlap[minAxis] {
		minAxis = 2
	}

	var normal mgl64.Vec3
	if posA[minAxis] < posB[minAxis] {
		normal[minAxis] = -1
	} else {
		normal[minAxis] = 1
	}

	return contact.Collision{
		EntityA: a,
		EntityB: b,
		Point:   posA.Add(posB).Mul(0.5),
		Normal:  normal,
		Depth:   overlap[minAxis],
	}, true
}

// collideSphereSphere scales each radius by the largest scale axis of
// its transform. The normal points from A toward B; coincident centers
// fall back to the up normal.
func collideSphereSphere(a, b *scene.Entity) (contact.Collision, bool) {
	posA := a.Transform.Position
	posB := b.Transform.Position
	radiusA := a.Collider.ScaledRadius(a.Transform)
	radiusB := b.Collider.ScaledRadius(b.Transform)

	delta := posB.Sub(posA)
	dist := delta.Len()
	if dist >= radiusA+radiusB {
		return contact.Collision{}, false
	}

	normal := upNormal
	if dist > 0 {
		normal = delta.Mul(1.0 / dist)
	}

	return contact.Collision{
		EntityA: a,
		EntityB: b,
		Point:   posA.Add(normal.Mul(radiusA)),
		Normal:  normal,
		Depth:   radiusA + radiusB - dist,
	}, true
}

// collideBoxSphere clamps the sphere center into the box extents to find
// the closest surface point, then derives contact data as a sphere test
// against that point. The returned record is in box-then-sphere order
// with the normal pointing from the box toward the sphere.
func collideBoxSphere(box, sphere *scene.Entity) (contact.Collision, bool) {
	boxPos := box.Transform.Position
	half := box.Collider.HalfExtents(box.Transform)
	center := sphere.Transform.Position
	radius := sphere.Collider.ScaledRadius(sphere.Transform)

	var closest mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		closest[axis] = clamp(center[axis], boxPos[axis]-half[axis], boxPos[axis]+half[axis])
	}

	delta := center.Sub(closest)
	dist := delta.Len()
	if dist >= radius {
		return contact.Collision{}, false
	}

	normal := upNormal
	if dist > 0 {
		normal = delta.Mul(1.0 / dist)
	}

	return contact.Collision{
		EntityA: box,
		EntityB: sphere,
		Point:   closest,
		Normal:  normal,
		Depth:   radius - dist,
	}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
