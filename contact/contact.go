// Package contact holds the per-step collision records produced by the
// detector and the single-pass impulse solver that consumes them.
package contact

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/void191/v0-game-engine/scene"
)

// DefaultRestitution is the bounciness applied to every contact.
// Restitution is a global solver constant, not a per-material property.
const DefaultRestitution = 0.5

// Collision describes one overlapping collider pair for one fixed step.
// Records are created fresh by the detector every step and discarded
// after resolution; they are never persisted.
type Collision struct {
	EntityA *scene.Entity
	EntityB *scene.Entity

	// Point is the world-space contact point.
	Point mgl64.Vec3
	// Normal is unit length. Sphere pairs orient it from A toward B;
	// box/box pairs orient it along the minimum-overlap axis, signed
	// toward the box with the lesser center coordinate.
	Normal mgl64.Vec3
	// Depth is the penetration along the normal, always >= 0.
	Depth float64
}

// SolvePosition pushes each non-kinematic side half the penetration
// apart along the normal (A subtracts, B adds). The split is a fixed
// 50/50 bias, not mass weighted, and is applied immediately rather than
// integrated. Pairs missing a rigidbody on either side are skipped.
func (c *Collision) SolvePosition() {
	rbA := c.EntityA.Rigidbody
	rbB := c.EntityB.Rigidbody
	if rbA == nil || rbB == nil {
		return
	}
	if rbA.IsKinematic && rbB.IsKinematic {
		return
	}

	correction := c.Normal.Mul(0.5 * c.Depth)
	if !rbA.IsKinematic {
		c.EntityA.Transform.Position = c.EntityA.Transform.Position.Sub(correction)
	}
	if !rbB.IsKinematic {
		c.EntityB.Transform.Position = c.EntityB.Transform.Position.Add(correction)
	}
}

// SolveVelocity applies one restitution impulse along the normal.
// Kinematic bodies count as infinite mass: they shape the impulse but
// never receive any of it. Pairs already separating are left alone.
//
// Mass > 0 is a caller precondition; a zero or negative mass propagates
// NaN/Inf into the velocities rather than being corrected here.
func (c *Collision) SolveVelocity(restitution float64) {
	rbA := c.EntityA.Rigidbody
	rbB := c.EntityB.Rigidbody
	if rbA == nil || rbB == nil {
		return
	}
	if rbA.IsKinematic && rbB.IsKinematic {
		return
	}

	relativeVel := rbB.Velocity.Sub(rbA.Velocity)
	velAlongNormal := relativeVel.Dot(c.Normal)
	if velAlongNormal > 0 {
		return
	}

	invMassA, invMassB := 0.0, 0.0
	if !rbA.IsKinematic {
		invMassA = 1.0 / rbA.Mass
	}
	if !rbB.IsKinematic {
		invMassB = 1.0 / rbB.Mass
	}

	j := -(1.0 + restitution) * velAlongNormal / (invMassA + invMassB)
	impulse := c.Normal.Mul(j)

	if !rbA.IsKinematic {
		rbA.Velocity = rbA.Velocity.Sub(impulse.Mul(invMassA))
	}
	if !rbB.IsKinematic {
		rbB.Velocity = rbB.Velocity.Add(impulse.Mul(invMassB))
	}
}
