// Package engine implements the fixed-timestep rigid-body physics core:
// integration, brute-force collision detection over box and sphere
// colliders, and single-pass impulse resolution, driven by a host frame
// loop through the clock package.
package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/void191/v0-game-engine/contact"
	"github.com/void191/v0-game-engine/scene"
)

// Engine orchestrates one physics step at a time over a scene store.
// It holds no entity state of its own; the store is passed to every
// call so the engine can be shared across scenes or replaced freely.
//
// Like the store, the engine assumes single-threaded ownership: one
// Step call runs to completion before anything else touches the scene.
type Engine struct {
	// Gravity is the constant acceleration applied to bodies with
	// gravity enabled, in m/s².
	Gravity mgl64.Vec3
	// Restitution is the coefficient applied to every resolved contact.
	Restitution float64

	Events Events

	collisions []contact.Collision
	log        *zap.Logger
}

// New creates an engine from a config. A nil logger disables logging.
func New(cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		Gravity:     cfg.GravityVec(),
		Restitution: cfg.Restitution,
		Events:      NewEvents(),
		log:         log,
	}

	log.Info("physics engine initialized",
		zap.Float64("gravity_y", e.Gravity.Y()),
		zap.Float64("restitution", e.Restitution))
	return e
}

// Step advances the simulation by one fixed step of size dt. The phase
// order is strict: the previous step's contacts are dropped, every
// active non-kinematic rigidbody integrates, then all pairs are
// detected, then every detected pair is resolved. No detection happens
// before integration finishes and no resolution before detection
// finishes.
//
// Contacts are resolved independently in detection order; a later
// contact may partially undo an earlier correction within the same
// step. There is no iteration to reconcile them.
func (e *Engine) Step(store *scene.Store, dt float64) {
	e.collisions = e.collisions[:0]

	for ent := range store.AllActive() {
		if ent.Rigidbody != nil {
			ent.Rigidbody.Integrate(&ent.Transform, e.Gravity, dt)
		}
	}

	e.collisions = detectCollisions(store, e.collisions)
	e.Events.record(e.collisions)

	for i := range e.collisions {
		c := &e.collisions[i]
		c.SolvePosition()
		c.SolveVelocity(e.Restitution)
	}

	e.Events.flush()

	if len(e.collisions) > 0 {
		e.log.Debug("physics step", zap.Int("contacts", len(e.collisions)))
	}
}

// Collisions returns the contact list of the most recent step. The
// slice is reused across steps; callers must not hold it past the next
// Step call.
func (e *Engine) Collisions() []contact.Collision {
	return e.collisions
}
