package engine

import (
	"github.com/void191/v0-game-engine/contact"
	"github.com/void191/v0-game-engine/scene"
)

const (
	TRIGGER_ENTER EventType = iota
	COLLISION_ENTER
	TRIGGER_STAY
	COLLISION_STAY
	TRIGGER_EXIT
	COLLISION_EXIT
)

type pairKey struct {
	a scene.EntityID
	b scene.EntityID
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(a, b *scene.Entity) pairKey {
	if b.ID < a.ID {
		a, b = b, a
	}
	return pairKey{a: a.ID, b: b.ID}
}

type pairEntities struct {
	a *scene.Entity
	b *scene.Entity
}

// isTrigger reports whether either side of the pair is flagged as a
// trigger collider. The core pipeline resolves the pair either way;
// the flag only picks which event family fires.
func (p pairEntities) isTrigger() bool {
	return (p.a.Collider != nil && p.a.Collider.IsTrigger) ||
		(p.b.Collider != nil && p.b.Collider.IsTrigger)
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Trigger events
type TriggerEnterEvent struct {
	EntityA *scene.Entity
	EntityB *scene.Entity
}

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct {
	EntityA *scene.Entity
	EntityB *scene.Entity
}

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

type TriggerExitEvent struct {
	EntityA *scene.Entity
	EntityB *scene.Entity
}

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

// Collision events
type CollisionEnterEvent struct {
	EntityA *scene.Entity
	EntityB *scene.Entity
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	EntityA *scene.Entity
	EntityB *scene.Entity
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	EntityA *scene.Entity
	EntityB *scene.Entity
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events turns the raw per-step contact list into enter/stay/exit
// notifications for gameplay code, distinguishing trigger overlaps from
// physical collisions. This is the policy layer over the detector; the
// detector and solver themselves never look at trigger flags.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Pair tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]pairEntities
	currentActivePairs  map[pairKey]pairEntities
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]pairEntities),
		currentActivePairs:  make(map[pairKey]pairEntities),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// record marks every detected pair as active for the current step
func (e *Events) record(collisions []contact.Collision) {
	for i := range collisions {
		c := &collisions[i]
		e.currentActivePairs[makePairKey(c.EntityA, c.EntityB)] = pairEntities{a: c.EntityA, b: c.EntityB}
	}
}

// processPairEvents compares current and previous pairs to detect
// Enter/Stay/Exit transitions
func (e *Events) processPairEvents() {
	for key, pair := range e.currentActivePairs {
		isTrigger := pair.isTrigger()

		if _, stayed := e.previousActivePairs[key]; stayed {
			if isTrigger {
				e.buffer = append(e.buffer, TriggerStayEvent{EntityA: pair.a, EntityB: pair.b})
			} else {
				e.buffer = append(e.buffer, CollisionStayEvent{EntityA: pair.a, EntityB: pair.b})
			}
		} else {
			if isTrigger {
				e.buffer = append(e.buffer, TriggerEnterEvent{EntityA: pair.a, EntityB: pair.b})
			} else {
				e.buffer = append(e.buffer, CollisionEnterEvent{EntityA: pair.a, EntityB: pair.b})
			}
		}
	}

	for key, pair := range e.previousActivePairs {
		if _, active := e.currentActivePairs[key]; !active {
			if pair.isTrigger() {
				e.buffer = append(e.buffer, TriggerExitEvent{EntityA: pair.a, EntityB: pair.b})
			} else {
				e.buffer = append(e.buffer, CollisionExitEvent{EntityA: pair.a, EntityB: pair.b})
			}
		}
	}

	// Swap for next step and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processPairEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
