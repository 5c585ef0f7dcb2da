package scene

// EntityID identifies an entity within a Store. IDs are assigned
// monotonically starting at 1 and are never reused.
type EntityID uint64

// NoEntity is the zero id. It is never assigned and marks "no parent".
const NoEntity EntityID = 0

// Entity is a scene object: a transform plus at most one component of
// each kind. Components are attached and detached by assigning the
// typed fields directly; a nil field means the component is absent.
type Entity struct {
	ID        EntityID
	Name      string
	Transform Transform

	// Active gates simulation and visibility, not existence. Inactive
	// entities stay in the store but are skipped by every physics phase.
	Active bool

	Rigidbody *Rigidbody
	Collider  *Collider
	Mesh      *Mesh
	Light     *Light
	Camera    *Camera
	Script    *Script

	// Parent is a back-reference only; tree membership is owned by the
	// store, never by entities themselves.
	Parent   EntityID
	children []EntityID
}

// Children returns the entity's child ids in attach order. The returned
// slice is the store's backing storage; callers must not mutate it.
func (e *Entity) Children() []EntityID {
	return e.children
}
