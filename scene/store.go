package scene

import (
	"iter"
	"slices"

	"go.uber.org/zap"
)

// Store owns every entity in a scene. Entities live in one arena keyed
// by id; parent/child links are id back-references, so destroying a
// subtree can never leave a dangling owner cycle.
//
// The store is not safe for concurrent use. One goroutine owns the
// whole scene per update cycle.
type Store struct {
	entities map[EntityID]*Entity
	order    []EntityID
	roots    []EntityID
	nextID   EntityID
	log      *zap.Logger
}

// NewStore creates an empty store. A nil logger disables logging.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		entities: make(map[EntityID]*Entity),
		nextID:   1,
		log:      log,
	}
}

// Create adds a new active entity and returns it. With parent set to
// NoEntity (or to an id no longer present) the entity becomes a root,
// otherwise it is appended to the parent's children.
func (s *Store) Create(name string, parent EntityID) *Entity {
	e := &Entity{
		ID:        s.nextID,
		Name:      name,
		Transform: NewTransform(),
		Active:    true,
		Parent:    NoEntity,
	}
	s.nextID++

	s.entities[e.ID] = e
	s.order = append(s.order, e.ID)

	if p, ok := s.entities[parent]; ok {
		e.Parent = p.ID
		p.children = append(p.children, e.ID)
	} else {
		s.roots = append(s.roots, e.ID)
	}

	s.log.Debug("created entity", zap.Uint64("id", uint64(e.ID)), zap.String("name", name))
	return e
}

// Destroy removes an entity and, recursively, all of its descendants.
// Children are destroyed first, then the entity is detached from its
// parent or the root list and dropped from the id table. A destroyed
// entity is invisible to any later enumeration; an absent id is a no-op.
func (s *Store) Destroy(id EntityID) {
	e, ok := s.entities[id]
	if !ok {
		return
	}

	for _, child := range slices.Clone(e.children) {
		s.Destroy(child)
	}

	if p, ok := s.entities[e.Parent]; ok {
		p.children = remove(p.children, id)
	} else {
		s.roots = remove(s.roots, id)
	}

	delete(s.entities, id)
	s.order = remove(s.order, id)

	s.log.Debug("destroyed entity", zap.Uint64("id", uint64(id)), zap.String("name", e.Name))
}

// Get looks an entity up by id. A missing id is not an error; the second
// result reports whether the entity exists.
func (s *Store) Get(id EntityID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// FindByName returns the first entity with the given name in creation
// order, or false if none matches.
func (s *Store) FindByName(name string) (*Entity, bool) {
	for _, id := range s.order {
		if e := s.entities[id]; e != nil && e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// AllActive iterates every entity currently marked active, in creation
// order. The order is stable across calls as long as the scene is not
// mutated, which keeps collision pair enumeration deterministic.
func (s *Store) AllActive() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, id := range s.order {
			e := s.entities[id]
			if e == nil || !e.Active {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Roots returns the ids of all root entities in creation order.
// The returned slice is the store's backing storage; do not mutate it.
func (s *Store) Roots() []EntityID {
	return s.roots
}

// Len returns the number of live entities
func (s *Store) Len() int {
	return len(s.entities)
}

// Clear removes every entity and restarts id assignment from 1.
// Used when tearing a scene down before loading another.
func (s *Store) Clear() {
	s.entities = make(map[EntityID]*Entity)
	s.order = s.order[:0]
	s.roots = s.roots[:0]
	s.nextID = 1
	s.log.Info("scene cleared")
}

func remove(ids []EntityID, id EntityID) []EntityID {
	if i := slices.Index(ids, id); i != -1 {
		return append(ids[:i], ids[i+1:]...)
	}
	return ids
}
