package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectActive(s *Store) []*Entity {
	var out []*Entity
	for e := range s.AllActive() {
		out = append(out, e)
	}
	return out
}

func TestStoreCreate_AssignsMonotonicIDs(t *testing.T) {
	s := NewStore(nil)

	a := s.Create("a", NoEntity)
	b := s.Create("b", NoEntity)

	assert.Equal(t, EntityID(1), a.ID)
	assert.Equal(t, EntityID(2), b.ID)

	s.Destroy(a.ID)
	c := s.Create("c", NoEntity)
	assert.Equal(t, EntityID(3), c.ID, "destroyed ids must not be reused")
}

func TestStoreCreate_ParentLinking(t *testing.T) {
	s := NewStore(nil)

	parent := s.Create("parent", NoEntity)
	child := s.Create("child", parent.ID)

	assert.Equal(t, parent.ID, child.Parent)
	assert.Equal(t, []EntityID{child.ID}, parent.Children())
	assert.Equal(t, []EntityID{parent.ID}, s.Roots())
}

func TestStoreCreate_MissingParentBecomesRoot(t *testing.T) {
	s := NewStore(nil)

	e := s.Create("orphan", EntityID(42))

	assert.Equal(t, NoEntity, e.Parent)
	assert.Contains(t, s.Roots(), e.ID)
}

func TestStoreGet_AbsentIDIsNotAnError(t *testing.T) {
	s := NewStore(nil)

	e, ok := s.Get(99)
	assert.False(t, ok)
	assert.Nil(t, e)
}

func TestStoreDestroy_RecursesChildrenFirst(t *testing.T) {
	s := NewStore(nil)

	root := s.Create("root", NoEntity)
	mid := s.Create("mid", root.ID)
	leafA := s.Create("leafA", mid.ID)
	leafB := s.Create("leafB", mid.ID)
	sibling := s.Create("sibling", root.ID)

	s.Destroy(mid.ID)

	for _, id := range []EntityID{mid.ID, leafA.ID, leafB.ID} {
		_, ok := s.Get(id)
		assert.False(t, ok, "descendant %d should be gone", id)
	}

	_, ok := s.Get(sibling.ID)
	assert.True(t, ok)
	assert.Equal(t, []EntityID{sibling.ID}, root.Children())

	for _, e := range collectActive(s) {
		assert.NotEqual(t, mid.ID, e.ID)
		assert.NotEqual(t, leafA.ID, e.ID)
		assert.NotEqual(t, leafB.ID, e.ID)
	}
}

func TestStoreDestroy_AbsentIDIsNoOp(t *testing.T) {
	s := NewStore(nil)
	s.Create("a", NoEntity)

	s.Destroy(99)
	assert.Equal(t, 1, s.Len())
}

func TestStoreAllActive_InsertionOrderStable(t *testing.T) {
	s := NewStore(nil)

	names := []string{"first", "second", "third", "fourth"}
	for _, n := range names {
		s.Create(n, NoEntity)
	}

	first := collectActive(s)
	second := collectActive(s)

	require.Len(t, first, len(names))
	for i, e := range first {
		assert.Equal(t, names[i], e.Name)
		assert.Same(t, e, second[i], "enumeration order must be reproducible")
	}
}

func TestStoreAllActive_SkipsInactive(t *testing.T) {
	s := NewStore(nil)

	a := s.Create("a", NoEntity)
	b := s.Create("b", NoEntity)
	a.Active = false

	active := collectActive(s)
	require.Len(t, active, 1)
	assert.Same(t, b, active[0])

	// Inactive entities still exist in the store.
	_, ok := s.Get(a.ID)
	assert.True(t, ok)
}

func TestStoreAllActive_EarlyBreak(t *testing.T) {
	s := NewStore(nil)
	for range 5 {
		s.Create("e", NoEntity)
	}

	count := 0
	for range s.AllActive() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestStoreFindByName(t *testing.T) {
	s := NewStore(nil)

	s.Create("player", NoEntity)
	dup1 := s.Create("enemy", NoEntity)
	s.Create("enemy", NoEntity)

	e, ok := s.FindByName("enemy")
	require.True(t, ok)
	assert.Same(t, dup1, e, "first match in creation order wins")

	_, ok = s.FindByName("missing")
	assert.False(t, ok)
}

func TestStoreClear(t *testing.T) {
	s := NewStore(nil)

	s.Create("a", NoEntity)
	s.Create("b", NoEntity)
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Roots())
	assert.Empty(t, collectActive(s))

	// ID assignment restarts for the next scene.
	fresh := s.Create("fresh", NoEntity)
	assert.Equal(t, EntityID(1), fresh.ID)
}
