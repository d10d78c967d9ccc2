package pts

import "testing"

func TestCacheInternIsDeterministic(t *testing.T) {
	c := NewPersistentPointsToCache[int](intHasher{})

	a := NewSet[int](intHasher{}, 1, 2, 3)
	id1 := c.Intern(a)
	id2 := c.Intern(NewSet[int](intHasher{}, 3, 2, 1))

	if id1 != id2 {
		t.Fatalf("interning the same contents from different insertion orders gave different IDs: %d vs %d", id1, id2)
	}
}

func TestCacheEmptyIDIsStable(t *testing.T) {
	c := NewPersistentPointsToCache[int](intHasher{})

	if c.EmptyID() != EmptyID {
		t.Fatalf("EmptyID() = %d, want %d", c.EmptyID(), EmptyID)
	}
	if id := c.Intern(NewSet[int](intHasher{})); id != EmptyID {
		t.Fatalf("interning an empty set returned %d, want EmptyID", id)
	}
	if !c.Materialize(EmptyID).Empty() {
		t.Fatalf("Materialize(EmptyID) should be empty")
	}
}

func TestCacheUnionIntersectComplement(t *testing.T) {
	c := NewPersistentPointsToCache[int](intHasher{})

	a := c.Intern(NewSet[int](intHasher{}, 1, 2))
	b := c.Intern(NewSet[int](intHasher{}, 2, 3))

	u := c.Union(a, b)
	if !c.Materialize(u).Equal(NewSet[int](intHasher{}, 1, 2, 3)) {
		t.Errorf("Union = %v", c.Materialize(u).Entries())
	}

	i := c.Intersect(a, b)
	if !c.Materialize(i).Equal(NewSet[int](intHasher{}, 2)) {
		t.Errorf("Intersect = %v", c.Materialize(i).Entries())
	}

	comp := c.Complement(a, b)
	if !c.Materialize(comp).Equal(NewSet[int](intHasher{}, 1)) {
		t.Errorf("Complement = %v", c.Materialize(comp).Entries())
	}

	// union/intersect/complement are memoised: repeat calls must return
	// the exact same ID, not merely an equal set.
	if c.Union(a, b) != u {
		t.Errorf("Union is not memoised")
	}
	if c.Union(b, a) != u {
		t.Errorf("Union is not commutative under memoisation")
	}
}

func TestCacheUnionWithEmptyIsIdentity(t *testing.T) {
	c := NewPersistentPointsToCache[int](intHasher{})
	a := c.Intern(NewSet[int](intHasher{}, 1))

	if c.Union(a, EmptyID) != a {
		t.Errorf("Union(a, Empty) != a")
	}
	if c.Union(EmptyID, a) != a {
		t.Errorf("Union(Empty, a) != a")
	}
}

func TestCacheMaterializeOutOfRangePanics(t *testing.T) {
	c := NewPersistentPointsToCache[int](intHasher{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Materialize of an unknown ID to panic")
		}
	}()
	c.Materialize(PointsToID(999))
}
