package pts

import "testing"

func newTestVersionedStore() *VersionedStore[int, int, int] {
	c := NewPersistentPointsToCache[int](intHasher{})
	return NewVersionedStore[int, int, int](c, intHasher{}, intHasher{}, true)
}

func TestVersionedStoreSeparateKeySpaces(t *testing.T) {
	s := newTestVersionedStore()

	s.AddPts(1, 100)           // top-level Key 1
	s.AddVersionedPts(1, 200) // address-taken VersionedKey 1 (same underlying int)

	if s.GetPts(1).Contains(200) {
		t.Fatalf("top-level space should be unaffected by the address-taken write")
	}
	if !s.GetVersionedPts(1).Contains(200) {
		t.Fatalf("address-taken Key 1 should contain 200")
	}
}

func TestVersionedStoreCrossSpaceUnion(t *testing.T) {
	s := newTestVersionedStore()
	s.AddVersionedPts(1, 100)

	if !s.UnionPtsFromVersioned(2, 1) {
		t.Fatalf("UnionPtsFromVersioned should report a change")
	}
	if !s.GetPts(2).Contains(100) {
		t.Fatalf("top-level Key 2 should now contain 100 via the cross-space union")
	}

	s2 := newTestVersionedStore()
	s2.AddPts(1, 200)
	if !s2.UnionVersionedPtsFromKey(2, 1) {
		t.Fatalf("UnionVersionedPtsFromKey should report a change")
	}
	if !s2.GetVersionedPts(2).Contains(200) {
		t.Fatalf("address-taken Key 2 should now contain 200 via the cross-space union")
	}
}

func TestVersionedStoreTopNAndInUsePoolBothSpaces(t *testing.T) {
	s := newTestVersionedStore()
	s.AddPts(1, 100)
	s.AddVersionedPts(1, 100) // same contents, but a distinct map entry

	if got := s.InUsePointsToSets(); got != 1 {
		t.Fatalf("InUsePointsToSets() = %d, want 1 (both spaces share the same interned ID)", got)
	}

	_, total := s.TopN(1)
	if total != 2 {
		t.Fatalf("TopN total = %d, want 2 (one populated key per space)", total)
	}
}

func TestVersionedStoreClearEmptiesBothSpaces(t *testing.T) {
	s := newTestVersionedStore()
	s.AddPts(1, 100)
	s.AddVersionedPts(1, 200)

	s.Clear()
	if !s.GetPts(1).Empty() || !s.GetVersionedPts(1).Empty() {
		t.Fatalf("Clear should empty both the top-level and address-taken spaces")
	}
}
