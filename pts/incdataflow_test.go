package pts

import "testing"

func newTestIncDFStore() *IncDFStore[int, int] {
	c := NewPersistentPointsToCache[int](intHasher{})
	return NewIncDFStore[int, int](c, intHasher{}, false)
}

func TestIncDFStoreUpdateDFInFromInRequiresDirty(t *testing.T) {
	s := newTestIncDFStore()

	// No dirty mark set yet: the transfer should be a no-op.
	if s.UpdateDFInFromIn(1, 10, 2, 10) {
		t.Fatalf("UpdateDFInFromIn should do nothing without a dirty source")
	}

	s.unionThroughIDs(s.dfIn, 1, 10, s.cache.Intern(NewSet[int](intHasher{}, 100)))
	setDirty(s.inDirty, 1, 10)

	if !s.UpdateDFInFromIn(1, 10, 2, 10) {
		t.Fatalf("UpdateDFInFromIn should act once the source is dirty")
	}
	if !s.isInDirty(1, 10) {
		t.Fatalf("UpdateDFInFromIn must not consume the source's own dirty mark")
	}
	if !s.isInDirty(2, 10) {
		t.Fatalf("UpdateDFInFromIn should mark the destination dirty")
	}
}

func TestIncDFStoreUpdateDFOutFromInConsumesDirty(t *testing.T) {
	s := newTestIncDFStore()
	s.unionThroughIDs(s.dfIn, 1, 10, s.cache.Intern(NewSet[int](intHasher{}, 100)))
	setDirty(s.inDirty, 1, 10)

	if !s.UpdateDFOutFromIn(1, 10, 1, 10) {
		t.Fatalf("UpdateDFOutFromIn should act while the source is dirty")
	}
	if s.isInDirty(1, 10) {
		t.Fatalf("UpdateDFOutFromIn should consume the source's IN dirty mark")
	}
	if !s.isOutDirty(1, 10) {
		t.Fatalf("UpdateDFOutFromIn should mark the destination OUT dirty")
	}

	// Second call: the mark is gone, so nothing should happen even though
	// the underlying sets haven't changed.
	if s.UpdateDFOutFromIn(1, 10, 1, 10) {
		t.Fatalf("UpdateDFOutFromIn should be a no-op once the dirty mark is consumed")
	}
}

func TestIncDFStoreUpdateAllDFOutFromInWalksDirtyOnly(t *testing.T) {
	s := newTestIncDFStore()
	s.unionThroughIDs(s.dfIn, 1, 10, s.cache.Intern(NewSet[int](intHasher{}, 100)))
	s.unionThroughIDs(s.dfIn, 1, 20, s.cache.Intern(NewSet[int](intHasher{}, 200)))
	setDirty(s.inDirty, 1, 10) // only var 10 is marked dirty

	s.UpdateAllDFOutFromIn(1, -1, false)

	if !s.GetDFOutPtsSet(1, 10).Contains(100) {
		t.Fatalf("dirty var 10 should have been projected into OUT")
	}
	if s.GetDFOutPtsSet(1, 20).Contains(200) {
		t.Fatalf("non-dirty var 20 should not have been touched")
	}
}

func TestIncDFStoreClearAllDFOutUpdatedVar(t *testing.T) {
	s := newTestIncDFStore()
	s.unionThroughIDs(s.dfOut, 1, 10, s.cache.Intern(NewSet[int](intHasher{}, 100)))
	setDirty(s.outDirty, 1, 10)

	s.ClearAllDFOutUpdatedVar(1)
	if s.isOutDirty(1, 10) {
		t.Fatalf("ClearAllDFOutUpdatedVar should drain every OUT dirty mark at the location")
	}
}
