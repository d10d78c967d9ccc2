package pts

import "testing"

func newTestBasicStore(reverse bool) (*BasicStore[int, int], *PersistentPointsToCache[int]) {
	c := NewPersistentPointsToCache[int](intHasher{})
	return NewBasicStore[int, int](c, intHasher{}, reverse), c
}

func TestBasicStoreAddAndGetPts(t *testing.T) {
	s, _ := newTestBasicStore(true)

	if !s.AddPts(1, 100) {
		t.Fatalf("first AddPts should report a change")
	}
	if s.AddPts(1, 100) {
		t.Fatalf("repeat AddPts of the same element should report no change")
	}
	if !s.GetPts(1).Contains(100) {
		t.Fatalf("GetPts(1) should contain 100")
	}
}

func TestBasicStoreAbsentKeyIsEmpty(t *testing.T) {
	s, _ := newTestBasicStore(true)
	if !s.GetPts(42).Empty() {
		t.Fatalf("an untouched Key should materialize to the empty set")
	}
}

func TestBasicStoreUnionPtsKey(t *testing.T) {
	s, _ := newTestBasicStore(true)
	s.AddPts(1, 100)
	s.AddPts(1, 200)

	if !s.UnionPtsKey(2, 1) {
		t.Fatalf("UnionPtsKey should report a change when dst gains elements")
	}
	if s.UnionPtsKey(2, 1) {
		t.Fatalf("repeat UnionPtsKey should report no change")
	}
	if !s.GetPts(2).Equal(s.GetPts(1)) {
		t.Fatalf("GetPts(2) = %v, want %v", s.GetPts(2), s.GetPts(1))
	}
}

func TestBasicStoreReverseTracksAddAndClear(t *testing.T) {
	s, _ := newTestBasicStore(true)
	s.AddPts(1, 100)
	s.AddPts(2, 100)

	rev := s.GetRevPts(100)
	if rev.Size() != 2 || !rev.Contains(1) || !rev.Contains(2) {
		t.Fatalf("GetRevPts(100) = %v, want {1, 2}", rev.Entries())
	}

	s.ClearPts(1, 100)
	rev = s.GetRevPts(100)
	if rev.Size() != 1 || !rev.Contains(2) {
		t.Fatalf("after ClearPts(1, 100), GetRevPts(100) = %v, want {2}", rev.Entries())
	}
}

func TestBasicStoreClearFullPts(t *testing.T) {
	s, _ := newTestBasicStore(true)
	s.AddPts(1, 100)
	s.AddPts(1, 200)

	s.ClearFullPts(1)
	if !s.GetPts(1).Empty() {
		t.Fatalf("ClearFullPts should empty the Key's set")
	}
	if s.GetRevPts(100).Contains(1) || s.GetRevPts(200).Contains(1) {
		t.Fatalf("ClearFullPts should also drop the Key from every reverse entry")
	}
}

func TestBasicStoreReverseUnsupportedPanics(t *testing.T) {
	s, _ := newTestBasicStore(false)
	defer func() {
		if recover() == nil {
			t.Fatalf("GetRevPts on a non-reverse store should panic")
		}
	}()
	s.GetRevPts(1)
}

func TestBasicStoreClear(t *testing.T) {
	s, _ := newTestBasicStore(true)
	s.AddPts(1, 100)
	s.AddPts(2, 200)

	s.Clear()
	if !s.GetPts(1).Empty() || !s.GetPts(2).Empty() {
		t.Fatalf("Clear should empty every Key's points-to set")
	}
	if s.GetRevPts(100).Contains(1) {
		t.Fatalf("Clear should empty the reverse index too")
	}
}

func TestBasicStoreTopNAndInUse(t *testing.T) {
	s, _ := newTestBasicStore(false)
	s.AddPts(1, 100)
	s.AddPts(2, 100) // shares an ID with key 1
	s.AddPts(3, 200)

	if got := s.InUsePointsToSets(); got != 2 {
		t.Fatalf("InUsePointsToSets() = %d, want 2", got)
	}

	sum, total := s.TopN(1)
	if total != 3 {
		t.Fatalf("TopN total = %d, want 3", total)
	}
	if sum != 2 {
		t.Fatalf("TopN(1) sum = %d, want 2 (the two keys sharing an ID)", sum)
	}
}
