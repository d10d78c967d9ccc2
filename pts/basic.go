package pts

// BasicStore maps Keys to points-to-set IDs, with an optional reverse index
// from Data to the Keys that point to it (spec.md §4.2).
type BasicStore[Key comparable, Data any] struct {
	cache PtCache[Data]
	rev   bool

	pts    map[Key]PointsToID
	revPts map[Data]Set[Key]

	keyHasher Hasher[Key]
}

// NewBasicStore constructs a store backed by cache. If reverse is true,
// getRevPts queries are supported; otherwise they abort (spec.md §7).
func NewBasicStore[Key comparable, Data any](cache PtCache[Data], keyHasher Hasher[Key], reverse bool) *BasicStore[Key, Data] {
	s := &BasicStore[Key, Data]{
		cache:     cache,
		rev:       reverse,
		pts:       make(map[Key]PointsToID),
		keyHasher: keyHasher,
	}
	if reverse {
		s.revPts = make(map[Data]Set[Key])
	}
	return s
}

// Type reports this store's PTDataTy tag.
func (*BasicStore[Key, Data]) Type() PTDataTy { return Basic }

// idOf returns the stored ID for k, or EmptyID if k has never been written
// (no map entry is created on read, per the "materialise absent = EMPTY_ID"
// design note).
func (s *BasicStore[Key, Data]) idOf(k Key) PointsToID {
	if id, ok := s.pts[k]; ok {
		return id
	}
	return EmptyID
}

// GetPts materialises k's points-to set.
func (s *BasicStore[Key, Data]) GetPts(k Key) Set[Data] {
	return s.cache.Materialize(s.idOf(k))
}

// GetRevPts materialises the set of Keys known to point to d. Requires the
// store to have been constructed with reverse tracking.
func (s *BasicStore[Key, Data]) GetRevPts(d Data) Set[Key] {
	if !s.rev {
		reverseUnsupported("BasicStore", "GetRevPts")
	}
	return s.revPts[d]
}

// AddPts is equivalent to UnionPtsSet(dst, {d}).
func (s *BasicStore[Key, Data]) AddPts(dst Key, d Data) bool {
	srcId := s.cache.Intern(NewSet(s.dataHasher(), d))
	return s.unionFromID(dst, srcId)
}

// UnionPtsKey unions srcKey's points-to set into dst's.
func (s *BasicStore[Key, Data]) UnionPtsKey(dst, srcKey Key) bool {
	return s.unionFromID(dst, s.idOf(srcKey))
}

// UnionPtsSet interns srcSet and unions it into dst's points-to set.
func (s *BasicStore[Key, Data]) UnionPtsSet(dst Key, srcSet Set[Data]) bool {
	return s.unionFromID(dst, s.cache.Intern(srcSet))
}

// unionFromID is the shared union algorithm (spec.md §4.2): on change, only
// the *source* set is walked to update the reverse index, bounding reverse
// maintenance cost by the delta rather than the accumulated destination.
func (s *BasicStore[Key, Data]) unionFromID(dst Key, srcId PointsToID) bool {
	dstId := s.idOf(dst)
	newId := s.cache.Union(dstId, srcId)

	changed := newId != dstId
	if changed {
		s.pts[dst] = newId

		if s.rev {
			s.cache.Materialize(srcId).ForEach(func(d Data) {
				s.revPts[d] = insertKey(s.revPts[d], s.keyHasher, dst)
			})
		}
	}
	return changed
}

// ClearPts removes a single Data element from k's points-to set.
func (s *BasicStore[Key, Data]) ClearPts(k Key, d Data) {
	toRemove := s.cache.Intern(NewSet(s.dataHasher(), d))
	varId := s.idOf(k)
	newId := s.cache.Complement(varId, toRemove)

	if newId != varId {
		s.pts[k] = newId
		if s.rev {
			s.revPts[d] = s.revPts[d].Remove(k)
		}
	}
}

// ClearFullPts empties k's points-to set.
func (s *BasicStore[Key, Data]) ClearFullPts(k Key) {
	if s.rev {
		s.GetPts(k).ForEach(func(d Data) {
			s.revPts[d] = s.revPts[d].Remove(k)
		})
	}
	s.pts[k] = EmptyID
}

// Clear drops every entry from both maps, leaving the shared cache intact.
func (s *BasicStore[Key, Data]) Clear() {
	s.pts = make(map[Key]PointsToID)
	if s.rev {
		s.revPts = make(map[Data]Set[Key])
	}
}

// TopN returns the sum of the popularity counts of the n most common
// non-empty points-to-set IDs, and the total number of populated Keys.
func (s *BasicStore[Key, Data]) TopN(n int) (sum, total uint64) {
	return TopN(n, s.pts)
}

// InUsePointsToSets returns the number of distinct IDs referenced by pts.
func (s *BasicStore[Key, Data]) InUsePointsToSets() int {
	return InUsePointsToSets(s.pts)
}

func (s *BasicStore[Key, Data]) dataHasher() Hasher[Data] {
	// Every set the cache hands back (even the empty one) already carries
	// the hasher it was built with; reuse it instead of threading a
	// separate Data-hasher parameter through every BasicStore method.
	return s.cache.Materialize(EmptyID).hasher
}

// insertKey is the package-internal "friend" operation the design notes
// call for: Diff/DF/Versioned stores union directly through cache IDs into
// BasicStore's pts map via unionFromID without ever seeing the raw map,
// and insertKey gives every store the same key-set insertion helper
// BasicStore uses for its reverse index.
func insertKey[K comparable](set Set[K], hasher Hasher[K], k K) Set[K] {
	if set.mp == nil {
		set = NewSet(hasher, k)
		return set
	}
	return set.Add(k)
}
