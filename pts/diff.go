package pts

// DiffStore layers per-Key "propagated so far" / "diff still to propagate"
// tracking on top of a BasicStore, by composition rather than inheritance
// (spec.md §4.3, design note "Polymorphic family without deep hierarchies").
type DiffStore[Key comparable, Data any] struct {
	*BasicStore[Key, Data]
	cache PtCache[Data]

	diff  map[Key]PointsToID
	propa map[Key]PointsToID
}

// NewDiffStore constructs a DiffStore sharing cache with its embedded BasicStore.
func NewDiffStore[Key comparable, Data any](cache PtCache[Data], keyHasher Hasher[Key], reverse bool) *DiffStore[Key, Data] {
	return &DiffStore[Key, Data]{
		BasicStore: NewBasicStore[Key, Data](cache, keyHasher, reverse),
		cache:      cache,
		diff:       make(map[Key]PointsToID),
		propa:      make(map[Key]PointsToID),
	}
}

func (*DiffStore[Key, Data]) Type() PTDataTy { return Diff }

// Clear empties the embedded BasicStore as well as diff/propa tracking.
func (s *DiffStore[Key, Data]) Clear() {
	s.BasicStore.Clear()
	s.diff = make(map[Key]PointsToID)
	s.propa = make(map[Key]PointsToID)
}

func (s *DiffStore[Key, Data]) propaOf(k Key) PointsToID {
	if id, ok := s.propa[k]; ok {
		return id
	}
	return EmptyID
}

// GetDiffPts materialises the portion of k's points-to set not yet
// propagated as of the last ComputeDiffPts call.
func (s *DiffStore[Key, Data]) GetDiffPts(k Key) Set[Data] {
	id, ok := s.diff[k]
	if !ok {
		id = EmptyID
	}
	return s.cache.Materialize(id)
}

// ComputeDiffPts computes the part of all not previously marked propagated
// for k, then marks the whole of all as propagated (spec.md §4.3 / P5).
func (s *DiffStore[Key, Data]) ComputeDiffPts(k Key, all Set[Data]) bool {
	allId := s.cache.Intern(all)
	diffId := s.cache.Complement(allId, s.propaOf(k))

	s.diff[k] = diffId
	s.propa[k] = allId

	return diffId != EmptyID
}

// UpdatePropaPtsMap intersects dst's propagated set with src's: a flow edge
// is only fully propagated once both endpoints have seen an element.
func (s *DiffStore[Key, Data]) UpdatePropaPtsMap(src, dst Key) {
	s.propa[dst] = s.cache.Intersect(s.propaOf(dst), s.propaOf(src))
}

// ClearPropaPts resets k's propagated set to empty.
func (s *DiffStore[Key, Data]) ClearPropaPts(k Key) {
	s.propa[k] = EmptyID
}
