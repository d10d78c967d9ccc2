package pts

// VersionedStore wraps two BasicStores sharing one PtCache: tl over Key
// (top-level pointers) and at over VersionedKey (address-taken objects at a
// particular version), and lets points-to sets flow between the two spaces
// (spec.md §4.6).
type VersionedStore[Key comparable, VersionedKey comparable, Data any] struct {
	cache PtCache[Data]

	tl *BasicStore[Key, Data]
	at *BasicStore[VersionedKey, Data]
}

// NewVersionedStore constructs a VersionedStore. Both internal BasicStores
// share cache and the reverse-tracking flag.
func NewVersionedStore[Key comparable, VersionedKey comparable, Data any](
	cache PtCache[Data], keyHasher Hasher[Key], versionedKeyHasher Hasher[VersionedKey], reverse bool,
) *VersionedStore[Key, VersionedKey, Data] {
	return &VersionedStore[Key, VersionedKey, Data]{
		cache: cache,
		tl:    NewBasicStore[Key, Data](cache, keyHasher, reverse),
		at:    NewBasicStore[VersionedKey, Data](cache, versionedKeyHasher, reverse),
	}
}

func (*VersionedStore[Key, VersionedKey, Data]) Type() PTDataTy { return Versioned }

func (s *VersionedStore[Key, VersionedKey, Data]) Clear() {
	s.tl.Clear()
	s.at.Clear()
}

func (s *VersionedStore[Key, VersionedKey, Data]) GetPts(k Key) Set[Data] { return s.tl.GetPts(k) }
func (s *VersionedStore[Key, VersionedKey, Data]) GetVersionedPts(vk VersionedKey) Set[Data] {
	return s.at.GetPts(vk)
}

func (s *VersionedStore[Key, VersionedKey, Data]) GetRevPts(d Data) Set[Key] {
	return s.tl.GetRevPts(d)
}
func (s *VersionedStore[Key, VersionedKey, Data]) GetVersionedKeyRevPts(d Data) Set[VersionedKey] {
	return s.at.GetRevPts(d)
}

func (s *VersionedStore[Key, VersionedKey, Data]) AddPts(k Key, d Data) bool {
	return s.tl.AddPts(k, d)
}
func (s *VersionedStore[Key, VersionedKey, Data]) AddVersionedPts(vk VersionedKey, d Data) bool {
	return s.at.AddPts(vk, d)
}

func (s *VersionedStore[Key, VersionedKey, Data]) UnionPtsKey(dst, src Key) bool {
	return s.tl.UnionPtsKey(dst, src)
}
func (s *VersionedStore[Key, VersionedKey, Data]) UnionVersionedPtsKey(dst, src VersionedKey) bool {
	return s.at.UnionPtsKey(dst, src)
}

// UnionPtsFromVersioned unions src's (address-taken) points-to set into
// dst's top-level set — one of the two cross-space edges the design notes
// call for, routed through unionFromID so neither space ever reaches into
// the other's map directly.
func (s *VersionedStore[Key, VersionedKey, Data]) UnionPtsFromVersioned(dst Key, src VersionedKey) bool {
	return s.tl.unionFromID(dst, s.at.idOf(src))
}

// UnionVersionedPtsFromKey is the reverse cross-space edge: a top-level
// Key's points-to set flowing into an address-taken VersionedKey's.
func (s *VersionedStore[Key, VersionedKey, Data]) UnionVersionedPtsFromKey(dst VersionedKey, src Key) bool {
	return s.at.unionFromID(dst, s.tl.idOf(src))
}

func (s *VersionedStore[Key, VersionedKey, Data]) UnionPtsSet(dst Key, srcSet Set[Data]) bool {
	return s.tl.UnionPtsSet(dst, srcSet)
}
func (s *VersionedStore[Key, VersionedKey, Data]) UnionVersionedPtsSet(dst VersionedKey, srcSet Set[Data]) bool {
	return s.at.UnionPtsSet(dst, srcSet)
}

func (s *VersionedStore[Key, VersionedKey, Data]) ClearPts(k Key, d Data) { s.tl.ClearPts(k, d) }
func (s *VersionedStore[Key, VersionedKey, Data]) ClearVersionedPts(vk VersionedKey, d Data) {
	s.at.ClearPts(vk, d)
}

func (s *VersionedStore[Key, VersionedKey, Data]) ClearFullPts(k Key) { s.tl.ClearFullPts(k) }
func (s *VersionedStore[Key, VersionedKey, Data]) ClearFullVersionedPts(vk VersionedKey) {
	s.at.ClearFullPts(vk)
}

// TopN and InUsePointsToSets pool popularity counts across both the
// top-level and address-taken Key spaces, since they share one cache and
// one notion of a points-to-set ID.
func (s *VersionedStore[Key, VersionedKey, Data]) TopN(n int) (sum, total uint64) {
	counts := make(map[PointsToID]uint64)
	total += addCounts(counts, s.tl.pts)
	total += addCounts(counts, s.at.pts)
	return finishTopN(n, counts), total
}

func (s *VersionedStore[Key, VersionedKey, Data]) InUsePointsToSets() int {
	seen := make(map[PointsToID]struct{})
	addSeen(seen, s.tl.pts)
	addSeen(seen, s.at.pts)
	return len(seen)
}
