package pts

// DFStore augments a BasicStore (top-level points-to) with per-location
// IN/OUT maps over address-taken Keys (spec.md §4.4).
type DFStore[Key comparable, Data any] struct {
	*BasicStore[Key, Data]
	cache PtCache[Data]

	dfIn, dfOut map[LocID]map[Key]PointsToID
}

// NewDFStore constructs a DFStore sharing cache with its embedded BasicStore.
func NewDFStore[Key comparable, Data any](cache PtCache[Data], keyHasher Hasher[Key], reverse bool) *DFStore[Key, Data] {
	return &DFStore[Key, Data]{
		BasicStore: NewBasicStore[Key, Data](cache, keyHasher, reverse),
		cache:      cache,
		dfIn:       make(map[LocID]map[Key]PointsToID),
		dfOut:      make(map[LocID]map[Key]PointsToID),
	}
}

func (*DFStore[Key, Data]) Type() PTDataTy { return DataFlow }

// GetRevPts always aborts: reverse points-to is not supported across
// per-location IN/OUT maps (spec.md §4.4), independent of the reverse flag
// the embedded BasicStore was constructed with.
func (s *DFStore[Key, Data]) GetRevPts(Data) Set[Key] {
	reverseUnsupported("DFStore", "GetRevPts")
	panic("unreachable")
}

// Clear empties the embedded BasicStore as well as every per-location
// IN/OUT map. The source leaves dfIn/dfOut untouched here (a TODO admits
// it); spec.md treats that as a bug, fixed here.
func (s *DFStore[Key, Data]) Clear() {
	s.BasicStore.Clear()
	s.dfIn = make(map[LocID]map[Key]PointsToID)
	s.dfOut = make(map[LocID]map[Key]PointsToID)
}

func (s *DFStore[Key, Data]) HasDFInSet(l LocID) bool {
	_, ok := s.dfIn[l]
	return ok
}

func (s *DFStore[Key, Data]) HasDFOutSet(l LocID) bool {
	_, ok := s.dfOut[l]
	return ok
}

func (s *DFStore[Key, Data]) HasDFInSetKey(l LocID, k Key) bool {
	m, ok := s.dfIn[l]
	if !ok {
		return false
	}
	_, ok = m[k]
	return ok
}

func (s *DFStore[Key, Data]) HasDFOutSetKey(l LocID, k Key) bool {
	m, ok := s.dfOut[l]
	if !ok {
		return false
	}
	_, ok = m[k]
	return ok
}

func dfIdOf[Key comparable](m map[LocID]map[Key]PointsToID, l LocID, k Key) PointsToID {
	if inner, ok := m[l]; ok {
		if id, ok := inner[k]; ok {
			return id
		}
	}
	return EmptyID
}

func dfSetId[Key comparable](m map[LocID]map[Key]PointsToID, l LocID, k Key, id PointsToID) {
	inner, ok := m[l]
	if !ok {
		inner = make(map[Key]PointsToID)
		m[l] = inner
	}
	inner[k] = id
}

func (s *DFStore[Key, Data]) GetDFInPtsSet(l LocID, k Key) Set[Data] {
	return s.cache.Materialize(dfIdOf(s.dfIn, l, k))
}

func (s *DFStore[Key, Data]) GetDFOutPtsSet(l LocID, k Key) Set[Data] {
	return s.cache.Materialize(dfIdOf(s.dfOut, l, k))
}

// unionThroughIDs unions src into the (loc, key) slot named by dstMap/dstLoc/dstKey,
// returning whether the destination ID changed.
func (s *DFStore[Key, Data]) unionThroughIDs(dstMap map[LocID]map[Key]PointsToID, dstLoc LocID, dstKey Key, src PointsToID) bool {
	old := dfIdOf(dstMap, dstLoc, dstKey)
	newId := s.cache.Union(old, src)
	if newId != old {
		dfSetId(dstMap, dstLoc, dstKey, newId)
		return true
	}
	return false
}

func (s *DFStore[Key, Data]) UpdateDFInFromIn(sL LocID, sK Key, dL LocID, dK Key) bool {
	return s.unionThroughIDs(s.dfIn, dL, dK, dfIdOf(s.dfIn, sL, sK))
}

func (s *DFStore[Key, Data]) UpdateDFInFromOut(sL LocID, sK Key, dL LocID, dK Key) bool {
	return s.unionThroughIDs(s.dfIn, dL, dK, dfIdOf(s.dfOut, sL, sK))
}

func (s *DFStore[Key, Data]) UpdateDFOutFromIn(sL LocID, sK Key, dL LocID, dK Key) bool {
	return s.unionThroughIDs(s.dfOut, dL, dK, dfIdOf(s.dfIn, sL, sK))
}

// UpdateAllDFInFromIn is identical to UpdateDFInFromIn in the
// non-incremental store; the "All" distinction only matters once dirty
// tracking exists (IncDFStore overrides this), per the second open
// question's resolution.
func (s *DFStore[Key, Data]) UpdateAllDFInFromIn(sL LocID, sK Key, dL LocID, dK Key) bool {
	return s.UpdateDFInFromIn(sL, sK, dL, dK)
}

func (s *DFStore[Key, Data]) UpdateAllDFInFromOut(sL LocID, sK Key, dL LocID, dK Key) bool {
	return s.UpdateDFInFromOut(sL, sK, dL, dK)
}

// UpdateAllDFOutFromIn projects every Key present in loc's IN set into its
// OUT set, skipping singleton under strong-update semantics (the singleton's
// old OUT value is left untouched rather than joined).
func (s *DFStore[Key, Data]) UpdateAllDFOutFromIn(l LocID, singleton Key, strongUpdate bool) bool {
	changed := false
	for k := range s.dfIn[l] {
		if strongUpdate && k == singleton {
			continue
		}
		if s.UpdateDFOutFromIn(l, k, l, k) {
			changed = true
		}
	}
	return changed
}

// UpdateTLVPts promotes an address-taken IN-set into a top-level variable's
// points-to set, unioning directly through the cache ID (the "friend
// access" the design notes call for).
func (s *DFStore[Key, Data]) UpdateTLVPts(sL LocID, sK Key, dK Key) bool {
	return s.BasicStore.unionFromID(dK, dfIdOf(s.dfIn, sL, sK))
}

// UpdateATVPts unions a top-level variable's points-to set into an
// address-taken OUT-set.
func (s *DFStore[Key, Data]) UpdateATVPts(sK Key, dL LocID, dK Key) bool {
	return s.unionThroughIDs(s.dfOut, dL, dK, s.BasicStore.idOf(sK))
}

// ClearAllDFOutUpdatedVar is a no-op in the non-incremental store;
// IncDFStore overrides it to drain the OUT dirty set for l.
func (s *DFStore[Key, Data]) ClearAllDFOutUpdatedVar(LocID) {}

// TopN enumerates every Key->ID entry in this store (top-level and every
// per-location IN/OUT map) to compute popularity.
func (s *DFStore[Key, Data]) TopN(n int) (sum, total uint64) {
	maps := []map[Key]PointsToID{s.BasicStore.pts}
	for _, m := range s.dfIn {
		maps = append(maps, m)
	}
	for _, m := range s.dfOut {
		maps = append(maps, m)
	}
	return TopNMulti(n, maps)
}

// InUsePointsToSets returns the number of distinct IDs referenced across
// the top-level map and every per-location IN/OUT map.
func (s *DFStore[Key, Data]) InUsePointsToSets() int {
	maps := []map[Key]PointsToID{s.BasicStore.pts}
	for _, m := range s.dfIn {
		maps = append(maps, m)
	}
	for _, m := range s.dfOut {
		maps = append(maps, m)
	}
	return InUsePointsToSetsMulti(maps)
}
