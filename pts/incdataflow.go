package pts

// IncDFStore refines DFStore with per-location dirty tracking (spec.md
// §4.5): IN/OUT entries are marked dirty when written, and the non-"All"
// IN/OUT transfers and UpdateTLVPts only act on a dirty source mark
// (UpdateDFOutFromIn and UpdateTLVPts also consume it), so a fixpoint
// solver doesn't re-walk edges whose endpoints haven't changed.
type IncDFStore[Key comparable, Data any] struct {
	*DFStore[Key, Data]

	inDirty, outDirty map[LocID]map[Key]struct{}
}

// NewIncDFStore constructs an IncDFStore sharing cache with its embedded DFStore.
func NewIncDFStore[Key comparable, Data any](cache PtCache[Data], keyHasher Hasher[Key], reverse bool) *IncDFStore[Key, Data] {
	return &IncDFStore[Key, Data]{
		DFStore:  NewDFStore[Key, Data](cache, keyHasher, reverse),
		inDirty:  make(map[LocID]map[Key]struct{}),
		outDirty: make(map[LocID]map[Key]struct{}),
	}
}

func (*IncDFStore[Key, Data]) Type() PTDataTy { return IncDataFlow }

func (s *IncDFStore[Key, Data]) Clear() {
	s.DFStore.Clear()
	s.inDirty = make(map[LocID]map[Key]struct{})
	s.outDirty = make(map[LocID]map[Key]struct{})
}

func isDirty[Key comparable](dirty map[LocID]map[Key]struct{}, l LocID, k Key) bool {
	m, ok := dirty[l]
	if !ok {
		return false
	}
	_, ok = m[k]
	return ok
}

func setDirty[Key comparable](dirty map[LocID]map[Key]struct{}, l LocID, k Key) {
	m, ok := dirty[l]
	if !ok {
		m = make(map[Key]struct{})
		dirty[l] = m
	}
	m[k] = struct{}{}
}

func clearDirty[Key comparable](dirty map[LocID]map[Key]struct{}, l LocID, k Key) {
	if m, ok := dirty[l]; ok {
		delete(m, k)
	}
}

func (s *IncDFStore[Key, Data]) isInDirty(l LocID, k Key) bool  { return isDirty(s.inDirty, l, k) }
func (s *IncDFStore[Key, Data]) isOutDirty(l LocID, k Key) bool { return isDirty(s.outDirty, l, k) }

// UpdateDFInFromIn only acts when src's IN entry is marked dirty, and leaves
// the mark in place — several destinations may still need to observe it.
func (s *IncDFStore[Key, Data]) UpdateDFInFromIn(sL LocID, sK Key, dL LocID, dK Key) bool {
	if !s.isInDirty(sL, sK) {
		return false
	}
	if s.unionThroughIDs(s.dfIn, dL, dK, dfIdOf(s.dfIn, sL, sK)) {
		setDirty(s.inDirty, dL, dK)
		return true
	}
	return false
}

// UpdateDFInFromOut only acts when src's OUT entry is marked dirty.
func (s *IncDFStore[Key, Data]) UpdateDFInFromOut(sL LocID, sK Key, dL LocID, dK Key) bool {
	if !s.isOutDirty(sL, sK) {
		return false
	}
	if s.unionThroughIDs(s.dfIn, dL, dK, dfIdOf(s.dfOut, sL, sK)) {
		setDirty(s.inDirty, dL, dK)
		return true
	}
	return false
}

// UpdateDFOutFromIn consumes src's IN dirty mark unconditionally (even if
// the union below turns out to be a no-op): once a location has seen its IN
// change, the state is up to date there regardless of whether the specific
// (dL, dK) slot actually grew.
func (s *IncDFStore[Key, Data]) UpdateDFOutFromIn(sL LocID, sK Key, dL LocID, dK Key) bool {
	if !s.isInDirty(sL, sK) {
		return false
	}
	clearDirty(s.inDirty, sL, sK)

	if s.unionThroughIDs(s.dfOut, dL, dK, dfIdOf(s.dfIn, sL, sK)) {
		setDirty(s.outDirty, dL, dK)
		return true
	}
	return false
}

// UpdateAllDFInFromIn, unlike UpdateDFInFromIn, is unconditional: it is used
// to broadcast a location's own IN set to every variable in it without
// waiting for per-variable dirty marks.
func (s *IncDFStore[Key, Data]) UpdateAllDFInFromIn(sL LocID, sK Key, dL LocID, dK Key) bool {
	if s.unionThroughIDs(s.dfIn, dL, dK, dfIdOf(s.dfIn, sL, sK)) {
		setDirty(s.inDirty, dL, dK)
		return true
	}
	return false
}

func (s *IncDFStore[Key, Data]) UpdateAllDFInFromOut(sL LocID, sK Key, dL LocID, dK Key) bool {
	if s.unionThroughIDs(s.dfIn, dL, dK, dfIdOf(s.dfOut, sL, sK)) {
		setDirty(s.inDirty, dL, dK)
		return true
	}
	return false
}

// UpdateAllDFOutFromIn walks a snapshot of loc's dirty IN vars rather than
// every Key in its IN map, and relies on UpdateDFOutFromIn to consume each
// mark as it's processed.
func (s *IncDFStore[Key, Data]) UpdateAllDFOutFromIn(l LocID, singleton Key, strongUpdate bool) bool {
	if !s.HasDFInSet(l) {
		return false
	}
	vars := make([]Key, 0, len(s.inDirty[l]))
	for k := range s.inDirty[l] {
		vars = append(vars, k)
	}

	changed := false
	for _, k := range vars {
		if strongUpdate && k == singleton {
			continue
		}
		if s.UpdateDFOutFromIn(l, k, l, k) {
			changed = true
		}
	}
	return changed
}

// UpdateTLVPts consumes src's IN dirty mark the same way UpdateDFOutFromIn
// does, then unions straight into the top-level store.
func (s *IncDFStore[Key, Data]) UpdateTLVPts(sL LocID, sK Key, dK Key) bool {
	if !s.isInDirty(sL, sK) {
		return false
	}
	clearDirty(s.inDirty, sL, sK)
	return s.BasicStore.unionFromID(dK, dfIdOf(s.dfIn, sL, sK))
}

// UpdateATVPts is unconditional, marking the destination OUT dirty on change.
func (s *IncDFStore[Key, Data]) UpdateATVPts(sK Key, dL LocID, dK Key) bool {
	if s.unionThroughIDs(s.dfOut, dL, dK, s.BasicStore.idOf(sK)) {
		setDirty(s.outDirty, dL, dK)
		return true
	}
	return false
}

// ClearAllDFOutUpdatedVar drains every OUT dirty mark at loc, acknowledging
// that the solver has observed them.
func (s *IncDFStore[Key, Data]) ClearAllDFOutUpdatedVar(l LocID) {
	if !s.HasDFOutSet(l) {
		return
	}
	for k := range s.outDirty[l] {
		delete(s.outDirty[l], k)
	}
}
