package pts

import (
	"github.com/cs-au-dk/ptds/internal/hmap"
)

// PtCache is the contract every store in this package is built against
// (spec.md §4.1). It is a pure, deterministic, append-only bag of interned
// DataSets: equal sets always yield the same PointsToID, and (a, op, b)
// triples always yield the same result. Implementations need not be
// thread-safe; exclusivity is the caller's responsibility.
type PtCache[D any] interface {
	// EmptyID returns the distinguished handle for the empty DataSet.
	EmptyID() PointsToID
	// Intern hash-conses set, returning its (possibly pre-existing) ID.
	Intern(set Set[D]) PointsToID
	// Materialize returns the DataSet named by id.
	Materialize(id PointsToID) Set[D]
	// Union returns the ID of cache.Materialize(a) ∪ cache.Materialize(b).
	Union(a, b PointsToID) PointsToID
	// Intersect returns the ID of cache.Materialize(a) ∩ cache.Materialize(b).
	Intersect(a, b PointsToID) PointsToID
	// Complement returns the ID of cache.Materialize(a) \ cache.Materialize(b).
	Complement(a, b PointsToID) PointsToID
}

// setHasher adapts Set[D].Equal/content-hash into an immutable.Hasher so a
// Set[D] can serve as a key into the hash-consing table. Hashing is
// order-independent (a running sum over element hashes) since sets carry no
// canonical iteration order.
type setHasher[D any] struct {
	elemHasher Hasher[D]
}

func (h setHasher[D]) Hash(s Set[D]) uint32 {
	var sum uint32
	s.ForEach(func(d D) {
		sum += h.elemHasher.Hash(d)
	})
	return sum
}

func (h setHasher[D]) Equal(a, b Set[D]) bool {
	return a.Equal(b)
}

// opKey memoises a binary combinator call; operands are ordered by the
// caller for commutative ops so (a, b) and (b, a) share one cache slot.
type opKey struct{ a, b PointsToID }

// PersistentPointsToCache is the reference PtCache implementation: DataSets
// are interned into a growable table, and every union/intersect/complement
// call is memoised so repeat calls on the same operand pair return in O(1)
// (spec.md §4.1's memoisation requirement). This is the component the
// source describes as living outside the storage layer's contract; it is
// implemented here so the family is runnable end to end.
type PersistentPointsToCache[D any] struct {
	elemHasher Hasher[D]

	sets   []Set[D]               // id -> materialized set
	intern *hmap.Map[Set[D], int] // set contents -> id

	unionMemo      map[opKey]PointsToID
	intersectMemo  map[opKey]PointsToID
	complementMemo map[opKey]PointsToID
}

// NewPersistentPointsToCache creates an empty cache. hasher must be
// consistent with the Data type's equality semantics; every DataSet
// interned through this cache must use the same hasher.
func NewPersistentPointsToCache[D any](hasher Hasher[D]) *PersistentPointsToCache[D] {
	c := &PersistentPointsToCache[D]{
		elemHasher:     hasher,
		sets:           []Set[D]{NewSet[D](hasher)},
		intern:         hmap.New[int, Set[D]](setHasher[D]{hasher}),
		unionMemo:      make(map[opKey]PointsToID),
		intersectMemo:  make(map[opKey]PointsToID),
		complementMemo: make(map[opKey]PointsToID),
	}
	c.intern.Set(c.sets[0], 0)
	return c
}

func (c *PersistentPointsToCache[D]) EmptyID() PointsToID {
	return EmptyID
}

func (c *PersistentPointsToCache[D]) Intern(set Set[D]) PointsToID {
	if set.Empty() {
		return EmptyID
	}
	if id, ok := c.intern.GetOk(set); ok {
		return PointsToID(id)
	}

	id := len(c.sets)
	c.sets = append(c.sets, set)
	c.intern.Set(set, id)
	return PointsToID(id)
}

func (c *PersistentPointsToCache[D]) Materialize(id PointsToID) Set[D] {
	if int(id) >= len(c.sets) {
		fatalf("PersistentPointsToCache.Materialize: id %d from a different cache instance", id)
	}
	return c.sets[id]
}

func (c *PersistentPointsToCache[D]) Union(a, b PointsToID) PointsToID {
	if a == b {
		return a
	}
	if a == EmptyID {
		return b
	}
	if b == EmptyID {
		return a
	}
	if a > b {
		a, b = b, a
	}
	key := opKey{a, b}
	if id, ok := c.unionMemo[key]; ok {
		return id
	}

	res := c.Intern(c.Materialize(a).Union(c.Materialize(b)))
	c.unionMemo[key] = res
	return res
}

func (c *PersistentPointsToCache[D]) Intersect(a, b PointsToID) PointsToID {
	if a == b {
		return a
	}
	if a == EmptyID || b == EmptyID {
		return EmptyID
	}
	if a > b {
		a, b = b, a
	}
	key := opKey{a, b}
	if id, ok := c.intersectMemo[key]; ok {
		return id
	}

	res := c.Intern(c.Materialize(a).Intersect(c.Materialize(b)))
	c.intersectMemo[key] = res
	return res
}

func (c *PersistentPointsToCache[D]) Complement(a, b PointsToID) PointsToID {
	if a == EmptyID || a == b {
		return EmptyID
	}
	if b == EmptyID {
		return a
	}
	key := opKey{a, b}
	if id, ok := c.complementMemo[key]; ok {
		return id
	}

	res := c.Intern(c.Materialize(a).Complement(c.Materialize(b)))
	c.complementMemo[key] = res
	return res
}

// Len returns the number of distinct DataSets interned so far, including
// the empty set.
func (c *PersistentPointsToCache[D]) Len() int {
	return len(c.sets)
}
