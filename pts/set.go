package pts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Set is a persistent, hash-consable set of T. It generalises
// utils.SSAValueSet (from the ambient analysis framework this package grew
// out of) from ssa.Value to any hashable element type, since Data, Key, and
// VersionedKey are all opaque per spec.
type Set[T any] struct {
	mp     *immutable.Map[T, struct{}]
	hasher Hasher[T]
}

// NewSet builds a Set containing the given elements (zero elements is the
// empty set).
func NewSet[T any](hasher Hasher[T], ts ...T) Set[T] {
	mp := immutable.NewMap[T, struct{}](hasher)
	for _, t := range ts {
		mp = mp.Set(t, struct{}{})
	}
	return Set[T]{mp, hasher}
}

// Size returns the number of elements in the set.
func (s Set[T]) Size() int {
	if s.mp == nil {
		return 0
	}
	return s.mp.Len()
}

// Empty reports whether the set has no elements.
func (s Set[T]) Empty() bool {
	return s.Size() == 0
}

// Add returns s ∪ {t}.
func (s Set[T]) Add(t T) Set[T] {
	if s.mp == nil {
		s.mp = immutable.NewMap[T, struct{}](s.hasher)
	}
	s.mp = s.mp.Set(t, struct{}{})
	return s
}

// Remove returns s \ {t}.
func (s Set[T]) Remove(t T) Set[T] {
	if s.mp == nil {
		return s
	}
	s.mp = s.mp.Delete(t)
	return s
}

// Contains reports whether t ∈ s.
func (s Set[T]) Contains(t T) bool {
	if s.mp == nil {
		return false
	}
	_, ok := s.mp.Get(t)
	return ok
}

// Union returns s1 ∪ s2, iterating over the smaller of the two sets.
func (s1 Set[T]) Union(s2 Set[T]) Set[T] {
	if s1.mp == s2.mp {
		return s1
	}
	if s1.Size() > s2.Size() {
		s1, s2 = s2, s1
	}
	s1.ForEach(func(t T) {
		s2 = s2.Add(t)
	})
	return s2
}

// Intersect returns s1 ∩ s2.
func (s1 Set[T]) Intersect(s2 Set[T]) Set[T] {
	if s1.mp == s2.mp {
		return s1
	}
	small, large := s1, s2
	if small.Size() > large.Size() {
		small, large = large, small
	}
	res := NewSet[T](small.hasher)
	small.ForEach(func(t T) {
		if large.Contains(t) {
			res = res.Add(t)
		}
	})
	return res
}

// Complement returns s1 \ s2.
func (s1 Set[T]) Complement(s2 Set[T]) Set[T] {
	if s1.mp == s2.mp {
		return NewSet[T](s1.hasher)
	}
	res := NewSet[T](s1.hasher)
	s1.ForEach(func(t T) {
		if !s2.Contains(t) {
			res = res.Add(t)
		}
	})
	return res
}

// ForEach invokes do once for every element of the set.
func (s Set[T]) ForEach(do func(T)) {
	if s.mp == nil {
		return
	}
	for iter := s.mp.Iterator(); !iter.Done(); {
		t, _, _ := iter.Next()
		do(t)
	}
}

// Entries collects the set's elements into a slice.
func (s Set[T]) Entries() []T {
	es := make([]T, 0, s.Size())
	s.ForEach(func(t T) { es = append(es, t) })
	return es
}

// Equal checks elementwise equality between two sets of the same type,
// short-circuiting on shared structure (a === b).
func (s1 Set[T]) Equal(s2 Set[T]) bool {
	if s1.mp == s2.mp {
		return true
	}
	if s1.Size() != s2.Size() {
		return false
	}
	eq := true
	s1.ForEach(func(t T) {
		if !s2.Contains(t) {
			eq = false
		}
	})
	return eq
}

func (s Set[T]) String() string {
	es := s.Entries()
	strs := make([]string, len(es))
	for i, e := range es {
		strs[i] = fmt.Sprint(e)
	}
	sort.Strings(strs)
	return "{" + strings.Join(strs, ", ") + "}"
}
