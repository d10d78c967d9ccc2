// Package hmap is a simple mutable hash map keyed by types that cannot be
// compared with Go's built-in map (the key carries identity-insensitive
// content equality, e.g. a persistent set, rather than pointer or scalar
// equality). Collisions are resolved with linked lists.
package hmap

import "github.com/benbjohnson/immutable"

type node[K, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// Map is a hash map over keys of type K, using the given Hasher to compute
// bucket indices and resolve collisions by equality.
type Map[K, V any] struct {
	hasher immutable.Hasher[K]
	mp     map[uint32]*node[K, V]
	size   int
}

// New creates an empty Map keyed by K, using hasher for hashing/equality.
// V comes first because it cannot be inferred and must be given explicitly.
func New[V, K any](hasher immutable.Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		hasher: hasher,
		mp:     make(map[uint32]*node[K, V]),
	}
}

// Set inserts or overwrites the mapping for key.
func (m *Map[K, V]) Set(key K, value V) {
	h := m.hasher.Hash(key)
	if head, found := m.mp[h]; !found {
		m.mp[h] = &node[K, V]{key, value, nil}
		m.size++
	} else {
		for n := head; ; n = n.next {
			if m.hasher.Equal(key, n.key) {
				n.value = value
				return
			}
			if n.next == nil {
				n.next = &node[K, V]{key, value, nil}
				m.size++
				return
			}
		}
	}
}

// GetOk looks up key, reporting whether it was present.
func (m *Map[K, V]) GetOk(key K) (res V, ok bool) {
	for n := m.mp[m.hasher.Hash(key)]; n != nil; n = n.next {
		if m.hasher.Equal(key, n.key) {
			return n.value, true
		}
	}
	return
}

// Get looks up key, returning the zero value of V if absent.
func (m *Map[K, V]) Get(key K) V {
	v, _ := m.GetOk(key)
	return v
}

// Len returns the number of distinct keys stored in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// ForEach calls do once for every key/value pair in the map.
func (m *Map[K, V]) ForEach(do func(K, V)) {
	for _, head := range m.mp {
		for n := head; n != nil; n = n.next {
			do(n.key, n.value)
		}
	}
}
