// Package pts implements the persistent points-to storage family: a set of
// Key -> points-to-set stores that delegate all set algebra to a shared,
// hash-consing PtCache instead of materialising sets themselves.
//
// Every store in the family is parametric over a Key type and a Data type.
// Both must be hashable and comparable in the sense required by
// immutable.Hasher; ssa.Value (via utils.PointerHasher-style wrappers) and
// small integer-backed IDs are both typical instantiations.
package pts

import (
	"reflect"

	"github.com/benbjohnson/immutable"
)

// Hasher is the capability every Key/Data/VersionedKey type parameter must
// provide: a stable hash and an equality test. It is the same contract
// immutable.Hasher imposes, restated so pts's exported API doesn't force
// callers to import the immutable package just to construct a store.
type Hasher[T any] = immutable.Hasher[T]

// PointsToID is the handle PtCache hands out for an interned DataSet.
// EmptyID is the unique representative of the empty set (invariant 6); a
// Key that was never written maps to EmptyID without ever occupying a slot
// in a store's Key->ID map.
type PointsToID uint64

// EmptyID is the sole PointsToID representing the empty DataSet.
const EmptyID PointsToID = 0

// LocID identifies a dataflow node (program location) for DFStore/IncDFStore.
type LocID uint64

// PTDataTy discriminates the five store variants at runtime, replacing the
// source's classof/isa/dyn_cast machinery with a plain enum switch.
type PTDataTy int

const (
	Basic PTDataTy = iota
	Diff
	DataFlow
	IncDataFlow
	Versioned
)

// PointerHasher hashes and compares T by pointer identity. It's the bound
// of choice for Key/Data types like ssa.Value that are reference types with
// no natural structural equality.
type PointerHasher[T any] struct{}

func (PointerHasher[T]) Hash(v T) uint32 {
	p := reflect.ValueOf(v).Pointer()
	return uint32(p ^ (p >> 32))
}

func (PointerHasher[T]) Equal(a, b T) bool {
	return any(a) == any(b)
}

func (t PTDataTy) String() string {
	switch t {
	case Basic:
		return "Basic"
	case Diff:
		return "Diff"
	case DataFlow:
		return "DataFlow"
	case IncDataFlow:
		return "IncDataFlow"
	case Versioned:
		return "Versioned"
	default:
		return "Unknown"
	}
}
