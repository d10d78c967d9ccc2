// Package randkey generates synthetic Key/Data values for exercising the
// pts store family without a real pointer-analysis frontend attached.
package randkey

import (
	"fmt"
	"math/rand"

	"github.com/cs-au-dk/ptds/pts"
)

// Key is a synthetic top-level pointer variable.
type Key int

func (k Key) String() string { return fmt.Sprintf("v%d", k) }

// Data is a synthetic allocation site / object.
type Data int

func (d Data) String() string { return fmt.Sprintf("o%d", d) }

type keyHasher struct{}

func (keyHasher) Hash(k Key) uint32   { return uint32(k) }
func (keyHasher) Equal(a, b Key) bool { return a == b }

type dataHasher struct{}

func (dataHasher) Hash(d Data) uint32   { return uint32(d) }
func (dataHasher) Equal(a, b Data) bool { return a == b }

// KeyHasher and DataHasher satisfy pts.Hasher for Key and Data respectively.
var (
	KeyHasher  pts.Hasher[Key]  = keyHasher{}
	DataHasher pts.Hasher[Data] = dataHasher{}
)

// Assignment is a single addPts(dst, src) fact.
type Assignment struct {
	Dst Key
	Src Data
}

// Edge is a single unionPts(dst, src) fact between two Keys.
type Edge struct {
	Dst, Src Key
}

// Workload is a synthetic fixpoint problem: every Key in Assignments starts
// out pointing directly at a Data, and Edges describes how points-to
// information should additionally flow between Keys.
type Workload struct {
	NumKeys     int
	Assignments []Assignment
	Edges       []Edge
}

// Generate builds a Workload of numKeys Keys and numData Data values, with
// density controlling how many random assignments/edges are produced
// relative to numKeys (roughly density assignments and density edges per
// Key). The Rand is caller-owned so runs are reproducible given a seed.
func Generate(r *rand.Rand, numKeys, numData int, density int) Workload {
	w := Workload{NumKeys: numKeys}

	for i := 0; i < numKeys*density; i++ {
		w.Assignments = append(w.Assignments, Assignment{
			Dst: Key(r.Intn(numKeys)),
			Src: Data(r.Intn(numData)),
		})
	}
	for i := 0; i < numKeys*density; i++ {
		dst := Key(r.Intn(numKeys))
		src := Key(r.Intn(numKeys))
		if dst == src {
			continue
		}
		w.Edges = append(w.Edges, Edge{Dst: dst, Src: src})
	}
	return w
}
