package pts

import (
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ssa"
)

// fakeValue is a minimal ssa.Value, just enough to exercise PointerHasher
// without constructing a real SSA program.
type fakeValue struct{ name string }

func (f *fakeValue) Name() string                  { return f.name }
func (*fakeValue) Parent() *ssa.Function           { return nil }
func (*fakeValue) Pos() token.Pos                  { return token.NoPos }
func (*fakeValue) Referrers() *[]ssa.Instruction   { return nil }
func (f *fakeValue) String() string                { return f.name }
func (*fakeValue) Type() types.Type                { return types.NewPointer(types.Typ[types.Int]) }

var _ ssa.Value = (*fakeValue)(nil)

// TestStoreOverSSAValues instantiates a BasicStore with ssa.Value as both
// Key and Data, the way a real pointer-analysis frontend would, using
// PointerHasher since ssa.Value has no structural equality of its own.
func TestStoreOverSSAValues(t *testing.T) {
	hasher := PointerHasher[ssa.Value]{}
	cache := NewPersistentPointsToCache[ssa.Value](hasher)
	s := NewBasicStore[ssa.Value, ssa.Value](cache, hasher, true)

	p, q, obj := &fakeValue{"p"}, &fakeValue{"q"}, &fakeValue{"obj"}

	s.AddPts(p, obj)
	if !s.GetPts(p).Contains(obj) {
		t.Fatalf("p should point to obj")
	}

	s.UnionPtsKey(q, p)
	if !s.GetPts(q).Contains(obj) {
		t.Fatalf("q should now point to obj via UnionPtsKey")
	}

	rev := s.GetRevPts(obj)
	if !rev.Contains(p) || !rev.Contains(q) {
		t.Fatalf("obj's reverse points-to set should contain both p and q")
	}
}
