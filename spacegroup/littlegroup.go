package spacegroup

import (
	"fmt"

	"github.com/rousseab/abipy/intmat"
	"github.com/rousseab/abipy/irreps"
	"github.com/rousseab/abipy/opgroup"
	"github.com/rousseab/abipy/pointgroup"
	"github.com/rousseab/abipy/symmop"
)

// LittleGroup holds the symmetry operations of a space group that preserve
// a wavevector modulo a reciprocal lattice vector, the integer offsets
// g0 = Sk − k for each of them, and the point group classifying the
// rotations of k. Operations keep their SpaceGroup order.
type LittleGroup struct {
	*opgroup.Group[symmop.Operation]

	kpoint intmat.Vec
	g0vecs []intmat.IntVec
	kgroup *pointgroup.Group
}

// FindLittleGroup returns the little group of a wavevector given in
// fractional reciprocal coordinates. Antiferromagnetic operations are
// excluded from the search; for each surviving ferromagnetic operation the
// offset g0 is recorded. The point group of k is built from the
// non-time-reversed survivors' reciprocal-space rotations.
//
// Two calls with the same k yield identical operation sets and g0 vectors:
// the search is a pure filter over the stored operation order.
func (sg *SpaceGroup) FindLittleGroup(k intmat.Vec) (*LittleGroup, error) {
	var (
		kept []symmop.Operation
		g0s  []intmat.IntVec
	)
	for _, op := range sg.FMOps() {
		ok, g0 := op.PreserveK(k)
		if ok {
			kept = append(kept, op)
			g0s = append(g0s, g0)
		}
	}

	if len(kept) == 0 {
		return nil, fmt.Errorf("FindLittleGroup: k=%v: %w", k, ErrEmptyLittleGroup)
	}

	g, err := opgroup.New(kept)
	if err != nil {
		return nil, fmt.Errorf("FindLittleGroup: %w", err)
	}

	var krots []intmat.Mat
	for _, op := range kept {
		if !op.HasTimeReversal() {
			krots = append(krots, op.RotG())
		}
	}

	kgroup, err := pointgroup.New(krots)
	if err != nil {
		return nil, fmt.Errorf("FindLittleGroup: k=%v: %w", k, err)
	}

	return &LittleGroup{Group: g, kpoint: k, g0vecs: g0s, kgroup: kgroup}, nil
}

// Kpoint returns the wavevector this little group belongs to.
func (lg *LittleGroup) Kpoint() intmat.Vec { return lg.kpoint }

// G0 returns the reciprocal-lattice offset of the i-th operation.
func (lg *LittleGroup) G0(i int) intmat.IntVec { return lg.g0vecs[i] }

// G0Vecs returns a copy of all offsets, index-aligned with the operations.
func (lg *LittleGroup) G0Vecs() []intmat.IntVec {
	out := make([]intmat.IntVec, len(lg.g0vecs))
	copy(out, lg.g0vecs)

	return out
}

// OpG0 returns the i-th operation together with its offset.
func (lg *LittleGroup) OpG0(i int) (symmop.Operation, intmat.IntVec) {
	return lg.Op(i), lg.g0vecs[i]
}

// KGroup returns the point group of the wavevector.
func (lg *LittleGroup) KGroup() *pointgroup.Group { return lg.kgroup }

// String renders the k-point, its point-group symbols and, when the
// representation database covers the group, its character table.
func (lg *LittleGroup) String() string {
	s := fmt.Sprintf("Kpoint group: %s, kpoint: %v", lg.kgroup, lg.kpoint)

	table, err := irreps.Lookup(lg.kgroup.SchSymbol())
	if err != nil {
		return s
	}

	return s + "\n" + table.FormatCharacterTable()
}
