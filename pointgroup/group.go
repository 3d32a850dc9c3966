package pointgroup

import (
	"fmt"

	"github.com/rousseab/abipy/intmat"
	"github.com/rousseab/abipy/opgroup"
)

// Group is the rotation-only point group of a lattice (or of the little
// group of a wavevector), annotated with its resolved symbols. It embeds
// the generic operation container, so all group algorithms (IsGroup,
// MultTable, ClassIndices, ...) apply directly to the rotations.
type Group struct {
	*opgroup.Group[Rotation]

	herm string
	sch  string
}

// New builds the point group of a rotation list and classifies it.
// Construction fails with ErrInvalidRotation/ErrNotRootOfUnity on bad
// matrices, opgroup.ErrDuplicateOp on repeated rotations, and
// ErrPointGroupNotFound when the set matches none of the 32
// crystallographic point groups. The lookup miss is fatal by design: it
// means the rotation data is unrecognized or malformed.
func New(rotations []intmat.Mat) (*Group, error) {
	rots := make([]Rotation, len(rotations))
	for i, m := range rotations {
		r, err := NewRotation(m)
		if err != nil {
			return nil, fmt.Errorf("New: rotation %d: %w", i, err)
		}
		rots[i] = r
	}

	ops, err := opgroup.New(rots)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	herm, ok := classify(rots)
	if !ok {
		return nil, fmt.Errorf("New: %d rotations: %w", len(rots), ErrPointGroupNotFound)
	}

	// Every signature in the lookup table has a Schoenflies companion.
	sch, _ := HermToSch(herm)

	return &Group{Group: ops, herm: herm, sch: sch}, nil
}

// HermSymbol returns the Hermann-Mauguin symbol, e.g. "mm2".
func (g *Group) HermSymbol() string { return g.herm }

// SchSymbol returns the Schoenflies symbol, e.g. "C2v".
func (g *Group) SchSymbol() string { return g.sch }

// SpgID returns the space-group ID bucket of the point group.
func (g *Group) SpgID() int {
	id, _ := SchToSpgID(g.sch)

	return id
}

// String renders the group as "herm, sch (spgid)".
func (g *Group) String() string {
	return fmt.Sprintf("%s, %s (%d)", g.herm, g.sch, g.SpgID())
}
