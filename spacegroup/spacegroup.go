package spacegroup

import (
	"fmt"
	"strings"

	"github.com/rousseab/abipy/intmat"
	"github.com/rousseab/abipy/opgroup"
	"github.com/rousseab/abipy/symmop"
)

// SpaceGroup is the full symmetry group of a crystal: the spatial
// generator operations combined with the available time signs. It embeds
// the generic operation container, exposing all group algorithms over the
// expanded operation set.
type SpaceGroup struct {
	*opgroup.Group[symmop.Operation]

	spgid      int
	hasTimeRev bool
	numSpatial int
}

// New expands generator data into a SpaceGroup. spgid must lie in 0..232
// (0 = unknown); rotations, translations and magSigns must have equal
// length. With hasTimeReversal, every spatial operation appears twice:
// once with time sign +1 and once with −1, the +1 block first, preserving
// generator order within each block.
//
// Determinants and sign domains are validated here (via symmop.New);
// group closure is deliberately not enforced — probe untrusted generator
// sets with IsGroup.
func New(spgid int, rotations []intmat.Mat, translations []intmat.Vec, magSigns []int, hasTimeReversal bool) (*SpaceGroup, error) {
	if spgid < 0 || spgid > 232 {
		return nil, fmt.Errorf("New: spgid %d: %w", spgid, ErrInvalidSpaceGroupID)
	}
	if len(rotations) != len(translations) || len(rotations) != len(magSigns) {
		return nil, fmt.Errorf("New: %d rotations, %d translations, %d signs: %w",
			len(rotations), len(translations), len(magSigns), ErrLengthMismatch)
	}

	timeSigns := []int{+1}
	if hasTimeReversal {
		timeSigns = []int{+1, -1}
	}

	ops := make([]symmop.Operation, 0, len(rotations)*len(timeSigns))
	for _, ts := range timeSigns {
		for i := range rotations {
			op, err := symmop.New(rotations[i], translations[i], ts, magSigns[i])
			if err != nil {
				return nil, fmt.Errorf("New: operation %d: %w", i, err)
			}
			ops = append(ops, op)
		}
	}

	g, err := opgroup.New(ops)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &SpaceGroup{
		Group:      g,
		spgid:      spgid,
		hasTimeRev: hasTimeReversal,
		numSpatial: len(rotations),
	}, nil
}

// SpgID returns the space-group number (0 = unknown).
func (sg *SpaceGroup) SpgID() int { return sg.spgid }

// HasTimeReversal reports whether time reversal is a symmetry.
func (sg *SpaceGroup) HasTimeReversal() bool { return sg.hasTimeRev }

// NumSpatialSymmetries returns the number of spatial generators; the full
// operation set doubles it when time reversal is present.
func (sg *SpaceGroup) NumSpatialSymmetries() int { return sg.numSpatial }

// IsSymmorphic reports whether at least one operation carries a non-zero
// fractional translation.
func (sg *SpaceGroup) IsSymmorphic() bool {
	for _, op := range sg.Ops() {
		if op.IsSymmorphic() {
			return true
		}
	}

	return false
}

// SymmOps returns the operations matching the given signs, in group order.
// A sign of 0 means "don't care".
func (sg *SpaceGroup) SymmOps(timeSign, magneticSign int) []symmop.Operation {
	var out []symmop.Operation
	for _, op := range sg.Ops() {
		if timeSign != 0 && op.TimeSign() != timeSign {
			continue
		}
		if magneticSign != 0 && op.MagneticSign() != magneticSign {
			continue
		}
		out = append(out, op)
	}

	return out
}

// FMOps returns the ferromagnetic operations (magnetic sign +1).
func (sg *SpaceGroup) FMOps() []symmop.Operation { return sg.SymmOps(0, +1) }

// AFMOps returns the antiferromagnetic operations (magnetic sign −1).
func (sg *SpaceGroup) AFMOps() []symmop.Operation { return sg.SymmOps(0, -1) }

// String summarizes the group header and lists the non-time-reversed
// operations.
func (sg *SpaceGroup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "spgid %d, num_spatial_symmetries %d, has_timerev %v\n",
		sg.spgid, sg.numSpatial, sg.hasTimeRev)
	for _, op := range sg.SymmOps(+1, 0) {
		b.WriteString(op.String())
	}

	return b.String()
}
