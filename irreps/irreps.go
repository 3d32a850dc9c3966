package irreps

import (
	"fmt"

	"github.com/rousseab/abipy/intmat"
	"github.com/rousseab/abipy/pointgroup"
)

// DefaultRepTol is the numeric tolerance for the homomorphism and
// orthogonality checks. Representation matrices are tabulated floating
// point data, so exact comparison does not apply to them.
const DefaultRepTol = 1e-5

// Irrep is one irreducible representation of a point group: a name, a
// dimension, and one dim×dim complex matrix per group element, packed
// class-by-class in the same order as the owning table's rotations.
type Irrep struct {
	name      string
	dim       int
	mats      [][][]complex128
	traces    []complex128
	character []complex128
}

// NewIrrep validates the matrix block and derives traces and the
// per-class character (the trace of each class representative).
func NewIrrep(name string, dim int, mats [][][]complex128, classRange [][2]int) (Irrep, error) {
	if dim < 1 {
		return Irrep{}, fmt.Errorf("NewIrrep: %s: dimension %d: %w", name, dim, ErrBadTable)
	}
	for s, m := range mats {
		if len(m) != dim {
			return Irrep{}, fmt.Errorf("NewIrrep: %s: matrix %d has %d rows, want %d: %w",
				name, s, len(m), dim, ErrBadTable)
		}
		for _, row := range m {
			if len(row) != dim {
				return Irrep{}, fmt.Errorf("NewIrrep: %s: matrix %d is not %d×%d: %w",
					name, s, dim, dim, ErrBadTable)
			}
		}
	}

	traces := make([]complex128, len(mats))
	for s, m := range mats {
		for i := 0; i < dim; i++ {
			traces[s] += m[i][i]
		}
	}

	character := make([]complex128, len(classRange))
	for c, rng := range classRange {
		if rng[0] < 0 || rng[1] > len(mats) || rng[0] >= rng[1] {
			return Irrep{}, fmt.Errorf("NewIrrep: %s: class range %v: %w", name, rng, ErrBadTable)
		}
		character[c] = traces[rng[0]]
	}

	return Irrep{name: name, dim: dim, mats: mats, traces: traces, character: character}, nil
}

// Name returns the irrep label, e.g. "A1" or "E".
func (ir Irrep) Name() string { return ir.name }

// Dim returns the representation dimension.
func (ir Irrep) Dim() int { return ir.dim }

// Mat returns the representation matrix of the s-th group element.
func (ir Irrep) Mat(s int) [][]complex128 { return ir.mats[s] }

// Traces returns the per-element traces, index-aligned with the rotations.
func (ir Irrep) Traces() []complex128 { return ir.traces }

// Character returns the per-class characters.
func (ir Irrep) Character() []complex128 { return ir.character }

// Table is the representation data of one crystallographic point group:
// rotations packed class-by-class, the class layout, and one irrep per
// class. Immutable after NewTable.
type Table struct {
	sch        string
	rots       []pointgroup.Rotation
	classNames []string
	classRange [][2]int
	irreps     []Irrep
	byName     map[string]int
}

// NewTable validates the structural consistency of the data: class ranges
// must tile 0..len(rotations), the irrep count must equal the class count,
// and every irrep must carry one matrix per rotation.
func NewTable(sch string, rotations []intmat.Mat, classNames []string, classRange [][2]int, irreps []Irrep) (*Table, error) {
	rots := make([]pointgroup.Rotation, len(rotations))
	for i, m := range rotations {
		r, err := pointgroup.NewRotation(m)
		if err != nil {
			return nil, fmt.Errorf("NewTable: %s: rotation %d: %w", sch, i, err)
		}
		rots[i] = r
	}

	if len(classNames) != len(classRange) {
		return nil, fmt.Errorf("NewTable: %s: %d class names, %d ranges: %w",
			sch, len(classNames), len(classRange), ErrBadTable)
	}

	next := 0
	for c, rng := range classRange {
		if rng[0] != next || rng[1] <= rng[0] {
			return nil, fmt.Errorf("NewTable: %s: class %d range %v does not tile the group: %w",
				sch, c, rng, ErrBadTable)
		}
		next = rng[1]
	}
	if next != len(rots) {
		return nil, fmt.Errorf("NewTable: %s: class ranges cover %d of %d rotations: %w",
			sch, next, len(rots), ErrBadTable)
	}

	if len(irreps) != len(classRange) {
		return nil, fmt.Errorf("NewTable: %s: %d irreps for %d classes: %w",
			sch, len(irreps), len(classRange), ErrBadTable)
	}

	byName := make(map[string]int, len(irreps))
	for i, ir := range irreps {
		if len(ir.traces) != len(rots) {
			return nil, fmt.Errorf("NewTable: %s: irrep %s has %d matrices for %d rotations: %w",
				sch, ir.name, len(ir.traces), len(rots), ErrBadTable)
		}
		byName[ir.name] = i
	}

	return &Table{
		sch:        sch,
		rots:       rots,
		classNames: classNames,
		classRange: classRange,
		irreps:     irreps,
		byName:     byName,
	}, nil
}

// SchSymbol returns the Schoenflies symbol keying the table.
func (t *Table) SchSymbol() string { return t.sch }

// HermSymbol returns the Hermann-Mauguin symbol of the point group.
func (t *Table) HermSymbol() string {
	h, _ := pointgroup.SchToHerm(t.sch)

	return h
}

// SpgID returns the space-group ID bucket of the point group.
func (t *Table) SpgID() int {
	id, _ := pointgroup.SchToSpgID(t.sch)

	return id
}

// NumRots returns the group order.
func (t *Table) NumRots() int { return len(t.rots) }

// NumClasses returns the number of conjugacy classes.
func (t *Table) NumClasses() int { return len(t.classRange) }

// NumIrreps returns the number of irreducible representations.
func (t *Table) NumIrreps() int { return len(t.irreps) }

// Rotations returns a copy of the class-packed rotations.
func (t *Table) Rotations() []pointgroup.Rotation {
	out := make([]pointgroup.Rotation, len(t.rots))
	copy(out, t.rots)

	return out
}

// ClassNames returns the class labels in class order.
func (t *Table) ClassNames() []string { return t.classNames }

// ClassRange returns the start/stop element index of each class.
func (t *Table) ClassRange() [][2]int { return t.classRange }

// Irreps returns the irreps in table order.
func (t *Table) Irreps() []Irrep { return t.irreps }

// IrrepNames returns the irrep labels in table order.
func (t *Table) IrrepNames() []string {
	out := make([]string, len(t.irreps))
	for i, ir := range t.irreps {
		out[i] = ir.name
	}

	return out
}

// IrrepByName returns the irrep with the given label.
func (t *Table) IrrepByName(name string) (Irrep, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Irrep{}, false
	}

	return t.irreps[i], true
}
