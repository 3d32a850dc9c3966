package irreps

import (
	"fmt"
	"math"

	"github.com/rousseab/abipy/intmat"
	"github.com/rousseab/abipy/pointgroup"
)

// Builtin reference tables, keyed by Schoenflies symbol. Built once at
// init from fixed data and never mutated; Lookup hands out the shared
// read-only values.
var (
	db      = map[string]*Table{}
	dbOrder []string
)

// Lookup resolves a builtin representation table. The symbol may be a
// Schoenflies symbol, a Hermann-Mauguin symbol or an int space-group ID
// bucket (anything pointgroup.AnyToSch accepts). A symbol outside the
// builtin set fails with ErrTableNotFound.
func Lookup(symbol any) (*Table, error) {
	sch, ok := pointgroup.AnyToSch(symbol)
	if !ok {
		return nil, fmt.Errorf("Lookup: %v: %w", symbol, ErrTableNotFound)
	}

	t, ok := db[sch]
	if !ok {
		return nil, fmt.Errorf("Lookup: %s: %w", sch, ErrTableNotFound)
	}

	return t, nil
}

// Symbols returns the Schoenflies symbols with builtin tables, in
// registration order.
func Symbols() []string {
	out := make([]string, len(dbOrder))
	copy(out, dbOrder)

	return out
}

// register panics on malformed builtin data: the tables below are fixed
// reference data, so an inconsistency is a programmer error.
func register(sch string, rotations []intmat.Mat, classNames []string, classRange [][2]int, irreps []Irrep) {
	t, err := NewTable(sch, rotations, classNames, classRange, irreps)
	if err != nil {
		panic(fmt.Sprintf("irreps: builtin table %s: %v", sch, err))
	}

	db[sch] = t
	dbOrder = append(dbOrder, sch)
}

// scalar builds a one-dimensional irrep from per-element values.
func scalar(name string, classRange [][2]int, vals ...complex128) Irrep {
	mats := make([][][]complex128, len(vals))
	for i, v := range vals {
		mats[i] = [][]complex128{{v}}
	}

	ir, err := NewIrrep(name, 1, mats, classRange)
	if err != nil {
		panic(fmt.Sprintf("irreps: builtin irrep %s: %v", name, err))
	}

	return ir
}

// planar builds a two-dimensional irrep from per-element real matrices.
func planar(name string, classRange [][2]int, mats ...[2][2]float64) Irrep {
	blocks := make([][][]complex128, len(mats))
	for i, m := range mats {
		blocks[i] = [][]complex128{
			{complex(m[0][0], 0), complex(m[0][1], 0)},
			{complex(m[1][0], 0), complex(m[1][1], 0)},
		}
	}

	ir, err := NewIrrep(name, 2, blocks, classRange)
	if err != nil {
		panic(fmt.Sprintf("irreps: builtin irrep %s: %v", name, err))
	}

	return ir
}

func init() {
	var (
		e    = intmat.Identity()
		inv  = intmat.Neg(intmat.Identity())
		c2z  = intmat.Mat{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
		mx   = intmat.Mat{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		my   = intmat.Mat{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
		c4z  = intmat.Mat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
		c4z3 = intmat.Mat{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}
		c3   = intmat.Mat{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}
		c3sq = intmat.Mat{{-1, 1, 0}, {-1, 0, 0}, {0, 0, 1}}
		m1   = intmat.Mat{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}
		m2   = intmat.Mat{{-1, 0, 0}, {-1, 1, 0}, {0, 0, 1}}
		m3   = intmat.Mat{{1, -1, 0}, {0, -1, 0}, {0, 0, 1}}
	)

	// C1: the trivial group.
	{
		cr := [][2]int{{0, 1}}
		register("C1",
			[]intmat.Mat{e},
			[]string{"E"}, cr,
			[]Irrep{scalar("A", cr, 1)})
	}

	// Ci: identity and inversion.
	{
		cr := [][2]int{{0, 1}, {1, 2}}
		register("Ci",
			[]intmat.Mat{e, inv},
			[]string{"E", "i"}, cr,
			[]Irrep{
				scalar("Ag", cr, 1, 1),
				scalar("Au", cr, 1, -1),
			})
	}

	// C2: identity and the 2-fold rotation about z.
	{
		cr := [][2]int{{0, 1}, {1, 2}}
		register("C2",
			[]intmat.Mat{e, c2z},
			[]string{"E", "C2"}, cr,
			[]Irrep{
				scalar("A", cr, 1, 1),
				scalar("B", cr, 1, -1),
			})
	}

	// C2v (mm2): abelian, four singleton classes.
	{
		cr := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
		register("C2v",
			[]intmat.Mat{e, c2z, mx, my},
			[]string{"E", "C2", "sv", "sv'"}, cr,
			[]Irrep{
				scalar("A1", cr, 1, 1, 1, 1),
				scalar("A2", cr, 1, 1, -1, -1),
				scalar("B1", cr, 1, -1, 1, -1),
				scalar("B2", cr, 1, -1, -1, 1),
			})
	}

	// C4: cyclic, with a pair of complex-conjugate one-dimensional irreps.
	{
		cr := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
		register("C4",
			[]intmat.Mat{e, c4z, c2z, c4z3},
			[]string{"E", "C4", "C2", "C4^3"}, cr,
			[]Irrep{
				scalar("A", cr, 1, 1, 1, 1),
				scalar("B", cr, 1, -1, 1, -1),
				scalar("1E", cr, 1, 1i, -1, -1i),
				scalar("2E", cr, 1, -1i, -1, 1i),
			})
	}

	// C3v (3m): non-abelian, with a two-dimensional irrep. Elements are
	// packed E | C3, C3² | the three mirrors.
	{
		s := math.Sqrt(3) / 2
		r120 := [2][2]float64{{-0.5, -s}, {s, -0.5}}
		r240 := [2][2]float64{{-0.5, s}, {-s, -0.5}}
		sig0 := [2][2]float64{{1, 0}, {0, -1}}
		sig1 := [2][2]float64{{-0.5, s}, {s, 0.5}}   // r120·sig0
		sig2 := [2][2]float64{{-0.5, -s}, {-s, 0.5}} // r240·sig0
		unit := [2][2]float64{{1, 0}, {0, 1}}

		cr := [][2]int{{0, 1}, {1, 3}, {3, 6}}
		register("C3v",
			[]intmat.Mat{e, c3, c3sq, m1, m2, m3},
			[]string{"E", "2C3", "3sv"}, cr,
			[]Irrep{
				scalar("A1", cr, 1, 1, 1, 1, 1, 1),
				scalar("A2", cr, 1, 1, 1, -1, -1, -1),
				planar("E", cr, unit, r120, r240, sig0, sig1, sig2),
			})
	}
}
