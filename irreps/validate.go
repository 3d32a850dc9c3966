package irreps

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/rousseab/abipy/opgroup"
	"github.com/rousseab/abipy/pointgroup"
)

// Check identifies one of the four consistency axioms a representation
// table must satisfy.
type Check int

const (
	// CheckGroupAxioms: the rotations form a group.
	CheckGroupAxioms Check = iota

	// CheckClassPacking: conjugacy classes recomputed from the rotations
	// match the class ranges shipped with the table.
	CheckClassPacking

	// CheckHomomorphism: D(g1)·D(g2) equals D(g1·g2) for every pair of
	// elements and every irrep.
	CheckHomomorphism

	// CheckOrthogonality: ⟨χᵢ,χⱼ⟩/|G| equals δᵢⱼ for every pair of
	// irreps, computed over per-element traces.
	CheckOrthogonality
)

// String names the check for diagnostics.
func (c Check) String() string {
	switch c {
	case CheckGroupAxioms:
		return "group-axioms"
	case CheckClassPacking:
		return "class-packing"
	case CheckHomomorphism:
		return "homomorphism"
	case CheckOrthogonality:
		return "orthogonality"
	}

	return "unknown"
}

// Finding localizes one validation failure: the violated check, the
// element or class indices involved, the irrep names (when applicable),
// the numeric residual and a human-readable detail line.
type Finding struct {
	Check    Check
	I, J     int
	Irrep    string
	Residual float64
	Detail   string
}

// String renders the finding on one line.
func (f Finding) String() string {
	s := f.Check.String()
	if f.Irrep != "" {
		s += " [" + f.Irrep + "]"
	}

	return fmt.Sprintf("%s (i=%d, j=%d, residual=%.3g): %s", s, f.I, f.J, f.Residual, f.Detail)
}

// Report collects the findings of one validation run. An empty report
// means the table is self-consistent.
type Report struct {
	Findings []Finding
}

// OK reports whether every check passed.
func (r *Report) OK() bool { return len(r.Findings) == 0 }

// String renders all findings, or "ok".
func (r *Report) String() string {
	if r.OK() {
		return "ok"
	}

	lines := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		lines[i] = f.String()
	}

	return strings.Join(lines, "\n")
}

func (r *Report) add(f Finding) { r.Findings = append(r.Findings, f) }

// Validate runs the four consistency checks against the table. It is a
// diagnostic tool: failures come back as structured findings, never as
// errors. When the rotations fail the group axioms the remaining checks
// are skipped — they presuppose a multiplication table.
func (t *Table) Validate() *Report {
	report := &Report{}

	group, err := opgroup.New(t.rots)
	if err != nil {
		report.add(Finding{Check: CheckGroupAxioms, Detail: err.Error()})

		return report
	}
	if !group.IsGroup() {
		report.add(Finding{Check: CheckGroupAxioms, Detail: "rotations do not form a group"})

		return report
	}

	t.checkClassPacking(report, group)
	t.checkHomomorphism(report, group)
	t.checkOrthogonality(report)

	return report
}

// checkClassPacking recomputes the conjugacy classes and compares them, as
// sorted index sets, against the shipped class ranges.
func (t *Table) checkClassPacking(report *Report, group *opgroup.Group[pointgroup.Rotation]) {
	classes, err := group.ClassIndices()
	if err != nil {
		// Unreachable after IsGroup, kept for completeness.
		report.add(Finding{Check: CheckClassPacking, Detail: err.Error()})

		return
	}

	if len(classes) != len(t.classRange) {
		report.add(Finding{
			Check:  CheckClassPacking,
			Detail: fmt.Sprintf("computed %d classes, table ships %d", len(classes), len(t.classRange)),
		})

		return
	}

	for c, class := range classes {
		got := append([]int(nil), class...)
		sort.Ints(got)

		rng := t.classRange[c]
		want := make([]int, 0, rng[1]-rng[0])
		for i := rng[0]; i < rng[1]; i++ {
			want = append(want, i)
		}

		if !equalInts(got, want) {
			report.add(Finding{
				Check:  CheckClassPacking,
				I:      c,
				Detail: fmt.Sprintf("class %d: computed %v, table ships %v", c, got, want),
			})
		}
	}
}

// checkHomomorphism verifies D(g1)·D(g2) == D(g1·g2) entry-wise within
// DefaultRepTol for every ordered pair and every irrep.
func (t *Table) checkHomomorphism(report *Report, group *opgroup.Group[pointgroup.Rotation]) {
	table := group.MultTable()
	n := group.Len()

	for _, ir := range t.irreps {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				k := table[i][j]

				residual := 0.0
				for a := 0; a < ir.dim; a++ {
					for b := 0; b < ir.dim; b++ {
						var prod complex128
						for c := 0; c < ir.dim; c++ {
							prod += ir.mats[i][a][c] * ir.mats[j][c][b]
						}
						if d := cmplx.Abs(prod - ir.mats[k][a][b]); d > residual {
							residual = d
						}
					}
				}

				if residual > DefaultRepTol {
					report.add(Finding{
						Check:    CheckHomomorphism,
						I:        i,
						J:        j,
						Irrep:    ir.name,
						Residual: residual,
						Detail:   fmt.Sprintf("D(%d)·D(%d) differs from D(%d)", i, j, k),
					})
				}
			}
		}
	}
}

// checkOrthogonality verifies ⟨χᵢ,χⱼ⟩/|G| == δᵢⱼ over per-element traces
// (not per-class characters) for every unordered pair of irreps.
func (t *Table) checkOrthogonality(report *Report) {
	n := float64(len(t.rots))

	for i := 0; i < len(t.irreps); i++ {
		for j := i; j < len(t.irreps); j++ {
			var inner complex128
			for s := range t.rots {
				inner += cmplx.Conj(t.irreps[i].traces[s]) * t.irreps[j].traces[s]
			}
			inner /= complex(n, 0)

			want := complex128(0)
			if i == j {
				want = 1
			}

			if residual := cmplx.Abs(inner - want); residual > DefaultRepTol {
				report.add(Finding{
					Check:    CheckOrthogonality,
					I:        i,
					J:        j,
					Irrep:    t.irreps[i].name + "," + t.irreps[j].name,
					Residual: residual,
					Detail:   fmt.Sprintf("⟨χ_%s,χ_%s⟩/|G| = %v", t.irreps[i].name, t.irreps[j].name, inner),
				})
			}
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
