package pointgroup

import (
	"fmt"
	"strconv"

	"github.com/rousseab/abipy/intmat"
)

// Kind is the crystallographic type of a lattice rotation, determined by
// the determinant and the trace of its matrix.
type Kind int

const (
	Kind1      Kind = iota // identity
	Kind2                  // 2-fold rotation
	Kind3                  // 3-fold rotation
	Kind4                  // 4-fold rotation
	Kind6                  // 6-fold rotation
	KindMinus1             // inversion
	KindM                  // mirror
	KindMinus3             // 3-fold rotoinversion
	KindMinus4             // 4-fold rotoinversion
	KindMinus6             // 6-fold rotoinversion

	numKinds = 10
)

// String returns the Hermann-Mauguin style name of the kind.
func (k Kind) String() string {
	switch k {
	case Kind1:
		return "1"
	case Kind2:
		return "2"
	case Kind3:
		return "3"
	case Kind4:
		return "4"
	case Kind6:
		return "6"
	case KindMinus1:
		return "-1"
	case KindM:
		return "m"
	case KindMinus3:
		return "-3"
	case KindMinus4:
		return "-4"
	case KindMinus6:
		return "-6"
	}

	return "?"
}

// kindOf maps (det, trace) to the rotation kind. Both arguments come from
// a validated root-of-unity rotation, so the pairs below are exhaustive.
func kindOf(det, trace int) (Kind, bool) {
	switch {
	case det == 1 && trace == 3:
		return Kind1, true
	case det == 1 && trace == -1:
		return Kind2, true
	case det == 1 && trace == 0:
		return Kind3, true
	case det == 1 && trace == 1:
		return Kind4, true
	case det == 1 && trace == 2:
		return Kind6, true
	case det == -1 && trace == -3:
		return KindMinus1, true
	case det == -1 && trace == 1:
		return KindM, true
	case det == -1 && trace == 0:
		return KindMinus3, true
	case det == -1 && trace == -1:
		return KindMinus4, true
	case det == -1 && trace == -2:
		return KindMinus6, true
	}

	return 0, false
}

// Rotation is a pure rotation of the lattice in reduced coordinates. It is
// an immutable value; order, inversion-root and kind are resolved at
// construction.
type Rotation struct {
	mat     intmat.Mat
	det     int
	trace   int
	order   int
	rootInv int // smallest power reaching the inversion, 0 if none
	kind    Kind
}

// maxOrder is the largest rotation order compatible with a lattice
// (crystallographic restriction theorem).
const maxOrder = 6

// NewRotation validates mat and resolves its crystallographic data. The
// determinant must be ±1 (ErrInvalidRotation) and some power ≤ 6 must reach
// the identity (ErrNotRootOfUnity).
func NewRotation(mat intmat.Mat) (Rotation, error) {
	det := intmat.Det(mat)
	if det != 1 && det != -1 {
		return Rotation{}, fmt.Errorf("NewRotation: %v: determinant %d: %w", mat, det, ErrInvalidRotation)
	}

	order, rootInv := 0, 0
	pow := intmat.Identity()
	inv := intmat.Neg(intmat.Identity())
	for n := 1; n <= maxOrder; n++ {
		pow = intmat.Mul(pow, mat)
		if pow == intmat.Identity() {
			order = n

			break
		}
		if pow == inv {
			rootInv = n
		}
	}
	if order == 0 {
		return Rotation{}, fmt.Errorf("NewRotation: %v: %w", mat, ErrNotRootOfUnity)
	}

	trace := intmat.Trace(mat)
	kind, ok := kindOf(det, trace)
	if !ok {
		// Unreachable for a root of unity with |det| == 1; kept as a
		// hard failure against future refactoring.
		return Rotation{}, fmt.Errorf("NewRotation: %v: det %d trace %d: %w", mat, det, trace, ErrNotRootOfUnity)
	}

	return Rotation{mat: mat, det: det, trace: trace, order: order, rootInv: rootInv, kind: kind}, nil
}

// mustRotation lifts a matrix already known to be a valid group element.
func mustRotation(mat intmat.Mat) Rotation {
	r, err := NewRotation(mat)
	if err != nil {
		panic(fmt.Sprintf("pointgroup: derived rotation invalid: %v", err))
	}

	return r
}

// Mat returns the rotation matrix.
func (r Rotation) Mat() intmat.Mat { return r.mat }

// Det returns the determinant (±1).
func (r Rotation) Det() int { return r.det }

// Trace returns the trace of the matrix.
func (r Rotation) Trace() int { return r.trace }

// Order returns the smallest n ≥ 1 with rⁿ = E. Always in 1..6.
func (r Rotation) Order() int { return r.order }

// RootInv returns the smallest n with rⁿ = −E, or 0 if no power reaches
// the inversion.
func (r Rotation) RootInv() int { return r.rootInv }

// Kind returns the crystallographic type of the rotation.
func (r Rotation) Kind() Kind { return r.kind }

// IsProper reports whether the determinant is +1.
func (r Rotation) IsProper() bool { return r.det == 1 }

// IsIdentity reports whether r is the identity rotation.
func (r Rotation) IsIdentity() bool { return intmat.IsIdentity(r.mat) }

// IsInversion reports whether r is the inversion −E.
func (r Rotation) IsInversion() bool { return r.mat == intmat.Neg(intmat.Identity()) }

// Product returns the rotation r·other.
func (r Rotation) Product(other Rotation) Rotation {
	return mustRotation(intmat.Mul(r.mat, other.mat))
}

// Inverse returns r⁻¹, computed in exact integer arithmetic.
func (r Rotation) Inverse() Rotation {
	inv, err := intmat.InvertTranspose(r.mat, false)
	if err != nil {
		// |det| == 1 was checked at construction.
		panic(fmt.Sprintf("pointgroup: inverse of valid rotation failed: %v", err))
	}

	return mustRotation(inv)
}

// Pow returns rⁿ for any integer n (negative powers via the inverse).
func (r Rotation) Pow(n int) Rotation {
	if n < 0 {
		return r.Inverse().Pow(-n)
	}

	out := mustRotation(intmat.Identity())
	for i := 0; i < n; i++ {
		out = out.Product(r)
	}

	return out
}

// Equal reports whether two rotations have the same matrix.
func (r Rotation) Equal(other Rotation) bool { return r.mat == other.mat }

// HashKey returns a coarse key consistent with Equal (trace and
// determinant only; collisions are resolved by Equal).
func (r Rotation) HashKey() int { return 8*r.trace + 4*r.det }

// Name returns a compact label: a leading "-" for improper rotations, the
// order, and a trailing "-" when some power reaches the inversion ("+"
// otherwise). Example: the inversion is "-2-", a 3-fold rotation "3+".
func (r Rotation) Name() string {
	name := ""
	if r.det == -1 {
		name = "-"
	}
	name += strconv.Itoa(r.order)
	if r.rootInv != 0 {
		name += "-"
	} else {
		name += "+"
	}

	return name
}

// String returns the rotation name.
func (r Rotation) String() string { return r.Name() }
