package symmop

import (
	"fmt"

	"github.com/rousseab/abipy/intmat"
)

// Operation is a space-group symmetry of a crystal. It is an immutable
// value: construct it with New or derive it with Product/Inverse/Conjugate
// and never mutate the fields afterwards.
//
// Invariant: rotG is always the exact transpose-inverse of rotR, and both
// have determinant ±1.
type Operation struct {
	rotR    intmat.Mat // rotational part, real space, reduced coordinates
	rotInvR intmat.Mat // exact integer inverse of rotR
	rotG    intmat.Mat // reciprocal-space rotation: (rotR⁻¹)ᵀ
	tau     intmat.Vec // fractional translation, reduced coordinates
	timeSgn int        // -1 if the operation includes time reversal
	magSgn  int        // -1 for an antiferromagnetic operation

	// Precomputed at construction so equality-heavy loops never branch on
	// cached state.
	det   int
	trace int
}

// New builds an Operation from generator data. The determinant of rotR must
// be ±1 (ErrInvalidRotation; a zero determinant also matches
// intmat.ErrSingular) and both signs must lie in {+1, -1} (ErrInvalidSign).
func New(rotR intmat.Mat, tau intmat.Vec, timeSign, magneticSign int) (Operation, error) {
	if timeSign != 1 && timeSign != -1 {
		return Operation{}, fmt.Errorf("New: time sign %d: %w", timeSign, ErrInvalidSign)
	}
	if magneticSign != 1 && magneticSign != -1 {
		return Operation{}, fmt.Errorf("New: magnetic sign %d: %w", magneticSign, ErrInvalidSign)
	}

	det := intmat.Det(rotR)
	if det == 0 {
		return Operation{}, fmt.Errorf("New: %v: %w (%w)", rotR, ErrInvalidRotation, intmat.ErrSingular)
	}
	if det != 1 && det != -1 {
		return Operation{}, fmt.Errorf("New: %v: determinant %d: %w", rotR, det, ErrInvalidRotation)
	}

	// |det| == 1, so the adjugate inversion is exact and cannot fail.
	rotInvR, _ := intmat.InvertTranspose(rotR, false)

	return Operation{
		rotR:    rotR,
		rotInvR: rotInvR,
		rotG:    intmat.Transpose(rotInvR),
		tau:     tau,
		timeSgn: timeSign,
		magSgn:  magneticSign,
		det:     det,
		trace:   intmat.Trace(rotR),
	}, nil
}

// mustDerive builds an operation algebraically from parts already known to
// be valid (products and inverses of group elements stay in the group).
func mustDerive(rotR intmat.Mat, tau intmat.Vec, timeSign, magneticSign int) Operation {
	op, err := New(rotR, tau, timeSign, magneticSign)
	if err != nil {
		panic(fmt.Sprintf("symmop: derived operation invalid: %v", err))
	}

	return op
}

// RotR returns the real-space rotation.
func (op Operation) RotR() intmat.Mat { return op.rotR }

// RotInvR returns the exact integer inverse of the real-space rotation.
func (op Operation) RotInvR() intmat.Mat { return op.rotInvR }

// RotG returns the reciprocal-space rotation, the transpose-inverse of RotR.
func (op Operation) RotG() intmat.Mat { return op.rotG }

// Tau returns the fractional translation.
func (op Operation) Tau() intmat.Vec { return op.tau }

// TimeSign returns -1 if the operation includes time reversal, +1 otherwise.
func (op Operation) TimeSign() int { return op.timeSgn }

// MagneticSign returns -1 for an antiferromagnetic operation, +1 otherwise.
func (op Operation) MagneticSign() int { return op.magSgn }

// Det returns the determinant of the rotational part (±1).
func (op Operation) Det() int { return op.det }

// Trace returns the trace of the rotational part.
func (op Operation) Trace() int { return op.trace }

// IsProper reports whether the rotational part has determinant +1.
func (op Operation) IsProper() bool { return op.det == 1 }

// HasTimeReversal reports whether the operation includes time reversal.
func (op Operation) HasTimeReversal() bool { return op.timeSgn == -1 }

// IsFM reports whether the operation is ferromagnetic (magnetic sign +1).
func (op Operation) IsFM() bool { return op.magSgn == 1 }

// IsAFM reports whether the operation is antiferromagnetic.
func (op Operation) IsAFM() bool { return op.magSgn == -1 }

// IsSymmorphic reports whether the fractional translation is non-zero.
// Note the translation is taken as stored, not reduced to the unit cell.
func (op Operation) IsSymmorphic() bool {
	return op.tau[0] != 0 || op.tau[1] != 0 || op.tau[2] != 0
}

// Product returns the operation equivalent to applying other first and then
// op: {R,t}{S,u} = {RS, Ru + t}. Signs multiply.
func (op Operation) Product(other Operation) Operation {
	return mustDerive(
		intmat.Mul(op.rotR, other.rotR),
		intmat.AddVec(op.tau, intmat.MulVec(op.rotR, other.tau)),
		op.timeSgn*other.timeSgn,
		op.magSgn*other.magSgn,
	)
}

// Inverse returns {R⁻¹, −R⁻¹τ}. Time and magnetic signs are their own
// inverses and carry over unchanged.
func (op Operation) Inverse() Operation {
	mt := intmat.MulVec(op.rotInvR, op.tau)

	return mustDerive(
		op.rotInvR,
		intmat.Vec{-mt[0], -mt[1], -mt[2]},
		op.timeSgn,
		op.magSgn,
	)
}

// Conjugate returns x⁻¹·op·x, the conjugate of op by x. Class decomposition
// is built on this.
func (op Operation) Conjugate(x Operation) Operation {
	return x.Inverse().Product(op).Product(x)
}

// Equal reports whether two operations are the same group element:
// rotations and signs match exactly, translations differ by a lattice
// vector within DefaultTranslationTol.
func (op Operation) Equal(other Operation) bool {
	return op.rotR == other.rotR &&
		op.timeSgn == other.timeSgn &&
		op.magSgn == other.magSgn &&
		intmat.IsIntegerVec(intmat.SubVec(op.tau, other.tau), DefaultTranslationTol)
}

// IsIdentity reports whether op is the identity element: unit rotation,
// integral translation, no time reversal, no spin flip.
func (op Operation) IsIdentity() bool {
	return intmat.IsIdentity(op.rotR) &&
		op.timeSgn == 1 &&
		op.magSgn == 1 &&
		intmat.IsIntegerVec(op.tau, DefaultTranslationTol)
}

// HashKey returns a coarse integer key consistent with Equal: equal
// operations share a key, but distinct operations may collide (the key
// ignores the translation and the magnetic sign). Callers must resolve
// collisions with Equal, never assume uniqueness.
func (op Operation) HashKey() int {
	return 8*op.trace + 4*op.det + 2*op.timeSgn
}

// RotateK applies the operation to a wavevector in fractional reciprocal
// coordinates: Sk = timeSign · (RotG · k). With wrap=true the result is
// folded into the first Brillouin zone [-1/2, 1/2).
func (op Operation) RotateK(k intmat.Vec, wrap bool) intmat.Vec {
	sk := intmat.MulVec(op.rotG, k)
	for i := range sk {
		sk[i] *= float64(op.timeSgn)
	}

	if wrap {
		return WrapToWS(sk)
	}

	return sk
}

// PreserveK reports whether the operation maps k onto itself modulo a
// reciprocal lattice vector, and returns the integer offset g0 = Sk − k.
// g0 is meaningful only when the first result is true.
func (op Operation) PreserveK(k intmat.Vec) (bool, intmat.IntVec) {
	diff := intmat.SubVec(op.RotateK(k, false), k)

	return intmat.IsIntegerVec(diff, DefaultKTol), intmat.Round(diff)
}

// RotateR applies the operation to a real-space point in reduced
// coordinates using the convention op(r) = R⁻¹(r − τ). With inUcell=true
// the result is reduced into [0, 1).
func (op Operation) RotateR(r intmat.Vec, inUcell bool) intmat.Vec {
	out := intmat.MulVec(op.rotInvR, intmat.SubVec(r, op.tau))

	if inUcell {
		return WrapToUcell(out)
	}

	return out
}

// RotateGVecs applies the operation to a list of reciprocal-lattice vectors
// in reduced coordinates, returning timeSign · (RotG · g) for each.
func (op Operation) RotateGVecs(gvecs []intmat.Vec) []intmat.Vec {
	out := make([]intmat.Vec, len(gvecs))
	for i, g := range gvecs {
		out[i] = op.RotateK(g, false)
	}

	return out
}

// String renders the operation as its rotation rows, translation, signs and
// reciprocal rotation, one row per line.
func (op Operation) String() string {
	s := ""
	for i := 0; i < 3; i++ {
		s += fmt.Sprintf("[%2d,%2d,%2d, %.3f]  [%2d,%2d,%2d]",
			op.rotR[i][0], op.rotR[i][1], op.rotR[i][2], op.tau[i],
			op.rotG[i][0], op.rotG[i][1], op.rotG[i][2])
		if i == 0 {
			s += fmt.Sprintf("  time_sign=%2d, magnetic_sign=%2d, det=%2d", op.timeSgn, op.magSgn, op.det)
		}
		s += "\n"
	}

	return s
}
