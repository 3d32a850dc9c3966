package symmop

// Numeric policy (single source of truth). These tolerances govern only the
// periodicity tests on real vectors: rotations are exact integers and are
// never compared with a tolerance.
const (
	// DefaultTranslationTol is the absolute tolerance under which two
	// fractional translations differing by a lattice vector are considered
	// the same translation.
	DefaultTranslationTol = 1e-8

	// DefaultKTol is the absolute tolerance under which a rotated
	// wavevector Sk is considered equal to k modulo a reciprocal lattice
	// vector.
	DefaultKTol = 1e-8
)
