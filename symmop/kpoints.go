package symmop

import (
	"math"

	"github.com/rousseab/abipy/intmat"
)

// WrapToUcell reduces each fractional coordinate into [0, 1).
func WrapToUcell(v intmat.Vec) intmat.Vec {
	var out intmat.Vec
	for i, x := range v {
		x = math.Mod(x, 1)
		if x < 0 {
			x++
		}
		out[i] = x
	}

	return out
}

// WrapToWS folds each fractional coordinate into the first Brillouin zone
// [-1/2, 1/2).
func WrapToWS(v intmat.Vec) intmat.Vec {
	u := WrapToUcell(v)
	for i, x := range u {
		if x >= 0.5 {
			u[i] = x - 1
		}
	}

	return u
}

// IsSameK reports whether two wavevectors in fractional reciprocal
// coordinates coincide modulo a reciprocal lattice vector, within
// DefaultKTol.
func IsSameK(k1, k2 intmat.Vec) bool {
	return intmat.IsIntegerVec(intmat.SubVec(k1, k2), DefaultKTol)
}
