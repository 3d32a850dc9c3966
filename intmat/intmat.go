package intmat

import (
	"fmt"
	"math"
)

// Mat is a 3×3 integer matrix in row-major order. Being a plain array value
// it is comparable with ==, usable as a map key and copied on assignment.
type Mat [3][3]int

// IntVec is an integer 3-vector (e.g. a reciprocal-lattice offset).
type IntVec [3]int

// Vec is a real 3-vector in reduced (fractional) coordinates.
type Vec [3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat {
	return Mat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IsIdentity reports whether m is exactly the identity matrix.
func IsIdentity(m Mat) bool {
	return m == Identity()
}

// Det returns the signed determinant of m, computed exactly.
func Det(m Mat) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Trace returns the sum of the diagonal elements of m.
func Trace(m Mat) int {
	return m[0][0] + m[1][1] + m[2][2]
}

// Transpose returns mᵀ.
func Transpose(m Mat) Mat {
	var t Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}

	return t
}

// Neg returns −m.
func Neg(m Mat) Mat {
	var n Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			n[i][j] = -m[i][j]
		}
	}

	return n
}

// Mul returns the matrix product a·b.
func Mul(a, b Mat) Mat {
	var p Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}

	return p
}

// MulVec returns m·v for a real vector v in reduced coordinates.
func MulVec(m Mat, v Vec) Vec {
	var r Vec
	for i := 0; i < 3; i++ {
		r[i] = float64(m[i][0])*v[0] + float64(m[i][1])*v[1] + float64(m[i][2])*v[2]
	}

	return r
}

// MulIntVec returns m·v for an integer vector v.
func MulIntVec(m Mat, v IntVec) IntVec {
	var r IntVec
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return r
}

// InvertTranspose inverts a 3×3 integer matrix with |det| == 1 using the
// adjugate formula, so the result is again an integer matrix. With
// transpose=true the transpose of the inverse is returned, which is the
// reciprocal-space companion of a real-space rotation.
//
// The adjugate entries are divided by the determinant; for the unimodular
// matrices of a symmetry group the division is exact. A zero determinant
// yields ErrSingular.
func InvertTranspose(m Mat, transpose bool) (Mat, error) {
	// Cofactor matrix, laid out so that adj[i][j] is the cofactor of m[j][i]
	// (i.e. adj is already the transpose of the cofactor matrix).
	var adj Mat
	adj[0][0] = m[1][1]*m[2][2] - m[2][1]*m[1][2]
	adj[0][1] = m[2][1]*m[0][2] - m[0][1]*m[2][2]
	adj[0][2] = m[0][1]*m[1][2] - m[1][1]*m[0][2]
	adj[1][0] = m[2][0]*m[1][2] - m[1][0]*m[2][2]
	adj[1][1] = m[0][0]*m[2][2] - m[2][0]*m[0][2]
	adj[1][2] = m[1][0]*m[0][2] - m[0][0]*m[1][2]
	adj[2][0] = m[1][0]*m[2][1] - m[2][0]*m[1][1]
	adj[2][1] = m[2][0]*m[0][1] - m[0][0]*m[2][1]
	adj[2][2] = m[0][0]*m[1][1] - m[1][0]*m[0][1]

	det := m[0][0]*adj[0][0] + m[0][1]*adj[1][0] + m[0][2]*adj[2][0]
	if det == 0 {
		return Mat{}, fmt.Errorf("InvertTranspose: %v: %w", m, ErrSingular)
	}

	var inv Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = adj[i][j] / det
		}
	}

	if transpose {
		return Transpose(inv), nil
	}

	return inv, nil
}

// IsIntegerVec reports whether every component of v lies within atol of an
// integer. Used to compare fractional translations and wavevectors modulo a
// lattice vector.
func IsIntegerVec(v Vec, atol float64) bool {
	for _, x := range v {
		if math.Abs(x-math.Round(x)) > atol {
			return false
		}
	}

	return true
}

// Round returns the nearest integer vector to v.
func Round(v Vec) IntVec {
	var r IntVec
	for i, x := range v {
		r[i] = int(math.Round(x))
	}

	return r
}

// SubVec returns a − b.
func SubVec(a, b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// AddVec returns a + b.
func AddVec(a, b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
