package intmat_test

import (
	"testing"

	"github.com/rousseab/abipy/intmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourFold is a proper 4-fold rotation about z in reduced coordinates.
var fourFold = intmat.Mat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}

// mirror is an improper operation (determinant −1).
var mirror = intmat.Mat{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}

// TestDet_KnownValues checks determinants of identity, a proper rotation,
// an improper rotation and a non-unimodular matrix.
func TestDet_KnownValues(t *testing.T) {
	assert.Equal(t, 1, intmat.Det(intmat.Identity()), "identity must have det +1")
	assert.Equal(t, 1, intmat.Det(fourFold), "4-fold rotation must have det +1")
	assert.Equal(t, -1, intmat.Det(mirror), "mirror must have det -1")

	stretch := intmat.Mat{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	assert.Equal(t, 2, intmat.Det(stretch), "diagonal stretch must have det 2")
}

// TestInvertTranspose_Inverse verifies that the plain inverse of a proper
// rotation multiplies back to the identity.
func TestInvertTranspose_Inverse(t *testing.T) {
	inv, err := intmat.InvertTranspose(fourFold, false)
	require.NoError(t, err, "unimodular matrix must invert")

	assert.True(t, intmat.IsIdentity(intmat.Mul(fourFold, inv)), "m·m⁻¹ must be identity")
	assert.True(t, intmat.IsIdentity(intmat.Mul(inv, fourFold)), "m⁻¹·m must be identity")
}

// TestInvertTranspose_Transpose verifies the reciprocal-space companion:
// the result with transpose=true equals the transpose of the inverse.
func TestInvertTranspose_Transpose(t *testing.T) {
	inv, err := intmat.InvertTranspose(mirror, false)
	require.NoError(t, err)

	invT, err := intmat.InvertTranspose(mirror, true)
	require.NoError(t, err)

	assert.Equal(t, intmat.Transpose(inv), invT, "transpose flag must transpose the inverse")
}

// TestInvertTranspose_Singular checks the ErrSingular sentinel for a matrix
// with a zero determinant.
func TestInvertTranspose_Singular(t *testing.T) {
	singular := intmat.Mat{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}}

	_, err := intmat.InvertTranspose(singular, false)
	assert.ErrorIs(t, err, intmat.ErrSingular, "zero determinant must yield ErrSingular")
}

// TestMulVec_Rotation applies the 4-fold rotation to a fractional vector.
func TestMulVec_Rotation(t *testing.T) {
	got := intmat.MulVec(fourFold, intmat.Vec{0.25, 0, 0.5})
	assert.Equal(t, intmat.Vec{0, 0.25, 0.5}, got, "4-fold about z maps (x,y,z) to (-y,x,z)")
}

// TestIsIntegerVec covers the translation-periodicity tolerance test.
func TestIsIntegerVec(t *testing.T) {
	assert.True(t, intmat.IsIntegerVec(intmat.Vec{1, -2, 0}, 1e-8), "exact integers")
	assert.True(t, intmat.IsIntegerVec(intmat.Vec{0.999999999, 2, -1}, 1e-8), "within atol")
	assert.False(t, intmat.IsIntegerVec(intmat.Vec{0.5, 0, 0}, 1e-8), "half-integer is not integral")
	assert.True(t, intmat.IsIntegerVec(intmat.Vec{1.01, 2}, 0.011), "loose atol admits 1.01")
	assert.False(t, intmat.IsIntegerVec(intmat.Vec{1.01, 2}, 1e-8), "tight atol rejects 1.01")
}

// TestRoundAndSub checks the g0 helper arithmetic.
func TestRoundAndSub(t *testing.T) {
	d := intmat.SubVec(intmat.Vec{1.25, 0, 0}, intmat.Vec{0.25, 0, 0})
	assert.Equal(t, intmat.Vec{1, 0, 0}, d)
	assert.Equal(t, intmat.IntVec{1, 0, 0}, intmat.Round(d))
}

// TestTraceNeg covers the small remaining helpers.
func TestTraceNeg(t *testing.T) {
	assert.Equal(t, 3, intmat.Trace(intmat.Identity()))
	assert.Equal(t, 1, intmat.Trace(fourFold))
	assert.Equal(t, intmat.Mat{{0, 1, 0}, {-1, 0, 0}, {0, 0, -1}}, intmat.Neg(fourFold))
}
