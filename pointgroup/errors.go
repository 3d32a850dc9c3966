package pointgroup

import "errors"

var (
	// ErrInvalidRotation indicates a matrix whose determinant is not ±1.
	ErrInvalidRotation = errors.New("pointgroup: rotation determinant is not ±1")

	// ErrNotRootOfUnity indicates a unimodular matrix with no power ≤ 6
	// equal to the identity; no crystal lattice admits such a rotation.
	ErrNotRootOfUnity = errors.New("pointgroup: rotation is not a root of unity")

	// ErrPointGroupNotFound indicates that a rotation set matches none of
	// the 32 crystallographic point groups. The lookup is not retried:
	// the condition means the input data is unrecognized or malformed.
	ErrPointGroupNotFound = errors.New("pointgroup: no matching crystallographic point group")
)
