package symmop

import "errors"

var (
	// ErrInvalidRotation indicates a rotational part whose determinant is
	// not ±1. Such a matrix may be unimodular in the linear-algebra sense
	// but is not a crystallographic rotation; generator data producing it
	// is corrupt and the failure is fatal.
	ErrInvalidRotation = errors.New("symmop: rotation determinant is not ±1")

	// ErrInvalidSign indicates a time-reversal or magnetic sign outside
	// the two-element set {+1, -1}.
	ErrInvalidSign = errors.New("symmop: sign must be +1 or -1")
)
