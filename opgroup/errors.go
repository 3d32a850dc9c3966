package opgroup

import "errors"

var (
	// ErrEmptyGroup indicates construction from an empty operation list.
	ErrEmptyGroup = errors.New("opgroup: operation list must be non-empty")

	// ErrDuplicateOp indicates two equal operations in the input list; a
	// group container is duplicate-free by definition.
	ErrDuplicateOp = errors.New("opgroup: duplicate operation in input")

	// ErrClosureViolation indicates that a product or conjugate of two
	// members fell outside the set in a context where closure is assumed
	// to hold (class decomposition). It signals corrupt generator data,
	// not a recoverable condition; probe untrusted input with IsGroup
	// first.
	ErrClosureViolation = errors.New("opgroup: set is not closed under the group product")
)
