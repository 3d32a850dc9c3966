package irreps

import "errors"

var (
	// ErrBadTable indicates structurally inconsistent representation
	// data: matrix counts not matching the rotation count, matrices not
	// square at the declared dimension, class ranges that do not tile the
	// group, or an irrep count different from the class count.
	ErrBadTable = errors.New("irreps: inconsistent representation table")

	// ErrTableNotFound indicates that no builtin reference table exists
	// for the requested point-group symbol.
	ErrTableNotFound = errors.New("irreps: no table for point-group symbol")
)
